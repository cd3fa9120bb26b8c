// Package reader turns MAL source text into types.Value AST trees: a
// hand-rolled tokenizer plus a recursive-descent parser, generalized to
// the full value universe (vectors, hash-maps, keywords) plus the `@x`
// deref reader macro.
package reader

import (
	"fmt"
	"strconv"

	. "github.com/Riyyi/mal/types"
)

// MalReader walks a flat token stream with one token of lookahead.
type MalReader struct {
	tokens []string
	index  int
}

func (r *MalReader) Next() (string, bool) {
	t, ok := r.Peek()
	if !ok {
		return t, false
	}
	r.index++
	return t, true
}

func (r *MalReader) Peek() (string, bool) {
	if r.index >= len(r.tokens) {
		return "EOF", false
	}
	return r.tokens[r.index], true
}

// Tokenize exposes the tokenizer directly, for the REPL's dump-lexer
// diagnostic toggle.
func Tokenize(input string) ([]string, error) {
	return tokenizer(input)
}

func tokenizer(input string) ([]string, error) {
	t := make([]string, 0, 16)
	for pos := 0; pos < len(input); {
		c := input[pos]
		switch c {
		case ' ', '\r', '\n', '\t', ',':
			pos++
			continue // Whitespace and commas are skipped.

		case '~':
			if pos+1 < len(input) && input[pos+1] == '@' { // ~@ is a thing
				t = append(t, "~@")
				pos += 2
			} else {
				t = append(t, "~") // so is just ~
				pos++
			}

		case '[', ']', '{', '}', '(', ')', '\'', '`', '^', '@':
			t = append(t, string(c))
			pos++

		case '"': // Quoted strings as one token.
			wasSlash := false
			foundEnd := false
			out := []byte{'"'}
			for end := pos + 1; end < len(input); end++ {
				if !wasSlash && input[end] == '"' {
					foundEnd = true
					out = append(out, '"')
					t = append(t, string(out))
					pos = end + 1
					break
				}

				if wasSlash {
					switch input[end] {
					case 'n':
						out = append(out, '\n')
					case '"':
						out = append(out, '"')
					case '\\':
						out = append(out, '\\')
					default:
						out = append(out, input[end])
					}
					wasSlash = false
				} else {
					if input[end] == '\\' {
						wasSlash = true
					} else {
						out = append(out, input[end])
					}
				}
			}

			if !foundEnd {
				return nil, fmt.Errorf("expected '\"', got EOF")
			}

		case ';': // Skips the rest of the line as a comment; no token is emitted.
			end := pos + 1
			for ; end < len(input); end++ {
				if input[end] == '\n' {
					pos = end
					break
				}
			}

			if end == len(input) {
				return t, nil
			}

		default:
			// Keep going until we see something special.
			end := pos + 1
		nonspecLoop:
			for end < len(input) {
				switch input[end] {
				case ' ', '\t', '\n', ',', '(', ')', '[', ']', '{', '}', '~', '\'', '"', '@', '^', '`':
					break nonspecLoop
				}
				end++
			}
			s := input[pos:end]
			t = append(t, s)
			pos = end
		}
	}
	return t, nil
}

// ReadStr tokenizes and parses one form from input.
func ReadStr(input string) *Value {
	tokens, err := tokenizer(input)
	if err != nil {
		return ThrowToken("tokenization error: %v", err)
	}

	r := &MalReader{tokens, 0}
	return ReadForm(r)
}

func ReadForm(r *MalReader) *Value {
	t, ok := r.Peek()
	if !ok {
		return ThrowToken("expected form, got EOF")
	}

	switch t {
	case "'":
		return nextWrapped(r, "quote")
	case "`":
		return nextWrapped(r, "quasiquote")
	case "~":
		return nextWrapped(r, "unquote")
	case "~@":
		return nextWrapped(r, "splice-unquote")
	case "@":
		return nextWrapped(r, "deref")
	case "(":
		return readList(r, "(", ")")
	case "[":
		return readVector(r)
	case "{":
		return readHashMap(r)
	case ")", "]", "}":
		return ThrowToken("unexpected '%s'", t)
	default:
		return readAtom(r)
	}
}

func nextWrapped(r *MalReader, wrapper string) *Value {
	r.Next()
	next := ReadForm(r)
	if HasAnyError() {
		return nil
	}
	return NewList(NewSymbol(wrapper), next)
}

func readList(r *MalReader, open, close string) *Value {
	r.Next() // Skip the opening delimiter.
	ret := []*Value{}
	for {
		t, ok := r.Peek()
		if !ok {
			return ThrowToken("expected '%s' but got EOF", close)
		}
		if t == close {
			break
		}
		f := ReadForm(r)
		if HasAnyError() {
			return nil
		}
		ret = append(ret, f)
	}
	r.Next() // Skip the closing delimiter.
	return NewListFromSlice(ret)
}

func readVector(r *MalReader) *Value {
	r.Next() // Skip "[".
	ret := []*Value{}
	for {
		t, ok := r.Peek()
		if !ok {
			return ThrowToken("expected ']' but got EOF")
		}
		if t == "]" {
			break
		}
		f := ReadForm(r)
		if HasAnyError() {
			return nil
		}
		ret = append(ret, f)
	}
	r.Next()
	return NewVectorFromSlice(ret)
}

func readHashMap(r *MalReader) *Value {
	r.Next() // Skip "{".
	ret := []*Value{}
	for {
		t, ok := r.Peek()
		if !ok {
			return ThrowToken("expected '}' but got EOF")
		}
		if t == "}" {
			break
		}
		f := ReadForm(r)
		if HasAnyError() {
			return nil
		}
		ret = append(ret, f)
	}
	r.Next()

	if len(ret)%2 != 0 {
		return ThrowToken("hash-map literal requires an even number of forms; found %d", len(ret))
	}

	hm := NewHashMap()
	for i := 0; i < len(ret); i += 2 {
		key, err := EncodeMapKey(ret[i])
		if err != nil {
			return ThrowToken("hash-map keys must be strings or keywords")
		}
		hm.Data[key] = ret[i+1]
	}
	return &Value{HashMap: hm}
}

func readAtom(r *MalReader) *Value {
	t, ok := r.Next()
	if !ok {
		return ThrowToken("expected atom, got EOF")
	}

	switch {
	case t[0] == '"':
		s := t[1 : len(t)-1]
		return NewString(s)
	case t[0] == ':':
		return NewKeyword(t[1:])
	case (len(t) >= 2 && t[0] == '-' && '0' <= t[1] && t[1] <= '9') || ('0' <= t[0] && t[0] <= '9'):
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return ThrowToken("badly formatted number: %s", t)
		}
		return NewNumber(n)
	case t == "nil":
		return Nil
	case t == "true":
		return True
	case t == "false":
		return False
	default:
		return NewSymbol(t)
	}
}
