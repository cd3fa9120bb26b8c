// Package printer renders types.Value trees back to text, in the two
// modes MAL programs distinguish: readable (escaped strings, used by
// pr-str and the REPL's echo of a result) and display (unescaped, used
// by str/println).
package printer

import (
	"strconv"
	"strings"

	. "github.com/Riyyi/mal/types"
)

// PrintStr renders a single Value.
func PrintStr(v *Value, readable bool) string {
	switch {
	case v == nil:
		return ""

	case v == Nil:
		return "nil"
	case v == True:
		return "true"
	case v == False:
		return "false"

	case v.Number != nil:
		return strconv.FormatInt(*v.Number, 10)

	case v.Str != nil:
		if readable {
			return quoteString(*v.Str)
		}
		return *v.Str

	case v.Keyword != nil:
		return ":" + *v.Keyword

	case v.Symbol != nil:
		return *v.Symbol

	case v.List != nil:
		return "(" + printSeq(*v.List, readable) + ")"

	case v.Vector != nil:
		return "[" + printSeq(*v.Vector, readable) + "]"

	case v.HashMap != nil:
		return "{" + printHashMap(v.HashMap, readable) + "}"

	case v.Atom != nil:
		return "(atom " + PrintStr(v.Atom, readable) + ")"

	case v.Closure != nil && v.Closure.IsMacro:
		return "#<macro>"
	case v.Closure != nil:
		return "#<function>"
	case v.Native != nil:
		return "#<function>"

	default:
		return "#<unknown>"
	}
}

// PrintSeq joins a slice of Values with spaces, readable per the flag.
// Exported for callers (e.g. the `str`/`pr-str` builtins) that print a
// variadic argument list rather than a single collection Value.
func PrintSeq(vs []*Value, readable bool, sep string) string {
	strs := make([]string, len(vs))
	for i, v := range vs {
		strs[i] = PrintStr(v, readable)
	}
	return strings.Join(strs, sep)
}

func printSeq(vs []*Value, readable bool) string {
	return PrintSeq(vs, readable, " ")
}

func printHashMap(hm *HashMap, readable bool) string {
	parts := make([]string, 0, len(hm.Data)*2)
	for key, val := range hm.Data {
		parts = append(parts, PrintStr(DecodeMapKey(key), readable))
		parts = append(parts, PrintStr(val, readable))
	}
	return strings.Join(parts, " ")
}

// PrintPretty renders a Value the same as PrintStr(v, true), except
// List/Vector/HashMap collections are broken one element per line and
// indented, for the REPL's --pretty-print toggle.
func PrintPretty(v *Value) string {
	return prettyIndent(v, 0)
}

func prettyIndent(v *Value, depth int) string {
	indent := strings.Repeat("  ", depth+1)
	closeIndent := strings.Repeat("  ", depth)

	switch {
	case v == nil:
		return ""
	case v.List != nil:
		return prettyBracket("(", *v.List, ")", depth, indent, closeIndent)
	case v.Vector != nil:
		return prettyBracket("[", *v.Vector, "]", depth, indent, closeIndent)
	case v.HashMap != nil:
		return prettyHashMap(v.HashMap, depth, indent, closeIndent)
	default:
		return PrintStr(v, true)
	}
}

func prettyBracket(open string, elems []*Value, close string, depth int, indent, closeIndent string) string {
	if len(elems) == 0 {
		return open + close
	}
	var b strings.Builder
	b.WriteString(open)
	b.WriteString("\n")
	for _, e := range elems {
		b.WriteString(indent)
		b.WriteString(prettyIndent(e, depth+1))
		b.WriteString("\n")
	}
	b.WriteString(closeIndent)
	b.WriteString(close)
	return b.String()
}

func prettyHashMap(hm *HashMap, depth int, indent, closeIndent string) string {
	if len(hm.Data) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for key, val := range hm.Data {
		b.WriteString(indent)
		b.WriteString(PrintStr(DecodeMapKey(key), true))
		b.WriteString(" ")
		b.WriteString(prettyIndent(val, depth+1))
		b.WriteString("\n")
	}
	b.WriteString(closeIndent)
	b.WriteString("}")
	return b.String()
}

func quoteString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return "\"" + s + "\""
}
