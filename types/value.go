// Package types defines the runtime value universe shared by the reader,
// printer, evaluator and builtin library: a closed, tagged sum type plus
// the environment chain and error channel that the evaluator operates
// against.
package types

// Native is a builtin callable: it receives already-evaluated arguments
// and returns a Value, or nil with the error channel set.
type Native func(args []*Value) *Value

// Closure is the shape shared by Lambda and Macro values. IsMacro
// distinguishes application semantics: a Lambda evaluates its arguments
// before binding them, a Macro does not, and a Macro's result is fed back
// into the evaluator rather than returned directly.
type Closure struct {
	Params   []string
	Variadic string // "" when the closure takes no rest argument
	Body     *Value
	Env      *Env
	IsMacro  bool
}

type specialKind int

const (
	specialNone specialKind = iota
	specialNil
	specialTrue
	specialFalse
)

// Value is the tagged union of every runtime object. At most one field is
// populated (aside from the internal special discriminant), and a Value
// is always passed around by pointer so that sharing a subtree never
// copies it.
type Value struct {
	Number  *int64
	Str     *string
	Keyword *string // bare name, without the leading colon
	Symbol  *string
	List    *[]*Value
	Vector  *[]*Value
	HashMap *HashMap
	Closure *Closure
	Native  Native
	Atom    *Value

	special specialKind
}

// The three constant singletons. Equality against them is by pointer, so
// nothing else should ever be constructed with a matching special kind.
var (
	Nil   = &Value{special: specialNil}
	True  = &Value{special: specialTrue}
	False = &Value{special: specialFalse}
)

// HashMap maps an encoded string key (see EncodeMapKey) to a Value.
// Key order is unspecified.
type HashMap struct {
	Data map[string]*Value
}

func NewHashMap() *HashMap {
	return &HashMap{Data: map[string]*Value{}}
}

// keywordSentinel prefixes a keyword's bare name when it is used as a
// hash-map key, so that a keyword and a string with the same characters
// never collide. Confined to this file; nothing else branches on it.
const keywordSentinel = "\x7f"

// EncodeMapKey turns a String or Keyword Value into the string used to
// index HashMap.Data. Any other Value is a type error.
func EncodeMapKey(v *Value) (string, *Value) {
	if v.Str != nil {
		return *v.Str, nil
	}
	if v.Keyword != nil {
		return keywordSentinel + *v.Keyword, nil
	}
	ThrowError("hash-map keys must be strings or keywords")
	return "", ErrorValue()
}

// DecodeMapKey reverses EncodeMapKey, producing the String or Keyword
// Value a stored key stands for.
func DecodeMapKey(key string) *Value {
	if len(key) > 0 && key[:1] == keywordSentinel {
		name := key[1:]
		return NewKeyword(name)
	}
	return NewString(key)
}

// Constructors.

func NewNumber(n int64) *Value {
	return &Value{Number: &n}
}

func NewString(s string) *Value {
	return &Value{Str: &s}
}

func NewKeyword(name string) *Value {
	return &Value{Keyword: &name}
}

func NewSymbol(name string) *Value {
	return &Value{Symbol: &name}
}

func NewList(items ...*Value) *Value {
	return &Value{List: &items}
}

func NewListFromSlice(items []*Value) *Value {
	return &Value{List: &items}
}

func NewVectorFromSlice(items []*Value) *Value {
	return &Value{Vector: &items}
}

func NewBool(b bool) *Value {
	if b {
		return True
	}
	return False
}

// IsTruthy implements the language's truthiness law: everything except
// Nil and False is truthy.
func IsTruthy(v *Value) bool {
	return v != Nil && v != False
}

// IsSequence reports whether v is a List or a Vector, and returns its
// elements. Lists and Vectors share this "Collection" notion so
// quasiquote, seq/map/apply and the printer don't each re-derive the
// v.List != nil || v.Vector != nil branch independently.
func IsSequence(v *Value) ([]*Value, bool) {
	if v.List != nil {
		return *v.List, true
	}
	if v.Vector != nil {
		return *v.Vector, true
	}
	return nil, false
}

// TypeName names a Value's variant for error messages ("not a callable:
// <type>" and friends).
func TypeName(v *Value) string {
	switch {
	case v == Nil:
		return "nil"
	case v == True, v == False:
		return "boolean"
	case v.Number != nil:
		return "number"
	case v.Str != nil:
		return "string"
	case v.Keyword != nil:
		return "keyword"
	case v.Symbol != nil:
		return "symbol"
	case v.List != nil:
		return "list"
	case v.Vector != nil:
		return "vector"
	case v.HashMap != nil:
		return "hash-map"
	case v.Closure != nil && v.Closure.IsMacro:
		return "macro"
	case v.Closure != nil:
		return "function"
	case v.Native != nil:
		return "function"
	case v.Atom != nil:
		return "atom"
	default:
		return "unknown"
	}
}

// IsCallable reports whether v can appear in head position of an
// application.
func IsCallable(v *Value) bool {
	return v.Native != nil || v.Closure != nil
}
