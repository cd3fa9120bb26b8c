package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Riyyi/mal/types"
)

func TestPrintScalars(t *testing.T) {
	assert.Equal(t, "nil", PrintStr(Nil, true))
	assert.Equal(t, "true", PrintStr(True, true))
	assert.Equal(t, "false", PrintStr(False, true))
	assert.Equal(t, "42", PrintStr(NewNumber(42), true))
	assert.Equal(t, "abc", PrintStr(NewSymbol("abc"), true))
	assert.Equal(t, ":kw", PrintStr(NewKeyword("kw"), true))
}

func TestPrintStringReadableVsDisplay(t *testing.T) {
	v := NewString("a\nb\"c")
	assert.Equal(t, `"a\nb\"c"`, PrintStr(v, true))
	assert.Equal(t, "a\nb\"c", PrintStr(v, false))
}

func TestPrintCollections(t *testing.T) {
	list := NewList(NewNumber(1), NewNumber(2))
	assert.Equal(t, "(1 2)", PrintStr(list, true))

	vec := NewVectorFromSlice([]*Value{NewNumber(1), NewNumber(2)})
	assert.Equal(t, "[1 2]", PrintStr(vec, true))
}

func TestPrintHashMapRoundTrip(t *testing.T) {
	hm := NewHashMap()
	hm.Data["a"] = NewNumber(1)
	v := &Value{HashMap: hm}
	assert.Equal(t, `{"a" 1}`, PrintStr(v, true))
}

func TestPrintFunctionsAndMacros(t *testing.T) {
	fn := &Value{Closure: &Closure{}}
	assert.Equal(t, "#<function>", PrintStr(fn, true))

	macro := &Value{Closure: &Closure{IsMacro: true}}
	assert.Equal(t, "#<macro>", PrintStr(macro, true))

	native := &Value{Native: func([]*Value) *Value { return Nil }}
	assert.Equal(t, "#<function>", PrintStr(native, true))
}

func TestPrintAtom(t *testing.T) {
	a := &Value{Atom: NewNumber(7)}
	assert.Equal(t, "(atom 7)", PrintStr(a, true))
}

func TestPrintPrettyBreaksCollections(t *testing.T) {
	list := NewList(NewNumber(1), NewNumber(2))
	got := PrintPretty(list)
	assert.Equal(t, "(\n  1\n  2\n)", got)
}

func TestPrintPrettyEmptyCollection(t *testing.T) {
	assert.Equal(t, "()", PrintPretty(NewList()))
}
