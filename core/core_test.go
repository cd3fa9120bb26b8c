package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	// Blank-imported so its init() wires types.Eval before any test here
	// calls a builtin (apply, map, swap!, eval) that dispatches through it.
	_ "github.com/Riyyi/mal/eval"
	. "github.com/Riyyi/mal/types"
)

func freshEnv(t *testing.T) *Env {
	t.Helper()
	env := NewEnv(nil)
	PopulateEnv(env)
	ClearError()
	return env
}

func TestArithmetic(t *testing.T) {
	freshEnv(t)
	assert.Equal(t, int64(5), *plus([]*Value{NewNumber(2), NewNumber(3)}).Number)
	assert.Equal(t, int64(-1), *minus([]*Value{NewNumber(2), NewNumber(3)}).Number)
	assert.Equal(t, int64(6), *times([]*Value{NewNumber(2), NewNumber(3)}).Number)
	assert.Equal(t, int64(2), *div([]*Value{NewNumber(6), NewNumber(3)}).Number)
}

func TestDivisionByZero(t *testing.T) {
	ClearError()
	v := div([]*Value{NewNumber(1), NewNumber(0)})
	assert.Nil(t, v)
	assert.True(t, HasAnyError())
	ClearError()
}

func TestComparisons(t *testing.T) {
	assert.Equal(t, True, lt([]*Value{NewNumber(1), NewNumber(2)}))
	assert.Equal(t, False, gt([]*Value{NewNumber(1), NewNumber(2)}))
	assert.Equal(t, True, equal([]*Value{NewNumber(1), NewNumber(1)}))
}

func TestEqualityAcrossCollections(t *testing.T) {
	a := NewList(NewNumber(1), NewNumber(2))
	b := NewVectorFromSlice([]*Value{NewNumber(1), NewNumber(2)})
	assert.True(t, valuesEqual(a, b), "= compares List/Vector by element, regardless of collection kind")
}

func TestSequenceOps(t *testing.T) {
	l := NewList(NewNumber(1), NewNumber(2), NewNumber(3))
	assert.Equal(t, int64(3), *count([]*Value{l}).Number)
	assert.Equal(t, int64(1), *first([]*Value{l}).Number)

	restVal := rest([]*Value{l})
	assert.Len(t, *restVal.List, 2)

	consed := cons([]*Value{NewNumber(0), l})
	assert.Len(t, *consed.List, 4)
	assert.Equal(t, int64(0), *(*consed.List)[0].Number)

	cat := concat([]*Value{l, NewList(NewNumber(4))})
	assert.Len(t, *cat.List, 4)
}

func TestConjListPrependsVectorAppends(t *testing.T) {
	l := conj([]*Value{NewList(NewNumber(1)), NewNumber(2)})
	assert.Equal(t, int64(2), *(*l.List)[0].Number, "conj prepends onto a list")

	v := conj([]*Value{NewVectorFromSlice([]*Value{NewNumber(1)}), NewNumber(2)})
	assert.Equal(t, int64(2), *(*v.Vector)[1].Number, "conj appends onto a vector")
}

func TestHashMapOps(t *testing.T) {
	hm := hashMap([]*Value{NewKeyword("a"), NewNumber(1)})
	assert.True(t, IsTruthy(containsQ([]*Value{hm, NewKeyword("a")})))
	assert.Equal(t, int64(1), *get([]*Value{hm, NewKeyword("a")}).Number)

	assoced := assoc([]*Value{hm, NewKeyword("b"), NewNumber(2)})
	assert.Equal(t, int64(2), *get([]*Value{assoced, NewKeyword("b")}).Number)
	assert.True(t, IsTruthy(containsQ([]*Value{hm, NewKeyword("a")})), "assoc must not mutate the original hash-map")

	dissoced := dissoc([]*Value{assoced, NewKeyword("a")})
	assert.Equal(t, Nil, get([]*Value{dissoced, NewKeyword("a")}))
}

func TestAtoms(t *testing.T) {
	freshEnv(t)
	a := atom([]*Value{NewNumber(1)})
	assert.Equal(t, int64(1), *deref([]*Value{a}).Number)

	atomReset([]*Value{a, NewNumber(5)})
	assert.Equal(t, int64(5), *deref([]*Value{a}).Number)

	f := &Value{Native: func(args []*Value) *Value {
		return NewNumber(*args[0].Number + 1)
	}}
	atomSwap([]*Value{a, f})
	assert.Equal(t, int64(6), *deref([]*Value{a}).Number)

	// swap! must hand the atom's current value to f as-is: a quoted symbol
	// held by the atom is not a reference to re-resolve.
	sym := NewSymbol("x")
	b := atom([]*Value{sym})
	identity := &Value{Native: func(args []*Value) *Value { return args[0] }}
	atomSwap([]*Value{b, identity})
	assert.Same(t, sym, deref([]*Value{b}))
}

func TestApplyAndMap(t *testing.T) {
	env := freshEnv(t)
	_ = env

	double := &Value{Native: func(args []*Value) *Value {
		return NewNumber(*args[0].Number * 2)
	}}
	result := apply([]*Value{double, NewList(NewNumber(21))})
	assert.Equal(t, int64(42), *result.Number)

	mapped := mapFn([]*Value{double, NewList(NewNumber(1), NewNumber(2), NewNumber(3))})
	assert.Len(t, *mapped.List, 3)
	assert.Equal(t, int64(2), *(*mapped.List)[0].Number)

	// A list or symbol element must reach f as a value, never re-evaluated
	// as if it were new syntax.
	identity := &Value{Native: func(args []*Value) *Value { return args[0] }}
	listArg := NewList(NewNumber(1), NewNumber(2))
	countElem := &Value{Native: func(args []*Value) *Value { return count([]*Value{args[0]}) }}
	mappedLists := mapFn([]*Value{countElem, NewList(listArg)})
	assert.Equal(t, int64(2), *(*mappedLists.List)[0].Number)

	quotedSym := NewSymbol("a")
	appliedSym := apply([]*Value{identity, NewList(quotedSym)})
	assert.Same(t, quotedSym, appliedSym)
}

func TestThrowSetsExceptionChannel(t *testing.T) {
	ClearError()
	v := throwFn([]*Value{NewString("boom")})
	assert.Nil(t, v)
	assert.True(t, HasException())
	assert.Equal(t, "boom", *ErrorValue().Str)
	ClearError()
}

func TestPopulateEnvInstallsBuiltins(t *testing.T) {
	env := freshEnv(t)
	plusFn := env.Find("+")
	assert.NotNil(t, plusFn)
	assert.NotNil(t, plusFn.Native)
}
