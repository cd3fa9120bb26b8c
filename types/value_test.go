package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthiness(t *testing.T) {
	assert.True(t, IsTruthy(NewNumber(0)), "zero is truthy, unlike many Lisps")
	assert.True(t, IsTruthy(True))
	assert.False(t, IsTruthy(False))
	assert.False(t, IsTruthy(Nil))
	assert.True(t, IsTruthy(NewString("")))
}

func TestHashMapKeyRoundTrip(t *testing.T) {
	strKey, errVal := EncodeMapKey(NewString("abc"))
	assert.Nil(t, errVal)
	kwKey, errVal := EncodeMapKey(NewKeyword("abc"))
	assert.Nil(t, errVal)

	assert.NotEqual(t, strKey, kwKey, "a string and a keyword with the same characters must not collide as map keys")

	assert.Equal(t, "abc", *DecodeMapKey(strKey).Str)
	assert.Equal(t, "abc", *DecodeMapKey(kwKey).Keyword)
}

func TestIsSequence(t *testing.T) {
	list := NewList(NewNumber(1), NewNumber(2))
	elems, ok := IsSequence(list)
	assert.True(t, ok)
	assert.Len(t, elems, 2)

	vec := NewVectorFromSlice([]*Value{NewNumber(1)})
	_, ok = IsSequence(vec)
	assert.True(t, ok)

	_, ok = IsSequence(NewNumber(1))
	assert.False(t, ok)
}

func TestIsCallable(t *testing.T) {
	assert.True(t, IsCallable(&Value{Native: func([]*Value) *Value { return Nil }}))
	assert.True(t, IsCallable(&Value{Closure: &Closure{}}))
	assert.False(t, IsCallable(NewNumber(1)))
}
