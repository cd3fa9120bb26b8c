package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvSetFindShadowing(t *testing.T) {
	outer := NewEnv(nil)
	outer.Set("x", NewNumber(1))

	inner := NewEnv(outer)
	inner.Set("x", NewNumber(2))

	assert.Equal(t, int64(2), *inner.Find("x").Number)
	assert.Equal(t, int64(1), *outer.Find("x").Number, "shadowing in a child frame must not mutate the parent binding")
}

func TestEnvFindWalksChain(t *testing.T) {
	outer := NewEnv(nil)
	outer.Set("y", NewNumber(42))
	inner := NewEnv(outer)

	assert.Equal(t, int64(42), *inner.Find("y").Number)
}

func TestEnvGetUnbound(t *testing.T) {
	ClearError()
	env := NewEnv(nil)
	v := env.Get("nope")
	assert.Nil(t, v)
	assert.True(t, HasAnyError())
	ClearError()
}

func TestBindEnvFixedArity(t *testing.T) {
	ClearError()
	_, errVal := BindEnv(nil, []string{"a", "b"}, "", []*Value{NewNumber(1)})
	assert.True(t, HasAnyError(), "too few args for a non-variadic closure must error")
	assert.NotNil(t, errVal)
	ClearError()

	_, errVal = BindEnv(nil, []string{"a"}, "", []*Value{NewNumber(1), NewNumber(2)})
	assert.True(t, HasAnyError(), "extra args for a non-variadic closure must error")
	assert.NotNil(t, errVal)
	ClearError()

	env, errVal := BindEnv(nil, []string{"a", "b"}, "", []*Value{NewNumber(1), NewNumber(2)})
	assert.Nil(t, errVal)
	assert.Equal(t, int64(1), *env.Find("a").Number)
	assert.Equal(t, int64(2), *env.Find("b").Number)
}

func TestBindEnvVariadic(t *testing.T) {
	ClearError()
	env, errVal := BindEnv(nil, []string{"a"}, "rest", []*Value{NewNumber(1), NewNumber(2), NewNumber(3)})
	assert.Nil(t, errVal)
	assert.Equal(t, int64(1), *env.Find("a").Number)

	rest := env.Find("rest")
	assert.NotNil(t, rest.List)
	assert.Len(t, *rest.List, 2)
}
