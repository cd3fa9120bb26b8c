package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Riyyi/mal/core"
	"github.com/Riyyi/mal/printer"
	"github.com/Riyyi/mal/reader"
	. "github.com/Riyyi/mal/types"
)

// evalSrc reads and evaluates src against a fresh root environment
// (builtins plus the language-level bootstrap), returning the result
// Value. It fails the test on any error from read, bootstrap, or eval.
func evalSrc(t *testing.T, src string) *Value {
	t.Helper()
	env := rootEnvForTest(t)
	return evalOK(t, src, env)
}

func rootEnvForTest(t *testing.T) *Env {
	t.Helper()
	env := NewEnv(nil)
	core.PopulateEnv(env)
	for _, form := range core.Bootstrap {
		ClearError()
		evalImpl(reader.ReadStr(form), env)
		assert.False(t, HasAnyError(), "bootstrap form failed: %s", form)
	}
	ClearError()
	return env
}

func evalOK(t *testing.T, src string, env *Env) *Value {
	t.Helper()
	ClearError()
	ast := reader.ReadStr(src)
	assert.False(t, HasAnyError(), "read error for %q", src)
	v := evalImpl(ast, env)
	assert.False(t, HasAnyError(), "eval error for %q: %v", src, ErrorValue())
	return v
}

func TestArithmeticAndLet(t *testing.T) {
	v := evalSrc(t, "(let* (x 2 y (+ x 3)) (* x y))")
	assert.Equal(t, int64(10), *v.Number)
}

func TestLexicalScoping(t *testing.T) {
	env := rootEnvForTest(t)
	evalOK(t, "(def! x 1)", env)
	evalOK(t, "(def! f (fn* () x))", env)
	evalOK(t, "(def! x 2)", env)
	v := evalOK(t, "(f)", env)
	assert.Equal(t, int64(2), *v.Number, "f closes over the env where x is looked up at call time, not def time")

	evalOK(t, "(def! g (let* (x 99) (fn* () x)))", env)
	v = evalOK(t, "(g)", env)
	assert.Equal(t, int64(99), *v.Number, "g must see the let*-local x, not the outer redefinition")
}

func TestVariadicBinding(t *testing.T) {
	env := rootEnvForTest(t)
	evalOK(t, "(def! f (fn* (a & rest) (cons a rest)))", env)
	v := evalOK(t, "(f 1 2 3)", env)
	assert.Equal(t, "(1 2 3)", printStrOf(v))

	v = evalOK(t, "(f 1)", env)
	assert.Equal(t, "(1)", printStrOf(v))
}

func TestTailCallDoesNotGrowStack(t *testing.T) {
	env := rootEnvForTest(t)
	evalOK(t, "(def! count-to (fn* (n acc) (if (= n 0) acc (count-to (- n 1) (+ acc 1)))))", env)
	v := evalOK(t, "(count-to 100000 0)", env)
	assert.Equal(t, int64(100000), *v.Number, "a tail-recursive loop of this depth must not overflow the Go call stack")
}

func TestMacroTransparency(t *testing.T) {
	env := rootEnvForTest(t)
	evalOK(t, "(defmacro! unless (fn* (pred a b) `(if ~pred ~b ~a)))", env)
	v := evalOK(t, "(unless false 7 8)", env)
	assert.Equal(t, int64(7), *v.Number)

	v = evalOK(t, "(macroexpand (unless false 7 8))", env)
	assert.Equal(t, "(if false 8 7)", printStrOf(v))
}

func TestQuasiquoteIdentity(t *testing.T) {
	env := rootEnvForTest(t)
	v := evalOK(t, "`(1 2 (3 4))", env)
	assert.Equal(t, "(1 2 (3 4))", printStrOf(v))

	evalOK(t, "(def! lst (list 2 3))", env)
	v = evalOK(t, "`(1 ~@lst 4)", env)
	assert.Equal(t, "(1 2 3 4)", printStrOf(v))
}

func TestTruthinessLaw(t *testing.T) {
	env := rootEnvForTest(t)
	v := evalOK(t, "(if 0 :truthy :falsey)", env)
	assert.Equal(t, "truthy", *v.Keyword, "0 is truthy, only nil and false are falsey")

	v = evalOK(t, `(if "" :truthy :falsey)`, env)
	assert.Equal(t, "truthy", *v.Keyword)

	v = evalOK(t, "(if nil :truthy :falsey)", env)
	assert.Equal(t, "falsey", *v.Keyword)

	v = evalOK(t, "(if false :truthy :falsey)", env)
	assert.Equal(t, "falsey", *v.Keyword)
}

func TestTryCatchCapturesThrow(t *testing.T) {
	env := rootEnvForTest(t)
	v := evalOK(t, `(try* (throw "boom") (catch* e e))`, env)
	assert.Equal(t, "boom", *v.Str)
}

func TestTryCatchCapturesBuiltinError(t *testing.T) {
	env := rootEnvForTest(t)
	v := evalOK(t, "(try* (nth (list 1 2) 9) (catch* e (str \"caught: \" e)))", env)
	assert.NotNil(t, v.Str)
}

func TestReservedFormsCannotBeShadowed(t *testing.T) {
	env := rootEnvForTest(t)

	ClearError()
	evalImpl(reader.ReadStr("(defmacro! if (fn* (& xs) 99))"), env)
	assert.True(t, HasAnyError(), "defmacro! must refuse to bind the reserved name if")
	ClearError()

	evalImpl(reader.ReadStr("(def! do 99)"), env)
	assert.True(t, HasAnyError(), "def! must refuse to bind the reserved name do")
	ClearError()

	// Even a macro that expands into `(if ...)` must still dispatch as the
	// special form, not be looked up again as a macro call.
	evalOK(t, "(defmacro! my-if (fn* (pred a b) `(if ~pred ~a ~b)))", env)
	v := evalOK(t, "(my-if true 1 2)", env)
	assert.Equal(t, int64(1), *v.Number)
}

func TestUndefinedSymbolErrors(t *testing.T) {
	env := rootEnvForTest(t)
	ClearError()
	ast := reader.ReadStr("nope")
	v := evalImpl(ast, env)
	assert.Nil(t, v)
	assert.True(t, HasAnyError())
	ClearError()
}

func TestNonVariadicArityMismatchErrors(t *testing.T) {
	env := rootEnvForTest(t)
	evalOK(t, "(def! f (fn* (a b) (+ a b)))", env)
	ClearError()
	ast := reader.ReadStr("(f 1 2 3)")
	v := evalImpl(ast, env)
	assert.Nil(t, v)
	assert.True(t, HasAnyError(), "extra arguments to a non-variadic function must error")
	ClearError()
}

func printStrOf(v *Value) string {
	return printer.PrintStr(v, false)
}
