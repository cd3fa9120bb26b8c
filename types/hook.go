package types

// Eval is the builtin-installation hook: package eval's init() assigns
// this to its own evaluator (evalImpl) once, before the REPL runs any user
// code. It exists so that core's `eval` builtin can call back into the
// evaluator without types (or core) importing the eval package and
// creating an import cycle — eval already imports types for the
// Value/Env/error-channel definitions.
var Eval func(ast *Value, env *Env) *Value

// Apply calls a callable Value (Native or Closure) with already-evaluated
// arguments, without evaluating them again. It exists for the same
// reason as Eval: so core's `apply`, `map`, and `swap!` builtins can
// invoke a user function without re-entering the evaluator's own
// argument-evaluation step, which would incorrectly evaluate values that
// merely look like code (a list, a symbol) a second time.
var Apply func(f *Value, args []*Value) *Value
