package eval

import (
	. "github.com/Riyyi/mal/types"
)

// sfDef implements `def! sym expr`: evaluate expr, bind
// sym in the current env, return the value. On error, env is left
// untouched because Set is only reached after the error check.
func sfDef(list []*Value, env *Env) *Value {
	return doDef(list, env, "def!")
}

// sfDefMacro implements `defmacro! sym expr`: like def!, but the
// evaluated expr must be a Lambda, which is then wrapped as a Macro
// ("identical shape to Lambda but marked so application
// semantics differ").
func sfDefMacro(list []*Value, env *Env) *Value {
	v := doDef(list, env, "defmacro!")
	if HasAnyError() {
		return nil
	}
	if v.Closure == nil {
		return ThrowError("defmacro!: expected a function, got %s", TypeName(v))
	}
	v.Closure.IsMacro = true
	return v
}

func doDef(list []*Value, env *Env, form string) *Value {
	if len(list) != 3 {
		return ThrowError("wrong argument count: %s takes 2 arguments, got %d", form, len(list)-1)
	}
	if list[1].Symbol == nil {
		return ThrowError("%s: first argument must be a symbol", form)
	}
	if isReserved(*list[1].Symbol) {
		return ThrowError("%s: cannot bind reserved name %s", form, *list[1].Symbol)
	}

	value := evalImpl(list[2], env)
	if HasAnyError() {
		return nil
	}
	if form == "defmacro!" {
		if value.Closure == nil {
			return ThrowError("defmacro!: expected a function, got %s", TypeName(value))
		}
		macro := *value.Closure
		macro.IsMacro = true
		value = &Value{Closure: &macro}
	}

	env.Set(*list[1].Symbol, value)
	return value
}

// sfFn implements `fn* params body`: build a Lambda
// capturing env. params is a List or Vector of Symbols; a literal `&`
// declares the following symbol as the variadic rest-binder.
func sfFn(list []*Value, env *Env) *Value {
	if len(list) != 3 {
		return ThrowError("wrong argument count: fn* takes 2 arguments, got %d", len(list)-1)
	}

	paramForms, ok := IsSequence(list[1])
	if !ok {
		return ThrowError("fn*: parameter list must be a list or vector")
	}

	c := &Closure{Env: env, Body: list[2]}
	for i, p := range paramForms {
		if p.Symbol == nil {
			return ThrowError("fn*: parameter must be a symbol")
		}
		if *p.Symbol == "&" {
			if i != len(paramForms)-2 {
				return ThrowError("fn*: exactly one parameter must follow '&'")
			}
			tail := paramForms[i+1]
			if tail.Symbol == nil {
				return ThrowError("fn*: variadic parameter must be a symbol")
			}
			c.Variadic = *tail.Symbol
			break
		}
		c.Params = append(c.Params, *p.Symbol)
	}
	return &Value{Closure: c}
}

// sfQuote implements `quote x`: return x unevaluated.
func sfQuote(list []*Value, env *Env) *Value {
	if len(list) != 2 {
		return ThrowError("wrong argument count: quote takes 1 argument, got %d", len(list)-1)
	}
	return list[1]
}

// evalLetStar implements `let* bindings body`: bindings
// pairs are bound sequentially into a fresh child env, in which body is
// then tail-called.
func evalLetStar(list []*Value, env *Env) (*Value, *Env) {
	if len(list) != 3 {
		return ThrowError("wrong argument count: let* takes 2 arguments, got %d", len(list)-1), nil
	}

	bindingForms, ok := IsSequence(list[1])
	if !ok {
		return ThrowError("let*: first argument must be a list or vector of bindings"), nil
	}
	if len(bindingForms)%2 != 0 {
		return ThrowError("let*: bindings must come in pairs; found %d forms", len(bindingForms)), nil
	}

	letEnv := NewEnv(env)
	for i := 0; i < len(bindingForms); i += 2 {
		if bindingForms[i].Symbol == nil {
			return ThrowError("let*: binding name must be a symbol"), nil
		}
		name := *bindingForms[i].Symbol
		value := evalImpl(bindingForms[i+1], letEnv)
		if HasAnyError() {
			return nil, nil
		}
		letEnv.Set(name, value)
	}

	return list[2], letEnv
}

// evalIf implements `if c t [f]`, returning the branch to
// tail-call next.
func evalIf(list []*Value, env *Env) *Value {
	if len(list) != 3 && len(list) != 4 {
		return ThrowError("wrong argument count: if takes 2 or 3 arguments, got %d", len(list)-1)
	}

	cond := evalImpl(list[1], env)
	if HasAnyError() {
		return nil
	}

	if IsTruthy(cond) {
		return list[2]
	}
	if len(list) == 4 {
		return list[3]
	}
	return Nil
}

// evalTry implements `try* x [(catch* s h)]`. When the
// protected form succeeds or there is no catch clause to run, it returns
// (nil, nil, result, false) — a final value. When a catch clause is
// eligible, it returns (handler, catchEnv, nil, true) for the caller to
// tail-call.
func evalTry(list []*Value, env *Env) (*Value, *Env, *Value, bool) {
	if len(list) != 2 && len(list) != 3 {
		return nil, nil, ThrowError("wrong argument count: try* takes 1 or 2 arguments, got %d", len(list)-1), false
	}

	result := evalImpl(list[1], env)
	if !HasAnyError() {
		return nil, nil, result, false
	}
	if len(list) == 2 {
		// No catch clause: propagate, leaving the error channel set.
		return nil, nil, nil, false
	}

	clauseForms, ok := IsSequence(list[2])
	if !ok || len(clauseForms) != 3 {
		return nil, nil, ThrowError("try*: catch clause must be (catch* binding handler)"), false
	}
	if clauseForms[0].Symbol == nil || *clauseForms[0].Symbol != "catch*" {
		return nil, nil, ThrowError("try*: catch clause must begin with catch*"), false
	}
	if clauseForms[1].Symbol == nil {
		return nil, nil, ThrowError("try*: catch binding must be a symbol"), false
	}

	errVal := ErrorValue()
	ClearError()

	catchEnv := NewEnv(env)
	catchEnv.Set(*clauseForms[1].Symbol, errVal)

	return clauseForms[2], catchEnv, nil, true
}
