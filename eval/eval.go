// Package eval implements the tail-call evaluator: the special-form
// dispatch table, the macro-expansion pass, the quasiquote rewrite, and
// try*/catch*. It is the evaluation engine everything else in this
// repository (reader, printer, core builtins, REPL) exists to give
// something to run against.
package eval

import (
	. "github.com/Riyyi/mal/types"
)

func init() {
	// Wires the builtin-installation hooks so that core's `eval`, `apply`,
	// `map` and `swap!` builtins can call back into the evaluator without
	// core importing this package.
	Eval = evalImpl
	Apply = applyImpl

	// Assigned here rather than in specialForms' declaration: the map
	// literal's function values transitively reference specialForms
	// itself (via tryReserved), which forms an initialization cycle when
	// expressed as a single var declaration.
	specialForms = map[string]func(list []*Value, env *Env) *Value{
		"def!":      sfDef,
		"defmacro!": sfDefMacro,
		"fn*":       sfFn,
		"quote":     sfQuote,
	}
}

// applyImpl calls a callable with already-evaluated arguments: a Native
// directly, a Closure by binding params and evaluating its body. Neither
// path re-evaluates the elements of args, unlike looping an application
// list back through evalImpl would.
func applyImpl(f *Value, args []*Value) *Value {
	if f.Native != nil {
		return f.Native(args)
	}
	if f.Closure != nil {
		return applyClosure(f.Closure, args)
	}
	return ThrowError("not a callable: %s", TypeName(f))
}

// specialForms holds reserved forms that are not tail-position
// rewrites: they always return a final value rather than looping. The
// tail-position forms (let*, do, if, quasiquote, try*) are handled
// directly by tryReserved below instead, so that they never grow the Go
// call stack; tryReserved also handles quasiquoteexpand and macroexpand,
// which return their result directly.
var specialForms map[string]func(list []*Value, env *Env) *Value

// reservedNames is every symbol with special-form meaning in head
// position: specialForms' keys plus the tail-position forms tryReserved
// dispatches directly, plus catch*, which only has meaning nested inside
// try*. None of these can ever be resolved as an ordinary binding, so
// def!/defmacro! refuse to bind over them (see doDef) and evalImpl never
// macro-expands a form headed by one.
var reservedNames = map[string]bool{
	"def!": true, "defmacro!": true, "fn*": true, "quote": true,
	"macroexpand": true, "quasiquote": true, "quasiquoteexpand": true,
	"let*": true, "do": true, "if": true, "try*": true, "catch*": true,
}

func isReserved(sym string) bool {
	return reservedNames[sym]
}

// tryReserved dispatches list as a reserved special form headed by sym.
// handled reports whether sym was reserved at all; callers fall through
// to ordinary application (including macro expansion) when it is false.
// When handled, cont reports whether the caller should loop with
// (newAst, newEnv) rather than return result directly.
func tryReserved(sym string, list []*Value, env *Env) (result *Value, newAst *Value, newEnv *Env, cont bool, handled bool) {
	switch sym {
	case "macroexpand":
		if len(list) != 2 {
			return ThrowError("wrong argument count: macroexpand takes 1 argument, got %d", len(list)-1), nil, nil, false, true
		}
		return macroExpand(list[1], env), nil, nil, false, true

	case "quasiquote":
		if len(list) != 2 {
			return ThrowError("wrong argument count: quasiquote takes 1 argument, got %d", len(list)-1), nil, nil, false, true
		}
		return nil, quasiquote(list[1]), env, true, true

	case "quasiquoteexpand":
		if len(list) != 2 {
			return ThrowError("wrong argument count: quasiquoteexpand takes 1 argument, got %d", len(list)-1), nil, nil, false, true
		}
		return quasiquote(list[1]), nil, nil, false, true

	case "let*":
		na, ne := evalLetStar(list, env)
		if HasAnyError() {
			return nil, nil, nil, false, true
		}
		return nil, na, ne, true, true

	case "do":
		if len(list) < 2 {
			return ThrowError("wrong argument count: do takes at least 1 argument"), nil, nil, false, true
		}
		body := list[1 : len(list)-1]
		evalList(body, env)
		if HasAnyError() {
			return nil, nil, nil, false, true
		}
		return nil, list[len(list)-1], env, true, true

	case "if":
		na := evalIf(list, env)
		if HasAnyError() {
			return nil, nil, nil, false, true
		}
		return nil, na, env, true, true

	case "try*":
		na, ne, res, isTail := evalTry(list, env)
		if !isTail {
			return res, nil, nil, false, true
		}
		return nil, na, ne, true, true
	}

	if sf, ok := specialForms[sym]; ok {
		return sf(list, env), nil, nil, false, true
	}

	return nil, nil, nil, false, false
}

// evalImpl is the trampoline: it repeatedly rewrites ast/env in place for
// every tail-reducible form, recursing only for genuinely nested
// sub-evaluations (argument evaluation, native calls).
func evalImpl(ast *Value, env *Env) *Value {
	for {
		if HasAnyError() {
			return nil
		}

		if ast.List == nil {
			return evalAst(ast, env)
		}

		list := *ast.List
		if len(list) == 0 {
			return ast
		}

		if sym, ok := headSymbol(list); ok {
			// Reserved forms dispatch before macro expansion is even
			// attempted: a user macro can never shadow if/do/let*/etc.
			if isReserved(sym) {
				result, newAst, newEnv, cont, _ := tryReserved(sym, list, env)
				if HasAnyError() {
					return nil
				}
				if cont {
					ast, env = newAst, newEnv
					continue
				}
				return result
			}

			ast = macroExpand(ast, env)
			if HasAnyError() {
				return nil
			}
			if ast.List == nil {
				return evalAst(ast, env)
			}
			list = *ast.List
			if len(list) == 0 {
				return ast
			}

			// A macro may have expanded into a reserved form (e.g. a macro
			// whose body is `if`); check again before applying it.
			if sym, ok := headSymbol(list); ok && isReserved(sym) {
				result, newAst, newEnv, cont, _ := tryReserved(sym, list, env)
				if HasAnyError() {
					return nil
				}
				if cont {
					ast, env = newAst, newEnv
					continue
				}
				return result
			}
		}

		evald := evalAst(ast, env)
		if HasAnyError() {
			return nil
		}

		elist := *evald.List
		head := elist[0]
		if !IsCallable(head) {
			return ThrowError("not a callable: %s", TypeName(head))
		}

		if head.Native != nil {
			return head.Native(elist[1:])
		}

		body, newEnv := callHelper(head.Closure, elist[1:])
		if HasAnyError() {
			return nil
		}
		ast, env = body, newEnv
		// Tail call: loop instead of recursing.
	}
}

func headSymbol(list []*Value) (string, bool) {
	if list[0].Symbol == nil {
		return "", false
	}
	return *list[0].Symbol, true
}

// evalAst implements the non-list evaluation rules.
func evalAst(ast *Value, env *Env) *Value {
	switch {
	case ast.Symbol != nil:
		return env.Get(*ast.Symbol)

	case ast.List != nil:
		evald := evalList(*ast.List, env)
		if HasAnyError() {
			return nil
		}
		return NewListFromSlice(evald)

	case ast.Vector != nil:
		evald := evalList(*ast.Vector, env)
		if HasAnyError() {
			return nil
		}
		return NewVectorFromSlice(evald)

	case ast.HashMap != nil:
		out := NewHashMap()
		for k, v := range ast.HashMap.Data {
			nv := evalImpl(v, env)
			if HasAnyError() {
				return nil
			}
			out.Data[k] = nv
		}
		return &Value{HashMap: out}

	default:
		return ast
	}
}

func evalList(list []*Value, env *Env) []*Value {
	ret := make([]*Value, 0, len(list))
	for _, expr := range list {
		v := evalImpl(expr, env)
		if HasAnyError() {
			return nil
		}
		ret = append(ret, v)
	}
	return ret
}

// isMacroCall reports whether ast is a list headed by a symbol bound to a
// Macro closure in env.
func isMacroCall(ast *Value, env *Env) bool {
	if ast.List == nil || len(*ast.List) == 0 {
		return false
	}
	sym, ok := headSymbol(*ast.List)
	if !ok {
		return false
	}
	m := env.Find(sym)
	return m != nil && m.Closure != nil && m.Closure.IsMacro
}

// macroExpand repeatedly applies the head macro to ast's unevaluated
// tail until the head is no longer a macro call. Used both inline (every
// iteration of evalImpl) and by the `macroexpand` special form (applied
// once each, driven to a fixed point like eval's own pass, so
// macroexpand and the live expansion path never disagree).
func macroExpand(ast *Value, env *Env) *Value {
	for isMacroCall(ast, env) {
		list := *ast.List
		sym, _ := headSymbol(list)
		macro := env.Get(sym)
		if HasAnyError() {
			return nil
		}
		ast = applyClosure(macro.Closure, list[1:])
		if HasAnyError() {
			return nil
		}
	}
	return ast
}

// callHelper builds the environment for a Lambda/Macro application,
// binding parameters (including the variadic tail), and
// returns the body to evaluate next plus that environment. It never
// evaluates the body itself, so callers can tail-call it.
func callHelper(c *Closure, args []*Value) (*Value, *Env) {
	newEnv, errVal := BindEnv(c.Env, c.Params, c.Variadic, args)
	if errVal != nil {
		return nil, nil
	}
	return c.Body, newEnv
}

// applyClosure evaluates a closure application to completion (not a tail
// call): used by macro expansion, where the result becomes new syntax to
// re-enter the loop with, not a value to return directly.
func applyClosure(c *Closure, args []*Value) *Value {
	body, newEnv := callHelper(c, args)
	if HasAnyError() {
		return nil
	}
	return evalImpl(body, newEnv)
}
