package eval

import (
	. "github.com/Riyyi/mal/types"
)

// quasiquote implements the pure syntactic rewrite: walk the form,
// leave it alone except where unquote/splice-unquote appear, and rebuild
// the rest as nested cons/concat calls so the result regenerates the
// original structure when evaluated.
func quasiquote(ast *Value) *Value {
	if ast.HashMap != nil || ast.Symbol != nil {
		return NewList(NewSymbol("quote"), ast)
	}

	elems, isSeq := IsSequence(ast)
	if !isSeq {
		return ast // Literals self-quote.
	}
	isVector := ast.Vector != nil

	// Top-level `~x` or `~@x` outside a surrounding collection: only
	// meaningful when ast is itself the two-element list (unquote x) /
	// (splice-unquote x).
	if !isVector {
		if target, ok := formHead(elems, "unquote"); ok {
			return target
		}
		if target, ok := formHead(elems, "splice-unquote"); ok {
			return target
		}
	}

	result := NewList()
	for i := len(elems) - 1; i >= 0; i-- {
		elem := elems[i]
		if target, ok := listFormHead(elem, "splice-unquote"); ok {
			result = NewList(NewSymbol("concat"), target, result)
			continue
		}
		result = NewList(NewSymbol("cons"), quasiquote(elem), result)
	}

	if isVector {
		return NewList(NewSymbol("vec"), result)
	}
	return result
}

// formHead reports whether elems is exactly (sym x), returning x.
func formHead(elems []*Value, sym string) (*Value, bool) {
	if len(elems) != 2 || elems[0].Symbol == nil || *elems[0].Symbol != sym {
		return nil, false
	}
	return elems[1], true
}

// listFormHead is formHead specialized to "v is a List of the given
// two-element shape", used when checking an arbitrary sequence element
// (which might not be a list at all).
func listFormHead(v *Value, sym string) (*Value, bool) {
	if v.List == nil {
		return nil, false
	}
	return formHead(*v.List, sym)
}
