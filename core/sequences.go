package core

import (
	. "github.com/Riyyi/mal/types"
)

// Lists.

func mkList(args []*Value) *Value {
	return NewListFromSlice(append([]*Value{}, args...))
}

func listQ(args []*Value) *Value {
	return NewBool(len(args) == 1 && args[0].List != nil)
}

func emptyQ(args []*Value) *Value {
	elems, ok := sequenceArg(args, "empty?")
	if !ok {
		return nil
	}
	return NewBool(len(elems) == 0)
}

func count(args []*Value) *Value {
	if len(args) != 1 {
		return ThrowError("count expects a single argument")
	}
	if args[0] == Nil {
		return NewNumber(0)
	}
	elems, ok := IsSequence(args[0])
	if !ok {
		return ThrowError("count: expected a list or vector, got %s", TypeName(args[0]))
	}
	return NewNumber(int64(len(elems)))
}

func cons(args []*Value) *Value {
	if len(args) != 2 {
		return ThrowError("cons expects 2 arguments")
	}
	rest, ok := IsSequence(args[1])
	if !ok {
		return ThrowError("cons: second argument must be a list or vector")
	}
	out := make([]*Value, 0, len(rest)+1)
	out = append(out, args[0])
	out = append(out, rest...)
	return NewListFromSlice(out)
}

func concat(args []*Value) *Value {
	out := []*Value{}
	for _, a := range args {
		elems, ok := IsSequence(a)
		if !ok {
			return ThrowError("concat: all arguments must be lists or vectors")
		}
		out = append(out, elems...)
	}
	return NewListFromSlice(out)
}

func nth(args []*Value) *Value {
	if len(args) != 2 {
		return ThrowError("nth expects a sequence and an index")
	}
	elems, ok := IsSequence(args[0])
	if !ok || args[1].Number == nil {
		return ThrowError("nth expects a sequence and a number")
	}
	idx := *args[1].Number
	if idx < 0 || idx >= int64(len(elems)) {
		return ThrowError("nth: index out of bounds")
	}
	return elems[idx]
}

func first(args []*Value) *Value {
	if len(args) != 1 {
		return ThrowError("first expects a single argument")
	}
	if args[0] == Nil {
		return Nil
	}
	elems, ok := IsSequence(args[0])
	if !ok {
		return ThrowError("first: expected a list or vector, got %s", TypeName(args[0]))
	}
	if len(elems) == 0 {
		return Nil
	}
	return elems[0]
}

func rest(args []*Value) *Value {
	if len(args) != 1 {
		return ThrowError("rest expects a single argument")
	}
	if args[0] == Nil {
		return NewList()
	}
	elems, ok := IsSequence(args[0])
	if !ok {
		return ThrowError("rest: expected a list or vector, got %s", TypeName(args[0]))
	}
	if len(elems) == 0 {
		return NewList()
	}
	return NewListFromSlice(append([]*Value{}, elems[1:]...))
}

// conj prepends to a list, appends to a vector — matching MAL's
// asymmetric "grow from the natural end" semantics for the two sequence
// kinds.
func conj(args []*Value) *Value {
	if len(args) < 1 {
		return ThrowError("conj expects a sequence and at least one item")
	}
	if args[0].List != nil {
		elems := *args[0].List
		out := make([]*Value, 0, len(elems)+len(args)-1)
		for i := len(args) - 1; i >= 1; i-- {
			out = append(out, args[i])
		}
		out = append(out, elems...)
		return NewListFromSlice(out)
	}
	if args[0].Vector != nil {
		elems := *args[0].Vector
		out := append(append([]*Value{}, elems...), args[1:]...)
		return NewVectorFromSlice(out)
	}
	return ThrowError("conj: first argument must be a list or vector")
}

// seq converts a List, Vector, or String to a List (empty input yields
// nil, matching MAL). nil itself yields nil; any other argument is an
// error.
func seq(args []*Value) *Value {
	if len(args) != 1 {
		return ThrowError("seq expects a single argument")
	}
	v := args[0]
	if v == Nil {
		return Nil
	}
	if elems, ok := IsSequence(v); ok {
		if len(elems) == 0 {
			return Nil
		}
		return NewListFromSlice(append([]*Value{}, elems...))
	}
	if v.Str != nil {
		if len(*v.Str) == 0 {
			return Nil
		}
		chars := make([]*Value, 0, len(*v.Str))
		for _, r := range *v.Str {
			chars = append(chars, NewString(string(r)))
		}
		return NewListFromSlice(chars)
	}
	return ThrowError("seq: expected a list, vector, string, or nil")
}

func vector(args []*Value) *Value {
	return NewVectorFromSlice(append([]*Value{}, args...))
}

func vectorQ(args []*Value) *Value {
	return NewBool(len(args) == 1 && args[0].Vector != nil)
}

// vec converts a List to a Vector (or returns a Vector unchanged); used
// by the quasiquote expansion as well as directly by user code.
func vec(args []*Value) *Value {
	if len(args) != 1 {
		return ThrowError("vec expects a single argument")
	}
	if args[0].Vector != nil {
		return args[0]
	}
	elems, ok := IsSequence(args[0])
	if !ok {
		return ThrowError("vec: expected a list or vector, got %s", TypeName(args[0]))
	}
	return NewVectorFromSlice(append([]*Value{}, elems...))
}

// apply calls f with all-but-the-last argument, plus the elements of the
// last argument (which must be a sequence), spliced in. Apply hands the
// already-evaluated arguments straight to f, it never re-evaluates them.
func apply(args []*Value) *Value {
	if len(args) < 1 {
		return ThrowError("apply expects a function and arguments")
	}
	f := args[0]
	if !IsCallable(f) {
		return ThrowError("apply: %s is not callable", TypeName(f))
	}

	callArgs := []*Value{}
	if len(args) > 1 {
		callArgs = append(callArgs, args[1:len(args)-1]...)
		tail, ok := IsSequence(args[len(args)-1])
		if !ok {
			return ThrowError("apply: last argument must be a list or vector")
		}
		callArgs = append(callArgs, tail...)
	}

	return Apply(f, callArgs)
}

// mapFn applies f to each element of a sequence, returning a List of
// results. Each element is passed to f as-is, not re-evaluated.
func mapFn(args []*Value) *Value {
	if len(args) != 2 {
		return ThrowError("map expects a function and a sequence")
	}
	f := args[0]
	if !IsCallable(f) {
		return ThrowError("map: %s is not callable", TypeName(f))
	}
	elems, ok := IsSequence(args[1])
	if !ok {
		return ThrowError("map: second argument must be a list or vector")
	}

	out := make([]*Value, len(elems))
	for i, e := range elems {
		result := Apply(f, []*Value{e})
		if HasAnyError() {
			return nil
		}
		out[i] = result
	}
	return NewListFromSlice(out)
}

func sequenceArg(args []*Value, name string) ([]*Value, bool) {
	if len(args) != 1 {
		ThrowError("%s expects a single argument", name)
		return nil, false
	}
	elems, ok := IsSequence(args[0])
	if !ok {
		ThrowError("%s: expected a list or vector, got %s", name, TypeName(args[0]))
		return nil, false
	}
	return elems, true
}
