package core

import (
	. "github.com/Riyyi/mal/types"
)

// Atoms are the one mutable Value: a cell whose Atom field is swapped in
// place, so every *Value that shares the same atom node observes the new
// contents.

func atom(args []*Value) *Value {
	if len(args) != 1 {
		return ThrowError("atom expects a single argument")
	}
	return &Value{Atom: args[0]}
}

func atomQ(args []*Value) *Value {
	return NewBool(len(args) == 1 && args[0].Atom != nil)
}

func deref(args []*Value) *Value {
	if len(args) != 1 {
		return ThrowError("deref expects a single argument")
	}
	if args[0].Atom == nil {
		return ThrowError("deref: expected an atom, got %s", TypeName(args[0]))
	}
	return args[0].Atom
}

func atomReset(args []*Value) *Value {
	if len(args) != 2 {
		return ThrowError("reset! expects an atom and a value")
	}
	if args[0].Atom == nil {
		return ThrowError("reset!: first argument must be an atom")
	}
	args[0].Atom = args[1]
	return args[1]
}

func atomSwap(args []*Value) *Value {
	if len(args) < 2 {
		return ThrowError("swap! expects an atom, a function, and any extra arguments")
	}
	if args[0].Atom == nil {
		return ThrowError("swap!: first argument must be an atom")
	}
	f := args[1]
	if !IsCallable(f) {
		return ThrowError("swap!: %s is not callable", TypeName(f))
	}

	callArgs := append([]*Value{args[0].Atom}, args[2:]...)
	val := Apply(f, callArgs)
	if HasAnyError() {
		return nil
	}
	args[0].Atom = val
	return val
}
