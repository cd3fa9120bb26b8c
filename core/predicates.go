package core

import (
	. "github.com/Riyyi/mal/types"
)

// Keywords.

func keyword(args []*Value) *Value {
	if len(args) != 1 {
		return ThrowError("keyword expects a single argument")
	}
	if args[0].Keyword != nil {
		return args[0]
	}
	if args[0].Str == nil {
		return ThrowError("keyword expects a string or keyword argument")
	}
	return NewKeyword(*args[0].Str)
}

func keywordQ(args []*Value) *Value {
	return NewBool(len(args) == 1 && args[0].Keyword != nil)
}

// Symbols.

func symbolFn(args []*Value) *Value {
	if len(args) != 1 || args[0].Str == nil {
		return ThrowError("symbol expects a single string argument")
	}
	return NewSymbol(*args[0].Str)
}

func symbolQ(args []*Value) *Value {
	return NewBool(len(args) == 1 && args[0].Symbol != nil)
}

// Type predicates.

func nilQ(args []*Value) *Value {
	return NewBool(len(args) == 1 && args[0] == Nil)
}

func trueQ(args []*Value) *Value {
	return NewBool(len(args) == 1 && args[0] == True)
}

func falseQ(args []*Value) *Value {
	return NewBool(len(args) == 1 && args[0] == False)
}

func stringQ(args []*Value) *Value {
	return NewBool(len(args) == 1 && args[0].Str != nil)
}

func numberQ(args []*Value) *Value {
	return NewBool(len(args) == 1 && args[0].Number != nil)
}

func fnQ(args []*Value) *Value {
	return NewBool(len(args) == 1 && IsCallable(args[0]) && !(args[0].Closure != nil && args[0].Closure.IsMacro))
}

func macroQ(args []*Value) *Value {
	return NewBool(len(args) == 1 && args[0].Closure != nil && args[0].Closure.IsMacro)
}
