// Package core is the builtin function library: it populates a root
// environment with native Function bindings before the evaluator runs
// any user code, via the installation hook in package types. Covers the
// full value universe (vectors, hash-maps, keywords) and the
// meta-circular `eval`/`apply` builtins via the types.Eval hook.
package core

import (
	"fmt"
	"os"

	"github.com/Riyyi/mal/printer"
	"github.com/Riyyi/mal/reader"
	. "github.com/Riyyi/mal/types"
)

// rootEnv is stashed so `eval` can evaluate against the top-level
// environment regardless of the lexical env its caller happens to be in.
var rootEnv *Env

// ns is the table of names PopulateEnv installs. Kept as a package-level
// map literal rather than a builder function, since every entry is a
// fixed native with no construction-time state.
var ns = map[string]Native{
	"+": plus,
	"-": minus,
	"*": times,
	"/": div,

	"=":  equal,
	"<":  lt,
	"<=": lte,
	">":  gt,
	">=": gte,

	"list":   mkList,
	"list?":  listQ,
	"empty?": emptyQ,
	"count":  count,
	"cons":   cons,
	"concat": concat,
	"nth":    nth,
	"first":  first,
	"rest":   rest,
	"conj":   conj,
	"seq":    seq,
	"map":    mapFn,
	"apply":  apply,

	"vector":  vector,
	"vector?": vectorQ,
	"vec":     vec,

	"hash-map":  hashMap,
	"map?":      mapQ,
	"assoc":     assoc,
	"dissoc":    dissoc,
	"get":       get,
	"contains?": containsQ,
	"keys":      keys,
	"vals":      vals,

	"keyword":  keyword,
	"keyword?": keywordQ,

	"nil?":    nilQ,
	"true?":   trueQ,
	"false?":  falseQ,
	"symbol":  symbolFn,
	"symbol?": symbolQ,
	"string?": stringQ,
	"number?": numberQ,
	"fn?":     fnQ,
	"macro?":  macroQ,

	"pr-str":  prStr,
	"str":     strFn,
	"prn":     prn,
	"println": printlnFn,

	"read-string": readString,
	"slurp":       slurp,
	"eval":        evalBuiltin,

	"atom":   atom,
	"atom?":  atomQ,
	"deref":  deref,
	"reset!": atomReset,
	"swap!":  atomSwap,

	"throw": throwFn,
}

// PopulateEnv installs every builtin in ns as a Native Value bound in
// env, and remembers env as the root for the `eval` builtin. This is the
// population routine that must run once before evaluation begins.
func PopulateEnv(env *Env) {
	rootEnv = env
	for name, fn := range ns {
		env.Set(name, &Value{Native: fn})
	}
}

// Bootstrap is a short program written in the language itself, evaluated
// against the root environment right after PopulateEnv. `load-file`'s
// "(do ...)" wrapping trick turns a file's top-level forms into one
// evaluable expression, reusing `eval`/`read-string`/`slurp` instead of
// adding a dedicated file-loading special form.
var Bootstrap = []string{
	`(def! not (fn* (a) (if a false true)))`,
	`(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) ")")))))`,
	`(def! *ARGV* (list))`,
	`(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond")) (cons 'cond (rest (rest xs)))))))`,
	`(defmacro! or (fn* (& xs) (if (empty? xs) nil (if (= 1 (count xs)) (first xs) ` + "`" + `(let* (or_inner ~(first xs)) (if or_inner or_inner (or ~@(rest xs))))))))`,
}

// Arithmetic.

func plus(args []*Value) *Value {
	x, y, err := prepNumbers(args, "+")
	if err != nil {
		return nil
	}
	return NewNumber(x + y)
}

func minus(args []*Value) *Value {
	x, y, err := prepNumbers(args, "-")
	if err != nil {
		return nil
	}
	return NewNumber(x - y)
}

func times(args []*Value) *Value {
	x, y, err := prepNumbers(args, "*")
	if err != nil {
		return nil
	}
	return NewNumber(x * y)
}

func div(args []*Value) *Value {
	x, y, err := prepNumbers(args, "/")
	if err != nil {
		return nil
	}
	if y == 0 {
		return ThrowError("division by zero")
	}
	return NewNumber(x / y)
}

func prepNumbers(args []*Value, op string) (int64, int64, error) {
	if len(args) != 2 {
		ThrowError("wrong argument count: %s expects 2 arguments, got %d", op, len(args))
		return 0, 0, fmt.Errorf("arity")
	}
	if args[0].Number == nil || args[1].Number == nil {
		ThrowError("%s: arguments must be numbers", op)
		return 0, 0, fmt.Errorf("type")
	}
	return *args[0].Number, *args[1].Number, nil
}

// Comparison.

func lt(args []*Value) *Value  { return numCompare(args, "<", func(x, y int64) bool { return x < y }) }
func lte(args []*Value) *Value { return numCompare(args, "<=", func(x, y int64) bool { return x <= y }) }
func gt(args []*Value) *Value  { return numCompare(args, ">", func(x, y int64) bool { return x > y }) }
func gte(args []*Value) *Value { return numCompare(args, ">=", func(x, y int64) bool { return x >= y }) }

func numCompare(args []*Value, op string, cmp func(x, y int64) bool) *Value {
	x, y, err := prepNumbers(args, op)
	if err != nil {
		return nil
	}
	return NewBool(cmp(x, y))
}

func equal(args []*Value) *Value {
	if len(args) != 2 {
		return ThrowError("wrong argument count: = expects 2 arguments, got %d", len(args))
	}
	return NewBool(valuesEqual(args[0], args[1]))
}

func valuesEqual(x, y *Value) bool {
	switch {
	case x.Number != nil && y.Number != nil:
		return *x.Number == *y.Number
	case x.Str != nil && y.Str != nil:
		return *x.Str == *y.Str
	case x.Keyword != nil && y.Keyword != nil:
		return *x.Keyword == *y.Keyword
	case x.Symbol != nil && y.Symbol != nil:
		return *x.Symbol == *y.Symbol
	case x == Nil || x == True || x == False || y == Nil || y == True || y == False:
		return x == y
	}

	xSeq, xIsSeq := IsSequence(x)
	ySeq, yIsSeq := IsSequence(y)
	if xIsSeq && yIsSeq {
		if len(xSeq) != len(ySeq) {
			return false
		}
		for i := range xSeq {
			if !valuesEqual(xSeq[i], ySeq[i]) {
				return false
			}
		}
		return true
	}

	if x.HashMap != nil && y.HashMap != nil {
		if len(x.HashMap.Data) != len(y.HashMap.Data) {
			return false
		}
		for k, v := range x.HashMap.Data {
			ov, ok := y.HashMap.Data[k]
			if !ok || !valuesEqual(v, ov) {
				return false
			}
		}
		return true
	}

	if x.Closure != nil && y.Closure != nil {
		return x.Closure == y.Closure
	}
	if x.Atom != nil && y.Atom != nil {
		return x == y
	}

	return false // Native functions and cross-type comparisons are never equal.
}

// I/O.

func prStr(args []*Value) *Value {
	return NewString(printer.PrintSeq(args, true, " "))
}

func strFn(args []*Value) *Value {
	return NewString(printer.PrintSeq(args, false, ""))
}

func prn(args []*Value) *Value {
	fmt.Println(printer.PrintSeq(args, true, " "))
	return Nil
}

func printlnFn(args []*Value) *Value {
	fmt.Println(printer.PrintSeq(args, false, " "))
	return Nil
}

func readString(args []*Value) *Value {
	if len(args) != 1 || args[0].Str == nil {
		return ThrowError("read-string expects a single string argument")
	}
	return reader.ReadStr(*args[0].Str)
}

func slurp(args []*Value) *Value {
	if len(args) != 1 || args[0].Str == nil {
		return ThrowError("slurp expects a single filename argument")
	}
	contents, err := os.ReadFile(*args[0].Str)
	if err != nil {
		return ThrowError("slurp: %v", err)
	}
	return NewString(string(contents))
}

func evalBuiltin(args []*Value) *Value {
	if len(args) != 1 {
		return ThrowError("eval expects a single argument")
	}
	return Eval(args[0], rootEnv)
}

// throwFn records its single argument into the error channel as the
// Exception variant.
func throwFn(args []*Value) *Value {
	if len(args) != 1 {
		return ThrowError("throw expects a single argument")
	}
	return ThrowException(args[0])
}
