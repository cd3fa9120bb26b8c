package types

import "fmt"

// ErrorKind discriminates the three variants of the process-wide error
// channel: a malformed token from the reader, a plain message from
// anywhere in the evaluator or builtins, or an arbitrary Value raised by
// the `throw` builtin.
type ErrorKind int

const (
	NoError ErrorKind = iota
	TokenErrorKind
	OtherErrorKind
	ExceptionKind
)

// errorChannel is the single active error, if any. At most one is active
// at a time; setting a new one before clearing an existing one is a
// program bug, so every Throw* here overwrites unconditionally rather
// than trying to detect that misuse.
var errorChannel struct {
	kind    ErrorKind
	message string
	value   *Value
}

// ThrowError sets the OtherError variant from a formatted message and
// returns nil, so call sites can write `return ThrowError(...)`.
func ThrowError(format string, args ...interface{}) *Value {
	errorChannel.kind = OtherErrorKind
	errorChannel.message = fmt.Sprintf(format, args...)
	errorChannel.value = nil
	return nil
}

// ThrowToken sets the TokenError variant, for reader-level failures.
func ThrowToken(format string, args ...interface{}) *Value {
	errorChannel.kind = TokenErrorKind
	errorChannel.message = fmt.Sprintf(format, args...)
	errorChannel.value = nil
	return nil
}

// ThrowException sets the Exception variant to an arbitrary Value, for
// the `throw` builtin.
func ThrowException(val *Value) *Value {
	errorChannel.kind = ExceptionKind
	errorChannel.value = val
	errorChannel.message = ""
	return nil
}

// HasAnyError reports whether any variant is currently active.
func HasAnyError() bool {
	return errorChannel.kind != NoError
}

// HasOtherError reports whether the active error is the OtherError variant.
func HasOtherError() bool {
	return errorChannel.kind == OtherErrorKind
}

// HasTokenError reports whether the active error is the TokenError variant.
func HasTokenError() bool {
	return errorChannel.kind == TokenErrorKind
}

// HasException reports whether the active error is the Exception variant.
func HasException() bool {
	return errorChannel.kind == ExceptionKind
}

// ErrorKindActive returns which variant, if any, is currently active.
func ErrorKindActive() ErrorKind {
	return errorChannel.kind
}

// ErrorValue returns a Value representing the active error, for `try*`'s
// catch clause and for the REPL's top-level error rendering: the thrown
// Value itself for an Exception, or a String wrapping the message for
// TokenError/OtherError. Returns nil if no error is active.
func ErrorValue() *Value {
	switch errorChannel.kind {
	case ExceptionKind:
		return errorChannel.value
	case TokenErrorKind, OtherErrorKind:
		return NewString(errorChannel.message)
	default:
		return nil
	}
}

// ClearError resets the channel to inactive. The only legitimate
// recovery point in the evaluator is try*/catch*; the REPL clears it at
// the top-level boundary before reading the next input.
func ClearError() {
	errorChannel.kind = NoError
	errorChannel.message = ""
	errorChannel.value = nil
}
