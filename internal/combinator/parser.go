// Package combinator implements a minimal parser-combinator library.
//
// A Parser[T] is a pure function from an input string to a typed value,
// the unconsumed suffix of the input, and a success flag. Parsers are
// first-class values: they can be stored, passed around and combined with
// Bind, Map, Filter and Or into larger parsers. Failure carries no
// payload — no position, no message — a failed parse is just ok == false.
package combinator

// Parser consumes a prefix of the input and produces a typed value plus
// the remaining input, or fails. The remaining input is always a suffix
// of the original string; a parser never mutates what it is given. On
// failure the returned rest is the untouched original input, which is
// what lets Or retry the right alternative for free.
type Parser[T any] func(input string) (value T, rest string, ok bool)

// Parse runs the parser against input. It exists for readability at call
// sites; p.Parse(s) and p(s) are the same thing.
func (p Parser[T]) Parse(input string) (T, string, bool) {
	return p(input)
}

// Unit returns a parser that always succeeds with v, consuming no input.
func Unit[T any](v T) Parser[T] {
	return func(input string) (T, string, bool) {
		return v, input, true
	}
}

// Fail returns a parser that fails on any input.
func Fail[T any]() Parser[T] {
	return func(input string) (value T, rest string, ok bool) {
		return value, input, false
	}
}

// Bind sequences two parsers, the second depending on the first's result.
// If p fails, f is never invoked and the failure propagates. If p
// succeeds, f is applied to the value and the resulting parser runs on
// the remaining input. Input consumed by p is never re-examined by
// alternatives tried at an outer level.
//
// Bind and Map are free functions because Go methods cannot introduce
// new type parameters.
func Bind[A, B any](p Parser[A], f func(A) Parser[B]) Parser[B] {
	return func(input string) (value B, rest string, ok bool) {
		a, rest, ok := p(input)
		if !ok {
			return value, input, false
		}
		b, rest, ok := f(a)(rest)
		if !ok {
			return value, input, false
		}
		return b, rest, true
	}
}

// Map transforms the result of a parser, leaving consumption untouched.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(input string) (value B, rest string, ok bool) {
		a, rest, ok := p(input)
		if !ok {
			return value, input, false
		}
		return f(a), rest, true
	}
}

// Filter succeeds with p's result only if pred holds on the parsed
// value; otherwise the whole parse fails, discarding p's success.
func (p Parser[T]) Filter(pred func(T) bool) Parser[T] {
	return func(input string) (value T, rest string, ok bool) {
		v, rest, ok := p(input)
		if !ok || !pred(v) {
			return value, input, false
		}
		return v, rest, true
	}
}

// Or is the ordered alternative. The left parser runs first; if it
// succeeds its result is returned and q is never invoked. If it fails,
// q runs against the original input — not against whatever the failed
// attempt consumed — and its outcome is returned verbatim.
func (p Parser[T]) Or(q Parser[T]) Parser[T] {
	return func(input string) (T, string, bool) {
		if v, rest, ok := p(input); ok {
			return v, rest, true
		}
		return q(input)
	}
}
