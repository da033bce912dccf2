package combinator

import "unicode/utf8"

// AnyChar matches any single character. It fails only on empty input;
// otherwise it succeeds with the first rune and the remaining suffix.
func AnyChar() Parser[rune] {
	return func(input string) (rune, string, bool) {
		if input == "" {
			return 0, input, false
		}
		r, size := utf8.DecodeRuneInString(input)
		return r, input[size:], true
	}
}

// Satisfy matches a single character for which pred holds. On empty
// input it fails via the underlying AnyChar.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return AnyChar().Filter(pred)
}

// Char matches exactly the character c.
func Char(c rune) Parser[rune] {
	return Satisfy(func(r rune) bool { return r == c })
}

// Many applies p zero or more times and collects the results in order.
// It never fails; if p fails immediately, Many succeeds with an empty
// slice and consumes nothing.
//
// Precondition for Many and Many1: p must either fail or consume at
// least one character on every application. A parser that succeeds on
// zero input makes the repetition loop forever. This is not checked at
// runtime.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Many1(p).Or(Unit([]T{}))
}

// Many1 applies p one or more times. It fails iff the first application
// of p fails; afterwards it stops at the first failure, keeping what
// already matched.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Bind(p, func(first T) Parser[[]T] {
		// Many(p) is rebuilt inside the continuation so the mutual
		// recursion happens at parse time, not at construction time.
		return Map(Many(p), func(rest []T) []T {
			return append([]T{first}, rest...)
		})
	})
}
