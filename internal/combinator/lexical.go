package combinator

import "strconv"

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Digit matches a single ASCII digit.
func Digit() Parser[rune] {
	return Satisfy(isDigit)
}

// Natural matches one or more digits and yields their numeric value.
// The result is a float64 so integer and floating literals feed the
// same grammar rule.
func Natural() Parser[float64] {
	return Map(Many1(Digit()), runesToFloat)
}

// Float matches digits, a literal '.', and more digits. It fails if the
// decimal point or the digits on either side of it are missing.
func Float() Parser[float64] {
	return Bind(Many1(Digit()), func(whole []rune) Parser[float64] {
		return Bind(Char('.'), func(point rune) Parser[float64] {
			return Map(Many1(Digit()), func(frac []rune) float64 {
				lexeme := append(append(append([]rune{}, whole...), point), frac...)
				return runesToFloat(lexeme)
			})
		})
	})
}

// Spaces skips zero or more space characters. It always succeeds and
// the skipped run is discarded.
func Spaces() Parser[struct{}] {
	return Map(Many(Char(' ')), func([]rune) struct{} {
		return struct{}{}
	})
}

// Lexeme makes p insensitive to surrounding blank space: it skips
// spaces, runs p, skips spaces again, and yields p's value.
func Lexeme[T any](p Parser[T]) Parser[T] {
	return Bind(Spaces(), func(struct{}) Parser[T] {
		return Bind(p, func(v T) Parser[T] {
			return Map(Spaces(), func(struct{}) T {
				return v
			})
		})
	})
}

// Symbol matches the character c as a lexeme.
func Symbol(c rune) Parser[rune] {
	return Lexeme(Char(c))
}

func runesToFloat(rs []rune) float64 {
	// The lexeme is digits with at most one point, so ParseFloat can
	// only fail with a range error; the clamped value is fine.
	v, _ := strconv.ParseFloat(string(rs), 64)
	return v
}
