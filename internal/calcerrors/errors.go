// Package calcerrors defines the errors the driver can report.
//
// The combinator layer has no error channel at all — a parser either
// succeeds or fails, with no diagnostics. Errors exist only at the
// driver boundary, where a failed or partial parse must be reported.
package calcerrors

import (
	"errors"
	"fmt"
)

var (
	ErrParse           = errors.New("parsing failed")
	ErrUnconsumedInput = errors.New("not all input consumed")
)

func NewUnconsumedInputError(rest string) error {
	return fmt.Errorf("%w: %q left over", ErrUnconsumedInput, rest)
}
