// Package numberrange expands dash-range expressions into bounded,
// width-preserving sequences of digit strings.
package numberrange

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nprnops/routing-reconciler/internal/domain/errors"
	"github.com/nprnops/routing-reconciler/internal/domain/values"
)

// DefaultMaxSpan bounds the number of elements a single expansion may produce.
const DefaultMaxSpan = 100

// Expand parses a (possibly single-element) dash-range expression into an
// ordered, width-preserving sequence of digit strings.
//
// Whitespace is insignificant. An expression without a dash is returned as a
// single-element sequence verbatim; classification happens downstream. For a
// range, a shorter end fragment denotes only the varying trailing digits and
// borrows the leading digits of the start ("0412345678-681"). An end fragment
// of equal or greater width is taken as already full width, with no further
// validation.
func Expand(expr string, maxSpan int) ([]string, error) {
	s := stripWhitespace(expr)

	if !strings.Contains(s, "-") {
		return []string{s}, nil
	}

	startPart, endPart, _ := strings.Cut(s, "-")
	startDigits := values.Digits(startPart)
	endDigits := values.Digits(endPart)

	if startDigits == "" || endDigits == "" {
		return nil, errors.NewBadRangeFormatError()
	}

	endFull := endDigits
	if len(endDigits) < len(startDigits) {
		endFull = startDigits[:len(startDigits)-len(endDigits)] + endDigits
	}

	startInt, err := strconv.ParseInt(startDigits, 10, 64)
	if err != nil {
		return nil, errors.NewBadRangeFormatError().WithCause(err)
	}
	endInt, err := strconv.ParseInt(endFull, 10, 64)
	if err != nil {
		return nil, errors.NewBadRangeFormatError().WithCause(err)
	}

	if endInt < startInt {
		return nil, errors.NewRangeEndBeforeStartError()
	}

	span := endInt - startInt + 1
	if span > int64(maxSpan) {
		return nil, errors.NewRangeTooLargeError(maxSpan)
	}

	width := len(startDigits)
	out := make([]string, 0, span)
	for n := startInt; n <= endInt; n++ {
		out = append(out, fmt.Sprintf("%0*d", width, n))
	}
	return out, nil
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
