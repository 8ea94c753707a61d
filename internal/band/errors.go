package band

import (
	"github.com/pkg/errors"
)

// errors
var (
	ErrNonNumericInput   = errors.New("input is not a valid integer")
	ErrOutOfRange        = errors.New("arfcn is not in any known network range")
	ErrUnknownBand       = errors.New("unknown band")
	ErrInvalidRange      = errors.New("invalid arfcn range")
	ErrOverlappingRanges = errors.New("arfcn ranges overlap")
)

var errToLabel = map[error]string{
	ErrNonNumericInput: "non_numeric_input",
	ErrOutOfRange:      "out_of_range",
}

// ErrorLabel returns a short label for the given error, used for metrics
// and API responses.
func ErrorLabel(err error) string {
	if l, ok := errToLabel[errors.Cause(err)]; ok {
		return l
	}
	return "unknown"
}
