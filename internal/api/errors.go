package api

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/mwk/arfcn-calculator/internal/band"
)

var errToStatus = map[error]int{
	band.ErrNonNumericInput: http.StatusBadRequest,
	band.ErrOutOfRange:      http.StatusNotFound,
}

func errToCode(err error) int {
	code, ok := errToStatus[errors.Cause(err)]
	if !ok {
		return http.StatusInternalServerError
	}
	return code
}
