package monitoring

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/mwk/arfcn-calculator/internal/band"
)

func healthCheckHandlerFunc(w http.ResponseWriter, r *http.Request) {
	if err := band.Validate(band.Bands()); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(errors.Wrap(err, "band tables error").Error()))
		return
	}

	w.WriteHeader(http.StatusOK)
}
