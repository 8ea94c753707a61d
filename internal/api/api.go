// Package api implements the HTTP JSON API of the ARFCN calculator.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/mwk/arfcn-calculator/internal/band"
	"github.com/mwk/arfcn-calculator/internal/config"
	"github.com/mwk/arfcn-calculator/internal/display"
	"github.com/mwk/arfcn-calculator/internal/logging"
)

var server *http.Server

// Setup configures and starts the API server.
func Setup(c config.Config) error {
	if c.API.Bind == "" {
		log.Debug("api: api is disabled")
		return nil
	}

	log.WithFields(log.Fields{
		"bind": c.API.Bind,
	}).Info("api: starting arfcn api")

	server = &http.Server{
		Handler:     NewAPI(c.Display.Precision).Handler(),
		Addr:        c.API.Bind,
		ReadTimeout: c.API.ReadTimeout,
	}

	go func() {
		err := server.ListenAndServe()
		if err != http.ErrServerClosed {
			log.WithError(err).Fatal("api: api server error")
		}
	}()

	return nil
}

// Stop gracefully stops the API server.
func Stop(ctx context.Context) error {
	if server == nil {
		return nil
	}
	if err := server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "shutdown api server error")
	}
	return nil
}

// API implements the ARFCN API.
type API struct {
	precision int
}

// NewAPI creates a new API rendering frequencies with the given number of
// decimals.
func NewAPI(precision int) *API {
	if precision < 0 {
		precision = display.DefaultPrecision
	}
	return &API{precision: precision}
}

// Handler returns the http.Handler serving the API routes.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/resolve", a.resolve)
	mux.HandleFunc("/api/bands", a.bands)
	return logging.ContextIDHandler(mux)
}

func (a *API) resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeMethodNotAllowed(w)
		return
	}

	input := r.URL.Query().Get("arfcn")
	res, err := band.ResolveString(input)
	if err != nil {
		logging.WithContext(r.Context()).WithFields(log.Fields{
			"arfcn": input,
			"error": band.ErrorLabel(err),
		}).Info("api: resolve arfcn failed")

		a.writeResponse(r.Context(), w, errToCode(err), display.NewErrorPayload(input, err))
		return
	}

	logging.WithContext(r.Context()).WithFields(log.Fields{
		"arfcn": res.ARFCN,
		"band":  res.Band.Name,
	}).Debug("api: arfcn resolved")

	a.writeResponse(r.Context(), w, http.StatusOK, display.NewResultPayload(res, a.precision))
}

func (a *API) bands(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		a.writeMethodNotAllowed(w)
		return
	}

	a.writeResponse(r.Context(), w, http.StatusOK, display.NewBandPayloads(band.Bands()))
}

func (a *API) writeMethodNotAllowed(w http.ResponseWriter) {
	w.Header().Set("Allow", http.MethodGet)
	w.WriteHeader(http.StatusMethodNotAllowed)
}

func (a *API) writeResponse(ctx context.Context, w http.ResponseWriter, code int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		logging.WithContext(ctx).WithError(err).Error("api: marshal response error")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(b); err != nil {
		logging.WithContext(ctx).WithError(err).Error("api: write response error")
	}
}
