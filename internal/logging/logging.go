package logging

import (
	"context"
	"net/http"

	"github.com/gofrs/uuid"
	log "github.com/sirupsen/logrus"
)

// ContextKey defines the context key type.
type ContextKey string

// ContextIDKey holds the key of the context ID.
const ContextIDKey ContextKey = "ctx_id"

// ContextIDHeader is the response header carrying the context ID.
const ContextIDHeader = "X-Context-ID"

// ContextIDHandler adds the ContextIDKey to the request context and sets it
// as response header.
func ContextIDHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID, err := uuid.NewV4()
		if err != nil {
			log.WithError(err).Error("logging: new uuid error")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set(ContextIDHeader, ctxID.String())
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ContextIDKey, ctxID)))
	})
}

// WithContext returns a log entry with the context ID field set, when
// present in the given context.
func WithContext(ctx context.Context) *log.Entry {
	if ctxID, ok := ctx.Value(ContextIDKey).(uuid.UUID); ok {
		return log.WithField("ctx_id", ctxID)
	}
	return log.NewEntry(log.StandardLogger())
}
