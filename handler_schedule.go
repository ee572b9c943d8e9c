package gomischedule

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/gomi-schedule/formatter"
	"github.com/theoremus-urban-solutions/gomi-schedule/internal"
)

const (
	ErrMissingQuery     = "Missing query parameter"
	ErrMethodNotAllowed = "Method not allowed"
	ErrUnknown          = "Unknown error"
)

func handleSchedule(l *Lookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		rb := formatter.NewResponseBuilder()

		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = w.Write(rb.BuildErrorJSON(ErrMethodNotAllowed))
			return
		}

		query := r.URL.Query().Get("q")
		if query == "" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write(rb.BuildErrorJSON(ErrMissingQuery))
			return
		}

		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		// A client disconnect does not abort the lookup; the catalog client
		// bounds each call with its own timeout.
		ctx := context.WithoutCancel(r.Context())
		s, err := l.schedule(ctx, internal.RequestLogger(id), query, r.URL.Query().Get("station"))
		if err != nil {
			msg := err.Error()
			if msg == "" {
				msg = ErrUnknown
			}
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write(rb.BuildErrorJSON(msg))
			return
		}

		buf, err := rb.BuildJSON(s)
		if err != nil {
			log.Printf("[%s] encode failed: %v", id, err)
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write(rb.BuildErrorJSON(err.Error()))
			return
		}
		_, _ = w.Write(buf)
	}
}
