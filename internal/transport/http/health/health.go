package health

import (
	"context"
	"net/http"
	"time"

	"github.com/you-humble/repair-workshop/platform/logger"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler reports SERVING while every pinger answers; nil pingers are skipped.
func Handler(pingers ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		for _, p := range pingers {
			if p == nil {
				continue
			}
			if err := p.Ping(ctx); err != nil {
				logger.Error(r.Context(), "health check ping", logger.ErrorF(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_SERVING"))
				return
			}
		}

		if _, err := w.Write([]byte("SERVING")); err != nil {
			logger.Error(r.Context(), "health check", logger.ErrorF(err))
		}
	}
}
