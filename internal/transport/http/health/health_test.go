package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHandler(t *testing.T) {
	t.Parallel()

	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name     string
		pingers  []Pinger
		wantCode int
		wantBody string
	}{
		{name: "no pingers", wantCode: http.StatusOK, wantBody: "SERVING"},
		{name: "all up", pingers: []Pinger{ok, ok}, wantCode: http.StatusOK, wantBody: "SERVING"},
		{name: "nil skipped", pingers: []Pinger{nil, ok}, wantCode: http.StatusOK, wantBody: "SERVING"},
		{name: "one down", pingers: []Pinger{ok, down}, wantCode: http.StatusServiceUnavailable, wantBody: "NOT_SERVING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			Handler(tt.pingers...)(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}
