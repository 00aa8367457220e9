package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListener_Timeouts(t *testing.T) {
	l := newListener("test server", "127.0.0.1", 8080, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, "127.0.0.1:8080", l.server.Addr)
	assert.NotZero(t, l.server.ReadHeaderTimeout)
	assert.Greater(t, l.server.WriteTimeout.Seconds(), 1.0)
}

func TestListener_ServeAfterShutdown(t *testing.T) {
	l := newListener("test server", "127.0.0.1", 0, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, l.shutdown(context.Background()))

	assert.NoError(t, l.serve(http.NotFoundHandler()))
}

func TestListener_ServeInvalidAddress(t *testing.T) {
	l := newListener("test server", "127.0.0.1", 99999, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := l.serve(http.NotFoundHandler())

	assert.ErrorContains(t, err, "failed to start test server")
}
