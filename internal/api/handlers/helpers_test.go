package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"transport-management-service/internal/platform/obs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteJSONLogsEncodeFailureToRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core).With(zap.String("req_id", "req-7"))

	req := httptest.NewRequest(http.MethodGet, "/lrs", nil)
	req = req.WithContext(obs.WithLogger(req.Context(), logger))
	rec := httptest.NewRecorder()

	writeJSON(rec, req, http.StatusOK, map[string]any{"bad": make(chan int)})

	entries := logs.FilterMessage("encode failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-7", entries[0].ContextMap()["req_id"])
	assert.Equal(t, "/lrs", entries[0].ContextMap()["path"])
}

func TestWriteJSONWithoutRequestLogger(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/lrs", nil)
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		writeJSON(rec, req, http.StatusOK, map[string]any{"bad": make(chan int)})
	})
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}
