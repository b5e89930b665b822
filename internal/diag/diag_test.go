package diag

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewLogReporter(slog.New(slog.NewJSONHandler(&buf, nil)))

	r.Fault(errors.New("boom"), "render.go:12")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "[TipSplit Error]", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "render.go:12", entry["location"])

	buf.Reset()
	r.Rejection(errors.New("late"))

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "[TipSplit Unhandled Rejection]", entry["msg"])
	assert.Equal(t, "late", entry["reason"])
}

func TestRecorder(t *testing.T) {
	var r Recorder
	var _ Reporter = &r

	r.Fault(errors.New("a"), "here")
	r.Rejection("b")

	assert.Equal(t, 1, r.FaultCount())
	assert.Equal(t, 1, r.RejectionCount())
	assert.Equal(t, []string{"here"}, r.Locations)
}
