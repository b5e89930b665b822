package boundary

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/tipsplit/internal/diag"
)

func recovery() string { return "Something went wrong" }

func TestRenderPassesThrough(t *testing.T) {
	rec := &diag.Recorder{}
	b := New(rec, recovery)

	assert.Equal(t, "hello", b.Render(func() string { return "hello" }))
	assert.False(t, b.Tripped())
	assert.NoError(t, b.Err())
	assert.Zero(t, rec.FaultCount())
}

func TestRenderLatchesOnPanic(t *testing.T) {
	rec := &diag.Recorder{}
	b := New(rec, recovery)

	out := b.Render(func() string { panic("broken results panel") })
	assert.Equal(t, "Something went wrong", out)
	assert.True(t, b.Tripped())
	assert.EqualError(t, b.Err(), "broken results panel")

	// Later renders neither run the subtree nor log again.
	calls := 0
	for i := 0; i < 3; i++ {
		out = b.Render(func() string { calls++; return "fine again" })
		assert.Equal(t, "Something went wrong", out)
	}
	assert.Zero(t, calls)

	require.Equal(t, 1, rec.FaultCount())
	assert.Contains(t, rec.Locations[0], "boundary_test.go")
}

func TestPanicErrorUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	b := New(&diag.Recorder{}, recovery)
	b.Render(func() string { panic(sentinel) })

	assert.ErrorIs(t, b.Err(), sentinel)
	var pe *PanicError
	assert.ErrorAs(t, b.Err(), &pe)
}

func TestGuard(t *testing.T) {
	assert.NoError(t, Guard(func() error { return nil }))

	plain := errors.New("plain")
	assert.Equal(t, plain, Guard(func() error { return plain }))

	err := Guard(func() error { panic("async") })
	require.Error(t, err)
	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.NotEmpty(t, pe.Stack)
	assert.Equal(t, "async", err.Error())
}

func TestHTTPWrap(t *testing.T) {
	rec := &diag.Recorder{}
	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	mux.HandleFunc("/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("template exploded")
	})
	h := HTTP{Reporter: rec, Fallback: []byte("<h1>Something went wrong</h1>")}.Wrap(mux)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
	require.Equal(t, 1, rec.FaultCount())
	assert.Contains(t, rec.Locations[0], "GET /boom")

	// A fresh request is unaffected.
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.Equal(t, 1, rec.FaultCount())
}

func TestHTTPWrapRepanicsAbort(t *testing.T) {
	h := HTTP{Reporter: &diag.Recorder{}}.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestHTTPFail(t *testing.T) {
	rec := &diag.Recorder{}
	h := HTTP{Reporter: rec, Fallback: []byte("fallback")}

	w := httptest.NewRecorder()
	h.Fail(w, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("template: missing field"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "fallback", w.Body.String())
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	require.Equal(t, 1, rec.FaultCount())
	assert.EqualError(t, rec.Faults[0], "template: missing field")
}
