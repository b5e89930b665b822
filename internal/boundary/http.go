package boundary

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/mmynk/tipsplit/internal/diag"
)

// HTTP contains faults raised while a request is being rendered. The fault
// is reported and Fallback is written with status 500. Every request is its
// own latch: the next page load starts clean.
type HTTP struct {
	Reporter diag.Reporter
	Fallback []byte
}

// Wrap recovers panics from next. http.ErrAbortHandler is re-raised so the
// server can abort the response as usual.
func (h HTTP) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(v)
			}
			pe := &PanicError{Value: v, Stack: string(debug.Stack())}
			h.fail(w, r, pe, pe.Stack)
		}()
		next.ServeHTTP(w, r)
	})
}

// Fail reports err as a rendering fault of r and writes the fallback page.
// Handlers call it for render errors that are returned rather than raised.
func (h HTTP) Fail(w http.ResponseWriter, r *http.Request, err error) {
	h.fail(w, r, err, string(debug.Stack()))
}

func (h HTTP) fail(w http.ResponseWriter, r *http.Request, err error, stack string) {
	h.Reporter.Fault(err, r.Method+" "+r.URL.Path+"\n"+stack)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(h.Fallback)
}
