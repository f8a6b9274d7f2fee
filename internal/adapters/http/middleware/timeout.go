package middleware

import (
	"context"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
)

// errRequestTimeout is reported when a request outlives its deadline.
var errRequestTimeout = errors.New("request deadline exceeded")

// Timeout returns middleware that bounds each request by timeout. The
// handler runs on its own goroutine against a buffered writer; if the
// deadline passes first, a 504 problem response is written instead and the
// handler's late output is discarded. The handler's context carries the
// deadline, so storage calls observe it and the command reports cancellation.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &timeoutWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flushTo(w)
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				writeTimeout(w, r)
			}
		})
	}
}

func writeTimeout(w http.ResponseWriter, r *http.Request) {
	resp := dto.NewErrorResponse(r, errRequestTimeout)
	resp.Status = http.StatusGatewayTimeout
	resp.Title = http.StatusText(http.StatusGatewayTimeout)
	resp.Detail = errRequestTimeout.Error()
	resp.Failure = domain.KindCancelled
	dto.WriteProblem(w, r, resp)
}

// timeoutWriter buffers the handler's response. All access is guarded by mu,
// shared between the handler goroutine and the timeout select.
type timeoutWriter struct {
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	statusCode  int
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !tw.wroteHeader {
		tw.statusCode = http.StatusOK
		tw.wroteHeader = true
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.wroteHeader {
		return
	}
	tw.statusCode = code
	tw.wroteHeader = true
}

// flushTo copies the buffered response to w. Must be called with tw.mu held.
func (tw *timeoutWriter) flushTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), tw.header)
	if tw.wroteHeader {
		w.WriteHeader(tw.statusCode)
	}
	if len(tw.buf) > 0 {
		_, _ = w.Write(tw.buf)
	}
}
