//go:build unit || e2e

package httptest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewRequest encodes body as JSON when present.
func NewRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var r io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func PerformRequest(t *testing.T, h http.Handler, method, path string, body any, authToken string) *httptest.ResponseRecorder {
	t.Helper()
	return PerformRequestWithCookies(t, h, method, path, body, nil, authToken)
}

func PerformRequestWithCookies(t *testing.T, h http.Handler, method, path string, body any, cookies []*http.Cookie, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	req := NewRequest(t, method, path, body)
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return Serve(h, req)
}

// StreamRecorder lets gin's Stream run against a recorder, which needs http.CloseNotifier.
type StreamRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *StreamRecorder) CloseNotify() <-chan bool { return r.closed }

// ServeStream runs an event-stream request under ctx; cancel ctx to end the stream.
func ServeStream(ctx context.Context, h http.Handler, path string) *StreamRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody).WithContext(ctx)
	req.Header.Set("Accept", "text/event-stream")
	w := &StreamRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}
	h.ServeHTTP(w, req)
	return w
}

func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "Failed to decode response body")
	return err
}
