//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"hotel-booking/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse checks the status and, for 2xx with a target, decodes the body into it.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || w.Code < 200 || w.Code >= 300 {
		return
	}
	assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "undecodable body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the public message contains wantMsg (skipped when empty).
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, wantMsg string) {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var resp httperr.Response
	if !assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &resp), "undecodable error body: %s", w.Body.String()) {
		return
	}
	assert.NotEmpty(t, resp.Error.Message, "error message missing")
	if wantMsg != "" {
		assert.Contains(t, resp.Error.Message, wantMsg)
	}
}
