package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/shivanshkc/integrator/pkg/logger"
)

func TestRecovery(t *testing.T) {
	for _, tc := range []struct {
		name  string
		panic any
	}{
		{name: "Panic with error", panic: errors.New("boom")},
		{name: "Panic with string", panic: "boom"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			handler := Middleware{}.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic(tc.panic)
			}))

			w := httptest.NewRecorder()
			require.NotPanics(t, func() { handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/mock", nil)) })
			require.Equal(t, http.StatusInternalServerError, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Equal(t, http.StatusText(http.StatusInternalServerError), body["code"])
		})
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusTeapot) })

	for _, tc := range []struct {
		name           string
		allowedOrigin  string
		method         string
		expectedOrigin string
		expectedCreds  string
		expectedCode   int
	}{
		{name: "Wildcard by default", method: http.MethodGet, expectedOrigin: "*", expectedCode: http.StatusTeapot},
		{
			name: "Configured origin allows credentials", allowedOrigin: "https://app.com", method: http.MethodGet,
			expectedOrigin: "https://app.com", expectedCreds: "true", expectedCode: http.StatusTeapot,
		},
		{name: "Preflight is answered directly", method: http.MethodOptions, expectedOrigin: "*", expectedCode: http.StatusNoContent},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Middleware{AllowedOrigin: tc.allowedOrigin}.CORS(next).ServeHTTP(w, httptest.NewRequest(tc.method, "/mock", nil))

			require.Equal(t, tc.expectedCode, w.Code)
			require.Equal(t, tc.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			require.Equal(t, tc.expectedCreds, w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}
}

func TestAccessLogger(t *testing.T) {
	var seenID string
	handler := Middleware{}.AccessLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = logger.RequestID(r.Context())
		w.WriteHeader(http.StatusFound)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/integration/google?code=secret", nil))

	require.Equal(t, http.StatusFound, w.Code)
	_, err := uuid.Parse(seenID)
	require.NoError(t, err, "request id must be a uuid")
	require.Equal(t, seenID, w.Header().Get(requestIDHeader))
}
