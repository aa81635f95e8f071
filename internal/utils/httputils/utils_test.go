package httputils

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shivanshkc/integrator/internal/utils/errutils"
)

func TestWrite(t *testing.T) {
	w := httptest.NewRecorder()
	Write(w, http.StatusCreated, map[string]string{"X-Custom": "yes"}, map[string]string{"hello": "world"})

	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "yes", w.Header().Get("X-Custom"))
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.JSONEq(t, `{"hello":"world"}`, w.Body.String())
}

func TestWriteErr(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErr(w, errutils.BadRequest().WithReasonStr("name is required"))

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "Bad Request", body["code"])
	require.Equal(t, "name is required", body["reason"])
}

func TestRedirect(t *testing.T) {
	w := httptest.NewRecorder()
	Redirect(w, "https://provider.com/auth", map[string]string{"X-Frame-Options": "DENY"})

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "https://provider.com/auth", w.Header().Get("Location"))
	require.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	require.Empty(t, w.Body.String())
}

func TestRoundTripperJSON(t *testing.T) {
	rt, err := RoundTripperJSON(http.StatusTeapot, map[string]string{"a": "b"})
	require.NoError(t, err)

	res, err := (&http.Client{Transport: rt}).Get("http://mock")
	require.NoError(t, err)
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusTeapot, res.StatusCode)
	require.JSONEq(t, `{"a":"b"}`, string(body))
}

func TestIs2xx(t *testing.T) {
	require.True(t, Is2xx(http.StatusOK))
	require.True(t, Is2xx(http.StatusNoContent))
	require.False(t, Is2xx(http.StatusMultipleChoices))
	require.False(t, Is2xx(http.StatusBadRequest))
}

func TestIsHTTPS(t *testing.T) {
	require.True(t, IsHTTPS("https://integrator.app.com"))
	require.False(t, IsHTTPS("http://localhost:8080"))
	require.False(t, IsHTTPS(""))
}
