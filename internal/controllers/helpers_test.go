package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "controller-test-secret"

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func newTestAuthenticator(t *testing.T) *middleware.Authenticator {
	t.Helper()
	auth, err := middleware.NewAuthenticator(testSecret, time.Hour)
	require.NoError(t, err)
	return auth
}

// adminToken returns a bearer value accepted by newTestAuthenticator.
func adminToken(t *testing.T, auth *middleware.Authenticator) string {
	t.Helper()
	token, _, err := auth.IssueToken("admin", time.Now())
	require.NoError(t, err)
	return "Bearer " + token
}

// performRequest marshals body unless it is already raw bytes. A nil body
// sends nothing.
func performRequest(router http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var payload []byte
	switch b := body.(type) {
	case nil:
	case []byte:
		payload = b
	default:
		payload, _ = json.Marshal(b)
	}

	req, _ := http.NewRequest(method, path, bytes.NewReader(payload))
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), w.Body.String())
	return response
}
