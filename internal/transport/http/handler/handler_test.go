package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"otigox-task/internal/repo/mem"
	"otigox-task/internal/service"
	"otigox-task/internal/transport/http/handler"
	"otigox-task/internal/transport/http/router"
)

// newTestEngine builds the real engine on a fresh in-memory store, so
// every test starts from an empty database.
func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	st := mem.NewStore()
	log := zap.NewNop()
	userH := handler.NewUserHandler(service.NewUserService(st.Users()), log)
	projectH := handler.NewProjectHandler(service.NewProjectService(st.Projects()), log)
	return router.NewAPIEngine(log, userH, projectH, router.Options{})
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func errMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var out struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out.Message
}
