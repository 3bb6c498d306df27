package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"users_api/internal/config"
	"users_api/internal/logger"
	"users_api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newObservedRouter builds the full router with a logger that records entries in memory.
func newObservedRouter() (http.Handler, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}

	gin.SetMode(gin.TestMode)
	h := NewHandler(service.NewService(), log, config.Default().CORS)
	return h.InitRoutes(), logs
}

func TestRequestLogger_LogsRequestLine(t *testing.T) {
	r, logs := newObservedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/42", nil)
	req.Header.Set(requestIDHeader, "req-42")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("http_request entries: got %d, want 1", len(entries))
	}
	e := entries[0]
	if e.Level != zapcore.InfoLevel {
		t.Fatalf("level: got %v, want info", e.Level)
	}
	fields := e.ContextMap()
	want := map[string]any{
		"request_id": "req-42",
		"method":     http.MethodGet,
		"route":      "/api/users/:id",
		"status":     int64(http.StatusOK),
	}
	for k, v := range want {
		if fields[k] != v {
			t.Fatalf("field %q: got %#v, want %#v", k, fields[k], v)
		}
	}
	if _, ok := fields["latency"]; !ok {
		t.Fatalf("missing latency field: %v", fields)
	}
}

func TestRequestLogger_UnmatchedRouteLogsPath(t *testing.T) {
	r, logs := newObservedRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("http_request entries: got %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["route"] != "/nowhere" || fields["status"] != int64(http.StatusNotFound) {
		t.Fatalf("unexpected fields: %v", fields)
	}
}

func TestGetUser_LogsBadRequestID(t *testing.T) {
	r, logs := newObservedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/abc", nil)
	req.Header.Set(requestIDHeader, "req-bad")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	entries := logs.FilterMessage("user_bad_request_id").All()
	if len(entries) != 1 {
		t.Fatalf("user_bad_request_id entries: got %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["id"] != "abc" || fields["request_id"] != "req-bad" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if _, ok := fields["err"]; !ok {
		t.Fatalf("missing err field: %v", fields)
	}

	reqLines := logs.FilterMessage("http_request").All()
	if len(reqLines) != 1 || reqLines[0].ContextMap()["status"] != int64(http.StatusBadRequest) {
		t.Fatalf("expected one http_request line with status 400, got %v", reqLines)
	}
}
