package handlers

import (
	"net/http"
	"strings"
	"testing"

	_ "users_api/docs"
	"users_api/internal/service"
)

func TestSwagger_ServesDocJSON(t *testing.T) {
	r := newTestRouter(service.NewService())

	w := doGet(t, r, "/swagger/doc.json")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{`"swagger": "2.0"`, `"/api/users/{id}"`, `"/api/health"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("doc.json missing %s", want)
		}
	}
}
