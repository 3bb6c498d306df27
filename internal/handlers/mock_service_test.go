package handlers

import (
	"context"
	"net/http"

	"users_api/internal/config"
	"users_api/internal/models"
	"users_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockInfo struct {
	root   models.RootInfo
	health models.HealthStatus
}

func (m *mockInfo) Root(ctx context.Context) models.RootInfo       { return m.root }
func (m *mockInfo) Health(ctx context.Context) models.HealthStatus { return m.health }

type mockUsers struct {
	list     []models.User
	user     models.User
	getCalls int
	lastID   uint32
}

func (m *mockUsers) List(ctx context.Context) []models.User { return m.list }
func (m *mockUsers) Get(ctx context.Context, id uint32) models.User {
	m.getCalls++
	m.lastID = id
	return m.user
}

// ---- Shared Test Helpers ----

const testOrigin = "http://localhost:3000"

func newTestRouter(s *service.Service) http.Handler {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, config.Default().CORS)
	return h.InitRoutes()
}
