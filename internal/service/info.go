package service

import (
	"context"

	"users_api"
	"users_api/internal/models"
)

const (
	welcomeMessage = "Welcome to the Go API"
	healthOK       = "ok"
	healthMessage  = "Backend is running"
)

type InfoService struct{}

func NewInfoService() *InfoService {
	return &InfoService{}
}

// Root returns the welcome message with the endpoint map.
func (s *InfoService) Root(ctx context.Context) models.RootInfo {
	return models.RootInfo{
		Message: welcomeMessage,
		Endpoints: map[string]string{
			"root":   users_api.PathRoot,
			"health": users_api.PathHealth,
			"users":  users_api.PathUsers,
		},
	}
}

func (s *InfoService) Health(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{Status: healthOK, Message: healthMessage}
}
