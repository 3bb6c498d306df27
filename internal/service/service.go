package service

import (
	"context"

	"users_api/internal/models"
)

// Info exposes the static descriptive endpoints.
type Info interface {
	Root(ctx context.Context) models.RootInfo
	Health(ctx context.Context) models.HealthStatus
}

// Users exposes the demo user directory. Calls never fail.
type Users interface {
	List(ctx context.Context) []models.User
	Get(ctx context.Context, id uint32) models.User
}

// Service aggregates all sub-services.
type Service struct {
	Info
	Users
}

func NewService() *Service {
	return &Service{
		Info:  NewInfoService(),
		Users: NewUserService(),
	}
}
