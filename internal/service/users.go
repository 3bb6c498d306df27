package service

import (
	"context"
	"fmt"

	"users_api/internal/models"
)

type UserService struct{}

func NewUserService() *UserService {
	return &UserService{}
}

// List returns the fixed demo users, ordered by id. A new slice is built per call.
func (s *UserService) List(ctx context.Context) []models.User {
	return []models.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
		{ID: 3, Name: "Charlie", Email: "charlie@example.com"},
	}
}

// Get synthesizes a user for any id. There is no existence check.
func (s *UserService) Get(ctx context.Context, id uint32) models.User {
	return models.User{
		ID:    id,
		Name:  fmt.Sprintf("User %d", id),
		Email: fmt.Sprintf("user%d@example.com", id),
	}
}
