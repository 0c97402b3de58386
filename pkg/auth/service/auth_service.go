package service

import (
	"context"

	"agrow/entities"
)

type LoginRequest struct {
	Phone       string                `json:"phone"`
	Name        string                `json:"name"`
	FarmDetails *entities.FarmDetails `json:"farmDetails"`
}

type AuthService interface {
	// Login returns the user with req.Phone, creating one on first sight.
	Login(ctx context.Context, req LoginRequest) (*entities.User, error)
	User(ctx context.Context, id string) (*entities.User, error)
}
