package user

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

type UseCase interface {
	// Register creates an account with a bcrypt password hash
	Register(ctx context.Context, dto model.UserCredentialsDTO) (*model.UserOut, error)

	// Login checks the credentials and issues an access token
	Login(ctx context.Context, dto model.UserCredentialsDTO) (*model.TokenResponse, error)

	// Authenticate resolves the user behind an access token
	Authenticate(ctx context.Context, accessToken string) (*entity.User, error)
}
