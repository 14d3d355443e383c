package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/db"
	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/token"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenType = "bearer"

type userUseCase struct {
	userGateway db.UserGateway
	issuer      *token.Issuer
	cost        int
}

func NewUserUseCase(userGateway db.UserGateway, issuer *token.Issuer) UseCase {
	return &userUseCase{
		userGateway: userGateway,
		issuer:      issuer,
		cost:        bcrypt.DefaultCost,
	}
}

func (uc *userUseCase) Register(ctx context.Context, dto model.UserCredentialsDTO) (*model.UserOut, error) {
	email := strings.TrimSpace(dto.Email)
	if email == "" || dto.Password == "" {
		return nil, model.ErrMissingCredentials
	}

	existing, err := uc.userGateway.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return nil, model.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(dto.Password), uc.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := uc.userGateway.Create(ctx, entity.User{Email: email, HashedPW: string(hashed)})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info(msg.GetMessage("user.registered", created.ID), zap.Int64("user_id", created.ID))
	return &model.UserOut{ID: created.ID, Email: created.Email}, nil
}

func (uc *userUseCase) Login(ctx context.Context, dto model.UserCredentialsDTO) (*model.TokenResponse, error) {
	found, err := uc.userGateway.FindByEmail(ctx, strings.TrimSpace(dto.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if found == nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.HashedPW), []byte(dto.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	signed, err := uc.issuer.Issue(found.ID)
	if err != nil {
		return nil, err
	}
	return &model.TokenResponse{AccessToken: signed, TokenType: tokenType}, nil
}

func (uc *userUseCase) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if accessToken == "" {
		return nil, model.ErrUnauthenticated
	}

	userID, err := uc.issuer.Parse(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUnauthenticated, err)
	}

	found, err := uc.userGateway.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %d: %w", userID, err)
	}
	if found == nil {
		return nil, model.ErrUnauthenticated
	}
	return found, nil
}
