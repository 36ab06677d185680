package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"mktrading-backend/apperr"
	"mktrading-backend/models"
	"mktrading-backend/repositories"
	"mktrading-backend/utils"
)

type LoginResult struct {
	Token string             `json:"token"`
	User  models.UserSummary `json:"user"`
}

type AuthService struct {
	users  repositories.UserRepository
	tokens *utils.TokenService
	log    zerolog.Logger
}

func NewAuthService(users repositories.UserRepository, tokens *utils.TokenService, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Login checks the credentials and issues a session token. Unknown users and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in models.LoginInput) (*LoginResult, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsername(ctx, in.Username)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(in.Password, user.PasswordHash) {
		return nil, apperr.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		Token: token,
		User:  models.UserSummary{ID: user.ID, Username: user.Username},
	}, nil
}

// SeedAdmin creates the initial user when it does not exist yet. It is a no-op
// when either credential is empty.
func (s *AuthService) SeedAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return err
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user, err := s.users.Create(ctx, username, hash)
	if err != nil {
		return err
	}
	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("Seeded admin user")
	return nil
}
