package repositories

import (
	"context"

	"mktrading-backend/apperr"
	"mktrading-backend/database"
	"mktrading-backend/models"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
}

type userRepository struct {
	gw *database.Gateway
}

func NewUserRepository(gw *database.Gateway) UserRepository {
	return &userRepository{gw: gw}
}

// FindByUsername returns apperr.ErrNotFound when no user has that name.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`
	found, err := r.gw.Get(ctx, "find user", user, query, username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperr.ErrNotFound
	}
	return user, nil
}

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	query := `INSERT INTO users (username, password_hash) VALUES (?, ?) RETURNING id`
	id, err := r.gw.Insert(ctx, "insert user", query, username, passwordHash)
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Username: username, PasswordHash: passwordHash}, nil
}
