// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, and issuing bearer tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/diary/internal/common"
	"github.com/dmitrijs2005/diary/internal/cryptox"
	"github.com/dmitrijs2005/diary/internal/dbx"
	"github.com/dmitrijs2005/diary/internal/server/auth"
	"github.com/dmitrijs2005/diary/internal/server/config"
	"github.com/dmitrijs2005/diary/internal/server/models"
	"github.com/dmitrijs2005/diary/internal/server/repositories/repomanager"
)

// TokenBundle is what a successful register or login hands back to the caller.
type TokenBundle struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UserService provides authentication-related operations:
// - Register: create users
// - Login: verify credentials and mint tokens
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
	now         func() time.Time
}

// NewUserService constructs a UserService using repositories and server config.
// It fails when no signing key is configured.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) (*UserService, error) {
	if cfg.SecretKey == "" {
		return nil, common.ErrMissingSecretKey
	}
	return &UserService{
		db:          db,
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
		now:         time.Now,
	}, nil
}

// Register creates a new account and returns a token for it. Email is
// checked before username, so a request clashing on both reports the email.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*TokenBundle, error) {
	var user *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		exists, err := repo.ExistsByEmail(ctx, email)
		if err != nil {
			return fmt.Errorf("error checking email: %w", err)
		}
		if exists {
			return common.ErrDuplicateEmail
		}

		exists, err = repo.ExistsByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("error checking username: %w", err)
		}
		if exists {
			return common.ErrDuplicateUsername
		}

		hash, err := cryptox.HashPassword(password)
		if err != nil {
			return fmt.Errorf("error hashing password: %w", err)
		}

		user, err = repo.Create(ctx, &models.User{
			UserName:     username,
			Email:        email,
			PasswordHash: hash,
		})
		if err != nil {
			if errors.Is(err, common.ErrDuplicateEmail) || errors.Is(err, common.ErrDuplicateUsername) {
				return err
			}
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.issue(user)
}

// Login checks email and password. An unknown email and a wrong password are
// indistinguishable to the caller, in both result and cost.
func (s *UserService) Login(ctx context.Context, email, password string) (*TokenBundle, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.BurnVerification(password)
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if !cryptox.VerifyPassword(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return s.issue(user)
}

func (s *UserService) issue(user *models.User) (*TokenBundle, error) {
	token, expiresAt, err := auth.GenerateToken(user, s.jwtSecret, s.now())
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}
	return &TokenBundle{
		Token:     token,
		Username:  user.UserName,
		Email:     user.Email,
		ExpiresAt: expiresAt,
	}, nil
}
