// Package services contains application services for the diary client.
// This file defines the authentication service: register, login, logout,
// liveness probe and the in-memory session.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/diary/internal/client/client"
	"github.com/dmitrijs2005/diary/internal/client/models"
	"github.com/dmitrijs2005/diary/internal/common"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register / Login: authenticate against the server and keep the session.
//   - Logout: forget the session.
//   - Session: the current, unexpired session or nil.
//   - Ping: check server liveness.
type AuthService interface {
	Register(ctx context.Context, username, email string, password []byte) (*models.Session, error)
	Login(ctx context.Context, email string, password []byte) (*models.Session, error)
	Logout(ctx context.Context) error
	Session() *models.Session
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client
	now    func() time.Time

	mu      sync.Mutex
	session *models.Session
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(c client.Client) AuthService {
	return &authService{client: c, now: time.Now}
}

func (a *authService) start(s *models.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = s
	a.client.SetToken(s.Token)
}

// Register creates an account and logs in as it. The password is wiped
// before returning.
func (a *authService) Register(ctx context.Context, username, email string, password []byte) (*models.Session, error) {
	defer common.WipeByteArray(password)

	s, err := a.client.Register(ctx, username, email, string(password))
	if err != nil {
		return nil, err
	}
	a.start(s)
	return s, nil
}

// Login authenticates with email and password. The password is wiped
// before returning.
func (a *authService) Login(ctx context.Context, email string, password []byte) (*models.Session, error) {
	defer common.WipeByteArray(password)

	s, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return nil, err
	}
	a.start(s)
	return s, nil
}

// Logout drops the session. Tokens are stateless, so there is nothing to
// revoke on the server.
func (a *authService) Logout(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = nil
	a.client.SetToken("")
	return nil
}

// Session returns the current session, or nil if there is none or it has
// expired. An expired session is dropped.
func (a *authService) Session() *models.Session {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.session != nil && a.session.Expired(a.now()) {
		a.session = nil
		a.client.SetToken("")
	}
	return a.session
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
