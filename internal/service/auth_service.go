package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/auth-service/internal/auth"
	"github.com/spec-kit/auth-service/internal/config"
	"github.com/spec-kit/auth-service/internal/domain"
	"github.com/spec-kit/auth-service/internal/events"
	"github.com/spec-kit/auth-service/internal/repository"
)

// AuthService coordinates signup, login and token verification. It holds no
// mutable state of its own; the account repository is the only shared
// resource, so concurrent calls need no locking here.
type AuthService struct {
	accounts   repository.AccountRepository
	hasher     *auth.PasswordHasher
	codec      *auth.TokenCodec
	dispatcher events.Dispatcher
	now        func() time.Time
}

// AuthDependencies encapsulates collaborator requirements for the auth service.
type AuthDependencies struct {
	AccountRepo repository.AccountRepository
	Dispatcher  events.Dispatcher
}

// NewAuthService builds the service. The signing secret and validity window
// come from configuration loaded once at startup.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		accounts:   deps.AccountRepo,
		hasher:     auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		codec:      auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// TokenVerification is the outcome of verifying a token. Invalidity is a
// normal result, not an error.
type TokenVerification struct {
	Valid     bool
	Username  string
	ExpiresAt time.Time
}

// Signup creates a new account. Duplicate usernames surface as
// domain.ErrDuplicateUsername; the returned view never contains the hash.
func (s *AuthService) Signup(ctx context.Context, username, password string) (*domain.AccountView, error) {
	if username == "" {
		return nil, domain.NewValidationError("username", "must not be empty")
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "must not be empty")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventAccountCreated,
		Username: account.Username,
		Payload:  events.AccountCreatedPayload{AccountID: account.ID},
	})

	view := account.View()
	return &view, nil
}

// Login authenticates the credential pair and issues a bearer token. Unknown
// usernames and wrong passwords both return domain.ErrInvalidCredentials so
// callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if username == "" || password == "" {
		return "", time.Time{}, domain.NewValidationError("credentials", "must not be empty")
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.publishLoginFailed(ctx, username)
			return "", time.Time{}, domain.ErrInvalidCredentials
		}
		return "", time.Time{}, err
	}

	if !s.hasher.Verify(password, account.PasswordHash) {
		s.publishLoginFailed(ctx, username)
		return "", time.Time{}, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.codec.Issue(account.Username, s.now())
	if err != nil {
		return "", time.Time{}, err
	}

	s.publish(ctx, events.Event{
		Type:     events.EventLoginSucceeded,
		Username: account.Username,
		Payload: events.LoginSucceededPayload{
			AccountID:      account.ID,
			TokenExpiresAt: expiresAt,
		},
	})

	return token, expiresAt, nil
}

// VerifyToken checks a bearer token against the current clock. It never
// returns an error: bad signature, malformed structure and expiry all
// collapse to Valid=false.
func (s *AuthService) VerifyToken(tokenStr string) TokenVerification {
	claims, err := s.codec.Verify(tokenStr, s.now())
	if err != nil {
		return TokenVerification{Valid: false}
	}
	return TokenVerification{
		Valid:     true,
		Username:  claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = s.now()
	_ = s.dispatcher.Publish(ctx, event)
}

func (s *AuthService) publishLoginFailed(ctx context.Context, username string) {
	s.publish(ctx, events.Event{
		Type:     events.EventLoginFailed,
		Username: username,
	})
}
