// Package auth implements the admin login: password checks, bearer tokens
// and login throttling.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/folio/folio/pkg/logger"
	"github.com/folio/folio/pkg/storage"
)

// CollectionUsers is the record collection holding accounts.
const CollectionUsers = "users"

var (
	// ErrUserNotFound is returned for unknown e-mail addresses.
	ErrUserNotFound = errors.New("User not found")

	// ErrInvalidPassword is returned when the password does not match.
	ErrInvalidPassword = errors.New("Invalid password")
)

// User is an admin account. Password holds a bcrypt hash, or plain text for
// accounts that have not logged in since the hash migration.
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is returned on successful login.
type LoginResult struct {
	Message     string `json:"message"`
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Service authenticates users against the record store.
type Service struct {
	mu     sync.Mutex
	users  *storage.Collection[User]
	tokens *TokenIssuer
	log    logger.Logger
}

// NewService creates a Service.
func NewService(store storage.Store, tokens *TokenIssuer, log logger.Logger) *Service {
	if log == nil {
		log = logger.Global()
	}
	return &Service{
		users:  storage.NewCollection[User](store, CollectionUsers),
		tokens: tokens,
		log:    log,
	}
}

// Tokens returns the issuer used for bearer tokens.
func (s *Service) Tokens() *TokenIssuer { return s.tokens }

func (s *Service) findByEmail(ctx context.Context, email string) (User, bool, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return User{}, false, err
	}
	for _, u := range all {
		if strings.EqualFold(u.Email, email) {
			return u, true, nil
		}
	}
	return User{}, false, nil
}

// Login checks the credentials and issues a token. A legacy plain-text
// password is replaced by its bcrypt hash on first successful login.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("auth: lookup user: %w", err)
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	match, migrate, err := CheckPassword(u.Password, password)
	if err != nil {
		return nil, err
	}
	if !match {
		s.log.WarnContext(ctx, "login failed", "email", u.Email)
		return nil, ErrInvalidPassword
	}

	if migrate {
		hash, err := HashPassword(password)
		if err != nil {
			return nil, err
		}
		u.Password = hash
		if err := s.users.Put(ctx, u.ID, u); err != nil {
			return nil, fmt.Errorf("auth: migrate password: %w", err)
		}
		s.log.InfoContext(ctx, "password migrated to bcrypt hash", "email", u.Email)
	}

	token, _, err := s.tokens.Issue(u.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Message:     "Login successful",
		Email:       u.Email,
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// SeedAdmin creates the admin account when it does not exist yet. Existing
// accounts are left alone so a changed password survives restarts.
func (s *Service) SeedAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok, err := s.findByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("auth: lookup admin: %w", err)
	}
	if ok {
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	_, err = s.users.Insert(ctx, func(id int64) User {
		return User{ID: id, Email: email, Password: hash}
	})
	if err != nil {
		return fmt.Errorf("auth: seed admin: %w", err)
	}
	s.log.InfoContext(ctx, "admin account created", "email", email)
	return nil
}

type subjectKey struct{}

// ContextWithSubject stores the authenticated e-mail in ctx.
func ContextWithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// SubjectFromContext returns the authenticated e-mail, if any.
func SubjectFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(subjectKey{}).(string)
	return s, ok && s != ""
}
