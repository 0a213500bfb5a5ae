// Package auth implements sign up, sign in and sign out of principals with
// bcrypt password hashes and signed JSON Web Tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pocketbook-app/backend/internal/models"
	"github.com/pocketbook-app/backend/internal/session"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLength is the minimum number of characters of a password.
const MinPasswordLength = 6

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("the token is invalid or has expired")
	ErrNoPrincipal        = session.ErrNoPrincipal
	ErrPasswordTooShort   = models.NewValidationError("password", fmt.Sprintf("the password must be at least %d characters long", MinPasswordLength))
)

// Message returns the message for an error that is shown to users.
func Message(err error) string {
	if errors.Is(err, ErrInvalidCredentials) {
		return "Invalid email or password. Please try again."
	}

	return err.Error()
}

// Token is a signed access token for a principal.
type Token struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // Bearer token for the Authorization header
	ExpiresAt time.Time `json:"expiresAt" example:"2024-03-16T10:00:00Z"`                // Time after which the token is rejected
}

// Service registers principals and issues, verifies and revokes tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
	broker *session.Broker

	// now is replaced in tests
	now func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time // token ID to expiry
}

// NewService returns a Service. Tokens are signed with secret and are
// valid for ttl. Authentication events are published on broker.
//
// Profiles are read from and written to models.DB.
func NewService(secret []byte, ttl time.Duration, broker *session.Broker) *Service {
	return &Service{
		secret:  secret,
		ttl:     ttl,
		broker:  broker,
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
}

// Broker returns the broker authentication events are published on.
func (s *Service) Broker() *session.Broker {
	return s.broker
}

// Register creates a new profile. The default categories are seeded
// for it.
func (s *Service) Register(ctx context.Context, email, password, displayName string) (models.Profile, error) {
	if strings.TrimSpace(email) == "" {
		return models.Profile{}, models.ErrEmailEmpty
	}

	if len([]rune(password)) < MinPasswordLength {
		return models.Profile{}, ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := models.Profile{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}

	err = models.DB.WithContext(ctx).Create(&profile).Error
	if err != nil {
		return models.Profile{}, err
	}

	log.Info().Str("profile", profile.ID.String()).Msg("profile registered")
	return profile, nil
}

// Login verifies the credentials and returns a new token.
func (s *Service) Login(ctx context.Context, email, password string) (Token, error) {
	var profile models.Profile
	err := models.DB.WithContext(ctx).
		Where(&models.Profile{Email: strings.ToLower(strings.TrimSpace(email))}).
		First(&profile).Error
	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return Token{}, ErrInvalidCredentials
	} else if err != nil {
		return Token{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password))
	if err != nil {
		return Token{}, ErrInvalidCredentials
	}

	token, err := s.issue(profile.ID)
	if err != nil {
		return Token{}, err
	}

	s.broker.Publish(session.Event{Kind: session.SignedIn, Principal: profile.ID})
	return token, nil
}

func (s *Service) issue(principal uuid.UUID) (Token, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   principal.String(),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Token{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return Token{Token: signed, ExpiresAt: expiresAt.UTC().Truncate(time.Second)}, nil
}

// parse verifies the signature and the expiry of a token and returns its claims.
func (s *Service) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		log.Debug().Err(err).Msg("token rejected")
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// Verify returns the principal of a valid token.
func (s *Service) Verify(token string) (uuid.UUID, error) {
	claims, err := s.parse(token)
	if err != nil {
		return uuid.Nil, err
	}

	if s.isRevoked(claims.ID) {
		return uuid.Nil, ErrTokenInvalid
	}

	principal, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return principal, nil
}

// Logout revokes the token and signs the principal out.
func (s *Service) Logout(token string) error {
	principal, err := s.Verify(token)
	if err != nil {
		return err
	}

	claims, err := s.parse(token)
	if err != nil {
		return err
	}

	s.revoke(claims.ID, claims.ExpiresAt.Time)
	s.broker.Publish(session.Event{Kind: session.SignedOut, Principal: principal})

	return nil
}

func (s *Service) isRevoked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.revoked[id]
	return ok
}

// revoke marks the token ID as revoked until it expires. Expired
// revocations are removed, tokens are rejected after expiry anyway.
func (s *Service) revoke(id string, expiresAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for k, exp := range s.revoked {
		if exp.Before(now) {
			delete(s.revoked, k)
		}
	}

	s.revoked[id] = expiresAt
}
