package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopcraft/backoffice/internal/core/domain"
	"github.com/shopcraft/backoffice/internal/core/ports"
)

// AuthService implements the credential exchange lifecycle: login, register,
// refresh rotation and logout.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.TokenRepository
	codec      ports.TokenCodec
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.TokenRepository, codec ports.TokenCodec, bcryptCost int, logger zerolog.Logger) *AuthService {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = 12
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		codec:      codec,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Login checks existence, then the active flag, then the password. Unknown
// email and wrong password fail identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tokens, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("uuid", user.UUID).Str("role", user.Role).Msg("user logged in")
	return &ports.AuthResult{User: user, Tokens: tokens}, nil
}

// Register creates a customer account and logs it in.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*ports.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user, err := s.users.Create(ctx, &domain.User{
		UUID:         uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	tokens, err := s.issueSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("uuid", user.UUID).Msg("user registered")
	return &ports.AuthResult{User: user, Tokens: tokens}, nil
}

// Rotate consumes a refresh token exactly once and issues a new pair.
// A rotated-out token fails the same way as one that never existed.
func (s *AuthService) Rotate(ctx context.Context, refreshToken string) (domain.TokenPair, error) {
	if refreshToken == "" {
		return domain.TokenPair{}, domain.ErrMissingRefreshToken
	}

	stored, err := s.sessions.Find(ctx, refreshToken)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if stored == nil {
		return domain.TokenPair{}, domain.ErrInvalidRefreshToken
	}

	// Verify the signature and embedded expiry independently of the store
	// lookup; a tampered token must not rotate even if a record matches.
	claims, err := s.codec.VerifyRefresh(refreshToken)
	if err != nil {
		return domain.TokenPair{}, domain.ErrInvalidRefreshToken
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		// Only a missing identity revokes the session; a store failure
		// must not destroy a valid record.
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.sessions.DeleteByToken(ctx, refreshToken)
			return domain.TokenPair{}, domain.ErrInvalidRefreshToken
		}
		return domain.TokenPair{}, err
	}
	if !user.IsActive {
		_ = s.sessions.DeleteByToken(ctx, refreshToken)
		return domain.TokenPair{}, domain.ErrInvalidRefreshToken
	}

	consumed, err := s.sessions.Consume(ctx, refreshToken)
	if err != nil {
		return domain.TokenPair{}, err
	}
	if !consumed {
		// A concurrent rotation won the race; this attempt is a replay.
		return domain.TokenPair{}, domain.ErrInvalidRefreshToken
	}

	tokens, err := s.issueSession(ctx, user)
	if err != nil {
		return domain.TokenPair{}, err
	}

	s.logger.Debug().Str("uuid", user.UUID).Msg("refresh token rotated")
	return tokens, nil
}

// Logout deletes the matching session when a token is supplied. It never
// fails the caller-visible flow.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.sessions.DeleteByToken(ctx, refreshToken); err != nil {
		s.logger.Warn().Err(err).Msg("logout: session delete failed")
	}
	return nil
}

// CurrentUser resolves the authenticated identity; 404 if it was deleted
// between token issuance and lookup.
func (s *AuthService) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) issueSession(ctx context.Context, user *domain.User) (domain.TokenPair, error) {
	access, err := s.codec.IssueAccess(user)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.codec.IssueRefresh(user)
	if err != nil {
		return domain.TokenPair{}, err
	}
	expiresAt := time.Now().UTC().Add(s.codec.RefreshTTL())
	if err := s.sessions.Save(ctx, user.ID, refresh, expiresAt); err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
