package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"log-platform/usersvc/internal/directory"
	"log-platform/usersvc/internal/ratelimit"
	"log-platform/usersvc/internal/security"
	sessiondomain "log-platform/usersvc/internal/session/domain"
	sessionrepo "log-platform/usersvc/internal/session/repository"
	userdomain "log-platform/usersvc/internal/user/domain"
	userrepo "log-platform/usersvc/internal/user/repository"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password, so
	// callers cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled is returned when credentials verify but the account
	// is administratively disabled.
	ErrAccountDisabled = errors.New("account disabled")
	// ErrEmailTaken is returned on sign-up when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrTokenInvalid is returned for a refresh token that fails verification.
	ErrTokenInvalid = errors.New("invalid refresh token")
	// ErrTokenExpired is returned for a structurally valid refresh token past expiry.
	ErrTokenExpired = errors.New("expired refresh token")
	// ErrTokenReused is returned when a refresh token's expiry does not advance
	// the session watermark: the token (or a later one) was already consumed.
	// The session is revoked as a side effect.
	ErrTokenReused = errors.New("refresh token reuse detected")
	// ErrSessionNotFound is returned when a refresh token names a session that
	// no longer exists (logged out or already revoked).
	ErrSessionNotFound = errors.New("session not found")
	// ErrRateLimited is returned when the login or sign-up throttle rejects the attempt.
	ErrRateLimited = errors.New("too many attempts")
	// ErrUserNotFound is returned when an authenticated token names a user that
	// no longer exists.
	ErrUserNotFound = errors.New("user not found")
)

// SignUpParams carries the profile and the client-side hash for account creation.
type SignUpParams struct {
	UserName       string
	FullName       string
	Email          string
	HashedPassword string
}

// UpdateParams carries the profile fields an update may change. Empty fields
// are left untouched.
type UpdateParams struct {
	UserName string
	FullName string
	Email    string
}

// AuthService owns the account and session lifecycle: sign-up, credential
// verification, token minting, refresh rotation with reuse detection, and
// revocation. All password handling is on the server-side second hash; the
// wire carries a client-side hash, never a plaintext password.
type AuthService struct {
	users    userrepo.Repository
	sessions sessionrepo.Repository
	tokens   *security.TokenProvider
	limiter  ratelimit.Limiter
	logger   *zap.Logger
}

// NewAuthService wires the service. limiter may be nil to disable throttling.
func NewAuthService(
	users userrepo.Repository,
	sessions sessionrepo.Repository,
	tokens *security.TokenProvider,
	limiter ratelimit.Limiter,
	logger *zap.Logger,
) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{users: users, sessions: sessions, tokens: tokens, limiter: limiter, logger: logger}
}

func (s *AuthService) allow(ctx context.Context, key string) error {
	if s.limiter == nil {
		return nil
	}
	ok, err := s.limiter.Allow(ctx, key)
	if err != nil {
		// Throttle backend trouble must not lock everyone out.
		s.logger.Warn("rate limiter unavailable, allowing request", zap.Error(err))
		return nil
	}
	if !ok {
		return ErrRateLimited
	}
	return nil
}

// SignUp creates a disabled=false account with a fresh user id. The supplied
// hash is hashed again before storage so a leaked users table never yields a
// value a client could replay as a login credential.
func (s *AuthService) SignUp(ctx context.Context, p SignUpParams) error {
	if err := s.allow(ctx, "signup:"+p.Email); err != nil {
		return err
	}

	_, err := s.users.GetUser(ctx, directory.Filters{"email": p.Email})
	switch {
	case err == nil:
		return ErrEmailTaken
	case errors.Is(err, directory.ErrNotFound):
		// proceed
	default:
		return fmt.Errorf("sign up: %w", err)
	}

	u := &userdomain.User{
		ID:                   uuid.NewString(),
		UserName:             p.UserName,
		FullName:             p.FullName,
		Email:                p.Email,
		Disabled:             false,
		DoubleHashedPassword: security.DoubleHash(p.HashedPassword),
	}
	if err := s.users.Upsert(ctx, u); err != nil {
		// Lost the race with a concurrent sign-up for the same email.
		if errors.Is(err, userrepo.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return fmt.Errorf("sign up: %w", err)
	}
	s.logger.Info("user registered", zap.String("user_id", u.ID))
	return nil
}

// Login verifies credentials, creates a fresh session with a zero refresh
// watermark, and mints the identity/access/refresh token triple. Unknown email
// and wrong password collapse into ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, hashedPassword, deviceContext string) (*security.LoginTokens, error) {
	if err := s.allow(ctx, "login:"+email); err != nil {
		return nil, err
	}
	if deviceContext != "" && deviceContext != "unknown" {
		if err := s.allow(ctx, "login-ip:"+deviceContext); err != nil {
			return nil, err
		}
	}

	u, err := s.users.GetUser(ctx, directory.Filters{"email": email})
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	if !security.HashEqual(hashedPassword, u.DoubleHashedPassword) {
		return nil, ErrInvalidCredentials
	}
	if u.Disabled {
		return nil, ErrAccountDisabled
	}

	sess := &sessiondomain.Session{
		ID:               uuid.NewString(),
		UserID:           u.ID,
		LatestRefreshExp: 0,
		DeviceContext:    deviceContext,
	}
	if err := s.sessions.Upsert(ctx, sess); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	tokens, err := s.tokens.MintLoginTokens(u, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	s.logger.Info("login", zap.String("user_id", u.ID), zap.String("session_id", sess.ID))
	return tokens, nil
}

// Refresh rotates a refresh token: it verifies the token, then advances the
// session's watermark to the token's expiry with a compare-and-set. A token
// whose expiry does not beat the watermark was already consumed; that is
// treated as theft evidence and the whole session is revoked. Under concurrent
// presentation of the same token at most one caller wins the compare-and-set.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (access, refresh string, err error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		if errors.Is(err, security.ErrExpiredToken) {
			return "", "", ErrTokenExpired
		}
		return "", "", ErrTokenInvalid
	}
	if claims.SessionID == "" || claims.ExpiresAt == nil {
		return "", "", ErrTokenInvalid
	}

	if _, err := s.sessions.GetSession(ctx, directory.Filters{"session_id": claims.SessionID}); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return "", "", ErrSessionNotFound
		}
		return "", "", fmt.Errorf("refresh: %w", err)
	}

	advanced, err := s.sessions.ConsumeRefresh(ctx, claims.SessionID, claims.ExpiresAt.Unix())
	if err != nil {
		return "", "", fmt.Errorf("refresh: %w", err)
	}
	if !advanced {
		s.logger.Warn("refresh token reuse, revoking session",
			zap.String("session_id", claims.SessionID), zap.String("user_id", claims.Subject))
		if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
			return "", "", fmt.Errorf("refresh: %w", err)
		}
		return "", "", ErrTokenReused
	}

	access, refresh, err = s.tokens.MintRotatedTokens(claims.Subject, claims.SessionID)
	if err != nil {
		return "", "", fmt.Errorf("refresh: %w", err)
	}
	return access, refresh, nil
}

// Logout revokes the session. Revoking an already-absent session succeeds.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Unregister deletes the account and every session it owns. The sessions FK
// cascades on user deletion, but the sessions are removed explicitly so the
// revocation does not depend on schema wiring.
func (s *AuthService) Unregister(ctx context.Context, userID string) error {
	if err := s.sessions.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("unregister: %w", err)
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("unregister: %w", err)
	}
	s.logger.Info("user unregistered", zap.String("user_id", userID))
	return nil
}

// GetUserInfo returns the profile of the authenticated user.
func (s *AuthService) GetUserInfo(ctx context.Context, userID string) (*userdomain.User, error) {
	u, err := s.users.GetUser(ctx, directory.Filters{"user_id": userID})
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user info: %w", err)
	}
	return u, nil
}

// UpdateUserInfo applies the non-empty fields of p to the authenticated user's
// profile and returns the updated row. The target row is always the token
// subject; a request cannot redirect the write to another account.
func (s *AuthService) UpdateUserInfo(ctx context.Context, userID string, p UpdateParams) (*userdomain.User, error) {
	u, err := s.users.GetUser(ctx, directory.Filters{"user_id": userID})
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user info: %w", err)
	}

	if p.UserName != "" {
		u.UserName = p.UserName
	}
	if p.FullName != "" {
		u.FullName = p.FullName
	}
	if p.Email != "" {
		u.Email = p.Email
	}

	if err := s.users.Upsert(ctx, u); err != nil {
		if errors.Is(err, userrepo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("update user info: %w", err)
	}
	return u, nil
}
