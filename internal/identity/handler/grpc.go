package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	userv1 "log-platform/usersvc/api/generated/user/v1"
	"log-platform/usersvc/internal/identity/service"
	"log-platform/usersvc/internal/security"
	"log-platform/usersvc/internal/server/interceptors"
	"log-platform/usersvc/internal/user/domain"
)

// Auth is the slice of the identity service the handler needs.
type Auth interface {
	SignUp(ctx context.Context, p service.SignUpParams) error
	Login(ctx context.Context, email, hashedPassword, deviceContext string) (*security.LoginTokens, error)
	Refresh(ctx context.Context, refreshToken string) (access, refresh string, err error)
	Logout(ctx context.Context, sessionID string) error
	Unregister(ctx context.Context, userID string) error
	GetUserInfo(ctx context.Context, userID string) (*domain.User, error)
	UpdateUserInfo(ctx context.Context, userID string, p service.UpdateParams) (*domain.User, error)
}

// Pinger reports backing-store liveness. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// GRPCHandler adapts the identity service to the UserService wire surface.
// It translates typed service errors into status codes and keeps internal
// detail out of caller-visible messages.
type GRPCHandler struct {
	userv1.UnimplementedUserServiceServer

	auth Auth
	jwk  string
	db   Pinger
}

// NewGRPCHandler wires the handler. jwk is the serialized verification key
// material served on GetJwk.
func NewGRPCHandler(auth Auth, jwk string, db Pinger) *GRPCHandler {
	return &GRPCHandler{auth: auth, jwk: jwk, db: db}
}

// GetJwk serves the issuer's verification key. Unprotected: consumers fetch
// it before they hold any token.
func (h *GRPCHandler) GetJwk(ctx context.Context, req *userv1.GetJwkRequest) (*userv1.GetJwkResponse, error) {
	return &userv1.GetJwkResponse{Jwk: h.jwk}, nil
}

func (h *GRPCHandler) SignUp(ctx context.Context, req *userv1.SignUpRequest) (*userv1.SignUpResponse, error) {
	info := req.GetUserInfo()
	if info == nil || info.GetEmail() == "" || req.GetHashedPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "user info with email and hashed password are required")
	}
	err := h.auth.SignUp(ctx, service.SignUpParams{
		UserName:       info.GetUserName(),
		FullName:       info.GetFullName(),
		Email:          info.GetEmail(),
		HashedPassword: req.GetHashedPassword(),
	})
	if err != nil {
		return nil, translate(err)
	}
	return &userv1.SignUpResponse{}, nil
}

func (h *GRPCHandler) Login(ctx context.Context, req *userv1.LoginRequest) (*userv1.LoginResponse, error) {
	if req.GetEmail() == "" || req.GetHashedPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "email and hashed password are required")
	}
	tokens, err := h.auth.Login(ctx, req.GetEmail(), req.GetHashedPassword(), interceptors.ClientIP(ctx))
	if err != nil {
		return nil, translate(err)
	}
	return &userv1.LoginResponse{
		IdentityToken: tokens.Identity,
		AccessToken:   tokens.Access,
		RefreshToken:  tokens.Refresh,
	}, nil
}

func (h *GRPCHandler) RefreshToken(ctx context.Context, req *userv1.RefreshRequest) (*userv1.RefreshResponse, error) {
	if req.GetRefreshToken() == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}
	access, refresh, err := h.auth.Refresh(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, translate(err)
	}
	return &userv1.RefreshResponse{AccessToken: access, NewRefreshToken: refresh}, nil
}

func (h *GRPCHandler) Logout(ctx context.Context, req *userv1.LogoutRequest) (*userv1.LogoutResponse, error) {
	sessionID, ok := interceptors.GetSessionID(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
	}
	if err := h.auth.Logout(ctx, sessionID); err != nil {
		return nil, translate(err)
	}
	return &userv1.LogoutResponse{}, nil
}

func (h *GRPCHandler) Unregister(ctx context.Context, req *userv1.UnregisterRequest) (*userv1.UnregisterResponse, error) {
	userID, ok := interceptors.GetUserID(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
	}
	if err := h.auth.Unregister(ctx, userID); err != nil {
		return nil, translate(err)
	}
	return &userv1.UnregisterResponse{}, nil
}

func (h *GRPCHandler) GetUserInfo(ctx context.Context, req *userv1.GetUserInfoRequest) (*userv1.GetUserInfoResponse, error) {
	userID, ok := interceptors.GetUserID(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
	}
	u, err := h.auth.GetUserInfo(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	return &userv1.GetUserInfoResponse{UserInfo: &userv1.UserInfo{
		UserName: u.UserName,
		FullName: u.FullName,
		Email:    u.Email,
	}}, nil
}

func (h *GRPCHandler) UpdateUserInfo(ctx context.Context, req *userv1.UpdateUserInfoRequest) (*userv1.UpdateUserInfoResponse, error) {
	userID, ok := interceptors.GetUserID(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
	}
	info := req.GetUserInfo()
	if info == nil {
		return nil, status.Error(codes.InvalidArgument, "user info is required")
	}
	_, err := h.auth.UpdateUserInfo(ctx, userID, service.UpdateParams{
		UserName: info.GetUserName(),
		FullName: info.GetFullName(),
		Email:    info.GetEmail(),
	})
	if err != nil {
		return nil, translate(err)
	}
	return &userv1.UpdateUserInfoResponse{}, nil
}

// HealthCheck pings the backing store.
func (h *GRPCHandler) HealthCheck(ctx context.Context, req *userv1.HealthCheckRequest) (*userv1.HealthCheckResponse, error) {
	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			return nil, status.Error(codes.Unavailable, "database unreachable")
		}
	}
	return &userv1.HealthCheckResponse{Status: "SERVING"}, nil
}

// translate maps typed service errors to status codes with caller-safe
// messages. Anything unrecognized is an internal fault; its detail stays in
// the server logs.
func translate(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid email or password")
	case errors.Is(err, service.ErrAccountDisabled):
		return status.Error(codes.PermissionDenied, "account disabled")
	case errors.Is(err, service.ErrEmailTaken):
		return status.Error(codes.AlreadyExists, "email already registered")
	case errors.Is(err, service.ErrTokenInvalid),
		errors.Is(err, service.ErrTokenExpired),
		errors.Is(err, service.ErrTokenReused),
		errors.Is(err, service.ErrSessionNotFound):
		return status.Error(codes.Unauthenticated, "invalid or expired refresh token")
	case errors.Is(err, service.ErrUserNotFound):
		return status.Error(codes.NotFound, "user not found")
	case errors.Is(err, service.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "too many attempts, retry later")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
