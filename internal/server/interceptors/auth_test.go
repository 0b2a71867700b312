package interceptors

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"log-platform/usersvc/internal/authz"
	"log-platform/usersvc/internal/security"
)

func testPolicy() *authz.Policy {
	return &authz.Policy{
		Unprotected: map[string]bool{
			"/user.v1.UserService/Login":  true,
			"/user.v1.UserService/GetJwk": true,
		},
		Permissions: map[string][]string{
			"/user.v1.UserService/AdminOnly": {"admin"},
		},
		Audience: security.TestAudience,
	}
}

func testInterceptor(t *testing.T) grpc.UnaryServerInterceptor {
	t.Helper()
	perms, err := authz.NewOPAEvaluator(testPolicy().Permissions)
	if err != nil {
		t.Fatalf("NewOPAEvaluator: %v", err)
	}
	keys := security.NewKeyCache(security.StaticKeyFetch(security.TestIssuer, []byte(security.TestSigningKey)))
	return AuthUnary(testPolicy(), keys, perms)
}

func okHandler(ctx context.Context, req interface{}) (interface{}, error) {
	return "success", nil
}

func callInfo(method string) *grpc.UnaryServerInfo {
	return &grpc.UnaryServerInfo{FullMethod: method}
}

func ctxWithToken(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("access_token", token))
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got nil error", code)
	}
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("error is not a gRPC status: %v", err)
	}
	if st.Code() != code {
		t.Errorf("status code = %v, want %v", st.Code(), code)
	}
}

func TestAuthUnary_UnprotectedMethodBypassesTokenChecks(t *testing.T) {
	interceptor := testInterceptor(t)

	resp, err := interceptor(context.Background(), "req", callInfo("/user.v1.UserService/Login"), okHandler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "success" {
		t.Errorf("response = %v", resp)
	}
}

func TestAuthUnary_ProtectedMethod_NoToken(t *testing.T) {
	interceptor := testInterceptor(t)

	_, err := interceptor(context.Background(), "req", callInfo("/user.v1.UserService/Logout"), okHandler)
	wantCode(t, err, codes.Unauthenticated)
}

func TestAuthUnary_ProtectedMethod_ValidToken(t *testing.T) {
	interceptor := testInterceptor(t)
	access, _, err := security.NewTestTokenProvider().MintRotatedTokens("user-1", "session-1")
	if err != nil {
		t.Fatalf("MintRotatedTokens: %v", err)
	}

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		userID, ok := GetUserID(ctx)
		if !ok || userID != "user-1" {
			t.Errorf("user_id = %q, ok = %v, want %q", userID, ok, "user-1")
		}
		sessionID, ok := GetSessionID(ctx)
		if !ok || sessionID != "session-1" {
			t.Errorf("session_id = %q, ok = %v, want %q", sessionID, ok, "session-1")
		}
		role, ok := GetRole(ctx)
		if !ok || role != security.RoleUser {
			t.Errorf("role = %q, ok = %v, want %q", role, ok, security.RoleUser)
		}
		return "success", nil
	}

	resp, err := interceptor(ctxWithToken(access), "req", callInfo("/user.v1.UserService/Logout"), handler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "success" {
		t.Errorf("response = %v", resp)
	}
}

func TestAuthUnary_MalformedToken(t *testing.T) {
	interceptor := testInterceptor(t)

	_, err := interceptor(ctxWithToken("garbage"), "req", callInfo("/user.v1.UserService/Logout"), okHandler)
	wantCode(t, err, codes.Unauthenticated)
}

func TestAuthUnary_MissingIssuer(t *testing.T) {
	interceptor := testInterceptor(t)
	now := time.Now()
	token := signTestToken(t, jwt.MapClaims{
		"sub": "user-1",
		"aud": security.TestAudience,
		"nbf": now.Unix(),
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})

	_, err := interceptor(ctxWithToken(token), "req", callInfo("/user.v1.UserService/Logout"), okHandler)
	wantCode(t, err, codes.Unauthenticated)
}

func TestAuthUnary_NotYetValidToken(t *testing.T) {
	interceptor := testInterceptor(t)
	future := time.Now().Add(time.Hour)
	token := signTestToken(t, jwt.MapClaims{
		"sub": "user-1",
		"iss": security.TestIssuer,
		"aud": security.TestAudience,
		"nbf": future.Unix(),
		"iat": future.Unix(),
		"exp": future.Add(time.Hour).Unix(),
		"sid": "session-1",
	})

	_, err := interceptor(ctxWithToken(token), "req", callInfo("/user.v1.UserService/Logout"), okHandler)
	wantCode(t, err, codes.Unauthenticated)
}

func TestAuthUnary_UnsupportedIssuer(t *testing.T) {
	interceptor := testInterceptor(t)
	now := time.Now()
	token := signTestToken(t, jwt.MapClaims{
		"sub": "user-1",
		"iss": "rogue-svc",
		"aud": security.TestAudience,
		"nbf": now.Unix(),
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
	})

	_, err := interceptor(ctxWithToken(token), "req", callInfo("/user.v1.UserService/Logout"), okHandler)
	wantCode(t, err, codes.Unauthenticated)
}

func TestAuthUnary_WrongSignature(t *testing.T) {
	interceptor := testInterceptor(t)
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": "user-1",
		"iss": security.TestIssuer,
		"aud": security.TestAudience,
		"nbf": now.Unix(),
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
		"sid": "session-1",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = interceptor(ctxWithToken(token), "req", callInfo("/user.v1.UserService/Logout"), okHandler)
	wantCode(t, err, codes.Unauthenticated)
}

func TestAuthUnary_ExpiredToken(t *testing.T) {
	interceptor := testInterceptor(t)
	past := time.Now().Add(-2 * time.Hour)
	token := signTestToken(t, jwt.MapClaims{
		"sub": "user-1",
		"iss": security.TestIssuer,
		"aud": security.TestAudience,
		"nbf": past.Unix(),
		"iat": past.Unix(),
		"exp": past.Add(time.Hour).Unix(),
		"sid": "session-1",
	})

	_, err := interceptor(ctxWithToken(token), "req", callInfo("/user.v1.UserService/Logout"), okHandler)
	wantCode(t, err, codes.Unauthenticated)
}

func TestAuthUnary_RoleDenied_EvenWithBadSignature(t *testing.T) {
	interceptor := testInterceptor(t)
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  "user-1",
		"iss":  security.TestIssuer,
		"aud":  security.TestAudience,
		"nbf":  now.Unix(),
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
		"sid":  "session-1",
		"role": "user",
	}
	// Signature is wrong, but the role rejection must win: permission checks
	// do not depend on signature validity ordering.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = interceptor(ctxWithToken(token), "req", callInfo("/user.v1.UserService/AdminOnly"), okHandler)
	wantCode(t, err, codes.PermissionDenied)
}

func TestAuthUnary_RoleAllowed(t *testing.T) {
	interceptor := testInterceptor(t)
	now := time.Now()
	token := signTestToken(t, jwt.MapClaims{
		"sub":  "user-1",
		"iss":  security.TestIssuer,
		"aud":  security.TestAudience,
		"nbf":  now.Unix(),
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
		"sid":  "session-1",
		"role": "admin",
	})

	resp, err := interceptor(ctxWithToken(token), "req", callInfo("/user.v1.UserService/AdminOnly"), okHandler)
	if err != nil {
		t.Fatalf("interceptor: %v", err)
	}
	if resp != "success" {
		t.Errorf("response = %v", resp)
	}
}

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(security.TestSigningKey))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}
