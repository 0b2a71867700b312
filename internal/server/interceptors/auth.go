package interceptors

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"log-platform/usersvc/internal/authz"
	"log-platform/usersvc/internal/security"
)

// accessTokenKey is the metadata entry carrying the bearer token on
// protected calls. No "Bearer " prefix; the raw token is the value.
const accessTokenKey = "access_token"

// AuthUnary returns a unary server interceptor that gates every protected
// RPC: it short-circuits unprotected endpoints, then runs a two-phase token
// check. Phase one parses claims without verifying the signature to make the
// cheap routing decisions (issuer lookup, nbf gate, role permission); phase
// two does full cryptographic verification (signature, issuer, audience,
// required exp) with the issuer's key resolved through keys. Only a fully
// verified token reaches the wrapped handler, with its identity in context.
func AuthUnary(policy *authz.Policy, keys *security.KeyCache, perms authz.Evaluator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if policy.IsUnprotected(info.FullMethod) {
			return handler(ctx, req)
		}

		raw := extractAccessToken(ctx)
		if raw == "" {
			return nil, status.Error(codes.Unauthenticated, "no access token given")
		}

		claims, err := security.ParseUnverifiedClaims(raw)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "malformed access token")
		}
		issuer, err := claims.GetIssuer()
		if err != nil || issuer == "" {
			return nil, status.Error(codes.Unauthenticated, "no iss")
		}
		nbf, err := claims.GetNotBefore()
		if err != nil || nbf == nil {
			return nil, status.Error(codes.Unauthenticated, "no nbf")
		}
		if time.Now().Before(nbf.Time) {
			return nil, status.Error(codes.Unauthenticated, "utilized before the not-before nbf")
		}

		key, err := keys.Get(ctx, issuer)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "unsupported issuer")
		}

		// Role permission is decided before signature verification so a
		// role-disallowed token is rejected with PermissionDenied regardless
		// of whether its signature would have verified.
		if policy.Guarded(info.FullMethod) {
			role, _ := claims["role"].(string)
			allowed, err := perms.Allowed(ctx, info.FullMethod, role)
			if err != nil {
				return nil, status.Error(codes.Internal, "permission evaluation failed")
			}
			if !allowed {
				return nil, status.Error(codes.PermissionDenied, "unauthorized role")
			}
		}

		verified, err := security.VerifyAccessWithKey(raw, key, issuer, policy.Audience)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "missing or invalid authorization")
		}

		ctx = WithIdentity(ctx, verified.Subject, verified.SessionID, verified.Role)
		return handler(ctx, req)
	}
}

// extractAccessToken returns the access_token metadata value, or "" if missing.
func extractAccessToken(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	vals := md.Get(accessTokenKey)
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}
