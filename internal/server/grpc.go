package server

import (
	"google.golang.org/grpc"

	userv1 "log-platform/usersvc/api/generated/user/v1"
	"log-platform/usersvc/internal/authz"
	identityhandler "log-platform/usersvc/internal/identity/handler"
)

// Deps holds the handler dependencies for the gRPC surface.
type Deps struct {
	// Auth is the identity service backing the UserService RPCs.
	Auth identityhandler.Auth
	// JWK is the serialized verification key material served on GetJwk.
	JWK string
	// HealthPinger is used for readiness (e.g. *sql.DB). If nil, HealthCheck skips the DB ping.
	HealthPinger identityhandler.Pinger
}

// RegisterServices registers the UserService implementation with the server.
func RegisterServices(s grpc.ServiceRegistrar, deps Deps) {
	userv1.RegisterUserServiceServer(s, identityhandler.NewGRPCHandler(deps.Auth, deps.JWK, deps.HealthPinger))
}

// DefaultPolicy returns the access policy for the UserService surface:
// token acquisition endpoints and the health probe are unprotected, every
// other RPC requires a verified token with the "user" role.
func DefaultPolicy(audience string) *authz.Policy {
	return &authz.Policy{
		Unprotected: map[string]bool{
			userv1.UserService_GetJwk_FullMethodName:       true,
			userv1.UserService_SignUp_FullMethodName:       true,
			userv1.UserService_Login_FullMethodName:        true,
			userv1.UserService_RefreshToken_FullMethodName: true,
			userv1.UserService_HealthCheck_FullMethodName:  true,
		},
		Permissions: map[string][]string{
			userv1.UserService_Logout_FullMethodName:         {"user"},
			userv1.UserService_Unregister_FullMethodName:     {"user"},
			userv1.UserService_GetUserInfo_FullMethodName:    {"user"},
			userv1.UserService_UpdateUserInfo_FullMethodName: {"user"},
		},
		Audience: audience,
	}
}
