// Package authz holds the process-wide read-only authorization policy and the
// Rego evaluator that decides per-endpoint role permissions.
package authz

import "context"

// Policy is constructed once at process start and passed to the auth
// interceptor; it is never mutated at runtime.
type Policy struct {
	// Unprotected is the set of full method names dispatched with no token
	// inspection (login, sign-up, refresh, key retrieval, health).
	Unprotected map[string]bool
	// Permissions maps full method names to the roles permitted to call them.
	// Methods without an entry accept any verified token.
	Permissions map[string][]string
	// Audience is the aud claim this service validates on incoming tokens.
	Audience string
}

// IsUnprotected reports whether method bypasses token checks.
func (p *Policy) IsUnprotected(method string) bool {
	return p.Unprotected[method]
}

// Guarded reports whether method has a configured permission set.
func (p *Policy) Guarded(method string) bool {
	_, ok := p.Permissions[method]
	return ok
}

// Evaluator decides whether a role may call a method.
type Evaluator interface {
	Allowed(ctx context.Context, method, role string) (bool, error)
}
