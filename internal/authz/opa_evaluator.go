package authz

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/v1/rego"
	"github.com/open-policy-agent/opa/v1/storage/inmem"
)

// Rego policy deciding endpoint access: a method with no permission entry is
// open to any role; a guarded method requires the caller's role to be listed.
const permissionPolicy = `package usersvc.authz

default allow := false

allow if {
	not data.permissions[input.method]
}

allow if {
	some role in data.permissions[input.method]
	role == input.role
}
`

// OPAEvaluator evaluates the endpoint permission map with an in-process OPA
// Rego engine. The permission data is fixed at construction; evaluation is
// safe for concurrent use.
type OPAEvaluator struct {
	query rego.PreparedEvalQuery
}

// NewOPAEvaluator compiles the permission policy with the given
// endpoint-to-roles map loaded as data.
func NewOPAEvaluator(permissions map[string][]string) (*OPAEvaluator, error) {
	data := map[string]interface{}{}
	for method, roles := range permissions {
		rs := make([]interface{}, len(roles))
		for i, r := range roles {
			rs[i] = r
		}
		data[method] = rs
	}

	query, err := rego.New(
		rego.Query("data.usersvc.authz.allow"),
		rego.Module("permissions.rego", permissionPolicy),
		rego.Store(inmem.NewFromObject(map[string]interface{}{"permissions": data})),
	).PrepareForEval(context.Background())
	if err != nil {
		return nil, fmt.Errorf("compile permission policy: %w", err)
	}
	return &OPAEvaluator{query: query}, nil
}

// Allowed reports whether role may call method.
func (e *OPAEvaluator) Allowed(ctx context.Context, method, role string) (bool, error) {
	rs, err := e.query.Eval(ctx, rego.EvalInput(map[string]interface{}{
		"method": method,
		"role":   role,
	}))
	if err != nil {
		return false, fmt.Errorf("evaluate permission policy: %w", err)
	}
	return rs.Allowed(), nil
}
