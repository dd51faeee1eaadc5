package permission

import (
	"fmt"

	"campusmind/internal/domain/permission"
)

type policy struct {
	role     string
	resource string
	action   string
}

// defaultPolicies maps each campus role onto the routes it may call. Each
// role lists its full grant set; there is no inheritance between roles.
var defaultPolicies = []policy{
	{"student", "issues", "create"},
	{"student", "issues", "read"},

	{"proctor", "issues", "read"},
	{"proctor", "issues", "forward"},
	{"proctor", "issues", "verify"},
	{"proctor", "issues", "search"},

	{"hod", "issues", "read"},
	{"hod", "issues", "forward"},
	{"hod", "issues", "verify"},
	{"hod", "issues", "search"},

	{"vc", "issues", "read"},
	{"vc", "issues", "forward"},
	{"vc", "issues", "verify"},
	{"vc", "issues", "search"},
	{"vc", "issues", "assign"},

	{"admin", "issues", "read"},
	{"admin", "issues", "search"},
	{"admin", "issues", "assign"},
	{"admin", "issues", "classify"},
	{"admin", "admin", "read"},
	{"admin", "users", "read"},
	{"admin", "departments", "read"},
}

// InitDefaultPolicies seeds the role grants. Already-present policies are
// skipped so operator overrides survive restarts.
func InitDefaultPolicies(enforcer permission.PermissionEnforcer) error {
	for _, p := range defaultPolicies {
		exists, err := enforcer.HasPolicy(p.role, p.resource, p.action)
		if err != nil {
			return fmt.Errorf("failed to check policy %s/%s/%s: %w", p.role, p.resource, p.action, err)
		}
		if exists {
			continue
		}
		if err := enforcer.AddPolicy(p.role, p.resource, p.action); err != nil {
			return err
		}
	}
	return nil
}
