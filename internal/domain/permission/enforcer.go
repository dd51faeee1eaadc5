package permission

// PermissionEnforcer answers whether a subject may perform an action on a
// resource. Subjects are directory roles: the JWT carries the role claim, so
// no per-user grouping layer is needed.
type PermissionEnforcer interface {
	Enforce(subject string, resource string, action string) (bool, error)
	AddPolicy(role string, resource string, action string) error
	RemovePolicy(role string, resource string, action string) error
	HasPolicy(role string, resource string, action string) (bool, error)
	GetPermissionsForRole(role string) ([][]string, error)
	LoadPolicy() error
}
