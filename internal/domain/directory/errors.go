package directory

import "errors"

var (
	// ErrNoHigherAuthority is returned when the escalation walk finds no
	// candidate at all (no manager and no VC provisioned).
	ErrNoHigherAuthority = errors.New("no higher authority found to escalate to")

	// ErrReportingCycle is returned when the reports_to data loops back on
	// itself. Malformed provisioning data must fail, never spin.
	ErrReportingCycle = errors.New("reporting hierarchy contains a cycle")

	// ErrUserNotFound is returned by repositories when a user id or email
	// resolves to nothing.
	ErrUserNotFound = errors.New("user not found")
)
