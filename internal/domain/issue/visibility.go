package issue

import (
	"campusmind/internal/domain/directory"
)

// VisibilityScope describes which issues a user may see. It is translated
// into a single WHERE clause by the repository and combined there with the
// resolved/active filter, so role scope and resolution scope are always
// evaluated as one conjunction.
type VisibilityScope struct {
	// None short-circuits to the empty set (non-enumerated roles, HOD
	// without a department). Unrestricted listings bypass scoping entirely
	// with a nil scope; there is no all-matching scope value.
	None bool

	// StudentID matches issues owned by this student.
	StudentID *uint
	// AssigneeID matches issues currently assigned to this user.
	AssigneeID *uint
	// SectionID widens AssigneeID with the user's section (proctor rule:
	// assigned-to OR section).
	SectionID *uint
	// DepartmentID matches issues snapshotted into this department.
	DepartmentID *uint
}

// ScopeForUser is the table of role-dependent visibility rules:
//
//	student  own issues
//	proctor  assigned to them OR their section (assigned only if sectionless)
//	hod      their department (nothing if departmentless)
//	vc       assigned to them
//	other    nothing
//
// Only the four chain roles are enumerated. Admin falls through to the empty
// set here; the unrestricted admin view goes through the separate admin
// listing, which queries without a scope.
func ScopeForUser(u *directory.User) VisibilityScope {
	id := u.ID()

	switch u.Role() {
	case directory.RoleStudent:
		return VisibilityScope{StudentID: &id}
	case directory.RoleProctor:
		scope := VisibilityScope{AssigneeID: &id}
		if u.SectionID() != nil {
			scope.SectionID = u.SectionID()
		}
		return scope
	case directory.RoleHOD:
		if u.DepartmentID() == nil {
			return VisibilityScope{None: true}
		}
		return VisibilityScope{DepartmentID: u.DepartmentID()}
	case directory.RoleVC:
		return VisibilityScope{AssigneeID: &id}
	default:
		return VisibilityScope{None: true}
	}
}

// Matches applies the scope in memory. The repository builds the equivalent
// SQL; this is the reference predicate and what tests assert against.
func (s VisibilityScope) Matches(i *Issue) bool {
	if s.None {
		return false
	}
	if s.StudentID != nil && i.StudentID() == *s.StudentID {
		return true
	}
	if s.AssigneeID != nil && i.AssignedTo() != nil && *i.AssignedTo() == *s.AssigneeID {
		return true
	}
	if s.SectionID != nil && i.SectionID() != nil && *i.SectionID() == *s.SectionID {
		return true
	}
	if s.DepartmentID != nil && i.DepartmentID() != nil && *i.DepartmentID() == *s.DepartmentID {
		return true
	}
	return false
}
