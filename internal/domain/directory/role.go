package directory

import "fmt"

// Role is the closed set of positions in the campus reporting hierarchy.
type Role string

const (
	RoleStudent Role = "student"
	RoleProctor Role = "proctor"
	RoleHOD     Role = "hod"
	RoleVC      Role = "vc"
	RoleAdmin   Role = "admin"
)

var validRoles = map[Role]bool{
	RoleStudent: true,
	RoleProctor: true,
	RoleHOD:     true,
	RoleVC:      true,
	RoleAdmin:   true,
}

// roleSuperiors maps each role to the role its reports_to reference must
// carry. The VC is terminal authority; admin sits outside the chain.
var roleSuperiors = map[Role]Role{
	RoleStudent: RoleProctor,
	RoleProctor: RoleHOD,
	RoleHOD:     RoleVC,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

// Superior returns the role a user of this role may report to, and whether
// such a superior role exists.
func (r Role) Superior() (Role, bool) {
	superior, ok := roleSuperiors[r]
	return superior, ok
}

// MayReportTo reports whether a user of this role may carry a reports_to
// reference to a user of the given role. Only the immediately superior role
// qualifies; terminal and out-of-chain roles report to nobody.
func (r Role) MayReportTo(superior Role) bool {
	want, ok := roleSuperiors[r]
	return ok && want == superior
}

func (r Role) IsStudent() bool {
	return r == RoleStudent
}

func (r Role) IsProctor() bool {
	return r == RoleProctor
}

func (r Role) IsHOD() bool {
	return r == RoleHOD
}

func (r Role) IsVC() bool {
	return r == RoleVC
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
