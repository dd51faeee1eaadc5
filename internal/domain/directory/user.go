package directory

import (
	"fmt"
	"strings"
)

// User is a member of the campus directory. Users are provisioned once
// (seeds or admin tooling) and immutable in the engine; routing decisions
// only ever read them.
type User struct {
	id           uint
	name         string
	email        string
	credential   Credential
	role         Role
	departmentID *uint
	sectionID    *uint
	reportsTo    *uint
}

func NewUser(
	name string,
	email string,
	credential Credential,
	role Role,
	departmentID *uint,
	sectionID *uint,
	reportsTo *uint,
) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if len(email) == 0 || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		name:         name,
		email:        email,
		credential:   credential,
		role:         role,
		departmentID: departmentID,
		sectionID:    sectionID,
		reportsTo:    reportsTo,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	credential Credential,
	role Role,
	departmentID *uint,
	sectionID *uint,
	reportsTo *uint,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		credential:   credential,
		role:         role,
		departmentID: departmentID,
		sectionID:    sectionID,
		reportsTo:    reportsTo,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() string {
	return u.email
}

func (u *User) Credential() Credential {
	return u.credential
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) DepartmentID() *uint {
	return u.departmentID
}

func (u *User) SectionID() *uint {
	return u.sectionID
}

func (u *User) ReportsTo() *uint {
	return u.reportsTo
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// ValidateManager checks the reporting invariant: reports_to must reference
// a user of the immediately superior role.
func (u *User) ValidateManager(manager *User) error {
	if manager == nil {
		return nil
	}
	superior, ok := u.role.Superior()
	if !ok {
		return fmt.Errorf("%s has terminal authority and cannot report to anyone", u.role)
	}
	if manager.Role() != superior {
		return fmt.Errorf("%s must report to a %s, got %s", u.role, superior, manager.Role())
	}
	return nil
}
