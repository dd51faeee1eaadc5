package directory

import "context"

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetVC(ctx context.Context) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

type DepartmentRepository interface {
	Save(ctx context.Context, department *Department) error
	GetByID(ctx context.Context, id uint) (*Department, error)
	List(ctx context.Context) ([]*Department, error)
}

type SectionRepository interface {
	Save(ctx context.Context, section *Section) error
	GetByID(ctx context.Context, id uint) (*Section, error)
	ListByDepartment(ctx context.Context, departmentID uint) ([]*Section, error)
}
