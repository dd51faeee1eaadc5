package usecases

import (
	"context"

	"campusmind/internal/domain/directory"
	"campusmind/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc       func(ctx context.Context, u *directory.User) error
	GetByIDFunc    func(ctx context.Context, id uint) (*directory.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*directory.User, error)
	GetVCFunc      func(ctx context.Context) (*directory.User, error)
	ListFunc       func(ctx context.Context) ([]*directory.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *directory.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*directory.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, directory.ErrUserNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*directory.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, directory.ErrUserNotFound
}

func (m *mockUserRepository) GetVC(ctx context.Context) (*directory.User, error) {
	if m.GetVCFunc != nil {
		return m.GetVCFunc(ctx)
	}
	return nil, directory.ErrUserNotFound
}

func (m *mockUserRepository) List(ctx context.Context) ([]*directory.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockSectionRepository struct {
	SaveFunc             func(ctx context.Context, s *directory.Section) error
	GetByIDFunc          func(ctx context.Context, id uint) (*directory.Section, error)
	ListByDepartmentFunc func(ctx context.Context, departmentID uint) ([]*directory.Section, error)
}

func (m *mockSectionRepository) Save(ctx context.Context, s *directory.Section) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSectionRepository) GetByID(ctx context.Context, id uint) (*directory.Section, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSectionRepository) ListByDepartment(ctx context.Context, departmentID uint) ([]*directory.Section, error) {
	if m.ListByDepartmentFunc != nil {
		return m.ListByDepartmentFunc(ctx, departmentID)
	}
	return nil, nil
}

type mockDepartmentRepository struct {
	SaveFunc    func(ctx context.Context, d *directory.Department) error
	GetByIDFunc func(ctx context.Context, id uint) (*directory.Department, error)
	ListFunc    func(ctx context.Context) ([]*directory.Department, error)
}

func (m *mockDepartmentRepository) Save(ctx context.Context, d *directory.Department) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, d)
	}
	return nil
}

func (m *mockDepartmentRepository) GetByID(ctx context.Context, id uint) (*directory.Department, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockDepartmentRepository) List(ctx context.Context) ([]*directory.Department, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, role string) (string, int64, error)
}

func (m *mockTokenIssuer) Generate(userID uint, role string) (string, int64, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return "token", 3600, nil
}

type mockLogger struct {
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface  { return m }
func (m *mockLogger) Named(name string) logger.Interface { return m }

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}
