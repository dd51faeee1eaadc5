package usecases

import (
	"context"

	"campusmind/internal/domain/directory"
	"campusmind/internal/domain/issue"
	"campusmind/internal/shared/logger"
)

type mockIssueRepository struct {
	SaveFunc    func(ctx context.Context, i *issue.Issue) error
	UpdateFunc  func(ctx context.Context, i *issue.Issue) error
	GetByIDFunc func(ctx context.Context, issueID uint) (*issue.Issue, error)
	ListFunc    func(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error)
}

func (m *mockIssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, i)
	}
	return nil
}

func (m *mockIssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, i)
	}
	return nil
}

func (m *mockIssueRepository) GetByID(ctx context.Context, issueID uint) (*issue.Issue, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, issueID)
	}
	return nil, issue.ErrIssueNotFound
}

func (m *mockIssueRepository) List(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

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

type mockClassifier struct {
	ClassifyFunc func(ctx context.Context, text string) (issue.Classification, error)
}

func (m *mockClassifier) Classify(ctx context.Context, text string) (issue.Classification, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text)
	}
	return issue.FallbackClassification(), nil
}

// passthroughTransactor runs the function directly, standing in for a real
// database transaction in unit tests.
type passthroughTransactor struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *passthroughTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockNotifier struct {
	NotifyAssignedFunc func(ctx context.Context, i *issue.Issue, assignee *directory.User) error
	calls              int
}

func (m *mockNotifier) NotifyAssigned(ctx context.Context, i *issue.Issue, assignee *directory.User) error {
	m.calls++
	if m.NotifyAssignedFunc != nil {
		return m.NotifyAssignedFunc(ctx, i, assignee)
	}
	return nil
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	DebugwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

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
