package issue

import (
	"context"
	"errors"

	vo "campusmind/internal/domain/issue/valueobjects"
)

// ErrIssueNotFound is returned by repositories when an issue id resolves to
// nothing.
var ErrIssueNotFound = errors.New("issue not found")

type IssueRepository interface {
	Save(ctx context.Context, issue *Issue) error
	Update(ctx context.Context, issue *Issue) error
	GetByID(ctx context.Context, issueID uint) (*Issue, error)
	// List applies the filter as one query: role scope AND resolution scope
	// AND the remaining predicates, newest first.
	List(ctx context.Context, filter IssueFilter) ([]*Issue, int64, error)
}

type IssueFilter struct {
	// Scope restricts to a user's visible set; nil means unrestricted.
	Scope *VisibilityScope
	// ShowResolved includes closed issues; when false they are excluded.
	ShowResolved bool

	Status       *vo.Status
	DepartmentID *uint
	TitleLike    string

	Page     int
	PageSize int
}
