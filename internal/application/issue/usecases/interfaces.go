package usecases

import (
	"context"

	"campusmind/internal/application/issue/dto"
	"campusmind/internal/domain/directory"
	"campusmind/internal/domain/issue"
)

// Transactor runs a function within one database transaction. Mutating use
// cases wrap their read-modify-write cycle in it so concurrent updates to the
// same issue cannot interleave.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// EscalationNotifier informs a user that an issue landed on their desk.
// Delivery is best effort; failures are logged, never propagated.
type EscalationNotifier interface {
	NotifyAssigned(ctx context.Context, iss *issue.Issue, assignee *directory.User) error
}

type CreateIssueExecutor interface {
	Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error)
}

type GetIssueExecutor interface {
	Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDTO, error)
}

type ListIssuesExecutor interface {
	Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error)
}

type ListIssuesForUserExecutor interface {
	Execute(ctx context.Context, query ListIssuesForUserQuery) (*ListIssuesResult, error)
}

type SearchIssuesExecutor interface {
	Execute(ctx context.Context, query SearchIssuesQuery) (*ListIssuesResult, error)
}

type ForwardIssueExecutor interface {
	Execute(ctx context.Context, cmd ForwardIssueCommand) (*dto.IssueDTO, error)
}

type VerifyIssueExecutor interface {
	Execute(ctx context.Context, cmd VerifyIssueCommand) (*dto.IssueDTO, error)
}

type AssignIssueExecutor interface {
	Execute(ctx context.Context, cmd AssignIssueCommand) (*dto.IssueDTO, error)
}

type ReclassifyIssueExecutor interface {
	Execute(ctx context.Context, cmd ReclassifyIssueCommand) (*dto.IssueDTO, error)
}

type GetAdminStatsExecutor interface {
	Execute(ctx context.Context, query GetAdminStatsQuery) (*AdminStatsResult, error)
}
