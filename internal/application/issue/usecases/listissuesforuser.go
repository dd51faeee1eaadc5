package usecases

import (
	"context"
	"errors"

	"campusmind/internal/application/issue/dto"
	"campusmind/internal/domain/directory"
	"campusmind/internal/domain/issue"
	apperrors "campusmind/internal/shared/errors"
	"campusmind/internal/shared/logger"
)

type ListIssuesForUserQuery struct {
	UserID       uint
	ShowResolved bool
	Page         int
	PageSize     int
}

// ListIssuesForUserUseCase answers "what can this user see": the role-scope
// rules and the resolved filter are applied together in one repository query.
type ListIssuesForUserUseCase struct {
	issueRepo issue.IssueRepository
	userRepo  directory.UserRepository
	logger    logger.Interface
}

func NewListIssuesForUserUseCase(
	issueRepo issue.IssueRepository,
	userRepo directory.UserRepository,
	logger logger.Interface,
) *ListIssuesForUserUseCase {
	return &ListIssuesForUserUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

func (uc *ListIssuesForUserUseCase) Execute(ctx context.Context, query ListIssuesForUserQuery) (*ListIssuesResult, error) {
	uc.logger.Debugw("executing list issues for user use case",
		"user_id", query.UserID,
		"show_resolved", query.ShowResolved,
	)

	if query.UserID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}

	user, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to load user", "error", err, "user_id", query.UserID)
		return nil, err
	}

	page := normalizePage(query.Page)
	pageSize := normalizePageSize(query.PageSize)

	scope := issue.ScopeForUser(user)
	if scope.None {
		return &ListIssuesResult{
			Issues:   []*dto.IssueDTO{},
			Total:    0,
			Page:     page,
			PageSize: pageSize,
		}, nil
	}

	filter := issue.IssueFilter{
		Scope:        &scope,
		ShowResolved: query.ShowResolved,
		Page:         page,
		PageSize:     pageSize,
	}

	issues, total, err := uc.issueRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list issues for user", "error", err, "user_id", query.UserID)
		return nil, err
	}

	return &ListIssuesResult{
		Issues:   dto.ToIssueDTOs(issues),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
