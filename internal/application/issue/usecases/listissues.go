package usecases

import (
	"context"

	"campusmind/internal/application/issue/dto"
	"campusmind/internal/domain/issue"
	vo "campusmind/internal/domain/issue/valueobjects"
	apperrors "campusmind/internal/shared/errors"
	"campusmind/internal/shared/logger"
)

type ListIssuesQuery struct {
	ShowResolved bool
	Status       string
	DepartmentID *uint
	Page         int
	PageSize     int
}

type ListIssuesResult struct {
	Issues   []*dto.IssueDTO
	Total    int64
	Page     int
	PageSize int
}

// ListIssuesUseCase is the unscoped listing used by the admin surface.
type ListIssuesUseCase struct {
	issueRepo issue.IssueRepository
	logger    logger.Interface
}

func NewListIssuesUseCase(issueRepo issue.IssueRepository, logger logger.Interface) *ListIssuesUseCase {
	return &ListIssuesUseCase{
		issueRepo: issueRepo,
		logger:    logger,
	}
}

func (uc *ListIssuesUseCase) Execute(ctx context.Context, query ListIssuesQuery) (*ListIssuesResult, error) {
	uc.logger.Debugw("executing list issues use case", "show_resolved", query.ShowResolved)

	filter := issue.IssueFilter{
		ShowResolved: query.ShowResolved,
		DepartmentID: query.DepartmentID,
		Page:         normalizePage(query.Page),
		PageSize:     normalizePageSize(query.PageSize),
	}

	if query.Status != "" {
		status := vo.Status(query.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError("invalid status filter")
		}
		filter.Status = &status
	}

	issues, total, err := uc.issueRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list issues", "error", err)
		return nil, err
	}

	return &ListIssuesResult{
		Issues:   dto.ToIssueDTOs(issues),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePageSize(size int) int {
	if size < 1 {
		return 20
	}
	if size > 100 {
		return 100
	}
	return size
}
