package usecases

import (
	"context"

	"campusmind/internal/application/issue/dto"
	"campusmind/internal/domain/issue"
	"campusmind/internal/shared/logger"
)

type SearchIssuesQuery struct {
	TitleSubstring string
	DepartmentID   *uint
	ShowResolved   bool
	Page           int
	PageSize       int
}

// SearchIssuesUseCase filters by title substring and department. An empty
// query matches everything, subject to the resolved filter.
type SearchIssuesUseCase struct {
	issueRepo issue.IssueRepository
	logger    logger.Interface
}

func NewSearchIssuesUseCase(issueRepo issue.IssueRepository, logger logger.Interface) *SearchIssuesUseCase {
	return &SearchIssuesUseCase{
		issueRepo: issueRepo,
		logger:    logger,
	}
}

func (uc *SearchIssuesUseCase) Execute(ctx context.Context, query SearchIssuesQuery) (*ListIssuesResult, error) {
	uc.logger.Debugw("executing search issues use case",
		"title", query.TitleSubstring,
		"department_id", query.DepartmentID,
	)

	filter := issue.IssueFilter{
		ShowResolved: query.ShowResolved,
		DepartmentID: query.DepartmentID,
		TitleLike:    query.TitleSubstring,
		Page:         normalizePage(query.Page),
		PageSize:     normalizePageSize(query.PageSize),
	}

	issues, total, err := uc.issueRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to search issues", "error", err)
		return nil, err
	}

	return &ListIssuesResult{
		Issues:   dto.ToIssueDTOs(issues),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
