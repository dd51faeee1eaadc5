package usecases

import (
	"context"
	"errors"

	"campusmind/internal/application/issue/dto"
	"campusmind/internal/domain/issue"
	apperrors "campusmind/internal/shared/errors"
	"campusmind/internal/shared/logger"
)

type GetIssueQuery struct {
	IssueID uint
}

type GetIssueUseCase struct {
	issueRepo issue.IssueRepository
	logger    logger.Interface
}

func NewGetIssueUseCase(issueRepo issue.IssueRepository, logger logger.Interface) *GetIssueUseCase {
	return &GetIssueUseCase{
		issueRepo: issueRepo,
		logger:    logger,
	}
}

func (uc *GetIssueUseCase) Execute(ctx context.Context, query GetIssueQuery) (*dto.IssueDTO, error) {
	uc.logger.Debugw("executing get issue use case", "issue_id", query.IssueID)

	if query.IssueID == 0 {
		return nil, apperrors.NewValidationError("issue ID is required")
	}

	iss, err := uc.issueRepo.GetByID(ctx, query.IssueID)
	if err != nil {
		if errors.Is(err, issue.ErrIssueNotFound) {
			return nil, apperrors.NewNotFoundError("issue not found")
		}
		uc.logger.Errorw("failed to get issue", "error", err, "issue_id", query.IssueID)
		return nil, err
	}

	return dto.ToIssueDTO(iss), nil
}
