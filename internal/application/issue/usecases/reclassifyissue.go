package usecases

import (
	"context"
	"errors"

	"campusmind/internal/application/issue/dto"
	"campusmind/internal/domain/issue"
	apperrors "campusmind/internal/shared/errors"
	"campusmind/internal/shared/logger"
)

type ReclassifyIssueCommand struct {
	IssueID uint
}

// ReclassifyIssueUseCase re-runs the classifier and the priority heuristic
// over the stored description. With an unchanged description and classifier
// the operation is idempotent.
type ReclassifyIssueUseCase struct {
	issueRepo  issue.IssueRepository
	classifier issue.Classifier
	txMgr      Transactor
	logger     logger.Interface
}

func NewReclassifyIssueUseCase(
	issueRepo issue.IssueRepository,
	classifier issue.Classifier,
	txMgr Transactor,
	logger logger.Interface,
) *ReclassifyIssueUseCase {
	return &ReclassifyIssueUseCase{
		issueRepo:  issueRepo,
		classifier: classifier,
		txMgr:      txMgr,
		logger:     logger,
	}
}

func (uc *ReclassifyIssueUseCase) Execute(ctx context.Context, cmd ReclassifyIssueCommand) (*dto.IssueDTO, error) {
	uc.logger.Infow("executing reclassify issue use case", "issue_id", cmd.IssueID)

	if cmd.IssueID == 0 {
		return nil, apperrors.NewValidationError("issue ID is required")
	}

	var reclassified *issue.Issue

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		iss, err := uc.issueRepo.GetByID(txCtx, cmd.IssueID)
		if err != nil {
			if errors.Is(err, issue.ErrIssueNotFound) {
				return apperrors.NewNotFoundError("issue not found")
			}
			return err
		}

		classification, category, priority := issue.Classify(txCtx, uc.classifier, iss.Description())

		if err := iss.Reclassify(category, priority, classification); err != nil {
			return apperrors.NewInvalidStateError(err.Error())
		}

		if err := uc.issueRepo.Update(txCtx, iss); err != nil {
			return err
		}

		reclassified = iss
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to reclassify issue", "error", txErr, "issue_id", cmd.IssueID)
		return nil, txErr
	}

	uc.logger.Infow("issue reclassified",
		"issue_id", reclassified.ID(),
		"category", reclassified.Category().String(),
		"priority", reclassified.Priority().String(),
	)

	return dto.ToIssueDTO(reclassified), nil
}
