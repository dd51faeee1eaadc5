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

type AssignIssueCommand struct {
	IssueID      uint
	TargetUserID uint
	AssignerID   *uint
}

// AssignIssueUseCase is the manual escape hatch: it places an issue on any
// existing user without consulting the reporting chain.
type AssignIssueUseCase struct {
	issueRepo issue.IssueRepository
	userRepo  directory.UserRepository
	txMgr     Transactor
	notifier  EscalationNotifier
	logger    logger.Interface
}

func NewAssignIssueUseCase(
	issueRepo issue.IssueRepository,
	userRepo directory.UserRepository,
	txMgr Transactor,
	notifier EscalationNotifier,
	logger logger.Interface,
) *AssignIssueUseCase {
	return &AssignIssueUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		txMgr:     txMgr,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *AssignIssueUseCase) Execute(ctx context.Context, cmd AssignIssueCommand) (*dto.IssueDTO, error) {
	uc.logger.Infow("executing assign issue use case",
		"issue_id", cmd.IssueID,
		"target_user_id", cmd.TargetUserID,
	)

	if cmd.IssueID == 0 {
		return nil, apperrors.NewValidationError("issue ID is required")
	}
	if cmd.TargetUserID == 0 {
		return nil, apperrors.NewValidationError("target user ID is required")
	}

	var assigned *issue.Issue
	var target *directory.User

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		target, err = uc.userRepo.GetByID(txCtx, cmd.TargetUserID)
		if err != nil {
			if errors.Is(err, directory.ErrUserNotFound) {
				return apperrors.NewNotFoundError("target user not found")
			}
			return err
		}

		iss, err := uc.issueRepo.GetByID(txCtx, cmd.IssueID)
		if err != nil {
			if errors.Is(err, issue.ErrIssueNotFound) {
				return apperrors.NewNotFoundError("issue not found")
			}
			return err
		}

		if err := iss.AssignTo(target.ID(), cmd.AssignerID); err != nil {
			return apperrors.NewInvalidStateError(err.Error())
		}

		if err := uc.issueRepo.Update(txCtx, iss); err != nil {
			return err
		}

		assigned = iss
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to assign issue", "error", txErr, "issue_id", cmd.IssueID)
		return nil, txErr
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyAssigned(ctx, assigned, target); err != nil {
			uc.logger.Warnw("assignment notification failed",
				"error", err,
				"issue_id", assigned.ID(),
				"assignee_id", target.ID(),
			)
		}
	}

	uc.logger.Infow("issue assigned", "issue_id", assigned.ID(), "assigned_to", target.ID())

	return dto.ToIssueDTO(assigned), nil
}
