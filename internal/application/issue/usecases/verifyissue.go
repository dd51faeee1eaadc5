package usecases

import (
	"context"
	"errors"
	"time"

	"campusmind/internal/application/issue/dto"
	"campusmind/internal/domain/directory"
	"campusmind/internal/domain/issue"
	apperrors "campusmind/internal/shared/errors"
	"campusmind/internal/shared/logger"
)

type VerifyIssueCommand struct {
	IssueID    uint
	VerifierID uint
	Resolved   bool
}

// VerifyIssueUseCase records a verification outcome. A resolved issue is
// closed; an unresolved one escalates with the verifier as actor, and when no
// higher authority exists it reopens in place instead of failing.
//
// The verification stamp is written unconditionally, before the outcome is
// applied, so verified_by/verified_at reflect the most recent check even when
// the issue stays open.
type VerifyIssueUseCase struct {
	issueRepo issue.IssueRepository
	userRepo  directory.UserRepository
	txMgr     Transactor
	notifier  EscalationNotifier
	logger    logger.Interface
}

func NewVerifyIssueUseCase(
	issueRepo issue.IssueRepository,
	userRepo directory.UserRepository,
	txMgr Transactor,
	notifier EscalationNotifier,
	logger logger.Interface,
) *VerifyIssueUseCase {
	return &VerifyIssueUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		txMgr:     txMgr,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *VerifyIssueUseCase) Execute(ctx context.Context, cmd VerifyIssueCommand) (*dto.IssueDTO, error) {
	uc.logger.Infow("executing verify issue use case",
		"issue_id", cmd.IssueID,
		"verifier_id", cmd.VerifierID,
		"resolved", cmd.Resolved,
	)

	if cmd.IssueID == 0 {
		return nil, apperrors.NewValidationError("issue ID is required")
	}
	if cmd.VerifierID == 0 {
		return nil, apperrors.NewValidationError("verifier ID is required")
	}

	var verified *issue.Issue
	var escalatedTo *directory.User

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		iss, err := uc.issueRepo.GetByID(txCtx, cmd.IssueID)
		if err != nil {
			if errors.Is(err, issue.ErrIssueNotFound) {
				return apperrors.NewNotFoundError("issue not found")
			}
			return err
		}

		if _, err := uc.userRepo.GetByID(txCtx, cmd.VerifierID); err != nil {
			if errors.Is(err, directory.ErrUserNotFound) {
				return apperrors.NewNotFoundError("verifier not found")
			}
			return err
		}

		iss.MarkVerified(cmd.VerifierID, time.Now())

		if cmd.Resolved {
			if err := iss.Close(); err != nil {
				return apperrors.NewInvalidStateError(err.Error())
			}
		} else {
			escalatedTo, err = uc.escalate(txCtx, iss, cmd.VerifierID)
			if err != nil {
				return err
			}
		}

		if err := uc.issueRepo.Update(txCtx, iss); err != nil {
			return err
		}

		verified = iss
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to verify issue", "error", txErr, "issue_id", cmd.IssueID)
		return nil, txErr
	}

	if escalatedTo != nil {
		uc.notifyAssignment(ctx, verified, escalatedTo)
	}

	uc.logger.Infow("issue verified",
		"issue_id", verified.ID(),
		"resolved", cmd.Resolved,
		"status", verified.Status().String(),
	)

	return dto.ToIssueDTO(verified), nil
}

// escalate advances the issue one level; an InvalidState outcome (no higher
// authority, cycle, or a terminal status) is absorbed by reopening the issue
// with its assignee unchanged. It returns the new assignee when the
// escalation took effect.
func (uc *VerifyIssueUseCase) escalate(ctx context.Context, iss *issue.Issue, verifierID uint) (*directory.User, error) {
	next, err := nextAssigneeFor(ctx, uc.userRepo, iss)
	if err != nil {
		if apperrors.IsInvalidStateError(err) {
			iss.ReopenAfterFailedEscalation()
			return nil, nil
		}
		return nil, err
	}

	if err := iss.ForwardTo(next.ID(), verifierID); err != nil {
		iss.ReopenAfterFailedEscalation()
		return nil, nil
	}
	return next, nil
}

func (uc *VerifyIssueUseCase) notifyAssignment(ctx context.Context, iss *issue.Issue, assignee *directory.User) {
	if uc.notifier == nil {
		return
	}
	if err := uc.notifier.NotifyAssigned(ctx, iss, assignee); err != nil {
		uc.logger.Warnw("escalation notification failed",
			"error", err,
			"issue_id", iss.ID(),
			"assignee_id", assignee.ID(),
		)
	}
}
