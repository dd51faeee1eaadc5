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

type ForwardIssueCommand struct {
	IssueID  uint
	ByUserID uint
}

// ForwardIssueUseCase pushes an issue one level up the reporting chain:
// unassigned issues escalate from the owning student, assigned ones from the
// current assignee, with the vice-chancellor as terminal fallback.
type ForwardIssueUseCase struct {
	issueRepo issue.IssueRepository
	userRepo  directory.UserRepository
	txMgr     Transactor
	notifier  EscalationNotifier
	logger    logger.Interface
}

func NewForwardIssueUseCase(
	issueRepo issue.IssueRepository,
	userRepo directory.UserRepository,
	txMgr Transactor,
	notifier EscalationNotifier,
	logger logger.Interface,
) *ForwardIssueUseCase {
	return &ForwardIssueUseCase{
		issueRepo: issueRepo,
		userRepo:  userRepo,
		txMgr:     txMgr,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *ForwardIssueUseCase) Execute(ctx context.Context, cmd ForwardIssueCommand) (*dto.IssueDTO, error) {
	uc.logger.Infow("executing forward issue use case", "issue_id", cmd.IssueID, "by_user_id", cmd.ByUserID)

	if cmd.IssueID == 0 {
		return nil, apperrors.NewValidationError("issue ID is required")
	}
	if cmd.ByUserID == 0 {
		return nil, apperrors.NewValidationError("forwarding user ID is required")
	}

	var forwarded *issue.Issue
	var next *directory.User

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		iss, err := uc.issueRepo.GetByID(txCtx, cmd.IssueID)
		if err != nil {
			if errors.Is(err, issue.ErrIssueNotFound) {
				return apperrors.NewNotFoundError("issue not found")
			}
			return err
		}

		if _, err := uc.userRepo.GetByID(txCtx, cmd.ByUserID); err != nil {
			if errors.Is(err, directory.ErrUserNotFound) {
				return apperrors.NewNotFoundError("forwarding user not found")
			}
			return err
		}

		next, err = nextAssigneeFor(txCtx, uc.userRepo, iss)
		if err != nil {
			return err
		}

		if err := iss.ForwardTo(next.ID(), cmd.ByUserID); err != nil {
			return apperrors.NewInvalidStateError(err.Error())
		}

		if err := uc.issueRepo.Update(txCtx, iss); err != nil {
			return err
		}

		forwarded = iss
		return nil
	})
	if txErr != nil {
		uc.logger.Errorw("failed to forward issue", "error", txErr, "issue_id", cmd.IssueID)
		return nil, txErr
	}

	uc.notifyAssignment(ctx, forwarded, next)

	uc.logger.Infow("issue forwarded",
		"issue_id", forwarded.ID(),
		"assigned_to", next.ID(),
		"by_user_id", cmd.ByUserID,
	)

	return dto.ToIssueDTO(forwarded), nil
}

func (uc *ForwardIssueUseCase) notifyAssignment(ctx context.Context, iss *issue.Issue, assignee *directory.User) {
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

// nextAssigneeFor resolves one escalation step for an issue. The walk starts
// at the current assignee when one exists, otherwise at the owning student.
func nextAssigneeFor(ctx context.Context, users directory.UserFinder, iss *issue.Issue) (*directory.User, error) {
	from := iss.StudentID()
	if iss.AssignedTo() != nil {
		from = *iss.AssignedTo()
	}

	next, err := directory.NextAssignee(ctx, users, from)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrNoHigherAuthority):
			return nil, apperrors.NewInvalidStateError("no higher authority to forward to")
		case errors.Is(err, directory.ErrReportingCycle):
			return nil, apperrors.NewInvalidStateError("reporting chain contains a cycle")
		case errors.Is(err, directory.ErrUserNotFound):
			return nil, apperrors.NewInvalidStateError("no higher authority to forward to")
		default:
			return nil, err
		}
	}
	return next, nil
}
