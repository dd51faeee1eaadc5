package usecases

import (
	"context"
	"errors"
	"time"

	"campusmind/internal/domain/directory"
	"campusmind/internal/domain/issue"
	apperrors "campusmind/internal/shared/errors"
	"campusmind/internal/shared/logger"
)

type CreateIssueCommand struct {
	Title       string
	Description string
	StudentID   uint
}

type CreateIssueResult struct {
	IssueID    uint
	Status     string
	Category   string
	Priority   string
	AssignedTo *uint
	CreatedAt  time.Time
}

type CreateIssueUseCase struct {
	issueRepo  issue.IssueRepository
	userRepo   directory.UserRepository
	classifier issue.Classifier
	logger     logger.Interface
}

func NewCreateIssueUseCase(
	issueRepo issue.IssueRepository,
	userRepo directory.UserRepository,
	classifier issue.Classifier,
	logger logger.Interface,
) *CreateIssueUseCase {
	return &CreateIssueUseCase{
		issueRepo:  issueRepo,
		userRepo:   userRepo,
		classifier: classifier,
		logger:     logger,
	}
}

func (uc *CreateIssueUseCase) Execute(ctx context.Context, cmd CreateIssueCommand) (*CreateIssueResult, error) {
	uc.logger.Infow("executing create issue use case", "title", cmd.Title, "student_id", cmd.StudentID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create issue command", "error", err)
		return nil, err
	}

	student, err := uc.userRepo.GetByID(ctx, cmd.StudentID)
	if err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("student not found")
		}
		uc.logger.Errorw("failed to load student", "error", err, "student_id", cmd.StudentID)
		return nil, err
	}
	if !student.Role().IsStudent() {
		return nil, apperrors.NewNotFoundError("student not found")
	}

	classification, category, priority := issue.Classify(ctx, uc.classifier, cmd.Description)

	newIssue, err := issue.NewIssue(
		cmd.Title,
		cmd.Description,
		student.ID(),
		student.DepartmentID(),
		student.SectionID(),
		category,
		priority,
		student.ReportsTo(),
		classification,
	)
	if err != nil {
		uc.logger.Errorw("failed to create issue entity", "error", err)
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := uc.issueRepo.Save(ctx, newIssue); err != nil {
		uc.logger.Errorw("failed to save issue", "error", err)
		return nil, err
	}

	uc.logger.Infow("issue created",
		"issue_id", newIssue.ID(),
		"category", newIssue.Category().String(),
		"priority", newIssue.Priority().String(),
	)

	return &CreateIssueResult{
		IssueID:    newIssue.ID(),
		Status:     newIssue.Status().String(),
		Category:   newIssue.Category().String(),
		Priority:   newIssue.Priority().String(),
		AssignedTo: newIssue.AssignedTo(),
		CreatedAt:  newIssue.CreatedAt(),
	}, nil
}

func (uc *CreateIssueUseCase) validateCommand(cmd CreateIssueCommand) error {
	if len(cmd.Title) == 0 {
		return apperrors.NewValidationError("title is required")
	}

	if len(cmd.Title) > 200 {
		return apperrors.NewValidationError("title exceeds maximum length of 200 characters")
	}

	if len(cmd.Description) == 0 {
		return apperrors.NewValidationError("description is required")
	}

	if len(cmd.Description) > 5000 {
		return apperrors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if cmd.StudentID == 0 {
		return apperrors.NewValidationError("student ID is required")
	}

	return nil
}
