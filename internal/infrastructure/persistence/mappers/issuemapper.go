package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"campusmind/internal/domain/issue"
	vo "campusmind/internal/domain/issue/valueobjects"
	"campusmind/internal/infrastructure/persistence/models"
)

// IssueMapper converts between Issue domain entities and persistence models.
type IssueMapper interface {
	ToModel(i *issue.Issue) *models.IssueModel
	ToDomain(model *models.IssueModel) (*issue.Issue, error)
}

type IssueMapperImpl struct{}

func NewIssueMapper() IssueMapper {
	return &IssueMapperImpl{}
}

func (m *IssueMapperImpl) ToModel(i *issue.Issue) *models.IssueModel {
	model := &models.IssueModel{
		ID:           i.ID(),
		Title:        i.Title(),
		Description:  i.Description(),
		StudentID:    i.StudentID(),
		DepartmentID: i.DepartmentID(),
		SectionID:    i.SectionID(),
		Category:     i.Category().String(),
		Priority:     i.Priority().String(),
		Status:       i.Status().String(),
		AssignedTo:   i.AssignedTo(),
		ForwardedBy:  i.ForwardedBy(),
		VerifiedBy:   i.VerifiedBy(),
		Version:      i.Version(),
		CreatedAt:    i.CreatedAt().UnixMilli(),
		UpdatedAt:    i.UpdatedAt().UnixMilli(),
	}

	if i.VerifiedAt() != nil {
		verified := i.VerifiedAt().UnixMilli()
		model.VerifiedAt = &verified
	}

	classificationJSON, _ := json.Marshal(i.Classification())
	model.Classification = datatypes.JSON(classificationJSON)

	return model
}

func (m *IssueMapperImpl) ToDomain(model *models.IssueModel) (*issue.Issue, error) {
	category, err := vo.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid stored category (id=%d): %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid stored priority (id=%d): %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid stored status (id=%d): %w", model.ID, err)
	}

	var classification issue.Classification
	if len(model.Classification) > 0 {
		if err := json.Unmarshal(model.Classification, &classification); err != nil {
			return nil, fmt.Errorf("failed to unmarshal issue classification (id=%d): %w", model.ID, err)
		}
	} else {
		classification = issue.FallbackClassification()
	}

	var verifiedAt *time.Time
	if model.VerifiedAt != nil {
		t := millisToTime(*model.VerifiedAt)
		verifiedAt = &t
	}

	return issue.ReconstructIssue(
		model.ID,
		model.Title,
		model.Description,
		model.StudentID,
		model.DepartmentID,
		model.SectionID,
		category,
		priority,
		status,
		model.AssignedTo,
		model.ForwardedBy,
		model.VerifiedBy,
		verifiedAt,
		classification,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}
