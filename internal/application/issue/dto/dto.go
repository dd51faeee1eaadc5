package dto

import (
	"time"

	"campusmind/internal/domain/issue"
)

type IssueDTO struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	StudentID    uint       `json:"student_id"`
	DepartmentID *uint      `json:"department_id"`
	SectionID    *uint      `json:"section_id"`
	Category     string     `json:"category"`
	Priority     string     `json:"priority"`
	Status       string     `json:"status"`
	AssignedTo   *uint      `json:"assigned_to"`
	ForwardedBy  *uint      `json:"forwarded_by"`
	VerifiedBy   *uint      `json:"verified_by"`
	VerifiedAt   *time.Time `json:"verified_at"`
	Confidence   float64    `json:"confidence"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToIssueDTO(i *issue.Issue) *IssueDTO {
	if i == nil {
		return nil
	}

	return &IssueDTO{
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
		VerifiedAt:   i.VerifiedAt(),
		Confidence:   i.Classification().Confidence,
		CreatedAt:    i.CreatedAt(),
		UpdatedAt:    i.UpdatedAt(),
	}
}

func ToIssueDTOs(issues []*issue.Issue) []*IssueDTO {
	dtos := make([]*IssueDTO, 0, len(issues))
	for _, i := range issues {
		dtos = append(dtos, ToIssueDTO(i))
	}
	return dtos
}
