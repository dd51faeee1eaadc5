package models

import (
	"gorm.io/datatypes"
)

type IssueModel struct {
	ID           uint   `gorm:"primaryKey"`
	Title        string `gorm:"size:200;not null"`
	Description  string `gorm:"type:text;not null"`
	StudentID    uint   `gorm:"not null;index"`
	DepartmentID *uint  `gorm:"index"`
	SectionID    *uint  `gorm:"index"`
	Category     string `gorm:"size:50;not null;index"`
	Priority     string `gorm:"size:20;not null;index"`
	Status       string `gorm:"size:20;not null;index"`
	AssignedTo   *uint  `gorm:"index"`
	ForwardedBy  *uint
	VerifiedBy   *uint
	VerifiedAt   *int64
	// Classification keeps the raw classifier output (category, confidence,
	// source) alongside the applied category/priority.
	Classification datatypes.JSON `gorm:"type:json"`
	Version        int            `gorm:"not null;default:1"`
	CreatedAt      int64          `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64          `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (IssueModel) TableName() string {
	return "issues"
}
