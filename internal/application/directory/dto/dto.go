package dto

import (
	"campusmind/internal/domain/directory"
)

type UserDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	DepartmentID *uint  `json:"department_id"`
	SectionID    *uint  `json:"section_id"`
	ReportsTo    *uint  `json:"reports_to"`
}

func ToUserDTO(u *directory.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		Role:         u.Role().String(),
		DepartmentID: u.DepartmentID(),
		SectionID:    u.SectionID(),
		ReportsTo:    u.ReportsTo(),
	}
}

func ToUserDTOs(users []*directory.User) []*UserDTO {
	dtos := make([]*UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, ToUserDTO(u))
	}
	return dtos
}

type DepartmentDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func ToDepartmentDTO(d *directory.Department) *DepartmentDTO {
	if d == nil {
		return nil
	}
	return &DepartmentDTO{ID: d.ID(), Name: d.Name()}
}

type SectionDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	DepartmentID uint   `json:"department_id"`
}

func ToSectionDTO(s *directory.Section) *SectionDTO {
	if s == nil {
		return nil
	}
	return &SectionDTO{ID: s.ID(), Name: s.Name(), DepartmentID: s.DepartmentID()}
}
