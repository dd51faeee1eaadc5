package mappers

import (
	"fmt"

	"campusmind/internal/domain/directory"
	"campusmind/internal/infrastructure/persistence/models"
)

// DirectoryMapper converts between directory domain entities and their
// persistence models.
type DirectoryMapper interface {
	UserToModel(u *directory.User) *models.UserModel
	UserToDomain(model *models.UserModel) (*directory.User, error)
	DepartmentToModel(d *directory.Department) *models.DepartmentModel
	DepartmentToDomain(model *models.DepartmentModel) (*directory.Department, error)
	SectionToModel(s *directory.Section) *models.SectionModel
	SectionToDomain(model *models.SectionModel) (*directory.Section, error)
}

type DirectoryMapperImpl struct{}

func NewDirectoryMapper() DirectoryMapper {
	return &DirectoryMapperImpl{}
}

func (m *DirectoryMapperImpl) UserToModel(u *directory.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.Credential().Hash(),
		Role:         u.Role().String(),
		DepartmentID: u.DepartmentID(),
		SectionID:    u.SectionID(),
		ReportsTo:    u.ReportsTo(),
	}
}

func (m *DirectoryMapperImpl) UserToDomain(model *models.UserModel) (*directory.User, error) {
	role, err := directory.NewRole(model.Role)
	if err != nil {
		return nil, fmt.Errorf("invalid stored role (id=%d): %w", model.ID, err)
	}

	return directory.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		directory.CredentialFromHash(model.PasswordHash),
		role,
		model.DepartmentID,
		model.SectionID,
		model.ReportsTo,
	)
}

func (m *DirectoryMapperImpl) DepartmentToModel(d *directory.Department) *models.DepartmentModel {
	return &models.DepartmentModel{
		ID:   d.ID(),
		Name: d.Name(),
	}
}

func (m *DirectoryMapperImpl) DepartmentToDomain(model *models.DepartmentModel) (*directory.Department, error) {
	return directory.ReconstructDepartment(model.ID, model.Name)
}

func (m *DirectoryMapperImpl) SectionToModel(s *directory.Section) *models.SectionModel {
	return &models.SectionModel{
		ID:           s.ID(),
		Name:         s.Name(),
		DepartmentID: s.DepartmentID(),
	}
}

func (m *DirectoryMapperImpl) SectionToDomain(model *models.SectionModel) (*directory.Section, error) {
	return directory.ReconstructSection(model.ID, model.Name, model.DepartmentID)
}
