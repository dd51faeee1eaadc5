package usecases

import (
	"context"

	"campusmind/internal/application/directory/dto"
	"campusmind/internal/domain/directory"
	apperrors "campusmind/internal/shared/errors"
	"campusmind/internal/shared/logger"
)

type GetDepartmentQuery struct {
	DepartmentID uint
}

type GetDepartmentResult struct {
	Department *dto.DepartmentDTO `json:"department"`
	Sections   []*dto.SectionDTO  `json:"sections"`
}

type GetDepartmentUseCase struct {
	departmentRepo directory.DepartmentRepository
	sectionRepo    directory.SectionRepository
	logger         logger.Interface
}

func NewGetDepartmentUseCase(
	departmentRepo directory.DepartmentRepository,
	sectionRepo directory.SectionRepository,
	logger logger.Interface,
) *GetDepartmentUseCase {
	return &GetDepartmentUseCase{
		departmentRepo: departmentRepo,
		sectionRepo:    sectionRepo,
		logger:         logger,
	}
}

func (uc *GetDepartmentUseCase) Execute(ctx context.Context, query GetDepartmentQuery) (*GetDepartmentResult, error) {
	if query.DepartmentID == 0 {
		return nil, apperrors.NewValidationError("department ID is required")
	}

	department, err := uc.departmentRepo.GetByID(ctx, query.DepartmentID)
	if err != nil {
		uc.logger.Errorw("failed to get department", "error", err, "department_id", query.DepartmentID)
		return nil, err
	}
	if department == nil {
		return nil, apperrors.NewNotFoundError("department not found")
	}

	sections, err := uc.sectionRepo.ListByDepartment(ctx, department.ID())
	if err != nil {
		uc.logger.Errorw("failed to list sections", "error", err, "department_id", department.ID())
		return nil, err
	}

	sectionDTOs := make([]*dto.SectionDTO, 0, len(sections))
	for _, s := range sections {
		sectionDTOs = append(sectionDTOs, dto.ToSectionDTO(s))
	}

	return &GetDepartmentResult{
		Department: dto.ToDepartmentDTO(department),
		Sections:   sectionDTOs,
	}, nil
}
