package usecases

import (
	"context"

	"campusmind/internal/application/directory/dto"
	"campusmind/internal/domain/directory"
	apperrors "campusmind/internal/shared/errors"
	"campusmind/internal/shared/logger"
)

type GetSectionQuery struct {
	SectionID uint
}

type GetSectionUseCase struct {
	sectionRepo directory.SectionRepository
	logger      logger.Interface
}

func NewGetSectionUseCase(sectionRepo directory.SectionRepository, logger logger.Interface) *GetSectionUseCase {
	return &GetSectionUseCase{
		sectionRepo: sectionRepo,
		logger:      logger,
	}
}

func (uc *GetSectionUseCase) Execute(ctx context.Context, query GetSectionQuery) (*dto.SectionDTO, error) {
	if query.SectionID == 0 {
		return nil, apperrors.NewValidationError("section ID is required")
	}

	section, err := uc.sectionRepo.GetByID(ctx, query.SectionID)
	if err != nil {
		uc.logger.Errorw("failed to get section", "error", err, "section_id", query.SectionID)
		return nil, err
	}
	if section == nil {
		return nil, apperrors.NewNotFoundError("section not found")
	}

	return dto.ToSectionDTO(section), nil
}
