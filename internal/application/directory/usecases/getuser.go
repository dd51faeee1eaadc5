package usecases

import (
	"context"
	"errors"

	"campusmind/internal/application/directory/dto"
	"campusmind/internal/domain/directory"
	apperrors "campusmind/internal/shared/errors"
	"campusmind/internal/shared/logger"
)

type GetUserQuery struct {
	UserID uint
}

type GetUserUseCase struct {
	userRepo directory.UserRepository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo directory.UserRepository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	if query.UserID == 0 {
		return nil, apperrors.NewValidationError("user ID is required")
	}

	user, err := uc.userRepo.GetByID(ctx, query.UserID)
	if err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		uc.logger.Errorw("failed to get user", "error", err, "user_id", query.UserID)
		return nil, err
	}

	return dto.ToUserDTO(user), nil
}
