package usecases

import (
	"context"

	"campusmind/internal/application/directory/dto"
	"campusmind/internal/domain/directory"
	"campusmind/internal/shared/logger"
)

type ListUsersQuery struct {
	Role string
}

type ListUsersUseCase struct {
	userRepo directory.UserRepository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo directory.UserRepository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) ([]*dto.UserDTO, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	if query.Role != "" {
		filtered := make([]*directory.User, 0, len(users))
		for _, u := range users {
			if u.Role().String() == query.Role {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	return dto.ToUserDTOs(users), nil
}
