package usecases

import (
	"context"

	"campusmind/internal/application/directory/dto"
)

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, role string) (token string, expiresIn int64, err error)
}

type LoginWithPasswordExecutor interface {
	Execute(ctx context.Context, cmd LoginWithPasswordCommand) (*LoginWithPasswordResult, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error)
}

type ListUsersExecutor interface {
	Execute(ctx context.Context, query ListUsersQuery) ([]*dto.UserDTO, error)
}

type GetDepartmentExecutor interface {
	Execute(ctx context.Context, query GetDepartmentQuery) (*GetDepartmentResult, error)
}

type GetSectionExecutor interface {
	Execute(ctx context.Context, query GetSectionQuery) (*dto.SectionDTO, error)
}
