package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusmind/internal/domain/directory"
	apperrors "campusmind/internal/shared/errors"
)

func uintPtr(v uint) *uint { return &v }

func TestGetUserUseCase_Execute_Success(t *testing.T) {
	existing, err := directory.ReconstructUser(
		2,
		"Vikram Shetty",
		"vikram@campus.test",
		directory.CredentialFromHash("$2a$10$abcdefghijklmnopqrstuv"),
		directory.RoleProctor,
		uintPtr(1),
		uintPtr(1),
		uintPtr(3),
	)
	require.NoError(t, err)

	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*directory.User, error) {
			return existing, nil
		},
	}

	useCase := NewGetUserUseCase(mockUsers, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetUserQuery{UserID: 2})

	require.NoError(t, err)
	assert.Equal(t, uint(2), result.ID)
	assert.Equal(t, "proctor", result.Role)
	require.NotNil(t, result.ReportsTo)
	assert.Equal(t, uint(3), *result.ReportsTo)
}

func TestGetUserUseCase_Execute_NotFound(t *testing.T) {
	useCase := NewGetUserUseCase(&mockUserRepository{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetUserQuery{UserID: 99})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestListUsersUseCase_Execute_RoleFilter(t *testing.T) {
	student, err := directory.ReconstructUser(
		10, "A", "a@campus.test",
		directory.CredentialFromHash("$2a$10$abcdefghijklmnopqrstuv"),
		directory.RoleStudent, nil, nil, nil,
	)
	require.NoError(t, err)
	proctor, err := directory.ReconstructUser(
		2, "B", "b@campus.test",
		directory.CredentialFromHash("$2a$10$abcdefghijklmnopqrstuv"),
		directory.RoleProctor, nil, nil, nil,
	)
	require.NoError(t, err)

	mockUsers := &mockUserRepository{
		ListFunc: func(ctx context.Context) ([]*directory.User, error) {
			return []*directory.User{student, proctor}, nil
		},
	}

	useCase := NewListUsersUseCase(mockUsers, &mockLogger{})

	all, err := useCase.Execute(context.Background(), ListUsersQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	proctorsOnly, err := useCase.Execute(context.Background(), ListUsersQuery{Role: "proctor"})
	require.NoError(t, err)
	require.Len(t, proctorsOnly, 1)
	assert.Equal(t, uint(2), proctorsOnly[0].ID)
}
