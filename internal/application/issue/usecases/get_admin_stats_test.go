package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusmind/internal/domain/directory"
	"campusmind/internal/domain/issue"
	vo "campusmind/internal/domain/issue/valueobjects"
)

func TestGetAdminStatsUseCase_Execute(t *testing.T) {
	issues := []*issue.Issue{
		newTestIssue(t, 1, 10, vo.StatusOpen, nil),
		newTestIssue(t, 2, 10, vo.StatusAssigned, uintPtr(2)),
		newTestIssue(t, 3, 11, vo.StatusClosed, uintPtr(2)),
	}

	var capturedFilter issue.IssueFilter
	mockRepo := &mockIssueRepository{
		ListFunc: func(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
			capturedFilter = filter
			return issues, int64(len(issues)), nil
		},
	}

	cs, err := directory.ReconstructDepartment(1, "Computer Science")
	require.NoError(t, err)
	mech, err := directory.ReconstructDepartment(2, "Mechanical")
	require.NoError(t, err)
	mockDepts := &mockDepartmentRepository{
		ListFunc: func(ctx context.Context) ([]*directory.Department, error) {
			return []*directory.Department{cs, mech}, nil
		},
	}

	useCase := NewGetAdminStatsUseCase(mockRepo, mockDepts, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetAdminStatsQuery{})

	require.NoError(t, err)
	assert.True(t, capturedFilter.ShowResolved)

	assert.Equal(t, int64(3), result.TotalIssues)
	assert.Equal(t, int64(2), result.ActiveIssues)
	assert.Equal(t, int64(1), result.ResolvedIssues)

	assert.Equal(t, int64(1), result.ByStatus["open"])
	assert.Equal(t, int64(1), result.ByStatus["assigned"])
	assert.Equal(t, int64(1), result.ByStatus["closed"])
	assert.Equal(t, int64(3), result.ByCategory["infrastructure"])

	require.Len(t, result.ByDepartment, 2)
	byName := map[string]*DepartmentStats{}
	for _, d := range result.ByDepartment {
		byName[d.DepartmentName] = d
	}
	require.Contains(t, byName, "Computer Science")
	assert.Equal(t, int64(3), byName["Computer Science"].Total)
	assert.Equal(t, int64(2), byName["Computer Science"].Active)
	assert.Equal(t, int64(1), byName["Computer Science"].Resolved)
	require.Contains(t, byName, "Mechanical")
	assert.Equal(t, int64(0), byName["Mechanical"].Total)
}

func TestGetAdminStatsUseCase_Execute_EmptyDatabase(t *testing.T) {
	mockDepts := &mockDepartmentRepository{
		ListFunc: func(ctx context.Context) ([]*directory.Department, error) {
			return nil, nil
		},
	}

	useCase := NewGetAdminStatsUseCase(&mockIssueRepository{}, mockDepts, &mockLogger{})
	result, err := useCase.Execute(context.Background(), GetAdminStatsQuery{})

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.TotalIssues)
	assert.Empty(t, result.ByDepartment)
}
