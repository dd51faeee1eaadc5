package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusmind/internal/domain/directory"
	"campusmind/internal/domain/issue"
	apperrors "campusmind/internal/shared/errors"
)

func TestCreateIssueUseCase_Execute_Success(t *testing.T) {
	tests := []struct {
		name           string
		description    string
		classification issue.Classification
		classifierErr  error
		wantCategory   string
		wantPriority   string
	}{
		{
			name:           "confident classification yields low priority",
			description:    "The library printer is out of toner",
			classification: issue.Classification{Category: "infrastructure", Confidence: 0.92, Source: "classifier"},
			wantCategory:   "infrastructure",
			wantPriority:   "low",
		},
		{
			name:           "low confidence yields medium priority",
			description:    "Something odd with my timetable",
			classification: issue.Classification{Category: "academic", Confidence: 0.3, Source: "classifier"},
			wantCategory:   "academic",
			wantPriority:   "medium",
		},
		{
			name:           "hazard keyword forces critical",
			description:    "There is a fire hazard near the lab entrance",
			classification: issue.Classification{Category: "infrastructure", Confidence: 0.95, Source: "classifier"},
			wantCategory:   "infrastructure",
			wantPriority:   "critical",
		},
		{
			name:           "urgency keyword forces high",
			description:    "Please fix the wifi urgent before exams",
			classification: issue.Classification{Category: "network", Confidence: 0.95, Source: "classifier"},
			wantCategory:   "network",
			wantPriority:   "high",
		},
		{
			name:          "classifier failure degrades to fallback",
			description:   "My hostel room allocation is wrong",
			classifierErr: errors.New("connection refused"),
			wantCategory:  "other",
			wantPriority:  "medium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := newTestUser(t, 10, directory.RoleStudent, uintPtr(1), uintPtr(1), uintPtr(2))

			var saved *issue.Issue
			mockRepo := &mockIssueRepository{
				SaveFunc: func(ctx context.Context, i *issue.Issue) error {
					_ = i.SetID(1)
					saved = i
					return nil
				},
			}
			mockUsers := &mockUserRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*directory.User, error) {
					return student, nil
				},
			}
			classifier := &mockClassifier{
				ClassifyFunc: func(ctx context.Context, text string) (issue.Classification, error) {
					if tt.classifierErr != nil {
						return issue.Classification{}, tt.classifierErr
					}
					return tt.classification, nil
				},
			}

			useCase := NewCreateIssueUseCase(mockRepo, mockUsers, classifier, &mockLogger{})
			result, err := useCase.Execute(context.Background(), CreateIssueCommand{
				Title:       "Issue title",
				Description: tt.description,
				StudentID:   10,
			})

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, uint(1), result.IssueID)
			assert.Equal(t, "open", result.Status)
			assert.Equal(t, tt.wantCategory, result.Category)
			assert.Equal(t, tt.wantPriority, result.Priority)

			require.NotNil(t, saved)
			require.NotNil(t, saved.AssignedTo())
			assert.Equal(t, uint(2), *saved.AssignedTo())
			assert.Equal(t, uint(1), *saved.DepartmentID())
		})
	}
}

func TestCreateIssueUseCase_Execute_StudentWithoutManager(t *testing.T) {
	student := newTestUser(t, 10, directory.RoleStudent, nil, nil, nil)

	var saved *issue.Issue
	mockRepo := &mockIssueRepository{
		SaveFunc: func(ctx context.Context, i *issue.Issue) error {
			saved = i
			return nil
		},
	}
	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*directory.User, error) {
			return student, nil
		},
	}

	useCase := NewCreateIssueUseCase(mockRepo, mockUsers, &mockClassifier{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateIssueCommand{
		Title:       "Orphan issue",
		Description: "Nobody to route this to",
		StudentID:   10,
	})

	require.NoError(t, err)
	assert.Nil(t, result.AssignedTo)
	require.NotNil(t, saved)
	assert.Nil(t, saved.AssignedTo())
	assert.Equal(t, "open", saved.Status().String())
}

func TestCreateIssueUseCase_Execute_RequesterNotStudent(t *testing.T) {
	proctor := newTestUser(t, 5, directory.RoleProctor, uintPtr(1), uintPtr(1), uintPtr(3))

	mockUsers := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*directory.User, error) {
			return proctor, nil
		},
	}

	useCase := NewCreateIssueUseCase(&mockIssueRepository{}, mockUsers, &mockClassifier{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateIssueCommand{
		Title:       "Not a student",
		Description: "Staff cannot open issues",
		StudentID:   5,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCreateIssueUseCase_Execute_StudentNotFound(t *testing.T) {
	useCase := NewCreateIssueUseCase(&mockIssueRepository{}, &mockUserRepository{}, &mockClassifier{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), CreateIssueCommand{
		Title:       "Ghost",
		Description: "Unknown student",
		StudentID:   999,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestCreateIssueUseCase_Execute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateIssueCommand
	}{
		{
			name: "empty title",
			cmd:  CreateIssueCommand{Description: "desc", StudentID: 10},
		},
		{
			name: "title too long",
			cmd:  CreateIssueCommand{Title: strings.Repeat("a", 201), Description: "desc", StudentID: 10},
		},
		{
			name: "empty description",
			cmd:  CreateIssueCommand{Title: "title", StudentID: 10},
		},
		{
			name: "description too long",
			cmd:  CreateIssueCommand{Title: "title", Description: strings.Repeat("a", 5001), StudentID: 10},
		},
		{
			name: "missing student ID",
			cmd:  CreateIssueCommand{Title: "title", Description: "desc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewCreateIssueUseCase(&mockIssueRepository{}, &mockUserRepository{}, &mockClassifier{}, &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, apperrors.IsValidationError(err))
		})
	}
}
