package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"campusmind/internal/domain/issue"
	vo "campusmind/internal/domain/issue/valueobjects"
	"campusmind/internal/infrastructure/persistence/models"
	apperrors "campusmind/internal/shared/errors"
)

// ---------------------------------------------------------------- // Helpers

func setupIssueDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.IssueModel{}))

	return db
}

type issueSeed struct {
	studentID    uint
	departmentID *uint
	sectionID    *uint
	assignedTo   *uint
	title        string
	closed       bool
}

func seedIssue(t *testing.T, repo *IssueRepository, seed issueSeed) *issue.Issue {
	t.Helper()

	title := seed.title
	if title == "" {
		title = "Projector not working"
	}

	iss, err := issue.NewIssue(
		title,
		"The projector in the lecture hall stopped working",
		seed.studentID,
		seed.departmentID,
		seed.sectionID,
		vo.CategoryInfrastructure,
		vo.PriorityMedium,
		seed.assignedTo,
		issue.FallbackClassification(),
	)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, iss))

	if seed.closed {
		require.NoError(t, iss.Close())
		require.NoError(t, repo.Update(ctx, iss))
	}

	return iss
}

func issueIDs(issues []*issue.Issue) []uint {
	ids := make([]uint, 0, len(issues))
	for _, i := range issues {
		ids = append(ids, i.ID())
	}
	return ids
}

func idPtr(v uint) *uint {
	return &v
}

// ---------------------------------------------------------------- // Save / GetByID

func TestIssueRepository_SaveAndGetByID(t *testing.T) {
	db := setupIssueDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	t.Run("save assigns an id and round-trips", func(t *testing.T) {
		seeded := seedIssue(t, repo, issueSeed{
			studentID:    1,
			departmentID: idPtr(10),
			sectionID:    idPtr(100),
			assignedTo:   idPtr(2),
		})
		assert.NotZero(t, seeded.ID())

		found, err := repo.GetByID(ctx, seeded.ID())
		require.NoError(t, err)
		assert.Equal(t, seeded.Title(), found.Title())
		assert.Equal(t, uint(1), found.StudentID())
		assert.Equal(t, vo.StatusOpen, found.Status())
		require.NotNil(t, found.AssignedTo())
		assert.Equal(t, uint(2), *found.AssignedTo())
		assert.Equal(t, 1, found.Version())
	})

	t.Run("missing id resolves to not found", func(t *testing.T) {
		_, err := repo.GetByID(ctx, 9999)
		assert.ErrorIs(t, err, issue.ErrIssueNotFound)
	})
}

// ---------------------------------------------------------------- // Update

func TestIssueRepository_Update(t *testing.T) {
	db := setupIssueDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	t.Run("persists mutations and bumps the stored version", func(t *testing.T) {
		seeded := seedIssue(t, repo, issueSeed{
			studentID:  1,
			assignedTo: idPtr(2),
		})

		require.NoError(t, seeded.ForwardTo(3, 2))
		require.NoError(t, repo.Update(ctx, seeded))

		found, err := repo.GetByID(ctx, seeded.ID())
		require.NoError(t, err)
		assert.Equal(t, vo.StatusForwarded, found.Status())
		require.NotNil(t, found.AssignedTo())
		assert.Equal(t, uint(3), *found.AssignedTo())
		require.NotNil(t, found.ForwardedBy())
		assert.Equal(t, uint(2), *found.ForwardedBy())
		assert.Equal(t, 2, found.Version())
	})

	t.Run("stale version is rejected as a conflict", func(t *testing.T) {
		seeded := seedIssue(t, repo, issueSeed{
			studentID:  1,
			assignedTo: idPtr(2),
		})

		first, err := repo.GetByID(ctx, seeded.ID())
		require.NoError(t, err)
		second, err := repo.GetByID(ctx, seeded.ID())
		require.NoError(t, err)

		require.NoError(t, first.ForwardTo(3, 2))
		require.NoError(t, repo.Update(ctx, first))

		require.NoError(t, second.ForwardTo(4, 2))
		err = repo.Update(ctx, second)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperrors.ErrorTypeConflict, appErr.Type)

		// The first writer's state must survive untouched.
		found, err := repo.GetByID(ctx, seeded.ID())
		require.NoError(t, err)
		require.NotNil(t, found.AssignedTo())
		assert.Equal(t, uint(3), *found.AssignedTo())
		assert.Equal(t, 2, found.Version())
	})
}

// ---------------------------------------------------------------- // List scoping

func TestIssueRepository_List_ScopeAndResolvedCompose(t *testing.T) {
	db := setupIssueDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	// Student 1 sits in department 10, section 100, under proctor 2.
	// Student 5 shares the section; student 6 is in another department.
	open1 := seedIssue(t, repo, issueSeed{
		studentID: 1, departmentID: idPtr(10), sectionID: idPtr(100), assignedTo: idPtr(2),
		title: "Broken chair",
	})
	closed1 := seedIssue(t, repo, issueSeed{
		studentID: 1, departmentID: idPtr(10), sectionID: idPtr(100), assignedTo: idPtr(2),
		title: "Water cooler leak", closed: true,
	})
	peer := seedIssue(t, repo, issueSeed{
		studentID: 5, departmentID: idPtr(10), sectionID: idPtr(100), assignedTo: idPtr(2),
		title: "Slow wifi",
	})
	other := seedIssue(t, repo, issueSeed{
		studentID: 6, departmentID: idPtr(20), sectionID: idPtr(200), assignedTo: idPtr(4),
		title: "Library hours",
	})

	t.Run("student scope with resolved included", func(t *testing.T) {
		studentID := uint(1)
		issues, total, err := repo.List(ctx, issue.IssueFilter{
			Scope:        &issue.VisibilityScope{StudentID: &studentID},
			ShowResolved: true,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.ElementsMatch(t, []uint{open1.ID(), closed1.ID()}, issueIDs(issues))
	})

	t.Run("student scope hiding resolved drops the closed issue", func(t *testing.T) {
		studentID := uint(1)
		issues, total, err := repo.List(ctx, issue.IssueFilter{
			Scope:        &issue.VisibilityScope{StudentID: &studentID},
			ShowResolved: false,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.ElementsMatch(t, []uint{open1.ID()}, issueIDs(issues))
	})

	t.Run("proctor scope ORs assignee and section inside one group", func(t *testing.T) {
		proctorID := uint(2)
		issues, total, err := repo.List(ctx, issue.IssueFilter{
			Scope:        &issue.VisibilityScope{AssigneeID: &proctorID, SectionID: idPtr(100)},
			ShowResolved: true,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.ElementsMatch(t, []uint{open1.ID(), closed1.ID(), peer.ID()}, issueIDs(issues))
	})

	t.Run("proctor scope still composes with the resolved filter", func(t *testing.T) {
		proctorID := uint(2)
		issues, total, err := repo.List(ctx, issue.IssueFilter{
			Scope:        &issue.VisibilityScope{AssigneeID: &proctorID, SectionID: idPtr(100)},
			ShowResolved: false,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.ElementsMatch(t, []uint{open1.ID(), peer.ID()}, issueIDs(issues))
	})

	t.Run("department scope sees only its own department", func(t *testing.T) {
		issues, total, err := repo.List(ctx, issue.IssueFilter{
			Scope:        &issue.VisibilityScope{DepartmentID: idPtr(20)},
			ShowResolved: true,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.ElementsMatch(t, []uint{other.ID()}, issueIDs(issues))
	})

	t.Run("empty scope matches nothing", func(t *testing.T) {
		issues, total, err := repo.List(ctx, issue.IssueFilter{
			Scope:        &issue.VisibilityScope{None: true},
			ShowResolved: true,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
		assert.Empty(t, issues)
	})

	t.Run("nil scope is unrestricted", func(t *testing.T) {
		_, total, err := repo.List(ctx, issue.IssueFilter{
			Scope:        nil,
			ShowResolved: true,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
	})

	t.Run("title and department predicates stack on the scope", func(t *testing.T) {
		issues, total, err := repo.List(ctx, issue.IssueFilter{
			Scope:        &issue.VisibilityScope{DepartmentID: idPtr(10)},
			ShowResolved: true,
			TitleLike:    "wifi",
		})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.ElementsMatch(t, []uint{peer.ID()}, issueIDs(issues))
	})
}

// ---------------------------------------------------------------- // Lifecycle visibility

// Walks an issue through its lifecycle against a real database: reported by a
// student, forwarded up to the head, verified as resolved. Once closed, only
// the student's own view retains it, and only when resolved issues are shown.
func TestIssueRepository_ClosedIssueVisibleToStudentOnly(t *testing.T) {
	db := setupIssueDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	studentID := uint(1)
	proctorID := uint(2)
	hodID := uint(3)

	iss := seedIssue(t, repo, issueSeed{
		studentID:  studentID,
		assignedTo: &proctorID,
		title:      "Sparking socket in the lab",
	})

	// Proctor escalates to the head of department.
	require.NoError(t, iss.ForwardTo(hodID, proctorID))
	require.NoError(t, repo.Update(ctx, iss))

	// Head verifies the fix and closes.
	iss.MarkVerified(hodID, time.Now())
	require.NoError(t, iss.Close())
	require.NoError(t, repo.Update(ctx, iss))

	found, err := repo.GetByID(ctx, iss.ID())
	require.NoError(t, err)
	assert.Equal(t, vo.StatusClosed, found.Status())
	require.NotNil(t, found.VerifiedBy())
	assert.Equal(t, hodID, *found.VerifiedBy())
	assert.NotNil(t, found.VerifiedAt())

	studentScope := &issue.VisibilityScope{StudentID: &studentID}
	proctorScope := &issue.VisibilityScope{AssigneeID: &proctorID}
	hodScope := &issue.VisibilityScope{AssigneeID: &hodID}

	t.Run("student sees it when resolved issues are shown", func(t *testing.T) {
		issues, total, err := repo.List(ctx, issue.IssueFilter{Scope: studentScope, ShowResolved: true})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.ElementsMatch(t, []uint{iss.ID()}, issueIDs(issues))
	})

	t.Run("student default view hides it", func(t *testing.T) {
		_, total, err := repo.List(ctx, issue.IssueFilter{Scope: studentScope, ShowResolved: false})
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
	})

	t.Run("proctor lost it when the assignment moved on", func(t *testing.T) {
		_, total, err := repo.List(ctx, issue.IssueFilter{Scope: proctorScope, ShowResolved: true})
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
	})

	t.Run("head still holds the assignment", func(t *testing.T) {
		issues, total, err := repo.List(ctx, issue.IssueFilter{Scope: hodScope, ShowResolved: true})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.ElementsMatch(t, []uint{iss.ID()}, issueIDs(issues))
	})
}
