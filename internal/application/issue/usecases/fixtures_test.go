package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campusmind/internal/domain/directory"
	"campusmind/internal/domain/issue"
	vo "campusmind/internal/domain/issue/valueobjects"
)

func uintPtr(v uint) *uint { return &v }

func newTestUser(t *testing.T, id uint, role directory.Role, departmentID, sectionID, reportsTo *uint) *directory.User {
	t.Helper()
	u, err := directory.ReconstructUser(
		id,
		"Test User",
		"user@campus.test",
		directory.CredentialFromHash("$2a$10$abcdefghijklmnopqrstuv"),
		role,
		departmentID,
		sectionID,
		reportsTo,
	)
	require.NoError(t, err)
	return u
}

func newTestIssue(t *testing.T, id uint, studentID uint, status vo.Status, assignedTo *uint) *issue.Issue {
	t.Helper()
	created := time.Now().Add(-time.Hour)
	i, err := issue.ReconstructIssue(
		id,
		"Projector not working",
		"The projector in room 204 stopped working",
		studentID,
		uintPtr(1),
		uintPtr(1),
		vo.CategoryInfrastructure,
		vo.PriorityMedium,
		status,
		assignedTo,
		nil,
		nil,
		nil,
		issue.Classification{Category: "infrastructure", Confidence: 0.9, Source: "classifier"},
		1,
		created,
		created,
	)
	require.NoError(t, err)
	return i
}
