package issue

import (
	"fmt"
	"time"

	vo "campusmind/internal/domain/issue/valueobjects"
)

// Issue is a student complaint tracked through the escalation chain. The
// department/section are snapshotted from the student at creation and never
// recomputed.
type Issue struct {
	id             uint
	title          string
	description    string
	studentID      uint
	departmentID   *uint
	sectionID      *uint
	category       vo.Category
	priority       vo.Priority
	status         vo.Status
	assignedTo     *uint
	forwardedBy    *uint
	verifiedBy     *uint
	verifiedAt     *time.Time
	classification Classification
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

func NewIssue(
	title string,
	description string,
	studentID uint,
	departmentID *uint,
	sectionID *uint,
	category vo.Category,
	priority vo.Priority,
	assignedTo *uint,
	classification Classification,
) (*Issue, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if studentID == 0 {
		return nil, fmt.Errorf("student ID is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now()

	return &Issue{
		title:          title,
		description:    description,
		studentID:      studentID,
		departmentID:   departmentID,
		sectionID:      sectionID,
		category:       category,
		priority:       priority,
		status:         vo.StatusOpen,
		assignedTo:     assignedTo,
		classification: classification,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func ReconstructIssue(
	id uint,
	title string,
	description string,
	studentID uint,
	departmentID *uint,
	sectionID *uint,
	category vo.Category,
	priority vo.Priority,
	status vo.Status,
	assignedTo *uint,
	forwardedBy *uint,
	verifiedBy *uint,
	verifiedAt *time.Time,
	classification Classification,
	version int,
	createdAt, updatedAt time.Time,
) (*Issue, error) {
	if id == 0 {
		return nil, fmt.Errorf("issue ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Issue{
		id:             id,
		title:          title,
		description:    description,
		studentID:      studentID,
		departmentID:   departmentID,
		sectionID:      sectionID,
		category:       category,
		priority:       priority,
		status:         status,
		assignedTo:     assignedTo,
		forwardedBy:    forwardedBy,
		verifiedBy:     verifiedBy,
		verifiedAt:     verifiedAt,
		classification: classification,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (i *Issue) ID() uint {
	return i.id
}

func (i *Issue) Title() string {
	return i.title
}

func (i *Issue) Description() string {
	return i.description
}

func (i *Issue) StudentID() uint {
	return i.studentID
}

func (i *Issue) DepartmentID() *uint {
	return i.departmentID
}

func (i *Issue) SectionID() *uint {
	return i.sectionID
}

func (i *Issue) Category() vo.Category {
	return i.category
}

func (i *Issue) Priority() vo.Priority {
	return i.priority
}

func (i *Issue) Status() vo.Status {
	return i.status
}

func (i *Issue) AssignedTo() *uint {
	return i.assignedTo
}

func (i *Issue) ForwardedBy() *uint {
	return i.forwardedBy
}

func (i *Issue) VerifiedBy() *uint {
	return i.verifiedBy
}

func (i *Issue) VerifiedAt() *time.Time {
	return i.verifiedAt
}

func (i *Issue) Classification() Classification {
	return i.classification
}

func (i *Issue) Version() int {
	return i.version
}

func (i *Issue) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Issue) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Issue) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("issue ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("issue ID cannot be zero")
	}
	i.id = id
	return nil
}

// ForwardTo moves the issue one level up the chain: records who escalated,
// who now holds it, and marks it forwarded.
func (i *Issue) ForwardTo(nextAssigneeID uint, byUserID uint) error {
	if nextAssigneeID == 0 {
		return fmt.Errorf("next assignee ID cannot be zero")
	}
	if !i.status.CanTransitionTo(vo.StatusForwarded) {
		return fmt.Errorf("cannot forward issue with status %s", i.status)
	}

	i.forwardedBy = &byUserID
	i.assignedTo = &nextAssigneeID
	i.status = vo.StatusForwarded
	i.touch()
	return nil
}

// AssignTo hands the issue to an arbitrary user outside the chain walk. The
// target is deliberately not checked for hierarchical eligibility; this is
// the manual escape hatch.
func (i *Issue) AssignTo(targetID uint, assignerID *uint) error {
	if targetID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if !i.status.CanTransitionTo(vo.StatusAssigned) {
		return fmt.Errorf("cannot assign issue with status %s", i.status)
	}

	i.assignedTo = &targetID
	if assignerID != nil {
		i.forwardedBy = assignerID
	}
	i.status = vo.StatusAssigned
	i.touch()
	return nil
}

// MarkVerified stamps the verifier and timestamp. Status is untouched; the
// caller decides between Close and escalation.
func (i *Issue) MarkVerified(verifierID uint, at time.Time) {
	i.verifiedBy = &verifierID
	i.verifiedAt = &at
	i.touch()
}

// Close resolves the issue. Closed is terminal.
func (i *Issue) Close() error {
	if i.status.IsClosed() {
		return nil
	}
	if !i.status.CanTransitionTo(vo.StatusClosed) {
		return fmt.Errorf("cannot close issue with status %s", i.status)
	}

	i.status = vo.StatusClosed
	i.touch()
	return nil
}

// ReopenAfterFailedEscalation is the absorbing fallback for
// verify(resolved=false) when no higher authority exists: the issue goes
// back to open with its assignee unchanged. On a closed issue this is a
// no-op since nothing leaves closed.
func (i *Issue) ReopenAfterFailedEscalation() {
	if !i.status.CanTransitionTo(vo.StatusOpen) {
		return
	}
	i.status = vo.StatusOpen
	i.touch()
}

// Reclassify replaces category/priority from a fresh classifier run. Status
// is not part of classification and is left alone.
func (i *Issue) Reclassify(category vo.Category, priority vo.Priority, classification Classification) error {
	if !category.IsValid() {
		return fmt.Errorf("invalid category: %s", category)
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}

	i.category = category
	i.priority = priority
	i.classification = classification
	i.touch()
	return nil
}

func (i *Issue) touch() {
	i.updatedAt = time.Now()
	i.version++
}
