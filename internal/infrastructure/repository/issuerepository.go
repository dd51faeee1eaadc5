package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"campusmind/internal/domain/issue"
	"campusmind/internal/infrastructure/persistence/mappers"
	"campusmind/internal/infrastructure/persistence/models"
	"campusmind/internal/shared/db"
	apperrors "campusmind/internal/shared/errors"
)

type IssueRepository struct {
	db     *gorm.DB
	mapper mappers.IssueMapper
}

func NewIssueRepository(db *gorm.DB) *IssueRepository {
	return &IssueRepository{
		db:     db,
		mapper: mappers.NewIssueMapper(),
	}
}

func (r *IssueRepository) Save(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save issue: %w", err)
	}

	if err := i.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// Update persists a mutated issue with optimistic locking. The domain has
// already incremented the version, so the match runs against the previous one.
func (r *IssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	previousVersion := model.Version - 1
	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ? AND version = ?", model.ID, previousVersion).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update issue: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("issue was modified concurrently")
	}

	return nil
}

func (r *IssueRepository) GetByID(ctx context.Context, id uint) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, issue.ErrIssueNotFound
		}
		return nil, fmt.Errorf("failed to find issue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List applies the visibility scope and the remaining predicates as one
// query, so role scope and the resolved filter are always evaluated together.
func (r *IssueRepository) List(ctx context.Context, filter issue.IssueFilter) ([]*issue.Issue, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.IssueModel{})

	query = applyScope(query, filter.Scope)

	if !filter.ShowResolved {
		query = query.Where("status <> ?", "closed")
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.TitleLike != "" {
		query = query.Where("title LIKE ?", "%"+escapeLike(filter.TitleLike)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count issues: %w", err)
	}

	query = query.Order("created_at DESC")

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var issueModels []models.IssueModel
	if err := query.Find(&issueModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := make([]*issue.Issue, len(issueModels))
	for idx, model := range issueModels {
		i, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		issues[idx] = i
	}

	return issues, total, nil
}

// applyScope translates a visibility scope into a single WHERE group. A
// scope's conditions are alternatives (proctor: assigned-to OR section), so
// they are OR'd inside the group and AND'd with everything else.
func applyScope(query *gorm.DB, scope *issue.VisibilityScope) *gorm.DB {
	if scope == nil {
		return query
	}
	if scope.None {
		return query.Where("1 = 0")
	}

	var conds []string
	var args []interface{}

	if scope.StudentID != nil {
		conds = append(conds, "student_id = ?")
		args = append(args, *scope.StudentID)
	}
	if scope.AssigneeID != nil {
		conds = append(conds, "assigned_to = ?")
		args = append(args, *scope.AssigneeID)
	}
	if scope.SectionID != nil {
		conds = append(conds, "section_id = ?")
		args = append(args, *scope.SectionID)
	}
	if scope.DepartmentID != nil {
		conds = append(conds, "department_id = ?")
		args = append(args, *scope.DepartmentID)
	}

	if len(conds) == 0 {
		return query.Where("1 = 0")
	}

	return query.Where("("+strings.Join(conds, " OR ")+")", args...)
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
