package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"campusmind/internal/domain/directory"
	"campusmind/internal/infrastructure/persistence/mappers"
	"campusmind/internal/infrastructure/persistence/models"
	"campusmind/internal/shared/db"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.DirectoryMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewDirectoryMapper(),
	}
}

func (r *UserRepository) Save(ctx context.Context, u *directory.User) error {
	model := r.mapper.UserToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	if u.ID() == 0 {
		if err := u.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*directory.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, directory.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.UserToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*directory.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, directory.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return r.mapper.UserToDomain(&model)
}

// GetVC returns the terminal escalation authority. With several vc users the
// lowest ID wins so the fallback stays deterministic.
func (r *UserRepository) GetVC(ctx context.Context) (*directory.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("role = ?", directory.RoleVC.String()).
		Order("id ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, directory.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find vc user: %w", err)
	}

	return r.mapper.UserToDomain(&model)
}

func (r *UserRepository) List(ctx context.Context) ([]*directory.User, error) {
	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*directory.User, len(userModels))
	for i, model := range userModels {
		u, err := r.mapper.UserToDomain(&model)
		if err != nil {
			return nil, err
		}
		users[i] = u
	}

	return users, nil
}

type DepartmentRepository struct {
	db     *gorm.DB
	mapper mappers.DirectoryMapper
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{
		db:     db,
		mapper: mappers.NewDirectoryMapper(),
	}
}

func (r *DepartmentRepository) Save(ctx context.Context, d *directory.Department) error {
	model := r.mapper.DepartmentToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save department: %w", err)
	}

	if d.ID() == 0 {
		if err := d.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uint) (*directory.Department, error) {
	var model models.DepartmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find department: %w", err)
	}

	return r.mapper.DepartmentToDomain(&model)
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*directory.Department, error) {
	var departmentModels []models.DepartmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("id ASC").Find(&departmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	departments := make([]*directory.Department, len(departmentModels))
	for i, model := range departmentModels {
		d, err := r.mapper.DepartmentToDomain(&model)
		if err != nil {
			return nil, err
		}
		departments[i] = d
	}

	return departments, nil
}

type SectionRepository struct {
	db     *gorm.DB
	mapper mappers.DirectoryMapper
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{
		db:     db,
		mapper: mappers.NewDirectoryMapper(),
	}
}

func (r *SectionRepository) Save(ctx context.Context, s *directory.Section) error {
	model := r.mapper.SectionToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save section: %w", err)
	}

	if s.ID() == 0 {
		if err := s.SetID(model.ID); err != nil {
			return err
		}
	}

	return nil
}

func (r *SectionRepository) GetByID(ctx context.Context, id uint) (*directory.Section, error) {
	var model models.SectionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find section: %w", err)
	}

	return r.mapper.SectionToDomain(&model)
}

func (r *SectionRepository) ListByDepartment(ctx context.Context, departmentID uint) ([]*directory.Section, error) {
	var sectionModels []models.SectionModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("department_id = ?", departmentID).
		Order("id ASC").
		Find(&sectionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sections: %w", err)
	}

	sections := make([]*directory.Section, len(sectionModels))
	for i, model := range sectionModels {
		s, err := r.mapper.SectionToDomain(&model)
		if err != nil {
			return nil, err
		}
		sections[i] = s
	}

	return sections, nil
}
