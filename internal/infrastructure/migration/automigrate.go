package migration

import (
	"campusmind/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.DepartmentModel{},
		&models.SectionModel{},
		&models.IssueModel{},
	}
}
