package models

// UserModel persists directory users. PasswordHash stores the bcrypt
// digest; reports_to points at the immediate superior and is nullable for
// terminal authorities.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null;size:100"`
	Email        string `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string `gorm:"not null;size:255"`
	Role         string `gorm:"not null;size:20;index"`
	DepartmentID *uint  `gorm:"index"`
	SectionID    *uint  `gorm:"index"`
	ReportsTo    *uint  `gorm:"index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type DepartmentModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null;size:100"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}

type SectionModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null;size:100;index:idx_section_dept_name,unique"`
	DepartmentID uint   `gorm:"not null;index:idx_section_dept_name,unique"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SectionModel) TableName() string {
	return "sections"
}
