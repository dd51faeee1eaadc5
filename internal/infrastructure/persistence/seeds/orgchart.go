package seeds

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"campusmind/internal/domain/directory"
	"campusmind/internal/infrastructure/persistence/models"
	"campusmind/internal/shared/logger"
)

// OrgChart describes the campus hierarchy loaded from a seed file.
// One vice chancellor sits at the top; each department gets a head
// reporting to the VC, each section a proctor reporting to the head,
// and each section a batch of generated students reporting to the
// proctor.
type OrgChart struct {
	VC          SeedUser         `yaml:"vc"`
	Defaults    SeedDefaults     `yaml:"defaults"`
	Departments []SeedDepartment `yaml:"departments"`
}

type SeedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type SeedDefaults struct {
	StudentsPerSection int    `yaml:"students_per_section"`
	StaffPassword      string `yaml:"staff_password"`
}

type SeedDepartment struct {
	Name     string   `yaml:"name"`
	Sections []string `yaml:"sections"`
}

// Seeder populates the directory tables from an org chart file.
type Seeder struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewSeeder(db *gorm.DB, log logger.Interface) *Seeder {
	return &Seeder{db: db, logger: log}
}

// LoadOrgChart parses the YAML seed file at path.
func LoadOrgChart(path string) (*OrgChart, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var chart OrgChart
	if err := yaml.Unmarshal(data, &chart); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	if chart.VC.Email == "" {
		return nil, fmt.Errorf("seed file missing vc entry")
	}
	if chart.Defaults.StudentsPerSection <= 0 {
		chart.Defaults.StudentsPerSection = 50
	}
	if chart.Defaults.StaffPassword == "" {
		chart.Defaults.StaffPassword = "changeme"
	}

	return &chart, nil
}

// Seed creates the org chart records. Existing rows are matched by
// email (users) or name (departments, sections), so re-running the
// seeder is safe.
func (s *Seeder) Seed(chart *OrgChart) error {
	vcID, err := s.ensureUser(models.UserModel{
		Name:         chart.VC.Name,
		Email:        strings.ToLower(chart.VC.Email),
		PasswordHash: hashPassword(chart.VC.Password),
		Role:         "vc",
	})
	if err != nil {
		return fmt.Errorf("failed to seed vc: %w", err)
	}

	studentSeq := 0
	for _, dept := range chart.Departments {
		deptID, err := s.ensureDepartment(dept.Name)
		if err != nil {
			return fmt.Errorf("failed to seed department %s: %w", dept.Name, err)
		}

		hodID, err := s.ensureUser(models.UserModel{
			Name:         fmt.Sprintf("HOD %s", dept.Name),
			Email:        fmt.Sprintf("hod_%s@univ.edu", strings.ToLower(dept.Name)),
			PasswordHash: hashPassword(chart.Defaults.StaffPassword),
			Role:         "hod",
			DepartmentID: &deptID,
			ReportsTo:    &vcID,
		})
		if err != nil {
			return fmt.Errorf("failed to seed hod for %s: %w", dept.Name, err)
		}

		for _, secName := range dept.Sections {
			secID, err := s.ensureSection(secName, deptID)
			if err != nil {
				return fmt.Errorf("failed to seed section %s: %w", secName, err)
			}

			proctorID, err := s.ensureUser(models.UserModel{
				Name:         fmt.Sprintf("Proctor %s %s", dept.Name, secName),
				Email:        fmt.Sprintf("proctor_%s_%s@univ.edu", strings.ToLower(dept.Name), strings.ToLower(secName)),
				PasswordHash: hashPassword(chart.Defaults.StaffPassword),
				Role:         "proctor",
				DepartmentID: &deptID,
				SectionID:    &secID,
				ReportsTo:    &hodID,
			})
			if err != nil {
				return fmt.Errorf("failed to seed proctor for %s: %w", secName, err)
			}

			for i := 0; i < chart.Defaults.StudentsPerSection; i++ {
				studentSeq++
				_, err := s.ensureUser(models.UserModel{
					Name:         fmt.Sprintf("%s_Student_%d", dept.Name, studentSeq),
					Email:        fmt.Sprintf("%s_stu_%d@univ.edu", strings.ToLower(dept.Name), studentSeq),
					PasswordHash: hashPassword(strconv.Itoa(studentSeq)),
					Role:         "student",
					DepartmentID: &deptID,
					SectionID:    &secID,
					ReportsTo:    &proctorID,
				})
				if err != nil {
					return fmt.Errorf("failed to seed student %d: %w", studentSeq, err)
				}
			}
		}

		s.logger.Infow("seeded department",
			"department", dept.Name,
			"sections", len(dept.Sections))
	}

	if err := s.validateReporting(); err != nil {
		return fmt.Errorf("seeded org chart is malformed: %w", err)
	}

	s.logger.Infow("org chart seeding complete",
		"departments", len(chart.Departments),
		"students", studentSeq)

	return nil
}

// validateReporting checks every reports_to reference against the role
// hierarchy: the referenced user must exist and carry the immediately
// superior role. Pre-existing rows are covered too, so a chart seeded on top
// of hand-edited data fails loudly instead of producing broken escalations.
func (s *Seeder) validateReporting() error {
	var users []models.UserModel
	if err := s.db.Find(&users).Error; err != nil {
		return err
	}

	byID := make(map[uint]models.UserModel, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	for _, u := range users {
		if u.ReportsTo == nil {
			continue
		}
		superior, ok := byID[*u.ReportsTo]
		if !ok {
			return fmt.Errorf("user %s reports to unknown user id %d", u.Email, *u.ReportsTo)
		}
		if !directory.Role(u.Role).MayReportTo(directory.Role(superior.Role)) {
			return fmt.Errorf("user %s (%s) cannot report to %s (%s)",
				u.Email, u.Role, superior.Email, superior.Role)
		}
	}

	return nil
}

func (s *Seeder) ensureUser(user models.UserModel) (uint, error) {
	var existing models.UserModel
	err := s.db.Where("email = ?", user.Email).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, err
	}

	if err := s.db.Create(&user).Error; err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *Seeder) ensureDepartment(name string) (uint, error) {
	var existing models.DepartmentModel
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, err
	}

	dept := models.DepartmentModel{Name: name}
	if err := s.db.Create(&dept).Error; err != nil {
		return 0, err
	}
	return dept.ID, nil
}

func (s *Seeder) ensureSection(name string, departmentID uint) (uint, error) {
	var existing models.SectionModel
	err := s.db.Where("name = ? AND department_id = ?", name, departmentID).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, err
	}

	sec := models.SectionModel{Name: name, DepartmentID: departmentID}
	if err := s.db.Create(&sec).Error; err != nil {
		return 0, err
	}
	return sec.ID, nil
}

// hashPassword hashes seed credentials at the minimum bcrypt cost.
func hashPassword(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		return ""
	}
	return string(hash)
}
