package directory

import "fmt"

// Department is an organizational unit owning zero or more sections.
type Department struct {
	id   uint
	name string
}

func NewDepartment(name string) (*Department, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("department name is required")
	}
	return &Department{name: name}, nil
}

func ReconstructDepartment(id uint, name string) (*Department, error) {
	if id == 0 {
		return nil, fmt.Errorf("department ID cannot be zero")
	}
	return &Department{id: id, name: name}, nil
}

func (d *Department) ID() uint {
	return d.id
}

func (d *Department) Name() string {
	return d.name
}

func (d *Department) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("department ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("department ID cannot be zero")
	}
	d.id = id
	return nil
}

// Section is a subdivision of a department owning zero or more users.
type Section struct {
	id           uint
	name         string
	departmentID uint
}

func NewSection(name string, departmentID uint) (*Section, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("section name is required")
	}
	if departmentID == 0 {
		return nil, fmt.Errorf("owning department is required")
	}
	return &Section{name: name, departmentID: departmentID}, nil
}

func ReconstructSection(id uint, name string, departmentID uint) (*Section, error) {
	if id == 0 {
		return nil, fmt.Errorf("section ID cannot be zero")
	}
	return &Section{id: id, name: name, departmentID: departmentID}, nil
}

func (s *Section) ID() uint {
	return s.id
}

func (s *Section) Name() string {
	return s.name
}

func (s *Section) DepartmentID() uint {
	return s.departmentID
}

func (s *Section) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("section ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("section ID cannot be zero")
	}
	s.id = id
	return nil
}
