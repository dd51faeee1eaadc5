package valueobjects

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryAcademic       Category = "academic"
	CategoryHostel         Category = "hostel"
	CategoryMess           Category = "mess"
	CategoryInfrastructure Category = "infrastructure"
	CategoryNetwork        Category = "network"
	CategoryRagging        Category = "ragging"
	CategoryOther          Category = "other"
)

var validCategories = map[Category]bool{
	CategoryAcademic:       true,
	CategoryHostel:         true,
	CategoryMess:           true,
	CategoryInfrastructure: true,
	CategoryNetwork:        true,
	CategoryRagging:        true,
	CategoryOther:          true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func (c Category) IsOther() bool {
	return c == CategoryOther
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}

// NormalizeCategory maps an arbitrary classifier label onto the closed
// category set. The external classifier's label set is open; anything we do
// not recognize becomes "other" so the value object stays exhaustive.
func NormalizeCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if c.IsValid() {
		return c
	}
	return CategoryOther
}
