package council

import (
	"errors"
	"fmt"
	"strings"
)

// Category identifies one of the four fixed council aspects that every
// principle belongs to. The set is closed: no categories are added or
// removed at runtime.
type Category string

const (
	CategoryNurture   Category = "nurture"
	CategoryTruth     Category = "truth"
	CategoryVision    Category = "vision"
	CategoryStructure Category = "structure"
)

// ErrUnknownCategory is returned when a value outside the four-category
// set reaches a lookup. Typed callers should never trigger it.
var ErrUnknownCategory = errors.New("unknown council category")

// Categories returns the four categories in their canonical order.
// Consultation fan-out, decision synthesis and recommended actions all
// iterate in this order.
func Categories() []Category {
	return []Category{CategoryNurture, CategoryTruth, CategoryVision, CategoryStructure}
}

// ParseCategory converts a user-supplied string into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryNurture:
		return CategoryNurture, nil
	case CategoryTruth:
		return CategoryTruth, nil
	case CategoryVision:
		return CategoryVision, nil
	case CategoryStructure:
		return CategoryStructure, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryNurture, CategoryTruth, CategoryVision, CategoryStructure:
		return true
	}
	return false
}
