package types

import "strings"

// Category groups tools in the catalog.
type Category string

// CategoryAll is the filter sentinel that matches every category. It is never
// assigned to a tool.
const CategoryAll Category = "All"

const (
	CategoryConverters Category = "Converters"
	CategoryDateTime   Category = "Date & Time"
	CategoryMath       Category = "Math"
	CategoryFinance    Category = "Finance"
	CategoryHealth     Category = "Health"
	CategoryText       Category = "Text"
)

// Categories lists the assignable categories in display order.
var Categories = []Category{
	CategoryConverters,
	CategoryDateTime,
	CategoryMath,
	CategoryFinance,
	CategoryHealth,
	CategoryText,
}

// String returns the string form of the category.
func (c Category) String() string { return string(c) }

// Valid reports whether c is an assignable category.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// ParseCategory resolves a user-supplied category case-insensitively.
// "" and "all" resolve to CategoryAll.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(CategoryAll)) {
		return CategoryAll, true
	}
	for _, k := range Categories {
		if strings.EqualFold(s, string(k)) {
			return k, true
		}
	}
	return "", false
}

// Status is the availability of a tool.
type Status string

const (
	StatusAvailable  Status = "available"
	StatusComingSoon Status = "coming-soon"
)

// String returns the string form of the status.
func (s Status) String() string { return string(s) }

// Valid reports whether s is a known status.
func (s Status) Valid() bool { return s == StatusAvailable || s == StatusComingSoon }
