package catalog

import (
	"fmt"

	"calcbox/internal/domain"
)

// Meta is the presentation data for a category.
type Meta struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// MetaFor returns the icon and color of c. Every assignable category has an
// entry; anything else is ErrUnknownCategory.
func MetaFor(c domain.Category) (Meta, error) {
	switch c {
	case domain.CategoryConverters:
		return Meta{Icon: "arrows-right-left", Color: "#2563eb"}, nil
	case domain.CategoryDateTime:
		return Meta{Icon: "calendar", Color: "#7c3aed"}, nil
	case domain.CategoryMath:
		return Meta{Icon: "calculator", Color: "#059669"}, nil
	case domain.CategoryFinance:
		return Meta{Icon: "banknotes", Color: "#d97706"}, nil
	case domain.CategoryHealth:
		return Meta{Icon: "heart", Color: "#dc2626"}, nil
	case domain.CategoryText:
		return Meta{Icon: "document-text", Color: "#4b5563"}, nil
	}
	return Meta{}, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
}
