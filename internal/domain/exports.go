package domain

import (
	interfaces "calcbox/internal/domain/interfaces"
	types "calcbox/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Category       = types.Category
	Status         = types.Status
	ToolDescriptor = types.ToolDescriptor
	Param          = types.Param
	Outcome        = types.Outcome
	OutcomeError   = types.OutcomeError
	HistoryEntry   = types.HistoryEntry
	Preferences    = types.Preferences
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	PreferenceStore   = interfaces.PreferenceStore
	HistoryStore      = interfaces.HistoryStore
	CatalogService    = interfaces.CatalogService
	CalculatorService = interfaces.CalculatorService
	CatalogClient     = interfaces.CatalogClient
)

const (
	CategoryAll        = types.CategoryAll
	CategoryConverters = types.CategoryConverters
	CategoryDateTime   = types.CategoryDateTime
	CategoryMath       = types.CategoryMath
	CategoryFinance    = types.CategoryFinance
	CategoryHealth     = types.CategoryHealth
	CategoryText       = types.CategoryText

	StatusAvailable  = types.StatusAvailable
	StatusComingSoon = types.StatusComingSoon
)
