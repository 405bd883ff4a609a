package repository

import (
	"database/sql"
	"math"

	"github.com/piresc/nebengjek-fare/internal/pkg/models"
)

// sanitizer converts nullable numeric columns into usable values and remembers
// every substitution it makes
type sanitizer struct {
	table     string
	fallbacks []models.Fallback
}

func newSanitizer(table string) *sanitizer {
	return &sanitizer{table: table}
}

// amount returns v when it is a finite non-negative number, fallback otherwise
func (s *sanitizer) amount(column string, v sql.NullFloat64, fallback float64) float64 {
	if v.Valid && finite(v.Float64) && v.Float64 >= 0 {
		return v.Float64
	}
	s.record(column, fallback)
	return fallback
}

// multiplier is like amount but anything below 1 is replaced by 1
func (s *sanitizer) multiplier(column string, v sql.NullFloat64) float64 {
	if v.Valid && finite(v.Float64) && v.Float64 >= 1 {
		return v.Float64
	}
	s.record(column, 1)
	return 1
}

func (s *sanitizer) record(column string, value float64) {
	s.fallbacks = append(s.fallbacks, models.Fallback{Field: s.table + "." + column, Value: value})
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
