package automobile

import (
	"strings"

	"gorm.io/gorm"
)

// Filter is the optional per-field predicate set applied by Repo.List.
// Every field is a pointer: nil means "no constraint on this field". Presence
// is always a nil test, never a zero-value test, so an explicitly supplied
// zero (e.g. mileage_max=0) still filters.
//
// The form tags are the query-string contract of GET /automobiles.
type Filter struct {
	Make         *string   `form:"make" json:"make,omitempty"`
	Model        *string   `form:"model" json:"model,omitempty"`
	YearMin      *int      `form:"year_min" json:"year_min,omitempty"`
	YearMax      *int      `form:"year_max" json:"year_max,omitempty"`
	FuelType     *FuelType `form:"fuel_type" json:"fuel_type,omitempty"`
	MileageMax   *float64  `form:"mileage_max" json:"mileage_max,omitempty"`
	DoorCount    *int      `form:"door_count" json:"door_count,omitempty"`
	PlatePartial *string   `form:"plate_partial" json:"plate_partial,omitempty"`
	FipeCode     *string   `form:"fipe_code" json:"fipe_code,omitempty"`
}

// IsEmpty reports whether no predicate is set. An empty filter behaves
// exactly like no filter at all.
func (f *Filter) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.Make == nil && f.Model == nil && f.YearMin == nil && f.YearMax == nil &&
		f.FuelType == nil && f.MileageMax == nil && f.DoorCount == nil &&
		f.PlatePartial == nil && f.FipeCode == nil
}

// Scope composes the conjunctive predicate over every present field.
// Substring matches go through LOWER() on both sides so the semantics do not
// depend on the backend's collation. Rows with a NULL plate never match
// plate_partial: LOWER(NULL) LIKE anything is not true.
func (f *Filter) Scope(q *gorm.DB) *gorm.DB {
	if f == nil {
		return q
	}
	if f.Make != nil {
		q = q.Where("LOWER(make) LIKE ?", contains(*f.Make))
	}
	if f.Model != nil {
		q = q.Where("LOWER(model) LIKE ?", contains(*f.Model))
	}
	if f.YearMin != nil {
		q = q.Where("year >= ?", *f.YearMin)
	}
	if f.YearMax != nil {
		q = q.Where("year <= ?", *f.YearMax)
	}
	if f.FuelType != nil {
		q = q.Where("fuel_type = ?", *f.FuelType)
	}
	if f.MileageMax != nil {
		q = q.Where("mileage <= ?", *f.MileageMax)
	}
	if f.DoorCount != nil {
		q = q.Where("door_count = ?", *f.DoorCount)
	}
	if f.PlatePartial != nil {
		q = q.Where("LOWER(plate) LIKE ?", contains(*f.PlatePartial))
	}
	if f.FipeCode != nil {
		q = q.Where("fipe_code = ?", *f.FipeCode)
	}
	return q
}

// contains builds a case-insensitive LIKE pattern. % and _ in the input
// are not escaped and act as LIKE wildcards.
func contains(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
