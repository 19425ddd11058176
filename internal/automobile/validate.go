package automobile

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/pedropiresdev/c2s-challenge/internal/errs"
)

// Plate format: 3 letters + 1 digit + 1 alphanumeric + 2 digits, with an
// optional separator after the letters. Covers both the old and the Mercosul
// regional formats.
var (
	plateRe   = regexp.MustCompile(`^[A-Z]{3}[ -]?[0-9][A-Z0-9]?[0-9]{2}$`)
	chassisRe = regexp.MustCompile(`^[0-9A-Z]{17}$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("plate", func(fl validator.FieldLevel) bool {
		return plateRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("chassis", func(fl validator.FieldLevel) bool {
		return chassisRe.MatchString(fl.Field().String())
	})
	return v
}

// validated mirrors Automobile with the full set of field constraints.
// Validation runs against this shadow struct so the GORM model itself stays
// free of validator tags.
type validated struct {
	Make        string   `validate:"required,max=50"`
	Model       string   `validate:"required,max=50"`
	Year        int      `validate:"gte=1900,lte=2100"`
	Color       string   `validate:"required,max=30"`
	FuelType    FuelType `validate:"required"`
	Mileage     float64  `validate:"gte=0"`
	DoorCount   int      `validate:"gte=2,lte=5"`
	Plate       *string  `validate:"omitempty,plate"`
	ChassisCode string   `validate:"required,chassis"`
	FipeCode    string   `validate:"required,min=6,max=10"`
}

// Validate checks a against every field constraint. Violations come back
// wrapped in errs.ErrValidation so callers can map them without inspecting
// validator internals.
func (a *Automobile) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: nil automobile", errs.ErrValidation)
	}
	if !a.FuelType.Valid() {
		return fmt.Errorf("%w: invalid fuel_type %q", errs.ErrValidation, a.FuelType)
	}
	v := validated{
		Make:        a.Make,
		Model:       a.Model,
		Year:        a.Year,
		Color:       a.Color,
		FuelType:    a.FuelType,
		Mileage:     a.Mileage,
		DoorCount:   a.DoorCount,
		Plate:       a.Plate,
		ChassisCode: a.ChassisCode,
		FipeCode:    a.FipeCode,
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", errs.ErrValidation, err)
	}
	return nil
}
