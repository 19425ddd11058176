package automobile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPatchApplyOnlyPresentFields(t *testing.T) {
	a := validAutomobile()
	original := *a

	p := &Patch{
		Color:   ptr("Blue"),
		Mileage: ptr(60000.0),
	}
	p.Apply(a)

	require.Equal(t, "Blue", a.Color)
	require.Equal(t, 60000.0, a.Mileage)
	require.Equal(t, original.Make, a.Make)
	require.Equal(t, original.Model, a.Model)
	require.Equal(t, original.Year, a.Year)
	require.Equal(t, original.FuelType, a.FuelType)
	require.Equal(t, original.DoorCount, a.DoorCount)
	require.Equal(t, original.Plate, a.Plate)
	require.Equal(t, original.ChassisCode, a.ChassisCode)
	require.Equal(t, original.FipeCode, a.FipeCode)
}

func TestPatchApplyEmptyChangesNothing(t *testing.T) {
	a := validAutomobile()
	original := *a

	(&Patch{}).Apply(a)
	require.Equal(t, original, *a)
}

func TestPatchApplyCopiesPlateValue(t *testing.T) {
	a := validAutomobile()

	plate := "XYZ9A87"
	p := &Patch{Plate: &plate}
	p.Apply(a)

	// The record must not alias the patch's pointer.
	plate = "MUT4T31"
	require.Equal(t, "XYZ9A87", *a.Plate)
}

func TestPatchIsEmpty(t *testing.T) {
	require.True(t, (*Patch)(nil).IsEmpty())
	require.True(t, (&Patch{}).IsEmpty())
	require.False(t, (&Patch{Color: ptr("Blue")}).IsEmpty())
}

func TestFilterIsEmpty(t *testing.T) {
	require.True(t, (*Filter)(nil).IsEmpty())
	require.True(t, (&Filter{}).IsEmpty())

	// A zero value behind a pointer is still a present predicate.
	require.False(t, (&Filter{MileageMax: ptr(0.0)}).IsEmpty())
	require.False(t, (&Filter{Make: ptr("")}).IsEmpty())
}
