package automobile

// Patch carries only the fields the caller explicitly supplied on update.
// A nil field means "leave untouched"; there is no way to clear a field
// through a Patch (an explicit JSON null binds to nil as well, so once a
// plate is set it can only be replaced, not removed).
type Patch struct {
	Make        *string   `json:"make" binding:"omitempty,min=1,max=50"`
	Model       *string   `json:"model" binding:"omitempty,min=1,max=50"`
	Year        *int      `json:"year" binding:"omitempty,gte=1900,lte=2100"`
	Color       *string   `json:"color" binding:"omitempty,min=1,max=30"`
	FuelType    *FuelType `json:"fuel_type" binding:"omitempty"`
	Mileage     *float64  `json:"mileage" binding:"omitempty,gte=0"`
	DoorCount   *int      `json:"door_count" binding:"omitempty,gte=2,lte=5"`
	Plate       *string   `json:"plate" binding:"omitempty"`
	ChassisCode *string   `json:"chassis_code" binding:"omitempty,len=17"`
	FipeCode    *string   `json:"fipe_code" binding:"omitempty,min=6,max=10"`
}

// IsEmpty reports whether the patch carries no field at all.
func (p *Patch) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.Make == nil && p.Model == nil && p.Year == nil && p.Color == nil &&
		p.FuelType == nil && p.Mileage == nil && p.DoorCount == nil &&
		p.Plate == nil && p.ChassisCode == nil && p.FipeCode == nil
}

// Apply merges the present fields of the patch onto a. ID and CreatedAt are
// never touched; the merged record must be re-validated before committing.
func (p *Patch) Apply(a *Automobile) {
	if p == nil || a == nil {
		return
	}
	if p.Make != nil {
		a.Make = *p.Make
	}
	if p.Model != nil {
		a.Model = *p.Model
	}
	if p.Year != nil {
		a.Year = *p.Year
	}
	if p.Color != nil {
		a.Color = *p.Color
	}
	if p.FuelType != nil {
		a.FuelType = *p.FuelType
	}
	if p.Mileage != nil {
		a.Mileage = *p.Mileage
	}
	if p.DoorCount != nil {
		a.DoorCount = *p.DoorCount
	}
	if p.Plate != nil {
		plate := *p.Plate
		a.Plate = &plate
	}
	if p.ChassisCode != nil {
		a.ChassisCode = *p.ChassisCode
	}
	if p.FipeCode != nil {
		a.FipeCode = *p.FipeCode
	}
}
