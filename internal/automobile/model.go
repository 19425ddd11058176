package automobile

import "time"

// FuelType is the fuel enumeration, persisted as a string.
type FuelType string

const (
	FuelGasoline FuelType = "Gasoline"
	FuelEthanol  FuelType = "Ethanol"
	FuelDiesel   FuelType = "Diesel"
	FuelFlex     FuelType = "Flex"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
)

// FuelTypes lists every valid enumeration value.
var FuelTypes = []FuelType{FuelGasoline, FuelEthanol, FuelDiesel, FuelFlex, FuelElectric, FuelHybrid}

// Valid reports whether f is a member of the enumeration.
func (f FuelType) Valid() bool {
	for _, v := range FuelTypes {
		if f == v {
			return true
		}
	}
	return false
}

// Automobile is the GORM model for the automobiles table.
// ID and CreatedAt are assigned by the store at creation and never mutated.
// Plate is a pointer so an absent plate is stored as NULL and stays out of
// the unique index.
type Automobile struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Make        string    `gorm:"size:50;not null" json:"make"`
	Model       string    `gorm:"size:50;not null" json:"model"`
	Year        int       `gorm:"not null" json:"year"`
	Color       string    `gorm:"size:30;not null" json:"color"`
	FuelType    FuelType  `gorm:"type:varchar(16);not null" json:"fuel_type"`
	Mileage     float64   `gorm:"not null" json:"mileage"`
	DoorCount   int       `gorm:"not null" json:"door_count"`
	Plate       *string   `gorm:"size:10;uniqueIndex" json:"plate"`
	ChassisCode string    `gorm:"size:17;uniqueIndex;not null" json:"chassis_code"`
	FipeCode    string    `gorm:"size:10;not null" json:"fipe_code"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName overrides the default table name for the gorm library.
func (Automobile) TableName() string {
	return "automobiles"
}
