package models

// City is reference data scoping a cafe's location display.
// Rows are created only by the seeder and never mutated by handlers.
type City struct {
	Code  string `json:"code" gorm:"primaryKey;type:varchar(10)" validate:"required,max=10"`
	Name  string `json:"name" gorm:"not null" validate:"required"`
	State string `json:"state" gorm:"type:varchar(2);not null" validate:"required,len=2"`
}

// TableName overrides GORM's pluralization ("cities", not "citys").
func (City) TableName() string {
	return "cities"
}
