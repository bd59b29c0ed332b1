package models

import "fmt"

// DefaultCafeImageURL is used when a cafe is saved without an image.
const DefaultCafeImageURL = "/static/images/default-cafe.jpg"

// Cafe represents a listed establishment.
type Cafe struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null" validate:"required"`
	Description string `json:"description" gorm:"not null" validate:"omitempty,min=10"`
	URL         string `json:"url" gorm:"not null" validate:"omitempty,url"`
	Address     string `json:"address" gorm:"not null" validate:"required"`
	CityCode    string `json:"city_code" gorm:"not null;index" validate:"required"`
	ImageURL    string `json:"image_url" gorm:"not null;default:'/static/images/default-cafe.jpg'" validate:"omitempty,url,max=255"`

	City City `json:"-" gorm:"foreignKey:CityCode;references:Code"`
}

// CityState returns the "City, ST" display string for the cafe.
func (c *Cafe) CityState() string {
	return fmt.Sprintf("%s, %s", c.City.Name, c.City.State)
}
