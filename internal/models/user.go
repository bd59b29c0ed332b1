package models

import "fmt"

// DefaultUserImageURL is used when a user is saved without a profile image.
const DefaultUserImageURL = "/static/images/default-pic.png"

// User represents a registered account.
type User struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Username       string `json:"username" gorm:"uniqueIndex;type:varchar(30);not null" validate:"required,max=30"`
	Admin          bool   `json:"admin" gorm:"not null;default:false"`
	Email          string `json:"email" gorm:"type:varchar(50);not null" validate:"required,email"`
	FirstName      string `json:"first_name" gorm:"type:varchar(50);not null" validate:"required"`
	LastName       string `json:"last_name" gorm:"type:varchar(50);not null" validate:"required"`
	Description    string `json:"description" gorm:"not null"`
	ImageURL       string `json:"image_url" gorm:"type:varchar(255);not null;default:'/static/images/default-pic.png'" validate:"omitempty,url"`
	HashedPassword string `json:"-" gorm:"type:varchar(100);not null"` // bcrypt hash, never serialized
}

// FullName returns "FIRSTNAME LASTNAME".
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}
