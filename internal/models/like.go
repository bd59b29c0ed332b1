package models

// Like is the join record expressing "this user likes this cafe".
// The composite primary key doubles as the guard against duplicate likes;
// concurrent likes of the same pair race on the key, not on app-level locks.
type Like struct {
	UserID uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	CafeID uint `json:"cafe_id" gorm:"primaryKey;autoIncrement:false"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Cafe Cafe `json:"-" gorm:"foreignKey:CafeID;constraint:OnDelete:CASCADE"`
}
