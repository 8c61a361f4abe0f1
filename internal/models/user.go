package models

// UserModel represents an account that owns a collection of entries.
// Email uniqueness is enforced by the database index, not application
// logic, so two racing signups serialize on the constraint.
type UserModel struct {
	Base
	Email    string `json:"email" gorm:"uniqueIndex;size:191;not null"`
	Password string `json:"-"     gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }
