package models

import "time"

// Base is the base model for all entities. IDs are auto-increment
// integers for API compatibility with the original MySQL schema.
type Base struct {
	ID        uint      `json:"id"         gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
