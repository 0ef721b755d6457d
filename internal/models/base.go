package models

import "time"

// BaseModel is gorm.Model without DeletedAt: deletes are hard deletes,
// there is no tombstone semantics anywhere in the API.
type BaseModel struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
