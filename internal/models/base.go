package models

import "time"

// Base is embedded by every table. ID is auto-incremented, so ordering by it
// gives insertion order.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
