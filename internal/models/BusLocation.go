package models

import "time"

// BusLocation is one row of the append-only position log. Rows are written on
// every accepted driver report and never updated or deleted.
type BusLocation struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	BusID     uint      `json:"busId" gorm:"index;not null"`
	Latitude  string    `json:"latitude" gorm:"not null"`
	Longitude string    `json:"longitude" gorm:"not null"`
	Timestamp time.Time `json:"timestamp"`
	IsActive  bool      `json:"isActive"`
}
