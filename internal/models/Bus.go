package models

import "time"

// Coordinates is the structured last-known position of a bus. Latitude and
// longitude stay strings end to end so reported values round-trip unchanged.
type Coordinates struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type Bus struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	BusNumber string `json:"busNumber" gorm:"uniqueIndex;not null"` // "B1", "B2"
	IsActive  bool   `json:"isActive"`

	// LastLocation holds only the most recent position; history lives in
	// BusLocation rows.
	LastLocation *Coordinates `json:"lastLocation" gorm:"serializer:json"`
	LastUpdated  *time.Time   `json:"lastUpdated"`
}
