package models

// Day is the closed set of schedule day groups.
type Day string

const (
	DayWeekday Day = "weekday"
	DaySunday  Day = "sunday"
)

func (d Day) Valid() bool {
	return d == DayWeekday || d == DaySunday
}

// Schedule is a static timetable row, seeded once and read-only afterwards.
type Schedule struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	BusID         uint   `json:"busId" gorm:"index;not null"`
	Day           Day    `json:"day" gorm:"type:varchar(16);not null"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
	StartLocation string `json:"startLocation"`
	EndLocation   string `json:"endLocation"`
	Route         string `json:"route"`

	// IsArrival marks a row as an arrival at campus rather than a departure.
	IsArrival bool `json:"isArrival"`
}
