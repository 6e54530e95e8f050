package store

import (
	"context"
	"errors"

	"shuttle_tracker/internal/models"
)

// ErrDuplicate is returned by CreateUser when the username or email is
// already taken. Both backends enforce this at the storage layer; handler
// pre-checks exist only to produce field-specific messages.
var ErrDuplicate = errors.New("username or email already exists")

// Store is the uniform persistence surface over users, buses, the location
// log and schedules. Both backends must be behaviorally indistinguishable to
// every handler: lookups return (nil, nil) when the record is absent, never
// an error.
type Store interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	GetUsers(ctx context.Context) ([]models.User, error)

	GetBus(ctx context.Context, id uint) (*models.Bus, error)
	// GetBusByNumber resolves the small integer bus number: 1 -> "B1",
	// 2 -> "B2". Anything else yields (nil, nil).
	GetBusByNumber(ctx context.Context, number int) (*models.Bus, error)
	GetBuses(ctx context.Context) ([]models.Bus, error)
	CreateBus(ctx context.Context, bus *models.Bus) error
	// UpdateBusStatus sets isActive and stamps lastUpdated, even when the
	// value did not change.
	UpdateBusStatus(ctx context.Context, id uint, isActive bool) (*models.Bus, error)
	// UpdateBusLocation overwrites lastLocation and lastUpdated and forces
	// isActive to true.
	UpdateBusLocation(ctx context.Context, id uint, latitude, longitude string) (*models.Bus, error)

	CreateBusLocation(ctx context.Context, loc *models.BusLocation) error
	// GetBusLocations returns up to limit history rows for a bus, newest
	// first.
	GetBusLocations(ctx context.Context, busID uint, limit int) ([]models.BusLocation, error)

	GetSchedules(ctx context.Context, day models.Day, busID *uint) ([]models.Schedule, error)
	CreateSchedule(ctx context.Context, sch *models.Schedule) error
}

// busNumberLabel maps the driver-facing small integer id to the bus label.
func busNumberLabel(number int) (string, bool) {
	switch number {
	case 1:
		return "B1", true
	case 2:
		return "B2", true
	}
	return "", false
}
