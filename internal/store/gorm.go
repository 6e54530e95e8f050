package store

import (
	"context"
	"errors"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"shuttle_tracker/internal/models"
)

// GormStore is the Postgres-backed implementation of Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// isUniqueViolation recognizes a unique-constraint failure from either the
// translated gorm error or the raw Postgres error code.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return false
}

func (s *GormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (s *GormStore) GetUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) GetBus(ctx context.Context, id uint) (*models.Bus, error) {
	var bus models.Bus
	if err := s.db.WithContext(ctx).First(&bus, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bus, nil
}

func (s *GormStore) GetBusByNumber(ctx context.Context, number int) (*models.Bus, error) {
	label, ok := busNumberLabel(number)
	if !ok {
		return nil, nil
	}
	var bus models.Bus
	err := s.db.WithContext(ctx).Where("bus_number = ?", label).First(&bus).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bus, nil
}

func (s *GormStore) GetBuses(ctx context.Context) ([]models.Bus, error) {
	var buses []models.Bus
	if err := s.db.WithContext(ctx).Order("id").Find(&buses).Error; err != nil {
		return nil, err
	}
	return buses, nil
}

func (s *GormStore) CreateBus(ctx context.Context, bus *models.Bus) error {
	return s.db.WithContext(ctx).Create(bus).Error
}

func (s *GormStore) UpdateBusStatus(ctx context.Context, id uint, isActive bool) (*models.Bus, error) {
	bus, err := s.GetBus(ctx, id)
	if err != nil || bus == nil {
		return nil, err
	}
	now := time.Now()
	bus.IsActive = isActive
	bus.LastUpdated = &now
	if err := s.db.WithContext(ctx).Save(bus).Error; err != nil {
		return nil, err
	}
	return bus, nil
}

func (s *GormStore) UpdateBusLocation(ctx context.Context, id uint, latitude, longitude string) (*models.Bus, error) {
	bus, err := s.GetBus(ctx, id)
	if err != nil || bus == nil {
		return nil, err
	}
	now := time.Now()
	bus.LastLocation = &models.Coordinates{Latitude: latitude, Longitude: longitude}
	bus.LastUpdated = &now
	bus.IsActive = true
	if err := s.db.WithContext(ctx).Save(bus).Error; err != nil {
		return nil, err
	}
	return bus, nil
}

func (s *GormStore) CreateBusLocation(ctx context.Context, loc *models.BusLocation) error {
	if loc.Timestamp.IsZero() {
		loc.Timestamp = time.Now()
	}
	// A history row records an active report, same as UpdateBusLocation
	// forcing the bus itself active.
	loc.IsActive = true
	return s.db.WithContext(ctx).Create(loc).Error
}

func (s *GormStore) GetBusLocations(ctx context.Context, busID uint, limit int) ([]models.BusLocation, error) {
	var history []models.BusLocation
	q := s.db.WithContext(ctx).Where("bus_id = ?", busID).Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

func (s *GormStore) GetSchedules(ctx context.Context, day models.Day, busID *uint) ([]models.Schedule, error) {
	q := s.db.WithContext(ctx).Where("day = ?", day)
	if busID != nil {
		q = q.Where("bus_id = ?", *busID)
	}
	var schedules []models.Schedule
	if err := q.Order("id").Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (s *GormStore) CreateSchedule(ctx context.Context, sch *models.Schedule) error {
	return s.db.WithContext(ctx).Create(sch).Error
}
