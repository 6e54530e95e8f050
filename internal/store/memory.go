package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"shuttle_tracker/internal/models"
)

// MemoryStore keeps everything in process memory. It exists so the server can
// run without a database during development; the contract matches GormStore
// exactly, including storage-level uniqueness of username and email.
type MemoryStore struct {
	mu sync.RWMutex

	users     map[uint]models.User
	buses     map[uint]models.Bus
	locations map[uint][]models.BusLocation // keyed by bus id
	schedules map[uint]models.Schedule

	nextUserID     uint
	nextBusID      uint
	nextLocationID uint
	nextScheduleID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:          make(map[uint]models.User),
		buses:          make(map[uint]models.Bus),
		locations:      make(map[uint][]models.BusLocation),
		schedules:      make(map[uint]models.Schedule),
		nextUserID:     1,
		nextBusID:      1,
		nextLocationID: 1,
		nextScheduleID: 1,
	}
}

func (s *MemoryStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return ErrDuplicate
		}
	}
	user.ID = s.nextUserID
	s.nextUserID++
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) GetUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *MemoryStore) GetBus(ctx context.Context, id uint) (*models.Bus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.buses[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (s *MemoryStore) GetBusByNumber(ctx context.Context, number int) (*models.Bus, error) {
	label, ok := busNumberLabel(number)
	if !ok {
		return nil, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.buses {
		if b.BusNumber == label {
			b := b
			return &b, nil
		}
	}
	return nil, nil
}

func (s *MemoryStore) GetBuses(ctx context.Context) ([]models.Bus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	buses := make([]models.Bus, 0, len(s.buses))
	for _, b := range s.buses {
		buses = append(buses, b)
	}
	sort.Slice(buses, func(i, j int) bool { return buses[i].ID < buses[j].ID })
	return buses, nil
}

func (s *MemoryStore) CreateBus(ctx context.Context, bus *models.Bus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bus.ID = s.nextBusID
	s.nextBusID++
	s.buses[bus.ID] = *bus
	return nil
}

func (s *MemoryStore) UpdateBusStatus(ctx context.Context, id uint, isActive bool) (*models.Bus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bus, ok := s.buses[id]
	if !ok {
		return nil, nil
	}
	now := time.Now()
	bus.IsActive = isActive
	bus.LastUpdated = &now
	s.buses[id] = bus
	return &bus, nil
}

func (s *MemoryStore) UpdateBusLocation(ctx context.Context, id uint, latitude, longitude string) (*models.Bus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	bus, ok := s.buses[id]
	if !ok {
		return nil, nil
	}
	now := time.Now()
	bus.LastLocation = &models.Coordinates{Latitude: latitude, Longitude: longitude}
	bus.LastUpdated = &now
	bus.IsActive = true
	s.buses[id] = bus
	return &bus, nil
}

func (s *MemoryStore) CreateBusLocation(ctx context.Context, loc *models.BusLocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	loc.ID = s.nextLocationID
	s.nextLocationID++
	if loc.Timestamp.IsZero() {
		loc.Timestamp = time.Now()
	}
	// A history row records an active report, same as UpdateBusLocation
	// forcing the bus itself active.
	loc.IsActive = true
	s.locations[loc.BusID] = append(s.locations[loc.BusID], *loc)
	return nil
}

func (s *MemoryStore) GetBusLocations(ctx context.Context, busID uint, limit int) ([]models.BusLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := s.locations[busID]
	out := make([]models.BusLocation, len(history))
	copy(out, history)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) GetSchedules(ctx context.Context, day models.Day, busID *uint) ([]models.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Schedule
	for _, sch := range s.schedules {
		if sch.Day != day {
			continue
		}
		if busID != nil && sch.BusID != *busID {
			continue
		}
		out = append(out, sch)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) CreateSchedule(ctx context.Context, sch *models.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sch.ID = s.nextScheduleID
	s.nextScheduleID++
	s.schedules[sch.ID] = *sch
	return nil
}
