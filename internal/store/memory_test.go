package store

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"shuttle_tracker/internal/models"
)

func TestCreateUser_EnforcesUniqueness(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	u1 := models.User{Name: "A", Email: "a@example.com", Username: "alice", Password: "x", Role: models.RoleStudent}
	if err := s.CreateUser(ctx, &u1); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u1.ID == 0 {
		t.Error("CreateUser should assign an id")
	}

	dupUsername := models.User{Name: "B", Email: "b@example.com", Username: "alice", Password: "x", Role: models.RoleStudent}
	if err := s.CreateUser(ctx, &dupUsername); err != ErrDuplicate {
		t.Errorf("duplicate username: got %v, want ErrDuplicate", err)
	}

	dupEmail := models.User{Name: "B", Email: "a@example.com", Username: "bob", Password: "x", Role: models.RoleStudent}
	if err := s.CreateUser(ctx, &dupEmail); err != ErrDuplicate {
		t.Errorf("duplicate email: got %v, want ErrDuplicate", err)
	}

	users, err := s.GetUsers(ctx)
	if err != nil {
		t.Fatalf("GetUsers: %v", err)
	}
	if len(users) != 1 {
		t.Errorf("got %d users, want 1", len(users))
	}
}

func TestGetUser_AbsentIsNilNotError(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	u, err := s.GetUserByUsername(ctx, "nobody")
	if err != nil || u != nil {
		t.Errorf("GetUserByUsername: got (%v, %v), want (nil, nil)", u, err)
	}
	u, err = s.GetUserByEmail(ctx, "nobody@example.com")
	if err != nil || u != nil {
		t.Errorf("GetUserByEmail: got (%v, %v), want (nil, nil)", u, err)
	}
	u, err = s.GetUser(ctx, 42)
	if err != nil || u != nil {
		t.Errorf("GetUser: got (%v, %v), want (nil, nil)", u, err)
	}
}

func TestGetUserByUsername_CaseSensitive(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	u := models.User{Name: "A", Email: "a@example.com", Username: "Alice", Password: "x", Role: models.RoleStudent}
	if err := s.CreateUser(ctx, &u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, _ := s.GetUserByUsername(ctx, "alice")
	if got != nil {
		t.Error("lookup must be case-sensitive")
	}
	got, _ = s.GetUserByUsername(ctx, "Alice")
	if got == nil {
		t.Error("exact match should be found")
	}
}

func TestGetBusByNumber_Mapping(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if err := Seed(ctx, s); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	b1, err := s.GetBusByNumber(ctx, 1)
	if err != nil || b1 == nil || b1.BusNumber != "B1" {
		t.Errorf("number 1: got %+v, %v; want bus B1", b1, err)
	}
	b2, err := s.GetBusByNumber(ctx, 2)
	if err != nil || b2 == nil || b2.BusNumber != "B2" {
		t.Errorf("number 2: got %+v, %v; want bus B2", b2, err)
	}
	for _, n := range []int{0, 3, -1, 100} {
		b, err := s.GetBusByNumber(ctx, n)
		if err != nil || b != nil {
			t.Errorf("number %d: got (%v, %v), want (nil, nil)", n, b, err)
		}
	}
}

func TestUpdateBusLocation_ForcesActive(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	bus := models.Bus{BusNumber: "B1"}
	if err := s.CreateBus(ctx, &bus); err != nil {
		t.Fatalf("CreateBus: %v", err)
	}
	if bus.IsActive {
		t.Fatal("new bus should start inactive")
	}

	updated, err := s.UpdateBusLocation(ctx, bus.ID, "26.23", "73.01")
	if err != nil {
		t.Fatalf("UpdateBusLocation: %v", err)
	}
	if !updated.IsActive {
		t.Error("location update must force isActive=true")
	}
	if updated.LastLocation == nil || updated.LastLocation.Latitude != "26.23" || updated.LastLocation.Longitude != "73.01" {
		t.Errorf("lastLocation = %+v, want 26.23/73.01", updated.LastLocation)
	}
	if updated.LastUpdated == nil {
		t.Error("lastUpdated should be stamped")
	}

	missing, err := s.UpdateBusLocation(ctx, 999, "0", "0")
	if err != nil || missing != nil {
		t.Errorf("absent bus: got (%v, %v), want (nil, nil)", missing, err)
	}
}

func TestUpdateBusStatus_StampsEvenWhenUnchanged(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	bus := models.Bus{BusNumber: "B1"}
	if err := s.CreateBus(ctx, &bus); err != nil {
		t.Fatalf("CreateBus: %v", err)
	}

	first, err := s.UpdateBusStatus(ctx, bus.ID, false)
	if err != nil || first == nil {
		t.Fatalf("UpdateBusStatus: (%v, %v)", first, err)
	}
	if first.IsActive {
		t.Error("status should remain false")
	}
	if first.LastUpdated == nil {
		t.Error("lastUpdated must be stamped even when the value did not change")
	}

	second, err := s.UpdateBusStatus(ctx, bus.ID, true)
	if err != nil || second == nil || !second.IsActive {
		t.Fatalf("UpdateBusStatus(true): (%+v, %v)", second, err)
	}
}

func TestBusLocationLog_AppendOnly(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for i := 0; i < 3; i++ {
		loc := models.BusLocation{BusID: 1, Latitude: "1", Longitude: "2"}
		if err := s.CreateBusLocation(ctx, &loc); err != nil {
			t.Fatalf("CreateBusLocation: %v", err)
		}
		if loc.Timestamp.IsZero() {
			t.Error("timestamp should default to now")
		}
		if !loc.IsActive {
			t.Error("history rows should default to active")
		}
	}

	history, err := s.GetBusLocations(ctx, 1, 2)
	if err != nil {
		t.Fatalf("GetBusLocations: %v", err)
	}
	if len(history) != 2 {
		t.Errorf("limit not applied: got %d rows, want 2", len(history))
	}

	all, _ := s.GetBusLocations(ctx, 1, 0)
	if len(all) != 3 {
		t.Errorf("got %d rows, want 3", len(all))
	}
}

func TestGetSchedules_Filters(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	if err := Seed(ctx, s); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	sunday, err := s.GetSchedules(ctx, models.DaySunday, nil)
	if err != nil {
		t.Fatalf("GetSchedules: %v", err)
	}
	if len(sunday) == 0 {
		t.Fatal("expected seeded sunday rows")
	}
	for _, sch := range sunday {
		if sch.Day != models.DaySunday {
			t.Errorf("day filter leaked a %q row", sch.Day)
		}
	}

	busID := uint(1)
	filtered, err := s.GetSchedules(ctx, models.DayWeekday, &busID)
	if err != nil {
		t.Fatalf("GetSchedules: %v", err)
	}
	for _, sch := range filtered {
		if sch.BusID != busID {
			t.Errorf("busId filter leaked bus %d", sch.BusID)
		}
	}

	none, err := s.GetSchedules(ctx, models.Day("holiday"), nil)
	if err != nil {
		t.Fatalf("GetSchedules: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("unknown day should match nothing, got %d rows", len(none))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := Seed(ctx, s); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	users, _ := s.GetUsers(ctx)
	buses, _ := s.GetBuses(ctx)
	if len(users) != 1 || len(buses) != 2 {
		t.Fatalf("seed created %d users and %d buses, want 1 and 2", len(users), len(buses))
	}

	admin := users[0]
	if admin.Role != models.RoleAdmin || admin.Username != "admin" {
		t.Errorf("unexpected admin account: %+v", admin)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")); err != nil {
		t.Error("seeded admin password must be a bcrypt hash of the default credential")
	}

	if err := Seed(ctx, s); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	users, _ = s.GetUsers(ctx)
	buses, _ = s.GetBuses(ctx)
	if len(users) != 1 || len(buses) != 2 {
		t.Errorf("second seed must be a no-op, got %d users and %d buses", len(users), len(buses))
	}
}
