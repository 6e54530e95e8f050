package store

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"shuttle_tracker/internal/models"
)

// Seed creates the fixed initial data set: one admin account, the two
// campus buses and the static timetable. It is idempotent — a no-op as soon
// as any user exists — so it is safe to run on every boot.
func Seed(ctx context.Context, s Store) error {
	users, err := s.GetUsers(ctx)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := models.User{
		Name:     "Admin",
		Email:    "admin@iitj.ac.in",
		Username: "admin",
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := s.CreateUser(ctx, &admin); err != nil {
		return err
	}

	bus1 := models.Bus{BusNumber: "B1"}
	bus2 := models.Bus{BusNumber: "B2"}
	if err := s.CreateBus(ctx, &bus1); err != nil {
		return err
	}
	if err := s.CreateBus(ctx, &bus2); err != nil {
		return err
	}

	schedules := []models.Schedule{
		// Weekday departures from campus
		{BusID: bus1.ID, Day: models.DayWeekday, DepartureTime: "6:30 AM", ArrivalTime: "7:40 AM", StartLocation: "IITJ", EndLocation: "GPRA", Route: "via Paota and Railway Station"},
		{BusID: bus2.ID, Day: models.DayWeekday, DepartureTime: "6:30 AM", ArrivalTime: "7:40 AM", StartLocation: "IITJ", EndLocation: "Jaljog Circle", Route: "via Paota and Riktiya Bheruji Circle"},
		{BusID: bus1.ID, Day: models.DayWeekday, DepartureTime: "10:00 AM", ArrivalTime: "11:00 AM", StartLocation: "IITJ", EndLocation: "AIIMS Jodhpur", Route: "via Paota – MBM – AIIMS"},
		{BusID: bus2.ID, Day: models.DayWeekday, DepartureTime: "11:00 AM", ArrivalTime: "12:00 PM", StartLocation: "IITJ", EndLocation: "MBM", Route: "via Paota and Railway Station"},
		{BusID: bus1.ID, Day: models.DayWeekday, DepartureTime: "3:00 PM", ArrivalTime: "4:00 PM", StartLocation: "IITJ", EndLocation: "AIIMS Jodhpur", Route: "via Paota – Railway Station"},
		// Weekday arrivals at campus
		{BusID: bus1.ID, Day: models.DayWeekday, DepartureTime: "7:45 AM", ArrivalTime: "8:50 AM", StartLocation: "GPRA", EndLocation: "IITJ", Route: "via MBM – Paota – Mandore", IsArrival: true},
		{BusID: bus2.ID, Day: models.DayWeekday, DepartureTime: "7:45 AM", ArrivalTime: "8:50 AM", StartLocation: "Jaljog Circle", EndLocation: "IITJ", Route: "", IsArrival: true},
		// Sunday departures
		{BusID: bus2.ID, Day: models.DaySunday, DepartureTime: "9:30 AM", ArrivalTime: "10:30 AM", StartLocation: "IITJ", EndLocation: "MBM", Route: "via Paota – Riktiya Bheruji Circle – MBM"},
		{BusID: bus1.ID, Day: models.DaySunday, DepartureTime: "10:30 AM", ArrivalTime: "11:30 AM", StartLocation: "IITJ", EndLocation: "MBM", Route: "via Paota – MBM"},
		// Sunday arrivals
		{BusID: bus2.ID, Day: models.DaySunday, DepartureTime: "11:30 AM", ArrivalTime: "12:30 PM", StartLocation: "MBM", EndLocation: "IITJ", Route: "via Paota – Mandore – IITJ", IsArrival: true},
		{BusID: bus1.ID, Day: models.DaySunday, DepartureTime: "1:30 PM", ArrivalTime: "2:30 PM", StartLocation: "MBM", EndLocation: "IITJ", Route: "via MBM College – Paota – IITJ", IsArrival: true},
	}
	for i := range schedules {
		if err := s.CreateSchedule(ctx, &schedules[i]); err != nil {
			return err
		}
	}
	return nil
}
