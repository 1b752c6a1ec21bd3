package repository

import (
	"context"
	"log"

	"spotless/internal/domain"
)

var seedUsers = []domain.User{
	{Name: "Admin User", Email: "admin@spotless.com", Password: "admin123", Role: domain.RoleAdmin, Phone: "+254700000001"},
	{Name: "John Cleaner", Email: "cleaner@spotless.com", Password: "cleaner123", Role: domain.RoleCleaner, Phone: "+254700000002"},
	{Name: "Sarah Customer", Email: "customer@spotless.com", Password: "customer123", Role: domain.RoleCustomer, Phone: "+254700000003"},
}

var seedBookings = []domain.Booking{
	{Customer: "Sarah Johnson", Service: "Deep Cleaning", Date: "2023-10-15", Status: domain.BookingCompleted, Amount: 250},
	{Customer: "Michael Chen", Service: "Office Cleaning", Date: "2023-10-16", Status: domain.BookingConfirmed, Amount: 450},
	{Customer: "Emma Williams", Service: "Regular Cleaning", Date: "2023-10-17", Status: domain.BookingPending, Amount: 180},
	{Customer: "David Miller", Service: "Carpet Cleaning", Date: "2023-10-18", Status: domain.BookingConfirmed, Amount: 320},
	{Customer: "Lisa Anderson", Service: "Window Cleaning", Date: "2023-10-19", Status: domain.BookingPending, Amount: 275},
}

// SeedDemoData loads the demo accounts and bookings. It is a no-op when the
// store already has users, so repeated startups stay idempotent.
func SeedDemoData(ctx context.Context, users UserRepository, bookings BookingRepository) error {
	cnt, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}

	for i := range seedUsers {
		u := seedUsers[i]
		if err := users.Create(ctx, &u); err != nil {
			return err
		}
	}
	for i := range seedBookings {
		b := seedBookings[i]
		if err := bookings.Create(ctx, &b); err != nil {
			return err
		}
	}

	log.Printf("seeded %d demo users and %d demo bookings", len(seedUsers), len(seedBookings))
	return nil
}
