package main

import (
	"context"
	"log"

	"spotless/internal/config"
	"spotless/internal/database"
	"spotless/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migration failed: ", err)
	}

	users := repository.NewUserRepo(db)
	bookings := repository.NewBookingRepo(db)

	if err := repository.SeedDemoData(context.Background(), users, bookings); err != nil {
		log.Fatal("seeding failed: ", err)
	}

	log.Println("Done.")
}
