// Seeds a development database with an admin user and a small fleet so
// the storefront and admin console have something to show.
package main

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/storage/postgres"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/config"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DBUrl)
	if err != nil {
		log.Fatalf("unable to create db pool: %v", err)
	}
	defer pool.Close()

	hash, err := service.HashPassword("admin123")
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	if _, err := pool.Exec(ctx,
		`INSERT INTO admins (username, email, password_hash) VALUES ($1, $2, $3)
		 ON CONFLICT (username) DO NOTHING`,
		"admin", "admin@oneway-taxi.com", hash); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	q := postgres.New(pool)

	cities := []postgres.CreateLocationParams{
		{CityName: "Surat", State: "Gujarat"},
		{CityName: "Surat Airport", State: "Gujarat", IsAirport: true},
		{CityName: "Ahmedabad", State: "Gujarat"},
		{CityName: "Vadodara", State: "Gujarat"},
		{CityName: "Rajkot", State: "Gujarat"},
		{CityName: "Mumbai", State: "Maharashtra"},
		{CityName: "Mumbai Airport", State: "Maharashtra", IsAirport: true},
		{CityName: "Pune", State: "Maharashtra"},
	}
	for _, city := range cities {
		if _, err := q.CreateLocation(ctx, city); err != nil {
			log.Printf("seed location %s: %v", city.CityName, err)
		}
	}

	cabs := []postgres.CreateCabParams{
		{
			Name: "Toyota Etios", Type: domain.CabSedan,
			CapacityPassengers: 4, CapacityLuggage: 3,
			Features:    []string{"AC", "GPS", "Music System"},
			Description: "Comfortable sedan for city travel",
		},
		{
			Name: "Swift Dzire", Type: domain.CabSedan,
			CapacityPassengers: 4, CapacityLuggage: 2,
			Features:    []string{"AC", "GPS", "Music System"},
			Description: "Popular compact sedan",
		},
		{
			Name: "Toyota Innova", Type: domain.CabSUV,
			CapacityPassengers: 7, CapacityLuggage: 4,
			Features:    []string{"AC", "GPS", "Music System", "Extra Legroom"},
			Description: "Spacious SUV for family trips",
		},
	}
	for _, cab := range cabs {
		if _, err := q.CreateCab(ctx, cab); err != nil {
			log.Printf("seed cab %s: %v", cab.Name, err)
		}
	}

	log.Println("seed complete")
}
