package domain

import "time"

type Location struct {
	ID        int64     `json:"id"`
	CityName  string    `json:"city_name"`
	State     string    `json:"state"`
	IsAirport bool      `json:"is_airport"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
