package domain

import "time"

type CabType string

const (
	CabSedan CabType = "Sedan"
	CabSUV   CabType = "SUV"
	CabBus   CabType = "Bus"
	CabTempo CabType = "Tempo Traveller"
	CabHatch CabType = "Hatchback"
)

type Cab struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Type               CabType   `json:"type"`
	CapacityPassengers int       `json:"capacity_passengers"`
	CapacityLuggage    int       `json:"capacity_luggage"`
	Features           []string  `json:"features"`
	Description        string    `json:"description,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
