package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type Booking struct {
	ID                int64         `json:"id"`
	Reference         string        `json:"reference"`
	TripType          TripType      `json:"trip_type"`
	PickupLocationID  *int64        `json:"pickup_location_id"`
	DropLocationID    *int64        `json:"drop_location_id"`
	PickupDate        *time.Time    `json:"pickup_date"`
	PickupTime        string        `json:"pickup_time,omitempty"`
	JourneyDays       *int          `json:"journey_days"`
	CustomerName      string        `json:"customer_name"`
	Mobile            string        `json:"mobile"`
	Email             string        `json:"email,omitempty"`
	AlternativeNumber string        `json:"alternative_number,omitempty"`
	FlightNumber      string        `json:"flight_number,omitempty"`
	SpecialRequest    string        `json:"special_request,omitempty"`
	CabID             *int64        `json:"cab_id"`
	OneWayPackageID   *int64        `json:"one_way_package_id"`
	LocalPackageID    *int64        `json:"local_package_id"`
	EstimatedPrice    *int64        `json:"estimated_price"`
	Status            BookingStatus `json:"status"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}
