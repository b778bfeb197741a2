package port

import "github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"

// BookingNotifier pushes booking lifecycle events to the admin console.
// Delivery is best-effort; a failed push never fails the booking.
type BookingNotifier interface {
	BookingCreated(b domain.Booking)
	BookingUpdated(b domain.Booking)
}
