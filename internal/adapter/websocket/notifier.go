package websocket

import "github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"

// BookingCreated implements port.BookingNotifier.
func (h *Hub) BookingCreated(b domain.Booking) {
	h.Publish(Event{Type: EventBookingCreated, Payload: b})
}

func (h *Hub) BookingUpdated(b domain.Booking) {
	h.Publish(Event{Type: EventBookingUpdated, Payload: b})
}
