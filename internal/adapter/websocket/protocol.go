package websocket

type EventType string

const (
	EventBookingCreated EventType = "BOOKING_CREATED"
	EventBookingUpdated EventType = "BOOKING_UPDATED"
)

// Event is the envelope pushed to connected admin consoles.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
}
