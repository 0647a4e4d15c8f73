package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	// EventOrderStatusUpdated fires after a status update was accepted by
	// the order service.
	EventOrderStatusUpdated EventType = "order_status_updated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	OrderID   string      `json:"order_id"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderStatusUpdatedPayload payload.
type OrderStatusUpdatedPayload struct {
	NewStatus string `json:"new_status"`
	Comment   string `json:"comment,omitempty"`
}
