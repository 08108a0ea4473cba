package models

// Wish event operations
const (
	OperationCreated        = "created"
	OperationFulfilled      = "fulfilled"
	OperationResetFulfilled = "reset_fulfilled"
	OperationDeleted        = "deleted"
)

// WishEvent describes a state change of the wish list published to Kafka.
type WishEvent struct {
	EventID     string  `json:"event_id"`               // EventID is a unique identifier for the event.
	Timestamp   int64   `json:"timestamp"`              // Timestamp is the Unix timestamp (in seconds) when the change happened.
	WishID      int64   `json:"wish_id,omitempty"`      // WishID is the affected wish, empty for bulk operations.
	Operation   string  `json:"operation"`              // Operation is one of created, fulfilled, reset_fulfilled, deleted.
	FulfilledBy *string `json:"fulfilled_by,omitempty"` // FulfilledBy is the benefactor name for fulfilled events.
	Affected    int64   `json:"affected"`               // Affected is the number of rows changed by the operation.
}
