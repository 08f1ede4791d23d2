package types

// TrackingLog is an append-only event the backend emits for an order.
type TrackingLog struct {
	ID             int
	OrderNumber    OrderNumber
	Handler        string
	ResponseStatus string
	CreatedAt      string
}

// Notification is a local alert raised for the user.
type Notification struct {
	Title       string      `json:"title"`
	Body        string      `json:"body"`
	OrderNumber OrderNumber `json:"order_number,omitempty"`
}
