package types

import "encoding/json"

// Envelope is the common response shape of every backend endpoint.
type Envelope struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message,omitempty"`
	Data         json.RawMessage `json:"data,omitempty"`
	CartID       Text            `json:"cart_id,omitempty"`
	TotalAmount  Text            `json:"total_amount,omitempty"`
	TrackingLogs json.RawMessage `json:"tracking_logs,omitempty"`
}

// Call is a fully-formed backend request that can be sent now or replayed
// later.
type Call struct {
	Method string          `json:"method"`
	URL    string          `json:"url"`
	Body   json.RawMessage `json:"data,omitempty"`
}

// OfflineAction is a Call that was recorded while the backend was unreachable.
// The call is stored without credentials. Owner is the id of the user who
// made it.
type OfflineAction struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Owner     string `json:"owner,omitempty"`
	Call
}

// Submission is the outcome of submitting a Call through the offline layer.
type Submission struct {
	// Queued reports that the call was stored for replay instead of sent.
	Queued   bool
	Envelope Envelope
}
