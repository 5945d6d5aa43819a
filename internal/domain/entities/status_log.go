package entities

import "time"

// StatusLog is an immutable audit entry for one discrete status transition.
// Entries are appended to the customer document and never edited or removed.
//
// VCNumber is empty for customer-aggregate entries; per-VC entries carry the
// affected VC. RequestID links entries produced by an approved ActionRequest.
type StatusLog struct {
	ID             string         `json:"id"`
	VCNumber       string         `json:"vc_number,omitempty"`
	PreviousStatus CustomerStatus `json:"previous_status"`
	NewStatus      CustomerStatus `json:"new_status"`
	ChangedBy      string         `json:"changed_by"`
	ChangedAt      time.Time      `json:"changed_at"`
	Reason         string         `json:"reason,omitempty"`
	RequestID      string         `json:"request_id,omitempty"`
}
