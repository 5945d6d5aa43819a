package entities

import "time"

// RequestStatus is the lifecycle of an ActionRequest. Both approved and
// denied are terminal; a request resolves at most once.

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusDenied   RequestStatus = "denied"
)

// ActionRequest is a status change raised by a non-privileged actor, waiting
// for an admin to resolve it.
//
// Storage model (DynamoDB):
//   - PK: id
//
// CurrentStatus records the customer aggregate status observed when the
// request was raised. Approval re-validates it against live state so a stale
// request is rejected instead of blindly applied.

type ActionRequest struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customer_id"`
	SelectedVCs     []string       `json:"selected_vcs"`
	RequestedStatus CustomerStatus `json:"requested_status"`
	CurrentStatus   AggregateStatus `json:"current_status"`
	RequestedBy     string         `json:"requested_by"`
	RequestedAt     time.Time      `json:"requested_at"`
	Reason          string         `json:"reason,omitempty"`

	Status           RequestStatus `json:"status"`
	ResolvedBy       string        `json:"resolved_by,omitempty"`
	ResolvedAt       time.Time     `json:"resolved_at,omitempty"`
	ResolutionReason string        `json:"resolution_reason,omitempty"`
}
