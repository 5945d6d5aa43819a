package response

import (
	"time"

	"cabletv_backoffice/internal/domain/entities"
)

type ActionRequestResponse struct {
	ID               string     `json:"id"`
	CustomerID       string     `json:"customer_id"`
	SelectedVCs      []string   `json:"selected_vcs,omitempty"`
	RequestedStatus  string     `json:"requested_status"`
	CurrentStatus    string     `json:"current_status"`
	RequestedBy      string     `json:"requested_by"`
	RequestedAt      time.Time  `json:"requested_at"`
	Reason           string     `json:"reason,omitempty"`
	Status           string     `json:"status"`
	ResolvedBy       string     `json:"resolved_by,omitempty"`
	ResolvedAt       *time.Time `json:"resolved_at,omitempty"`
	ResolutionReason string     `json:"resolution_reason,omitempty"`
}

func FromActionRequest(r entities.ActionRequest) ActionRequestResponse {
	out := ActionRequestResponse{
		ID:               r.ID,
		CustomerID:       r.CustomerID,
		SelectedVCs:      r.SelectedVCs,
		RequestedStatus:  string(r.RequestedStatus),
		CurrentStatus:    string(r.CurrentStatus),
		RequestedBy:      r.RequestedBy,
		RequestedAt:      r.RequestedAt,
		Reason:           r.Reason,
		Status:           string(r.Status),
		ResolvedBy:       r.ResolvedBy,
		ResolutionReason: r.ResolutionReason,
	}
	if !r.ResolvedAt.IsZero() {
		resolvedAt := r.ResolvedAt
		out.ResolvedAt = &resolvedAt
	}
	return out
}

func FromActionRequests(requests []entities.ActionRequest) []ActionRequestResponse {
	out := make([]ActionRequestResponse, len(requests))
	for i, r := range requests {
		out[i] = FromActionRequest(r)
	}
	return out
}
