package response

import (
	"time"

	"cabletv_backoffice/internal/domain/entities"
)

type ConnectionResponse struct {
	VCNumber            string    `json:"vc_number"`
	IsPrimary           bool      `json:"is_primary"`
	PlanName            string    `json:"plan_name"`
	PlanPrice           string    `json:"plan_price"`
	Status              string    `json:"status"`
	PreviousOutstanding string    `json:"previous_outstanding"`
	CurrentOutstanding  string    `json:"current_outstanding"`
	AssignedAt          time.Time `json:"assigned_at"`
}

type StatusLogResponse struct {
	ID             string    `json:"id"`
	VCNumber       string    `json:"vc_number,omitempty"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	ChangedBy      string    `json:"changed_by"`
	ChangedAt      time.Time `json:"changed_at"`
	Reason         string    `json:"reason,omitempty"`
	RequestID      string    `json:"request_id,omitempty"`
}

// CustomerResponse is the customer document plus the derived fields the
// tables render (aggregate status, is_active).
type CustomerResponse struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	PhoneNumber         string               `json:"phone_number"`
	Email               string               `json:"email,omitempty"`
	Address             string               `json:"address"`
	Area                string               `json:"area"`
	VCNumber            string               `json:"vc_number"`
	PackageName         string               `json:"package_name"`
	Status              string               `json:"status"`
	AggregateStatus     string               `json:"aggregate_status"`
	IsActive            bool                 `json:"is_active"`
	Disabled            bool                 `json:"disabled"`
	BillDueDate         int                  `json:"bill_due_date"`
	PackageAmount       string               `json:"package_amount"`
	PreviousOutstanding string               `json:"previous_outstanding"`
	CurrentOutstanding  string               `json:"current_outstanding"`
	Connections         []ConnectionResponse `json:"connections"`
	StatusLogs          []StatusLogResponse  `json:"status_logs"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

func FromConnection(conn entities.Connection) ConnectionResponse {
	return ConnectionResponse{
		VCNumber:            conn.VCNumber,
		IsPrimary:           conn.IsPrimary,
		PlanName:            conn.PlanName,
		PlanPrice:           conn.PlanPrice.String(),
		Status:              string(conn.Status),
		PreviousOutstanding: conn.PreviousOutstanding.String(),
		CurrentOutstanding:  conn.CurrentOutstanding.String(),
		AssignedAt:          conn.AssignedAt,
	}
}

func FromStatusLog(l entities.StatusLog) StatusLogResponse {
	return StatusLogResponse{
		ID:             l.ID,
		VCNumber:       l.VCNumber,
		PreviousStatus: string(l.PreviousStatus),
		NewStatus:      string(l.NewStatus),
		ChangedBy:      l.ChangedBy,
		ChangedAt:      l.ChangedAt,
		Reason:         l.Reason,
		RequestID:      l.RequestID,
	}
}

func FromStatusLogs(logs []entities.StatusLog) []StatusLogResponse {
	out := make([]StatusLogResponse, len(logs))
	for i, l := range logs {
		out[i] = FromStatusLog(l)
	}
	return out
}

func FromCustomer(c entities.Customer) CustomerResponse {
	conns := make([]ConnectionResponse, len(c.Connections))
	for i, conn := range c.Connections {
		conns[i] = FromConnection(conn)
	}
	return CustomerResponse{
		ID:                  c.ID,
		Name:                c.Name,
		PhoneNumber:         c.PhoneNumber,
		Email:               c.Email,
		Address:             c.Address,
		Area:                c.Area,
		VCNumber:            c.VCNumber,
		PackageName:         c.PackageName,
		Status:              string(c.Status),
		AggregateStatus:     string(c.AggregateStatus()),
		IsActive:            c.IsActive(),
		Disabled:            c.Disabled,
		BillDueDate:         c.BillDueDate,
		PackageAmount:       c.PackageAmount.String(),
		PreviousOutstanding: c.PreviousOutstanding.String(),
		CurrentOutstanding:  c.CurrentOutstanding.String(),
		Connections:         conns,
		StatusLogs:          FromStatusLogs(c.StatusLogs),
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = FromCustomer(c)
	}
	return out
}
