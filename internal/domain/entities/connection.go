package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Connection is one VC (set-top box) attached to a customer. Each connection
// carries its own plan and status, which may diverge from the account status.
// Exactly one connection per customer should be primary.
type Connection struct {
	VCNumber  string         `json:"vc_number"`
	IsPrimary bool           `json:"is_primary"`
	PlanName  string         `json:"plan_name"`
	PlanPrice decimal.Decimal `json:"plan_price"`
	Status    CustomerStatus `json:"status"`

	PreviousOutstanding decimal.Decimal `json:"previous_outstanding"`
	CurrentOutstanding  decimal.Decimal `json:"current_outstanding"`

	AssignedAt time.Time `json:"assigned_at"`
}
