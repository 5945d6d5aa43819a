package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CycleEventType classifies a billing-cycle event. Payments and credits both
// reduce the outstanding balance.

type CycleEventType string

const (
	CycleEventPayment CycleEventType = "payment"
	CycleEventCredit  CycleEventType = "credit"
)

// CycleEvent is one payment or credit applied within the current billing
// cycle.
type CycleEvent struct {
	Type   CycleEventType  `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	At     time.Time       `json:"at"`
	Note   string          `json:"note,omitempty"`
}
