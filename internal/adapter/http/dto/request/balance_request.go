package request

import (
	"errors"
	"time"

	"cabletv_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidEventAmount = errors.New("invalid cycle event amount")

// CycleEventRequest is one payment or credit in the running billing cycle.
// Amount is a decimal string; an empty amount means the optional field was
// omitted and defaults to zero.
type CycleEventRequest struct {
	Type   string    `json:"type" binding:"required"`
	Amount string    `json:"amount"`
	At     time.Time `json:"at"`
	Note   string    `json:"note"`
}

// RecomputeBalanceRequest carries the cycle events to apply.
type RecomputeBalanceRequest struct {
	Events []CycleEventRequest `json:"events"`
}

func (r RecomputeBalanceRequest) ResolveEvents() ([]entities.CycleEvent, error) {
	events := make([]entities.CycleEvent, 0, len(r.Events))
	for _, ev := range r.Events {
		amount := decimal.Zero
		if ev.Amount != "" {
			var err error
			amount, err = decimal.NewFromString(ev.Amount)
			if err != nil {
				return nil, ErrInvalidEventAmount
			}
		}
		events = append(events, entities.CycleEvent{
			Type:   entities.CycleEventType(ev.Type),
			Amount: amount,
			At:     ev.At,
			Note:   ev.Note,
		})
	}
	return events, nil
}
