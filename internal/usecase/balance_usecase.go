package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cabletv_backoffice/internal/domain/entities"
	"cabletv_backoffice/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidCustomerID = errors.New("invalid customer id")
	ErrInvalidCycleEvent = errors.New("invalid cycle event")
)

// BalanceResult is the outcome of a recomputation. Either value may be
// negative: a negative outstanding is a credit balance and is kept as-is.
// Display layers decide how to present it, not the calculator.
type BalanceResult struct {
	PreviousOutstanding decimal.Decimal
	CurrentOutstanding  decimal.Decimal
}

// IBalanceUseCase owns the outstanding fields on Customer. Nothing else in
// the codebase writes them.
//
//	currentOutstanding = previousOutstanding + packageAmount − Σ(payments and credits this cycle)

type IBalanceUseCase interface {
	Recompute(c entities.Customer, events []entities.CycleEvent) (BalanceResult, error)
	RecomputeAndSave(ctx context.Context, customerID string, events []entities.CycleEvent) (BalanceResult, error)
	CloseCycle(c entities.Customer) BalanceResult
}

type BalanceUseCase struct {
	repo   interfaces.ICustomerRepository
	logger *zap.Logger
}

var _ IBalanceUseCase = (*BalanceUseCase)(nil)

func NewBalanceUseCase(repo interfaces.ICustomerRepository, logger *zap.Logger) *BalanceUseCase {
	return &BalanceUseCase{repo: repo, logger: logger}
}

// Recompute derives the current outstanding for the running cycle. Pure: no
// I/O, no mutation of c. Invalid events are programmer errors and fail fast;
// a zero-value amount is a valid "missing optional field defaults to 0".
func (u *BalanceUseCase) Recompute(c entities.Customer, events []entities.CycleEvent) (BalanceResult, error) {
	applied := decimal.Zero
	for i, ev := range events {
		switch ev.Type {
		case entities.CycleEventPayment, entities.CycleEventCredit:
		default:
			return BalanceResult{}, fmt.Errorf("%w: event %d has unknown type %q", ErrInvalidCycleEvent, i, ev.Type)
		}
		if ev.Amount.IsNegative() {
			return BalanceResult{}, fmt.Errorf("%w: event %d has negative amount %s", ErrInvalidCycleEvent, i, ev.Amount)
		}
		applied = applied.Add(ev.Amount)
	}

	return BalanceResult{
		PreviousOutstanding: c.PreviousOutstanding,
		CurrentOutstanding:  c.PreviousOutstanding.Add(c.PackageAmount).Sub(applied),
	}, nil
}

// CloseCycle rolls the running cycle's outstanding forward: it becomes the
// next cycle's previous outstanding, and the package amount opens the new
// cycle.
func (u *BalanceUseCase) CloseCycle(c entities.Customer) BalanceResult {
	prev := c.CurrentOutstanding
	return BalanceResult{
		PreviousOutstanding: prev,
		CurrentOutstanding:  prev.Add(c.PackageAmount),
	}
}

// RecomputeAndSave loads the customer, recomputes and persists the result.
func (u *BalanceUseCase) RecomputeAndSave(ctx context.Context, customerID string, events []entities.CycleEvent) (BalanceResult, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return BalanceResult{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, customerID)
	if err != nil {
		return BalanceResult{}, err
	}
	if c.ID == "" {
		return BalanceResult{}, ErrCustomerNotFound
	}

	res, err := u.Recompute(c, events)
	if err != nil {
		return BalanceResult{}, err
	}

	c.PreviousOutstanding = res.PreviousOutstanding
	c.CurrentOutstanding = res.CurrentOutstanding
	if _, err := u.repo.Save(ctx, c); err != nil {
		return BalanceResult{}, err
	}

	u.logger.Info("balance recomputed",
		zap.String("customer_id", c.ID),
		zap.Int("events", len(events)),
		zap.String("current_outstanding", res.CurrentOutstanding.String()))
	return res, nil
}
