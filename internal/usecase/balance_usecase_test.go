package usecase

import (
	"context"
	"errors"
	"testing"

	"cabletv_backoffice/internal/domain/entities"
	mock_interfaces "cabletv_backoffice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBalanceUseCase_Recompute(t *testing.T) {
	uc := NewBalanceUseCase(nil, zap.NewNop())

	t.Run("balance identity", func(t *testing.T) {
		c := entities.Customer{
			PreviousOutstanding: dec("150.00"),
			PackageAmount:       dec("300.00"),
		}
		events := []entities.CycleEvent{
			{Type: entities.CycleEventPayment, Amount: dec("200.00")},
			{Type: entities.CycleEventCredit, Amount: dec("50.00")},
		}

		res, err := uc.Recompute(c, events)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.PreviousOutstanding.Equal(dec("150.00")) {
			t.Fatalf("previous outstanding changed: %s", res.PreviousOutstanding)
		}
		if !res.CurrentOutstanding.Equal(dec("200.00")) {
			t.Fatalf("expected 200.00, got %s", res.CurrentOutstanding)
		}
	})

	t.Run("overpayment yields credit balance", func(t *testing.T) {
		c := entities.Customer{
			PreviousOutstanding: decimal.Zero,
			PackageAmount:       dec("300.00"),
		}
		events := []entities.CycleEvent{
			{Type: entities.CycleEventPayment, Amount: dec("500.00")},
		}

		res, err := uc.Recompute(c, events)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.CurrentOutstanding.Equal(dec("-200.00")) {
			t.Fatalf("expected -200.00 credit, got %s", res.CurrentOutstanding)
		}
	})

	t.Run("no events", func(t *testing.T) {
		c := entities.Customer{
			PreviousOutstanding: dec("100.00"),
			PackageAmount:       dec("250.00"),
		}

		res, err := uc.Recompute(c, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.CurrentOutstanding.Equal(dec("350.00")) {
			t.Fatalf("expected 350.00, got %s", res.CurrentOutstanding)
		}
	})

	t.Run("zero amount event is valid", func(t *testing.T) {
		c := entities.Customer{PackageAmount: dec("300.00")}
		events := []entities.CycleEvent{
			{Type: entities.CycleEventPayment, Amount: decimal.Zero},
		}

		res, err := uc.Recompute(c, events)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.CurrentOutstanding.Equal(dec("300.00")) {
			t.Fatalf("expected 300.00, got %s", res.CurrentOutstanding)
		}
	})

	t.Run("unknown event type", func(t *testing.T) {
		events := []entities.CycleEvent{
			{Type: "refund", Amount: dec("10.00")},
		}
		_, err := uc.Recompute(entities.Customer{}, events)
		if !errors.Is(err, ErrInvalidCycleEvent) {
			t.Fatalf("expected ErrInvalidCycleEvent, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		events := []entities.CycleEvent{
			{Type: entities.CycleEventPayment, Amount: dec("-5.00")},
		}
		_, err := uc.Recompute(entities.Customer{}, events)
		if !errors.Is(err, ErrInvalidCycleEvent) {
			t.Fatalf("expected ErrInvalidCycleEvent, got %v", err)
		}
	})
}

func TestBalanceUseCase_CloseCycle(t *testing.T) {
	uc := NewBalanceUseCase(nil, zap.NewNop())

	c := entities.Customer{
		PreviousOutstanding: dec("150.00"),
		CurrentOutstanding:  dec("75.00"),
		PackageAmount:       dec("300.00"),
	}

	res := uc.CloseCycle(c)
	if !res.PreviousOutstanding.Equal(dec("75.00")) {
		t.Fatalf("expected carried-over 75.00, got %s", res.PreviousOutstanding)
	}
	if !res.CurrentOutstanding.Equal(dec("375.00")) {
		t.Fatalf("expected 375.00, got %s", res.CurrentOutstanding)
	}
}

func TestBalanceUseCase_RecomputeAndSave(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewBalanceUseCase(nil, zap.NewNop())
		_, err := uc.RecomputeAndSave(context.Background(), "  ", nil)
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewBalanceUseCase(repo, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, nil)

		_, err := uc.RecomputeAndSave(context.Background(), "c-1", nil)
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("persists recomputed outstanding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewBalanceUseCase(repo, zap.NewNop())

		stored := entities.Customer{
			ID:                  "c-1",
			PreviousOutstanding: dec("100.00"),
			PackageAmount:       dec("300.00"),
		}
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(stored, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if !c.CurrentOutstanding.Equal(dec("250.00")) {
					t.Fatalf("unexpected saved outstanding: %s", c.CurrentOutstanding)
				}
				return c, nil
			},
		)

		events := []entities.CycleEvent{
			{Type: entities.CycleEventPayment, Amount: dec("150.00")},
		}
		res, err := uc.RecomputeAndSave(context.Background(), "c-1", events)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.CurrentOutstanding.Equal(dec("250.00")) {
			t.Fatalf("expected 250.00, got %s", res.CurrentOutstanding)
		}
	})

	t.Run("invalid event does not save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewBalanceUseCase(repo, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{ID: "c-1"}, nil)

		events := []entities.CycleEvent{{Type: "bogus"}}
		_, err := uc.RecomputeAndSave(context.Background(), "c-1", events)
		if !errors.Is(err, ErrInvalidCycleEvent) {
			t.Fatalf("expected ErrInvalidCycleEvent, got %v", err)
		}
	})
}
