package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cabletv_backoffice/internal/domain/entities"
	"cabletv_backoffice/internal/usecase/interfaces"
	mock_interfaces "cabletv_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type importMocks struct {
	customerRepo *mock_interfaces.MockICustomerRepository
	areas        *mock_interfaces.MockIAreaRegistry
	packages     *mock_interfaces.MockIPackageRegistry
	inventory    *mock_interfaces.MockIVCInventory
}

func newImportUseCase(ctrl *gomock.Controller) (*ImportUseCase, importMocks) {
	m := importMocks{
		customerRepo: mock_interfaces.NewMockICustomerRepository(ctrl),
		areas:        mock_interfaces.NewMockIAreaRegistry(ctrl),
		packages:     mock_interfaces.NewMockIPackageRegistry(ctrl),
		inventory:    mock_interfaces.NewMockIVCInventory(ctrl),
	}
	registry := NewRegistryLookupUseCase(m.areas, m.packages, m.inventory, zap.NewNop())
	return NewImportUseCase(registry, m.customerRepo, m.inventory, zap.NewNop()), m
}

func (m importMocks) expectHealthyRegistries() {
	m.areas.EXPECT().ListNames(gomock.Any()).Return([]string{"North", "South"}, nil)
	m.packages.EXPECT().ListActive(gomock.Any()).Return([]entities.Package{
		{ID: "p-1", Name: "Basic", Price: dec("300.00"), IsActive: true},
	}, nil)
	m.inventory.EXPECT().List(gomock.Any()).Return([]entities.VCInventoryItem{
		{VCNumber: "VC001", Status: entities.VCStatusAvailable},
		{VCNumber: "VC002", Status: entities.VCStatusAvailable},
		{VCNumber: "VC777", Status: entities.VCStatusActive, CustomerID: "c-9"},
	}, nil)
}

const importHeader = "name,phoneNumber,email,address,area,vcNumber,packageName,status\n"

func TestParseImportCSV(t *testing.T) {
	t.Run("missing required columns", func(t *testing.T) {
		_, err := ParseImportCSV(strings.NewReader("name,email\nJohn,j@x.com\n"))
		if !errors.Is(err, ErrMissingColumns) {
			t.Fatalf("expected ErrMissingColumns, got %v", err)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := ParseImportCSV(strings.NewReader(importHeader))
		if !errors.Is(err, ErrEmptyBatch) {
			t.Fatalf("expected ErrEmptyBatch, got %v", err)
		}
	})

	t.Run("oversized batch", func(t *testing.T) {
		var b strings.Builder
		b.WriteString(importHeader)
		for i := 0; i <= MaxImportRows; i++ {
			b.WriteString("John,9876543210,,Addr,North,VC001,Basic,\n")
		}
		_, err := ParseImportCSV(strings.NewReader(b.String()))
		if !errors.Is(err, ErrBatchTooLarge) {
			t.Fatalf("expected ErrBatchTooLarge, got %v", err)
		}
	})

	t.Run("rows are numbered from one", func(t *testing.T) {
		csv := importHeader +
			"John,9876543210,john@example.com,Addr 1,North,VC001,Basic,active\n" +
			"Jane,9876543211,,Addr 2,South,VC002,Basic,\n"
		rows, err := ParseImportCSV(strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(rows))
		}
		if rows[0].RowNumber != 1 || rows[1].RowNumber != 2 {
			t.Fatalf("unexpected row numbers: %d, %d", rows[0].RowNumber, rows[1].RowNumber)
		}
		if rows[0].VCNumber != "VC001" || rows[1].Status != "" {
			t.Fatalf("unexpected parse: %+v", rows)
		}
	})
}

func TestImportUseCase_ValidateBatch(t *testing.T) {
	t.Run("missing vc number reported per row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newImportUseCase(ctrl)
		m.expectHealthyRegistries()

		csv := importHeader +
			"John,9876543210,,Addr 1,North,VC001,Basic,\n" +
			"Jane,9876543211,,Addr 2,South,,Basic,\n"
		summary, _, err := uc.ValidateCSV(context.Background(), strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.ValidRows != 1 || summary.InvalidRows != 1 {
			t.Fatalf("unexpected counts: %+v", summary)
		}
		row2 := summary.PerRowResults[1]
		if row2.Valid {
			t.Fatalf("row 2 should be invalid")
		}
		found := false
		for _, e := range row2.Errors {
			if e == "VC number is required" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected 'VC number is required', got %v", row2.Errors)
		}
		if summary.ReadyToImport {
			t.Fatalf("batch with invalid rows must not be ready")
		}
	})

	t.Run("duplicate vc numbers are a global error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newImportUseCase(ctrl)
		m.expectHealthyRegistries()

		csv := importHeader +
			"John,9876543210,,Addr 1,North,VC001,Basic,\n" +
			"Jane,9876543211,,Addr 2,South,VC001,Basic,\n"
		summary, _, err := uc.ValidateCSV(context.Background(), strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary.ValidRows != 2 {
			t.Fatalf("both rows pass their own checks: %+v", summary)
		}
		if len(summary.GlobalErrors) != 1 {
			t.Fatalf("expected 1 global error, got %v", summary.GlobalErrors)
		}
		if summary.GlobalErrors[0] != `duplicate VC number "VC001" in rows 1, 2` {
			t.Fatalf("unexpected message: %q", summary.GlobalErrors[0])
		}
		if summary.ReadyToImport {
			t.Fatalf("batch with global errors must not be ready")
		}
	})

	t.Run("assigned vc names the holder", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newImportUseCase(ctrl)
		m.expectHealthyRegistries()

		csv := importHeader + "John,9876543210,,Addr 1,North,VC777,Basic,\n"
		summary, _, err := uc.ValidateCSV(context.Background(), strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		row := summary.PerRowResults[0]
		if row.Valid {
			t.Fatalf("expected invalid row")
		}
		if row.Errors[0] != `VC number "VC777" is already assigned to customer c-9` {
			t.Fatalf("unexpected message: %q", row.Errors[0])
		}
	})

	t.Run("bad email is a warning not an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newImportUseCase(ctrl)
		m.expectHealthyRegistries()

		csv := importHeader + "John,9876543210,not-an-email,Addr 1,North,VC001,Basic,\n"
		summary, _, err := uc.ValidateCSV(context.Background(), strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		row := summary.PerRowResults[0]
		if !row.Valid {
			t.Fatalf("warnings must not invalidate: %+v", row)
		}
		if len(row.Warnings) == 0 {
			t.Fatalf("expected an email warning")
		}
	})

	t.Run("degraded registry blocks readiness but not other checks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newImportUseCase(ctrl)

		m.areas.EXPECT().ListNames(gomock.Any()).Return(nil, errors.New("table missing"))
		m.packages.EXPECT().ListActive(gomock.Any()).Return([]entities.Package{
			{Name: "Basic", Price: dec("300.00"), IsActive: true},
		}, nil)
		m.inventory.EXPECT().List(gomock.Any()).Return([]entities.VCInventoryItem{
			{VCNumber: "VC001", Status: entities.VCStatusAvailable},
		}, nil)

		csv := importHeader + "John,9876543210,,Addr 1,Nowhere,VC001,Basic,\n"
		summary, _, err := uc.ValidateCSV(context.Background(), strings.NewReader(csv))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// The unknown area is not flagged because the registry never loaded.
		if summary.InvalidRows != 0 {
			t.Fatalf("area check should be skipped: %+v", summary.PerRowResults)
		}
		if len(summary.Warnings) == 0 {
			t.Fatalf("expected a degradation warning")
		}
		if summary.ReadyToImport {
			t.Fatalf("incomplete snapshot must never be ready to import")
		}
	})
}

func TestImportUseCase_CommitImport(t *testing.T) {
	t.Run("refuses batch that is not ready", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newImportUseCase(ctrl)
		m.expectHealthyRegistries()

		rows := []ImportRow{{RowNumber: 1, Name: "John", PhoneNumber: "9876543210", Area: "North", PackageName: "Basic"}}
		_, err := uc.CommitImport(context.Background(), rows, adminActor)
		if !errors.Is(err, ErrBatchNotReady) {
			t.Fatalf("expected ErrBatchNotReady, got %v", err)
		}
	})

	t.Run("commits every row and reports per-row outcomes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newImportUseCase(ctrl)
		// One snapshot for validation, one for the commit itself.
		m.expectHealthyRegistries()
		m.expectHealthyRegistries()

		rows := []ImportRow{
			{RowNumber: 1, Name: "John", PhoneNumber: "9876543210", Area: "North", VCNumber: "VC001", PackageName: "Basic"},
			{RowNumber: 2, Name: "Jane", PhoneNumber: "9876543211", Area: "South", VCNumber: "VC002", PackageName: "Basic"},
		}

		m.inventory.EXPECT().Assign(gomock.Any(), "VC001", gomock.Any()).Return(nil)
		m.inventory.EXPECT().Assign(gomock.Any(), "VC002", gomock.Any()).Return(nil)
		m.customerRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.Status != entities.CustomerStatusActive {
					t.Fatalf("expected default active status, got %s", c.Status)
				}
				if c.BillDueDate != 1 {
					t.Fatalf("expected default bill due date 1, got %d", c.BillDueDate)
				}
				if len(c.Connections) != 1 || !c.Connections[0].IsPrimary {
					t.Fatalf("expected one primary connection, got %+v", c.Connections)
				}
				if !c.PackageAmount.Equal(dec("300.00")) {
					t.Fatalf("package amount not resolved from registry: %s", c.PackageAmount)
				}
				return c, nil
			},
		).Times(2)

		result, err := uc.CommitImport(context.Background(), rows, adminActor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Imported != 2 || result.Failed != 0 {
			t.Fatalf("unexpected result: %+v", result)
		}
		if result.Outcomes[0].RowNumber != 1 || result.Outcomes[1].RowNumber != 2 {
			t.Fatalf("outcomes out of order: %+v", result.Outcomes)
		}
	})

	t.Run("lost vc race becomes a row outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newImportUseCase(ctrl)
		m.expectHealthyRegistries()
		m.expectHealthyRegistries()

		rows := []ImportRow{
			{RowNumber: 1, Name: "John", PhoneNumber: "9876543210", Area: "North", VCNumber: "VC001", PackageName: "Basic"},
		}

		m.inventory.EXPECT().Assign(gomock.Any(), "VC001", gomock.Any()).Return(interfaces.ErrVCConflict)

		result, err := uc.CommitImport(context.Background(), rows, adminActor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Failed != 1 || result.Imported != 0 {
			t.Fatalf("unexpected result: %+v", result)
		}
		if result.Outcomes[0].Error != `VC number "VC001" is no longer available` {
			t.Fatalf("unexpected outcome error: %q", result.Outcomes[0].Error)
		}
	})

	t.Run("failed create releases the card", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newImportUseCase(ctrl)
		m.expectHealthyRegistries()
		m.expectHealthyRegistries()

		rows := []ImportRow{
			{RowNumber: 1, Name: "John", PhoneNumber: "9876543210", Area: "North", VCNumber: "VC001", PackageName: "Basic"},
		}

		m.inventory.EXPECT().Assign(gomock.Any(), "VC001", gomock.Any()).Return(nil)
		m.customerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Customer{}, errors.New("write failed"))
		m.inventory.EXPECT().Release(gomock.Any(), "VC001").Return(nil)

		result, err := uc.CommitImport(context.Background(), rows, adminActor)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Failed != 1 {
			t.Fatalf("unexpected result: %+v", result)
		}
	})
}

func TestNormalizePhone(t *testing.T) {
	if got := normalizePhone("(987) 654-3210"); got != "9876543210" {
		t.Fatalf("expected 9876543210, got %q", got)
	}
}
