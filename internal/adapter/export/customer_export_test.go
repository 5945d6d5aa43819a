package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"cabletv_backoffice/internal/domain/entities"
)

func sampleCustomers() []entities.Customer {
	return []entities.Customer{
		{
			Name:        "John",
			PhoneNumber: "9876543210",
			Email:       "john@example.com",
			Address:     "Addr 1",
			Area:        "North",
			VCNumber:    "VC001",
			PackageName: "Basic",
			Status:      entities.CustomerStatusActive,
			Connections: []entities.Connection{
				{VCNumber: "VC001", IsPrimary: true, Status: entities.CustomerStatusActive},
				{VCNumber: "VC002", Status: entities.CustomerStatusInactive},
			},
		},
		{
			Name:        "Jane",
			PhoneNumber: "9876543211",
			Area:        "South",
			VCNumber:    "VC003",
			PackageName: "Basic",
			Status:      entities.CustomerStatusDemo,
		},
	}
}

func TestGenerateCustomerCSV(t *testing.T) {
	data, err := GenerateCustomerCSV(sampleCustomers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("export is not parseable csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d records", len(records))
	}
	// The export header must match the import contract so a round trip works.
	for i, col := range CustomerExportHeader {
		if records[0][i] != col {
			t.Fatalf("header mismatch at %d: got %q, want %q", i, records[0][i], col)
		}
	}
	if records[1][0] != "John" || records[1][5] != "VC001" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
	if records[2][7] != "demo" {
		t.Fatalf("expected demo status, got %q", records[2][7])
	}
}

func TestGenerateCustomerExcel(t *testing.T) {
	data, err := GenerateCustomerExcel(sampleCustomers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected workbook bytes")
	}
	// XLSX is a zip archive; check the magic header.
	if data[0] != 'P' || data[1] != 'K' {
		t.Fatalf("output does not look like an xlsx file")
	}
}
