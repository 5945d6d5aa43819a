// Package export renders the customer book as downloadable files for the
// bulk export screens.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"cabletv_backoffice/internal/domain/entities"

	"github.com/xuri/excelize/v2"
)

// CustomerExportHeader matches the CSV import column contract, so an export
// can be edited and re-imported.
var CustomerExportHeader = []string{
	"name",
	"phoneNumber",
	"email",
	"address",
	"area",
	"vcNumber",
	"packageName",
	"status",
}

// ExcelExportHeader adds the billing columns the import does not accept.
var ExcelExportHeader = []string{
	"Name",
	"Phone Number",
	"Email",
	"Address",
	"Area",
	"VC Number",
	"Package",
	"Status",
	"Aggregate Status",
	"Package Amount",
	"Previous Outstanding",
	"Current Outstanding",
	"Connections",
}

// GenerateCustomerCSV writes the book in the import column contract.
func GenerateCustomerCSV(customers []entities.Customer) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CustomerExportHeader); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, c := range customers {
		record := []string{
			c.Name,
			c.PhoneNumber,
			c.Email,
			c.Address,
			c.Area,
			c.VCNumber,
			c.PackageName,
			string(c.Status),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateCustomerExcel builds the styled XLSX export with the billing
// columns included.
func GenerateCustomerExcel(customers []entities.Customer) ([]byte, error) {
	f := excelize.NewFile()

	sheetName := "Customers"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range ExcelExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	columnWidths := []float64{25, 15, 25, 35, 18, 15, 20, 12, 15, 15, 18, 18, 12}
	for i := range ExcelExportHeader {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert column number: %w", err)
		}
		if i < len(columnWidths) {
			if err := f.SetColWidth(sheetName, col, col, columnWidths[i]); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set column width: %w", err)
			}
		}
	}

	for rowIdx, c := range customers {
		row := rowIdx + 2
		values := []any{
			c.Name,
			c.PhoneNumber,
			c.Email,
			c.Address,
			c.Area,
			c.VCNumber,
			c.PackageName,
			string(c.Status),
			string(c.AggregateStatus()),
			c.PackageAmount.String(),
			c.PreviousOutstanding.String(),
			c.CurrentOutstanding.String(),
			strconv.Itoa(len(c.Connections)),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
