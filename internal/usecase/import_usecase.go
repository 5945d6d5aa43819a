package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"cabletv_backoffice/internal/domain/entities"
	"cabletv_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyBatch     = errors.New("import batch has no rows")
	ErrBatchTooLarge  = errors.New("import batch exceeds the row limit")
	ErrMissingColumns = errors.New("csv header is missing required columns")
	ErrMalformedCSV   = errors.New("malformed csv")
	ErrBatchNotReady  = errors.New("batch is not ready to import")
)

// MaxImportRows bounds a batch before the cross-reference pass runs.
const MaxImportRows = 1000

// CSV header contract. Case-sensitive, order-independent. Email and status
// columns are optional; the rest must be present.
const (
	colName    = "name"
	colPhone   = "phoneNumber"
	colEmail   = "email"
	colAddress = "address"
	colArea    = "area"
	colVC      = "vcNumber"
	colPackage = "packageName"
	colStatus  = "status"
)

var requiredColumns = []string{colName, colPhone, colAddress, colArea, colVC, colPackage}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ImportRow is one parsed CSV data row. RowNumber is 1-based over data rows
// (the header is row 0) and is what every message references.
type ImportRow struct {
	RowNumber   int                     `json:"row_number"`
	Name        string                  `json:"name"`
	PhoneNumber string                  `json:"phone_number"`
	Email       string                  `json:"email,omitempty"`
	Address     string                  `json:"address"`
	Area        string                  `json:"area"`
	VCNumber    string                  `json:"vc_number"`
	PackageName string                  `json:"package_name"`
	Status      entities.CustomerStatus `json:"status"`
}

// RowResult carries the per-row findings. A row is valid when it collected
// no errors; warnings alone do not invalidate it.
type RowResult struct {
	RowNumber int      `json:"row_number"`
	Errors    []string `json:"errors,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
	Valid     bool     `json:"valid"`
}

// ImportValidationSummary aggregates a whole batch. ReadyToImport is true
// only when the registries all loaded, no global error was found and every
// row is individually valid. Importing only the valid subset is a caller
// decision this summary never makes.
type ImportValidationSummary struct {
	TotalRows     int         `json:"total_rows"`
	ValidRows     int         `json:"valid_rows"`
	InvalidRows   int         `json:"invalid_rows"`
	GlobalErrors  []string    `json:"global_errors,omitempty"`
	Warnings      []string    `json:"warnings,omitempty"`
	PerRowResults []RowResult `json:"per_row_results"`
	ReadyToImport bool        `json:"ready_to_import"`
}

// ImportOutcome is the commit result for one row's customer write.
type ImportOutcome struct {
	RowNumber  int    `json:"row_number"`
	CustomerID string `json:"customer_id,omitempty"`
	VCNumber   string `json:"vc_number"`
	Error      string `json:"error,omitempty"`
}

// ImportCommitResult reports the fan-out, one outcome per row, failures
// included. There is no rollback: on partial failure the caller re-queries
// to find actual state.
type ImportCommitResult struct {
	Imported int             `json:"imported"`
	Failed   int             `json:"failed"`
	Outcomes []ImportOutcome `json:"outcomes"`
}

// IImportUseCase validates CSV batches against the live registries and
// commits accepted batches as customer documents.

type IImportUseCase interface {
	ValidateCSV(ctx context.Context, r io.Reader) (ImportValidationSummary, []ImportRow, error)
	ValidateBatch(ctx context.Context, rows []ImportRow) (ImportValidationSummary, error)
	CommitImport(ctx context.Context, rows []ImportRow, actor entities.Actor) (ImportCommitResult, error)
}

type ImportUseCase struct {
	registry     IRegistryLookupUseCase
	customerRepo interfaces.ICustomerRepository
	inventory    interfaces.IVCInventory
	logger       *zap.Logger
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(
	registry IRegistryLookupUseCase,
	customerRepo interfaces.ICustomerRepository,
	inventory interfaces.IVCInventory,
	logger *zap.Logger,
) *ImportUseCase {
	return &ImportUseCase{registry: registry, customerRepo: customerRepo, inventory: inventory, logger: logger}
}

// ParseImportCSV reads the batch into typed rows. Structural problems
// (missing columns, empty or oversized batch, unparseable text) abort here,
// before any per-row work.
func ParseImportCSV(r io.Reader) ([]ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyBatch
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}

	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	field := func(record []string, col string) string {
		idx, ok := colIdx[col]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var rows []ImportRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedCSV, len(rows)+1, err)
		}
		if len(record) == 0 {
			continue
		}

		rows = append(rows, ImportRow{
			RowNumber:   len(rows) + 1,
			Name:        field(record, colName),
			PhoneNumber: field(record, colPhone),
			Email:       field(record, colEmail),
			Address:     field(record, colAddress),
			Area:        field(record, colArea),
			VCNumber:    field(record, colVC),
			PackageName: field(record, colPackage),
			Status:      entities.CustomerStatus(field(record, colStatus)),
		})
	}

	if len(rows) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(rows) > MaxImportRows {
		return nil, fmt.Errorf("%w: %d rows, limit %d", ErrBatchTooLarge, len(rows), MaxImportRows)
	}
	return rows, nil
}

// ValidateCSV parses and validates in one call, returning the parsed rows so
// a later commit does not re-parse the text.
func (u *ImportUseCase) ValidateCSV(ctx context.Context, r io.Reader) (ImportValidationSummary, []ImportRow, error) {
	rows, err := ParseImportCSV(r)
	if err != nil {
		return ImportValidationSummary{}, nil, err
	}
	summary, err := u.ValidateBatch(ctx, rows)
	if err != nil {
		return ImportValidationSummary{}, nil, err
	}
	return summary, rows, nil
}

// ValidateBatch runs the row-by-row and batch-wide checks against a fresh
// registry snapshot. Validation findings are data in the summary, never
// returned errors.
func (u *ImportUseCase) ValidateBatch(ctx context.Context, rows []ImportRow) (ImportValidationSummary, error) {
	if len(rows) == 0 {
		return ImportValidationSummary{}, ErrEmptyBatch
	}
	if len(rows) > MaxImportRows {
		return ImportValidationSummary{}, fmt.Errorf("%w: %d rows, limit %d", ErrBatchTooLarge, len(rows), MaxImportRows)
	}

	snap, err := u.registry.LoadSnapshot(ctx)
	if err != nil {
		return ImportValidationSummary{}, err
	}

	summary := ImportValidationSummary{
		TotalRows: len(rows),
		Warnings:  snap.Warnings,
	}

	phoneRows := map[string][]int{}
	vcRows := map[string][]int{}

	for _, row := range rows {
		res := validateImportRow(row, snap)
		if normalized := normalizePhone(row.PhoneNumber); normalized != "" {
			phoneRows[normalized] = append(phoneRows[normalized], row.RowNumber)
		}
		if row.VCNumber != "" {
			vcRows[row.VCNumber] = append(vcRows[row.VCNumber], row.RowNumber)
		}
		summary.PerRowResults = append(summary.PerRowResults, res)
		if res.Valid {
			summary.ValidRows++
		} else {
			summary.InvalidRows++
		}
	}

	// Batch-wide duplicates are global errors: a CSV can be internally
	// inconsistent even when every row passes its own checks.
	summary.GlobalErrors = append(summary.GlobalErrors, duplicateErrors("phone number", phoneRows)...)
	summary.GlobalErrors = append(summary.GlobalErrors, duplicateErrors("VC number", vcRows)...)

	summary.ReadyToImport = snap.Complete &&
		len(summary.GlobalErrors) == 0 &&
		summary.InvalidRows == 0

	u.logger.Info("import batch validated",
		zap.Int("total_rows", summary.TotalRows),
		zap.Int("valid_rows", summary.ValidRows),
		zap.Int("invalid_rows", summary.InvalidRows),
		zap.Int("global_errors", len(summary.GlobalErrors)),
		zap.Bool("ready", summary.ReadyToImport))
	return summary, nil
}

// validateImportRow runs the per-row checks for one row against a snapshot.
// Shared with manual customer entry, which validates the same fields.
func validateImportRow(row ImportRow, snap RegistrySnapshot) RowResult {
	res := RowResult{RowNumber: row.RowNumber}
	addErr := func(msg string) { res.Errors = append(res.Errors, msg) }
	addWarn := func(msg string) { res.Warnings = append(res.Warnings, msg) }

	if row.Name == "" {
		addErr("name is required")
	}
	if row.PhoneNumber == "" {
		addErr("phone number is required")
	} else if len(normalizePhone(row.PhoneNumber)) != 10 {
		addErr(fmt.Sprintf("phone number %q must have 10 digits", row.PhoneNumber))
	}
	if row.Address == "" {
		addWarn("address is empty")
	}
	if row.Area == "" {
		addErr("area is required")
	}
	if row.VCNumber == "" {
		addErr("VC number is required")
	}
	if row.PackageName == "" {
		addErr("package name is required")
	}

	if row.Email != "" && !emailPattern.MatchString(row.Email) {
		addWarn(fmt.Sprintf("email %q does not look valid", row.Email))
	}

	if row.Status != "" && !entities.ValidCustomerStatus(row.Status) {
		addErr(fmt.Sprintf("status %q is not one of active, inactive, demo", row.Status))
	}

	if row.Area != "" && snap.AreasLoaded && !snap.HasArea(row.Area) {
		addErr(fmt.Sprintf("area %q does not exist", row.Area))
	}
	if row.PackageName != "" && snap.PackagesLoaded {
		pkg, ok := snap.Package(row.PackageName)
		switch {
		case !ok:
			addErr(fmt.Sprintf("package %q does not exist", row.PackageName))
		case !pkg.IsActive:
			addErr(fmt.Sprintf("package %q is not active", row.PackageName))
		}
	}
	if row.VCNumber != "" && snap.InventoryLoaded {
		vc, ok := snap.VC(row.VCNumber)
		switch {
		case !ok:
			addErr(fmt.Sprintf("VC number %q does not exist in inventory", row.VCNumber))
		case vc.Status != entities.VCStatusAvailable:
			if vc.CustomerID != "" {
				addErr(fmt.Sprintf("VC number %q is already assigned to customer %s", row.VCNumber, vc.CustomerID))
			} else {
				addErr(fmt.Sprintf("VC number %q is not available", row.VCNumber))
			}
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// CommitImport turns a ready batch into customer documents. The batch is
// re-validated first; a batch that is not readyToImport is refused outright.
// Writes fan out concurrently, one per customer, and every row gets an
// outcome whether its write succeeded or not.
func (u *ImportUseCase) CommitImport(ctx context.Context, rows []ImportRow, actor entities.Actor) (ImportCommitResult, error) {
	summary, err := u.ValidateBatch(ctx, rows)
	if err != nil {
		return ImportCommitResult{}, err
	}
	if !summary.ReadyToImport {
		return ImportCommitResult{}, fmt.Errorf("%w: %d invalid rows, %d global errors",
			ErrBatchNotReady, summary.InvalidRows, len(summary.GlobalErrors))
	}

	snap, err := u.registry.LoadSnapshot(ctx)
	if err != nil {
		return ImportCommitResult{}, err
	}

	outcomes := make([]ImportOutcome, len(rows))
	var wg sync.WaitGroup
	for i, row := range rows {
		wg.Add(1)
		go func(i int, row ImportRow) {
			defer wg.Done()
			outcomes[i] = u.importOne(ctx, row, snap, actor)
		}(i, row)
	}
	wg.Wait()

	result := ImportCommitResult{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Error == "" {
			result.Imported++
		} else {
			result.Failed++
		}
	}

	u.logger.Info("import committed",
		zap.Int("imported", result.Imported),
		zap.Int("failed", result.Failed),
		zap.String("actor", actor.ID))
	return result, nil
}

func (u *ImportUseCase) importOne(ctx context.Context, row ImportRow, snap RegistrySnapshot, actor entities.Actor) ImportOutcome {
	outcome := ImportOutcome{RowNumber: row.RowNumber, VCNumber: row.VCNumber}

	status := row.Status
	if status == "" {
		status = entities.CustomerStatusActive
	}
	pkg, _ := snap.Package(row.PackageName)

	now := time.Now().UTC()
	c := entities.Customer{
		ID:            uuid.NewString(),
		Name:          row.Name,
		PhoneNumber:   normalizePhone(row.PhoneNumber),
		Email:         row.Email,
		Address:       row.Address,
		Area:          row.Area,
		VCNumber:      row.VCNumber,
		PackageName:   row.PackageName,
		PackageAmount: pkg.Price,
		Status:        status,
		BillDueDate:   1,
		Connections: []entities.Connection{{
			VCNumber:   row.VCNumber,
			IsPrimary:  true,
			PlanName:   row.PackageName,
			PlanPrice:  pkg.Price,
			Status:     status,
			AssignedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	// The snapshot said the card was available, but the conditional assign
	// decides at write time.
	if err := u.inventory.Assign(ctx, row.VCNumber, c.ID); err != nil {
		if errors.Is(err, interfaces.ErrVCConflict) {
			outcome.Error = fmt.Sprintf("VC number %q is no longer available", row.VCNumber)
		} else {
			outcome.Error = err.Error()
		}
		return outcome
	}

	if _, err := u.customerRepo.Create(ctx, c); err != nil {
		outcome.Error = err.Error()
		if relErr := u.inventory.Release(ctx, row.VCNumber); relErr != nil {
			u.logger.Error("vc release failed after import write failure",
				zap.String("vc_number", row.VCNumber),
				zap.Error(relErr))
		}
		return outcome
	}

	outcome.CustomerID = c.ID
	return outcome
}

func normalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func duplicateErrors(label string, rowsByValue map[string][]int) []string {
	var values []string
	for v, rows := range rowsByValue {
		if len(rows) > 1 {
			values = append(values, v)
		}
	}
	sort.Strings(values)

	var errs []string
	for _, v := range values {
		rows := rowsByValue[v]
		parts := make([]string, len(rows))
		for i, r := range rows {
			parts[i] = fmt.Sprintf("%d", r)
		}
		errs = append(errs, fmt.Sprintf("duplicate %s %q in rows %s", label, v, strings.Join(parts, ", ")))
	}
	return errs
}
