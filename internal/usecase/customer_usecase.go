package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cabletv_backoffice/internal/domain/entities"
	"cabletv_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCustomerData = errors.New("invalid customer data")
	ErrInvalidBillDueDate  = errors.New("bill due date must be between 1 and 31")
)

// CreateCustomerCommand is a manual customer entry. It is held to the same
// checks as an import row, against the same registries.
type CreateCustomerCommand struct {
	Name        string
	PhoneNumber string
	Email       string
	Address     string
	Area        string
	VCNumber    string
	PackageName string
	Status      entities.CustomerStatus
	BillDueDate int
}

// ICustomerUseCase covers the customer lifecycle outside status changes:
// manual entry, reads, and soft-disable. Customers with billing history are
// never hard-deleted.

type ICustomerUseCase interface {
	Create(ctx context.Context, cmd CreateCustomerCommand, actor entities.Actor) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	Disable(ctx context.Context, id string, actor entities.Actor) (entities.Customer, error)
}

type CustomerUseCase struct {
	repo      interfaces.ICustomerRepository
	registry  IRegistryLookupUseCase
	inventory interfaces.IVCInventory
	logger    *zap.Logger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(
	repo interfaces.ICustomerRepository,
	registry IRegistryLookupUseCase,
	inventory interfaces.IVCInventory,
	logger *zap.Logger,
) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, registry: registry, inventory: inventory, logger: logger}
}

// Create validates the entry like a one-row import batch, assigns the VC
// from inventory and persists the new customer document.
func (u *CustomerUseCase) Create(ctx context.Context, cmd CreateCustomerCommand, actor entities.Actor) (entities.Customer, error) {
	if cmd.BillDueDate < 0 || cmd.BillDueDate > 31 {
		return entities.Customer{}, ErrInvalidBillDueDate
	}

	snap, err := u.registry.LoadSnapshot(ctx)
	if err != nil {
		return entities.Customer{}, err
	}

	row := ImportRow{
		RowNumber:   1,
		Name:        strings.TrimSpace(cmd.Name),
		PhoneNumber: strings.TrimSpace(cmd.PhoneNumber),
		Email:       strings.TrimSpace(cmd.Email),
		Address:     strings.TrimSpace(cmd.Address),
		Area:        strings.TrimSpace(cmd.Area),
		VCNumber:    strings.TrimSpace(cmd.VCNumber),
		PackageName: strings.TrimSpace(cmd.PackageName),
		Status:      cmd.Status,
	}
	res := validateImportRow(row, snap)
	if !res.Valid {
		return entities.Customer{}, fmt.Errorf("%w: %s", ErrInvalidCustomerData, strings.Join(res.Errors, "; "))
	}

	status := row.Status
	if status == "" {
		status = entities.CustomerStatusActive
	}
	billDueDate := cmd.BillDueDate
	if billDueDate == 0 {
		billDueDate = 1
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
		BillDueDate:   billDueDate,
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

	if err := u.inventory.Assign(ctx, row.VCNumber, c.ID); err != nil {
		if errors.Is(err, interfaces.ErrVCConflict) {
			return entities.Customer{}, fmt.Errorf("%w: %s", ErrVCNotAvailable, row.VCNumber)
		}
		return entities.Customer{}, err
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		if relErr := u.inventory.Release(ctx, row.VCNumber); relErr != nil {
			u.logger.Error("vc release failed after customer create failure",
				zap.String("vc_number", row.VCNumber),
				zap.Error(relErr))
		}
		return entities.Customer{}, err
	}

	u.logger.Info("customer created",
		zap.String("customer_id", created.ID),
		zap.String("vc_number", row.VCNumber),
		zap.String("created_by", actor.ID))
	return created, nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.List(ctx)
}

// Disable soft-disables the account. Billing history stays on the document.
func (u *CustomerUseCase) Disable(ctx context.Context, id string, actor entities.Actor) (entities.Customer, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.Disabled {
		return c, nil
	}

	c.Disabled = true
	c.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Save(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}

	u.logger.Info("customer disabled",
		zap.String("customer_id", c.ID),
		zap.String("disabled_by", actor.ID))
	return saved, nil
}
