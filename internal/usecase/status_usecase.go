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
	ErrInvalidTargetStatus = errors.New("invalid target status")
	ErrVCSelectionRequired = errors.New("vc selection required for multi-vc customer")
	ErrUnknownVC           = errors.New("vc not attached to customer")
	ErrVCNotFound          = errors.New("vc not found in inventory")
	ErrVCNotAvailable      = errors.New("vc not available")
)

// ChangeStatusCommand describes one status change attempt. SelectedVCs is
// mandatory for multi-VC customers; the engine never assumes "all".
type ChangeStatusCommand struct {
	CustomerID   string
	TargetStatus entities.CustomerStatus
	SelectedVCs  []string
	Actor        entities.Actor
	Reason       string
}

// ChangeStatusResult is either applied logs or a pending request, never both.
// NoOp means nothing was eligible: no log was appended and no write happened.
type ChangeStatusResult struct {
	Customer entities.Customer
	Logs     []entities.StatusLog
	Request  *entities.ActionRequest
	NoOp     bool
}

// IStatusUseCase is the single owner of the per-connection status state
// machine. Every surface that shows or changes a status goes through here;
// in particular the aggregate "mixed" derivation has exactly one home
// (entities.Customer.AggregateStatus) and exactly one writer (this engine).
//
// Known gap: there is no locking on customer documents. Two direct admin
// writers racing on the same customer are last-write-wins; only stale
// *requests* are caught, by the workflow's re-validation.

type IStatusUseCase interface {
	ChangeStatus(ctx context.Context, cmd ChangeStatusCommand) (ChangeStatusResult, error)
	EligibleVCs(c entities.Customer, target entities.CustomerStatus) []entities.Connection
	AssignVC(ctx context.Context, customerID, vcNumber string, makePrimary bool, actor entities.Actor) (entities.Customer, error)
	ReleaseVC(ctx context.Context, customerID, vcNumber string, actor entities.Actor) (entities.Customer, error)
}

type StatusUseCase struct {
	customerRepo interfaces.ICustomerRepository
	requestRepo  interfaces.IActionRequestRepository
	inventory    interfaces.IVCInventory
	logger       *zap.Logger
}

var _ IStatusUseCase = (*StatusUseCase)(nil)

func NewStatusUseCase(
	customerRepo interfaces.ICustomerRepository,
	requestRepo interfaces.IActionRequestRepository,
	inventory interfaces.IVCInventory,
	logger *zap.Logger,
) *StatusUseCase {
	return &StatusUseCase{
		customerRepo: customerRepo,
		requestRepo:  requestRepo,
		inventory:    inventory,
		logger:       logger,
	}
}

// EligibleVCs returns the connections a change to target may touch: only
// those whose current status differs. Callers present these for selection.
func (u *StatusUseCase) EligibleVCs(c entities.Customer, target entities.CustomerStatus) []entities.Connection {
	var out []entities.Connection
	for _, conn := range c.Connections {
		if conn.Status != target {
			out = append(out, conn)
		}
	}
	return out
}

// ChangeStatus runs the status algorithm for one customer.
//
// Admins apply directly; anyone else gets a pending ActionRequest and no
// StatusLog. Applied changes persist connections and logs in one save.
func (u *StatusUseCase) ChangeStatus(ctx context.Context, cmd ChangeStatusCommand) (ChangeStatusResult, error) {
	cmd.CustomerID = strings.TrimSpace(cmd.CustomerID)
	if cmd.CustomerID == "" {
		return ChangeStatusResult{}, ErrInvalidCustomerID
	}
	if !entities.ValidCustomerStatus(cmd.TargetStatus) {
		return ChangeStatusResult{}, ErrInvalidTargetStatus
	}

	c, err := u.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		return ChangeStatusResult{}, err
	}
	if c.ID == "" {
		return ChangeStatusResult{}, ErrCustomerNotFound
	}

	if !cmd.Actor.CanChangeStatus() {
		req := entities.ActionRequest{
			ID:              uuid.NewString(),
			CustomerID:      c.ID,
			SelectedVCs:     cmd.SelectedVCs,
			RequestedStatus: cmd.TargetStatus,
			CurrentStatus:   c.AggregateStatus(),
			RequestedBy:     cmd.Actor.ID,
			RequestedAt:     time.Now().UTC(),
			Reason:          cmd.Reason,
			Status:          entities.RequestStatusPending,
		}
		created, err := u.requestRepo.Create(ctx, req)
		if err != nil {
			return ChangeStatusResult{}, err
		}
		u.logger.Info("status change routed to action request",
			zap.String("customer_id", c.ID),
			zap.String("requested_status", string(cmd.TargetStatus)),
			zap.String("requested_by", cmd.Actor.ID))
		return ChangeStatusResult{Customer: c, Request: &created}, nil
	}

	if c.HasMultipleVCs() && len(cmd.SelectedVCs) == 0 {
		return ChangeStatusResult{}, ErrVCSelectionRequired
	}

	logs, err := applyStatusTransition(&c, cmd.TargetStatus, cmd.SelectedVCs, cmd.Actor.ID, cmd.Reason, "", time.Now().UTC())
	if err != nil {
		return ChangeStatusResult{}, err
	}
	if len(logs) == 0 {
		// Nothing eligible: no log, no write.
		return ChangeStatusResult{Customer: c, NoOp: true}, nil
	}

	saved, err := u.customerRepo.Save(ctx, c)
	if err != nil {
		return ChangeStatusResult{}, err
	}
	u.logger.Info("status changed",
		zap.String("customer_id", c.ID),
		zap.String("target", string(cmd.TargetStatus)),
		zap.Int("logs", len(logs)),
		zap.String("changed_by", cmd.Actor.ID))
	return ChangeStatusResult{Customer: saved, Logs: logs}, nil
}

// applyStatusTransition mutates c in place and returns the log entries for
// the transition. Shared by direct changes and approved action requests
// (requestID is stamped into the logs in the latter case). It never persists.
//
// Per-VC entries are appended for every touched connection; the customer
// aggregate entry is appended only when the primary connection is touched or
// the customer has no explicit connections.
func applyStatusTransition(
	c *entities.Customer,
	target entities.CustomerStatus,
	selectedVCs []string,
	changedBy, reason, requestID string,
	now time.Time,
) ([]entities.StatusLog, error) {
	var logs []entities.StatusLog

	if len(c.Connections) == 0 {
		// Legacy customer: single implicit VC, aggregate-level change only.
		if c.Status == target {
			return nil, nil
		}
		logs = append(logs, entities.StatusLog{
			ID:             uuid.NewString(),
			PreviousStatus: c.Status,
			NewStatus:      target,
			ChangedBy:      changedBy,
			ChangedAt:      now,
			Reason:         reason,
			RequestID:      requestID,
		})
		c.Status = target
		c.StatusLogs = append(c.StatusLogs, logs...)
		c.UpdatedAt = now
		return logs, nil
	}

	selected := selectedVCs
	if len(selected) == 0 {
		// Single explicit connection: it is the implied selection.
		selected = []string{c.Connections[0].VCNumber}
	}

	primaryTouched := false
	for _, vc := range selected {
		conn := c.Connection(vc)
		if conn == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVC, vc)
		}
		if conn.Status == target {
			// Already there: excluded, not an error.
			continue
		}
		logs = append(logs, entities.StatusLog{
			ID:             uuid.NewString(),
			VCNumber:       conn.VCNumber,
			PreviousStatus: conn.Status,
			NewStatus:      target,
			ChangedBy:      changedBy,
			ChangedAt:      now,
			Reason:         reason,
			RequestID:      requestID,
		})
		conn.Status = target
		if conn.IsPrimary {
			primaryTouched = true
		}
	}

	if len(logs) == 0 {
		return nil, nil
	}

	if primaryTouched && c.Status != target {
		logs = append(logs, entities.StatusLog{
			ID:             uuid.NewString(),
			PreviousStatus: c.Status,
			NewStatus:      target,
			ChangedBy:      changedBy,
			ChangedAt:      now,
			Reason:         reason,
			RequestID:      requestID,
		})
		c.Status = target
	}

	c.StatusLogs = append(c.StatusLogs, logs...)
	c.UpdatedAt = now
	return logs, nil
}

// AssignVC attaches an available inventory card to the customer as a new
// active connection. The inventory flip is conditional on the card still
// being available, so two concurrent assignments cannot both win.
func (u *StatusUseCase) AssignVC(ctx context.Context, customerID, vcNumber string, makePrimary bool, actor entities.Actor) (entities.Customer, error) {
	customerID = strings.TrimSpace(customerID)
	vcNumber = strings.TrimSpace(vcNumber)
	if customerID == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	if vcNumber == "" {
		return entities.Customer{}, ErrVCNotFound
	}

	c, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}

	item, err := u.inventory.Lookup(ctx, vcNumber)
	if err != nil {
		return entities.Customer{}, err
	}
	if item.VCNumber == "" {
		return entities.Customer{}, ErrVCNotFound
	}
	if item.Status != entities.VCStatusAvailable {
		return entities.Customer{}, fmt.Errorf("%w: %s is assigned to customer %s", ErrVCNotAvailable, vcNumber, item.CustomerID)
	}

	if err := u.inventory.Assign(ctx, vcNumber, customerID); err != nil {
		if errors.Is(err, interfaces.ErrVCConflict) {
			return entities.Customer{}, fmt.Errorf("%w: %s", ErrVCNotAvailable, vcNumber)
		}
		return entities.Customer{}, err
	}

	now := time.Now().UTC()
	if makePrimary {
		for i := range c.Connections {
			c.Connections[i].IsPrimary = false
		}
	}
	conn := entities.Connection{
		VCNumber:   vcNumber,
		IsPrimary:  makePrimary || c.PrimaryConnection() == nil,
		PlanName:   c.PackageName,
		PlanPrice:  c.PackageAmount,
		Status:     entities.CustomerStatusActive,
		AssignedAt: now,
	}
	c.Connections = append(c.Connections, conn)
	c.StatusLogs = append(c.StatusLogs, entities.StatusLog{
		ID:             uuid.NewString(),
		VCNumber:       vcNumber,
		PreviousStatus: entities.CustomerStatusInactive,
		NewStatus:      entities.CustomerStatusActive,
		ChangedBy:      actor.ID,
		ChangedAt:      now,
		Reason:         "vc assigned from inventory",
	})
	c.UpdatedAt = now

	saved, err := u.customerRepo.Save(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	u.logger.Info("vc assigned",
		zap.String("customer_id", customerID),
		zap.String("vc_number", vcNumber),
		zap.Bool("primary", conn.IsPrimary))
	return saved, nil
}

// ReleaseVC detaches a connection and returns the card to inventory. If the
// released connection was primary, the first remaining connection is
// promoted.
func (u *StatusUseCase) ReleaseVC(ctx context.Context, customerID, vcNumber string, actor entities.Actor) (entities.Customer, error) {
	customerID = strings.TrimSpace(customerID)
	vcNumber = strings.TrimSpace(vcNumber)
	if customerID == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}

	idx := -1
	for i := range c.Connections {
		if c.Connections[i].VCNumber == vcNumber {
			idx = i
			break
		}
	}
	if idx == -1 {
		return entities.Customer{}, fmt.Errorf("%w: %s", ErrUnknownVC, vcNumber)
	}

	now := time.Now().UTC()
	released := c.Connections[idx]
	if released.Status != entities.CustomerStatusInactive {
		c.StatusLogs = append(c.StatusLogs, entities.StatusLog{
			ID:             uuid.NewString(),
			VCNumber:       vcNumber,
			PreviousStatus: released.Status,
			NewStatus:      entities.CustomerStatusInactive,
			ChangedBy:      actor.ID,
			ChangedAt:      now,
			Reason:         "vc released to inventory",
		})
	}
	c.Connections = append(c.Connections[:idx], c.Connections[idx+1:]...)
	if released.IsPrimary && len(c.Connections) > 0 {
		c.Connections[0].IsPrimary = true
	}
	c.UpdatedAt = now

	saved, err := u.customerRepo.Save(ctx, c)
	if err != nil {
		return entities.Customer{}, err
	}
	if err := u.inventory.Release(ctx, vcNumber); err != nil {
		// The card stays marked active in inventory; surfaced, not swallowed.
		u.logger.Error("vc release failed after customer save",
			zap.String("customer_id", customerID),
			zap.String("vc_number", vcNumber),
			zap.Error(err))
		return saved, err
	}
	u.logger.Info("vc released",
		zap.String("customer_id", customerID),
		zap.String("vc_number", vcNumber))
	return saved, nil
}
