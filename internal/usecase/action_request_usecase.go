package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cabletv_backoffice/internal/domain/entities"
	"cabletv_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidRequestID = errors.New("invalid request id")
	ErrRequestNotFound  = errors.New("action request not found")
	ErrAlreadyResolved  = errors.New("action request already resolved")
	ErrStaleRequest     = errors.New("customer state changed since request was raised")
	ErrNotAuthorized    = errors.New("actor is not authorized to resolve requests")
)

// IActionRequestUseCase resolves pending status-change requests.
//
// pending → approved | denied, both terminal. Approval re-validates the live
// customer state against the status recorded at request time; a drifted
// request is rejected with ErrStaleRequest so the caller prompts a refresh
// instead of retrying blindly.

type IActionRequestUseCase interface {
	GetByID(ctx context.Context, requestID string) (entities.ActionRequest, error)
	ListPending(ctx context.Context) ([]entities.ActionRequest, error)
	Approve(ctx context.Context, requestID string, resolver entities.Actor) ([]entities.StatusLog, error)
	Deny(ctx context.Context, requestID string, resolver entities.Actor, reason string) (entities.ActionRequest, error)
}

type ActionRequestUseCase struct {
	requestRepo  interfaces.IActionRequestRepository
	customerRepo interfaces.ICustomerRepository
	logger       *zap.Logger
}

var _ IActionRequestUseCase = (*ActionRequestUseCase)(nil)

func NewActionRequestUseCase(
	requestRepo interfaces.IActionRequestRepository,
	customerRepo interfaces.ICustomerRepository,
	logger *zap.Logger,
) *ActionRequestUseCase {
	return &ActionRequestUseCase{requestRepo: requestRepo, customerRepo: customerRepo, logger: logger}
}

func (u *ActionRequestUseCase) GetByID(ctx context.Context, requestID string) (entities.ActionRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ActionRequest{}, ErrInvalidRequestID
	}
	r, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return entities.ActionRequest{}, err
	}
	if r.ID == "" {
		return entities.ActionRequest{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *ActionRequestUseCase) ListPending(ctx context.Context) ([]entities.ActionRequest, error) {
	return u.requestRepo.ListPending(ctx)
}

// Approve applies the requested change and marks the request approved.
//
// The request is claimed first through a pending-only conditional update, so
// a request can never apply twice. If the customer save fails after the
// claim, the error is surfaced and the caller must re-query actual state;
// there is no rollback.
func (u *ActionRequestUseCase) Approve(ctx context.Context, requestID string, resolver entities.Actor) ([]entities.StatusLog, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidRequestID
	}
	if !resolver.CanChangeStatus() {
		return nil, ErrNotAuthorized
	}

	req, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ID == "" {
		return nil, ErrRequestNotFound
	}
	if req.Status != entities.RequestStatusPending {
		return nil, ErrAlreadyResolved
	}

	c, err := u.customerRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if c.ID == "" {
		return nil, ErrCustomerNotFound
	}

	// Stale-request guard: the state the requester saw must still hold.
	if c.AggregateStatus() != req.CurrentStatus {
		u.logger.Warn("stale action request rejected",
			zap.String("request_id", req.ID),
			zap.String("recorded_status", string(req.CurrentStatus)),
			zap.String("live_status", string(c.AggregateStatus())))
		return nil, ErrStaleRequest
	}
	if c.HasMultipleVCs() && len(req.SelectedVCs) == 0 {
		return nil, ErrVCSelectionRequired
	}

	now := time.Now().UTC()
	req.Status = entities.RequestStatusApproved
	req.ResolvedBy = resolver.ID
	req.ResolvedAt = now
	resolved, err := u.requestRepo.Resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	if resolved.ID == "" {
		return nil, ErrAlreadyResolved
	}

	logs, err := applyStatusTransition(&c, req.RequestedStatus, req.SelectedVCs, resolver.ID, req.Reason, req.ID, now)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		// The customer already sits in the requested state; nothing to write.
		return nil, nil
	}
	if _, err := u.customerRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	u.logger.Info("action request approved",
		zap.String("request_id", req.ID),
		zap.String("customer_id", c.ID),
		zap.Int("logs", len(logs)),
		zap.String("resolved_by", resolver.ID))
	return logs, nil
}

// Deny discards the request. Resolution metadata is the only side effect.
func (u *ActionRequestUseCase) Deny(ctx context.Context, requestID string, resolver entities.Actor, reason string) (entities.ActionRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.ActionRequest{}, ErrInvalidRequestID
	}
	if !resolver.CanChangeStatus() {
		return entities.ActionRequest{}, ErrNotAuthorized
	}

	req, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return entities.ActionRequest{}, err
	}
	if req.ID == "" {
		return entities.ActionRequest{}, ErrRequestNotFound
	}
	if req.Status != entities.RequestStatusPending {
		return entities.ActionRequest{}, ErrAlreadyResolved
	}

	req.Status = entities.RequestStatusDenied
	req.ResolvedBy = resolver.ID
	req.ResolvedAt = time.Now().UTC()
	req.ResolutionReason = reason
	resolved, err := u.requestRepo.Resolve(ctx, req)
	if err != nil {
		return entities.ActionRequest{}, err
	}
	if resolved.ID == "" {
		return entities.ActionRequest{}, ErrAlreadyResolved
	}

	u.logger.Info("action request denied",
		zap.String("request_id", req.ID),
		zap.String("resolved_by", resolver.ID))
	return resolved, nil
}
