package handlers

import (
	"errors"
	"net/http"

	request "cabletv_backoffice/internal/adapter/http/dto/request"
	response "cabletv_backoffice/internal/adapter/http/dto/response"
	"cabletv_backoffice/internal/domain/entities"
	"cabletv_backoffice/internal/usecase"
	"cabletv_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status change payload", http.StatusBadRequest)

// StatusHandler handles connection and status operations on a customer.

type StatusHandler struct {
	usecase usecase.IStatusUseCase
}

func NewStatusHandler(uc usecase.IStatusUseCase) *StatusHandler {
	return &StatusHandler{usecase: uc}
}

// ChangeStatusResponse is either the applied change or the pending request
// raised for approval. Exactly one branch is populated.
type ChangeStatusResponse struct {
	Customer *response.CustomerResponse      `json:"customer,omitempty"`
	Logs     []response.StatusLogResponse    `json:"logs,omitempty"`
	Request  *response.ActionRequestResponse `json:"request,omitempty"`
	NoOp     bool                            `json:"no_op"`
}

// ChangeStatus applies or requests a status change on a customer.
//
// Admin actors apply directly; others get a pending action request back with
// HTTP 202.
func (h *StatusHandler) ChangeStatus(c *gin.Context) {
	customerID := c.Param("customer_id")

	var payload request.ChangeStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}
	actor, err := payload.Actor.ToActor()
	if err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.ChangeStatus(c.Request.Context(), usecase.ChangeStatusCommand{
		CustomerID:   customerID,
		TargetStatus: entities.CustomerStatus(payload.TargetStatus),
		SelectedVCs:  payload.SelectedVCs,
		Actor:        actor,
		Reason:       payload.Reason,
	})
	if err != nil {
		appErr := mapStatusError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if result.Request != nil {
		req := response.FromActionRequest(*result.Request)
		c.JSON(http.StatusAccepted, ChangeStatusResponse{Request: &req})
		return
	}

	customer := response.FromCustomer(result.Customer)
	c.JSON(http.StatusOK, ChangeStatusResponse{
		Customer: &customer,
		Logs:     response.FromStatusLogs(result.Logs),
		NoOp:     result.NoOp,
	})
}

// AssignVC attaches an available inventory card to the customer.
func (h *StatusHandler) AssignVC(c *gin.Context) {
	customerID := c.Param("customer_id")

	var payload request.AssignVCRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}
	actor, err := payload.Actor.ToActor()
	if err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.AssignVC(c.Request.Context(), customerID, payload.VCNumber, payload.MakePrimary, actor)
	if err != nil {
		appErr := mapStatusError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// ReleaseVC detaches a connection and returns the card to inventory.
func (h *StatusHandler) ReleaseVC(c *gin.Context) {
	customerID := c.Param("customer_id")

	var payload request.ReleaseVCRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}
	actor, err := payload.Actor.ToActor()
	if err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.ReleaseVC(c.Request.Context(), customerID, payload.VCNumber, actor)
	if err != nil {
		appErr := mapStatusError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func mapStatusError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidTargetStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVCSelectionRequired):
		return pkg.NewDomainErrorSimple("VC_SELECTION_REQUIRED", "Customer has multiple VCs; select which to change", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownVC):
		return pkg.NewDomainError("UNKNOWN_VC", "VC number is not attached to this customer", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrVCNotFound):
		return pkg.NewDomainErrorSimple("VC_NOT_FOUND", "VC number not found in inventory", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVCNotAvailable):
		return pkg.NewDomainError("VC_NOT_AVAILABLE", "VC number is not available", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
