package handlers

import (
	"errors"
	"net/http"

	request "cabletv_backoffice/internal/adapter/http/dto/request"
	response "cabletv_backoffice/internal/adapter/http/dto/response"
	"cabletv_backoffice/internal/usecase"
	"cabletv_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidResolvePayload = pkg.NewDomainErrorSimple("INVALID_RESOLVE_INPUT", "Invalid resolution payload", http.StatusBadRequest)

// ActionRequestHandler handles the approval workflow for status changes
// raised by non-privileged actors.

type ActionRequestHandler struct {
	usecase usecase.IActionRequestUseCase
}

func NewActionRequestHandler(uc usecase.IActionRequestUseCase) *ActionRequestHandler {
	return &ActionRequestHandler{usecase: uc}
}

// ListPending returns the approval queue.
func (h *ActionRequestHandler) ListPending(c *gin.Context) {
	requests, err := h.usecase.ListPending(c.Request.Context())
	if err != nil {
		appErr := mapActionRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActionRequests(requests))
}

// GetRequest returns one action request by id.
func (h *ActionRequestHandler) GetRequest(c *gin.Context) {
	id := c.Param("request_id")

	req, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapActionRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActionRequest(req))
}

// ApproveRequest applies the requested change after re-validating it against
// the customer's live state.
func (h *ActionRequestHandler) ApproveRequest(c *gin.Context) {
	id := c.Param("request_id")

	var payload request.ResolveActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidResolvePayload.HTTPStatus, errInvalidResolvePayload.ToHTTPError())
		return
	}
	actor, err := payload.Actor.ToActor()
	if err != nil {
		c.JSON(errInvalidResolvePayload.HTTPStatus, errInvalidResolvePayload.ToHTTPError())
		return
	}

	logs, err := h.usecase.Approve(c.Request.Context(), id, actor)
	if err != nil {
		appErr := mapActionRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": response.FromStatusLogs(logs)})
}

// DenyRequest closes the request without touching the customer.
func (h *ActionRequestHandler) DenyRequest(c *gin.Context) {
	id := c.Param("request_id")

	var payload request.ResolveActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidResolvePayload.HTTPStatus, errInvalidResolvePayload.ToHTTPError())
		return
	}
	actor, err := payload.Actor.ToActor()
	if err != nil {
		c.JSON(errInvalidResolvePayload.HTTPStatus, errInvalidResolvePayload.ToHTTPError())
		return
	}

	denied, err := h.usecase.Deny(c.Request.Context(), id, actor, payload.Reason)
	if err != nil {
		appErr := mapActionRequestError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromActionRequest(denied))
}

func mapActionRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Actor is not allowed to resolve requests", http.StatusForbidden)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Action request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAlreadyResolved):
		return pkg.NewDomainErrorSimple("REQUEST_ALREADY_RESOLVED", "Action request is already resolved", http.StatusConflict)
	case errors.Is(err, usecase.ErrStaleRequest):
		return pkg.NewDomainError("STALE_REQUEST", "Customer status changed since the request was raised", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrVCSelectionRequired):
		return pkg.NewDomainErrorSimple("VC_SELECTION_REQUIRED", "Request does not select which VCs to change", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
