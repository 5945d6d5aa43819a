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

var errInvalidBalancePayload = pkg.NewDomainErrorSimple("INVALID_BALANCE_INPUT", "Invalid balance payload", http.StatusBadRequest)

// BalanceHandler handles outstanding recomputation for a customer.

type BalanceHandler struct {
	usecase usecase.IBalanceUseCase
}

func NewBalanceHandler(uc usecase.IBalanceUseCase) *BalanceHandler {
	return &BalanceHandler{usecase: uc}
}

// RecomputeBalance applies the cycle's payments and credits and persists the
// resulting outstanding on the customer document.
func (h *BalanceHandler) RecomputeBalance(c *gin.Context) {
	customerID := c.Param("customer_id")

	var payload request.RecomputeBalanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBalancePayload.HTTPStatus, errInvalidBalancePayload.ToHTTPError())
		return
	}

	events, err := payload.ResolveEvents()
	if err != nil {
		c.JSON(errInvalidBalancePayload.HTTPStatus, errInvalidBalancePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.RecomputeAndSave(c.Request.Context(), customerID, events)
	if err != nil {
		appErr := mapBalanceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBalanceResult(result))
}

func mapBalanceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidCycleEvent):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
