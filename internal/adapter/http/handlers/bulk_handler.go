package handlers

import (
	"errors"
	"net/http"

	request "cabletv_backoffice/internal/adapter/http/dto/request"
	"cabletv_backoffice/internal/usecase"
	"cabletv_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidBulkPayload = pkg.NewDomainErrorSimple("INVALID_BULK_INPUT", "Invalid bulk payload", http.StatusBadRequest)

// BulkHandler handles batch updates over a set of customers.

type BulkHandler struct {
	usecase usecase.IBulkUseCase
}

func NewBulkHandler(uc usecase.IBulkUseCase) *BulkHandler {
	return &BulkHandler{usecase: uc}
}

// UpdateArea moves the selected customers to a new area.
func (h *BulkHandler) UpdateArea(c *gin.Context) {
	var payload request.BulkAreaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBulkPayload.HTTPStatus, errInvalidBulkPayload.ToHTTPError())
		return
	}
	actor, err := payload.Actor.ToActor()
	if err != nil {
		c.JSON(errInvalidBulkPayload.HTTPStatus, errInvalidBulkPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.UpdateArea(c.Request.Context(), payload.CustomerIDs, payload.Area, actor)
	if err != nil {
		appErr := mapBulkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdatePackage switches the selected customers to a different package.
func (h *BulkHandler) UpdatePackage(c *gin.Context) {
	var payload request.BulkPackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBulkPayload.HTTPStatus, errInvalidBulkPayload.ToHTTPError())
		return
	}
	actor, err := payload.Actor.ToActor()
	if err != nil {
		c.JSON(errInvalidBulkPayload.HTTPStatus, errInvalidBulkPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.UpdatePackage(c.Request.Context(), payload.CustomerIDs, payload.PackageName, actor)
	if err != nil {
		appErr := mapBulkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, result)
}

func mapBulkError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoCustomersSelected):
		return pkg.NewDomainErrorSimple("NO_CUSTOMERS_SELECTED", "No customers selected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownArea):
		return pkg.NewDomainErrorSimple("UNKNOWN_AREA", "Area does not exist", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrUnknownPackage):
		return pkg.NewDomainErrorSimple("UNKNOWN_PACKAGE", "Package does not exist or is inactive", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
