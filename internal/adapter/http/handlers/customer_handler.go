package handlers

import (
	"errors"
	"net/http"

	request "cabletv_backoffice/internal/adapter/http/dto/request"
	response "cabletv_backoffice/internal/adapter/http/dto/response"
	"cabletv_backoffice/internal/adapter/export"
	"cabletv_backoffice/internal/usecase"
	"cabletv_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)

// CustomerHandler handles HTTP requests for customer accounts.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// CreateCustomer registers a single customer from the back-office form. The
// payload goes through the same validation as a CSV import row.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	actor, err := payload.Actor.ToActor()
	if err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToCommand(), actor)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

// GetCustomer returns one customer document with connections and status logs.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id := c.Param("customer_id")

	customer, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// ListCustomers returns every customer account.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

// DisableCustomer soft-disables an account. Idempotent.
func (h *CustomerHandler) DisableCustomer(c *gin.Context) {
	id := c.Param("customer_id")

	var payload request.DisableCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}
	actor, err := payload.Actor.ToActor()
	if err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Disable(c.Request.Context(), id, actor)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// ExportCustomersCSV streams all customers as a CSV with import-compatible
// headers, so an exported file can be re-imported as-is.
func (h *CustomerHandler) ExportCustomersCSV(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, err := export.GenerateCustomerCSV(customers)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="customers.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportCustomersExcel streams all customers as an XLSX workbook.
func (h *CustomerHandler) ExportCustomersExcel(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, err := export.GenerateCustomerExcel(customers)
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="customers.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID), errors.Is(err, usecase.ErrInvalidBillDueDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCustomerData):
		return pkg.NewDomainError("INVALID_CUSTOMER_DATA", "Customer data failed validation", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVCNotFound):
		return pkg.NewDomainErrorSimple("VC_NOT_FOUND", "VC number not found in inventory", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVCNotAvailable):
		return pkg.NewDomainError("VC_NOT_AVAILABLE", "VC number is not available", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
