package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "cabletv_backoffice/internal/adapter/http/dto/request"
	"cabletv_backoffice/internal/usecase"
	"cabletv_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidImportPayload = pkg.NewDomainErrorSimple("INVALID_IMPORT_INPUT", "Invalid import payload", http.StatusBadRequest)

// ImportHandler handles CSV batch validation and commit.

type ImportHandler struct {
	usecase usecase.IImportUseCase
}

func NewImportHandler(uc usecase.IImportUseCase) *ImportHandler {
	return &ImportHandler{usecase: uc}
}

// ValidateImport runs the dry-run validation pass over a CSV batch and
// returns the per-row report. Nothing is persisted.
func (h *ImportHandler) ValidateImport(c *gin.Context) {
	var payload request.ImportValidateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidImportPayload.HTTPStatus, errInvalidImportPayload.ToHTTPError())
		return
	}

	summary, _, err := h.usecase.ValidateCSV(c.Request.Context(), strings.NewReader(payload.CSVContent))
	if err != nil {
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, summary)
}

// CommitImport re-validates the batch and, if every row is valid, creates the
// customers. A batch that is not ready is refused whole.
func (h *ImportHandler) CommitImport(c *gin.Context) {
	var payload request.ImportCommitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidImportPayload.HTTPStatus, errInvalidImportPayload.ToHTTPError())
		return
	}
	actor, err := payload.Actor.ToActor()
	if err != nil {
		c.JSON(errInvalidImportPayload.HTTPStatus, errInvalidImportPayload.ToHTTPError())
		return
	}

	_, rows, err := h.usecase.ValidateCSV(c.Request.Context(), strings.NewReader(payload.CSVContent))
	if err != nil {
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.CommitImport(c.Request.Context(), rows, actor)
	if err != nil {
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, result)
}

func mapImportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMalformedCSV):
		return pkg.NewDomainError("MALFORMED_CSV", "CSV content could not be parsed", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingColumns):
		return pkg.NewDomainError("MISSING_COLUMNS", "CSV header is missing required columns", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyBatch):
		return pkg.NewDomainErrorSimple("EMPTY_BATCH", "CSV contains no data rows", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBatchTooLarge):
		return pkg.NewDomainErrorSimple("BATCH_TOO_LARGE", "CSV exceeds the maximum batch size", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBatchNotReady):
		return pkg.NewDomainError("BATCH_NOT_READY", "Batch has validation errors and cannot be committed", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
