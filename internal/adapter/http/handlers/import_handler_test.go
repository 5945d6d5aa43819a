package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cabletv_backoffice/internal/adapter/http/handlers/mocks"
	"cabletv_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestImportHandler_ValidateImport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing csv content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImportUseCase(ctrl)
		h := NewImportHandler(uc)

		r := gin.New()
		r.POST("/v1/imports/validate", h.ValidateImport)

		req := httptest.NewRequest(http.MethodPost, "/v1/imports/validate", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing columns map to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImportUseCase(ctrl)
		h := NewImportHandler(uc)

		uc.EXPECT().ValidateCSV(gomock.Any(), gomock.Any()).
			Return(usecase.ImportValidationSummary{}, nil, usecase.ErrMissingColumns)

		r := gin.New()
		r.POST("/v1/imports/validate", h.ValidateImport)

		req := httptest.NewRequest(http.MethodPost, "/v1/imports/validate", bytes.NewBufferString(`{"csv_content":"name\n"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("summary is returned as-is", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImportUseCase(ctrl)
		h := NewImportHandler(uc)

		uc.EXPECT().ValidateCSV(gomock.Any(), gomock.Any()).Return(usecase.ImportValidationSummary{
			TotalRows:   2,
			ValidRows:   1,
			InvalidRows: 1,
			PerRowResults: []usecase.RowResult{
				{RowNumber: 1, Valid: true},
				{RowNumber: 2, Errors: []string{"VC number is required"}},
			},
		}, nil, nil)

		r := gin.New()
		r.POST("/v1/imports/validate", h.ValidateImport)

		req := httptest.NewRequest(http.MethodPost, "/v1/imports/validate", bytes.NewBufferString(`{"csv_content":"whatever"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp usecase.ImportValidationSummary
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.TotalRows != 2 || resp.InvalidRows != 1 {
			t.Fatalf("unexpected summary: %+v", resp)
		}
		if resp.ReadyToImport {
			t.Fatalf("summary with invalid rows must not be ready")
		}
	})
}

func TestImportHandler_CommitImport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not ready maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImportUseCase(ctrl)
		h := NewImportHandler(uc)

		rows := []usecase.ImportRow{{RowNumber: 1}}
		uc.EXPECT().ValidateCSV(gomock.Any(), gomock.Any()).Return(usecase.ImportValidationSummary{}, rows, nil)
		uc.EXPECT().CommitImport(gomock.Any(), rows, gomock.Any()).
			Return(usecase.ImportCommitResult{}, usecase.ErrBatchNotReady)

		r := gin.New()
		r.POST("/v1/imports/commit", h.CommitImport)

		body := `{"csv_content":"whatever","actor":{"id":"admin-1","role":"admin"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/imports/commit", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("committed batch returns 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIImportUseCase(ctrl)
		h := NewImportHandler(uc)

		rows := []usecase.ImportRow{{RowNumber: 1, VCNumber: "VC001"}}
		uc.EXPECT().ValidateCSV(gomock.Any(), gomock.Any()).Return(usecase.ImportValidationSummary{}, rows, nil)
		uc.EXPECT().CommitImport(gomock.Any(), rows, gomock.Any()).Return(usecase.ImportCommitResult{
			Imported: 1,
			Outcomes: []usecase.ImportOutcome{{RowNumber: 1, CustomerID: "c-1", VCNumber: "VC001"}},
		}, nil)

		r := gin.New()
		r.POST("/v1/imports/commit", h.CommitImport)

		body := `{"csv_content":"whatever","actor":{"id":"admin-1","role":"admin"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/imports/commit", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp usecase.ImportCommitResult
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Imported != 1 {
			t.Fatalf("unexpected result: %+v", resp)
		}
	})
}
