package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cabletv_backoffice/internal/adapter/http/handlers/mocks"
	"cabletv_backoffice/internal/domain/entities"
	"cabletv_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestStatusHandler_ChangeStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		h := NewStatusHandler(uc)

		r := gin.New()
		r.PATCH("/v1/customers/:customer_id/status", h.ChangeStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/c-1/status", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid actor role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		h := NewStatusHandler(uc)

		r := gin.New()
		r.PATCH("/v1/customers/:customer_id/status", h.ChangeStatus)

		body := `{"target_status":"inactive","actor":{"id":"u-1","role":"superuser"}}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/c-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("applied change returns customer and logs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		h := NewStatusHandler(uc)

		uc.EXPECT().ChangeStatus(gomock.Any(), gomock.AssignableToTypeOf(usecase.ChangeStatusCommand{})).DoAndReturn(
			func(_ interface{}, cmd usecase.ChangeStatusCommand) (usecase.ChangeStatusResult, error) {
				if cmd.CustomerID != "c-1" || cmd.TargetStatus != entities.CustomerStatusInactive {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return usecase.ChangeStatusResult{
					Customer: entities.Customer{ID: "c-1", Status: entities.CustomerStatusInactive},
					Logs: []entities.StatusLog{
						{ID: "log-1", VCNumber: "VC001", PreviousStatus: entities.CustomerStatusActive, NewStatus: entities.CustomerStatusInactive},
					},
				}, nil
			},
		)

		r := gin.New()
		r.PATCH("/v1/customers/:customer_id/status", h.ChangeStatus)

		body := `{"target_status":"inactive","selected_vcs":["VC001"],"actor":{"id":"admin-1","role":"admin"}}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/c-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp ChangeStatusResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Customer == nil || resp.Customer.ID != "c-1" {
			t.Fatalf("expected customer in response: %+v", resp)
		}
		if len(resp.Logs) != 1 {
			t.Fatalf("expected 1 log entry, got %d", len(resp.Logs))
		}
	})

	t.Run("routed request returns 202", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		h := NewStatusHandler(uc)

		uc.EXPECT().ChangeStatus(gomock.Any(), gomock.Any()).Return(usecase.ChangeStatusResult{
			Request: &entities.ActionRequest{ID: "req-1", Status: entities.RequestStatusPending},
		}, nil)

		r := gin.New()
		r.PATCH("/v1/customers/:customer_id/status", h.ChangeStatus)

		body := `{"target_status":"inactive","actor":{"id":"emp-1","role":"employee"}}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/c-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", w.Code)
		}
		var resp ChangeStatusResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp.Request == nil || resp.Request.ID != "req-1" {
			t.Fatalf("expected pending request in response: %+v", resp)
		}
	})

	t.Run("selection required maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		h := NewStatusHandler(uc)

		uc.EXPECT().ChangeStatus(gomock.Any(), gomock.Any()).Return(usecase.ChangeStatusResult{}, usecase.ErrVCSelectionRequired)

		r := gin.New()
		r.PATCH("/v1/customers/:customer_id/status", h.ChangeStatus)

		body := `{"target_status":"inactive","actor":{"id":"admin-1","role":"admin"}}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/c-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("customer not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		h := NewStatusHandler(uc)

		uc.EXPECT().ChangeStatus(gomock.Any(), gomock.Any()).Return(usecase.ChangeStatusResult{}, usecase.ErrCustomerNotFound)

		r := gin.New()
		r.PATCH("/v1/customers/:customer_id/status", h.ChangeStatus)

		body := `{"target_status":"inactive","actor":{"id":"admin-1","role":"admin"}}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/customers/c-404/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestStatusHandler_AssignVC(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("conflict maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		h := NewStatusHandler(uc)

		uc.EXPECT().AssignVC(gomock.Any(), "c-1", "VC050", false, gomock.Any()).
			Return(entities.Customer{}, usecase.ErrVCNotAvailable)

		r := gin.New()
		r.POST("/v1/customers/:customer_id/vcs", h.AssignVC)

		body := `{"vc_number":"VC050","actor":{"id":"admin-1","role":"admin"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/customers/c-1/vcs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns updated customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStatusUseCase(ctrl)
		h := NewStatusHandler(uc)

		uc.EXPECT().AssignVC(gomock.Any(), "c-1", "VC050", true, gomock.Any()).Return(entities.Customer{
			ID: "c-1",
			Connections: []entities.Connection{
				{VCNumber: "VC050", IsPrimary: true, Status: entities.CustomerStatusActive},
			},
		}, nil)

		r := gin.New()
		r.POST("/v1/customers/:customer_id/vcs", h.AssignVC)

		body := `{"vc_number":"VC050","make_primary":true,"actor":{"id":"admin-1","role":"admin"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/customers/c-1/vcs", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}
