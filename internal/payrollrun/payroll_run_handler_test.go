package payrollrun_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-comp/internal/compensation"
	"go-comp/internal/payrollrun"
	payrollrunerrors "go-comp/internal/payrollrun/errors"
	payrollMock "go-comp/internal/payrollrun/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRunRouter(t *testing.T) (*gin.Engine, *payrollMock.MockService, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockService := payrollMock.NewMockService(ctrl)
	handler := payrollrun.NewHandler(mockService)

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.Use(func(c *gin.Context) {
		c.Set("company_id", "comp-1")
		c.Next()
	})
	r.POST("/payroll-runs", handler.Create)
	r.GET("/payroll-runs/:id", handler.GetByID)
	r.POST("/payroll-runs/:id/finalize", handler.Finalize)
	r.GET("/payroll-runs/:id/export", handler.Export)
	return r, mockService, w
}

func doJSON(r *gin.Engine, w *httptest.ResponseRecorder, method, path string, body any) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
}

func TestPayrollRunHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, svc, w := newRunRouter(t)
		svc.EXPECT().
			CreateRun(gomock.Any(), "comp-1", payrollrun.CreateRunRequest{PeriodMonth: "2026-04"}).
			Return(payrollrun.RunResponse{ID: "run-1", RunNumber: "PR-2026-0001", Status: payrollrun.StatusDraft}, nil)

		doJSON(r, w, http.MethodPost, "/payroll-runs", map[string]any{"period_month": "2026-04"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "PR-2026-0001")
	})

	t.Run("Invalid period", func(t *testing.T) {
		r, _, w := newRunRouter(t)

		doJSON(r, w, http.MethodPost, "/payroll-runs", map[string]any{"period_month": "April"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})
}

func TestPayrollRunHandler_GetByID_NotFound(t *testing.T) {
	r, svc, w := newRunRouter(t)
	svc.EXPECT().GetRun(gomock.Any(), "comp-1", "run-x").Return(payrollrun.RunResponse{}, payrollrunerrors.ErrRunNotFound)

	doJSON(r, w, http.MethodGet, "/payroll-runs/run-x", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPayrollRunHandler_Finalize(t *testing.T) {
	t.Run("Empty body finalizes without warnings override", func(t *testing.T) {
		r, svc, w := newRunRouter(t)
		svc.EXPECT().
			Finalize(gomock.Any(), "comp-1", "run-1", payrollrun.FinalizeRequest{}).
			Return(payrollrun.FinalizeResponse{Run: payrollrun.RunResponse{Status: payrollrun.StatusFinalized}}, nil)

		req, _ := http.NewRequest(http.MethodPost, "/payroll-runs/run-1/finalize", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), payrollrun.StatusFinalized)
	})

	t.Run("Blocked", func(t *testing.T) {
		r, svc, w := newRunRouter(t)
		issues := []compensation.ValidationIssue{{
			Kind: compensation.IssueMissingPFID, Severity: compensation.SeverityError, Count: 1,
		}}
		svc.EXPECT().
			Finalize(gomock.Any(), "comp-1", "run-1", payrollrun.FinalizeRequest{ContinueWithWarnings: true}).
			Return(payrollrun.FinalizeResponse{}, payrollrunerrors.ErrFinalizeBlocked.WithDetails(issues))

		doJSON(r, w, http.MethodPost, "/payroll-runs/run-1/finalize", map[string]any{"continue_with_warnings": true})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "FINALIZE_BLOCKED")
		assert.Contains(t, w.Body.String(), "Missing PF ID")
	})

	t.Run("Not draft", func(t *testing.T) {
		r, svc, w := newRunRouter(t)
		svc.EXPECT().Finalize(gomock.Any(), "comp-1", "run-1", gomock.Any()).
			Return(payrollrun.FinalizeResponse{}, payrollrunerrors.ErrRunNotDraft)

		doJSON(r, w, http.MethodPost, "/payroll-runs/run-1/finalize", map[string]any{})

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestPayrollRunHandler_Export(t *testing.T) {
	t.Run("Success streams xlsx", func(t *testing.T) {
		r, svc, w := newRunRouter(t)
		svc.EXPECT().ExportRegister(gomock.Any(), "comp-1", "run-1").
			Return(bytes.NewBufferString("xlsx-bytes"), "payroll_register_PR-2026-0001.xlsx", nil)

		doJSON(r, w, http.MethodGet, "/payroll-runs/run-1/export", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), "payroll_register_PR-2026-0001.xlsx")
		assert.Equal(t, "xlsx-bytes", w.Body.String())
	})

	t.Run("Draft run", func(t *testing.T) {
		r, svc, w := newRunRouter(t)
		svc.EXPECT().ExportRegister(gomock.Any(), "comp-1", "run-1").
			Return(nil, "", payrollrunerrors.ErrRunNotFinalized)

		doJSON(r, w, http.MethodGet, "/payroll-runs/run-1/export", nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
