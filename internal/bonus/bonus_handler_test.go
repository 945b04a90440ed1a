package bonus_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-comp/internal/bonus"
	bonuserrors "go-comp/internal/bonus/errors"
	bonusMock "go-comp/internal/bonus/mock"
	"go-comp/internal/compensation"
	"go-comp/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newBonusRouter(t *testing.T, companyID string) (*gin.Engine, *bonusMock.MockService, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	apperror.Init()
	ctrl := gomock.NewController(t)
	mockService := bonusMock.NewMockService(ctrl)
	handler := bonus.NewHandler(mockService)

	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.Use(func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Next()
	})
	r.POST("/bonus-structures", handler.CreateStructure)
	r.GET("/bonus-cycles/:id", handler.GetCycle)
	r.POST("/bonus-cycles/:id/assignments", handler.AssignEmployees)
	r.POST("/bonus-cycles/:id/release", handler.Release)
	r.PUT("/bonus-assignments/:id/override", handler.SetOverride)
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

func TestHandler_CreateStructure(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		r, svc, w := newBonusRouter(t, "comp-1")
		svc.EXPECT().
			CreateStructure(gomock.Any(), "comp-1", gomock.Any()).
			DoAndReturn(func(_ any, _ string, req bonus.CreateStructureRequest) (bonus.StructureResponse, error) {
				assert.Equal(t, "PercentOfBase", req.CalculationMode)
				return bonus.StructureResponse{ID: "s-1", Name: req.Name}, nil
			})

		doJSON(r, w, http.MethodPost, "/bonus-structures", map[string]any{
			"name": "Sales", "calculation_mode": "PercentOfBase", "value": 10,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		var res map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, true, res["ok"])
	})

	t.Run("Formula required", func(t *testing.T) {
		r, _, w := newBonusRouter(t, "comp-1")

		doJSON(r, w, http.MethodPost, "/bonus-structures", map[string]any{
			"name": "F", "calculation_mode": "Formula",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("Unknown mode", func(t *testing.T) {
		r, _, w := newBonusRouter(t, "comp-1")

		doJSON(r, w, http.MethodPost, "/bonus-structures", map[string]any{
			"name": "X", "calculation_mode": "Lottery",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_GetCycle(t *testing.T) {
	t.Run("Not found", func(t *testing.T) {
		r, svc, w := newBonusRouter(t, "comp-1")
		svc.EXPECT().GetCycle(gomock.Any(), "comp-1", "c-404").
			Return(bonus.CycleResponse{}, bonuserrors.ErrCycleNotFound)

		doJSON(r, w, http.MethodGet, "/bonus-cycles/c-404", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_FOUND")
	})
}

func TestHandler_AssignEmployees(t *testing.T) {
	t.Run("Invalid employee id", func(t *testing.T) {
		r, _, w := newBonusRouter(t, "comp-1")

		doJSON(r, w, http.MethodPost, "/bonus-cycles/c-1/assignments", map[string]any{
			"employees": []map[string]any{{"employee_id": "not-a-uuid"}},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Success", func(t *testing.T) {
		r, svc, w := newBonusRouter(t, "comp-1")
		svc.EXPECT().AssignEmployees(gomock.Any(), "comp-1", "c-1", gomock.Any()).
			Return(bonus.AssignEmployeesResponse{
				Created:    []bonus.AssignmentResponse{{ID: "a-1", FinalAmount: 8000}},
				SkippedIDs: []string{},
			}, nil)

		doJSON(r, w, http.MethodPost, "/bonus-cycles/c-1/assignments", map[string]any{
			"employees": []map[string]any{{"employee_id": "0b6f1c1e-6a5e-4d55-9c9e-0f3b5a1d2e11", "target": 100, "achievement": 80}},
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"final_amount":8000`)
	})
}

func TestHandler_Release(t *testing.T) {
	t.Run("Blocked returns issues", func(t *testing.T) {
		r, svc, w := newBonusRouter(t, "comp-1")
		issues := []compensation.ValidationIssue{{
			Kind: compensation.IssueBudget, Message: "Total payout INR 60,000 exceeds budget INR 50,000",
			Severity: compensation.SeverityError, Count: 1,
		}}
		svc.EXPECT().Release(gomock.Any(), "comp-1", "c-1", bonus.ReleaseRequest{ContinueWithWarnings: true}).
			Return(bonus.ReleaseResponse{}, bonuserrors.ErrReleaseBlocked.WithDetails(issues))

		doJSON(r, w, http.MethodPost, "/bonus-cycles/c-1/release", map[string]any{"continue_with_warnings": true})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "RELEASE_BLOCKED")
		assert.Contains(t, w.Body.String(), `"kind":"budget"`)
	})

	t.Run("Empty body", func(t *testing.T) {
		r, svc, w := newBonusRouter(t, "comp-1")
		svc.EXPECT().Release(gomock.Any(), "comp-1", "c-1", bonus.ReleaseRequest{}).
			Return(bonus.ReleaseResponse{Cycle: bonus.CycleResponse{ID: "c-1", Status: "Closed"}}, nil)

		req, _ := http.NewRequest(http.MethodPost, "/bonus-cycles/c-1/release", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"Closed"`)
	})
}

func TestHandler_SetOverride(t *testing.T) {
	r, svc, w := newBonusRouter(t, "comp-1")
	svc.EXPECT().SetOverride(gomock.Any(), "comp-1", "a-1", gomock.Any()).
		Return(bonus.AssignmentResponse{}, bonuserrors.ErrOverrideNotAllowed)

	doJSON(r, w, http.MethodPut, "/bonus-assignments/a-1/override", map[string]any{"amount": 5000})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}
