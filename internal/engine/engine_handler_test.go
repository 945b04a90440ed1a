package engine_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-comp/internal/engine"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestEngineHandler_EvaluateFormula(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := engine.NewHandler(engine.NewService())

	tests := []struct {
		name     string
		body     map[string]any
		wantCode int
		contains string
	}{
		{
			name:     "Success",
			body:     map[string]any{"formula": "{baseSalary} * 10%", "variables": map[string]float64{"baseSalary": 1234}},
			wantCode: http.StatusOK,
			contains: `"amount":123`,
		},
		{
			name:     "Missing formula",
			body:     map[string]any{"variables": map[string]float64{}},
			wantCode: http.StatusBadRequest,
			contains: "VALIDATION_ERROR",
		},
		{
			name:     "Malformed formula",
			body:     map[string]any{"formula": "1 +* 2"},
			wantCode: http.StatusBadRequest,
			contains: "INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, r := gin.CreateTestContext(w)
			r.POST("/engine/formula/evaluate", handler.EvaluateFormula)

			payload, _ := json.Marshal(tt.body)
			req, _ := http.NewRequest(http.MethodPost, "/engine/formula/evaluate", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}
