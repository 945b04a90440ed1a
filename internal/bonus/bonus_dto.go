package bonus

import (
	"time"

	"go-comp/internal/compensation"
)

type CreateStructureRequest struct {
	Name            string  `json:"name" binding:"required,max=120"`
	CalculationMode string  `json:"calculation_mode" binding:"required,oneof=Fixed PercentOfBase PercentOfGross Formula"`
	Value           float64 `json:"value" binding:"gte=0"`
	Formula         string  `json:"formula" binding:"required_if=CalculationMode Formula"`
	MinBonus        *int64  `json:"min_bonus" binding:"omitempty,gte=0"`
	MaxBonus        *int64  `json:"max_bonus" binding:"omitempty,gte=0"`
	OverrideAllowed *bool   `json:"override_allowed"`
}

type StructureResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CalculationMode string  `json:"calculation_mode"`
	Value           float64 `json:"value"`
	Formula         string  `json:"formula,omitempty"`
	MinBonus        *int64  `json:"min_bonus,omitempty"`
	MaxBonus        *int64  `json:"max_bonus,omitempty"`
	OverrideAllowed bool    `json:"override_allowed"`
}

type CreateCycleRequest struct {
	Name                  string  `json:"name" binding:"required,max=120"`
	PeriodStart           string  `json:"period_start" binding:"required,datetime=2006-01-02"`
	PeriodEnd             string  `json:"period_end" binding:"required,datetime=2006-01-02"`
	Currency              string  `json:"currency" binding:"omitempty,iso4217"`
	TotalBudget           *int64  `json:"total_budget" binding:"omitempty,gte=0"`
	MaxBonusCap           *int64  `json:"max_bonus_cap" binding:"omitempty,gte=0"`
	MinEligibilityPercent float64 `json:"min_eligibility_percent" binding:"gte=0,lte=100"`
	DefaultStructureID    string  `json:"default_structure_id" binding:"omitempty,uuid"`
}

type CycleResponse struct {
	ID                    string        `json:"id"`
	Name                  string        `json:"name"`
	PeriodStart           string        `json:"period_start"`
	PeriodEnd             string        `json:"period_end"`
	Currency              string        `json:"currency"`
	TotalBudget           *int64        `json:"total_budget,omitempty"`
	MaxBonusCap           *int64        `json:"max_bonus_cap,omitempty"`
	MinEligibilityPercent float64       `json:"min_eligibility_percent"`
	DefaultStructureID    string        `json:"default_structure_id,omitempty"`
	Status                string        `json:"status"`
	ReleasedAt            *time.Time    `json:"released_at,omitempty"`
	ReleasedBy            string        `json:"released_by,omitempty"`
	Summary               *CycleSummary `json:"summary,omitempty"`
}

type CycleSummary struct {
	Assignments     int    `json:"assignments"`
	Pending         int    `json:"pending"`
	Approved        int    `json:"approved"`
	Rejected        int    `json:"rejected"`
	Overrides       int    `json:"overrides"`
	TotalAuto       int64  `json:"total_auto"`
	TotalFinal      int64  `json:"total_final"`
	BudgetRemaining *int64 `json:"budget_remaining,omitempty"`
}

type AssignmentInput struct {
	EmployeeID  string   `json:"employee_id" binding:"required,uuid"`
	Target      *float64 `json:"target" binding:"omitempty,gte=0"`
	Achievement *float64 `json:"achievement" binding:"omitempty,gte=0"`
}

type AssignEmployeesRequest struct {
	StructureID string            `json:"structure_id" binding:"omitempty,uuid"`
	Employees   []AssignmentInput `json:"employees" binding:"required,min=1,dive"`
}

type AssignEmployeesResponse struct {
	Created    []AssignmentResponse `json:"created"`
	SkippedIDs []string             `json:"skipped_employee_ids"`
}

type UpdatePerformanceRequest struct {
	Target      *float64 `json:"target" binding:"omitempty,gte=0"`
	Achievement *float64 `json:"achievement" binding:"omitempty,gte=0"`
	StructureID string   `json:"structure_id" binding:"omitempty,uuid"`
	Notes       *string  `json:"notes"`
}

type SetOverrideRequest struct {
	Amount *int64 `json:"amount"`
	Note   string `json:"note" binding:"max=500"`
}

type SetApprovalRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Approved Rejected"`
	Note   string `json:"note" binding:"max=500"`
}

type ReleaseRequest struct {
	ContinueWithWarnings bool `json:"continue_with_warnings"`
}

type AuditEntryResponse struct {
	At    time.Time `json:"at"`
	Actor string    `json:"actor"`
	Note  string    `json:"note"`
}

type AssignmentResponse struct {
	ID             string               `json:"id"`
	CycleID        string               `json:"cycle_id"`
	EmployeeID     string               `json:"employee_id"`
	StructureID    string               `json:"structure_id,omitempty"`
	Target         *float64             `json:"target,omitempty"`
	Achievement    *float64             `json:"achievement,omitempty"`
	AutoAmount     int64                `json:"auto_amount"`
	OverrideAmount *int64               `json:"override_amount,omitempty"`
	FinalAmount    int64                `json:"final_amount"`
	ApprovalStatus string               `json:"approval_status"`
	Notes          string               `json:"notes,omitempty"`
	Audit          []AuditEntryResponse `json:"audit"`
}

type RecalculateResponse struct {
	Updated int `json:"updated"`
}

type ReleaseResponse struct {
	Cycle      CycleResponse                 `json:"cycle"`
	Validation compensation.ValidationResult `json:"validation"`
}
