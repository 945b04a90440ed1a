package payrollrun

import "go-comp/internal/compensation"

type CreateRunRequest struct {
	PeriodMonth string   `json:"period_month" binding:"required,datetime=2006-01"`
	EmployeeIDs []string `json:"employee_ids" binding:"omitempty,dive,uuid"`
}

type FinalizeRequest struct {
	ContinueWithWarnings bool `json:"continue_with_warnings"`
}

type RunLineResponse struct {
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name"`
	Department      string          `json:"department,omitempty"`
	StructureVer    int             `json:"structure_version"`
	Components      []LineComponent `json:"components"`
	GrossEarnings   int64           `json:"gross_earnings"`
	TotalDeductions int64           `json:"total_deductions"`
	NetSalary       int64           `json:"net_salary"`
	AnnualCTC       int64           `json:"annual_ctc"`
}

type RunResponse struct {
	ID              string            `json:"id"`
	RunNumber       string            `json:"run_number"`
	PeriodMonth     string            `json:"period_month"`
	Status          string            `json:"status"`
	EmployeeCount   int               `json:"employee_count"`
	TotalGross      int64             `json:"total_gross"`
	TotalDeductions int64             `json:"total_deductions"`
	TotalNet        int64             `json:"total_net"`
	CreatedBy       string            `json:"created_by"`
	FinalizedBy     *string           `json:"finalized_by,omitempty"`
	FinalizedAt     *string           `json:"finalized_at,omitempty"`
	CreatedAt       string            `json:"created_at"`
	Lines           []RunLineResponse `json:"lines,omitempty"`
}

type FinalizeResponse struct {
	Run        RunResponse                   `json:"run"`
	Validation compensation.ValidationResult `json:"validation"`
}
