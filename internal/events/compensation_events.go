package events

import "time"

const (
	EmployeeCompensationChangedTopic = "hr.employee.compensation.changed.v1"
	BonusCycleReleasedTopic          = "hr.bonus.cycle.released.v1"
	PayrollRunFinalizedTopic         = "hr.payroll.run.finalized.v1"
)

const (
	EventEmployeeCompensationChanged = "employee_compensation_changed"
	EventBonusCycleReleased          = "bonus_cycle_released"
	EventPayrollRunFinalized         = "payroll_run_finalized"
)

// EmployeeCompensationChangedEvent is emitted when an employee's base or
// gross salary changes. Bonus assignments in open cycles are recalculated
// from it.
type EmployeeCompensationChangedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	EmployeeID    string    `json:"employee_id"`
	CompanyID     string    `json:"company_id"`
	PreviousBase  int64     `json:"previous_base_salary"`
	BaseSalary    int64     `json:"base_salary"`
	PreviousGross int64     `json:"previous_gross_salary"`
	GrossSalary   int64     `json:"gross_salary"`
	ChangedBy     string    `json:"changed_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type BonusCycleReleasedEvent struct {
	EventType       string    `json:"event_type"`
	RequestID       string    `json:"request_id,omitempty"`
	CycleID         string    `json:"cycle_id"`
	CompanyID       string    `json:"company_id"`
	Currency        string    `json:"currency"`
	AssignmentCount int       `json:"assignment_count"`
	TotalPayout     int64     `json:"total_payout"`
	ReleasedBy      string    `json:"released_by"`
	WithWarnings    bool      `json:"with_warnings"`
	OccurredAt      time.Time `json:"occurred_at"`
}

type PayrollRunFinalizedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	RunID       string    `json:"run_id"`
	RunNumber   string    `json:"run_number"`
	CompanyID   string    `json:"company_id"`
	PeriodMonth string    `json:"period_month"`
	LineCount   int       `json:"line_count"`
	TotalNet    int64     `json:"total_net"`
	FinalizedBy string    `json:"finalized_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
