// Package compensation holds the pure calculation rules shared by bonus
// cycles and payroll runs: amount computation, override and cap
// resolution, salary component aggregation and pre-release validation.
//
// Nothing here performs I/O or mutates its inputs. Callers load snapshots
// through their repositories and hand them in.
package compensation

import "time"

type CalculationMode string

const (
	ModeFixed          CalculationMode = "Fixed"
	ModePercentOfBase  CalculationMode = "PercentOfBase"
	ModePercentOfGross CalculationMode = "PercentOfGross"
	ModeFormula        CalculationMode = "Formula"
)

func (m CalculationMode) Valid() bool {
	switch m {
	case ModeFixed, ModePercentOfBase, ModePercentOfGross, ModeFormula:
		return true
	}
	return false
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "Pending"
	ApprovalApproved ApprovalStatus = "Approved"
	ApprovalRejected ApprovalStatus = "Rejected"
)

func (s ApprovalStatus) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

type CycleStatus string

const (
	CycleDraft    CycleStatus = "Draft"
	CycleActive   CycleStatus = "Active"
	CycleClosed   CycleStatus = "Closed"
	CycleArchived CycleStatus = "Archived"
)

// Open reports whether assignments in the cycle may still change.
func (s CycleStatus) Open() bool {
	return s == CycleDraft || s == CycleActive
}

// FormulaVariables are the placeholders a bonus formula may reference.
var FormulaVariables = []string{"baseSalary", "grossSalary", "target", "achievement"}

// Employee is the reference data a calculation reads. Salaries are whole
// currency units.
type Employee struct {
	ID                string
	Name              string
	Department        string
	Designation       string
	BaseSalary        int64
	GrossSalary       int64
	BankAccountNumber string
	BankIFSC          string
	PFNumber          string
	ESINumber         string
}

// Structure is a bonus calculation rule. Exactly one mode is active; Value
// is a literal amount for Fixed and a percentage for the percent modes.
type Structure struct {
	ID              string
	Name            string
	Mode            CalculationMode
	Value           float64
	Formula         string
	MinBonus        *int64
	MaxBonus        *int64
	OverrideAllowed bool
}

type AuditEntry struct {
	At    time.Time
	Actor string
	Note  string
}

// Assignment links one employee to one structure within one cycle.
// FinalAmount is derived; set it only through ResolveFinal or FinalizeAmount.
type Assignment struct {
	ID             string
	CycleID        string
	EmployeeID     string
	StructureID    string
	Target         *float64
	Achievement    *float64
	AutoAmount     int64
	OverrideAmount *int64
	FinalAmount    int64
	ApprovalStatus ApprovalStatus
	Notes          string
	Audit          []AuditEntry
}

// AppendAudit records a change. The trail is append-only.
func (a *Assignment) AppendAudit(at time.Time, actor, note string) {
	a.Audit = append(a.Audit, AuditEntry{At: at, Actor: actor, Note: note})
}

type Cycle struct {
	ID                    string
	Name                  string
	PeriodStart           time.Time
	PeriodEnd             time.Time
	Currency              string
	TotalBudget           *int64
	MaxBonusCap           *int64
	MinEligibilityPercent float64
	DefaultStructureID    string
	Status                CycleStatus
}
