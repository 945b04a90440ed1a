package compensation

import "fmt"

type Severity string

const (
	SeverityError   Severity = "Error"
	SeverityWarning Severity = "Warning"
)

type IssueKind string

const (
	IssueMissingAssignments IssueKind = "missing_assignments"
	IssueOverrides          IssueKind = "overrides"
	IssueBudget             IssueKind = "budget"
	IssueNegative           IssueKind = "negative"
	IssuePendingApprovals   IssueKind = "pendingApprovals"

	IssueMissingSalaryAssignment IssueKind = "Missing salary assignment"
	IssueMissingBankDetails      IssueKind = "Missing bank details"
	IssueMissingPFID             IssueKind = "Missing PF ID"
	IssueMissingESIID            IssueKind = "Missing ESI ID"
	IssueEmployeeNotFound        IssueKind = "Employee not found"
)

// ESIWageCeiling is the monthly gross up to which ESI registration is
// mandatory. Employees above it carry no ESI number.
const ESIWageCeiling int64 = 21000

type ValidationIssue struct {
	Kind         IssueKind `json:"kind"`
	Message      string    `json:"message"`
	Severity     Severity  `json:"severity"`
	Count        int       `json:"count"`
	EmployeeID   string    `json:"employee_id,omitempty"`
	AssignmentID string    `json:"assignment_id,omitempty"`
}

type ValidationResult struct {
	OK     bool              `json:"ok"`
	Issues []ValidationIssue `json:"issues"`
}

func newResult(issues []ValidationIssue) ValidationResult {
	if issues == nil {
		issues = []ValidationIssue{}
	}
	return ValidationResult{OK: len(issues) == 0, Issues: issues}
}

// Blocks reports whether a release or finalize must stop. Any issue blocks
// unless the caller explicitly chose to continue with warnings.
func (r ValidationResult) Blocks(continueWithWarnings bool) bool {
	return !r.OK && !continueWithWarnings
}

func (r ValidationResult) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r ValidationResult) Kinds() []IssueKind {
	out := make([]IssueKind, 0, len(r.Issues))
	for _, i := range r.Issues {
		out = append(out, i.Kind)
	}
	return out
}

// ReleaseBatch is the snapshot checked before a bonus cycle is released.
// EmployeeIDs is the population in scope.
type ReleaseBatch struct {
	Cycle       Cycle
	EmployeeIDs []string
	Assignments []Assignment
}

// ValidateRelease runs every release check in a fixed order.
func ValidateRelease(b ReleaseBatch) ValidationResult {
	var scoped []Assignment
	for _, a := range b.Assignments {
		if a.CycleID == "" || a.CycleID == b.Cycle.ID {
			scoped = append(scoped, a)
		}
	}

	var issues []ValidationIssue

	assigned := make(map[string]struct{}, len(scoped))
	for _, a := range scoped {
		assigned[a.EmployeeID] = struct{}{}
	}
	missing := 0
	for _, id := range b.EmployeeIDs {
		if _, ok := assigned[id]; !ok {
			missing++
		}
	}
	if missing > 0 {
		issues = append(issues, ValidationIssue{
			Kind:     IssueMissingAssignments,
			Message:  fmt.Sprintf("%d employee(s) have no assignment in this cycle", missing),
			Severity: SeverityWarning,
			Count:    missing,
		})
	}

	overrides, nonPositive, pending := 0, 0, 0
	var total int64
	for _, a := range scoped {
		// an unapproved override counts once, as an override
		unapproved := a.ApprovalStatus != ApprovalApproved
		switch {
		case unapproved && a.OverrideAmount != nil:
			overrides++
		case unapproved:
			pending++
		}
		if a.FinalAmount <= 0 {
			nonPositive++
		}
		total += a.FinalAmount
	}

	if overrides > 0 {
		issues = append(issues, ValidationIssue{
			Kind:     IssueOverrides,
			Message:  fmt.Sprintf("%d override(s) are not approved", overrides),
			Severity: SeverityWarning,
			Count:    overrides,
		})
	}

	if budget := b.Cycle.TotalBudget; budget != nil && *budget != 0 && total > *budget {
		issues = append(issues, ValidationIssue{
			Kind: IssueBudget,
			Message: fmt.Sprintf("Total payout %s exceeds budget %s",
				FormatMoney(b.Cycle.Currency, total),
				FormatMoney(b.Cycle.Currency, *budget)),
			Severity: SeverityError,
			Count:    1,
		})
	}

	if nonPositive > 0 {
		issues = append(issues, ValidationIssue{
			Kind:     IssueNegative,
			Message:  fmt.Sprintf("%d assignment(s) have a final amount of zero or less", nonPositive),
			Severity: SeverityError,
			Count:    nonPositive,
		})
	}

	if pending > 0 {
		issues = append(issues, ValidationIssue{
			Kind:     IssuePendingApprovals,
			Message:  fmt.Sprintf("%d assignment(s) are not approved", pending),
			Severity: SeverityWarning,
			Count:    pending,
		})
	}

	return newResult(issues)
}

// PayrollBatch is the snapshot checked before a payroll run is finalized.
// UnresolvedEmployeeIDs are run members the registry no longer returns.
type PayrollBatch struct {
	Employees             []Employee
	AssignedEmployeeIDs   []string
	UnresolvedEmployeeIDs []string
}

// ValidatePayrollRun reports one issue per employee per failed check.
func ValidatePayrollRun(b PayrollBatch) ValidationResult {
	assigned := make(map[string]struct{}, len(b.AssignedEmployeeIDs))
	for _, id := range b.AssignedEmployeeIDs {
		assigned[id] = struct{}{}
	}

	var issues []ValidationIssue
	for _, id := range b.UnresolvedEmployeeIDs {
		issues = append(issues, ValidationIssue{
			Kind:       IssueEmployeeNotFound,
			Message:    fmt.Sprintf("%s is no longer in the employee registry", id),
			Severity:   SeverityError,
			Count:      1,
			EmployeeID: id,
		})
	}
	for _, e := range b.Employees {
		name := e.Name
		if name == "" {
			name = e.ID
		}
		if _, ok := assigned[e.ID]; !ok {
			issues = append(issues, ValidationIssue{
				Kind:       IssueMissingSalaryAssignment,
				Message:    fmt.Sprintf("%s has no salary structure assigned", name),
				Severity:   SeverityError,
				Count:      1,
				EmployeeID: e.ID,
			})
		}
		if e.BankAccountNumber == "" || e.BankIFSC == "" {
			issues = append(issues, ValidationIssue{
				Kind:       IssueMissingBankDetails,
				Message:    fmt.Sprintf("%s is missing bank details", name),
				Severity:   SeverityWarning,
				Count:      1,
				EmployeeID: e.ID,
			})
		}
		if e.PFNumber == "" {
			issues = append(issues, ValidationIssue{
				Kind:       IssueMissingPFID,
				Message:    fmt.Sprintf("%s is missing a PF number", name),
				Severity:   SeverityError,
				Count:      1,
				EmployeeID: e.ID,
			})
		}
		if e.ESINumber == "" && e.GrossSalary > 0 && e.GrossSalary <= ESIWageCeiling {
			issues = append(issues, ValidationIssue{
				Kind:       IssueMissingESIID,
				Message:    fmt.Sprintf("%s is missing an ESI number", name),
				Severity:   SeverityWarning,
				Count:      1,
				EmployeeID: e.ID,
			})
		}
	}
	return newResult(issues)
}
