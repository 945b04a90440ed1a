package bonus

import "go-comp/internal/compensation"

const dateLayout = "2006-01-02"

func mapStructure(s Structure) StructureResponse {
	return StructureResponse{
		ID:              s.ID.String(),
		Name:            s.Name,
		CalculationMode: s.CalculationMode,
		Value:           s.Value,
		Formula:         s.Formula,
		MinBonus:        s.MinBonus,
		MaxBonus:        s.MaxBonus,
		OverrideAllowed: s.OverrideAllowed,
	}
}

// mapCycle includes a summary only when assignments is non-nil.
func mapCycle(c Cycle, assignments []Assignment) CycleResponse {
	resp := CycleResponse{
		ID:                    c.ID.String(),
		Name:                  c.Name,
		PeriodStart:           c.PeriodStart.Format(dateLayout),
		PeriodEnd:             c.PeriodEnd.Format(dateLayout),
		Currency:              c.Currency,
		TotalBudget:           c.TotalBudget,
		MaxBonusCap:           c.MaxBonusCap,
		MinEligibilityPercent: c.MinEligibilityPercent,
		DefaultStructureID:    uuidString(c.DefaultStructureID),
		Status:                c.Status,
		ReleasedAt:            c.ReleasedAt,
	}
	if c.ReleasedBy != nil {
		resp.ReleasedBy = *c.ReleasedBy
	}
	if assignments != nil {
		summary := summarize(assignments, c.TotalBudget)
		resp.Summary = &summary
	}
	return resp
}

func summarize(rows []Assignment, budget *int64) CycleSummary {
	var sum CycleSummary
	for _, r := range rows {
		sum.Assignments++
		switch compensation.ApprovalStatus(r.ApprovalStatus) {
		case compensation.ApprovalApproved:
			sum.Approved++
		case compensation.ApprovalRejected:
			sum.Rejected++
		default:
			sum.Pending++
		}
		if r.OverrideAmount != nil {
			sum.Overrides++
		}
		sum.TotalAuto += r.AutoAmount
		sum.TotalFinal += r.FinalAmount
	}
	if budget != nil {
		remaining := *budget - sum.TotalFinal
		sum.BudgetRemaining = &remaining
	}
	return sum
}

func mapAssignment(a Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:             a.ID.String(),
		CycleID:        a.CycleID.String(),
		EmployeeID:     a.EmployeeID.String(),
		StructureID:    uuidString(a.StructureID),
		Target:         a.Target,
		Achievement:    a.Achievement,
		AutoAmount:     a.AutoAmount,
		OverrideAmount: a.OverrideAmount,
		FinalAmount:    a.FinalAmount,
		ApprovalStatus: a.ApprovalStatus,
		Notes:          a.Notes,
		Audit:          make([]AuditEntryResponse, 0, len(a.Audits)),
	}
	for _, au := range a.Audits {
		resp.Audit = append(resp.Audit, AuditEntryResponse{At: au.At, Actor: au.Actor, Note: au.Note})
	}
	return resp
}
