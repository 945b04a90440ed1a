package payrollrun

import "time"

func mapRun(r Run) RunResponse {
	res := RunResponse{
		ID:              r.ID.String(),
		RunNumber:       r.RunNumber,
		PeriodMonth:     r.PeriodMonth,
		Status:          r.Status,
		EmployeeCount:   len(r.EmployeeIDs),
		TotalGross:      r.TotalGross,
		TotalDeductions: r.TotalDeductions,
		TotalNet:        r.TotalNet,
		CreatedBy:       r.CreatedBy,
		FinalizedBy:     r.FinalizedBy,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
	}
	if r.FinalizedAt != nil {
		at := r.FinalizedAt.Format(time.RFC3339)
		res.FinalizedAt = &at
	}
	if len(r.Lines) > 0 {
		res.Lines = make([]RunLineResponse, len(r.Lines))
		for i, l := range r.Lines {
			res.Lines[i] = RunLineResponse{
				EmployeeID:      l.EmployeeID.String(),
				EmployeeName:    l.EmployeeName,
				Department:      l.Department,
				StructureVer:    l.StructureVer,
				Components:      l.Components,
				GrossEarnings:   l.GrossEarnings,
				TotalDeductions: l.TotalDeductions,
				NetSalary:       l.NetSalary,
				AnnualCTC:       l.AnnualCTC,
			}
		}
	}
	return res
}
