package compensation

import (
	"math"

	"go-comp/internal/formula"
)

// Proportion scales percent-based amounts by achievement against target.
// Missing or zero target or achievement yields 1. The divisor is floored
// at 1 so fractional targets cannot inflate the result.
func Proportion(target, achievement *float64) float64 {
	if !truthy(target) || !truthy(achievement) {
		return 1
	}
	return *achievement / math.Max(1, *target)
}

func truthy(v *float64) bool {
	return v != nil && *v != 0 && !math.IsNaN(*v)
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// ComputeAutoAmount derives the system amount for an assignment. Formula
// errors and unknown modes yield 0 rather than failing the batch.
func ComputeAutoAmount(emp Employee, s Structure, a Assignment) int64 {
	switch s.Mode {
	case ModeFixed:
		return RoundAmount(s.Value)
	case ModePercentOfBase:
		return percentOf(emp.BaseSalary, s.Value, Proportion(a.Target, a.Achievement))
	case ModePercentOfGross:
		return percentOf(emp.GrossSalary, s.Value, Proportion(a.Target, a.Achievement))
	case ModeFormula:
		v, err := formula.Evaluate(s.Formula, map[string]float64{
			"baseSalary":  float64(emp.BaseSalary),
			"grossSalary": float64(emp.GrossSalary),
			"target":      valueOrZero(a.Target),
			"achievement": valueOrZero(a.Achievement),
		})
		if err != nil {
			return 0
		}
		return RoundAmount(v)
	default:
		return 0
	}
}

// MeetsEligibility applies the cycle's minimum achievement threshold. An
// assignment without both target and achievement is always eligible.
func MeetsEligibility(a Assignment, c Cycle) bool {
	if c.MinEligibilityPercent <= 0 || !truthy(a.Target) || !truthy(a.Achievement) {
		return true
	}
	return Proportion(a.Target, a.Achievement)*100 >= c.MinEligibilityPercent
}

type EmployeeLookup interface {
	LookupEmployee(id string) (Employee, bool)
}

type StructureLookup interface {
	LookupStructure(id string) (Structure, bool)
}

// EmployeeIndex is an in-memory EmployeeLookup keyed by employee ID.
type EmployeeIndex map[string]Employee

func (idx EmployeeIndex) LookupEmployee(id string) (Employee, bool) {
	e, ok := idx[id]
	return e, ok
}

func IndexEmployees(list []Employee) EmployeeIndex {
	idx := make(EmployeeIndex, len(list))
	for _, e := range list {
		idx[e.ID] = e
	}
	return idx
}

// StructureIndex is an in-memory StructureLookup keyed by structure ID.
type StructureIndex map[string]Structure

func (idx StructureIndex) LookupStructure(id string) (Structure, bool) {
	s, ok := idx[id]
	return s, ok
}

func IndexStructures(list []Structure) StructureIndex {
	idx := make(StructureIndex, len(list))
	for _, s := range list {
		idx[s.ID] = s
	}
	return idx
}

// Calculator resolves references before computing. A missing employee or
// structure is not an error; the amount is simply 0.
type Calculator struct {
	Employees  EmployeeLookup
	Structures StructureLookup
}

// StructureFor returns the assignment's structure, falling back to the
// cycle default when the assignment's own id is empty or unresolvable.
func (c Calculator) StructureFor(a Assignment, cycle Cycle) (Structure, bool) {
	if c.Structures == nil {
		return Structure{}, false
	}
	for _, id := range []string{a.StructureID, cycle.DefaultStructureID} {
		if id == "" {
			continue
		}
		if s, ok := c.Structures.LookupStructure(id); ok {
			return s, true
		}
	}
	return Structure{}, false
}

func (c Calculator) AutoAmount(a Assignment, cycle Cycle) int64 {
	if c.Employees == nil {
		return 0
	}
	emp, ok := c.Employees.LookupEmployee(a.EmployeeID)
	if !ok {
		return 0
	}
	s, ok := c.StructureFor(a, cycle)
	if !ok {
		return 0
	}
	if !MeetsEligibility(a, cycle) {
		return 0
	}
	return ComputeAutoAmount(emp, s, a)
}

// Recompute returns a copy of a with AutoAmount and FinalAmount refreshed.
// The audit trail and approval status are left to the caller.
func (c Calculator) Recompute(a Assignment, cycle Cycle) Assignment {
	a.AutoAmount = c.AutoAmount(a, cycle)
	s, _ := c.StructureFor(a, cycle)
	a.FinalAmount = ResolveFinal(a.AutoAmount, a.OverrideAmount, s, cycle)
	return a
}
