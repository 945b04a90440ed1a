package compensation

import (
	"time"

	"github.com/shopspring/decimal"
)

type ComponentType string

const (
	Earning   ComponentType = "Earning"
	Deduction ComponentType = "Deduction"
)

func (t ComponentType) Valid() bool {
	return t == Earning || t == Deduction
}

type CalcType string

const (
	CalcFixed        CalcType = "Fixed"
	CalcPercentBasic CalcType = "%basic"
	CalcPercentBase  CalcType = "%base"
	CalcBasic        CalcType = "basic"
	CalcFormula      CalcType = "Formula"
	CalcSlab         CalcType = "Slab"
	CalcAttendance   CalcType = "Attendance-linked"
	CalcConditional  CalcType = "Conditional"
	CalcOneTime      CalcType = "One-time"
)

func (t CalcType) Valid() bool {
	switch t {
	case CalcFixed, CalcPercentBasic, CalcPercentBase, CalcBasic,
		CalcFormula, CalcSlab, CalcAttendance, CalcConditional, CalcOneTime:
		return true
	}
	return false
}

type Occurrence string

const (
	Monthly Occurrence = "Monthly"
	OneTime Occurrence = "One-time"
)

type Component struct {
	Name     string
	Type     ComponentType
	CalcType CalcType
	Value    float64
	Formula  string
}

type StructureVersion struct {
	Version       int
	EffectiveFrom time.Time
	Components    []Component
}

type SalaryStructure struct {
	ID       string
	Name     string
	Versions []StructureVersion
}

// ResolveVersion returns the requested version, or the highest one when it
// does not exist. The bool is false only when there are no versions.
func (s SalaryStructure) ResolveVersion(version int) (StructureVersion, bool) {
	var latest StructureVersion
	found := false
	for _, v := range s.Versions {
		if v.Version == version {
			return v, true
		}
		if !found || v.Version > latest.Version {
			latest = v
			found = true
		}
	}
	return latest, found
}

// LatestVersion is the highest version number, 0 when there is none.
func (s SalaryStructure) LatestVersion() int {
	v, ok := s.ResolveVersion(-1)
	if !ok {
		return 0
	}
	return v.Version
}

// ComponentOverride replaces a structure component by name, or adds one.
type ComponentOverride struct {
	Name  string
	Type  ComponentType
	Value int64
}

type AdditionalItem struct {
	Name       string
	Type       ComponentType
	Amount     int64
	Occurrence Occurrence
}

type ComponentSource string

const (
	SourceStructure  ComponentSource = "structure"
	SourceOverride   ComponentSource = "override"
	SourceAdditional ComponentSource = "additional"
)

type ResolvedComponent struct {
	Name     string
	Type     ComponentType
	CalcType CalcType
	Value    int64
	Source   ComponentSource
}

type Breakdown struct {
	Version         int
	Components      []ResolvedComponent
	GrossEarnings   int64
	TotalDeductions int64
	MonthlyTotal    int64
	AnnualCTC       int64
	NetSalary       int64
}

func componentValue(c Component, baseSalary int64) int64 {
	switch c.CalcType {
	case CalcFixed:
		return RoundAmount(c.Value)
	case CalcPercentBasic, CalcPercentBase:
		return roundHalfUp(
			decimal.NewFromInt(baseSalary).Mul(decimal.NewFromFloat(c.Value)).Div(hundred),
		)
	case CalcBasic:
		return baseSalary
	default:
		// Formula and the extended types are not evaluated in breakdowns.
		return 0
	}
}

// ComputeComponents builds the monthly breakdown for an employee on a
// structure version. Overrides and monthly items are applied in order;
// one-time items never enter the totals.
func ComputeComponents(s SalaryStructure, version int, baseSalary int64, overrides []ComponentOverride, items []AdditionalItem) Breakdown {
	var b Breakdown
	if v, ok := s.ResolveVersion(version); ok {
		b.Version = v.Version
		for _, c := range v.Components {
			b.Components = append(b.Components, ResolvedComponent{
				Name:     c.Name,
				Type:     c.Type,
				CalcType: c.CalcType,
				Value:    componentValue(c, baseSalary),
				Source:   SourceStructure,
			})
		}
	}

	for _, o := range overrides {
		replaced := false
		for i := range b.Components {
			if b.Components[i].Name == o.Name {
				b.Components[i].Value = o.Value
				b.Components[i].Source = SourceOverride
				replaced = true
				break
			}
		}
		if replaced {
			continue
		}
		t := o.Type
		if !t.Valid() {
			t = Earning
		}
		b.Components = append(b.Components, ResolvedComponent{
			Name:     o.Name,
			Type:     t,
			CalcType: CalcFixed,
			Value:    o.Value,
			Source:   SourceOverride,
		})
	}

	for _, it := range items {
		if it.Occurrence != Monthly {
			continue
		}
		t := Earning
		if it.Type == Deduction {
			t = Deduction
		}
		b.Components = append(b.Components, ResolvedComponent{
			Name:     it.Name,
			Type:     t,
			CalcType: CalcFixed,
			Value:    it.Amount,
			Source:   SourceAdditional,
		})
	}

	for _, c := range b.Components {
		if c.Type == Earning {
			b.GrossEarnings += c.Value
		} else {
			b.TotalDeductions += c.Value
		}
	}
	b.MonthlyTotal = b.GrossEarnings - b.TotalDeductions
	// Deductions are already netted into the monthly total and employer
	// contributions are not modelled, so net and CTC follow directly.
	b.NetSalary = b.MonthlyTotal
	b.AnnualCTC = b.MonthlyTotal * 12
	return b
}
