package compensation_test

import (
	"testing"

	"go-comp/internal/compensation"

	"github.com/stretchr/testify/assert"
)

func salaryStructure() compensation.SalaryStructure {
	return compensation.SalaryStructure{
		ID:   "ss1",
		Name: "Standard",
		Versions: []compensation.StructureVersion{
			{
				Version: 1,
				Components: []compensation.Component{
					{Name: "Basic", Type: compensation.Earning, CalcType: compensation.CalcBasic},
					{Name: "HRA", Type: compensation.Earning, CalcType: compensation.CalcPercentBasic, Value: 40},
				},
			},
			{
				Version: 2,
				Components: []compensation.Component{
					{Name: "Basic", Type: compensation.Earning, CalcType: compensation.CalcBasic},
					{Name: "HRA", Type: compensation.Earning, CalcType: compensation.CalcPercentBasic, Value: 50},
					{Name: "Conveyance", Type: compensation.Earning, CalcType: compensation.CalcFixed, Value: 1600},
					{Name: "PF", Type: compensation.Deduction, CalcType: compensation.CalcPercentBase, Value: 12},
					{Name: "Incentive", Type: compensation.Earning, CalcType: compensation.CalcFormula, Formula: "{baseSalary} * 2"},
				},
			},
		},
	}
}

func TestComputeComponents(t *testing.T) {
	b := compensation.ComputeComponents(salaryStructure(), 2, 30000, nil, nil)

	assert.Equal(t, 2, b.Version)
	assert.Len(t, b.Components, 5)
	assert.Equal(t, int64(30000), b.Components[0].Value)
	assert.Equal(t, int64(15000), b.Components[1].Value)
	assert.Equal(t, int64(1600), b.Components[2].Value)
	assert.Equal(t, int64(3600), b.Components[3].Value)
	assert.Equal(t, int64(0), b.Components[4].Value)

	assert.Equal(t, int64(46600), b.GrossEarnings)
	assert.Equal(t, int64(3600), b.TotalDeductions)
	assert.Equal(t, int64(43000), b.MonthlyTotal)
	assert.Equal(t, int64(43000), b.NetSalary)
	assert.Equal(t, int64(516000), b.AnnualCTC)
}

func TestComputeComponents_VersionFallback(t *testing.T) {
	s := salaryStructure()

	assert.Equal(t, 1, compensation.ComputeComponents(s, 1, 1000, nil, nil).Version)
	assert.Equal(t, 2, compensation.ComputeComponents(s, 7, 1000, nil, nil).Version)

	empty := compensation.ComputeComponents(compensation.SalaryStructure{}, 1, 1000, nil, nil)
	assert.Empty(t, empty.Components)
	assert.Equal(t, int64(0), empty.MonthlyTotal)
}

func TestComputeComponents_FormulaAlwaysZero(t *testing.T) {
	s := compensation.SalaryStructure{Versions: []compensation.StructureVersion{{
		Version: 1,
		Components: []compensation.Component{
			{Name: "Bonus", Type: compensation.Earning, CalcType: compensation.CalcFormula, Formula: "1000"},
			{Name: "Slab", Type: compensation.Earning, CalcType: compensation.CalcSlab, Value: 500},
		},
	}}}

	b := compensation.ComputeComponents(s, 1, 50000, nil, nil)

	assert.Equal(t, int64(0), b.MonthlyTotal)
}

func TestComputeComponents_OverridesAndItems(t *testing.T) {
	overrides := []compensation.ComponentOverride{
		{Name: "HRA", Value: 9000},
		{Name: "Special", Value: 2000},
		{Name: "Loan", Type: compensation.Deduction, Value: 500},
	}
	items := []compensation.AdditionalItem{
		{Name: "Meal", Type: compensation.Earning, Amount: 1200, Occurrence: compensation.Monthly},
		{Name: "Canteen", Type: compensation.Deduction, Amount: 300, Occurrence: compensation.Monthly},
		{Name: "Joining", Type: compensation.Earning, Amount: 50000, Occurrence: compensation.OneTime},
	}

	b := compensation.ComputeComponents(salaryStructure(), 1, 20000, overrides, items)

	names := make([]string, 0, len(b.Components))
	for _, c := range b.Components {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Basic", "HRA", "Special", "Loan", "Meal", "Canteen"}, names)

	assert.Equal(t, int64(9000), b.Components[1].Value)
	assert.Equal(t, compensation.SourceOverride, b.Components[1].Source)
	assert.Equal(t, compensation.Earning, b.Components[2].Type)
	assert.Equal(t, compensation.Deduction, b.Components[3].Type)
	assert.Equal(t, compensation.SourceAdditional, b.Components[4].Source)

	// 20000 + 9000 + 2000 + 1200 - 500 - 300
	assert.Equal(t, int64(31400), b.MonthlyTotal)
	assert.Equal(t, int64(31400*12), b.AnnualCTC)
}
