package compensation_test

import (
	"testing"

	"go-comp/internal/compensation"
	"go-comp/internal/formula"

	"github.com/stretchr/testify/assert"
)

func TestValidateStructure(t *testing.T) {
	tests := []struct {
		name    string
		s       compensation.Structure
		wantErr error
	}{
		{"fixed", compensation.Structure{Mode: compensation.ModeFixed, Value: 100}, nil},
		{"unknown mode", compensation.Structure{Mode: "Slab"}, compensation.ErrUnknownCalculationMode},
		{"negative value", compensation.Structure{Mode: compensation.ModePercentOfBase, Value: -1}, compensation.ErrNegativeValue},
		{"bounds inverted", compensation.Structure{Mode: compensation.ModeFixed, MinBonus: i64(10), MaxBonus: i64(5)}, compensation.ErrInvalidBonusBounds},
		{"formula ok", compensation.Structure{Mode: compensation.ModeFormula, Formula: "{baseSalary} * 10%"}, nil},
		{"formula empty", compensation.Structure{Mode: compensation.ModeFormula}, formula.ErrEmptyFormula},
		{"formula letters", compensation.Structure{Mode: compensation.ModeFormula, Formula: "2+a"}, formula.ErrUnsupportedFormulaCharacter},
		{"formula unknown variable", compensation.Structure{Mode: compensation.ModeFormula, Formula: "{bonusPool} * 2"}, formula.ErrUnknownPlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := compensation.ValidateStructure(tt.s)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateComponents(t *testing.T) {
	ok := []compensation.Component{
		{Name: "Basic", Type: compensation.Earning, CalcType: compensation.CalcBasic},
		{Name: "PF", Type: compensation.Deduction, CalcType: compensation.CalcPercentBase, Value: 12},
	}
	assert.NoError(t, compensation.ValidateComponents(ok))

	dup := append(ok, compensation.Component{Name: "PF", Type: compensation.Deduction, CalcType: compensation.CalcFixed})
	assert.ErrorIs(t, compensation.ValidateComponents(dup), compensation.ErrDuplicateComponent)

	badType := []compensation.Component{{Name: "X", Type: "Bonus", CalcType: compensation.CalcFixed}}
	assert.ErrorIs(t, compensation.ValidateComponents(badType), compensation.ErrUnknownComponentType)

	badCalc := []compensation.Component{{Name: "X", Type: compensation.Earning, CalcType: "weird"}}
	assert.ErrorIs(t, compensation.ValidateComponents(badCalc), compensation.ErrUnknownCalcType)

	badFormula := []compensation.Component{{Name: "X", Type: compensation.Earning, CalcType: compensation.CalcFormula, Formula: "1 +"}}
	assert.ErrorIs(t, compensation.ValidateComponents(badFormula), formula.ErrMalformedFormula)
}
