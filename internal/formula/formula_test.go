package formula_test

import (
	"strings"
	"testing"

	"go-comp/internal/formula"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	vars := map[string]float64{
		"baseSalary":  50000,
		"grossSalary": 80000,
		"target":      100,
		"achievement": 50,
		"negative":    -3,
	}

	tests := []struct {
		name string
		expr string
		want float64
	}{
		{"placeholders multiply", "{target} * 0.01 * {baseSalary}", 50000},
		{"percent token", "{baseSalary} * 10%", 5000},
		{"decimal percent", "{grossSalary} * 12.5%", 10000},
		{"bare percent", "50%", 0.5},
		{"precedence", "2 + 3 * 4", 14},
		{"parentheses", "(2 + 3) * 4", 20},
		{"left associative division", "100 / 10 / 2", 5},
		{"unary minus", "-(2 + 3) * 2", -10},
		{"negative value substituted", "10 - {negative}", 13},
		{"missing placeholder is zero", "{bonusPool} + 5", 5},
		{"proportional bonus", "{baseSalary} * 10% * {achievement} / {target}", 2500},
		{"leading dot literal", ".5 * 4", 2},
		{"whitespace everywhere", "  1\t+\n2 ", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formula.Evaluate(tt.expr, vars)

			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEvaluate_DegradesToZero(t *testing.T) {
	for _, expr := range []string{
		"10 / 0",
		"{target} / ({achievement} - 50)",
		"(1 + 2",
		"1 +",
		"10 % 3",
		"1.2.3 + 1",
		"",
		"()",
	} {
		t.Run(expr, func(t *testing.T) {
			got, err := formula.Evaluate(expr, map[string]float64{"target": 1, "achievement": 50})

			assert.NoError(t, err)
			assert.Zero(t, got)
		})
	}
}

func TestEvaluate_UnsupportedCharacters(t *testing.T) {
	for _, expr := range []string{
		"2+a",
		"Math.max(1, 2)",
		"{base salary} * 2",
		"1; process.exit()",
		"2 ** 3 ^ 1",
	} {
		t.Run(expr, func(t *testing.T) {
			got, err := formula.Evaluate(expr, nil)

			assert.ErrorIs(t, err, formula.ErrUnsupportedFormulaCharacter)
			assert.Zero(t, got)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, formula.Validate("{baseSalary} * 10% + 500"))
	assert.NoError(t, formula.Validate("{a} / {b}"))
	assert.NoError(t, formula.Validate("1 / 0"))

	assert.ErrorIs(t, formula.Validate("   "), formula.ErrEmptyFormula)
	assert.ErrorIs(t, formula.Validate("2+a"), formula.ErrUnsupportedFormulaCharacter)
	assert.ErrorIs(t, formula.Validate("({baseSalary} * 2"), formula.ErrMalformedFormula)
	assert.ErrorIs(t, formula.Validate("10 % 3"), formula.ErrMalformedFormula)

	deep := strings.Repeat("(", 100) + "1" + strings.Repeat(")", 100)
	assert.ErrorIs(t, formula.Validate(deep), formula.ErrMalformedFormula)
}

func TestValidateWithVariables(t *testing.T) {
	known := []string{"baseSalary", "grossSalary", "target", "achievement"}

	assert.NoError(t, formula.ValidateWithVariables("{baseSalary} * {achievement} / {target}", known))
	assert.ErrorIs(t, formula.ValidateWithVariables("{bonusPool} * 2", known), formula.ErrUnknownPlaceholder)
	assert.ErrorIs(t, formula.ValidateWithVariables("{baseSalary} * x", known), formula.ErrUnsupportedFormulaCharacter)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, formula.Placeholders("{a} + {b} * {a}"))
	assert.Empty(t, formula.Placeholders("1 + 2"))
}
