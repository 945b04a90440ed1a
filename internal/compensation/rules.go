package compensation

import "go-comp/internal/formula"

// ValidateStructure checks a bonus structure at authoring time. This is the
// only place a bad formula fails loudly.
func ValidateStructure(s Structure) error {
	if !s.Mode.Valid() {
		return ErrUnknownCalculationMode
	}
	if s.Value < 0 {
		return ErrNegativeValue
	}
	if s.MinBonus != nil && s.MaxBonus != nil && *s.MinBonus > *s.MaxBonus {
		return ErrInvalidBonusBounds
	}
	if s.Mode == ModeFormula {
		return formula.ValidateWithVariables(s.Formula, FormulaVariables)
	}
	return nil
}

// ValidateComponents checks a salary structure version before it is stored.
// Formula components are syntax-checked even though breakdowns ignore them.
func ValidateComponents(components []Component) error {
	seen := make(map[string]struct{}, len(components))
	for _, c := range components {
		if !c.Type.Valid() {
			return ErrUnknownComponentType
		}
		if !c.CalcType.Valid() {
			return ErrUnknownCalcType
		}
		if _, dup := seen[c.Name]; dup {
			return ErrDuplicateComponent
		}
		seen[c.Name] = struct{}{}
		if c.CalcType == CalcFormula {
			if err := formula.Validate(c.Formula); err != nil {
				return err
			}
		}
	}
	return nil
}
