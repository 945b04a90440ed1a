package compensation

// FinalizeAmount picks the override when present, otherwise the auto
// amount, then caps it at the cycle maximum. There is no lower clamp.
func FinalizeAmount(auto int64, override *int64, c Cycle) int64 {
	amount := auto
	if override != nil {
		amount = *override
	}
	if c.MaxBonusCap != nil && amount > *c.MaxBonusCap {
		amount = *c.MaxBonusCap
	}
	return amount
}

// ClampToStructure bounds a positive amount by the structure's min and max
// bonus. Zero and negative amounts pass through so an ineligible employee
// is not lifted to the minimum.
func ClampToStructure(amount int64, s Structure) int64 {
	if amount <= 0 {
		return amount
	}
	if s.MinBonus != nil && amount < *s.MinBonus {
		amount = *s.MinBonus
	}
	if s.MaxBonus != nil && amount > *s.MaxBonus {
		amount = *s.MaxBonus
	}
	return amount
}

// ResolveFinal is FinalizeAmount with structure bounds applied to the auto
// amount. An override skips the structure bounds but not the cycle cap.
func ResolveFinal(auto int64, override *int64, s Structure, c Cycle) int64 {
	if override == nil {
		auto = ClampToStructure(auto, s)
	}
	return FinalizeAmount(auto, override, c)
}
