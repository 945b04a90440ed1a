package engine

type EvaluateFormulaRequest struct {
	Formula   string             `json:"formula" binding:"required"`
	Variables map[string]float64 `json:"variables"`
	// Strict rejects placeholders that bonus structures cannot supply.
	Strict bool `json:"strict"`
}

type EvaluateFormulaResponse struct {
	Result              float64  `json:"result"`
	Amount              int64    `json:"amount"`
	Placeholders        []string `json:"placeholders"`
	MissingVariables    []string `json:"missing_variables"`
	UnknownPlaceholders []string `json:"unknown_placeholders"`
}
