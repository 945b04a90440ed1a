package engine

import (
	"context"

	"go-comp/internal/compensation"
	"go-comp/internal/formula"
	"go-comp/internal/shared/contextutil"

	"go.uber.org/zap"
)

type Service interface {
	EvaluateFormula(ctx context.Context, req EvaluateFormulaRequest) (EvaluateFormulaResponse, error)
}

type service struct {
	logger *zap.Logger
}

func NewService(logger ...*zap.Logger) Service {
	l := zap.L().Named("engine.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("engine.service")
	}
	return &service{logger: l}
}

// EvaluateFormula validates the formula the way structure authoring does and
// then evaluates it against the supplied variables. Missing variables
// evaluate as 0 and are reported back.
func (s *service) EvaluateFormula(ctx context.Context, req EvaluateFormulaRequest) (EvaluateFormulaResponse, error) {
	validate := formula.Validate
	if req.Strict {
		validate = func(expr string) error {
			return formula.ValidateWithVariables(expr, compensation.FormulaVariables)
		}
	}
	if err := validate(req.Formula); err != nil {
		s.logger.Debug("formula preview rejected",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		return EvaluateFormulaResponse{}, err
	}

	result, err := formula.Evaluate(req.Formula, req.Variables)
	if err != nil {
		return EvaluateFormulaResponse{}, err
	}

	known := make(map[string]struct{}, len(compensation.FormulaVariables))
	for _, v := range compensation.FormulaVariables {
		known[v] = struct{}{}
	}

	res := EvaluateFormulaResponse{
		Result:              result,
		Amount:              compensation.RoundAmount(result),
		Placeholders:        formula.Placeholders(req.Formula),
		MissingVariables:    []string{},
		UnknownPlaceholders: []string{},
	}
	for _, name := range res.Placeholders {
		if _, ok := req.Variables[name]; !ok {
			res.MissingVariables = append(res.MissingVariables, name)
		}
		if _, ok := known[name]; !ok {
			res.UnknownPlaceholders = append(res.UnknownPlaceholders, name)
		}
	}
	return res, nil
}
