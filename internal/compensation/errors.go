package compensation

import (
	"net/http"

	"go-comp/internal/shared/apperror"
)

var (
	ErrUnknownCalculationMode = apperror.New(
		apperror.CodeInvalidInput,
		"calculation mode must be one of Fixed, PercentOfBase, PercentOfGross, Formula",
		http.StatusBadRequest,
	)
	ErrNegativeValue = apperror.New(
		apperror.CodeInvalidInput,
		"structure value cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidBonusBounds = apperror.New(
		apperror.CodeInvalidInput,
		"min bonus cannot be greater than max bonus",
		http.StatusBadRequest,
	)
	ErrUnknownComponentType = apperror.New(
		apperror.CodeInvalidInput,
		"component type must be Earning or Deduction",
		http.StatusBadRequest,
	)
	ErrUnknownCalcType = apperror.New(
		apperror.CodeInvalidInput,
		"unknown component calculation type",
		http.StatusBadRequest,
	)
	ErrDuplicateComponent = apperror.New(
		apperror.CodeInvalidInput,
		"component names must be unique within a structure version",
		http.StatusBadRequest,
	)
)
