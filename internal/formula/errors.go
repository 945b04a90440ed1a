package formula

import (
	"net/http"

	"go-comp/internal/shared/apperror"
)

var (
	ErrEmptyFormula = apperror.New(
		apperror.CodeInvalidInput,
		"formula is required for Formula calculation mode",
		http.StatusBadRequest,
	)
	ErrUnsupportedFormulaCharacter = apperror.New(
		apperror.CodeInvalidInput,
		"formula contains unsupported characters, only numbers, {placeholders}, + - * / ( ) and % are allowed",
		http.StatusBadRequest,
	)
	ErrMalformedFormula = apperror.New(
		apperror.CodeInvalidInput,
		"formula is not a valid arithmetic expression",
		http.StatusBadRequest,
	)
	ErrUnknownPlaceholder = apperror.New(
		apperror.CodeInvalidInput,
		"formula references an unknown placeholder",
		http.StatusBadRequest,
	)
)
