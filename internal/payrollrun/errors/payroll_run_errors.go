package payrollrunerrors

import (
	"net/http"

	"go-comp/internal/shared/apperror"
)

var (
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll run not found",
		http.StatusNotFound,
	)
	ErrRunNumberTaken = apperror.New(
		apperror.CodeConflict,
		"Payroll run number already exists",
		http.StatusConflict,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Period month must be formatted as YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid identifier",
		http.StatusBadRequest,
	)
	ErrNoEmployees = apperror.New(
		apperror.CodeInvalidInput,
		"A payroll run needs at least one employee",
		http.StatusBadRequest,
	)
	ErrUnknownEmployees = apperror.New(
		apperror.CodeInvalidInput,
		"Some employees do not exist",
		http.StatusBadRequest,
	)
	ErrRunNotDraft = apperror.New(
		apperror.CodeInvalidState,
		"Only draft payroll runs can be finalized",
		http.StatusConflict,
	)
	ErrRunNotFinalized = apperror.New(
		apperror.CodeInvalidState,
		"Payroll register is available once the run is finalized",
		http.StatusConflict,
	)
	ErrFinalizeBlocked = apperror.New(
		apperror.CodeFinalizeBlocked,
		"Payroll run has unresolved validation issues",
		http.StatusUnprocessableEntity,
	)
)
