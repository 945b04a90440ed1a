package salarystructureerrors

import (
	"net/http"

	"go-comp/internal/shared/apperror"
)

var (
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary structure not found",
		http.StatusNotFound,
	)
	ErrStructureNameTaken = apperror.New(
		apperror.CodeConflict,
		"A salary structure with this name already exists",
		http.StatusConflict,
	)
	ErrVersionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary structure version not found",
		http.StatusNotFound,
	)
	ErrVersionConflict = apperror.New(
		apperror.CodeConflict,
		"Another version was added concurrently, retry the request",
		http.StatusConflict,
	)
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee has no salary structure assigned",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"Effective date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid identifier",
		http.StatusBadRequest,
	)
)
