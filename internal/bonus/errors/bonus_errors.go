package bonuserrors

import (
	"net/http"

	"go-comp/internal/shared/apperror"
)

var (
	ErrStructureNotFound = apperror.New(
		apperror.CodeNotFound,
		"Bonus structure not found",
		http.StatusNotFound,
	)
	ErrStructureNameTaken = apperror.New(
		apperror.CodeConflict,
		"A bonus structure with this name already exists",
		http.StatusConflict,
	)
	ErrStructureRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A structure is required when the cycle has no default structure",
		http.StatusBadRequest,
	)
	ErrCycleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Bonus cycle not found",
		http.StatusNotFound,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Cycle period must be YYYY-MM-DD dates with start on or before end",
		http.StatusBadRequest,
	)
	ErrCycleClosed = apperror.New(
		apperror.CodeInvalidState,
		"Bonus cycle is closed",
		http.StatusConflict,
	)
	ErrInvalidCycleTransition = apperror.New(
		apperror.CodeInvalidState,
		"Bonus cycle cannot move to the requested status",
		http.StatusConflict,
	)
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Bonus assignment not found",
		http.StatusNotFound,
	)
	ErrAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"Employee is already assigned in this cycle",
		http.StatusConflict,
	)
	ErrUnknownEmployees = apperror.New(
		apperror.CodeInvalidInput,
		"Some employees do not exist in this company",
		http.StatusBadRequest,
	)
	ErrOverrideNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"The assignment's structure does not allow overrides",
		http.StatusConflict,
	)
	ErrInvalidApprovalStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Approval status must be Pending, Approved or Rejected",
		http.StatusBadRequest,
	)
	ErrReleaseBlocked = apperror.New(
		apperror.CodeReleaseBlocked,
		"Release blocked by validation issues",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid identifier",
		http.StatusBadRequest,
	)
)
