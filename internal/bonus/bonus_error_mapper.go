package bonus

import (
	"errors"

	bonuserrors "go-comp/internal/bonus/errors"
	"go-comp/internal/shared/dbtx"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	switch {
	case dbtx.IsUniqueViolation(err, "uq_bonus_structure_name"):
		return bonuserrors.ErrStructureNameTaken
	case dbtx.IsUniqueViolation(err, "uq_bonus_assignment_cycle_employee"):
		return bonuserrors.ErrAlreadyAssigned
	}
	return err
}

func notFoundAs(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return mapRepositoryError(err)
}

func mapStructureError(err error) error  { return notFoundAs(err, bonuserrors.ErrStructureNotFound) }
func mapCycleError(err error) error      { return notFoundAs(err, bonuserrors.ErrCycleNotFound) }
func mapAssignmentError(err error) error { return notFoundAs(err, bonuserrors.ErrAssignmentNotFound) }
