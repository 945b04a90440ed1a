package salarystructure

import (
	"errors"

	salarystructureerrors "go-comp/internal/salarystructure/errors"
	"go-comp/internal/shared/dbtx"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	switch {
	case dbtx.IsUniqueViolation(err, "uq_salary_structure_name"):
		return salarystructureerrors.ErrStructureNameTaken
	case dbtx.IsUniqueViolation(err, "uq_salary_structure_version"):
		return salarystructureerrors.ErrVersionConflict
	}
	return err
}

func mapStructureError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarystructureerrors.ErrStructureNotFound
	}
	return mapRepositoryError(err)
}

func mapAssignmentError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarystructureerrors.ErrAssignmentNotFound
	}
	return mapRepositoryError(err)
}
