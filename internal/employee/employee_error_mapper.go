package employee

import (
	"errors"

	employeeerrors "go-comp/internal/employee/errors"
	"go-comp/internal/shared/dbtx"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return employeeerrors.ErrEmployeeNotFound
	case dbtx.IsUniqueViolation(err, "uq_employee_number"):
		return employeeerrors.ErrEmployeeNumberAlreadyExists
	}
	return err
}
