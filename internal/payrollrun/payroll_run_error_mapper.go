package payrollrun

import (
	"errors"

	payrollrunerrors "go-comp/internal/payrollrun/errors"
	"go-comp/internal/shared/dbtx"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return payrollrunerrors.ErrRunNotFound
	case dbtx.IsUniqueViolation(err, "uq_payroll_run_number"):
		return payrollrunerrors.ErrRunNumberTaken
	}
	return err
}
