package counter

import (
	"context"
	"database/sql"
	"fmt"

	"go-comp/internal/shared/dbtx"

	"gorm.io/gorm"
)

const (
	TypeEmployeeNumber = "employee_number"
	TypePayrollRun     = "payroll_run"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	var nextValue int64

	// single statement upsert keeps numbering gap free per company and type
	err := dbtx.Bind(ctx, r.db, r.tx).Raw(`
		INSERT INTO company_counters (company_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (company_id, counter_type) DO UPDATE
		SET last_value = company_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, companyID, counterType).Scan(&nextValue).Error
	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

// EmployeeNumber formats a counter value as EMP-000042.
func EmployeeNumber(value int64) string {
	return fmt.Sprintf("EMP-%06d", value)
}

// PayrollRunNumber formats a counter value as PR-2026-0007.
func PayrollRunNumber(year int, value int64) string {
	return fmt.Sprintf("PR-%d-%04d", year, value)
}
