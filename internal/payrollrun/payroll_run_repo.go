package payrollrun

import (
	"context"
	"database/sql"

	"go-comp/internal/shared/dbtx"
	"go-comp/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, run *Run) error
	FindAll(ctx context.Context, companyID string) ([]Run, error)
	FindByID(ctx context.Context, companyID, id string) (*Run, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*Run, error)
	Finalize(ctx context.Context, run *Run) error
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

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Bind(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, run *Run) error {
	return r.conn(ctx).Omit("Lines").Create(run).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string) ([]Run, error) {
	var runs []Run
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("period_month DESC, run_number DESC").
		Find(&runs).Error
	return runs, err
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*Run, error) {
	var run Run
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("employee_name ASC")
		}).
		First(&run, "id = ?", id).Error
	return &run, err
}

// FindByIDForUpdate locks the run row so concurrent finalize calls
// serialize on it.
func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*Run, error) {
	var run Run
	db := r.conn(ctx)
	if db.Dialector.Name() == "postgres" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	err := db.
		Scopes(tenant.Scope(companyID)).
		First(&run, "id = ?", id).Error
	return &run, err
}

// Finalize writes the run totals and status together with its lines.
func (r *repository) Finalize(ctx context.Context, run *Run) error {
	db := r.conn(ctx)
	if len(run.Lines) > 0 {
		if err := db.Create(&run.Lines).Error; err != nil {
			return err
		}
	}
	return db.Model(&Run{}).
		Where("id = ? AND company_id = ?", run.ID, run.CompanyID).
		Updates(map[string]any{
			"status":           run.Status,
			"total_gross":      run.TotalGross,
			"total_deductions": run.TotalDeductions,
			"total_net":        run.TotalNet,
			"finalized_by":     run.FinalizedBy,
			"finalized_at":     run.FinalizedAt,
			"updated_at":       run.UpdatedAt,
		}).Error
}
