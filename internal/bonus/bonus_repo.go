package bonus

import (
	"context"
	"database/sql"

	"go-comp/internal/compensation"
	"go-comp/internal/shared/dbtx"
	"go-comp/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateStructure(ctx context.Context, s *Structure) error
	FindStructures(ctx context.Context, companyID string) ([]Structure, error)
	FindStructureByID(ctx context.Context, companyID, id string) (*Structure, error)

	CreateCycle(ctx context.Context, c *Cycle) error
	FindCycles(ctx context.Context, companyID string) ([]Cycle, error)
	FindCycleByID(ctx context.Context, companyID, id string) (*Cycle, error)
	UpdateCycle(ctx context.Context, c *Cycle) error

	CreateAssignments(ctx context.Context, assignments []Assignment) error
	FindAssignmentsByCycle(ctx context.Context, companyID, cycleID string) ([]Assignment, error)
	FindAssignmentByID(ctx context.Context, companyID, id string) (*Assignment, error)
	FindOpenAssignmentsByEmployee(ctx context.Context, companyID, employeeID string) ([]Assignment, error)
	SaveAssignment(ctx context.Context, a *Assignment) error
	AppendAudits(ctx context.Context, audits []AssignmentAudit) error
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

func (r *repository) CreateStructure(ctx context.Context, s *Structure) error {
	return r.conn(ctx).Create(s).Error
}

func (r *repository) FindStructures(ctx context.Context, companyID string) ([]Structure, error) {
	var out []Structure
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindStructureByID(ctx context.Context, companyID, id string) (*Structure, error) {
	var s Structure
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) CreateCycle(ctx context.Context, c *Cycle) error {
	return r.conn(ctx).Create(c).Error
}

func (r *repository) FindCycles(ctx context.Context, companyID string) ([]Cycle, error) {
	var out []Cycle
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("period_start DESC, name ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindCycleByID(ctx context.Context, companyID, id string) (*Cycle, error) {
	var c Cycle
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&c, "id = ?", id).Error
	return &c, err
}

func (r *repository) UpdateCycle(ctx context.Context, c *Cycle) error {
	return r.conn(ctx).Save(c).Error
}

func (r *repository) CreateAssignments(ctx context.Context, assignments []Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&assignments).Error
}

func preloadAudits(db *gorm.DB) *gorm.DB {
	return db.Order("at ASC")
}

func (r *repository) FindAssignmentsByCycle(ctx context.Context, companyID, cycleID string) ([]Assignment, error) {
	var out []Assignment
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Audits", preloadAudits).
		Where("cycle_id = ?", cycleID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindAssignmentByID(ctx context.Context, companyID, id string) (*Assignment, error) {
	var a Assignment
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Audits", preloadAudits).
		First(&a, "id = ?", id).Error
	return &a, err
}

// FindOpenAssignmentsByEmployee returns the employee's assignments in cycles
// that still accept changes.
func (r *repository) FindOpenAssignmentsByEmployee(ctx context.Context, companyID, employeeID string) ([]Assignment, error) {
	var out []Assignment
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Audits", preloadAudits).
		Where("employee_id = ?", employeeID).
		Where("cycle_id IN (?)", r.conn(ctx).
			Model(&Cycle{}).
			Select("id").
			Where("company_id = ?", companyID).
			Where("status IN ?", []string{string(compensation.CycleDraft), string(compensation.CycleActive)}),
		).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

// SaveAssignment persists the computed fields only; audits are appended
// separately so the trail is never rewritten.
func (r *repository) SaveAssignment(ctx context.Context, a *Assignment) error {
	return r.conn(ctx).
		Model(a).
		Select("structure_id", "target", "achievement", "auto_amount", "override_amount",
			"final_amount", "approval_status", "notes", "updated_at").
		Omit("Audits").
		Updates(a).Error
}

func (r *repository) AppendAudits(ctx context.Context, audits []AssignmentAudit) error {
	if len(audits) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&audits).Error
}
