package salarystructure

import (
	"context"
	"database/sql"

	"go-comp/internal/shared/dbtx"
	"go-comp/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=salary_structure_repo.go -destination=mock/salary_structure_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateStructure(ctx context.Context, s *Structure) error
	CreateVersion(ctx context.Context, v *Version) error
	FindStructures(ctx context.Context, companyID string) ([]Structure, error)
	FindStructureByID(ctx context.Context, companyID, id string) (*Structure, error)
	FindStructuresByIDs(ctx context.Context, companyID string, ids []string) ([]Structure, error)
	SaveAssignment(ctx context.Context, a *Assignment) error
	FindAssignmentByEmployee(ctx context.Context, companyID, employeeID string) (*Assignment, error)
	FindAssignmentsByEmployees(ctx context.Context, companyID string, employeeIDs []string) ([]Assignment, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbtx.Bind(ctx, r.db, r.tx)
}

func orderVersions(db *gorm.DB) *gorm.DB {
	return db.Order("version ASC")
}

func (r *repository) CreateStructure(ctx context.Context, s *Structure) error {
	return r.conn(ctx).Create(s).Error
}

func (r *repository) CreateVersion(ctx context.Context, v *Version) error {
	return r.conn(ctx).Create(v).Error
}

func (r *repository) FindStructures(ctx context.Context, companyID string) ([]Structure, error) {
	var structures []Structure
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Versions", orderVersions).
		Order("name ASC").
		Find(&structures).Error
	return structures, err
}

func (r *repository) FindStructureByID(ctx context.Context, companyID, id string) (*Structure, error) {
	var s Structure
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Versions", orderVersions).
		First(&s, "id = ?", id).Error
	return &s, err
}

func (r *repository) FindStructuresByIDs(ctx context.Context, companyID string, ids []string) ([]Structure, error) {
	var structures []Structure
	if len(ids) == 0 {
		return structures, nil
	}
	err := r.conn(ctx).
		Scopes(tenant.ScopeIDs(companyID, ids)).
		Preload("Versions", orderVersions).
		Find(&structures).Error
	return structures, err
}

// SaveAssignment inserts the employee's assignment or replaces the current
// one in place.
func (r *repository) SaveAssignment(ctx context.Context, a *Assignment) error {
	return r.conn(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "company_id"}, {Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"structure_id", "version", "overrides", "additional_items",
				"effective_from", "assigned_by", "updated_at",
			}),
		}).
		Create(a).Error
}

func (r *repository) FindAssignmentByEmployee(ctx context.Context, companyID, employeeID string) (*Assignment, error) {
	var a Assignment
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&a, "employee_id = ?", employeeID).Error
	return &a, err
}

func (r *repository) FindAssignmentsByEmployees(ctx context.Context, companyID string, employeeIDs []string) ([]Assignment, error) {
	var assignments []Assignment
	if len(employeeIDs) == 0 {
		return assignments, nil
	}
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id IN ?", employeeIDs).
		Find(&assignments).Error
	return assignments, err
}
