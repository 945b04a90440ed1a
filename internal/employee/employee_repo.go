package employee

import (
	"context"
	"database/sql"

	"go-comp/internal/shared/dbtx"
	"go-comp/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAllByCompany(ctx context.Context, companyID string, activeOnly bool) ([]Employee, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error)
	FindByIDs(ctx context.Context, companyID string, ids []string) ([]Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Deactivate(ctx context.Context, companyID string, id string) (int64, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Create(empl).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, activeOnly bool) ([]Employee, error) {
	var empls []Employee
	q := r.conn(ctx).Scopes(tenant.Scope(companyID))
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("employee_number ASC").Find(&empls).Error
	return empls, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error) {
	var empl Employee
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByIDs(ctx context.Context, companyID string, ids []string) ([]Employee, error) {
	var empls []Employee
	if len(ids) == 0 {
		return empls, nil
	}
	err := r.conn(ctx).
		Scopes(tenant.ScopeIDs(companyID, ids)).
		Order("employee_number ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.conn(ctx).Save(empl).Error
}

func (r *repository) Deactivate(ctx context.Context, companyID string, id string) (int64, error) {
	res := r.conn(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
