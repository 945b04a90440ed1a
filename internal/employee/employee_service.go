package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-comp/internal/compensation"
	employeeerrors "go-comp/internal/employee/errors"
	"go-comp/internal/events"
	"go-comp/internal/messaging/kafka"
	"go-comp/internal/shared/contextutil"
	"go-comp/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	EmployeeListKeyPrefix = "employees:list:"
	defaultCacheTTL       = time.Hour
)

func GetEmployeeListKey(companyID string) string {
	return EmployeeListKeyPrefix + companyID
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, companyID, id string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	counter  counter.Repository
	outbox   kafka.OutboxRepository
	rdb      *redis.Client
	sf       *singleflight.Group
	cacheTTL time.Duration
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, rdb, defaultCacheTTL, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &service{
		db:       db,
		repo:     repo,
		counter:  counter,
		outbox:   outboxRepo,
		rdb:      rdb,
		sf:       &singleflight.Group{},
		cacheTTL: cacheTTL,
		logger:   l,
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
	)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidCompanyID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	if req.EmployeeNumber == "" {
		nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, companyID, counter.TypeEmployeeNumber)
		if err != nil {
			s.logger.Error("create employee generate number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.EmployeeNumber = counter.EmployeeNumber(nextVal)
	}

	empl := &Employee{
		ID:                uuid.New(),
		CompanyID:         companyUUID,
		EmployeeNumber:    req.EmployeeNumber,
		FullName:          req.FullName,
		Department:        req.Department,
		Designation:       req.Designation,
		BaseSalary:        req.BaseSalary,
		GrossSalary:       req.GrossSalary,
		BankAccountNumber: optional(req.BankAccountNumber),
		BankIFSC:          optional(req.BankIFSC),
		PFNumber:          optional(req.PFNumber),
		ESINumber:         optional(req.ESINumber),
		IsActive:          true,
	}

	if err := s.repo.WithTx(tx).Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateList(ctx, companyID)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("employee_number", empl.EmployeeNumber),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]EmployeeResponse, error) {
	cacheKey := GetEmployeeListKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// concurrent misses for one company share a single query
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		empls, err := s.repo.FindAllByCompany(ctx, companyID, false)
		if err != nil {
			s.logger.Error("get all employees failed", zap.String("company_id", companyID), zap.Error(err))
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(empls)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, jsonData, s.cacheTTL).Err(); err != nil {
					s.logger.Warn("cache employee list failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	empl, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if !empl.IsActive {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeInactive
	}

	prevBase, prevGross := empl.BaseSalary, empl.GrossSalary

	empl.FullName = req.FullName
	empl.Department = req.Department
	empl.Designation = req.Designation
	empl.BaseSalary = req.BaseSalary
	empl.GrossSalary = req.GrossSalary
	empl.BankAccountNumber = optional(req.BankAccountNumber)
	empl.BankIFSC = optional(req.BankIFSC)
	empl.PFNumber = optional(req.PFNumber)
	empl.ESINumber = optional(req.ESINumber)

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	salaryChanged := prevBase != empl.BaseSalary || prevGross != empl.GrossSalary
	if salaryChanged && s.outbox != nil {
		event := newCompensationChangedEvent(ctx, *empl, prevBase, prevGross)
		outboxEvent, err := kafka.NewOutboxEvent(rid, "employee", empl.ID.String(),
			event.EventType, events.EmployeeCompensationChangedTopic, event)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			s.logger.Error("update employee outbox persist failed",
				zap.String("employee_id", id),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.invalidateList(ctx, companyID)

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.Bool("salary_changed", salaryChanged),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Deactivate(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("deactivate employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	affected, err := s.repo.WithTx(tx).Deactivate(ctx, companyID, id)
	if err != nil {
		s.logger.Error("deactivate employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if affected == 0 {
		return employeeerrors.ErrEmployeeNotFound
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("deactivate employee commit failed", zap.Error(err))
		return err
	}

	s.invalidateList(ctx, companyID)

	s.logger.Info("deactivate employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateList(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetEmployeeListKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee list cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func newCompensationChangedEvent(ctx context.Context, empl Employee, prevBase, prevGross int64) events.EmployeeCompensationChangedEvent {
	meta := contextutil.ExtractMetadata(ctx)
	return events.EmployeeCompensationChangedEvent{
		EventType:     events.EventEmployeeCompensationChanged,
		RequestID:     meta.RequestID,
		EmployeeID:    empl.ID.String(),
		CompanyID:     empl.CompanyID.String(),
		PreviousBase:  prevBase,
		BaseSalary:    empl.BaseSalary,
		PreviousGross: prevGross,
		GrossSalary:   empl.GrossSalary,
		ChangedBy:     meta.ActorID,
		OccurredAt:    time.Now().UTC(),
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                empl.ID.String(),
		CompanyID:         empl.CompanyID.String(),
		EmployeeNumber:    empl.EmployeeNumber,
		FullName:          empl.FullName,
		Department:        empl.Department,
		Designation:       empl.Designation,
		BaseSalary:        empl.BaseSalary,
		GrossSalary:       empl.GrossSalary,
		BankAccountNumber: deref(empl.BankAccountNumber),
		BankIFSC:          deref(empl.BankIFSC),
		PFNumber:          deref(empl.PFNumber),
		ESINumber:         deref(empl.ESINumber),
		IsActive:          empl.IsActive,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// Directory exposes employees as calculation snapshots to other modules.
type Directory struct {
	repo Repository
}

func NewDirectory(repo Repository) *Directory {
	return &Directory{repo: repo}
}

func (d *Directory) ListActive(ctx context.Context, companyID string) ([]compensation.Employee, error) {
	empls, err := d.repo.FindAllByCompany(ctx, companyID, true)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return toCompensation(empls), nil
}

func (d *Directory) FindByIDs(ctx context.Context, companyID string, ids []string) ([]compensation.Employee, error) {
	empls, err := d.repo.FindByIDs(ctx, companyID, ids)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return toCompensation(empls), nil
}

func toCompensation(empls []Employee) []compensation.Employee {
	out := make([]compensation.Employee, len(empls))
	for i, e := range empls {
		out[i] = e.ToCompensation()
	}
	return out
}
