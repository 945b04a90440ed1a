package payrollrun

import (
	"bytes"
	"context"
	"database/sql"
	"sort"
	"time"

	"go-comp/internal/compensation"
	"go-comp/internal/events"
	"go-comp/internal/messaging/kafka"
	payrollrunerrors "go-comp/internal/payrollrun/errors"
	"go-comp/internal/shared/contextutil"
	"go-comp/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const periodLayout = "2006-01"

type EmployeeSource interface {
	ListActive(ctx context.Context, companyID string) ([]compensation.Employee, error)
	FindByIDs(ctx context.Context, companyID string, ids []string) ([]compensation.Employee, error)
}

// BreakdownSource computes salary breakdowns for employees with a salary
// assignment. Employees without one are absent from the result.
type BreakdownSource interface {
	ComputeBreakdowns(ctx context.Context, companyID string, employees []compensation.Employee) (map[string]compensation.Breakdown, error)
}

//go:generate mockgen -source=payroll_run_service.go -destination=mock/payroll_run_service_mock.go -package=mock
type Service interface {
	CreateRun(ctx context.Context, companyID string, req CreateRunRequest) (RunResponse, error)
	ListRuns(ctx context.Context, companyID string) ([]RunResponse, error)
	GetRun(ctx context.Context, companyID, id string) (RunResponse, error)
	Validate(ctx context.Context, companyID, id string) (compensation.ValidationResult, error)
	Finalize(ctx context.Context, companyID, id string, req FinalizeRequest) (FinalizeResponse, error)
	ExportRegister(ctx context.Context, companyID, id string) (*bytes.Buffer, string, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	counter    counter.Repository
	employees  EmployeeSource
	breakdowns BreakdownSource
	outbox     kafka.OutboxRepository
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	employees EmployeeSource,
	breakdowns BreakdownSource,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payrollrun.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payrollrun.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		counter:    counterRepo,
		employees:  employees,
		breakdowns: breakdowns,
		outbox:     outboxRepo,
		now:        time.Now,
		logger:     l,
	}
}

func (s *service) CreateRun(ctx context.Context, companyID string, req CreateRunRequest) (RunResponse, error) {
	meta := contextutil.ExtractMetadata(ctx)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RunResponse{}, payrollrunerrors.ErrInvalidID
	}
	period, err := time.Parse(periodLayout, req.PeriodMonth)
	if err != nil {
		return RunResponse{}, payrollrunerrors.ErrInvalidPeriod
	}

	employeeIDs, err := s.resolveEmployees(ctx, companyID, req.EmployeeIDs)
	if err != nil {
		return RunResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RunResponse{}, err
	}
	defer tx.Rollback()

	seq, err := s.counter.WithTx(tx).GetNextValue(ctx, companyID, counter.TypePayrollRun)
	if err != nil {
		s.logger.Error("payroll run number allocation failed", zap.String("company_id", companyID), zap.Error(err))
		return RunResponse{}, err
	}

	run := &Run{
		ID:          uuid.New(),
		CompanyID:   companyUUID,
		RunNumber:   counter.PayrollRunNumber(period.Year(), seq),
		PeriodMonth: req.PeriodMonth,
		Status:      StatusDraft,
		EmployeeIDs: employeeIDs,
		CreatedBy:   meta.ActorID,
	}
	if err := s.repo.WithTx(tx).Create(ctx, run); err != nil {
		s.logger.Error("create payroll run failed", zap.String("run_number", run.RunNumber), zap.Error(err))
		return RunResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return RunResponse{}, err
	}

	s.logger.Info("payroll run created",
		zap.String("request_id", meta.RequestID),
		zap.String("run_id", run.ID.String()),
		zap.String("run_number", run.RunNumber),
		zap.Int("employees", len(employeeIDs)),
	)
	return mapRun(*run), nil
}

// resolveEmployees returns the sorted run scope. An empty request means
// every active employee.
func (s *service) resolveEmployees(ctx context.Context, companyID string, requested []string) ([]string, error) {
	var found []compensation.Employee
	var err error
	if len(requested) == 0 {
		found, err = s.employees.ListActive(ctx, companyID)
	} else {
		requested = dedupe(requested)
		found, err = s.employees.FindByIDs(ctx, companyID, requested)
	}
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(found))
	known := make(map[string]struct{}, len(found))
	for _, e := range found {
		ids = append(ids, e.ID)
		known[e.ID] = struct{}{}
	}

	var unknown []string
	for _, id := range requested {
		if _, ok := known[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return nil, payrollrunerrors.ErrUnknownEmployees.WithDetails(unknown)
	}
	if len(ids) == 0 {
		return nil, payrollrunerrors.ErrNoEmployees
	}

	sort.Strings(ids)
	return ids, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *service) ListRuns(ctx context.Context, companyID string) ([]RunResponse, error) {
	runs, err := s.repo.FindAll(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	out := make([]RunResponse, len(runs))
	for i, r := range runs {
		out[i] = mapRun(r)
	}
	return out, nil
}

func (s *service) GetRun(ctx context.Context, companyID, id string) (RunResponse, error) {
	run, err := s.findRun(ctx, s.repo, companyID, id)
	if err != nil {
		return RunResponse{}, err
	}
	return mapRun(*run), nil
}

func (s *service) Validate(ctx context.Context, companyID, id string) (compensation.ValidationResult, error) {
	run, err := s.findRun(ctx, s.repo, companyID, id)
	if err != nil {
		return compensation.ValidationResult{}, err
	}
	_, _, result, err := s.evaluate(ctx, companyID, *run)
	return result, err
}

// evaluate loads the run scope, computes breakdowns and validates the
// batch.
func (s *service) evaluate(ctx context.Context, companyID string, run Run) ([]compensation.Employee, map[string]compensation.Breakdown, compensation.ValidationResult, error) {
	employees, err := s.employees.FindByIDs(ctx, companyID, run.EmployeeIDs)
	if err != nil {
		return nil, nil, compensation.ValidationResult{}, err
	}
	breakdowns, err := s.breakdowns.ComputeBreakdowns(ctx, companyID, employees)
	if err != nil {
		return nil, nil, compensation.ValidationResult{}, err
	}

	assigned := make([]string, 0, len(breakdowns))
	for id := range breakdowns {
		assigned = append(assigned, id)
	}
	found := make(map[string]struct{}, len(employees))
	for _, e := range employees {
		found[e.ID] = struct{}{}
	}
	var unresolved []string
	for _, id := range run.EmployeeIDs {
		if _, ok := found[id]; !ok {
			unresolved = append(unresolved, id)
		}
	}

	result := compensation.ValidatePayrollRun(compensation.PayrollBatch{
		Employees:             employees,
		AssignedEmployeeIDs:   assigned,
		UnresolvedEmployeeIDs: unresolved,
	})
	return employees, breakdowns, result, nil
}

func (s *service) Finalize(ctx context.Context, companyID, id string, req FinalizeRequest) (FinalizeResponse, error) {
	meta := contextutil.ExtractMetadata(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return FinalizeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if _, err := uuid.Parse(id); err != nil {
		return FinalizeResponse{}, payrollrunerrors.ErrInvalidID
	}
	run, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		return FinalizeResponse{}, mapRepositoryError(err)
	}
	if run.Status != StatusDraft {
		return FinalizeResponse{}, payrollrunerrors.ErrRunNotDraft.WithDetails(map[string]string{
			"current": run.Status,
		})
	}

	employees, breakdowns, result, err := s.evaluate(ctx, companyID, *run)
	if err != nil {
		return FinalizeResponse{}, err
	}
	if result.Blocks(req.ContinueWithWarnings) {
		s.logger.Warn("payroll finalize blocked",
			zap.String("request_id", meta.RequestID),
			zap.String("run_id", id),
			zap.Int("issues", len(result.Issues)),
		)
		return FinalizeResponse{}, payrollrunerrors.ErrFinalizeBlocked.WithDetails(result.Issues)
	}

	now := s.now()
	run.Lines = buildLines(run.ID, employees, breakdowns, now)
	run.TotalGross, run.TotalDeductions, run.TotalNet = 0, 0, 0
	for _, l := range run.Lines {
		run.TotalGross += l.GrossEarnings
		run.TotalDeductions += l.TotalDeductions
		run.TotalNet += l.NetSalary
	}
	run.Status = StatusFinalized
	run.FinalizedAt = &now
	run.FinalizedBy = &meta.ActorID
	run.UpdatedAt = now

	if err := qtx.Finalize(ctx, run); err != nil {
		s.logger.Error("finalize payroll run failed", zap.String("run_id", id), zap.Error(err))
		return FinalizeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.PayrollRunFinalizedEvent{
			EventType:   events.EventPayrollRunFinalized,
			RequestID:   meta.RequestID,
			RunID:       id,
			RunNumber:   run.RunNumber,
			CompanyID:   companyID,
			PeriodMonth: run.PeriodMonth,
			LineCount:   len(run.Lines),
			TotalNet:    run.TotalNet,
			FinalizedBy: meta.ActorID,
			OccurredAt:  now,
		}
		outboxEvent, err := kafka.NewOutboxEvent(meta.RequestID, "payroll_run", id,
			event.EventType, events.PayrollRunFinalizedTopic, event)
		if err != nil {
			return FinalizeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			s.logger.Error("payroll finalize outbox persist failed", zap.String("run_id", id), zap.Error(err))
			return FinalizeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return FinalizeResponse{}, err
	}

	s.logger.Info("payroll run finalized",
		zap.String("request_id", meta.RequestID),
		zap.String("run_id", id),
		zap.String("actor", meta.ActorID),
		zap.Int("lines", len(run.Lines)),
		zap.Int64("total_net", run.TotalNet),
		zap.Bool("with_warnings", !result.OK),
	)
	return FinalizeResponse{Run: mapRun(*run), Validation: result}, nil
}

// buildLines emits one line per employee that has a breakdown, in the
// employee order given.
func buildLines(runID uuid.UUID, employees []compensation.Employee, breakdowns map[string]compensation.Breakdown, now time.Time) []RunLine {
	lines := make([]RunLine, 0, len(breakdowns))
	for _, e := range employees {
		b, ok := breakdowns[e.ID]
		if !ok {
			continue
		}
		empID, err := uuid.Parse(e.ID)
		if err != nil {
			continue
		}
		components := make([]LineComponent, len(b.Components))
		for i, c := range b.Components {
			components[i] = LineComponent{
				Name:   c.Name,
				Type:   string(c.Type),
				Value:  c.Value,
				Source: string(c.Source),
			}
		}
		lines = append(lines, RunLine{
			ID:              uuid.New(),
			RunID:           runID,
			EmployeeID:      empID,
			EmployeeName:    e.Name,
			Department:      e.Department,
			StructureVer:    b.Version,
			Components:      components,
			GrossEarnings:   b.GrossEarnings,
			TotalDeductions: b.TotalDeductions,
			NetSalary:       b.NetSalary,
			AnnualCTC:       b.AnnualCTC,
			CreatedAt:       now,
		})
	}
	return lines
}

func (s *service) findRun(ctx context.Context, repo Repository, companyID, id string) (*Run, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollrunerrors.ErrInvalidID
	}
	run, err := repo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return run, nil
}
