package bonus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	bonuserrors "go-comp/internal/bonus/errors"
	"go-comp/internal/compensation"
	"go-comp/internal/events"
	"go-comp/internal/formula"
	"go-comp/internal/messaging/kafka"
	"go-comp/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EmployeeSource supplies calculation snapshots of employees.
type EmployeeSource interface {
	ListActive(ctx context.Context, companyID string) ([]compensation.Employee, error)
	FindByIDs(ctx context.Context, companyID string, ids []string) ([]compensation.Employee, error)
}

type Options struct {
	DefaultCurrency    string
	StrictPlaceholders bool
	Now                func() time.Time
}

//go:generate mockgen -source=bonus_service.go -destination=mock/bonus_service_mock.go -package=mock
type Service interface {
	CreateStructure(ctx context.Context, companyID string, req CreateStructureRequest) (StructureResponse, error)
	ListStructures(ctx context.Context, companyID string) ([]StructureResponse, error)
	GetStructure(ctx context.Context, companyID, id string) (StructureResponse, error)

	CreateCycle(ctx context.Context, companyID string, req CreateCycleRequest) (CycleResponse, error)
	ListCycles(ctx context.Context, companyID string) ([]CycleResponse, error)
	GetCycle(ctx context.Context, companyID, id string) (CycleResponse, error)
	ActivateCycle(ctx context.Context, companyID, id string) (CycleResponse, error)
	ArchiveCycle(ctx context.Context, companyID, id string) (CycleResponse, error)

	AssignEmployees(ctx context.Context, companyID, cycleID string, req AssignEmployeesRequest) (AssignEmployeesResponse, error)
	ListAssignments(ctx context.Context, companyID, cycleID string) ([]AssignmentResponse, error)
	UpdatePerformance(ctx context.Context, companyID, assignmentID string, req UpdatePerformanceRequest) (AssignmentResponse, error)
	SetOverride(ctx context.Context, companyID, assignmentID string, req SetOverrideRequest) (AssignmentResponse, error)
	SetApproval(ctx context.Context, companyID, assignmentID string, req SetApprovalRequest) (AssignmentResponse, error)
	Recalculate(ctx context.Context, companyID, cycleID string) (RecalculateResponse, error)
	RecalculateForEmployee(ctx context.Context, companyID, employeeID string) (int, error)

	ValidateRelease(ctx context.Context, companyID, cycleID string) (compensation.ValidationResult, error)
	Release(ctx context.Context, companyID, cycleID string, req ReleaseRequest) (ReleaseResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeSource
	outbox    kafka.OutboxRepository
	opts      Options
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees EmployeeSource,
	outboxRepo kafka.OutboxRepository,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("bonus.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("bonus.service")
	}
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = "INR"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outboxRepo,
		opts:      opts,
		logger:    l,
	}
}

func (s *service) now() time.Time { return s.opts.Now().UTC() }

func (s *service) CreateStructure(ctx context.Context, companyID string, req CreateStructureRequest) (StructureResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return StructureResponse{}, bonuserrors.ErrInvalidID
	}

	overrideAllowed := true
	if req.OverrideAllowed != nil {
		overrideAllowed = *req.OverrideAllowed
	}

	entity := &Structure{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		Name:            strings.TrimSpace(req.Name),
		CalculationMode: req.CalculationMode,
		Value:           req.Value,
		MinBonus:        req.MinBonus,
		MaxBonus:        req.MaxBonus,
		OverrideAllowed: overrideAllowed,
	}
	if req.CalculationMode == string(compensation.ModeFormula) {
		entity.Formula = strings.TrimSpace(req.Formula)
	}

	if err := compensation.ValidateStructure(entity.ToCompensation()); err != nil {
		if s.opts.StrictPlaceholders || !errors.Is(err, formula.ErrUnknownPlaceholder) {
			s.logger.Warn("create bonus structure rejected", zap.String("name", entity.Name), zap.Error(err))
			return StructureResponse{}, err
		}
	}

	if err := s.repo.CreateStructure(ctx, entity); err != nil {
		s.logger.Error("create bonus structure failed", zap.Error(err))
		return StructureResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("bonus structure created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("structure_id", entity.ID.String()),
		zap.String("mode", entity.CalculationMode),
	)
	return mapStructure(*entity), nil
}

func (s *service) ListStructures(ctx context.Context, companyID string) ([]StructureResponse, error) {
	rows, err := s.repo.FindStructures(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	out := make([]StructureResponse, len(rows))
	for i, r := range rows {
		out[i] = mapStructure(r)
	}
	return out, nil
}

func (s *service) GetStructure(ctx context.Context, companyID, id string) (StructureResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return StructureResponse{}, bonuserrors.ErrInvalidID
	}
	row, err := s.repo.FindStructureByID(ctx, companyID, id)
	if err != nil {
		return StructureResponse{}, mapStructureError(err)
	}
	return mapStructure(*row), nil
}

func (s *service) CreateCycle(ctx context.Context, companyID string, req CreateCycleRequest) (CycleResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return CycleResponse{}, bonuserrors.ErrInvalidID
	}

	start, errStart := time.Parse(dateLayout, req.PeriodStart)
	end, errEnd := time.Parse(dateLayout, req.PeriodEnd)
	if errStart != nil || errEnd != nil || end.Before(start) {
		return CycleResponse{}, bonuserrors.ErrInvalidPeriod
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = s.opts.DefaultCurrency
	}

	cycle := &Cycle{
		ID:                    uuid.New(),
		CompanyID:             companyUUID,
		Name:                  strings.TrimSpace(req.Name),
		PeriodStart:           start,
		PeriodEnd:             end,
		Currency:              currency,
		TotalBudget:           req.TotalBudget,
		MaxBonusCap:           req.MaxBonusCap,
		MinEligibilityPercent: req.MinEligibilityPercent,
		Status:                string(compensation.CycleDraft),
	}

	if req.DefaultStructureID != "" {
		if _, err := s.repo.FindStructureByID(ctx, companyID, req.DefaultStructureID); err != nil {
			return CycleResponse{}, mapStructureError(err)
		}
		cycle.DefaultStructureID = uuidPtr(req.DefaultStructureID)
	}

	if err := s.repo.CreateCycle(ctx, cycle); err != nil {
		s.logger.Error("create bonus cycle failed", zap.Error(err))
		return CycleResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("bonus cycle created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("cycle_id", cycle.ID.String()),
	)
	return mapCycle(*cycle, nil), nil
}

func (s *service) ListCycles(ctx context.Context, companyID string) ([]CycleResponse, error) {
	rows, err := s.repo.FindCycles(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	out := make([]CycleResponse, len(rows))
	for i, r := range rows {
		out[i] = mapCycle(r, nil)
	}
	return out, nil
}

func (s *service) GetCycle(ctx context.Context, companyID, id string) (CycleResponse, error) {
	cycle, err := s.findCycle(ctx, s.repo, companyID, id)
	if err != nil {
		return CycleResponse{}, err
	}
	assignments, err := s.repo.FindAssignmentsByCycle(ctx, companyID, id)
	if err != nil {
		return CycleResponse{}, mapRepositoryError(err)
	}
	return mapCycle(*cycle, assignments), nil
}

func (s *service) ActivateCycle(ctx context.Context, companyID, id string) (CycleResponse, error) {
	return s.transitionCycle(ctx, companyID, id, compensation.CycleDraft, compensation.CycleActive)
}

func (s *service) ArchiveCycle(ctx context.Context, companyID, id string) (CycleResponse, error) {
	return s.transitionCycle(ctx, companyID, id, compensation.CycleClosed, compensation.CycleArchived)
}

func (s *service) transitionCycle(ctx context.Context, companyID, id string, from, to compensation.CycleStatus) (CycleResponse, error) {
	cycle, err := s.findCycle(ctx, s.repo, companyID, id)
	if err != nil {
		return CycleResponse{}, err
	}
	if compensation.CycleStatus(cycle.Status) != from {
		return CycleResponse{}, bonuserrors.ErrInvalidCycleTransition.WithDetails(map[string]string{
			"current": cycle.Status,
			"target":  string(to),
		})
	}

	cycle.Status = string(to)
	if err := s.repo.UpdateCycle(ctx, cycle); err != nil {
		s.logger.Error("update bonus cycle status failed", zap.String("cycle_id", id), zap.Error(err))
		return CycleResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("bonus cycle status changed",
		zap.String("cycle_id", id),
		zap.String("from", string(from)),
		zap.String("to", string(to)),
	)
	return mapCycle(*cycle, nil), nil
}

func (s *service) AssignEmployees(ctx context.Context, companyID, cycleID string, req AssignEmployeesRequest) (AssignEmployeesResponse, error) {
	actor := contextutil.GetActorID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("assign employees begin tx failed", zap.Error(err))
		return AssignEmployeesResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	cycle, err := s.findOpenCycle(ctx, qtx, companyID, cycleID)
	if err != nil {
		return AssignEmployeesResponse{}, err
	}

	structureID := req.StructureID
	if structureID == "" {
		structureID = uuidString(cycle.DefaultStructureID)
	}
	if structureID == "" {
		return AssignEmployeesResponse{}, bonuserrors.ErrStructureRequired
	}
	structure, err := qtx.FindStructureByID(ctx, companyID, structureID)
	if err != nil {
		return AssignEmployeesResponse{}, mapStructureError(err)
	}

	existing, err := qtx.FindAssignmentsByCycle(ctx, companyID, cycleID)
	if err != nil {
		return AssignEmployeesResponse{}, mapRepositoryError(err)
	}
	assigned := make(map[string]struct{}, len(existing))
	for _, a := range existing {
		assigned[a.EmployeeID.String()] = struct{}{}
	}

	ids := make([]string, 0, len(req.Employees))
	for _, in := range req.Employees {
		ids = append(ids, in.EmployeeID)
	}
	emps, err := s.employees.FindByIDs(ctx, companyID, ids)
	if err != nil {
		return AssignEmployeesResponse{}, err
	}
	index := compensation.IndexEmployees(emps)
	var unknown []string
	for _, id := range ids {
		if _, ok := index[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return AssignEmployeesResponse{}, bonuserrors.ErrUnknownEmployees.WithDetails(unknown)
	}

	calc := compensation.Calculator{
		Employees:  index,
		Structures: compensation.IndexStructures([]compensation.Structure{structure.ToCompensation()}),
	}
	compCycle := cycle.ToCompensation()
	now := s.now()

	resp := AssignEmployeesResponse{Created: []AssignmentResponse{}, SkippedIDs: []string{}}
	var rows []Assignment
	for _, in := range req.Employees {
		if _, dup := assigned[in.EmployeeID]; dup {
			resp.SkippedIDs = append(resp.SkippedIDs, in.EmployeeID)
			continue
		}
		assigned[in.EmployeeID] = struct{}{}

		row := Assignment{
			ID:          uuid.New(),
			CompanyID:   cycle.CompanyID,
			CycleID:     cycle.ID,
			EmployeeID:  uuid.MustParse(in.EmployeeID),
			StructureID: &structure.ID,
		}
		ca := row.ToCompensation()
		ca.Target = in.Target
		ca.Achievement = in.Achievement
		ca.ApprovalStatus = compensation.ApprovalPending
		ca = calc.Recompute(ca, compCycle)
		ca.AppendAudit(now, actor, fmt.Sprintf("assigned to %s, amount %d", structure.Name, ca.FinalAmount))
		row.apply(ca)
		rows = append(rows, row)
	}

	if err := qtx.CreateAssignments(ctx, rows); err != nil {
		s.logger.Error("create bonus assignments failed", zap.Error(err))
		return AssignEmployeesResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("assign employees commit failed", zap.Error(err))
		return AssignEmployeesResponse{}, err
	}

	for _, r := range rows {
		resp.Created = append(resp.Created, mapAssignment(r))
	}
	s.logger.Info("employees assigned to bonus cycle",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("cycle_id", cycleID),
		zap.Int("created", len(rows)),
		zap.Int("skipped", len(resp.SkippedIDs)),
	)
	return resp, nil
}

func (s *service) ListAssignments(ctx context.Context, companyID, cycleID string) ([]AssignmentResponse, error) {
	if _, err := s.findCycle(ctx, s.repo, companyID, cycleID); err != nil {
		return nil, err
	}
	rows, err := s.repo.FindAssignmentsByCycle(ctx, companyID, cycleID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	out := make([]AssignmentResponse, len(rows))
	for i, r := range rows {
		out[i] = mapAssignment(r)
	}
	return out, nil
}

// assignmentEdit loads an assignment and its open cycle inside tx, lets fn
// change the calculation snapshot, then persists fields and new audits.
func (s *service) assignmentEdit(
	ctx context.Context,
	companyID, assignmentID string,
	fn func(qtx Repository, cycle *Cycle, a *compensation.Assignment) error,
) (AssignmentResponse, error) {
	if _, err := uuid.Parse(assignmentID); err != nil {
		return AssignmentResponse{}, bonuserrors.ErrInvalidID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	row, err := qtx.FindAssignmentByID(ctx, companyID, assignmentID)
	if err != nil {
		return AssignmentResponse{}, mapAssignmentError(err)
	}
	cycle, err := s.findOpenCycle(ctx, qtx, companyID, row.CycleID.String())
	if err != nil {
		return AssignmentResponse{}, err
	}

	ca := row.ToCompensation()
	if err := fn(qtx, cycle, &ca); err != nil {
		return AssignmentResponse{}, err
	}

	added := row.apply(ca)
	if err := qtx.SaveAssignment(ctx, row); err != nil {
		s.logger.Error("save bonus assignment failed", zap.String("assignment_id", assignmentID), zap.Error(err))
		return AssignmentResponse{}, mapRepositoryError(err)
	}
	if err := qtx.AppendAudits(ctx, added); err != nil {
		s.logger.Error("append bonus audit failed", zap.String("assignment_id", assignmentID), zap.Error(err))
		return AssignmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}
	return mapAssignment(*row), nil
}

func (s *service) calculatorFor(ctx context.Context, qtx Repository, companyID string, employeeIDs []string) (compensation.Calculator, error) {
	structures, err := qtx.FindStructures(ctx, companyID)
	if err != nil {
		return compensation.Calculator{}, mapRepositoryError(err)
	}
	list := make([]compensation.Structure, len(structures))
	for i, st := range structures {
		list[i] = st.ToCompensation()
	}
	emps, err := s.employees.FindByIDs(ctx, companyID, employeeIDs)
	if err != nil {
		return compensation.Calculator{}, err
	}
	return compensation.Calculator{
		Employees:  compensation.IndexEmployees(emps),
		Structures: compensation.IndexStructures(list),
	}, nil
}

func (s *service) UpdatePerformance(ctx context.Context, companyID, assignmentID string, req UpdatePerformanceRequest) (AssignmentResponse, error) {
	actor := contextutil.GetActorID(ctx)
	return s.assignmentEdit(ctx, companyID, assignmentID, func(qtx Repository, cycle *Cycle, a *compensation.Assignment) error {
		if req.StructureID != "" {
			if _, err := qtx.FindStructureByID(ctx, companyID, req.StructureID); err != nil {
				return mapStructureError(err)
			}
			a.StructureID = req.StructureID
		}
		if req.Target != nil {
			a.Target = req.Target
		}
		if req.Achievement != nil {
			a.Achievement = req.Achievement
		}
		if req.Notes != nil {
			a.Notes = *req.Notes
		}

		calc, err := s.calculatorFor(ctx, qtx, companyID, []string{a.EmployeeID})
		if err != nil {
			return err
		}
		before := a.FinalAmount
		*a = calc.Recompute(*a, cycle.ToCompensation())
		a.AppendAudit(s.now(), actor, fmt.Sprintf("performance updated, final %d -> %d", before, a.FinalAmount))
		return nil
	})
}

func (s *service) SetOverride(ctx context.Context, companyID, assignmentID string, req SetOverrideRequest) (AssignmentResponse, error) {
	actor := contextutil.GetActorID(ctx)
	return s.assignmentEdit(ctx, companyID, assignmentID, func(qtx Repository, cycle *Cycle, a *compensation.Assignment) error {
		compCycle := cycle.ToCompensation()

		calc, err := s.calculatorFor(ctx, qtx, companyID, []string{a.EmployeeID})
		if err != nil {
			return err
		}
		structure, found := calc.StructureFor(*a, compCycle)
		if found && !structure.OverrideAllowed {
			return bonuserrors.ErrOverrideNotAllowed
		}

		a.OverrideAmount = req.Amount
		a.FinalAmount = compensation.ResolveFinal(a.AutoAmount, a.OverrideAmount, structure, compCycle)
		a.ApprovalStatus = compensation.ApprovalPending

		note := "override cleared"
		if req.Amount != nil {
			note = fmt.Sprintf("override set to %d", *req.Amount)
		}
		if req.Note != "" {
			note += ": " + req.Note
		}
		a.AppendAudit(s.now(), actor, note)
		return nil
	})
}

func (s *service) SetApproval(ctx context.Context, companyID, assignmentID string, req SetApprovalRequest) (AssignmentResponse, error) {
	status := compensation.ApprovalStatus(req.Status)
	if !status.Valid() {
		return AssignmentResponse{}, bonuserrors.ErrInvalidApprovalStatus
	}
	actor := contextutil.GetActorID(ctx)
	return s.assignmentEdit(ctx, companyID, assignmentID, func(_ Repository, _ *Cycle, a *compensation.Assignment) error {
		note := fmt.Sprintf("approval %s -> %s", a.ApprovalStatus, status)
		if req.Note != "" {
			note += ": " + req.Note
		}
		a.ApprovalStatus = status
		a.AppendAudit(s.now(), actor, note)
		return nil
	})
}

func (s *service) Recalculate(ctx context.Context, companyID, cycleID string) (RecalculateResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecalculateResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	cycle, err := s.findOpenCycle(ctx, qtx, companyID, cycleID)
	if err != nil {
		return RecalculateResponse{}, err
	}
	rows, err := qtx.FindAssignmentsByCycle(ctx, companyID, cycleID)
	if err != nil {
		return RecalculateResponse{}, mapRepositoryError(err)
	}

	updated, err := s.recompute(ctx, qtx, companyID, *cycle, rows)
	if err != nil {
		return RecalculateResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return RecalculateResponse{}, err
	}

	s.logger.Info("bonus cycle recalculated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("cycle_id", cycleID),
		zap.Int("assignments", len(rows)),
		zap.Int("updated", updated),
	)
	return RecalculateResponse{Updated: updated}, nil
}

func (s *service) RecalculateForEmployee(ctx context.Context, companyID, employeeID string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	rows, err := qtx.FindOpenAssignmentsByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return 0, mapRepositoryError(err)
	}

	byCycle := make(map[uuid.UUID][]Assignment)
	var order []uuid.UUID
	for _, r := range rows {
		if _, seen := byCycle[r.CycleID]; !seen {
			order = append(order, r.CycleID)
		}
		byCycle[r.CycleID] = append(byCycle[r.CycleID], r)
	}

	total := 0
	for _, cycleID := range order {
		cycle, err := s.findCycle(ctx, qtx, companyID, cycleID.String())
		if err != nil {
			return 0, err
		}
		n, err := s.recompute(ctx, qtx, companyID, *cycle, byCycle[cycleID])
		if err != nil {
			return 0, err
		}
		total += n
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	s.logger.Info("employee bonus assignments recalculated",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", employeeID),
		zap.Int("cycles", len(order)),
		zap.Int("updated", total),
	)
	return total, nil
}

// recompute refreshes amounts and saves the rows whose amounts moved. A
// system audit entry is written only when the final amount changes.
func (s *service) recompute(ctx context.Context, qtx Repository, companyID string, cycle Cycle, rows []Assignment) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.EmployeeID.String()
	}
	calc, err := s.calculatorFor(ctx, qtx, companyID, ids)
	if err != nil {
		return 0, err
	}

	compCycle := cycle.ToCompensation()
	now := s.now()
	updated := 0
	for i := range rows {
		row := &rows[i]
		before := row.ToCompensation()
		after := calc.Recompute(before, compCycle)
		if after.AutoAmount == before.AutoAmount && after.FinalAmount == before.FinalAmount {
			continue
		}
		if after.FinalAmount != before.FinalAmount {
			after.AppendAudit(now, contextutil.SystemActor,
				fmt.Sprintf("recalculated, final %d -> %d", before.FinalAmount, after.FinalAmount))
		}

		added := row.apply(after)
		if err := qtx.SaveAssignment(ctx, row); err != nil {
			return 0, mapRepositoryError(err)
		}
		if err := qtx.AppendAudits(ctx, added); err != nil {
			return 0, err
		}
		updated++
	}
	return updated, nil
}

func (s *service) buildReleaseBatch(ctx context.Context, qtx Repository, companyID string, cycle Cycle) (compensation.ReleaseBatch, error) {
	rows, err := qtx.FindAssignmentsByCycle(ctx, companyID, cycle.ID.String())
	if err != nil {
		return compensation.ReleaseBatch{}, mapRepositoryError(err)
	}
	emps, err := s.employees.ListActive(ctx, companyID)
	if err != nil {
		return compensation.ReleaseBatch{}, err
	}

	batch := compensation.ReleaseBatch{Cycle: cycle.ToCompensation()}
	for _, e := range emps {
		batch.EmployeeIDs = append(batch.EmployeeIDs, e.ID)
	}
	for _, r := range rows {
		batch.Assignments = append(batch.Assignments, r.ToCompensation())
	}
	return batch, nil
}

func (s *service) ValidateRelease(ctx context.Context, companyID, cycleID string) (compensation.ValidationResult, error) {
	cycle, err := s.findCycle(ctx, s.repo, companyID, cycleID)
	if err != nil {
		return compensation.ValidationResult{}, err
	}
	batch, err := s.buildReleaseBatch(ctx, s.repo, companyID, *cycle)
	if err != nil {
		return compensation.ValidationResult{}, err
	}
	return compensation.ValidateRelease(batch), nil
}

func (s *service) Release(ctx context.Context, companyID, cycleID string, req ReleaseRequest) (ReleaseResponse, error) {
	meta := contextutil.ExtractMetadata(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ReleaseResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	cycle, err := s.findCycle(ctx, qtx, companyID, cycleID)
	if err != nil {
		return ReleaseResponse{}, err
	}
	if compensation.CycleStatus(cycle.Status) != compensation.CycleActive {
		return ReleaseResponse{}, bonuserrors.ErrInvalidCycleTransition.WithDetails(map[string]string{
			"current": cycle.Status,
			"target":  string(compensation.CycleClosed),
		})
	}

	batch, err := s.buildReleaseBatch(ctx, qtx, companyID, *cycle)
	if err != nil {
		return ReleaseResponse{}, err
	}
	result := compensation.ValidateRelease(batch)
	if result.Blocks(req.ContinueWithWarnings) {
		s.logger.Warn("bonus release blocked",
			zap.String("request_id", meta.RequestID),
			zap.String("cycle_id", cycleID),
			zap.Int("issues", len(result.Issues)),
		)
		return ReleaseResponse{}, bonuserrors.ErrReleaseBlocked.WithDetails(result.Issues)
	}

	// rejected assignments are never paid, even when released with warnings
	var total int64
	paid := 0
	for _, a := range batch.Assignments {
		if a.ApprovalStatus == compensation.ApprovalRejected {
			continue
		}
		total += a.FinalAmount
		paid++
	}

	now := s.now()
	cycle.Status = string(compensation.CycleClosed)
	cycle.ReleasedAt = &now
	cycle.ReleasedBy = &meta.ActorID
	if err := qtx.UpdateCycle(ctx, cycle); err != nil {
		s.logger.Error("close bonus cycle failed", zap.String("cycle_id", cycleID), zap.Error(err))
		return ReleaseResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.BonusCycleReleasedEvent{
			EventType:       events.EventBonusCycleReleased,
			RequestID:       meta.RequestID,
			CycleID:         cycleID,
			CompanyID:       companyID,
			Currency:        cycle.Currency,
			AssignmentCount: paid,
			TotalPayout:     total,
			ReleasedBy:      meta.ActorID,
			WithWarnings:    !result.OK,
			OccurredAt:      now,
		}
		outboxEvent, err := kafka.NewOutboxEvent(meta.RequestID, "bonus_cycle", cycleID,
			event.EventType, events.BonusCycleReleasedTopic, event)
		if err != nil {
			return ReleaseResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			s.logger.Error("bonus release outbox persist failed", zap.String("cycle_id", cycleID), zap.Error(err))
			return ReleaseResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ReleaseResponse{}, err
	}

	s.logger.Info("bonus cycle released",
		zap.String("request_id", meta.RequestID),
		zap.String("cycle_id", cycleID),
		zap.String("actor", meta.ActorID),
		zap.Int64("total_payout", total),
		zap.Bool("with_warnings", !result.OK),
	)
	return ReleaseResponse{Cycle: mapCycle(*cycle, nil), Validation: result}, nil
}

func (s *service) findCycle(ctx context.Context, repo Repository, companyID, id string) (*Cycle, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, bonuserrors.ErrInvalidID
	}
	cycle, err := repo.FindCycleByID(ctx, companyID, id)
	if err != nil {
		return nil, mapCycleError(err)
	}
	return cycle, nil
}

func (s *service) findOpenCycle(ctx context.Context, repo Repository, companyID, id string) (*Cycle, error) {
	cycle, err := s.findCycle(ctx, repo, companyID, id)
	if err != nil {
		return nil, err
	}
	if !compensation.CycleStatus(cycle.Status).Open() {
		return nil, bonuserrors.ErrCycleClosed
	}
	return cycle, nil
}
