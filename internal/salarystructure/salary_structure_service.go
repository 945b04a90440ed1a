package salarystructure

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-comp/internal/compensation"
	salarystructureerrors "go-comp/internal/salarystructure/errors"
	"go-comp/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// EmployeeSource supplies the base salary used for breakdowns.
type EmployeeSource interface {
	FindByIDs(ctx context.Context, companyID string, ids []string) ([]compensation.Employee, error)
}

//go:generate mockgen -source=salary_structure_service.go -destination=mock/salary_structure_service_mock.go -package=mock
type Service interface {
	CreateStructure(ctx context.Context, companyID string, req CreateStructureRequest) (StructureResponse, error)
	AddVersion(ctx context.Context, companyID, structureID string, req AddVersionRequest) (StructureResponse, error)
	ListStructures(ctx context.Context, companyID string) ([]StructureResponse, error)
	GetStructure(ctx context.Context, companyID, id string) (StructureResponse, error)
	AssignEmployee(ctx context.Context, companyID, employeeID string, req AssignEmployeeRequest) (AssignmentResponse, error)
	GetAssignment(ctx context.Context, companyID, employeeID string) (AssignmentResponse, error)
	GetBreakdown(ctx context.Context, companyID, employeeID string) (BreakdownResponse, error)
	ComputeBreakdowns(ctx context.Context, companyID string, employees []compensation.Employee) (map[string]compensation.Breakdown, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeSource
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees EmployeeSource, logger ...*zap.Logger) Service {
	l := zap.L().Named("salarystructure.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarystructure.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) effectiveDate(v string) (time.Time, error) {
	if v == "" {
		y, m, d := s.now().UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, salarystructureerrors.ErrInvalidEffectiveDate
	}
	return t, nil
}

func validateSpecs(specs []ComponentSpec) error {
	components := make([]compensation.Component, len(specs))
	for i, c := range specs {
		components[i] = c.toCompensation()
	}
	return compensation.ValidateComponents(components)
}

func (s *service) CreateStructure(ctx context.Context, companyID string, req CreateStructureRequest) (StructureResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return StructureResponse{}, salarystructureerrors.ErrInvalidID
	}
	if err := validateSpecs(req.Components); err != nil {
		return StructureResponse{}, err
	}
	effective, err := s.effectiveDate(req.EffectiveFrom)
	if err != nil {
		return StructureResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	structure := &Structure{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Name:      strings.TrimSpace(req.Name),
	}
	structure.Versions = []Version{{
		ID:            uuid.New(),
		StructureID:   structure.ID,
		Version:       1,
		EffectiveFrom: effective,
		Components:    req.Components,
	}}

	if err := qtx.CreateStructure(ctx, structure); err != nil {
		s.logger.Error("create salary structure failed", zap.String("name", structure.Name), zap.Error(err))
		return StructureResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return StructureResponse{}, err
	}

	s.logger.Info("salary structure created",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("structure_id", structure.ID.String()),
		zap.Int("components", len(req.Components)),
	)
	return mapStructure(*structure), nil
}

func (s *service) AddVersion(ctx context.Context, companyID, structureID string, req AddVersionRequest) (StructureResponse, error) {
	if _, err := uuid.Parse(structureID); err != nil {
		return StructureResponse{}, salarystructureerrors.ErrInvalidID
	}
	if err := validateSpecs(req.Components); err != nil {
		return StructureResponse{}, err
	}
	effective, err := s.effectiveDate(req.EffectiveFrom)
	if err != nil {
		return StructureResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return StructureResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	structure, err := qtx.FindStructureByID(ctx, companyID, structureID)
	if err != nil {
		return StructureResponse{}, mapStructureError(err)
	}

	version := Version{
		ID:            uuid.New(),
		StructureID:   structure.ID,
		Version:       structure.ToCompensation().LatestVersion() + 1,
		EffectiveFrom: effective,
		Components:    req.Components,
	}
	if err := qtx.CreateVersion(ctx, &version); err != nil {
		s.logger.Error("add salary structure version failed",
			zap.String("structure_id", structureID),
			zap.Int("version", version.Version),
			zap.Error(err),
		)
		return StructureResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return StructureResponse{}, err
	}

	structure.Versions = append(structure.Versions, version)
	s.logger.Info("salary structure version added",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("structure_id", structureID),
		zap.Int("version", version.Version),
	)
	return mapStructure(*structure), nil
}

func (s *service) ListStructures(ctx context.Context, companyID string) ([]StructureResponse, error) {
	structures, err := s.repo.FindStructures(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	res := make([]StructureResponse, len(structures))
	for i, st := range structures {
		res[i] = mapStructure(st)
	}
	return res, nil
}

func (s *service) GetStructure(ctx context.Context, companyID, id string) (StructureResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return StructureResponse{}, salarystructureerrors.ErrInvalidID
	}
	structure, err := s.repo.FindStructureByID(ctx, companyID, id)
	if err != nil {
		return StructureResponse{}, mapStructureError(err)
	}
	return mapStructure(*structure), nil
}

func (s *service) AssignEmployee(ctx context.Context, companyID, employeeID string, req AssignEmployeeRequest) (AssignmentResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AssignmentResponse{}, salarystructureerrors.ErrInvalidID
	}
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AssignmentResponse{}, salarystructureerrors.ErrInvalidID
	}
	effective, err := s.effectiveDate(req.EffectiveFrom)
	if err != nil {
		return AssignmentResponse{}, err
	}

	emps, err := s.employees.FindByIDs(ctx, companyID, []string{employeeID})
	if err != nil {
		return AssignmentResponse{}, err
	}
	if len(emps) == 0 {
		return AssignmentResponse{}, salarystructureerrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	structure, err := qtx.FindStructureByID(ctx, companyID, req.StructureID)
	if err != nil {
		return AssignmentResponse{}, mapStructureError(err)
	}

	version := req.Version
	if version == 0 {
		version = structure.ToCompensation().LatestVersion()
	} else if !hasVersion(*structure, version) {
		return AssignmentResponse{}, salarystructureerrors.ErrVersionNotFound
	}

	assignment := &Assignment{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		EmployeeID:      employeeUUID,
		StructureID:     structure.ID,
		Version:         version,
		Overrides:       req.Overrides,
		AdditionalItems: req.AdditionalItems,
		EffectiveFrom:   effective,
		AssignedBy:      contextutil.GetActorID(ctx),
	}
	if err := qtx.SaveAssignment(ctx, assignment); err != nil {
		s.logger.Error("save salary assignment failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AssignmentResponse{}, mapRepositoryError(err)
	}

	saved, err := qtx.FindAssignmentByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return AssignmentResponse{}, mapAssignmentError(err)
	}

	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	s.logger.Info("salary structure assigned",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", employeeID),
		zap.String("structure_id", structure.ID.String()),
		zap.Int("version", version),
	)
	return mapAssignment(*saved), nil
}

func hasVersion(s Structure, version int) bool {
	for _, v := range s.Versions {
		if v.Version == version {
			return true
		}
	}
	return false
}

func (s *service) GetAssignment(ctx context.Context, companyID, employeeID string) (AssignmentResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AssignmentResponse{}, salarystructureerrors.ErrInvalidID
	}
	a, err := s.repo.FindAssignmentByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return AssignmentResponse{}, mapAssignmentError(err)
	}
	return mapAssignment(*a), nil
}

func (s *service) GetBreakdown(ctx context.Context, companyID, employeeID string) (BreakdownResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return BreakdownResponse{}, salarystructureerrors.ErrInvalidID
	}
	emps, err := s.employees.FindByIDs(ctx, companyID, []string{employeeID})
	if err != nil {
		return BreakdownResponse{}, err
	}
	if len(emps) == 0 {
		return BreakdownResponse{}, salarystructureerrors.ErrEmployeeNotFound
	}

	a, err := s.repo.FindAssignmentByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return BreakdownResponse{}, mapAssignmentError(err)
	}
	structure, err := s.repo.FindStructureByID(ctx, companyID, a.StructureID.String())
	if err != nil {
		return BreakdownResponse{}, mapStructureError(err)
	}

	b := compensation.ComputeComponents(structure.ToCompensation(), a.Version, emps[0].BaseSalary,
		a.overrides(), a.additionalItems())
	return mapBreakdown(emps[0], *structure, b), nil
}

// ComputeBreakdowns returns a breakdown for each employee that has a
// salary assignment. Employees without one are absent from the map.
func (s *service) ComputeBreakdowns(ctx context.Context, companyID string, employees []compensation.Employee) (map[string]compensation.Breakdown, error) {
	ids := make([]string, len(employees))
	for i, e := range employees {
		ids[i] = e.ID
	}

	assignments, err := s.repo.FindAssignmentsByEmployees(ctx, companyID, ids)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	structureIDs := make([]string, 0, len(assignments))
	seen := make(map[string]struct{}, len(assignments))
	for _, a := range assignments {
		id := a.StructureID.String()
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		structureIDs = append(structureIDs, id)
	}
	structures, err := s.repo.FindStructuresByIDs(ctx, companyID, structureIDs)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	byID := make(map[string]compensation.SalaryStructure, len(structures))
	for _, st := range structures {
		byID[st.ID.String()] = st.ToCompensation()
	}

	base := make(map[string]int64, len(employees))
	for _, e := range employees {
		base[e.ID] = e.BaseSalary
	}

	out := make(map[string]compensation.Breakdown, len(assignments))
	for _, a := range assignments {
		empID := a.EmployeeID.String()
		out[empID] = compensation.ComputeComponents(byID[a.StructureID.String()], a.Version, base[empID],
			a.overrides(), a.additionalItems())
	}
	return out, nil
}

func mapStructure(s Structure) StructureResponse {
	res := StructureResponse{
		ID:            s.ID.String(),
		Name:          s.Name,
		LatestVersion: s.ToCompensation().LatestVersion(),
		Versions:      make([]VersionResponse, 0, len(s.Versions)),
	}
	for _, v := range s.Versions {
		res.Versions = append(res.Versions, VersionResponse{
			Version:       v.Version,
			EffectiveFrom: v.EffectiveFrom.Format(dateLayout),
			Components:    v.Components,
		})
	}
	return res
}

func mapAssignment(a Assignment) AssignmentResponse {
	res := AssignmentResponse{
		ID:              a.ID.String(),
		EmployeeID:      a.EmployeeID.String(),
		StructureID:     a.StructureID.String(),
		Version:         a.Version,
		Overrides:       a.Overrides,
		AdditionalItems: a.AdditionalItems,
		EffectiveFrom:   a.EffectiveFrom.Format(dateLayout),
		AssignedBy:      a.AssignedBy,
	}
	if res.Overrides == nil {
		res.Overrides = []OverrideSpec{}
	}
	if res.AdditionalItems == nil {
		res.AdditionalItems = []AdditionalItemSpec{}
	}
	return res
}

func mapBreakdown(emp compensation.Employee, s Structure, b compensation.Breakdown) BreakdownResponse {
	res := BreakdownResponse{
		EmployeeID:      emp.ID,
		StructureID:     s.ID.String(),
		StructureName:   s.Name,
		Version:         b.Version,
		BaseSalary:      emp.BaseSalary,
		Components:      make([]ResolvedComponentResponse, 0, len(b.Components)),
		GrossEarnings:   b.GrossEarnings,
		TotalDeductions: b.TotalDeductions,
		MonthlyTotal:    b.MonthlyTotal,
		AnnualCTC:       b.AnnualCTC,
		NetSalary:       b.NetSalary,
	}
	for _, c := range b.Components {
		res.Components = append(res.Components, ResolvedComponentResponse{
			Name:     c.Name,
			Type:     string(c.Type),
			CalcType: string(c.CalcType),
			Value:    c.Value,
			Source:   string(c.Source),
		})
	}
	return res
}
