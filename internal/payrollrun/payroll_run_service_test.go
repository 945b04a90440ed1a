package payrollrun_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-comp/internal/compensation"
	"go-comp/internal/events"
	"go-comp/internal/messaging/kafka"
	kafkaMock "go-comp/internal/messaging/kafka/mock"
	"go-comp/internal/payrollrun"
	payrollrunerrors "go-comp/internal/payrollrun/errors"
	payrollMock "go-comp/internal/payrollrun/mock"
	"go-comp/internal/shared/apperror"
	"go-comp/internal/shared/contextutil"
	"go-comp/internal/shared/counter"
	counterMock "go-comp/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeRunRepository struct {
	createFn            func(ctx context.Context, run *payrollrun.Run) error
	findAllFn           func(ctx context.Context, companyID string) ([]payrollrun.Run, error)
	findByIDFn          func(ctx context.Context, companyID, id string) (*payrollrun.Run, error)
	findByIDForUpdateFn func(ctx context.Context, companyID, id string) (*payrollrun.Run, error)
	finalizeFn          func(ctx context.Context, run *payrollrun.Run) error
}

func (f *fakeRunRepository) WithTx(*sql.Tx) payrollrun.Repository { return f }

func (f *fakeRunRepository) Create(ctx context.Context, run *payrollrun.Run) error {
	if f.createFn != nil {
		return f.createFn(ctx, run)
	}
	return nil
}

func (f *fakeRunRepository) FindAll(ctx context.Context, companyID string) ([]payrollrun.Run, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeRunRepository) FindByID(ctx context.Context, companyID, id string) (*payrollrun.Run, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRunRepository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*payrollrun.Run, error) {
	if f.findByIDForUpdateFn != nil {
		return f.findByIDForUpdateFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRunRepository) Finalize(ctx context.Context, run *payrollrun.Run) error {
	if f.finalizeFn != nil {
		return f.finalizeFn(ctx, run)
	}
	return nil
}

type serviceDeps struct {
	sqlMock    sqlmock.Sqlmock
	service    payrollrun.Service
	repo       *fakeRunRepository
	counter    *counterMock.MockRepository
	employees  *payrollMock.MockEmployeeSource
	breakdowns *payrollMock.MockBreakdownSource
	outbox     *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	deps := &serviceDeps{
		sqlMock:    sqlMock,
		repo:       &fakeRunRepository{},
		counter:    counterMock.NewMockRepository(ctrl),
		employees:  payrollMock.NewMockEmployeeSource(ctrl),
		breakdowns: payrollMock.NewMockBreakdownSource(ctrl),
		outbox:     kafkaMock.NewMockOutboxRepository(ctrl),
	}
	deps.service = payrollrun.NewService(db, deps.repo, deps.counter, deps.employees, deps.breakdowns, deps.outbox)
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func employeeFixture(name string, complete bool) compensation.Employee {
	e := compensation.Employee{ID: uuid.NewString(), Name: name, Department: "Ops", BaseSalary: 50000}
	if complete {
		e.BankAccountNumber = "001122"
		e.BankIFSC = "HDFC0000001"
		e.PFNumber = "PF-1"
	}
	return e
}

func breakdownFixture(gross, deductions int64) compensation.Breakdown {
	return compensation.Breakdown{
		Version: 2,
		Components: []compensation.ResolvedComponent{
			{Name: "Basic", Type: compensation.Earning, Value: gross, Source: compensation.SourceStructure},
			{Name: "PF", Type: compensation.Deduction, Value: deductions, Source: compensation.SourceStructure},
		},
		GrossEarnings:   gross,
		TotalDeductions: deductions,
		MonthlyTotal:    gross - deductions,
		NetSalary:       gross - deductions,
		AnnualCTC:       (gross - deductions) * 12,
	}
}

func TestPayrollRunService_CreateRun(t *testing.T) {
	companyID := uuid.NewString()
	ctx := contextutil.WithActorID(context.Background(), "payroll-admin")

	t.Run("all active employees when none requested", func(t *testing.T) {
		deps := setupServiceTest(t)
		a, b := employeeFixture("Asha", true), employeeFixture("Bala", true)
		deps.employees.EXPECT().ListActive(gomock.Any(), companyID).Return([]compensation.Employee{a, b}, nil)

		expectTx(t, deps.sqlMock, true)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), companyID, counter.TypePayrollRun).Return(int64(7), nil)

		var created *payrollrun.Run
		deps.repo.createFn = func(_ context.Context, run *payrollrun.Run) error {
			created = run
			return nil
		}

		resp, err := deps.service.CreateRun(ctx, companyID, payrollrun.CreateRunRequest{PeriodMonth: "2026-04"})

		require.NoError(t, err)
		assert.Equal(t, "PR-2026-0007", resp.RunNumber)
		assert.Equal(t, payrollrun.StatusDraft, resp.Status)
		assert.Equal(t, 2, resp.EmployeeCount)
		assert.Equal(t, "payroll-admin", created.CreatedBy)
		assert.ElementsMatch(t, []string{a.ID, b.ID}, created.EmployeeIDs)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee ids", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := employeeFixture("Asha", true)
		missing := uuid.NewString()
		deps.employees.EXPECT().FindByIDs(gomock.Any(), companyID, []string{a.ID, missing}).
			Return([]compensation.Employee{a}, nil)

		_, err := deps.service.CreateRun(ctx, companyID, payrollrun.CreateRunRequest{
			PeriodMonth: "2026-04",
			EmployeeIDs: []string{a.ID, missing, a.ID},
		})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.ErrorIs(t, err, payrollrunerrors.ErrUnknownEmployees)
		assert.Equal(t, []string{missing}, appErr.Details)
	})

	t.Run("no active employees", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().ListActive(gomock.Any(), companyID).Return(nil, nil)

		_, err := deps.service.CreateRun(ctx, companyID, payrollrun.CreateRunRequest{PeriodMonth: "2026-04"})

		assert.ErrorIs(t, err, payrollrunerrors.ErrNoEmployees)
	})

	t.Run("invalid period", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.CreateRun(ctx, companyID, payrollrun.CreateRunRequest{PeriodMonth: "2026-13"})

		assert.ErrorIs(t, err, payrollrunerrors.ErrInvalidPeriod)
	})

	t.Run("counter failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().ListActive(gomock.Any(), companyID).
			Return([]compensation.Employee{employeeFixture("Asha", true)}, nil)
		expectTx(t, deps.sqlMock, false)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().GetNextValue(gomock.Any(), companyID, counter.TypePayrollRun).
			Return(int64(0), errors.New("db down"))

		_, err := deps.service.CreateRun(ctx, companyID, payrollrun.CreateRunRequest{PeriodMonth: "2026-04"})

		assert.EqualError(t, err, "db down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestPayrollRunService_Validate(t *testing.T) {
	companyID := uuid.NewString()
	ctx := context.Background()

	deps := setupServiceTest(t)
	assigned := employeeFixture("Asha", false)
	unassigned := employeeFixture("Bala", true)
	run := &payrollrun.Run{
		ID: uuid.New(), Status: payrollrun.StatusDraft,
		EmployeeIDs: []string{assigned.ID, unassigned.ID},
	}
	deps.repo.findByIDFn = func(context.Context, string, string) (*payrollrun.Run, error) { return run, nil }
	deps.employees.EXPECT().FindByIDs(gomock.Any(), companyID, run.EmployeeIDs).
		Return([]compensation.Employee{assigned, unassigned}, nil)
	deps.breakdowns.EXPECT().ComputeBreakdowns(gomock.Any(), companyID, gomock.Len(2)).
		Return(map[string]compensation.Breakdown{assigned.ID: breakdownFixture(60000, 1800)}, nil)

	result, err := deps.service.Validate(ctx, companyID, run.ID.String())

	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.True(t, result.HasErrors())
	assert.ElementsMatch(t, []compensation.IssueKind{
		compensation.IssueMissingBankDetails,
		compensation.IssueMissingPFID,
		compensation.IssueMissingSalaryAssignment,
	}, result.Kinds())
}

func TestPayrollRunService_ValidateReportsUnresolvedEmployees(t *testing.T) {
	companyID := uuid.NewString()
	ctx := context.Background()

	deps := setupServiceTest(t)
	present := employeeFixture("Asha", true)
	departed := uuid.NewString()
	run := &payrollrun.Run{
		ID: uuid.New(), Status: payrollrun.StatusDraft,
		EmployeeIDs: []string{present.ID, departed},
	}
	deps.repo.findByIDFn = func(context.Context, string, string) (*payrollrun.Run, error) { return run, nil }
	deps.employees.EXPECT().FindByIDs(gomock.Any(), companyID, run.EmployeeIDs).
		Return([]compensation.Employee{present}, nil)
	deps.breakdowns.EXPECT().ComputeBreakdowns(gomock.Any(), companyID, gomock.Len(1)).
		Return(map[string]compensation.Breakdown{present.ID: breakdownFixture(60000, 1800)}, nil)

	result, err := deps.service.Validate(ctx, companyID, run.ID.String())

	require.NoError(t, err)
	assert.False(t, result.OK)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, compensation.IssueEmployeeNotFound, result.Issues[0].Kind)
	assert.Equal(t, departed, result.Issues[0].EmployeeID)
}

func TestPayrollRunService_Finalize(t *testing.T) {
	companyID := uuid.NewString()
	ctx := contextutil.WithRequestID(contextutil.WithActorID(context.Background(), "payroll-admin"), "req-9")

	draftRun := func(ids ...string) *payrollrun.Run {
		return &payrollrun.Run{
			ID: uuid.New(), CompanyID: uuid.MustParse(companyID), RunNumber: "PR-2026-0003",
			PeriodMonth: "2026-04", Status: payrollrun.StatusDraft, EmployeeIDs: ids,
		}
	}

	t.Run("success writes lines totals and outbox event", func(t *testing.T) {
		deps := setupServiceTest(t)
		a, b := employeeFixture("Asha", true), employeeFixture("Bala", true)
		run := draftRun(a.ID, b.ID)
		deps.repo.findByIDForUpdateFn = func(context.Context, string, string) (*payrollrun.Run, error) { return run, nil }
		deps.employees.EXPECT().FindByIDs(gomock.Any(), companyID, run.EmployeeIDs).
			Return([]compensation.Employee{a, b}, nil)
		deps.breakdowns.EXPECT().ComputeBreakdowns(gomock.Any(), companyID, gomock.Any()).
			Return(map[string]compensation.Breakdown{
				a.ID: breakdownFixture(60000, 1800),
				b.ID: breakdownFixture(40000, 1200),
			}, nil)

		expectTx(t, deps.sqlMock, true)
		var finalized *payrollrun.Run
		deps.repo.finalizeFn = func(_ context.Context, r *payrollrun.Run) error {
			finalized = r
			return nil
		}
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e kafka.OutboxEvent) error {
			assert.Equal(t, events.PayrollRunFinalizedTopic, e.Topic)
			assert.Equal(t, "payroll_run", e.AggregateType)
			assert.Equal(t, "req-9", e.RequestID)
			var payload events.PayrollRunFinalizedEvent
			require.NoError(t, json.Unmarshal(e.Payload, &payload))
			assert.Equal(t, 2, payload.LineCount)
			assert.Equal(t, int64(97000), payload.TotalNet)
			return nil
		})

		resp, err := deps.service.Finalize(ctx, companyID, run.ID.String(), payrollrun.FinalizeRequest{})

		require.NoError(t, err)
		assert.True(t, resp.Validation.OK)
		assert.Equal(t, payrollrun.StatusFinalized, resp.Run.Status)
		assert.Equal(t, int64(100000), resp.Run.TotalGross)
		assert.Equal(t, int64(3000), resp.Run.TotalDeductions)
		assert.Equal(t, int64(97000), resp.Run.TotalNet)
		require.Len(t, resp.Run.Lines, 2)
		assert.Equal(t, "Asha", resp.Run.Lines[0].EmployeeName)
		assert.Equal(t, int64(58200*12), resp.Run.Lines[0].AnnualCTC)
		require.NotNil(t, finalized.FinalizedBy)
		assert.Equal(t, "payroll-admin", *finalized.FinalizedBy)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("blocked by missing assignment", func(t *testing.T) {
		deps := setupServiceTest(t)
		a := employeeFixture("Asha", true)
		run := draftRun(a.ID)
		deps.repo.findByIDForUpdateFn = func(context.Context, string, string) (*payrollrun.Run, error) { return run, nil }
		deps.employees.EXPECT().FindByIDs(gomock.Any(), companyID, run.EmployeeIDs).
			Return([]compensation.Employee{a}, nil)
		deps.breakdowns.EXPECT().ComputeBreakdowns(gomock.Any(), companyID, gomock.Any()).
			Return(map[string]compensation.Breakdown{}, nil)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Finalize(ctx, companyID, run.ID.String(), payrollrun.FinalizeRequest{})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeFinalizeBlocked, appErr.Code)
		issues, ok := appErr.Details.([]compensation.ValidationIssue)
		require.True(t, ok)
		require.Len(t, issues, 1)
		assert.Equal(t, compensation.IssueMissingSalaryAssignment, issues[0].Kind)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("continue with warnings skips unassigned employees", func(t *testing.T) {
		deps := setupServiceTest(t)
		a, b := employeeFixture("Asha", false), employeeFixture("Bala", true)
		run := draftRun(a.ID, b.ID)
		deps.repo.findByIDForUpdateFn = func(context.Context, string, string) (*payrollrun.Run, error) { return run, nil }
		deps.employees.EXPECT().FindByIDs(gomock.Any(), companyID, run.EmployeeIDs).
			Return([]compensation.Employee{a, b}, nil)
		deps.breakdowns.EXPECT().ComputeBreakdowns(gomock.Any(), companyID, gomock.Any()).
			Return(map[string]compensation.Breakdown{a.ID: breakdownFixture(60000, 1800)}, nil)
		expectTx(t, deps.sqlMock, true)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		resp, err := deps.service.Finalize(ctx, companyID, run.ID.String(), payrollrun.FinalizeRequest{ContinueWithWarnings: true})

		require.NoError(t, err)
		assert.False(t, resp.Validation.OK)
		require.Len(t, resp.Run.Lines, 1)
		assert.Equal(t, a.ID, resp.Run.Lines[0].EmployeeID)
		assert.Equal(t, int64(58200), resp.Run.TotalNet)
	})

	t.Run("only draft runs finalize", func(t *testing.T) {
		deps := setupServiceTest(t)
		run := draftRun()
		run.Status = payrollrun.StatusFinalized
		deps.repo.findByIDForUpdateFn = func(context.Context, string, string) (*payrollrun.Run, error) { return run, nil }
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Finalize(ctx, companyID, run.ID.String(), payrollrun.FinalizeRequest{})

		assert.ErrorIs(t, err, payrollrunerrors.ErrRunNotDraft)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Finalize(ctx, companyID, uuid.NewString(), payrollrun.FinalizeRequest{})

		assert.ErrorIs(t, err, payrollrunerrors.ErrRunNotFound)
	})
}

func TestPayrollRunService_ExportRegister(t *testing.T) {
	companyID := uuid.NewString()
	ctx := context.Background()

	t.Run("finalized run renders one row per line plus totals", func(t *testing.T) {
		deps := setupServiceTest(t)
		finalizedAt := time.Date(2026, 4, 30, 10, 0, 0, 0, time.UTC)
		run := &payrollrun.Run{
			ID: uuid.New(), RunNumber: "PR-2026-0004", PeriodMonth: "2026-04",
			Status: payrollrun.StatusFinalized, FinalizedAt: &finalizedAt,
			TotalGross: 100000, TotalDeductions: 3000, TotalNet: 97000,
			Lines: []payrollrun.RunLine{
				{EmployeeID: uuid.New(), EmployeeName: "Asha", GrossEarnings: 60000, TotalDeductions: 1800, NetSalary: 58200},
				{EmployeeID: uuid.New(), EmployeeName: "Bala", GrossEarnings: 40000, TotalDeductions: 1200, NetSalary: 38800},
			},
		}
		deps.repo.findByIDFn = func(context.Context, string, string) (*payrollrun.Run, error) { return run, nil }

		buf, filename, err := deps.service.ExportRegister(ctx, companyID, run.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "payroll_register_PR-2026-0004.xlsx", filename)

		f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Register"}, f.GetSheetList())
		header, _ := f.GetCellValue("Register", "C2")
		assert.Equal(t, "Employee Name", header)
		name, _ := f.GetCellValue("Register", "C4")
		assert.Equal(t, "Bala", name)
		label, _ := f.GetCellValue("Register", "C5")
		assert.Equal(t, "Total", label)
		total, _ := f.GetCellValue("Register", "H5", excelize.Options{RawCellValue: true})
		assert.Equal(t, "97000", total)
	})

	t.Run("draft run is rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.findByIDFn = func(context.Context, string, string) (*payrollrun.Run, error) {
			return &payrollrun.Run{ID: uuid.New(), Status: payrollrun.StatusDraft}, nil
		}

		_, _, err := deps.service.ExportRegister(ctx, companyID, uuid.NewString())

		assert.ErrorIs(t, err, payrollrunerrors.ErrRunNotFinalized)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, _, err := deps.service.ExportRegister(ctx, companyID, "nope")

		assert.ErrorIs(t, err, payrollrunerrors.ErrInvalidID)
	})
}
