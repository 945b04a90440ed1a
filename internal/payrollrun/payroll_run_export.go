package payrollrun

import (
	"bytes"
	"context"
	"fmt"

	payrollrunerrors "go-comp/internal/payrollrun/errors"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const registerSheet = "Register"

var registerHeaders = []string{
	"No", "Employee ID", "Employee Name", "Department", "Structure Version",
	"Gross Earnings", "Deductions", "Net Salary", "Annual CTC",
}

// ExportRegister renders a finalized run as an xlsx workbook with one row
// per line followed by a totals row.
func (s *service) ExportRegister(ctx context.Context, companyID, id string) (*bytes.Buffer, string, error) {
	run, err := s.findRun(ctx, s.repo, companyID, id)
	if err != nil {
		return nil, "", err
	}
	if run.Status != StatusFinalized {
		return nil, "", payrollrunerrors.ErrRunNotFinalized
	}

	buf, err := renderRegister(*run)
	if err != nil {
		s.logger.Error("render payroll register failed", zap.String("run_id", id), zap.Error(err))
		return nil, "", err
	}
	return buf, fmt.Sprintf("payroll_register_%s.xlsx", run.RunNumber), nil
}

func renderRegister(run Run) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(registerSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	f.SetColWidth(registerSheet, "A", "A", 6)
	f.SetColWidth(registerSheet, "B", "B", 38)
	f.SetColWidth(registerSheet, "C", "D", 24)
	f.SetColWidth(registerSheet, "E", colName(len(registerHeaders)-1), 16)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		return nil, err
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 3})
	if err != nil {
		return nil, err
	}

	lastCol := colName(len(registerHeaders) - 1)
	f.SetCellValue(registerSheet, "A1", fmt.Sprintf("Payroll register %s (%s)", run.RunNumber, run.PeriodMonth))
	f.MergeCell(registerSheet, "A1", cell(lastCol, 1))
	f.SetCellStyle(registerSheet, "A1", "A1", headerStyle)

	row := 2
	for i, h := range registerHeaders {
		f.SetCellValue(registerSheet, cell(colName(i), row), h)
	}
	f.SetCellStyle(registerSheet, cell("A", row), cell(lastCol, row), headerStyle)

	row = 3
	for i, l := range run.Lines {
		values := []any{
			i + 1, l.EmployeeID.String(), l.EmployeeName, l.Department, l.StructureVer,
			l.GrossEarnings, l.TotalDeductions, l.NetSalary, l.AnnualCTC,
		}
		for c, v := range values {
			f.SetCellValue(registerSheet, cell(colName(c), row), v)
		}
		f.SetCellStyle(registerSheet, cell("F", row), cell(lastCol, row), amountStyle)
		row++
	}

	f.SetCellValue(registerSheet, cell("C", row), "Total")
	f.SetCellValue(registerSheet, cell("F", row), run.TotalGross)
	f.SetCellValue(registerSheet, cell("G", row), run.TotalDeductions)
	f.SetCellValue(registerSheet, cell("H", row), run.TotalNet)
	f.SetCellStyle(registerSheet, cell("A", row), cell(lastCol, row), totalStyle)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
