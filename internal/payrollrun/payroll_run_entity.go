package payrollrun

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusDraft     = "DRAFT"
	StatusFinalized = "FINALIZED"
)

type Run struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_run_number"`
	RunNumber       string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_payroll_run_number"`
	PeriodMonth     string    `gorm:"type:varchar(7);not null;index"`
	Status          string    `gorm:"type:varchar(20);not null;default:'DRAFT'"`
	EmployeeIDs     []string  `gorm:"serializer:json"`
	TotalGross      int64     `gorm:"type:bigint;not null;default:0"`
	TotalDeductions int64     `gorm:"type:bigint;not null;default:0"`
	TotalNet        int64     `gorm:"type:bigint;not null;default:0"`
	CreatedBy       string
	FinalizedBy     *string
	FinalizedAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Lines []RunLine `gorm:"foreignKey:RunID"`
}

func (Run) TableName() string { return "payroll_runs" }

// RunLine is one employee's computed pay for a finalized run. Amounts are
// monthly except AnnualCTC.
type RunLine struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	RunID           uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;not null"`
	EmployeeName    string
	Department      string
	StructureVer    int             `gorm:"column:structure_version"`
	Components      []LineComponent `gorm:"serializer:json"`
	GrossEarnings   int64           `gorm:"type:bigint;not null;default:0"`
	TotalDeductions int64           `gorm:"type:bigint;not null;default:0"`
	NetSalary       int64           `gorm:"type:bigint;not null;default:0"`
	AnnualCTC       int64           `gorm:"type:bigint;not null;default:0"`
	CreatedAt       time.Time
}

func (RunLine) TableName() string { return "payroll_run_lines" }

type LineComponent struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Value  int64  `json:"value"`
	Source string `json:"source"`
}
