package employee

import (
	"time"

	"go-comp/internal/compensation"

	"github.com/google/uuid"
)

type Employee struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID `gorm:"type:uuid;index"`
	EmployeeNumber    string
	FullName          string
	Department        string
	Designation       string
	BaseSalary        int64
	GrossSalary       int64
	BankAccountNumber *string
	BankIFSC          *string `gorm:"column:bank_ifsc"`
	PFNumber          *string `gorm:"column:pf_number"`
	ESINumber         *string `gorm:"column:esi_number"`
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Employee) TableName() string { return "employees" }

// ToCompensation is the snapshot the calculation engine reads.
func (e Employee) ToCompensation() compensation.Employee {
	return compensation.Employee{
		ID:                e.ID.String(),
		Name:              e.FullName,
		Department:        e.Department,
		Designation:       e.Designation,
		BaseSalary:        e.BaseSalary,
		GrossSalary:       e.GrossSalary,
		BankAccountNumber: deref(e.BankAccountNumber),
		BankIFSC:          deref(e.BankIFSC),
		PFNumber:          deref(e.PFNumber),
		ESINumber:         deref(e.ESINumber),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
