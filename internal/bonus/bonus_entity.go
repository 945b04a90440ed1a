package bonus

import (
	"time"

	"go-comp/internal/compensation"

	"github.com/google/uuid"
)

type Structure struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	CalculationMode string
	Value           float64
	Formula         string
	MinBonus        *int64
	MaxBonus        *int64
	OverrideAllowed bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Structure) TableName() string { return "bonus_structures" }

func (s Structure) ToCompensation() compensation.Structure {
	return compensation.Structure{
		ID:              s.ID.String(),
		Name:            s.Name,
		Mode:            compensation.CalculationMode(s.CalculationMode),
		Value:           s.Value,
		Formula:         s.Formula,
		MinBonus:        s.MinBonus,
		MaxBonus:        s.MaxBonus,
		OverrideAllowed: s.OverrideAllowed,
	}
}

type Cycle struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID             uuid.UUID `gorm:"type:uuid;index"`
	Name                  string
	PeriodStart           time.Time `gorm:"type:date"`
	PeriodEnd             time.Time `gorm:"type:date"`
	Currency              string
	TotalBudget           *int64
	MaxBonusCap           *int64
	MinEligibilityPercent float64
	DefaultStructureID    *uuid.UUID `gorm:"type:uuid"`
	Status                string
	ReleasedAt            *time.Time
	ReleasedBy            *string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

func (Cycle) TableName() string { return "bonus_cycles" }

func (c Cycle) ToCompensation() compensation.Cycle {
	return compensation.Cycle{
		ID:                    c.ID.String(),
		Name:                  c.Name,
		PeriodStart:           c.PeriodStart,
		PeriodEnd:             c.PeriodEnd,
		Currency:              c.Currency,
		TotalBudget:           c.TotalBudget,
		MaxBonusCap:           c.MaxBonusCap,
		MinEligibilityPercent: c.MinEligibilityPercent,
		DefaultStructureID:    uuidString(c.DefaultStructureID),
		Status:                compensation.CycleStatus(c.Status),
	}
}

type Assignment struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID  `gorm:"type:uuid;index"`
	CycleID        uuid.UUID  `gorm:"type:uuid;index"`
	EmployeeID     uuid.UUID  `gorm:"type:uuid;index"`
	StructureID    *uuid.UUID `gorm:"type:uuid"`
	Target         *float64
	Achievement    *float64
	AutoAmount     int64
	OverrideAmount *int64
	FinalAmount    int64
	ApprovalStatus string
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Audits []AssignmentAudit `gorm:"foreignKey:AssignmentID"`
}

func (Assignment) TableName() string { return "bonus_assignments" }

type AssignmentAudit struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssignmentID uuid.UUID `gorm:"type:uuid;index"`
	At           time.Time
	Actor        string
	Note         string
}

func (AssignmentAudit) TableName() string { return "bonus_assignment_audits" }

func (a Assignment) ToCompensation() compensation.Assignment {
	out := compensation.Assignment{
		ID:             a.ID.String(),
		CycleID:        a.CycleID.String(),
		EmployeeID:     a.EmployeeID.String(),
		StructureID:    uuidString(a.StructureID),
		Target:         a.Target,
		Achievement:    a.Achievement,
		AutoAmount:     a.AutoAmount,
		OverrideAmount: a.OverrideAmount,
		FinalAmount:    a.FinalAmount,
		ApprovalStatus: compensation.ApprovalStatus(a.ApprovalStatus),
		Notes:          a.Notes,
	}
	for _, au := range a.Audits {
		out.Audit = append(out.Audit, compensation.AuditEntry{At: au.At, Actor: au.Actor, Note: au.Note})
	}
	return out
}

// apply copies computed fields back and returns audit rows that were added
// to c beyond what a already holds.
func (a *Assignment) apply(c compensation.Assignment) []AssignmentAudit {
	a.StructureID = uuidPtr(c.StructureID)
	a.Target = c.Target
	a.Achievement = c.Achievement
	a.AutoAmount = c.AutoAmount
	a.OverrideAmount = c.OverrideAmount
	a.FinalAmount = c.FinalAmount
	a.ApprovalStatus = string(c.ApprovalStatus)
	a.Notes = c.Notes

	var added []AssignmentAudit
	for _, e := range c.Audit[min(len(a.Audits), len(c.Audit)):] {
		added = append(added, AssignmentAudit{
			ID:           uuid.New(),
			AssignmentID: a.ID,
			At:           e.At,
			Actor:        e.Actor,
			Note:         e.Note,
		})
	}
	a.Audits = append(a.Audits, added...)
	return added
}

func uuidString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}
