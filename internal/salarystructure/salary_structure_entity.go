package salarystructure

import (
	"time"

	"go-comp/internal/compensation"

	"github.com/google/uuid"
)

type Structure struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	Versions []Version `gorm:"foreignKey:StructureID"`
}

func (Structure) TableName() string { return "salary_structures" }

type Version struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	StructureID   uuid.UUID `gorm:"type:uuid;index"`
	Version       int
	EffectiveFrom time.Time       `gorm:"type:date"`
	Components    []ComponentSpec `gorm:"serializer:json"`
	CreatedAt     time.Time
}

func (Version) TableName() string { return "salary_structure_versions" }

// Assignment is the employee's current salary structure. There is at most
// one per employee.
type Assignment struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_employee_salary_assignment"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_employee_salary_assignment"`
	StructureID     uuid.UUID `gorm:"type:uuid;index"`
	Version         int
	Overrides       []OverrideSpec       `gorm:"serializer:json"`
	AdditionalItems []AdditionalItemSpec `gorm:"serializer:json"`
	EffectiveFrom   time.Time            `gorm:"type:date"`
	AssignedBy      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Assignment) TableName() string { return "employee_salary_assignments" }

func (s Structure) ToCompensation() compensation.SalaryStructure {
	out := compensation.SalaryStructure{ID: s.ID.String(), Name: s.Name}
	for _, v := range s.Versions {
		sv := compensation.StructureVersion{Version: v.Version, EffectiveFrom: v.EffectiveFrom}
		for _, c := range v.Components {
			sv.Components = append(sv.Components, c.toCompensation())
		}
		out.Versions = append(out.Versions, sv)
	}
	return out
}

func (a Assignment) overrides() []compensation.ComponentOverride {
	out := make([]compensation.ComponentOverride, 0, len(a.Overrides))
	for _, o := range a.Overrides {
		out = append(out, compensation.ComponentOverride{
			Name:  o.Name,
			Type:  compensation.ComponentType(o.Type),
			Value: o.Value,
		})
	}
	return out
}

func (a Assignment) additionalItems() []compensation.AdditionalItem {
	out := make([]compensation.AdditionalItem, 0, len(a.AdditionalItems))
	for _, it := range a.AdditionalItems {
		out = append(out, compensation.AdditionalItem{
			Name:       it.Name,
			Type:       compensation.ComponentType(it.Type),
			Amount:     it.Amount,
			Occurrence: compensation.Occurrence(it.Occurrence),
		})
	}
	return out
}
