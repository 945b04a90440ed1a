package salarystructure

import "go-comp/internal/compensation"

type ComponentSpec struct {
	Name     string  `json:"name" binding:"required,max=80"`
	Type     string  `json:"type" binding:"required,oneof=Earning Deduction"`
	CalcType string  `json:"calc_type" binding:"required"`
	Value    float64 `json:"value" binding:"gte=0"`
	Formula  string  `json:"formula,omitempty"`
}

func (c ComponentSpec) toCompensation() compensation.Component {
	return compensation.Component{
		Name:     c.Name,
		Type:     compensation.ComponentType(c.Type),
		CalcType: compensation.CalcType(c.CalcType),
		Value:    c.Value,
		Formula:  c.Formula,
	}
}

type CreateStructureRequest struct {
	Name          string          `json:"name" binding:"required,max=120"`
	EffectiveFrom string          `json:"effective_from" binding:"omitempty,datetime=2006-01-02"`
	Components    []ComponentSpec `json:"components" binding:"required,min=1,dive"`
}

type AddVersionRequest struct {
	EffectiveFrom string          `json:"effective_from" binding:"omitempty,datetime=2006-01-02"`
	Components    []ComponentSpec `json:"components" binding:"required,min=1,dive"`
}

type VersionResponse struct {
	Version       int             `json:"version"`
	EffectiveFrom string          `json:"effective_from"`
	Components    []ComponentSpec `json:"components"`
}

type StructureResponse struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	LatestVersion int               `json:"latest_version"`
	Versions      []VersionResponse `json:"versions"`
}

type OverrideSpec struct {
	Name  string `json:"name" binding:"required,max=80"`
	Type  string `json:"type,omitempty" binding:"omitempty,oneof=Earning Deduction"`
	Value int64  `json:"value" binding:"gte=0"`
}

type AdditionalItemSpec struct {
	Name       string `json:"name" binding:"required,max=80"`
	Type       string `json:"type" binding:"required,oneof=Earning Deduction"`
	Amount     int64  `json:"amount" binding:"gte=0"`
	Occurrence string `json:"occurrence" binding:"required,oneof=Monthly One-time"`
}

type AssignEmployeeRequest struct {
	StructureID     string               `json:"structure_id" binding:"required,uuid"`
	Version         int                  `json:"version" binding:"gte=0"`
	Overrides       []OverrideSpec       `json:"overrides" binding:"omitempty,dive"`
	AdditionalItems []AdditionalItemSpec `json:"additional_items" binding:"omitempty,dive"`
	EffectiveFrom   string               `json:"effective_from" binding:"omitempty,datetime=2006-01-02"`
}

type AssignmentResponse struct {
	ID              string               `json:"id"`
	EmployeeID      string               `json:"employee_id"`
	StructureID     string               `json:"structure_id"`
	Version         int                  `json:"version"`
	Overrides       []OverrideSpec       `json:"overrides"`
	AdditionalItems []AdditionalItemSpec `json:"additional_items"`
	EffectiveFrom   string               `json:"effective_from"`
	AssignedBy      string               `json:"assigned_by"`
}

type ResolvedComponentResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	CalcType string `json:"calc_type"`
	Value    int64  `json:"value"`
	Source   string `json:"source"`
}

type BreakdownResponse struct {
	EmployeeID      string                      `json:"employee_id"`
	StructureID     string                      `json:"structure_id"`
	StructureName   string                      `json:"structure_name"`
	Version         int                         `json:"version"`
	BaseSalary      int64                       `json:"base_salary"`
	Components      []ResolvedComponentResponse `json:"components"`
	GrossEarnings   int64                       `json:"gross_earnings"`
	TotalDeductions int64                       `json:"total_deductions"`
	MonthlyTotal    int64                       `json:"monthly_total"`
	AnnualCTC       int64                       `json:"annual_ctc"`
	NetSalary       int64                       `json:"net_salary"`
}
