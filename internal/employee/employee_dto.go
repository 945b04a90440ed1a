package employee

type CreateEmployeeRequest struct {
	EmployeeNumber    string `json:"employee_number"`
	FullName          string `json:"full_name" binding:"required,max=150"`
	Department        string `json:"department" binding:"max=100"`
	Designation       string `json:"designation" binding:"max=100"`
	BaseSalary        int64  `json:"base_salary" binding:"gte=0"`
	GrossSalary       int64  `json:"gross_salary" binding:"gte=0,gtefield=BaseSalary"`
	BankAccountNumber string `json:"bank_account_number" binding:"omitempty,numeric,max=40"`
	BankIFSC          string `json:"bank_ifsc" binding:"omitempty,alphanum,len=11"`
	PFNumber          string `json:"pf_number" binding:"max=40"`
	ESINumber         string `json:"esi_number" binding:"max=40"`
}

type UpdateEmployeeRequest struct {
	FullName          string `json:"full_name" binding:"required,max=150"`
	Department        string `json:"department" binding:"max=100"`
	Designation       string `json:"designation" binding:"max=100"`
	BaseSalary        int64  `json:"base_salary" binding:"gte=0"`
	GrossSalary       int64  `json:"gross_salary" binding:"gte=0,gtefield=BaseSalary"`
	BankAccountNumber string `json:"bank_account_number" binding:"omitempty,numeric,max=40"`
	BankIFSC          string `json:"bank_ifsc" binding:"omitempty,alphanum,len=11"`
	PFNumber          string `json:"pf_number" binding:"max=40"`
	ESINumber         string `json:"esi_number" binding:"max=40"`
}

type EmployeeResponse struct {
	ID                string `json:"id"`
	CompanyID         string `json:"company_id"`
	EmployeeNumber    string `json:"employee_number"`
	FullName          string `json:"full_name"`
	Department        string `json:"department,omitempty"`
	Designation       string `json:"designation,omitempty"`
	BaseSalary        int64  `json:"base_salary"`
	GrossSalary       int64  `json:"gross_salary"`
	BankAccountNumber string `json:"bank_account_number,omitempty"`
	BankIFSC          string `json:"bank_ifsc,omitempty"`
	PFNumber          string `json:"pf_number,omitempty"`
	ESINumber         string `json:"esi_number,omitempty"`
	IsActive          bool   `json:"is_active"`
}
