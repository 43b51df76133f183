package employee

// CreateEmployeeRequest is bound from the multipart form; the profile picture
// file travels separately from these fields.
type CreateEmployeeRequest struct {
	EmployeeCode    string `form:"employeeCode" binding:"required"`
	Name            string `form:"name" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	MobileNo        string `form:"mobileNo" binding:"required"`
	Salary          string `form:"salary" binding:"required"`
	Gender          string `form:"gender" binding:"required"`
	DOB             string `form:"dob" binding:"required"`
	Address1        string `form:"address1" binding:"required"`
	Address2        string `form:"address2" binding:"required"`
	Password        string `form:"password" binding:"required,min=6"`
	Type            string `form:"type" binding:"required"`
	AccountNo       string `form:"accountNo" binding:"required"`
	PFAccountNo     string `form:"pfAccountNo" binding:"required"`
	BankCode        string `form:"bankCode" binding:"required"`
	StateName       string `form:"stateName" binding:"required"`
	CityName        string `form:"cityName" binding:"required"`
	DepartmentName  string `form:"departmentName" binding:"required"`
	DesignationName string `form:"designationName" binding:"required"`
}

type BankCodeResponse struct {
	Code     string `json:"code"`
	BankName string `json:"bankName"`
}

// EmployeeResponse is the public projection: no password, related entities
// reduced to their display names.
type EmployeeResponse struct {
	ID           string           `json:"id"`
	EmployeeCode string           `json:"employeeCode"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	MobileNo     string           `json:"mobileNo"`
	Salary       float64          `json:"salary"`
	Gender       string           `json:"gender"`
	Type         string           `json:"type"`
	ProfilePic   string           `json:"profilePic"`
	AccountNo    string           `json:"accountNo"`
	PFAccountNo  string           `json:"pfAccountNo"`
	IsActive     bool             `json:"isActive"`
	Department   string           `json:"department,omitempty"`
	Designation  string           `json:"designation,omitempty"`
	State        string           `json:"state,omitempty"`
	City         string           `json:"city,omitempty"`
	BankCode     *BankCodeResponse `json:"bankCode,omitempty"`
}
