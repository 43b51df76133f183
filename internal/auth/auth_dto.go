package auth

type LoginRequest struct {
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// LoggedInEmployee is the sanitized projection returned on login: no
// password, no refresh token, no internal reference ids.
type LoggedInEmployee struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employeeCode"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNo     string `json:"mobileNo"`
	CompanyID    string `json:"companyId"`
	Type         string `json:"type"`
	IsActive     bool   `json:"isActive"`
}
