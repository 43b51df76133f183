package designation

type CreateDesignationRequest struct {
	Name string `json:"name" binding:"required"`
}

type DesignationResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CompanyID string `json:"company_id"`
}
