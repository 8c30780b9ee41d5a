package dto

// AdminCreateAccountRequest is the admin direct-creation form. Approved
// defaults to true when omitted, matching the dashboard behavior.
type AdminCreateAccountRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
	Approved *bool  `json:"approved_by_admin"`
}
