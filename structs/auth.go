package structs

type RegisterRequest struct {
	Email       string   `json:"email" binding:"required,email"`
	Password    string   `json:"password" binding:"required,min=8"`
	Name        string   `json:"name" binding:"required"`
	Role        string   `json:"role" binding:"omitempty,oneof=client lawyer"`
	Specialty   []string `json:"specialty,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	LicenseInfo string   `json:"licenseInfo,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
