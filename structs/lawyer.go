package structs

import "lawyerhub/models"

type UpdateProfileRequest struct {
	Name         string          `json:"name,omitempty"`
	Specialty    []string        `json:"specialty,omitempty"`
	Location     models.Location `json:"location,omitempty"`
	Bio          string          `json:"bio,omitempty"`
	Education    []string        `json:"education,omitempty"`
	Experience   []string        `json:"experience,omitempty"`
	LicenseInfo  string          `json:"licenseInfo,omitempty"`
	ProfileImage string          `json:"profileImage,omitempty"`
	ContactInfo  string          `json:"contactInfo,omitempty"`
}

type PostReviewRequest struct {
	Rating  float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Comment string  `json:"comment,omitempty"`
}
