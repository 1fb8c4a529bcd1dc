package request_models

type RegisterRequest struct {
	FullName          string `json:"fullName" binding:"required,min=2,max=100"`
	Email             string `json:"email" binding:"required,email"`
	Phone             string `json:"phone" binding:"required"`
	Password          string `json:"password" binding:"required,min=6"`
	AccessibilityNeed string `json:"accessibilityNeed" binding:"omitempty,oneof=mobility visual hearing other none"`
	NeedDetail        string `json:"needDetail"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	LoginAs  string `json:"loginAs" binding:"required,oneof=user volunteer"`
}

type UpdateProfileRequest struct {
	FullName          string `json:"fullName" binding:"omitempty,min=2,max=100"`
	Phone             string `json:"phone"`
	AccessibilityNeed string `json:"accessibilityNeed" binding:"omitempty,oneof=mobility visual hearing other none"`
	NeedDetail        string `json:"needDetail"`
	Available         *bool  `json:"isAvailable"`
}
