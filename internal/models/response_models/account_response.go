package response_models

import "smartinclusion/internal/models/db_models"

// AccountResponse is the public projection of an account. The password hash
// never leaves the service layer.
type AccountResponse struct {
	ID                string `json:"id"`
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Role              string `json:"role"`
	AccessibilityNeed string `json:"accessibilityNeed,omitempty"`
	NeedDetail        string `json:"needDetail,omitempty"`
	Available         bool   `json:"isAvailable"`
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}

func ToAccountResponse(account *db_models.Account) AccountResponse {
	resp := AccountResponse{
		ID:        account.ID.String(),
		FullName:  account.FullName,
		Email:     account.Email,
		Phone:     account.Phone,
		Role:      account.Role,
		Available: account.Available,
	}
	if account.Role == db_models.RoleUser {
		resp.AccessibilityNeed = account.AccessibilityNeed
		resp.NeedDetail = account.NeedDetail
	}
	return resp
}
