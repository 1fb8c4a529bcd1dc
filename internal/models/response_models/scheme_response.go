package response_models

import "smartinclusion/internal/models/db_models"

type SchemeResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Link            string   `json:"link"`
	ApplicableNeeds []string `json:"applicableNeeds"`
}

func ToSchemeResponse(scheme *db_models.Scheme) SchemeResponse {
	return SchemeResponse{
		ID:              scheme.ID.String(),
		Title:           scheme.Title,
		Description:     scheme.Description,
		Link:            scheme.Link,
		ApplicableNeeds: append([]string{}, scheme.ApplicableNeeds...),
	}
}
