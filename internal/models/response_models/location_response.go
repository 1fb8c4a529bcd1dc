package response_models

import "smartinclusion/internal/models/db_models"

type LocationCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type LocationAccessibility struct {
	HasRamp            bool `json:"hasRamp"`
	HasTactilePath     bool `json:"hasTactilePath"`
	AccessibleWashroom bool `json:"accessibleWashroom"`
}

type LocationResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Address       string                `json:"address"`
	Coordinates   LocationCoordinates   `json:"coordinates"`
	Accessibility LocationAccessibility `json:"accessibility"`
	AddedBy       string                `json:"addedBy"`
}

func ToLocationResponse(loc *db_models.Location) LocationResponse {
	return LocationResponse{
		ID:      loc.ID.String(),
		Name:    loc.Name,
		Address: loc.Address,
		Coordinates: LocationCoordinates{
			Lat: loc.Latitude,
			Lng: loc.Longitude,
		},
		Accessibility: LocationAccessibility{
			HasRamp:            loc.HasRamp,
			HasTactilePath:     loc.HasTactilePath,
			AccessibleWashroom: loc.AccessibleWashroom,
		},
		AddedBy: loc.AddedBy.String(),
	}
}
