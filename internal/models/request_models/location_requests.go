package request_models

type Coordinates struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

type AccessibilityFlags struct {
	HasRamp            bool `json:"hasRamp"`
	HasTactilePath     bool `json:"hasTactilePath"`
	AccessibleWashroom bool `json:"accessibleWashroom"`
}

type CreateLocationRequest struct {
	Name          string              `json:"name" binding:"required"`
	Address       string              `json:"address" binding:"required"`
	Coordinates   *Coordinates        `json:"coordinates" binding:"required"`
	Accessibility *AccessibilityFlags `json:"accessibility" binding:"required"`
}

// UpdateLocationRequest carries only the mutable fields; coordinates are
// fixed at creation time.
type UpdateLocationRequest struct {
	Name          string              `json:"name"`
	Address       string              `json:"address"`
	Accessibility *AccessibilityFlags `json:"accessibility"`
}
