package services

import "smartinclusion/internal/models/db_models"

// LocationVisible reports whether a location should be shown to a viewer
// with the given accessibility need. This is advisory UI filtering, not an
// access-control boundary: the store always serves the full set.
//
// Hearing and "other" needs have no matching flag today, so those viewers
// see nothing through this predicate.
func LocationVisible(loc db_models.Location, viewerNeed string) bool {
	switch viewerNeed {
	case "", db_models.NeedNone:
		return true
	case db_models.NeedMobility:
		return loc.HasRamp || loc.AccessibleWashroom
	case db_models.NeedVisual:
		return loc.HasTactilePath
	default:
		return false
	}
}
