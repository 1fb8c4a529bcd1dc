package services

import (
	"testing"

	"smartinclusion/internal/models/db_models"
)

// Exercises every flag combination against every viewer need.
func TestLocationVisible(t *testing.T) {
	bools := []bool{false, true}

	for _, ramp := range bools {
		for _, tactile := range bools {
			for _, washroom := range bools {
				loc := db_models.Location{
					HasRamp:            ramp,
					HasTactilePath:     tactile,
					AccessibleWashroom: washroom,
				}

				if !LocationVisible(loc, "") {
					t.Errorf("empty need must see everything: %+v", loc)
				}
				if !LocationVisible(loc, db_models.NeedNone) {
					t.Errorf("need none must see everything: %+v", loc)
				}

				if got, want := LocationVisible(loc, db_models.NeedMobility), ramp || washroom; got != want {
					t.Errorf("mobility: got %v want %v for %+v", got, want, loc)
				}
				if got, want := LocationVisible(loc, db_models.NeedVisual), tactile; got != want {
					t.Errorf("visual: got %v want %v for %+v", got, want, loc)
				}

				// No flag correlates with these needs yet, so nothing shows.
				if LocationVisible(loc, db_models.NeedHearing) {
					t.Errorf("hearing: expected hidden for %+v", loc)
				}
				if LocationVisible(loc, db_models.NeedOther) {
					t.Errorf("other: expected hidden for %+v", loc)
				}
			}
		}
	}
}
