package db_models

const (
	RoleUser      = "user"
	RoleVolunteer = "volunteer"
)

const (
	NeedMobility = "mobility"
	NeedVisual   = "visual"
	NeedHearing  = "hearing"
	NeedOther    = "other"
	NeedNone     = "none"

	// NeedGeneral is valid for schemes only, never for accounts.
	NeedGeneral = "general"
)

// Account covers both roles; email is unique across the whole table, so a
// user and a volunteer can never share an address.
type Account struct {
	BaseModel
	FullName          string
	Email             string `gorm:"uniqueIndex"`
	Phone             string
	PasswordHash      string
	Role              string `gorm:"index"`
	AccessibilityNeed string `gorm:"default:none"`
	NeedDetail        string
	Available         bool `gorm:"default:true"`
}
