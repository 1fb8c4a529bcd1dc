package db_models

import "github.com/lib/pq"

// Scheme is a government assistance listing. ApplicableNeeds holds values
// from the need constants plus NeedGeneral; listings are read-only through
// the API and seeded out of band.
type Scheme struct {
	BaseModel
	Title           string
	Description     string
	Link            string
	ApplicableNeeds pq.StringArray `gorm:"type:text[]"`
}
