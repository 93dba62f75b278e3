package repository

import "time"

// Preference represents a preferences row.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
