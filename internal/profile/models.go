package profile

import "time"

// Profile is the farm profile attached to a subject. One row per subject,
// upsert semantics.
type Profile struct {
	SubjectID   string    `json:"subject_id"`
	FarmType    string    `json:"farm_type"`
	Location    string    `json:"location"`
	AnimalCount int       `json:"animal_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateRequest is the transport payload for a profile upsert.
type UpdateRequest struct {
	FarmType    string `json:"farm_type"`
	Location    string `json:"location"`
	AnimalCount int    `json:"animal_count"`
}
