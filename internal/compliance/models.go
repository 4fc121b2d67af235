package compliance

import (
	"time"

	"farmguard/pkg/catalog"
)

// ItemState is the persisted state of one checklist item for one subject.
// At most one live row exists per (SubjectID, ItemID); toggles upsert.
type ItemState struct {
	SubjectID     string    `json:"subject_id"`
	ItemID        string    `json:"item_id"`
	Status        bool      `json:"status"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// ItemView merges the static catalog entry with the subject's current state.
// Items never toggled appear with Status false and a zero LastUpdatedAt.
type ItemView struct {
	ItemID        string               `json:"item_id"`
	Label         string               `json:"label"`
	Cadence       catalog.CadenceGroup `json:"cadence"`
	Status        bool                 `json:"status"`
	LastUpdatedAt time.Time            `json:"last_updated_at,omitzero"`
}

// SetStateRequest is the transport payload for a toggle.
type SetStateRequest struct {
	ItemID string `json:"item_id"`
	Status bool   `json:"status"`
}
