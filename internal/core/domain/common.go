package domain

import "time"

// AuditFields holds who touched a record and when. The actor is an admin ID,
// or "system" for bootstrap writes.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// SystemActor marks writes not made by a logged-in admin.
const SystemActor = "system"
