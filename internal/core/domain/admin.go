package domain

import "time"

// Admin models the single administrative actor. Records are provisioned
// out-of-band (cmd/tools/createadmin) and are read-only to the service.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
