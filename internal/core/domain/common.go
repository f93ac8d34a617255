package domain

import "time"

// Timestamps holds the standard creation/modification instants carried by
// every mutable entity.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
