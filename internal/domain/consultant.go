package domain

import "time"

// AvailabilityStatus enumerates consultant availability states.
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityBusy        AvailabilityStatus = "busy"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

// ValidAvailability reports whether the status is a known value.
func ValidAvailability(status AvailabilityStatus) bool {
	switch status {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return true
	}
	return false
}

// Consultant models a placeable candidate. Removal is a soft delete;
// historical submissions keep referencing inactive consultants.
type Consultant struct {
	ID              int64
	FirstName       string
	LastName        string
	Email           string
	Phone           *string
	Skills          []string
	ExperienceYears *int
	RatePerHour     *float64
	Availability    AvailabilityStatus
	Location        *string
	Notes           *string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
