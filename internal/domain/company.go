package domain

import "time"

// Company models a client company. Same soft-delete lifecycle as Consultant.
type Company struct {
	ID           int64
	Name         string
	Industry     *string
	Location     *string
	Website      *string
	ContactEmail *string
	ContactPhone *string
	Notes        *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
