package model

import (
	"time"

	"rentals/shared/daterange"
)

const (
	EntityRequest = "booking request"
	EntityBooking = "booking"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusRejected Status = "REJECTED"
)

// Terminal reports whether no further transition is allowed.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

type BookingRequest struct {
	ID       string
	SeekerID string
	RoomID   string
	// OwnerID is copied from the room at submission.
	OwnerID   string
	Start     time.Time
	End       time.Time
	Status    Status
	CreatedAt time.Time
	DecidedAt *time.Time
}

func (b BookingRequest) Range() daterange.Range {
	return daterange.New(b.Start, b.End)
}

// Booking is a confirmed stay. It is never mutated once created.
type Booking struct {
	ID          string
	RequestID   string
	SeekerID    string
	RoomID      string
	Start       time.Time
	End         time.Time
	ConfirmedAt time.Time
}

func (b Booking) Range() daterange.Range {
	return daterange.New(b.Start, b.End)
}
