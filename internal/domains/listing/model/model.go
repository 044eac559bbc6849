package model

import (
	"errors"
	"slices"
	"strings"

	reservationModel "rentals/internal/domains/reservation/model"
	"rentals/shared/daterange"
	"rentals/shared/model"

	"golang.org/x/text/cases"
)

const (
	EntityProperty = "property"
	EntityRoom     = "room"
)

var (
	ErrOutsideWindow = errors.New("requested dates are outside the room availability window")
	ErrOverlap       = errors.New("room already booked for those dates")
)

type Category string

const (
	CategorySingle Category = "single"
	CategoryDouble Category = "double"
	CategoryStudio Category = "studio"
)

var Categories = []Category{CategorySingle, CategoryDouble, CategoryStudio}

func (c Category) Valid() bool {
	return slices.Contains(Categories, c)
}

type Property struct {
	ID          string
	OwnerID     string
	Address     string
	Area        string
	Description string
	// RoomIDs keeps insertion order.
	RoomIDs []string
	model.Metadata
}

type Room struct {
	ID           string
	PropertyID   string
	OwnerID      string
	Category     Category
	Price        int
	Amenities    string
	// Availability is [availableFrom, availableTo).
	Availability daterange.Range
	Bookings     []reservationModel.Booking
	model.Metadata
}

func (r Room) WithinWindow(stay daterange.Range) bool {
	return stay.Within(r.Availability)
}

// Conflict scans every confirmed booking and returns the first one overlapping stay.
func (r Room) Conflict(stay daterange.Range) (reservationModel.Booking, bool) {
	var (
		found reservationModel.Booking
		hit   bool
	)

	for _, booking := range r.Bookings {
		if !hit && booking.Range().Overlaps(stay) {
			found, hit = booking, true
		}
	}

	return found, hit
}

func (r Room) IsAvailable(stay daterange.Range) bool {
	return r.CheckAvailability(stay) == nil
}

// CheckAvailability reports ErrOutsideWindow before ErrOverlap.
func (r Room) CheckAvailability(stay daterange.Range) error {
	if !r.WithinWindow(stay) {
		return ErrOutsideWindow
	}

	if _, hit := r.Conflict(stay); hit {
		return ErrOverlap
	}

	return nil
}

// NormalizeArea is the key rooms are indexed under.
func NormalizeArea(area string) string {
	return cases.Fold().String(strings.TrimSpace(area))
}

// Listing is a room together with the property it belongs to.
type Listing struct {
	Room     Room
	Property Property
}
