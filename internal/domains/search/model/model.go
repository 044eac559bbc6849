package model

import (
	"cmp"

	listingModel "rentals/internal/domains/listing/model"
	"rentals/shared/daterange"
)

// Criteria is built per query and never stored.
type Criteria struct {
	Area     *string
	Category *listingModel.Category
	MinPrice *int
	MaxPrice *int
	Window   daterange.Range
}

// Matches re-checks every field of the criteria against a candidate room.
// area is the area of the room's property.
func (c Criteria) Matches(room listingModel.Room, area string) bool {
	if c.Area != nil && listingModel.NormalizeArea(*c.Area) != listingModel.NormalizeArea(area) {
		return false
	}

	if c.Category != nil && room.Category != *c.Category {
		return false
	}

	if c.MinPrice != nil && room.Price < *c.MinPrice {
		return false
	}

	if c.MaxPrice != nil && room.Price > *c.MaxPrice {
		return false
	}

	return room.IsAvailable(c.Window)
}

// Ordering sorts search results. Compare follows the cmp.Compare contract.
type Ordering interface {
	Compare(a, b listingModel.Room) int
}

type OrderingFunc func(a, b listingModel.Room) int

func (f OrderingFunc) Compare(a, b listingModel.Room) int {
	return f(a, b)
}

var (
	PriceAscending = OrderingFunc(func(a, b listingModel.Room) int {
		return cmp.Compare(a.Price, b.Price)
	})
	PriceDescending = OrderingFunc(func(a, b listingModel.Room) int {
		return cmp.Compare(b.Price, a.Price)
	})
)
