// Package daterange implements half-open calendar ranges [Start, End).
//
// Two ranges overlap iff s1 < e2 && s2 < e1, so a stay ending on day D and
// another starting on day D do not collide.
package daterange

import (
	"time"

	"rentals/shared/failure"
	"rentals/shared/timezone"
)

const (
	msgDatesRequired   = "start and end dates are required"
	msgStartBeforeEnd  = "start date must be before end date"
	msgMalformedPrefix = "invalid date: "
)

// Overlaps reports whether [s1, e1) and [s2, e2) intersect. Callers guarantee
// s < e for each range.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}

type Range struct {
	Start time.Time
	End   time.Time
}

func New(start, end time.Time) Range {
	return Range{Start: start, End: end}
}

// Valid reports Start < End.
func (r Range) Valid() bool {
	return r.Start.Before(r.End)
}

func (r Range) Overlaps(other Range) bool {
	return Overlaps(r.Start, r.End, other.Start, other.End)
}

// Within reports whether r is non-empty and lies inside outer.
func (r Range) Within(outer Range) bool {
	return r.Valid() && !r.Start.Before(outer.Start) && !r.End.After(outer.End)
}

// Nights is the number of calendar days covered by r.
func (r Range) Nights() int {
	if !r.Valid() {
		return 0
	}

	return int(r.End.Sub(r.Start).Hours() / 24)
}

func (r Range) String() string {
	return "[" + timezone.FormatDate(r.Start) + ", " + timezone.FormatDate(r.End) + ")"
}

// Require returns a validation failure unless start < end.
func Require(start, end time.Time) (Range, error) {
	if start.IsZero() || end.IsZero() {
		return Range{}, failure.BadRequestFromString(msgDatesRequired)
	}

	r := New(start, end)
	if !r.Valid() {
		return Range{}, failure.BadRequestFromString(msgStartBeforeEnd)
	}

	return r, nil
}

// Parse reads two YYYY-MM-DD dates into a validated range.
func Parse(start, end string) (Range, error) {
	if start == "" || end == "" {
		return Range{}, failure.BadRequestFromString(msgDatesRequired)
	}

	from, err := timezone.ParseDate(start)
	if err != nil {
		return Range{}, failure.BadRequestFromString(msgMalformedPrefix + start)
	}

	to, err := timezone.ParseDate(end)
	if err != nil {
		return Range{}, failure.BadRequestFromString(msgMalformedPrefix + end)
	}

	return Require(from, to)
}
