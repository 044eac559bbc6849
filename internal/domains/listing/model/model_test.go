package model_test

import (
	"testing"
	"time"

	"rentals/internal/domains/listing/model"
	reservationModel "rentals/internal/domains/reservation/model"
	"rentals/shared/daterange"
	"rentals/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func stay(fromMonth time.Month, fromDay int, toMonth time.Month, toDay int) daterange.Range {
	return daterange.New(timezone.Date(2025, fromMonth, fromDay), timezone.Date(2025, toMonth, toDay))
}

func booking(id string, r daterange.Range) reservationModel.Booking {
	return reservationModel.Booking{ID: id, Start: r.Start, End: r.End}
}

func TestRoom_CheckAvailability(t *testing.T) {
	room := model.Room{
		Availability: stay(time.January, 1, time.June, 30),
		Bookings: []reservationModel.Booking{
			booking("b1", stay(time.January, 10, time.January, 20)),
			booking("b2", stay(time.January, 20, time.February, 1)),
		},
	}

	tests := []struct {
		name    string
		stay    daterange.Range
		wantErr error
	}{
		{name: "free slot", stay: stay(time.February, 1, time.February, 10)},
		{name: "ends where a booking starts", stay: stay(time.January, 5, time.January, 10)},
		{name: "overlaps both bookings", stay: stay(time.January, 15, time.January, 25), wantErr: model.ErrOverlap},
		{name: "outside window", stay: stay(time.June, 20, time.July, 5), wantErr: model.ErrOutsideWindow},
		{name: "outside window reported before overlap", stay: stay(time.January, 15, time.July, 5), wantErr: model.ErrOutsideWindow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := room.CheckAvailability(tt.stay)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantErr == nil, room.IsAvailable(tt.stay))
		})
	}
}

func TestRoom_ConflictReportsFirstOverlap(t *testing.T) {
	room := model.Room{
		Availability: stay(time.January, 1, time.June, 30),
		Bookings: []reservationModel.Booking{
			booking("b1", stay(time.January, 10, time.January, 20)),
			booking("b2", stay(time.January, 20, time.February, 1)),
		},
	}

	found, hit := room.Conflict(stay(time.January, 15, time.January, 25))
	assert.True(t, hit)
	assert.Equal(t, "b1", found.ID)

	_, hit = room.Conflict(stay(time.March, 1, time.March, 2))
	assert.False(t, hit)
}

func TestNormalizeArea(t *testing.T) {
	assert.Equal(t, model.NormalizeArea("Camden"), model.NormalizeArea("  CAMDEN "))
	assert.Equal(t, model.NormalizeArea("straße"), model.NormalizeArea("STRASSE"))
}

func TestCategory_Valid(t *testing.T) {
	assert.True(t, model.CategoryStudio.Valid())
	assert.False(t, model.Category("suite").Valid())
	assert.False(t, model.Category("").Valid())
}
