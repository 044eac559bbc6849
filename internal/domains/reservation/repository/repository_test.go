package repository_test

import (
	"context"
	"testing"
	"time"

	"rentals/internal/domains/reservation/model"
	"rentals/internal/domains/reservation/repository"
	"rentals/shared/failure"
	"rentals/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(id, seeker, room string, status model.Status, created time.Time) model.BookingRequest {
	return model.BookingRequest{
		ID:        id,
		SeekerID:  seeker,
		RoomID:    room,
		OwnerID:   "owner-of-" + room,
		Status:    status,
		CreatedAt: created,
	}
}

func TestReservationRepository_RequestsOldestFirst(t *testing.T) {
	ctx := context.Background()
	repo := repository.New()
	base := timezone.Date(2025, time.January, 1)

	require.NoError(t, repo.InsertRequest(ctx, request("q3", "s1", "r1", model.StatusPending, base.Add(2*time.Hour))))
	require.NoError(t, repo.InsertRequest(ctx, request("q1", "s2", "r2", model.StatusPending, base)))
	require.NoError(t, repo.InsertRequest(ctx, request("q2", "s1", "r3", model.StatusPending, base.Add(time.Hour))))

	got := repo.GetRequestsByOwner(ctx, "owner-of-r1")
	require.Len(t, got, 1)
	assert.Equal(t, "q3", got[0].ID)

	assert.Empty(t, repo.GetRequestsByOwner(ctx, "someone-else"))

	mine := repo.GetRequestsBySeeker(ctx, "s1")
	require.Len(t, mine, 2)
	assert.Equal(t, "q2", mine[0].ID)

	err := repo.InsertRequest(ctx, request("q1", "s2", "r2", model.StatusPending, base))
	assert.True(t, failure.IsConflict(err))
}

func TestReservationRepository_PurgePendingKeepsDecided(t *testing.T) {
	ctx := context.Background()
	repo := repository.New()
	now := timezone.Now()

	require.NoError(t, repo.InsertRequest(ctx, request("q1", "s1", "r1", model.StatusPending, now)))
	require.NoError(t, repo.InsertRequest(ctx, request("q2", "s2", "r1", model.StatusAccepted, now)))
	require.NoError(t, repo.InsertRequest(ctx, request("q3", "s3", "r1", model.StatusPending, now)))
	require.NoError(t, repo.InsertRequest(ctx, request("q4", "s3", "r2", model.StatusPending, now)))

	assert.Equal(t, 2, repo.PurgePending(ctx, "r1"))

	_, err := repo.GetRequest(ctx, "q1")
	assert.True(t, failure.IsNotFound(err))

	kept, err := repo.GetRequest(ctx, "q2")
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, kept.Status)

	_, err = repo.GetRequest(ctx, "q4")
	assert.NoError(t, err)
}

func TestReservationRepository_SaveRequest(t *testing.T) {
	ctx := context.Background()
	repo := repository.New()

	require.NoError(t, repo.InsertRequest(ctx, request("q1", "s1", "r1", model.StatusPending, timezone.Now())))

	req, err := repo.GetRequest(ctx, "q1")
	require.NoError(t, err)

	req.Status = model.StatusRejected
	require.NoError(t, repo.SaveRequest(ctx, req))

	req, err = repo.GetRequest(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, req.Status)

	err = repo.SaveRequest(ctx, model.BookingRequest{ID: "missing"})
	assert.True(t, failure.IsNotFound(err))
}

func TestReservationRepository_BookingsBySeeker(t *testing.T) {
	ctx := context.Background()
	repo := repository.New()

	require.NoError(t, repo.InsertBooking(ctx, model.Booking{ID: "b1", SeekerID: "s1", RoomID: "r1"}))
	require.NoError(t, repo.InsertBooking(ctx, model.Booking{ID: "b2", SeekerID: "s2", RoomID: "r1"}))
	require.NoError(t, repo.InsertBooking(ctx, model.Booking{ID: "b3", SeekerID: "s1", RoomID: "r2"}))

	bookings := repo.GetBookingsBySeeker(ctx, "s1")
	require.Len(t, bookings, 2)
	assert.Equal(t, "b1", bookings[0].ID)
	assert.Equal(t, "b3", bookings[1].ID)
}
