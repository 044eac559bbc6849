package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"rentals/infras/memory"
	"rentals/infras/otel/mocks"
	actorModel "rentals/internal/domains/actor/model"
	actorRepo "rentals/internal/domains/actor/repository"
	listingModel "rentals/internal/domains/listing/model"
	listingRepo "rentals/internal/domains/listing/repository"
	"rentals/internal/domains/reservation/model"
	"rentals/internal/domains/reservation/model/dto"
	"rentals/internal/domains/reservation/repository"
	"rentals/internal/domains/reservation/service"
	"rentals/shared/daterange"
	"rentals/shared/failure"
	"rentals/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roomID = "room-1"

type fixture struct {
	ctx      context.Context
	svc      service.Reservation
	repo     repository.Reservation
	listings listingRepo.Listing
	actors   actorRepo.Actor
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctx := context.Background()
	actors := actorRepo.New()
	listings := listingRepo.New()
	repo := repository.New()

	for _, actor := range []actorModel.Actor{
		{ID: "owner", Email: "owner@example.com", Role: actorModel.RoleOwner, Active: true},
		{ID: "other-owner", Email: "other@example.com", Role: actorModel.RoleOwner, Active: true},
		{ID: "seeker", Email: "seeker@example.com", Role: actorModel.RoleSeeker, Active: true},
		{ID: "seeker-2", Email: "seeker2@example.com", Role: actorModel.RoleSeeker, Active: true},
		{ID: "gone", Email: "gone@example.com", Role: actorModel.RoleSeeker, Active: false},
	} {
		require.NoError(t, actors.Insert(ctx, actor))
	}

	require.NoError(t, listings.InsertProperty(ctx, listingModel.Property{ID: "p1", OwnerID: "owner", Address: "1 High St", Area: "Camden"}))
	require.NoError(t, listings.InsertRoom(ctx, listingModel.Room{
		ID:           roomID,
		PropertyID:   "p1",
		OwnerID:      "owner",
		Category:     listingModel.CategorySingle,
		Price:        500,
		Availability: daterange.New(timezone.Date(2025, time.January, 1), timezone.Date(2025, time.June, 30)),
	}))

	svc := service.New(memory.New(mocks.NewOtel()), repo, listings, actors, mocks.NewOtel())

	return fixture{ctx: ctx, svc: svc, repo: repo, listings: listings, actors: actors}
}

func stay(start, end string) dto.SubmitRequest {
	return dto.SubmitRequest{RoomID: roomID, StartDate: start, EndDate: end}
}

func (f fixture) submit(t *testing.T, seekerID, start, end string) dto.BookingRequestResponse {
	t.Helper()

	res, err := f.svc.Submit(f.ctx, seekerID, stay(start, end))
	require.NoError(t, err)

	return res
}

func (f fixture) assertNoOverlaps(t *testing.T) {
	t.Helper()

	room, err := f.listings.GetRoom(f.ctx, roomID)
	require.NoError(t, err)

	for i := range room.Bookings {
		for j := i + 1; j < len(room.Bookings); j++ {
			assert.False(t, room.Bookings[i].Range().Overlaps(room.Bookings[j].Range()),
				"bookings %s and %s overlap", room.Bookings[i].ID, room.Bookings[j].ID)
		}
	}
}

func TestReservationService_Submit(t *testing.T) {
	tests := []struct {
		name     string
		seekerID string
		req      dto.SubmitRequest
		check    func(t *testing.T, err error)
	}{
		{
			name:     "success",
			seekerID: "seeker",
			req:      stay("2025-01-10", "2025-01-20"),
			check:    func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name:     "inverted range",
			seekerID: "seeker",
			req:      stay("2025-01-20", "2025-01-10"),
			check: func(t *testing.T, err error) {
				assert.True(t, failure.IsValidation(err))
				assert.EqualError(t, err, "start date must be before end date")
			},
		},
		{
			name:     "outside window",
			seekerID: "seeker",
			req:      stay("2025-06-20", "2025-07-05"),
			check: func(t *testing.T, err error) {
				assert.True(t, failure.IsConflict(err))
				assert.EqualError(t, err, listingModel.ErrOutsideWindow.Error())
			},
		},
		{
			name:     "unknown room",
			seekerID: "seeker",
			req:      dto.SubmitRequest{RoomID: "nope", StartDate: "2025-01-10", EndDate: "2025-01-20"},
			check:    func(t *testing.T, err error) { assert.True(t, failure.IsNotFound(err)) },
		},
		{
			name:     "owner cannot request",
			seekerID: "owner",
			req:      stay("2025-01-10", "2025-01-20"),
			check: func(t *testing.T, err error) {
				assert.True(t, failure.IsForbidden(err))
				assert.EqualError(t, err, "actor is not a seeker")
			},
		},
		{
			name:     "deactivated seeker",
			seekerID: "gone",
			req:      stay("2025-01-10", "2025-01-20"),
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "seeker account is deactivated")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			res, err := f.svc.Submit(f.ctx, tt.seekerID, tt.req)
			tt.check(t, err)

			if err == nil {
				assert.Equal(t, string(model.StatusPending), res.Status)

				room, err := f.listings.GetRoom(f.ctx, roomID)
				require.NoError(t, err)
				assert.Empty(t, room.Bookings, "submission never holds the room")
			}
		})
	}
}

func TestReservationService_AdjacentStaysBothConfirm(t *testing.T) {
	f := newFixture(t)

	first := f.submit(t, "seeker", "2025-01-10", "2025-01-20")
	res, err := f.svc.Decide(f.ctx, "owner", first.ID, true)
	require.NoError(t, err)
	require.NotNil(t, res.Booking)
	assert.Equal(t, string(model.StatusAccepted), res.Request.Status)

	second := f.submit(t, "seeker-2", "2025-01-20", "2025-02-01")
	res, err = f.svc.Decide(f.ctx, "owner", second.ID, true)
	require.NoError(t, err)
	require.NotNil(t, res.Booking)

	_, err = f.svc.Submit(f.ctx, "seeker", stay("2025-01-15", "2025-01-25"))
	assert.True(t, failure.IsConflict(err))
	assert.EqualError(t, err, listingModel.ErrOverlap.Error())

	f.assertNoOverlaps(t)
}

func TestReservationService_AcceptRevalidatesOverlap(t *testing.T) {
	f := newFixture(t)

	winner := f.submit(t, "seeker", "2025-02-01", "2025-02-10")
	loser := f.submit(t, "seeker-2", "2025-02-05", "2025-02-15")

	_, err := f.svc.Decide(f.ctx, "owner", winner.ID, true)
	require.NoError(t, err)

	res, err := f.svc.Decide(f.ctx, "owner", loser.ID, true)
	assert.True(t, failure.IsConflict(err))
	assert.EqualError(t, err, "conflict detected: room already booked for those dates")
	assert.Nil(t, res.Booking)

	request, err := f.repo.GetRequest(f.ctx, loser.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, request.Status, "failed accept leaves the request rejected")

	f.assertNoOverlaps(t)
}

func TestReservationService_AcceptRevalidatesWindow(t *testing.T) {
	f := newFixture(t)

	pending := f.submit(t, "seeker", "2025-05-01", "2025-05-20")

	room, err := f.listings.GetRoom(f.ctx, roomID)
	require.NoError(t, err)

	room.Availability = daterange.New(timezone.Date(2025, time.January, 1), timezone.Date(2025, time.April, 30))
	require.NoError(t, f.listings.SaveRoom(f.ctx, room))

	_, err = f.svc.Decide(f.ctx, "owner", pending.ID, true)
	assert.True(t, failure.IsConflict(err))
	assert.EqualError(t, err, "request dates no longer within availability window")

	request, err := f.repo.GetRequest(f.ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusRejected, request.Status)
	assert.Empty(t, f.repo.GetBookingsBySeeker(f.ctx, "seeker"))
}

func TestReservationService_RejectAcknowledges(t *testing.T) {
	f := newFixture(t)

	pending := f.submit(t, "seeker", "2025-03-01", "2025-03-10")

	res, err := f.svc.Decide(f.ctx, "owner", pending.ID, false)
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusRejected), res.Request.Status)
	assert.NotNil(t, res.Request.DecidedAt)
	assert.Nil(t, res.Booking)

	_, err = f.svc.Decide(f.ctx, "owner", pending.ID, true)
	assert.True(t, failure.IsConflict(err), "terminal requests cannot be decided again")
	assert.EqualError(t, err, "booking request has already been decided")
}

func TestReservationService_DecideAuthorization(t *testing.T) {
	f := newFixture(t)

	pending := f.submit(t, "seeker", "2025-03-01", "2025-03-10")

	_, err := f.svc.Decide(f.ctx, "other-owner", pending.ID, true)
	assert.True(t, failure.IsForbidden(err))

	_, err = f.svc.Decide(f.ctx, "seeker", pending.ID, true)
	assert.True(t, failure.IsForbidden(err))

	_, err = f.svc.Decide(f.ctx, "owner", "missing", true)
	assert.True(t, failure.IsNotFound(err))

	request, err := f.repo.GetRequest(f.ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, request.Status)
}

func TestReservationService_ConcurrentAcceptsConfirmOnce(t *testing.T) {
	f := newFixture(t)

	const contenders = 8

	requests := make([]string, contenders)
	for i := range requests {
		requests[i] = f.submit(t, "seeker", "2025-04-01", "2025-04-10").ID
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		confirmed int
	)

	for _, id := range requests {
		wg.Add(1)

		go func() {
			defer wg.Done()

			res, err := f.svc.Decide(f.ctx, "owner", id, true)
			if err == nil && res.Booking != nil {
				mu.Lock()
				confirmed++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, confirmed)
	f.assertNoOverlaps(t)
}

func TestReservationService_Listings(t *testing.T) {
	f := newFixture(t)

	first := f.submit(t, "seeker", "2025-01-10", "2025-01-20")
	f.submit(t, "seeker-2", "2025-02-10", "2025-02-20")

	_, err := f.svc.Decide(f.ctx, "owner", first.ID, true)
	require.NoError(t, err)

	owned, err := f.svc.ListForOwner(f.ctx, "owner")
	require.NoError(t, err)
	require.Equal(t, 2, owned.TotalData)
	assert.Equal(t, first.ID, owned.Requests[0].ID, "oldest first")

	other, err := f.svc.ListForOwner(f.ctx, "other-owner")
	require.NoError(t, err)
	assert.Zero(t, other.TotalData)

	mine, err := f.svc.ListForSeeker(f.ctx, "seeker")
	require.NoError(t, err)
	require.Equal(t, 1, mine.TotalData)
	assert.Equal(t, string(model.StatusAccepted), mine.Requests[0].Status)

	bookings, err := f.svc.ListBookings(f.ctx, "seeker")
	require.NoError(t, err)
	require.Equal(t, 1, bookings.TotalData)
	assert.Equal(t, "2025-01-10", bookings.Bookings[0].StartDate)
	assert.Equal(t, "2025-01-20", bookings.Bookings[0].EndDate)

	_, err = f.svc.ListBookings(f.ctx, "owner")
	assert.True(t, failure.IsForbidden(err))
}

func TestReservationService_DeactivationKeepsBookings(t *testing.T) {
	f := newFixture(t)

	first := f.submit(t, "seeker", "2025-01-10", "2025-01-20")
	_, err := f.svc.Decide(f.ctx, "owner", first.ID, true)
	require.NoError(t, err)

	seeker, err := f.actors.Get(f.ctx, "seeker")
	require.NoError(t, err)

	seeker.Active = false
	require.NoError(t, f.actors.Save(f.ctx, seeker))

	_, err = f.svc.Submit(f.ctx, "seeker", stay("2025-03-01", "2025-03-05"))
	assert.True(t, failure.IsForbidden(err))

	bookings, err := f.svc.ListBookings(f.ctx, "seeker")
	require.NoError(t, err)
	assert.Equal(t, 1, bookings.TotalData)

	room, err := f.listings.GetRoom(f.ctx, roomID)
	require.NoError(t, err)
	assert.Len(t, room.Bookings, 1)
}
