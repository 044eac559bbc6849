// Package repository stores booking requests and the ledger of confirmed
// bookings. The ledger outlives room removal so seekers can still list their
// stays. Callers hold the memory.DB lock.
package repository

import (
	"context"
	"sort"

	"rentals/internal/domains/reservation/model"
	"rentals/shared/failure"
)

type Reservation interface {
	InsertRequest(ctx context.Context, request model.BookingRequest) error
	GetRequest(ctx context.Context, id string) (model.BookingRequest, error)
	SaveRequest(ctx context.Context, request model.BookingRequest) error
	// GetRequestsByOwner returns requests for the owner's rooms, oldest first.
	GetRequestsByOwner(ctx context.Context, ownerID string) []model.BookingRequest
	GetRequestsBySeeker(ctx context.Context, seekerID string) []model.BookingRequest
	// PurgePending drops every PENDING request for roomID and reports how many.
	PurgePending(ctx context.Context, roomID string) int

	InsertBooking(ctx context.Context, booking model.Booking) error
	GetBookingsBySeeker(ctx context.Context, seekerID string) []model.Booking
}

type storedRequest struct {
	model.BookingRequest
	seq uint64
}

type repositoryImpl struct {
	requests map[string]storedRequest
	bookings []model.Booking
	nextSeq  uint64
}

func New() Reservation {
	return &repositoryImpl{
		requests: make(map[string]storedRequest),
	}
}

func (r *repositoryImpl) InsertRequest(_ context.Context, request model.BookingRequest) error {
	if _, ok := r.requests[request.ID]; ok {
		return failure.Conflict("booking request already exists")
	}

	r.requests[request.ID] = storedRequest{BookingRequest: request, seq: r.nextSeq}
	r.nextSeq++

	return nil
}

func (r *repositoryImpl) GetRequest(_ context.Context, id string) (model.BookingRequest, error) {
	stored, ok := r.requests[id]
	if !ok {
		return model.BookingRequest{}, failure.NotFound("booking request not found")
	}

	return stored.BookingRequest, nil
}

func (r *repositoryImpl) SaveRequest(_ context.Context, request model.BookingRequest) error {
	stored, ok := r.requests[request.ID]
	if !ok {
		return failure.NotFound("booking request not found")
	}

	stored.BookingRequest = request
	r.requests[request.ID] = stored

	return nil
}

func (r *repositoryImpl) GetRequestsByOwner(_ context.Context, ownerID string) []model.BookingRequest {
	return r.collect(func(request model.BookingRequest) bool {
		return request.OwnerID == ownerID
	})
}

func (r *repositoryImpl) GetRequestsBySeeker(_ context.Context, seekerID string) []model.BookingRequest {
	return r.collect(func(request model.BookingRequest) bool {
		return request.SeekerID == seekerID
	})
}

func (r *repositoryImpl) PurgePending(_ context.Context, roomID string) int {
	purged := 0

	for id, stored := range r.requests {
		if stored.RoomID == roomID && stored.Status == model.StatusPending {
			delete(r.requests, id)
			purged++
		}
	}

	return purged
}

func (r *repositoryImpl) InsertBooking(_ context.Context, booking model.Booking) error {
	r.bookings = append(r.bookings, booking)

	return nil
}

func (r *repositoryImpl) GetBookingsBySeeker(_ context.Context, seekerID string) []model.Booking {
	res := make([]model.Booking, 0)

	for _, booking := range r.bookings {
		if booking.SeekerID == seekerID {
			res = append(res, booking)
		}
	}

	return res
}

func (r *repositoryImpl) collect(keep func(model.BookingRequest) bool) []model.BookingRequest {
	matched := make([]storedRequest, 0)

	for _, stored := range r.requests {
		if keep(stored.BookingRequest) {
			matched = append(matched, stored)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}

		return matched[i].seq < matched[j].seq
	})

	res := make([]model.BookingRequest, len(matched))
	for i, stored := range matched {
		res[i] = stored.BookingRequest
	}

	return res
}
