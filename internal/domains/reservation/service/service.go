package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"

	"rentals/infras/memory"
	"rentals/infras/otel"
	actorModel "rentals/internal/domains/actor/model"
	actorRepo "rentals/internal/domains/actor/repository"
	listingModel "rentals/internal/domains/listing/model"
	listingRepo "rentals/internal/domains/listing/repository"
	"rentals/internal/domains/reservation/model"
	"rentals/internal/domains/reservation/model/dto"
	"rentals/internal/domains/reservation/repository"
	"rentals/shared/constant"
	"rentals/shared/daterange"
	"rentals/shared/failure"
	"rentals/shared/timezone"
	"rentals/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	errNotRequestOwner   = "actor does not own the room for this request"
	errAlreadyDecided    = "booking request has already been decided"
	errWindowNoLongerFit = "request dates no longer within availability window"
	errNowOverlapping    = "conflict detected: room already booked for those dates"
)

type Reservation interface {
	Submit(ctx context.Context, seekerID string, req dto.SubmitRequest) (dto.BookingRequestResponse, error)
	// Decide rejects or accepts a pending request. A failed accept leaves the
	// request REJECTED and returns a state conflict.
	Decide(ctx context.Context, ownerID, requestID string, accept bool) (dto.DecisionResponse, error)
	ListForOwner(ctx context.Context, ownerID string) (dto.GetBookingRequestsResponse, error)
	ListForSeeker(ctx context.Context, seekerID string) (dto.GetBookingRequestsResponse, error)
	ListBookings(ctx context.Context, seekerID string) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	db       *memory.DB
	repo     repository.Reservation
	listings listingRepo.Listing
	actors   actorRepo.Actor
	otel     otel.Otel
}

func New(db *memory.DB, repo repository.Reservation, listings listingRepo.Listing, actors actorRepo.Actor, otel otel.Otel) Reservation {
	return &serviceImpl{
		db:       db,
		repo:     repo,
		listings: listings,
		actors:   actors,
		otel:     otel,
	}
}

func (s *serviceImpl) Submit(ctx context.Context, seekerID string, req dto.SubmitRequest) (res dto.BookingRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.Update(ctx, func(ctx context.Context) error {
		if _, err := s.actors.RequireActive(ctx, seekerID, actorModel.RoleSeeker); err != nil {
			return err
		}

		if err := validator.ValidateStruct(&req); err != nil {
			return err
		}

		room, err := s.listings.GetRoom(ctx, req.RoomID)
		if err != nil {
			return err
		}

		stay, err := daterange.Parse(req.StartDate, req.EndDate)
		if err != nil {
			return err
		}

		if err := room.CheckAvailability(stay); err != nil {
			return failure.Conflict(err.Error())
		}

		request := model.BookingRequest{
			ID:        uuid.NewString(),
			SeekerID:  seekerID,
			RoomID:    room.ID,
			OwnerID:   room.OwnerID,
			Start:     stay.Start,
			End:       stay.End,
			Status:    model.StatusPending,
			CreatedAt: timezone.Now(),
		}

		if err := s.repo.InsertRequest(ctx, request); err != nil {
			return err
		}

		res.FromModel(request)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("seeker_id", seekerID).Str("room_id", req.RoomID).Msg("failed to submit booking request")

		return res, err
	}

	log.Info().Str("request_id", res.ID).Str("room_id", res.RoomID).Msg("booking request submitted")

	return res, nil
}

func (s *serviceImpl) Decide(ctx context.Context, ownerID, requestID string, accept bool) (res dto.DecisionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Decide")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("decision.accept", accept)

	// Re-validation and attachment share one critical section so that two
	// accepts on overlapping requests cannot both pass.
	err = s.db.Update(ctx, func(ctx context.Context) error {
		if _, err := s.actors.RequireActive(ctx, ownerID, actorModel.RoleOwner); err != nil {
			return err
		}

		request, err := s.repo.GetRequest(ctx, requestID)
		if err != nil {
			return err
		}

		room, err := s.listings.GetRoom(ctx, request.RoomID)
		if err != nil {
			return err
		}

		if room.OwnerID != ownerID {
			return failure.Forbidden(errNotRequestOwner)
		}

		if request.Status != model.StatusPending {
			return failure.Conflict(errAlreadyDecided)
		}

		if !accept {
			request, err = s.settle(ctx, request, model.StatusRejected)
			if err != nil {
				return err
			}

			res.Request.FromModel(request)

			return nil
		}

		if err := room.CheckAvailability(request.Range()); err != nil {
			if _, saveErr := s.settle(ctx, request, model.StatusRejected); saveErr != nil {
				return saveErr
			}

			if errors.Is(err, listingModel.ErrOutsideWindow) {
				return failure.Conflict(errWindowNoLongerFit)
			}

			return failure.Conflict(errNowOverlapping)
		}

		booking := model.Booking{
			ID:          uuid.NewString(),
			RequestID:   request.ID,
			SeekerID:    request.SeekerID,
			RoomID:      room.ID,
			Start:       request.Start,
			End:         request.End,
			ConfirmedAt: timezone.Now(),
		}

		if err := s.listings.AttachBooking(ctx, room.ID, booking); err != nil {
			return err
		}

		if err := s.repo.InsertBooking(ctx, booking); err != nil {
			return err
		}

		request, err = s.settle(ctx, request, model.StatusAccepted)
		if err != nil {
			return err
		}

		res.Request.FromModel(request)
		res.Booking = &dto.BookingResponse{}
		res.Booking.FromModel(booking)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("request_id", requestID).Bool("accept", accept).Msg("failed to decide booking request")

		return res, err
	}

	log.Info().Str("request_id", requestID).Str("status", res.Request.Status).Msg("booking request decided")

	return res, nil
}

func (s *serviceImpl) ListForOwner(ctx context.Context, ownerID string) (res dto.GetBookingRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForOwner")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.View(ctx, func(ctx context.Context) error {
		if _, err := s.actors.RequireRole(ctx, ownerID, actorModel.RoleOwner); err != nil {
			return err
		}

		res.FromModels(s.repo.GetRequestsByOwner(ctx, ownerID))

		return nil
	})

	return res, err
}

func (s *serviceImpl) ListForSeeker(ctx context.Context, seekerID string) (res dto.GetBookingRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListForSeeker")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.View(ctx, func(ctx context.Context) error {
		if _, err := s.actors.RequireRole(ctx, seekerID, actorModel.RoleSeeker); err != nil {
			return err
		}

		res.FromModels(s.repo.GetRequestsBySeeker(ctx, seekerID))

		return nil
	})

	return res, err
}

func (s *serviceImpl) ListBookings(ctx context.Context, seekerID string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListBookings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.View(ctx, func(ctx context.Context) error {
		if _, err := s.actors.RequireRole(ctx, seekerID, actorModel.RoleSeeker); err != nil {
			return err
		}

		res.FromModels(s.repo.GetBookingsBySeeker(ctx, seekerID))

		return nil
	})

	return res, err
}

func (s *serviceImpl) settle(ctx context.Context, request model.BookingRequest, status model.Status) (model.BookingRequest, error) {
	now := timezone.Now()

	request.Status = status
	request.DecidedAt = &now

	if err := s.repo.SaveRequest(ctx, request); err != nil {
		return model.BookingRequest{}, err
	}

	return request, nil
}
