package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"sort"

	"rentals/infras/memory"
	"rentals/infras/otel"
	actorModel "rentals/internal/domains/actor/model"
	actorDto "rentals/internal/domains/actor/model/dto"
	actorRepo "rentals/internal/domains/actor/repository"
	"rentals/internal/domains/admin/model/dto"
	listingDto "rentals/internal/domains/listing/model/dto"
	listingRepo "rentals/internal/domains/listing/repository"
	reservationRepo "rentals/internal/domains/reservation/repository"
	"rentals/shared/constant"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
)

type Admin interface {
	ListActors(ctx context.Context, adminID string) (actorDto.GetActorsResponse, error)
	ListListings(ctx context.Context, adminID string) (listingDto.GetListingsResponse, error)
	DeactivateActor(ctx context.Context, adminID, actorID string) (actorDto.ActorResponse, error)
	// RemoveListing removes a room even when it has confirmed bookings.
	RemoveListing(ctx context.Context, adminID, roomID string) (dto.RemoveListingResponse, error)
}

type serviceImpl struct {
	db           *memory.DB
	actors       actorRepo.Actor
	listings     listingRepo.Listing
	reservations reservationRepo.Reservation
	otel         otel.Otel
}

func New(db *memory.DB, actors actorRepo.Actor, listings listingRepo.Listing, reservations reservationRepo.Reservation, otel otel.Otel) Admin {
	return &serviceImpl{
		db:           db,
		actors:       actors,
		listings:     listings,
		reservations: reservations,
		otel:         otel,
	}
}

func (s *serviceImpl) ListActors(ctx context.Context, adminID string) (res actorDto.GetActorsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListActors")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.View(ctx, func(ctx context.Context) error {
		if _, err := s.actors.RequireActive(ctx, adminID, actorModel.RoleAdministrator); err != nil {
			return err
		}

		res.FromModels(s.actors.GetAll(ctx))

		return nil
	})

	return res, err
}

func (s *serviceImpl) ListListings(ctx context.Context, adminID string) (res listingDto.GetListingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListListings")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.View(ctx, func(ctx context.Context) error {
		if _, err := s.actors.RequireActive(ctx, adminID, actorModel.RoleAdministrator); err != nil {
			return err
		}

		listings := s.listings.GetListings(ctx)
		fold := cases.Fold()

		sort.Slice(listings, func(i, j int) bool {
			a, b := listings[i], listings[j]

			if areaA, areaB := fold.String(a.Property.Area), fold.String(b.Property.Area); areaA != areaB {
				return areaA < areaB
			}

			if addrA, addrB := fold.String(a.Property.Address), fold.String(b.Property.Address); addrA != addrB {
				return addrA < addrB
			}

			return a.Room.ID < b.Room.ID
		})

		res.FromModels(listings)

		return nil
	})

	return res, err
}

func (s *serviceImpl) DeactivateActor(ctx context.Context, adminID, actorID string) (res actorDto.ActorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeactivateActor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var changed bool

	err = s.db.Update(ctx, func(ctx context.Context) error {
		if _, err := s.actors.RequireActive(ctx, adminID, actorModel.RoleAdministrator); err != nil {
			return err
		}

		actor, err := s.actors.Get(ctx, actorID)
		if err != nil {
			return err
		}

		if actor.Active {
			actor.Active = false
			actor.Touch(adminID)

			if err := s.actors.Save(ctx, actor); err != nil {
				return err
			}

			changed = true
		}

		res.FromModel(actor)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("actor_id", actorID).Msg("failed to deactivate actor")

		return res, err
	}

	log.Info().Str("actor_id", actorID).Bool("changed", changed).Msg("actor deactivated")

	return res, nil
}

func (s *serviceImpl) RemoveListing(ctx context.Context, adminID, roomID string) (res dto.RemoveListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveListing")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.Update(ctx, func(ctx context.Context) error {
		if _, err := s.actors.RequireActive(ctx, adminID, actorModel.RoleAdministrator); err != nil {
			return err
		}

		room, err := s.listings.RemoveRoom(ctx, roomID)
		if err != nil {
			return err
		}

		res.RoomID = room.ID
		res.OrphanedBookings = len(room.Bookings)
		res.PurgedRequests = s.reservations.PurgePending(ctx, room.ID)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to remove listing")

		return res, err
	}

	log.Info().
		Str("room_id", roomID).
		Int("purged_requests", res.PurgedRequests).
		Int("orphaned_bookings", res.OrphanedBookings).
		Msg("listing removed by administrator")

	return res, nil
}
