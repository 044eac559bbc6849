package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"rentals/infras/memory"
	"rentals/infras/otel"
	actorModel "rentals/internal/domains/actor/model"
	actorRepo "rentals/internal/domains/actor/repository"
	"rentals/internal/domains/listing/model"
	"rentals/internal/domains/listing/model/dto"
	"rentals/internal/domains/listing/repository"
	reservationRepo "rentals/internal/domains/reservation/repository"
	"rentals/shared/constant"
	"rentals/shared/daterange"
	"rentals/shared/failure"
	gModel "rentals/shared/model"
	"rentals/shared/timezone"
	"rentals/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	errNotPropertyOwner = "actor does not own this property"
	errNotRoomOwner     = "actor does not own this room"
	errRoomHasBookings  = "room has confirmed bookings and cannot be removed"
)

type Listing interface {
	CreateProperty(ctx context.Context, ownerID string, req dto.CreatePropertyRequest) (dto.PropertyResponse, error)
	GetProperty(ctx context.Context, id string) (dto.PropertyResponse, error)
	GetOwnProperties(ctx context.Context, ownerID string) (dto.GetPropertiesResponse, error)
	AddRoom(ctx context.Context, ownerID, propertyID string, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetRoom(ctx context.Context, id string) (dto.RoomResponse, error)
	UpdateRoom(ctx context.Context, ownerID, roomID string, req dto.UpdateRoomRequest) (dto.RoomResponse, error)
	RemoveRoom(ctx context.Context, ownerID, roomID string) error
	RebuildIndexes(ctx context.Context) error
}

type serviceImpl struct {
	db           *memory.DB
	repo         repository.Listing
	actors       actorRepo.Actor
	reservations reservationRepo.Reservation
	otel         otel.Otel
}

func New(db *memory.DB, repo repository.Listing, actors actorRepo.Actor, reservations reservationRepo.Reservation, otel otel.Otel) Listing {
	return &serviceImpl{
		db:           db,
		repo:         repo,
		actors:       actors,
		reservations: reservations,
		otel:         otel,
	}
}

func (s *serviceImpl) CreateProperty(ctx context.Context, ownerID string, req dto.CreatePropertyRequest) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateProperty")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.Update(ctx, func(ctx context.Context) error {
		if _, err := s.actors.RequireActive(ctx, ownerID, actorModel.RoleOwner); err != nil {
			return err
		}

		if err := validator.ValidateStruct(&req); err != nil {
			return err
		}

		property := req.ToModel(ownerID)
		if err := s.repo.InsertProperty(ctx, property); err != nil {
			return err
		}

		res.FromModel(property, nil)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create property")

		return res, err
	}

	log.Info().Str("property_id", res.ID).Str("owner_id", ownerID).Msg("property created")

	return res, nil
}

func (s *serviceImpl) GetProperty(ctx context.Context, id string) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProperty")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.View(ctx, func(ctx context.Context) error {
		property, err := s.repo.GetProperty(ctx, id)
		if err != nil {
			return err
		}

		res.FromModel(property, s.repo.GetRooms(ctx, property.RoomIDs))

		return nil
	})

	return res, err
}

func (s *serviceImpl) GetOwnProperties(ctx context.Context, ownerID string) (res dto.GetPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOwnProperties")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.View(ctx, func(ctx context.Context) error {
		if _, err := s.actors.RequireRole(ctx, ownerID, actorModel.RoleOwner); err != nil {
			return err
		}

		properties := s.repo.GetPropertiesByOwner(ctx, ownerID)

		res.TotalData = len(properties)
		res.Properties = make([]dto.PropertyResponse, len(properties))

		for i, property := range properties {
			res.Properties[i].FromModel(property, s.repo.GetRooms(ctx, property.RoomIDs))
		}

		return nil
	})

	return res, err
}

func (s *serviceImpl) AddRoom(ctx context.Context, ownerID, propertyID string, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.Update(ctx, func(ctx context.Context) error {
		if _, err := s.actors.RequireActive(ctx, ownerID, actorModel.RoleOwner); err != nil {
			return err
		}

		property, err := s.repo.GetProperty(ctx, propertyID)
		if err != nil {
			return err
		}

		if property.OwnerID != ownerID {
			return failure.Forbidden(errNotPropertyOwner)
		}

		if err := validator.ValidateStruct(&req); err != nil {
			return err
		}

		window, err := daterange.Parse(req.AvailableFrom, req.AvailableTo)
		if err != nil {
			return err
		}

		room := model.Room{
			ID:           uuid.NewString(),
			PropertyID:   property.ID,
			OwnerID:      ownerID,
			Category:     model.Category(req.Category),
			Price:        req.Price,
			Amenities:    req.Amenities,
			Availability: window,
			Metadata:     gModel.NewMetadata(ownerID),
		}

		if err := s.repo.InsertRoom(ctx, room); err != nil {
			return err
		}

		res.FromModel(room)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("property_id", propertyID).Msg("failed to add room")

		return res, err
	}

	log.Info().Str("room_id", res.ID).Str("property_id", propertyID).Msg("room added")

	return res, nil
}

func (s *serviceImpl) GetRoom(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.View(ctx, func(ctx context.Context) error {
		room, err := s.repo.GetRoom(ctx, id)
		if err != nil {
			return err
		}

		res.FromModel(room)

		return nil
	})

	return res, err
}

func (s *serviceImpl) UpdateRoom(ctx context.Context, ownerID, roomID string, req dto.UpdateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.db.Update(ctx, func(ctx context.Context) error {
		room, err := s.ownedRoom(ctx, ownerID, roomID)
		if err != nil {
			return err
		}

		if err := validator.ValidateStruct(&req); err != nil {
			return err
		}

		if err := applyPatch(&room, req); err != nil {
			return err
		}

		room.Touch(ownerID)

		if err := s.repo.SaveRoom(ctx, room); err != nil {
			return err
		}

		res.FromModel(room)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to update room")

		return res, err
	}

	log.Info().Str("room_id", roomID).Msg("room updated")

	return res, nil
}

func (s *serviceImpl) RemoveRoom(ctx context.Context, ownerID, roomID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var purged int

	err = s.db.Update(ctx, func(ctx context.Context) error {
		room, err := s.ownedRoom(ctx, ownerID, roomID)
		if err != nil {
			return err
		}

		if len(room.Bookings) > 0 {
			return failure.Conflict(errRoomHasBookings)
		}

		if _, err := s.repo.RemoveRoom(ctx, roomID); err != nil {
			return err
		}

		purged = s.reservations.PurgePending(ctx, roomID)

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to remove room")

		return err
	}

	log.Info().Str("room_id", roomID).Int("purged_requests", purged).Msg("room removed by owner")

	return nil
}

func (s *serviceImpl) RebuildIndexes(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RebuildIndexes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.db.Update(ctx, func(ctx context.Context) error {
		s.repo.RebuildIndexes(ctx)

		return nil
	})
}

// ownedRoom requires an active owner holding roomID. The lock must be held.
func (s *serviceImpl) ownedRoom(ctx context.Context, ownerID, roomID string) (model.Room, error) {
	if _, err := s.actors.RequireActive(ctx, ownerID, actorModel.RoleOwner); err != nil {
		return model.Room{}, err
	}

	room, err := s.repo.GetRoom(ctx, roomID)
	if err != nil {
		return model.Room{}, err
	}

	if room.OwnerID != ownerID {
		return model.Room{}, failure.Forbidden(errNotRoomOwner)
	}

	return room, nil
}

func applyPatch(room *model.Room, req dto.UpdateRoomRequest) error {
	if req.Category != nil {
		room.Category = model.Category(*req.Category)
	}

	if req.Price != nil {
		room.Price = *req.Price
	}

	if req.Amenities != nil {
		room.Amenities = *req.Amenities
	}

	if req.AvailableFrom == nil && req.AvailableTo == nil {
		return nil
	}

	window := room.Availability

	if req.AvailableFrom != nil {
		from, err := timezone.ParseDate(*req.AvailableFrom)
		if err != nil {
			return failure.BadRequestFromString("available_from must be a date in YYYY-MM-DD format")
		}

		window.Start = from
	}

	if req.AvailableTo != nil {
		to, err := timezone.ParseDate(*req.AvailableTo)
		if err != nil {
			return failure.BadRequestFromString("available_to must be a date in YYYY-MM-DD format")
		}

		window.End = to
	}

	validated, err := daterange.Require(window.Start, window.End)
	if err != nil {
		return err
	}

	room.Availability = validated

	return nil
}
