package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"slices"

	"rentals/infras/memory"
	"rentals/infras/otel"
	listingModel "rentals/internal/domains/listing/model"
	listingRepo "rentals/internal/domains/listing/repository"
	"rentals/internal/domains/search/model"
	"rentals/internal/domains/search/model/dto"
	"rentals/shared/constant"
	"rentals/shared/daterange"
	"rentals/shared/failure"
	"rentals/shared/validator"

	"github.com/rs/zerolog/log"
)

type Search interface {
	// SearchRooms is the query-string entry point.
	SearchRooms(ctx context.Context, req dto.SearchRoomsRequest) (dto.SearchRoomsResponse, error)
	// Rooms returns the rooms matching criteria, sorted stably by ordering.
	Rooms(ctx context.Context, criteria model.Criteria, ordering model.Ordering) ([]listingModel.Room, error)
}

type serviceImpl struct {
	db       *memory.DB
	listings listingRepo.Listing
	otel     otel.Otel
}

func New(db *memory.DB, listings listingRepo.Listing, otel otel.Otel) Search {
	return &serviceImpl{
		db:       db,
		listings: listings,
		otel:     otel,
	}
}

func (s *serviceImpl) SearchRooms(ctx context.Context, req dto.SearchRoomsRequest) (res dto.SearchRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SearchRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	if err = req.Validate(); err != nil {
		return res, err
	}

	window, err := daterange.Parse(req.StartDate, req.EndDate)
	if err != nil {
		return res, err
	}

	rooms, err := s.Rooms(ctx, req.ToCriteria(window), req.Ordering())
	if err != nil {
		return res, err
	}

	res.FromModels(rooms)

	return res, nil
}

func (s *serviceImpl) Rooms(ctx context.Context, criteria model.Criteria, ordering model.Ordering) (res []listingModel.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !criteria.Window.Valid() {
		return nil, failure.BadRequestFromString("start date must be before end date")
	}

	if ordering == nil {
		ordering = model.PriceAscending
	}

	err = s.db.View(ctx, func(ctx context.Context) error {
		candidates := s.listings.GetRooms(ctx, s.candidates(ctx, criteria))
		areas := make(map[string]string)

		res = make([]listingModel.Room, 0, len(candidates))

		for _, room := range candidates {
			area, ok := areas[room.PropertyID]
			if !ok {
				property, err := s.listings.GetProperty(ctx, room.PropertyID)
				if err != nil {
					log.Warn().Str("room_id", room.ID).Msg("room without property skipped in search")

					continue
				}

				area = property.Area
				areas[room.PropertyID] = area
			}

			if criteria.Matches(room, area) {
				res = append(res, room)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(res, ordering.Compare)

	scope.SetAttribute("search.results", len(res))

	return res, nil
}

// candidates narrows the room set through the indexes. The lock must be held.
func (s *serviceImpl) candidates(ctx context.Context, criteria model.Criteria) []string {
	switch {
	case criteria.Area != nil && criteria.Category != nil:
		inCategory := s.listings.RoomIDsByCategory(ctx, *criteria.Category)

		return slices.DeleteFunc(s.listings.RoomIDsByArea(ctx, *criteria.Area), func(id string) bool {
			return !slices.Contains(inCategory, id)
		})
	case criteria.Area != nil:
		return s.listings.RoomIDsByArea(ctx, *criteria.Area)
	case criteria.Category != nil:
		return s.listings.RoomIDsByCategory(ctx, *criteria.Category)
	default:
		return s.listings.RoomIDs(ctx)
	}
}
