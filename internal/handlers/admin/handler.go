package admin

import (
	"net/http"

	"rentals/infras/otel"
	"rentals/internal/domains/admin/service"
	listingService "rentals/internal/domains/listing/service"
	"rentals/shared"
	"rentals/shared/constant"
	"rentals/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service  service.Admin
	listings listingService.Listing
	otel     otel.Otel
}

func New(service service.Admin, listings listingService.Listing, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		listings: listings,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Get("/actors", handler.ListActors)
		routerGroup.Post("/actors/{id}/deactivate", handler.DeactivateActor)
		routerGroup.Get("/listings", handler.ListListings)
		routerGroup.Delete("/rooms/{id}", handler.RemoveListing)
		routerGroup.Post("/indexes/rebuild", handler.RebuildIndexes)
	})
}

// ListActors lists every actor ordered by email.
// @Summary List actors
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[actorDto.GetActorsResponse]
// @Failure 403 {object} response.Error
// @Router /v1/admin/actors [get]
// @Security BearerAuth
func (handler *Handler) ListActors(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListActors")
	defer scope.End()

	adminID, err := shared.ActorIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.ListActors(ctx, adminID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list actors")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeactivateActor disables an actor account.
// @Summary Deactivate an actor
// @Tags Admin
// @Produce json
// @Param id path string true "Actor ID"
// @Success 200 {object} response.Data[actorDto.ActorResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/actors/{id}/deactivate [post]
// @Security BearerAuth
func (handler *Handler) DeactivateActor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateActor")
	defer scope.End()

	adminID, err := shared.ActorIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	actorID := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.DeactivateActor(ctx, adminID, actorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("actor_id", actorID).Msg("failed to deactivate actor")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Actor " + actorID + " deactivated by " + adminID)

	response.WithJSON(w, http.StatusOK, res)
}

// ListListings lists every room with its property, ordered by area then address.
// @Summary List listings
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[listingDto.GetListingsResponse]
// @Failure 403 {object} response.Error
// @Router /v1/admin/listings [get]
// @Security BearerAuth
func (handler *Handler) ListListings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListListings")
	defer scope.End()

	adminID, err := shared.ActorIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.ListListings(ctx, adminID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list listings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RemoveListing removes a room regardless of its bookings.
// @Summary Remove a listing
// @Tags Admin
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RemoveListingResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveListing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveListing")
	defer scope.End()

	adminID, err := shared.ActorIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	roomID := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.RemoveListing(ctx, adminID, roomID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to remove listing")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listing " + roomID + " removed by " + adminID)

	response.WithJSON(w, http.StatusOK, res)
}

// RebuildIndexes recomputes the area and category indexes from the room store.
// @Summary Rebuild search indexes
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Router /v1/admin/indexes/rebuild [post]
// @Security BearerAuth
func (handler *Handler) RebuildIndexes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RebuildIndexes")
	defer scope.End()

	if err := handler.listings.RebuildIndexes(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to rebuild indexes")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Indexes rebuilt successfully")
}
