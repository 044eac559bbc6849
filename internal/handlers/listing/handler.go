package listing

import (
	"net/http"

	"rentals/infras/otel"
	"rentals/internal/domains/listing/model/dto"
	"rentals/internal/domains/listing/service"
	"rentals/shared"
	"rentals/shared/constant"
	"rentals/shared/validator"
	"rentals/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Listing
	otel    otel.Otel
}

func New(service service.Listing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/properties", handler.CreateProperty)
	router.Get("/properties/mine", handler.GetOwnProperties)
	router.Get("/properties/{id}", handler.GetProperty)
	router.Post("/properties/{id}/rooms", handler.AddRoom)

	router.Get("/rooms/{id}", handler.GetRoom)
	router.Patch("/rooms/{id}", handler.UpdateRoom)
	router.Delete("/rooms/{id}", handler.RemoveRoom)
}

// CreateProperty registers a property for the authenticated owner.
// @Summary Create a property
// @Tags Listing
// @Accept json
// @Produce json
// @Param request body dto.CreatePropertyRequest true "Property"
// @Success 201 {object} response.Data[dto.PropertyResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/properties [post]
// @Security BearerAuth
func (handler *Handler) CreateProperty(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProperty")
	defer scope.End()

	ownerID, err := shared.ActorIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.CreatePropertyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.CreateProperty(ctx, ownerID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create property")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Property created successfully by owner " + ownerID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetOwnProperties lists the authenticated owner's properties.
// @Summary List own properties
// @Tags Listing
// @Produce json
// @Success 200 {object} response.Data[dto.GetPropertiesResponse]
// @Failure 403 {object} response.Error
// @Router /v1/properties/mine [get]
// @Security BearerAuth
func (handler *Handler) GetOwnProperties(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOwnProperties")
	defer scope.End()

	ownerID, err := shared.ActorIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetOwnProperties(ctx, ownerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get own properties")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetProperty retrieves a property with its rooms.
// @Summary Get a property
// @Tags Listing
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} response.Data[dto.PropertyResponse]
// @Failure 404 {object} response.Error
// @Router /v1/properties/{id} [get]
func (handler *Handler) GetProperty(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProperty")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetProperty(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("property_id", id).Msg("failed to get property")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// AddRoom adds a room to one of the owner's properties.
// @Summary Add a room
// @Tags Listing
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body dto.CreateRoomRequest true "Room"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/properties/{id}/rooms [post]
// @Security BearerAuth
func (handler *Handler) AddRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRoom")
	defer scope.End()

	ownerID, err := shared.ActorIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	propertyID := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.AddRoom(ctx, ownerID, propertyID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("property_id", propertyID).Msg("failed to add room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room added successfully to property " + propertyID)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetRoom retrieves a room by its ID.
// @Summary Get a room
// @Tags Listing
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.GetRoom(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", id).Msg("failed to get room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateRoom patches the owner's room.
// @Summary Update a room
// @Tags Listing
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Room fields to change"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	ownerID, err := shared.ActorIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.UpdateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.UpdateRoom(ctx, ownerID, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", id).Msg("failed to update room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// RemoveRoom deletes the owner's room when it has no confirmed bookings.
// @Summary Remove a room
// @Tags Listing
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/rooms/{id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveRoom")
	defer scope.End()

	ownerID, err := shared.ActorIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.RemoveRoom(ctx, ownerID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", id).Msg("failed to remove room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room removed successfully by owner " + ownerID)

	response.WithMessage(writer, http.StatusOK, "Room removed successfully")
}
