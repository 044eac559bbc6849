package reservation

import (
	"net/http"

	"rentals/infras/otel"
	"rentals/internal/domains/reservation/model/dto"
	"rentals/internal/domains/reservation/service"
	"rentals/shared"
	"rentals/shared/constant"
	"rentals/shared/validator"
	"rentals/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	otel    otel.Otel
}

func New(service service.Reservation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/requests", handler.Submit)
	router.Get("/requests", handler.ListForSeeker)
	router.Get("/requests/owner", handler.ListForOwner)
	router.Post("/requests/{id}/decision", handler.Decide)

	router.Get("/bookings/mine", handler.ListBookings)
}

// Submit files a booking request for a room.
// @Summary Submit a booking request
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.SubmitRequest true "Booking request"
// @Success 201 {object} response.Data[dto.BookingRequestResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/requests [post]
// @Security BearerAuth
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	seekerID, err := shared.ActorIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.SubmitRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, seekerID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("room_id", req.RoomID).Msg("failed to submit booking request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking request submitted by seeker " + seekerID)

	response.WithJSON(w, http.StatusCreated, res)
}

// ListForSeeker lists the authenticated seeker's booking requests.
// @Summary List own booking requests
// @Tags Reservation
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingRequestsResponse]
// @Failure 403 {object} response.Error
// @Router /v1/requests [get]
// @Security BearerAuth
func (handler *Handler) ListForSeeker(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListForSeeker")
	defer scope.End()

	seekerID, err := shared.ActorIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.ListForSeeker(ctx, seekerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list seeker requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListForOwner lists booking requests for the owner's rooms, oldest first.
// @Summary List incoming booking requests
// @Tags Reservation
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingRequestsResponse]
// @Failure 403 {object} response.Error
// @Router /v1/requests/owner [get]
// @Security BearerAuth
func (handler *Handler) ListForOwner(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListForOwner")
	defer scope.End()

	ownerID, err := shared.ActorIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.ListForOwner(ctx, ownerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list owner requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Decide accepts or rejects a pending booking request.
// @Summary Decide a booking request
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Booking request ID"
// @Param request body dto.DecisionRequest true "Decision"
// @Success 200 {object} response.Data[dto.DecisionResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/requests/{id}/decision [post]
// @Security BearerAuth
func (handler *Handler) Decide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Decide")
	defer scope.End()

	ownerID, err := shared.ActorIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.DecisionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	requestID := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Decide(ctx, ownerID, requestID, *req.Accept)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("request_id", requestID).Msg("failed to decide booking request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking request " + requestID + " decided as " + res.Request.Status)

	response.WithJSON(w, http.StatusOK, res)
}

// ListBookings lists the authenticated seeker's confirmed bookings.
// @Summary List own bookings
// @Tags Reservation
// @Produce json
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 403 {object} response.Error
// @Router /v1/bookings/mine [get]
// @Security BearerAuth
func (handler *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListBookings")
	defer scope.End()

	seekerID, err := shared.ActorIDFromContext(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.ListBookings(ctx, seekerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
