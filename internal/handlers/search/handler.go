package search

import (
	"net/http"

	"rentals/infras/otel"
	"rentals/internal/domains/search/model/dto"
	"rentals/internal/domains/search/service"
	"rentals/shared/constant"
	"rentals/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Search
	otel    otel.Otel
}

func New(service service.Search, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms/search", handler.SearchRooms)
}

// SearchRooms finds rooms free for the whole requested stay.
// @Summary Search rooms
// @Description Filter by area, category and price range; only rooms free for [start_date, end_date) are returned.
// @Tags Search
// @Produce json
// @Param area query string false "Area, matched case-insensitively"
// @Param category query string false "single, double or studio"
// @Param min_price query integer false "Minimum monthly price"
// @Param max_price query integer false "Maximum monthly price"
// @Param start_date query string true "Stay start (YYYY-MM-DD)"
// @Param end_date query string true "Stay end, exclusive (YYYY-MM-DD)"
// @Param sort_dir query string false "Price order, ASC or DESC"
// @Success 200 {object} response.Data[dto.SearchRoomsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/rooms/search [get]
func (handler *Handler) SearchRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchRooms")
	defer scope.End()

	req := dto.SearchRoomsRequest{}

	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse search query")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SearchRooms(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search rooms")

		response.WithError(w, err)

		return
	}

	scope.SetAttributes(map[string]any{
		"search.results": res.TotalData,
	})

	response.WithJSON(w, http.StatusOK, res)
}
