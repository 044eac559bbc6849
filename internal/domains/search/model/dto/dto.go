package dto

import (
	"net/http"

	listingModel "rentals/internal/domains/listing/model"
	listingDto "rentals/internal/domains/listing/model/dto"
	"rentals/internal/domains/search/model"
	"rentals/shared"
	"rentals/shared/constant"
	"rentals/shared/daterange"
	gDto "rentals/shared/dto"
	"rentals/shared/failure"
)

type SearchRoomsRequest struct {
	Area      *string `json:"area"       validate:"omitempty,notblank"`
	Category  *string `json:"category"   validate:"omitempty,oneof=single double studio"`
	MinPrice  *int    `json:"min_price"  validate:"omitempty,gte=0"`
	MaxPrice  *int    `json:"max_price"  validate:"omitempty,gte=0"`
	StartDate string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date"   validate:"required,datetime=2006-01-02"`
	gDto.SortParams
}

// FromRequest reads the query string. Malformed prices are reported as
// validation failures.
func (s *SearchRoomsRequest) FromRequest(r *http.Request) error {
	query := r.URL.Query()

	minPrice, err := shared.ParseOptionalInt(constant.RequestParamMinPrice, query.Get(constant.RequestParamMinPrice))
	if err != nil {
		return err
	}

	maxPrice, err := shared.ParseOptionalInt(constant.RequestParamMaxPrice, query.Get(constant.RequestParamMaxPrice))
	if err != nil {
		return err
	}

	s.Area = shared.ParseOptionalString(query.Get(constant.RequestParamArea))
	s.Category = shared.ParseOptionalString(query.Get(constant.RequestParamCategory))
	s.MinPrice = minPrice
	s.MaxPrice = maxPrice
	s.StartDate = query.Get(constant.RequestParamStartDate)
	s.EndDate = query.Get(constant.RequestParamEndDate)
	s.SortParams.FromRequest(r)

	return nil
}

// Ordering maps sort_dir onto a price ordering.
func (s *SearchRoomsRequest) Ordering() model.Ordering {
	if s.SortDir == gDto.SortDirDesc {
		return model.PriceDescending
	}

	return model.PriceAscending
}

// Validate checks cross-field constraints the tags cannot express.
func (s *SearchRoomsRequest) Validate() error {
	if s.MinPrice != nil && s.MaxPrice != nil && *s.MinPrice > *s.MaxPrice {
		return failure.BadRequestFromString("min_price must be less than or equal to max_price")
	}

	return nil
}

func (s *SearchRoomsRequest) ToCriteria(window daterange.Range) model.Criteria {
	criteria := model.Criteria{
		Area:     s.Area,
		MinPrice: s.MinPrice,
		MaxPrice: s.MaxPrice,
		Window:   window,
	}

	if s.Category != nil {
		category := listingModel.Category(*s.Category)
		criteria.Category = &category
	}

	return criteria
}

type SearchRoomsResponse struct {
	listingDto.GetRoomsResponse
}
