package dto

import (
	"rentals/internal/domains/listing/model"
	gDto "rentals/shared/dto"
	gModel "rentals/shared/model"
	"rentals/shared/timezone"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Address     string `json:"address"     validate:"required,notblank,max=200"`
	Area        string `json:"area"        validate:"required,notblank,max=100"`
	Description string `json:"description" validate:"required,notblank,max=2000"`
}

func (c *CreatePropertyRequest) ToModel(ownerID string) model.Property {
	return model.Property{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Address:     c.Address,
		Area:        c.Area,
		Description: c.Description,
		RoomIDs:     []string{},
		Metadata:    gModel.NewMetadata(ownerID),
	}
}

type CreateRoomRequest struct {
	Category      string `json:"category"       validate:"required,oneof=single double studio"`
	Price         int    `json:"price"          validate:"gt=0"`
	Amenities     string `json:"amenities"      validate:"required,notblank,max=1000"`
	AvailableFrom string `json:"available_from" validate:"required,datetime=2006-01-02"`
	AvailableTo   string `json:"available_to"   validate:"required,datetime=2006-01-02"`
}

// UpdateRoomRequest is a patch: nil fields keep their current value.
type UpdateRoomRequest struct {
	Category      *string `json:"category"       validate:"omitempty,oneof=single double studio"`
	Price         *int    `json:"price"          validate:"omitempty,gt=0"`
	Amenities     *string `json:"amenities"      validate:"omitempty,notblank,max=1000"`
	AvailableFrom *string `json:"available_from" validate:"omitempty,datetime=2006-01-02"`
	AvailableTo   *string `json:"available_to"   validate:"omitempty,datetime=2006-01-02"`
}

type BookedRangeResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type RoomResponse struct {
	ID            string                `json:"id"`
	PropertyID    string                `json:"property_id"`
	OwnerID       string                `json:"owner_id"`
	Category      string                `json:"category"`
	Price         int                   `json:"price"`
	Amenities     string                `json:"amenities"`
	AvailableFrom string                `json:"available_from"`
	AvailableTo   string                `json:"available_to"`
	Booked        []BookedRangeResponse `json:"booked"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.PropertyID = m.PropertyID
	r.OwnerID = m.OwnerID
	r.Category = string(m.Category)
	r.Price = m.Price
	r.Amenities = m.Amenities
	r.AvailableFrom = timezone.FormatDate(m.Availability.Start)
	r.AvailableTo = timezone.FormatDate(m.Availability.End)

	r.Booked = make([]BookedRangeResponse, len(m.Bookings))
	for i, booking := range m.Bookings {
		r.Booked[i] = BookedRangeResponse{
			StartDate: timezone.FormatDate(booking.Start),
			EndDate:   timezone.FormatDate(booking.End),
		}
	}

	r.Metadata.FromModel(m.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.TotalData = len(models)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

type PropertyResponse struct {
	ID          string         `json:"id"`
	OwnerID     string         `json:"owner_id"`
	Address     string         `json:"address"`
	Area        string         `json:"area"`
	Description string         `json:"description"`
	Rooms       []RoomResponse `json:"rooms"`
	gDto.Metadata
}

// FromModel expects rooms in the property's RoomIDs order.
func (p *PropertyResponse) FromModel(m model.Property, rooms []model.Room) {
	p.ID = m.ID
	p.OwnerID = m.OwnerID
	p.Address = m.Address
	p.Area = m.Area
	p.Description = m.Description

	p.Rooms = make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		p.Rooms[i].FromModel(room)
	}

	p.Metadata.FromModel(m.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalData  int                `json:"total_data"`
}

type ListingResponse struct {
	Address string `json:"address"`
	Area    string `json:"area"`
	RoomResponse
}

func (l *ListingResponse) FromModel(m model.Listing) {
	l.Address = m.Property.Address
	l.Area = m.Property.Area
	l.RoomResponse.FromModel(m.Room)
}

type GetListingsResponse struct {
	Listings  []ListingResponse `json:"listings"`
	TotalData int               `json:"total_data"`
}

func (g *GetListingsResponse) FromModels(models []model.Listing) {
	g.TotalData = len(models)

	g.Listings = make([]ListingResponse, len(models))
	for i, mod := range models {
		g.Listings[i].FromModel(mod)
	}
}
