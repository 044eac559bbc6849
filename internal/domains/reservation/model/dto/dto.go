package dto

import (
	"rentals/internal/domains/reservation/model"
	"rentals/shared/constant"
	"rentals/shared/timezone"
)

type SubmitRequest struct {
	RoomID    string `json:"room_id"    validate:"required,notblank"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

type DecisionRequest struct {
	Accept *bool `json:"accept" validate:"required"`
}

type BookingRequestResponse struct {
	ID        string  `json:"id"`
	SeekerID  string  `json:"seeker_id"`
	RoomID    string  `json:"room_id"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	DecidedAt *string `json:"decided_at,omitempty"`
}

func (b *BookingRequestResponse) FromModel(m model.BookingRequest) {
	b.ID = m.ID
	b.SeekerID = m.SeekerID
	b.RoomID = m.RoomID
	b.StartDate = timezone.FormatDate(m.Start)
	b.EndDate = timezone.FormatDate(m.End)
	b.Status = string(m.Status)
	b.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
	b.DecidedAt = nil

	if m.DecidedAt != nil {
		decidedAt := timezone.Format(*m.DecidedAt, constant.DateFormat)
		b.DecidedAt = &decidedAt
	}
}

type GetBookingRequestsResponse struct {
	Requests  []BookingRequestResponse `json:"requests"`
	TotalData int                      `json:"total_data"`
}

func (g *GetBookingRequestsResponse) FromModels(models []model.BookingRequest) {
	g.TotalData = len(models)

	g.Requests = make([]BookingRequestResponse, len(models))
	for i, mod := range models {
		g.Requests[i].FromModel(mod)
	}
}

type BookingResponse struct {
	ID          string `json:"id"`
	RequestID   string `json:"request_id"`
	SeekerID    string `json:"seeker_id"`
	RoomID      string `json:"room_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	ConfirmedAt string `json:"confirmed_at"`
}

func (b *BookingResponse) FromModel(m model.Booking) {
	b.ID = m.ID
	b.RequestID = m.RequestID
	b.SeekerID = m.SeekerID
	b.RoomID = m.RoomID
	b.StartDate = timezone.FormatDate(m.Start)
	b.EndDate = timezone.FormatDate(m.End)
	b.ConfirmedAt = timezone.Format(m.ConfirmedAt, constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking) {
	g.TotalData = len(models)

	g.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i].FromModel(mod)
	}
}

// DecisionResponse acknowledges a decision. Booking is set only on accept.
type DecisionResponse struct {
	Request BookingRequestResponse `json:"request"`
	Booking *BookingResponse       `json:"booking,omitempty"`
}
