package dto

import (
	"rentals/internal/domains/actor/model"
	gDto "rentals/shared/dto"
)

type SeekerProfileResponse struct {
	University    string `json:"university"`
	StudentNumber string `json:"student_number"`
}

type ActorResponse struct {
	ID     string                 `json:"id"`
	Name   string                 `json:"name"`
	Email  string                 `json:"email"`
	Phone  string                 `json:"phone"`
	Role   string                 `json:"role"`
	Active bool                   `json:"active"`
	Title  string                 `json:"title"`
	Seeker *SeekerProfileResponse `json:"seeker,omitempty"`
	gDto.Metadata
}

func (a *ActorResponse) FromModel(m model.Actor) {
	a.ID = m.ID
	a.Name = m.Name
	a.Email = m.Email
	a.Phone = m.Phone
	a.Role = string(m.Role)
	a.Active = m.Active
	a.Title = m.Title()
	a.Seeker = nil

	if m.Seeker != nil {
		a.Seeker = &SeekerProfileResponse{
			University:    m.Seeker.University,
			StudentNumber: m.Seeker.StudentNumber,
		}
	}

	a.Metadata.FromModel(m.Metadata)
}

type GetActorsResponse struct {
	Actors    []ActorResponse `json:"actors"`
	TotalData int             `json:"total_data"`
}

func (r *GetActorsResponse) FromModels(models []model.Actor) {
	r.TotalData = len(models)

	r.Actors = make([]ActorResponse, len(models))
	for i, mod := range models {
		r.Actors[i].FromModel(mod)
	}
}
