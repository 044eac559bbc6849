package dto

import (
	"rentals/infras/jwt"
	actorModel "rentals/internal/domains/actor/model"
	gModel "rentals/shared/model"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,notblank,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Phone    string `json:"phone"    validate:"omitempty,max=30"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *RegisterRequest) toModel(role actorModel.Role, hashedPassword string) actorModel.Actor {
	id := uuid.NewString()

	return actorModel.Actor{
		ID:           id,
		Name:         r.Name,
		Email:        actorModel.NormalizeEmail(r.Email),
		Phone:        r.Phone,
		PasswordHash: hashedPassword,
		Role:         role,
		Active:       true,
		Metadata:     gModel.NewMetadata(id),
	}
}

type RegisterSeekerRequest struct {
	RegisterRequest
	University    string `json:"university"     validate:"required,notblank,max=150"`
	StudentNumber string `json:"student_number" validate:"required,notblank,max=50"`
}

func (r *RegisterSeekerRequest) ToModel(hashedPassword string) actorModel.Actor {
	actor := r.toModel(actorModel.RoleSeeker, hashedPassword)
	actor.Seeker = &actorModel.SeekerProfile{
		University:    r.University,
		StudentNumber: r.StudentNumber,
	}

	return actor
}

type RegisterOwnerRequest struct {
	RegisterRequest
}

func (r *RegisterOwnerRequest) ToModel(hashedPassword string) actorModel.Actor {
	return r.toModel(actorModel.RoleOwner, hashedPassword)
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	ActorID      string `json:"actor_id"`
	Role         string `json:"role"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair, actor actorModel.Actor) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.TokenType = tokenPair.TokenType
	l.ExpiresIn = tokenPair.ExpiresIn
	l.ActorID = actor.ID
	l.Role = string(actor.Role)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}
