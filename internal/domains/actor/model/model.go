package model

import (
	"fmt"
	"strings"

	"rentals/shared/failure"
	"rentals/shared/model"
)

const EntityName = "actor"

type Role string

const (
	RoleSeeker        Role = "seeker"
	RoleOwner         Role = "owner"
	RoleAdministrator Role = "administrator"
)

func (r Role) Valid() bool {
	switch r {
	case RoleSeeker, RoleOwner, RoleAdministrator:
		return true
	default:
		return false
	}
}

func (r Role) article() string {
	switch r {
	case RoleOwner, RoleAdministrator:
		return "an"
	case RoleSeeker:
		return "a"
	default:
		return "a"
	}
}

// SeekerProfile is only set for RoleSeeker.
type SeekerProfile struct {
	University    string
	StudentNumber string
}

type Actor struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
	Active       bool
	Seeker       *SeekerProfile
	model.Metadata
}

// Title is the human readable description used in directory listings.
func (a Actor) Title() string {
	switch a.Role {
	case RoleSeeker:
		if a.Seeker != nil && a.Seeker.University != "" {
			return fmt.Sprintf("%s (student at %s)", a.Name, a.Seeker.University)
		}

		return a.Name + " (seeker)"
	case RoleOwner:
		return a.Name + " (owner)"
	case RoleAdministrator:
		return a.Name + " (administrator)"
	default:
		return a.Name
	}
}

// RequireRole fails with an authorization error when the actor holds another role.
func (a Actor) RequireRole(role Role) error {
	if a.Role != role {
		return failure.Forbidden(fmt.Sprintf("actor is not %s %s", role.article(), role))
	}

	return nil
}

// RequireActive is RequireRole plus the active flag.
func (a Actor) RequireActive(role Role) error {
	if err := a.RequireRole(role); err != nil {
		return err
	}

	if !a.Active {
		return failure.Forbidden(fmt.Sprintf("%s account is deactivated", role))
	}

	return nil
}

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
