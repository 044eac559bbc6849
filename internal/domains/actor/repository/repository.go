// Package repository keeps the actor directory in memory.
//
// Callers hold the memory.DB lock: Update for Insert and Save, View or Update
// for everything else.
package repository

import (
	"context"
	"sort"

	"rentals/internal/domains/actor/model"
	"rentals/shared/failure"
)

type Actor interface {
	Insert(ctx context.Context, actor model.Actor) error
	Save(ctx context.Context, actor model.Actor) error
	Get(ctx context.Context, id string) (model.Actor, error)
	GetByEmail(ctx context.Context, email string) (model.Actor, error)
	ExistsByEmail(ctx context.Context, email string) bool
	CountByRole(ctx context.Context, role model.Role) int
	GetAll(ctx context.Context) []model.Actor
	// RequireActive loads the actor and checks its role and active flag.
	RequireActive(ctx context.Context, id string, role model.Role) (model.Actor, error)
	// RequireRole loads the actor and checks only its role.
	RequireRole(ctx context.Context, id string, role model.Role) (model.Actor, error)
}

type repositoryImpl struct {
	actors  map[string]model.Actor
	byEmail map[string]string
}

func New() Actor {
	return &repositoryImpl{
		actors:  make(map[string]model.Actor),
		byEmail: make(map[string]string),
	}
}

func (r *repositoryImpl) Insert(_ context.Context, actor model.Actor) error {
	actor.Email = model.NormalizeEmail(actor.Email)

	if _, ok := r.byEmail[actor.Email]; ok {
		return failure.Conflict("email already registered")
	}

	if _, ok := r.actors[actor.ID]; ok {
		return failure.Conflict("actor already exists")
	}

	r.actors[actor.ID] = actor
	r.byEmail[actor.Email] = actor.ID

	return nil
}

// Save replaces an existing record. Email changes are not supported.
func (r *repositoryImpl) Save(_ context.Context, actor model.Actor) error {
	current, ok := r.actors[actor.ID]
	if !ok {
		return failure.NotFound("actor not found")
	}

	actor.Email = current.Email
	r.actors[actor.ID] = actor

	return nil
}

func (r *repositoryImpl) Get(_ context.Context, id string) (model.Actor, error) {
	actor, ok := r.actors[id]
	if !ok {
		return model.Actor{}, failure.NotFound("actor not found")
	}

	return actor, nil
}

func (r *repositoryImpl) GetByEmail(ctx context.Context, email string) (model.Actor, error) {
	id, ok := r.byEmail[model.NormalizeEmail(email)]
	if !ok {
		return model.Actor{}, failure.NotFound("actor not found")
	}

	return r.Get(ctx, id)
}

func (r *repositoryImpl) ExistsByEmail(_ context.Context, email string) bool {
	_, ok := r.byEmail[model.NormalizeEmail(email)]

	return ok
}

func (r *repositoryImpl) CountByRole(_ context.Context, role model.Role) int {
	count := 0

	for _, actor := range r.actors {
		if actor.Role == role {
			count++
		}
	}

	return count
}

// GetAll returns every actor ordered by email, then id.
func (r *repositoryImpl) GetAll(_ context.Context) []model.Actor {
	res := make([]model.Actor, 0, len(r.actors))
	for _, actor := range r.actors {
		res = append(res, actor)
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].Email != res[j].Email {
			return res[i].Email < res[j].Email
		}

		return res[i].ID < res[j].ID
	})

	return res
}

func (r *repositoryImpl) RequireActive(ctx context.Context, id string, role model.Role) (model.Actor, error) {
	actor, err := r.Get(ctx, id)
	if err != nil {
		return model.Actor{}, err
	}

	if err := actor.RequireActive(role); err != nil {
		return model.Actor{}, err
	}

	return actor, nil
}

func (r *repositoryImpl) RequireRole(ctx context.Context, id string, role model.Role) (model.Actor, error) {
	actor, err := r.Get(ctx, id)
	if err != nil {
		return model.Actor{}, err
	}

	if err := actor.RequireRole(role); err != nil {
		return model.Actor{}, err
	}

	return actor, nil
}
