package repository_test

import (
	"context"
	"testing"

	"rentals/internal/domains/actor/model"
	"rentals/internal/domains/actor/repository"
	"rentals/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActorRepository_InsertAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := repository.New()

	err := repo.Insert(ctx, model.Actor{ID: "a1", Email: "  Owner@Example.com ", Role: model.RoleOwner, Active: true})
	require.NoError(t, err)

	actor, err := repo.GetByEmail(ctx, "owner@example.COM")
	require.NoError(t, err)
	assert.Equal(t, "a1", actor.ID)
	assert.Equal(t, "owner@example.com", actor.Email)

	err = repo.Insert(ctx, model.Actor{ID: "a2", Email: "OWNER@example.com"})
	assert.True(t, failure.IsConflict(err))

	_, err = repo.Get(ctx, "missing")
	assert.True(t, failure.IsNotFound(err))
}

func TestActorRepository_GetAllOrdersByEmailThenID(t *testing.T) {
	ctx := context.Background()
	repo := repository.New()

	require.NoError(t, repo.Insert(ctx, model.Actor{ID: "3", Email: "c@example.com"}))
	require.NoError(t, repo.Insert(ctx, model.Actor{ID: "1", Email: "b@example.com"}))
	require.NoError(t, repo.Insert(ctx, model.Actor{ID: "2", Email: "a@example.com"}))

	actors := repo.GetAll(ctx)
	require.Len(t, actors, 3)
	assert.Equal(t, []string{"2", "1", "3"}, []string{actors[0].ID, actors[1].ID, actors[2].ID})
}

func TestActorRepository_RequireActive(t *testing.T) {
	ctx := context.Background()
	repo := repository.New()

	require.NoError(t, repo.Insert(ctx, model.Actor{ID: "o1", Email: "o@example.com", Role: model.RoleOwner, Active: false}))

	_, err := repo.RequireActive(ctx, "o1", model.RoleOwner)
	assert.EqualError(t, err, "owner account is deactivated")

	_, err = repo.RequireRole(ctx, "o1", model.RoleOwner)
	assert.NoError(t, err)

	_, err = repo.RequireActive(ctx, "nobody", model.RoleOwner)
	assert.True(t, failure.IsNotFound(err))
}

func TestActorRepository_SaveKeepsEmail(t *testing.T) {
	ctx := context.Background()
	repo := repository.New()

	require.NoError(t, repo.Insert(ctx, model.Actor{ID: "s1", Email: "s@example.com", Role: model.RoleSeeker, Active: true}))

	require.NoError(t, repo.Save(ctx, model.Actor{ID: "s1", Email: "other@example.com", Role: model.RoleSeeker, Active: false}))

	actor, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, actor.Active)
	assert.Equal(t, "s@example.com", actor.Email)
	assert.Equal(t, 1, repo.CountByRole(ctx, model.RoleSeeker))

	err = repo.Save(ctx, model.Actor{ID: "ghost"})
	assert.True(t, failure.IsNotFound(err))
}
