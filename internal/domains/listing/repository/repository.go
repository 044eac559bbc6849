// Package repository is the arena for properties and rooms plus the area and
// category indexes over rooms.
//
// Callers hold the memory.DB lock. Every method that changes a room updates
// the indexes before returning, so the indexes never disagree with the arena
// outside a critical section. Values handed out are copies.
package repository

import (
	"context"
	"slices"
	"sort"

	"rentals/internal/domains/listing/model"
	reservationModel "rentals/internal/domains/reservation/model"
	"rentals/shared/failure"
)

type Listing interface {
	InsertProperty(ctx context.Context, property model.Property) error
	GetProperty(ctx context.Context, id string) (model.Property, error)
	GetPropertiesByOwner(ctx context.Context, ownerID string) []model.Property

	InsertRoom(ctx context.Context, room model.Room) error
	GetRoom(ctx context.Context, id string) (model.Room, error)
	GetRooms(ctx context.Context, ids []string) []model.Room
	SaveRoom(ctx context.Context, room model.Room) error
	RemoveRoom(ctx context.Context, id string) (model.Room, error)
	// AttachBooking refuses a booking overlapping one already confirmed.
	AttachBooking(ctx context.Context, roomID string, booking reservationModel.Booking) error

	RoomIDs(ctx context.Context) []string
	RoomIDsByArea(ctx context.Context, area string) []string
	RoomIDsByCategory(ctx context.Context, category model.Category) []string
	GetListings(ctx context.Context) []model.Listing
	RebuildIndexes(ctx context.Context)
}

type idSet map[string]struct{}

type repositoryImpl struct {
	properties map[string]model.Property
	rooms      map[string]model.Room
	// seq is the insertion sequence of each room; candidates are returned in it.
	seq     map[string]uint64
	nextSeq uint64

	byArea     map[string]idSet
	byCategory map[model.Category]idSet
}

func New() Listing {
	return &repositoryImpl{
		properties: make(map[string]model.Property),
		rooms:      make(map[string]model.Room),
		seq:        make(map[string]uint64),
		byArea:     make(map[string]idSet),
		byCategory: make(map[model.Category]idSet),
	}
}

func cloneProperty(p model.Property) model.Property {
	p.RoomIDs = slices.Clone(p.RoomIDs)

	return p
}

func cloneRoom(r model.Room) model.Room {
	r.Bookings = slices.Clone(r.Bookings)

	return r
}

func (r *repositoryImpl) InsertProperty(_ context.Context, property model.Property) error {
	if _, ok := r.properties[property.ID]; ok {
		return failure.Conflict("property already exists")
	}

	r.properties[property.ID] = cloneProperty(property)

	return nil
}

func (r *repositoryImpl) GetProperty(_ context.Context, id string) (model.Property, error) {
	property, ok := r.properties[id]
	if !ok {
		return model.Property{}, failure.NotFound("property not found")
	}

	return cloneProperty(property), nil
}

func (r *repositoryImpl) GetPropertiesByOwner(_ context.Context, ownerID string) []model.Property {
	res := make([]model.Property, 0)

	for _, property := range r.properties {
		if property.OwnerID == ownerID {
			res = append(res, cloneProperty(property))
		}
	}

	sort.Slice(res, func(i, j int) bool {
		if !res[i].CreatedAt.Equal(res[j].CreatedAt) {
			return res[i].CreatedAt.Before(res[j].CreatedAt)
		}

		return res[i].ID < res[j].ID
	})

	return res
}

func (r *repositoryImpl) InsertRoom(_ context.Context, room model.Room) error {
	property, ok := r.properties[room.PropertyID]
	if !ok {
		return failure.NotFound("property not found")
	}

	if _, ok := r.rooms[room.ID]; ok {
		return failure.Conflict("room already exists")
	}

	r.rooms[room.ID] = cloneRoom(room)
	r.seq[room.ID] = r.nextSeq
	r.nextSeq++

	property.RoomIDs = append(slices.Clone(property.RoomIDs), room.ID)
	r.properties[property.ID] = property

	r.index(room, property)

	return nil
}

func (r *repositoryImpl) GetRoom(_ context.Context, id string) (model.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return model.Room{}, failure.NotFound("room not found")
	}

	return cloneRoom(room), nil
}

// GetRooms skips ids that are no longer present.
func (r *repositoryImpl) GetRooms(_ context.Context, ids []string) []model.Room {
	res := make([]model.Room, 0, len(ids))

	for _, id := range ids {
		if room, ok := r.rooms[id]; ok {
			res = append(res, cloneRoom(room))
		}
	}

	return res
}

// SaveRoom replaces the mutable fields of a room. Property, owner and the
// confirmed bookings are kept from the stored record.
func (r *repositoryImpl) SaveRoom(_ context.Context, room model.Room) error {
	current, ok := r.rooms[room.ID]
	if !ok {
		return failure.NotFound("room not found")
	}

	room.PropertyID = current.PropertyID
	room.OwnerID = current.OwnerID
	room.Bookings = current.Bookings

	if room.Category != current.Category {
		r.byCategory[current.Category].remove(current.ID)
		r.categorySet(room.Category)[room.ID] = struct{}{}
	}

	r.rooms[room.ID] = room

	return nil
}

func (r *repositoryImpl) RemoveRoom(_ context.Context, id string) (model.Room, error) {
	room, ok := r.rooms[id]
	if !ok {
		return model.Room{}, failure.NotFound("room not found")
	}

	if property, ok := r.properties[room.PropertyID]; ok {
		property.RoomIDs = slices.DeleteFunc(slices.Clone(property.RoomIDs), func(roomID string) bool {
			return roomID == id
		})
		r.properties[property.ID] = property
		r.unindex(room, property)
	}

	delete(r.rooms, id)
	delete(r.seq, id)

	return room, nil
}

func (r *repositoryImpl) AttachBooking(_ context.Context, roomID string, booking reservationModel.Booking) error {
	room, ok := r.rooms[roomID]
	if !ok {
		return failure.NotFound("room not found")
	}

	if _, hit := room.Conflict(booking.Range()); hit {
		return failure.Conflict("conflict detected: room already booked for those dates")
	}

	room.Bookings = append(slices.Clone(room.Bookings), booking)
	r.rooms[roomID] = room

	return nil
}

// RoomIDs returns every room in insertion order.
func (r *repositoryImpl) RoomIDs(_ context.Context) []string {
	ids := make([]string, 0, len(r.rooms))
	for id := range r.rooms {
		ids = append(ids, id)
	}

	return r.inInsertionOrder(ids)
}

func (r *repositoryImpl) RoomIDsByArea(_ context.Context, area string) []string {
	return r.inInsertionOrder(r.byArea[model.NormalizeArea(area)].ids())
}

func (r *repositoryImpl) RoomIDsByCategory(_ context.Context, category model.Category) []string {
	return r.inInsertionOrder(r.byCategory[category].ids())
}

func (r *repositoryImpl) GetListings(_ context.Context) []model.Listing {
	res := make([]model.Listing, 0, len(r.rooms))

	for _, room := range r.rooms {
		res = append(res, model.Listing{
			Room:     cloneRoom(room),
			Property: cloneProperty(r.properties[room.PropertyID]),
		})
	}

	return res
}

// RebuildIndexes recomputes both indexes from the arena.
func (r *repositoryImpl) RebuildIndexes(_ context.Context) {
	r.byArea = make(map[string]idSet)
	r.byCategory = make(map[model.Category]idSet)

	for _, room := range r.rooms {
		r.index(room, r.properties[room.PropertyID])
	}
}

func (r *repositoryImpl) index(room model.Room, property model.Property) {
	area := model.NormalizeArea(property.Area)
	if r.byArea[area] == nil {
		r.byArea[area] = make(idSet)
	}

	r.byArea[area][room.ID] = struct{}{}
	r.categorySet(room.Category)[room.ID] = struct{}{}
}

func (r *repositoryImpl) unindex(room model.Room, property model.Property) {
	area := model.NormalizeArea(property.Area)

	r.byArea[area].remove(room.ID)
	if len(r.byArea[area]) == 0 {
		delete(r.byArea, area)
	}

	r.byCategory[room.Category].remove(room.ID)
}

func (r *repositoryImpl) categorySet(category model.Category) idSet {
	if r.byCategory[category] == nil {
		r.byCategory[category] = make(idSet)
	}

	return r.byCategory[category]
}

func (r *repositoryImpl) inInsertionOrder(ids []string) []string {
	sort.Slice(ids, func(i, j int) bool {
		return r.seq[ids[i]] < r.seq[ids[j]]
	})

	return ids
}

func (s idSet) remove(id string) {
	if s != nil {
		delete(s, id)
	}
}

func (s idSet) ids() []string {
	res := make([]string, 0, len(s))
	for id := range s {
		res = append(res, id)
	}

	return res
}
