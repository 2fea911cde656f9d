// Package world builds and holds the in-memory world graph: rooms joined
// by navigable connections, populated by entities, furnished with items.
// Construction is two-phase: a single forward pass over the story document
// creates every room and entity and records raw id-based adjacency, then a
// connect pass resolves those ids into direct room-to-room edges. The split
// exists because a room's connections may name rooms defined later in the
// document.
package world

import (
	"errors"

	"github.com/google/uuid"

	"github.com/pcurran/fable/internal/game/inventory"
)

// LockStatus is the lock state of a room.
type LockStatus string

// Room lock states. A room starts Locked and can only transition to
// Unlocked, via a successful TryUnlock; nothing re-locks a room.
const (
	Locked   LockStatus = "locked"
	Unlocked LockStatus = "unlocked"
)

// Stats holds an entity's integer attributes. They are set once at
// construction and carried as inert data; no operation in this package
// reads or mutates them.
type Stats struct {
	HP           int
	Stamina      int
	Intelligence int
	Agility      int
	Strength     int
	Stealth      int
	Charisma     int
}

// Entity is a named actor living in the world. An entity is shared: the
// world's population registry and the room it occupies both reference the
// same Entity value.
type Entity struct {
	// UID is a stable instance handle, assigned at construction, that
	// correlates the entity across the two registries holding it.
	UID string
	// Name is the entity's display name.
	Name string
	// Stats are the entity's inert attributes.
	Stats Stats
	// Inventory exclusively owns the items the entity carries.
	Inventory *inventory.Inventory
}

// NewEntity creates an entity with an empty inventory.
//
// Precondition: name must be non-empty.
func NewEntity(name string) (*Entity, error) {
	if name == "" {
		return nil, errors.New("entity name must not be empty")
	}
	return &Entity{
		UID:       uuid.New().String(),
		Name:      name,
		Inventory: inventory.New(),
	}, nil
}

// AddItems moves every item from src into the entity's inventory.
//
// Postcondition: src is empty.
func (e *Entity) AddItems(src *inventory.Inventory) {
	e.Inventory.AddAll(src)
}

// Room is a navigable location node in the world graph.
type Room struct {
	// Name is the room's display name.
	Name string
	// ID uniquely identifies the room within a world. It is the join key
	// for connection resolution and for key matching.
	ID int
	// Description is the flavor text for the room.
	Description string
	// Lock is the room's lock state. Rooms start Locked.
	Lock LockStatus
	// Inventory exclusively owns the items lying in the room.
	Inventory *inventory.Inventory
	// Population holds shared references to the entities present here.
	// The canonical owner is the world's population registry.
	Population []*Entity
	// Neighbours holds non-owning references to adjacent rooms. A room
	// never owns another room; lifetime is governed by the world's room
	// registry, not by the edge.
	Neighbours []*Room
}

// NewRoom creates a locked, empty room.
//
// Precondition: name must be non-empty.
func NewRoom(name string, id int, description string) (*Room, error) {
	if name == "" {
		return nil, errors.New("room name must not be empty")
	}
	return &Room{
		Name:        name,
		ID:          id,
		Description: description,
		Lock:        Locked,
		Inventory:   inventory.New(),
	}, nil
}

// AddNeighbour records an additional directed edge to n. Duplicates are
// not deduplicated: adding the same neighbour twice produces two edges.
func (r *Room) AddNeighbour(n *Room) {
	if n == nil {
		return
	}
	r.Neighbours = append(r.Neighbours, n)
}

// AddNeighbours records a directed edge to every room in ns, in order.
func (r *Room) AddNeighbours(ns []*Room) {
	for _, n := range ns {
		r.AddNeighbour(n)
	}
}

// NeighbourByID returns the first neighbour with the given id.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (r *Room) NeighbourByID(id int) (*Room, bool) {
	for _, n := range r.Neighbours {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}

// AddEntity records an additional shared reference to e in the room's
// population.
func (r *Room) AddEntity(e *Entity) {
	if e == nil {
		return
	}
	r.Population = append(r.Population, e)
}

// AddEntities records every entity in es, in order.
func (r *Room) AddEntities(es []*Entity) {
	for _, e := range es {
		r.AddEntity(e)
	}
}

// AddItem moves a single item into the room's inventory. The caller must
// not retain the item in any other container afterwards.
func (r *Room) AddItem(i *inventory.Item) {
	r.Inventory.Add(i)
}

// AddItems moves every item from src into the room's inventory.
//
// Postcondition: src is empty.
func (r *Room) AddItems(src *inventory.Inventory) {
	r.Inventory.AddAll(src)
}
