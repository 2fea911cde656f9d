package world

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pcurran/fable/internal/storytree"
)

// ErrDuplicateRoomID is returned by CreateRoom when a room id is already
// taken. Ids are the join key for connection resolution and key matching,
// so a duplicate would make lookups ambiguous.
var ErrDuplicateRoomID = errors.New("duplicate room id")

// World owns the canonical room and population registries and, between the
// build and connect phases, the transient id-based connection map.
type World struct {
	// Title is the story's display title, if the document carries one.
	Title string
	// Rooms is the canonical, ordered room registry. It owns every room.
	Rooms []*Room
	// Population is the canonical, ordered entity registry. Rooms hold
	// shared references into it.
	Population []*Entity

	// connections maps room id to raw neighbour ids. It is scaffolding
	// that only exists between loadRooms and ConnectRooms; the connect
	// phase discards it.
	connections map[int][]int
	// dangling collects connection ids dropped during the connect phase.
	dangling []int

	logger *zap.Logger
}

// New creates an empty world. A nil logger disables diagnostics.
func New(logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &World{
		connections: make(map[int][]int),
		logger:      logger,
	}
}

// InitWorld loads the story document at path and builds the fully
// connected world graph from it.
//
// Postcondition: Returns a connected World, or an error and no world — a
// failed build never yields a partially constructed graph.
func InitWorld(path string, logger *zap.Logger) (*World, error) {
	doc, err := storytree.Load(path)
	if err != nil {
		return nil, err
	}
	return BuildFromDocument(doc, logger)
}

// BuildFromDocument builds and connects a world from an already-parsed
// story document. The document must have a <world> root with at least one
// <room> child.
func BuildFromDocument(doc *storytree.Document, logger *zap.Logger) (*World, error) {
	root, err := doc.Root("world")
	if err != nil {
		return nil, err
	}
	if len(root.Children("room")) == 0 {
		return nil, errors.New("story document: <world> has no <room> elements")
	}

	w := New(logger)
	if title, ok := root.Child("title"); ok {
		w.Title = title.Value()
	}
	if err := w.loadRooms(root); err != nil {
		return nil, err
	}
	w.ConnectRooms()
	return w, nil
}

// CreateRoom constructs a room and appends it to the canonical registry.
//
// Postcondition: Returns the registered room, or ErrDuplicateRoomID if the
// id is already taken.
func (w *World) CreateRoom(name string, id int, description string) (*Room, error) {
	if existing, ok := w.RoomByID(id); ok {
		return nil, fmt.Errorf("room %q: %w %d: already used by %q", name, ErrDuplicateRoomID, id, existing.Name)
	}
	r, err := NewRoom(name, id, description)
	if err != nil {
		return nil, err
	}
	w.Rooms = append(w.Rooms, r)
	return r, nil
}

// CreateEntity constructs an entity and appends it to the canonical
// population registry.
func (w *World) CreateEntity(name string) (*Entity, error) {
	e, err := NewEntity(name)
	if err != nil {
		return nil, err
	}
	w.Population = append(w.Population, e)
	return e, nil
}

// RoomByID returns the room with the given id. Lookup is a linear scan on
// id equality over the registry.
//
// Postcondition: Returns (room, true) if found, or (nil, false) otherwise.
func (w *World) RoomByID(id int) (*Room, bool) {
	for _, r := range w.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// RoomCount returns the number of rooms in the registry.
func (w *World) RoomCount() int {
	return len(w.Rooms)
}

// PopulationCount returns the number of entities in the registry.
func (w *World) PopulationCount() int {
	return len(w.Population)
}

// Neighbours returns the neighbour list of the room with the given id.
//
// Postcondition: Returns (neighbours, true) if the room exists, or
// (nil, false) otherwise.
func (w *World) Neighbours(id int) ([]*Room, bool) {
	r, ok := w.RoomByID(id)
	if !ok {
		return nil, false
	}
	return r.Neighbours, true
}

// Navigate follows an existing connection edge from one room to another.
//
// Postcondition: Returns the destination room, or an error if either room
// is unknown, no edge exists, or the destination is locked.
func (w *World) Navigate(fromID, toID int) (*Room, error) {
	from, ok := w.RoomByID(fromID)
	if !ok {
		return nil, fmt.Errorf("room %d not found", fromID)
	}
	to, ok := from.NeighbourByID(toID)
	if !ok {
		return nil, fmt.Errorf("no connection from room %d to room %d", fromID, toID)
	}
	if to.Lock == Locked {
		return nil, fmt.Errorf("room %q is locked", to.Name)
	}
	return to, nil
}

// Destroy releases everything the world owns. The world must not be
// reused afterwards.
func (w *World) Destroy() {
	for _, r := range w.Rooms {
		r.Inventory.TakeAll()
		r.Population = nil
		r.Neighbours = nil
	}
	for _, e := range w.Population {
		e.Inventory.TakeAll()
	}
	w.Rooms = nil
	w.Population = nil
	w.connections = nil
	w.dangling = nil
}
