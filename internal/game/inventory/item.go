// Package inventory provides world items and the exclusively-owning
// containers that hold them. An item belongs to exactly one container at a
// time; container operations transfer ownership rather than copy.
package inventory

import "errors"

// Kind constants for Item.Kind.
const (
	// KindObject is a plain ownable item with no special behavior.
	KindObject = "object"
	// KindKey marks an item that can unlock the room named by UnlocksRoom.
	KindKey = "key"
)

// Item is an ownable piece of world content. Identity fields are fixed at
// construction and never mutated.
type Item struct {
	// Name is the display name of the item.
	Name string
	// Description is the flavor text shown when the item is examined.
	Description string
	// ID is the item's creation identifier from the story document.
	ID int
	// Kind is KindObject or KindKey.
	Kind string
	// UnlocksRoom is the id of the room this item opens. Only meaningful
	// when Kind is KindKey; zero otherwise.
	UnlocksRoom int
}

// NewObject creates a plain item.
//
// Precondition: name must be non-empty.
// Postcondition: Returns an Item of KindObject or a non-nil error.
func NewObject(name string, id int, description string) (*Item, error) {
	if name == "" {
		return nil, errors.New("item name must not be empty")
	}
	return &Item{
		Name:        name,
		Description: description,
		ID:          id,
		Kind:        KindObject,
	}, nil
}

// NewKey creates a key item bound to the room with the given id.
//
// Precondition: name must be non-empty.
// Postcondition: Returns an Item of KindKey or a non-nil error.
func NewKey(name string, id int, description string, unlocksRoom int) (*Item, error) {
	if name == "" {
		return nil, errors.New("key name must not be empty")
	}
	return &Item{
		Name:        name,
		Description: description,
		ID:          id,
		Kind:        KindKey,
		UnlocksRoom: unlocksRoom,
	}, nil
}

// IsKey reports whether the item can open a room.
func (i *Item) IsKey() bool {
	return i.Kind == KindKey
}
