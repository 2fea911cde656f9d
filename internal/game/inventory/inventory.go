package inventory

// Inventory is an ordered, exclusively-owning item container. Rooms and
// entities each hold one. Items enter via Add or AddAll and leave via Take
// or TakeAll; an item is never reachable from two inventories at once.
type Inventory struct {
	items []*Item
}

// New creates an empty Inventory.
func New() *Inventory {
	return &Inventory{}
}

// Add places an item into the inventory. The caller must not retain the
// item in any other container afterwards.
func (inv *Inventory) Add(i *Item) {
	if i == nil {
		return
	}
	inv.items = append(inv.items, i)
}

// AddAll drains src into inv, preserving order.
//
// Postcondition: src is empty; inv holds all of src's former items after
// its own.
func (inv *Inventory) AddAll(src *Inventory) {
	if src == nil || src == inv {
		return
	}
	inv.items = append(inv.items, src.items...)
	src.items = nil
}

// Take removes and returns the first item with the given id.
//
// Postcondition: on success the item is no longer held by inv; on failure
// inv is unchanged.
func (inv *Inventory) Take(id int) (*Item, bool) {
	for idx, it := range inv.items {
		if it.ID == id {
			inv.items = append(inv.items[:idx], inv.items[idx+1:]...)
			return it, true
		}
	}
	return nil, false
}

// TakeAll removes and returns every item, in order.
//
// Postcondition: inv is empty.
func (inv *Inventory) TakeAll() []*Item {
	out := inv.items
	inv.items = nil
	return out
}

// Items returns a snapshot copy of the held items.
//
// Postcondition: mutations of the returned slice do not affect inv.
func (inv *Inventory) Items() []*Item {
	out := make([]*Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Len returns the number of held items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// Contains reports whether an item with the given id is held.
func (inv *Inventory) Contains(id int) bool {
	for _, it := range inv.items {
		if it.ID == id {
			return true
		}
	}
	return false
}
