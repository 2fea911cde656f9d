package world

import (
	"go.uber.org/zap"

	"github.com/pcurran/fable/internal/game/inventory"
	"github.com/pcurran/fable/internal/storytree"
)

// statTags are the recognized children of an entity's <stats> element.
// Each is optional; absent stats stay zero.
var statTags = []string{"hp", "stamina", "intelligence", "agility", "strength", "stealth", "charisma"}

// loadRooms walks the <room> children of the world element in document
// order. For each room: create it, move its inventory in, record its raw
// connection ids for the connect phase, then load its entities and attach
// the suffix of the population registry just created for it. The room must
// exist before its connections are recorded because a connection may name
// a room that appears later in the document.
//
// Any record missing a required field aborts the whole load; a room with
// undefined identity cannot be linked later.
func (w *World) loadRooms(worldEle *storytree.Element) error {
	for _, roomEle := range worldEle.Children("room") {
		name, err := roomEle.Text("name")
		if err != nil {
			return err
		}
		description, err := roomEle.Text("description")
		if err != nil {
			return err
		}
		id, err := roomEle.Int("id")
		if err != nil {
			return err
		}

		room, err := w.CreateRoom(name, id, description)
		if err != nil {
			return err
		}

		if invEle, ok := roomEle.Child("inventory"); ok {
			inv, err := w.loadInventory(invEle)
			if err != nil {
				return err
			}
			room.AddItems(inv)
		}

		connsEle, _ := roomEle.Child("connections")
		ids, err := connectionIDs(connsEle)
		if err != nil {
			return err
		}
		w.TrackConnections(id, ids)

		created, err := w.loadEntities(roomEle)
		if err != nil {
			return err
		}
		// Entities are appended to the single global registry; the last
		// `created` entries are the ones belonging to this room.
		room.AddEntities(w.Population[len(w.Population)-created:])

		w.logger.Debug("room loaded",
			zap.Int("id", id),
			zap.String("name", name),
			zap.Int("items", room.Inventory.Len()),
			zap.Int("entities", created),
			zap.Ints("connections", ids),
		)
	}
	return nil
}

// loadInventory builds a freshly owned inventory from the repeated
// <object> children of an <inventory> element. Name, description, and id
// are required on every object record; an optional <unlocks> child turns
// the object into a key for the room with that id.
//
// Postcondition: the returned inventory shares nothing with the source
// tree.
func (w *World) loadInventory(invEle *storytree.Element) (*inventory.Inventory, error) {
	inv := inventory.New()
	if invEle == nil {
		return inv, nil
	}
	for _, objEle := range invEle.Children("object") {
		name, err := objEle.Text("name")
		if err != nil {
			return nil, err
		}
		description, err := objEle.Text("description")
		if err != nil {
			return nil, err
		}
		id, err := objEle.Int("id")
		if err != nil {
			return nil, err
		}

		var item *inventory.Item
		if _, ok := objEle.Child("unlocks"); ok {
			unlocks, err := objEle.Int("unlocks")
			if err != nil {
				return nil, err
			}
			item, err = inventory.NewKey(name, id, description, unlocks)
			if err != nil {
				return nil, err
			}
		} else {
			item, err = inventory.NewObject(name, id, description)
			if err != nil {
				return nil, err
			}
		}
		inv.Add(item)
	}
	return inv, nil
}

// loadEntities creates an entity in the global population registry for
// every <entity> child of roomEle and returns how many were created. The
// caller uses the count to attach the just-created suffix of the registry
// to the room being built.
func (w *World) loadEntities(roomEle *storytree.Element) (int, error) {
	created := 0
	for _, entEle := range roomEle.Children("entity") {
		name, err := entEle.Text("name")
		if err != nil {
			return 0, err
		}

		ent, err := w.CreateEntity(name)
		if err != nil {
			return 0, err
		}
		created++

		if invEle, ok := entEle.Child("inventory"); ok {
			inv, err := w.loadInventory(invEle)
			if err != nil {
				return 0, err
			}
			ent.AddItems(inv)
		}

		if statsEle, ok := entEle.Child("stats"); ok {
			stats, err := loadStats(statsEle)
			if err != nil {
				return 0, err
			}
			ent.Stats = stats
		}
	}
	return created, nil
}

// loadStats reads the optional integer attribute children of a <stats>
// element. Present children must parse as integers.
func loadStats(statsEle *storytree.Element) (Stats, error) {
	var stats Stats
	fields := map[string]*int{
		"hp":           &stats.HP,
		"stamina":      &stats.Stamina,
		"intelligence": &stats.Intelligence,
		"agility":      &stats.Agility,
		"strength":     &stats.Strength,
		"stealth":      &stats.Stealth,
		"charisma":     &stats.Charisma,
	}
	for _, tag := range statTags {
		if _, ok := statsEle.Child(tag); !ok {
			continue
		}
		n, err := statsEle.Int(tag)
		if err != nil {
			return Stats{}, err
		}
		*fields[tag] = n
	}
	return stats, nil
}

// connectionIDs extracts the raw neighbour ids of one room from its
// <connections> element, in document order, before any resolution. A nil
// element yields no ids.
func connectionIDs(connsEle *storytree.Element) ([]int, error) {
	if connsEle == nil {
		return nil, nil
	}
	var ids []int
	for _, idEle := range connsEle.Children("id") {
		n, err := idEle.IntValue()
		if err != nil {
			return nil, err
		}
		ids = append(ids, n)
	}
	return ids, nil
}

// TrackConnections records the raw neighbour ids for a room ahead of the
// connect phase. The ids are not validated here; unresolvable ones are
// dropped later by ConnectRooms.
func (w *World) TrackConnections(roomID int, neighbourIDs []int) {
	if w.connections == nil {
		w.connections = make(map[int][]int)
	}
	w.connections[roomID] = neighbourIDs
}

// ConnectionMap returns the transient id-based adjacency recorded during
// the build phase. It is nil once ConnectRooms has run.
func (w *World) ConnectionMap() map[int][]int {
	return w.connections
}
