package world

import "go.uber.org/zap"

// ConnectRooms resolves the id-based connection map recorded during the
// build phase into direct room-to-room edges. For each (parent id,
// neighbour ids) entry the parent is looked up in the registry; entries
// naming an unknown parent are skipped. Each neighbour id is resolved the
// same way, with unresolved ids individually dropped while the rest of the
// list is still processed. Dropped ids are a normal outcome, not an error:
// they are logged at debug level and reported by DanglingConnections.
//
// Edges are one-directional; the story document is expected to list
// reciprocal connections explicitly.
//
// Postcondition: the connection map is discarded; the world's adjacency
// lives only in the rooms' Neighbours slices.
func (w *World) ConnectRooms() {
	for parentID, neighbourIDs := range w.connections {
		parent, ok := w.RoomByID(parentID)
		if !ok {
			w.dangling = append(w.dangling, parentID)
			w.logger.Debug("dropping connections of unknown room",
				zap.Int("id", parentID),
			)
			continue
		}
		for _, nid := range neighbourIDs {
			neighbour, ok := w.RoomByID(nid)
			if !ok {
				w.dangling = append(w.dangling, nid)
				w.logger.Debug("dropping connection to unknown room",
					zap.Int("from", parentID),
					zap.Int("to", nid),
				)
				continue
			}
			parent.AddNeighbour(neighbour)
		}
	}
	w.connections = nil
}

// DanglingConnections returns a snapshot of the connection ids dropped
// during the connect phase, for diagnostics. Empty until ConnectRooms has
// run.
func (w *World) DanglingConnections() []int {
	out := make([]int, len(w.dangling))
	copy(out, w.dangling)
	return out
}
