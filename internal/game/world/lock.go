package world

import "github.com/pcurran/fable/internal/game/inventory"

// TryUnlock attempts to open room with candidate. The caller must have
// taken the candidate out of its owning inventory first.
//
// On success the room becomes Unlocked, the key is consumed, and nil is
// returned. On failure the candidate is handed back unchanged: a key that
// fails against the wrong room keeps its key variant and can still open
// the right one later.
//
// Postcondition: success iff candidate is a key whose UnlocksRoom equals
// room.ID; the room's lock state changes only on success.
func TryUnlock(candidate *inventory.Item, room *Room) (*inventory.Item, bool) {
	if candidate == nil || room == nil {
		return candidate, false
	}
	if candidate.IsKey() && candidate.UnlocksRoom == room.ID {
		room.Lock = Unlocked
		return nil, true
	}
	return candidate, false
}
