// Package game provides the turn engine, floor transitions, and the main loop.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default mode: movement input drives turns.
	StateExplore State = iota
	// StateInventory shows the inventory overlay; turns are suspended.
	StateInventory
	// StateDefeat is terminal: the player died and input is ignored.
	StateDefeat
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateInventory:
		return "inventory"
	case StateDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}
