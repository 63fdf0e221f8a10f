// Package world provides dungeon generation and map management.
package world

// Tile represents a single map cell.
type Tile struct {
	Blocked     bool // Impassable to actors
	BlocksSight bool // Opaque to line of sight
	Explored    bool // Seen by the player at least once
}

// NewTile creates a tile. A blocked tile also blocks sight unless carved open later.
func NewTile(blocked bool) Tile {
	return Tile{Blocked: blocked, BlocksSight: blocked}
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	if t.Blocked {
		return '#'
	}
	return '.'
}
