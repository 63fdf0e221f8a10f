package world

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/levelworld/internal/gamedata"
)

// Effect identifies what happens when an item is used or stepped on.
type Effect int

const (
	// EffectNone marks plain loot with no on-pickup behavior.
	EffectNone Effect = iota
	// EffectHeal restores HP on pickup.
	EffectHeal
	// EffectStairs triggers a floor transition when stepped on.
	EffectStairs
)

// String returns a human-readable effect name.
func (e Effect) String() string {
	switch e {
	case EffectHeal:
		return "heal"
	case EffectStairs:
		return "stairs"
	default:
		return "none"
	}
}

// EffectFromString parses an effect tag as found in items.json.
// Unknown tags map to EffectNone.
func EffectFromString(s string) Effect {
	switch s {
	case "heal":
		return EffectHeal
	case "stairs":
		return EffectStairs
	default:
		return EffectNone
	}
}

// Item is an object lying on the dungeon floor. Once picked up it lives in an
// actor's inventory and its position is no longer meaningful.
type Item struct {
	X, Y   int
	Name   string
	Glyph  rune
	Color  tcell.Color
	Effect Effect
	Power  int // Effect magnitude (HP restored for heal)
}

// NewItemFromDef creates an item instance from a data-driven definition.
func NewItemFromDef(def *gamedata.ItemDef, x, y int) *Item {
	return &Item{
		X:      x,
		Y:      y,
		Name:   def.Name,
		Glyph:  def.GlyphRune(),
		Color:  def.TCellColor(),
		Effect: EffectFromString(def.Effect),
		Power:  def.Power,
	}
}
