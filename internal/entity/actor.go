// Package entity provides the actor record shared by the player and monsters.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/levelworld/internal/gamedata"
	"github.com/samdwyer/levelworld/internal/world"
)

// XP needed to advance from a level is level * XPThresholdPerLevel.
const XPThresholdPerLevel = 50

// StatPointsPerLevel accrue on each level-up.
const StatPointsPerLevel = 5

// Actor is any creature on the floor: the player or a monster. The two differ
// only in their stat tuple and XPYield; behavior is shared.
type Actor struct {
	ID    uuid.UUID
	Name  string
	Glyph rune
	Color tcell.Color
	X, Y  int

	HP, MaxHP int
	Attack    int
	Defense   int
	Speed     int

	Level      int
	XP         int
	StatPoints int
	Inventory  []world.Item

	// XPYield is awarded to the killer. Zero for the player.
	XPYield int
}

// NewPlayer creates the player actor from a class definition.
func NewPlayer(def *gamedata.ClassDef, x, y int) *Actor {
	return &Actor{
		ID:        uuid.New(),
		Name:      def.Name,
		Glyph:     def.GlyphRune(),
		Color:     def.TCellColor(),
		X:         x,
		Y:         y,
		HP:        def.HP,
		MaxHP:     def.HP,
		Attack:    def.Attack,
		Defense:   def.Defense,
		Speed:     def.Speed,
		Level:     1,
		Inventory: []world.Item{},
	}
}

// NewMonster creates a monster actor from a template definition.
func NewMonster(def *gamedata.MonsterDef, x, y int) *Actor {
	return &Actor{
		ID:        uuid.New(),
		Name:      def.Name,
		Glyph:     def.GlyphRune(),
		Color:     def.TCellColor(),
		X:         x,
		Y:         y,
		HP:        def.HP,
		MaxHP:     def.HP,
		Attack:    def.Attack,
		Defense:   def.Defense,
		Speed:     def.Speed,
		Level:     1,
		XPYield:   def.XP,
		Inventory: []world.Item{},
	}
}

// Position returns the actor's current x, y coordinates.
func (a *Actor) Position() (int, int) {
	return a.X, a.Y
}

// IsAlive returns true if the actor has HP remaining.
func (a *Actor) IsAlive() bool {
	return a.HP > 0
}

// Move shifts the actor by the given delta if the destination tile is open.
// Blocked or out-of-bounds destinations are a silent no-op, not an error.
// Returns true if the actor moved.
func (a *Actor) Move(dx, dy int, d *world.Dungeon) bool {
	if d.IsBlocked(a.X+dx, a.Y+dy) {
		return false
	}
	a.X += dx
	a.Y += dy
	return true
}

// TakeDamage reduces HP by amount and reports whether the actor is dead
// (HP at or below zero). HP is deliberately not clamped at zero, so a
// zero-damage hit still reports death for an actor already at or below it.
func (a *Actor) TakeDamage(amount int) bool {
	a.HP -= amount
	return a.HP <= 0
}

// Heal restores HP up to MaxHP and returns the actual amount healed.
func (a *Actor) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if a.HP+actual > a.MaxHP {
		actual = a.MaxHP - a.HP
	}
	a.HP += actual
	return actual
}

// GainXP accumulates experience and applies level-ups. The threshold check
// loops so one large award can advance several levels; leftover XP carries
// into the next level. Returns the number of levels gained.
func (a *Actor) GainXP(amount int) int {
	a.XP += amount
	levels := 0
	for a.XP >= a.Level*XPThresholdPerLevel {
		a.XP -= a.Level * XPThresholdPerLevel
		a.Level++
		a.StatPoints += StatPointsPerLevel
		levels++
	}
	return levels
}

// PickUp transfers a floor item into the actor's inventory.
func (a *Actor) PickUp(item *world.Item) {
	a.Inventory = append(a.Inventory, *item)
}
