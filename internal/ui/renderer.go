package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/levelworld/internal/entity"
	"github.com/samdwyer/levelworld/internal/world"
)

// Frame is the read-only view of game state the renderer consumes. The
// renderer never mutates any of it.
type Frame struct {
	Dungeon       *world.Dungeon
	Monsters      []*entity.Actor
	Player        *entity.Actor
	Depth         int
	Status        string
	ShowInventory bool
	Defeated      bool
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one complete frame: map, items, actors, HUD, and overlays.
func (r *Renderer) Render(f Frame) {
	r.screen.Clear()

	d := f.Dungeon
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			tile := d.TileAt(x, y)
			r.screen.SetContent(x, y, tile.Rune(), r.tileStyle(tile))
		}
	}

	for _, item := range d.Items {
		r.screen.SetContent(item.X, item.Y, item.Glyph,
			tcell.StyleDefault.Foreground(item.Color))
	}

	for _, m := range f.Monsters {
		r.screen.SetContent(m.X, m.Y, m.Glyph,
			tcell.StyleDefault.Foreground(m.Color))
	}

	p := f.Player
	r.screen.SetContent(p.X, p.Y, p.Glyph,
		tcell.StyleDefault.Foreground(p.Color).Bold(true))

	r.drawHUD(f)

	if f.ShowInventory {
		r.drawInventory(p)
	}
	if f.Defeated {
		r.screen.DrawText(0, d.Height+2, "You have died. Press q to quit.",
			tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}

	r.screen.Show()
}

// drawHUD prints the stat line and the last turn's message below the map.
func (r *Renderer) drawHUD(f Frame) {
	p := f.Player
	hud := fmt.Sprintf("%s  HP %d/%d  Lvl %d  XP %d/%d  Floor %d",
		p.Name, p.HP, p.MaxHP, p.Level, p.XP, p.Level*entity.XPThresholdPerLevel, f.Depth)
	r.screen.DrawText(0, f.Dungeon.Height, hud,
		tcell.StyleDefault.Foreground(tcell.ColorYellow))
	r.screen.DrawText(0, f.Dungeon.Height+1, f.Status,
		tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// drawInventory lists carried items in a box over the right side of the map.
func (r *Renderer) drawInventory(p *entity.Actor) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)

	r.screen.DrawText(2, 1, fmt.Sprintf(" Inventory (%d) ", len(p.Inventory)), style.Bold(true))
	if len(p.Inventory) == 0 {
		r.screen.DrawText(2, 2, " (empty) ", style)
		return
	}
	for i, item := range p.Inventory {
		r.screen.DrawText(2, 2+i, fmt.Sprintf(" %c %s ", item.Glyph, item.Name), style)
	}
}

// tileStyle returns the appropriate style for a tile.
func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	if tile.Blocked {
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorGray)
}
