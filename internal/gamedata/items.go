package gamedata

import "github.com/gdamore/tcell/v2"

// ItemDef defines an item type loaded from JSON.
type ItemDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "health_potion")
	Name   string `json:"name"`   // Display name (e.g., "Health Potion")
	Glyph  string `json:"glyph"`  // Single character for rendering (e.g., "!")
	Color  string `json:"color"`  // Hex color code (e.g., "#FF0000")
	Effect string `json:"effect"` // One of "heal", "stairs", or "" for none
	Power  int    `json:"power"`  // Effect magnitude (HP restored for heal)
}

// GlyphRune returns the glyph as a rune for rendering.
func (i *ItemDef) GlyphRune() rune {
	if len(i.Glyph) == 0 {
		return '?'
	}
	return rune(i.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (i *ItemDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(i.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}

// MustLoadItems loads item definitions, panicking on error.
func MustLoadItems() []ItemDef {
	items, err := LoadItems()
	if err != nil {
		panic(err)
	}
	return items
}
