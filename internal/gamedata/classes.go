package gamedata

import "github.com/gdamore/tcell/v2"

// ClassDef defines a playable class loaded from JSON.
type ClassDef struct {
	ID      string `json:"id"`      // Unique identifier (e.g., "warrior")
	Name    string `json:"name"`    // Display name (e.g., "Warrior")
	Glyph   string `json:"glyph"`   // Single character for rendering (e.g., "@")
	Color   string `json:"color"`   // Hex color code (e.g., "#FFFFFF")
	HP      int    `json:"hp"`      // Base hit points
	Attack  int    `json:"attack"`  // Base attack power
	Defense int    `json:"defense"` // Base defense value
	Speed   int    `json:"speed"`   // Base speed (drives hit chance)
}

// GlyphRune returns the glyph as a rune for rendering.
func (c *ClassDef) GlyphRune() rune {
	if len(c.Glyph) == 0 {
		return '?'
	}
	return rune(c.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (c *ClassDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// ClassesFile represents the structure of classes.json.
type ClassesFile struct {
	Classes []ClassDef `json:"classes"`
}

// LoadClasses loads class definitions from the embedded classes.json file.
func LoadClasses() ([]ClassDef, error) {
	file, err := Load[ClassesFile]("classes.json")
	if err != nil {
		return nil, err
	}
	return file.Classes, nil
}

// MustLoadClasses loads class definitions, panicking on error.
func MustLoadClasses() []ClassDef {
	classes, err := LoadClasses()
	if err != nil {
		panic(err)
	}
	return classes
}
