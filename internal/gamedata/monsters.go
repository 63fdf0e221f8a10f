package gamedata

import "github.com/gdamore/tcell/v2"

// MonsterDef defines a monster type loaded from JSON.
type MonsterDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name (e.g., "Goblin")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "g")
	Color       string `json:"color"`       // Hex color code (e.g., "#009600")
	HP          int    `json:"hp"`          // Base hit points
	Attack      int    `json:"attack"`      // Base attack power
	Defense     int    `json:"defense"`     // Base defense value
	Speed       int    `json:"speed"`       // Base speed (drives hit chance)
	XP          int    `json:"xp"`          // XP awarded to the killer
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (higher = more common)
}

// GlyphRune returns the glyph as a rune for rendering.
func (m *MonsterDef) GlyphRune() rune {
	if len(m.Glyph) == 0 {
		return '?'
	}
	return rune(m.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (m *MonsterDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(m.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonsters loads monster definitions from the embedded monsters.json file.
func LoadMonsters() ([]MonsterDef, error) {
	file, err := Load[MonstersFile]("monsters.json")
	if err != nil {
		return nil, err
	}
	return file.Monsters, nil
}

// MustLoadMonsters loads monster definitions, panicking on error.
func MustLoadMonsters() []MonsterDef {
	monsters, err := LoadMonsters()
	if err != nil {
		panic(err)
	}
	return monsters
}
