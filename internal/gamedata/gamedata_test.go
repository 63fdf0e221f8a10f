package gamedata

import (
	"math/rand"
	"testing"
)

func TestLoadClasses(t *testing.T) {
	classes, err := LoadClasses()
	if err != nil {
		t.Fatalf("LoadClasses() error: %v", err)
	}
	if len(classes) != 3 {
		t.Fatalf("LoadClasses() returned %d classes, want 3", len(classes))
	}

	// Spot check the warrior
	var warrior *ClassDef
	for i := range classes {
		if classes[i].ID == "warrior" {
			warrior = &classes[i]
		}
	}
	if warrior == nil {
		t.Fatal("warrior class not found")
	}
	if warrior.HP != 30 || warrior.Attack != 5 || warrior.Defense != 3 || warrior.Speed != 2 {
		t.Errorf("warrior stats = %d/%d/%d/%d, want 30/5/3/2",
			warrior.HP, warrior.Attack, warrior.Defense, warrior.Speed)
	}
	if warrior.GlyphRune() != '@' {
		t.Errorf("warrior glyph = %q, want '@'", warrior.GlyphRune())
	}
}

func TestLoadMonsterRegistry(t *testing.T) {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		t.Fatalf("LoadMonsterRegistry() error: %v", err)
	}
	if registry.Count() != 5 {
		t.Errorf("registry.Count() = %d, want 5", registry.Count())
	}

	rat := registry.GetByID("rat")
	if rat == nil {
		t.Fatal("GetByID(rat) returned nil")
	}
	if rat.HP != 10 || rat.Attack != 3 || rat.Defense != 0 || rat.Speed != 2 || rat.XP != 10 {
		t.Errorf("rat stats = %d/%d/%d/%d xp %d, want 10/3/0/2 xp 10",
			rat.HP, rat.Attack, rat.Defense, rat.Speed, rat.XP)
	}

	if registry.GetByID("dragon") != nil {
		t.Error("GetByID(dragon) should return nil for unknown id")
	}
}

func TestMonsterRegistrySpawnRandom(t *testing.T) {
	registry := MustLoadMonsterRegistry()
	rng := rand.New(rand.NewSource(7))

	// Every spawned def must come from the registry, and over many draws every
	// equal-weight template should appear at least once.
	seen := make(map[string]int)
	for i := 0; i < 1000; i++ {
		def := registry.SpawnRandom(rng)
		if def == nil {
			t.Fatal("SpawnRandom() returned nil")
		}
		if registry.GetByID(def.ID) == nil {
			t.Fatalf("SpawnRandom() returned unknown monster %q", def.ID)
		}
		seen[def.ID]++
	}
	for _, def := range registry.All() {
		if seen[def.ID] == 0 {
			t.Errorf("monster %q never spawned in 1000 draws", def.ID)
		}
	}
}

func TestSpawnRandomEmptyRegistry(t *testing.T) {
	registry := NewMonsterRegistry(nil)
	rng := rand.New(rand.NewSource(1))
	if def := registry.SpawnRandom(rng); def != nil {
		t.Errorf("SpawnRandom() on empty registry = %v, want nil", def)
	}
}

func TestLoadItemRegistry(t *testing.T) {
	registry, err := LoadItemRegistry()
	if err != nil {
		t.Fatalf("LoadItemRegistry() error: %v", err)
	}

	potion := registry.GetByID("health_potion")
	if potion == nil {
		t.Fatal("GetByID(health_potion) returned nil")
	}
	if potion.Effect != "heal" || potion.Power != 10 {
		t.Errorf("potion effect/power = %q/%d, want heal/10", potion.Effect, potion.Power)
	}

	stairs := registry.GetByID("stairway")
	if stairs == nil {
		t.Fatal("GetByID(stairway) returned nil")
	}
	if stairs.Effect != "stairs" {
		t.Errorf("stairway effect = %q, want stairs", stairs.Effect)
	}
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	if catalog.ClassByID("rogue") == nil {
		t.Error("ClassByID(rogue) returned nil")
	}
	if catalog.ClassByID("paladin") != nil {
		t.Error("ClassByID(paladin) should return nil for unknown id")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"#FF0000", false},
		{"00FF00", false},
		{"#B4B4FF", false},
		{"#FFF", true},
		{"#GGGGGG", true},
		{"", true},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
