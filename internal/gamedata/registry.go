package gamedata

import (
	"errors"
	"math/rand"
)

// MonsterRegistry holds loaded monster definitions and provides spawning utilities.
type MonsterRegistry struct {
	monsters    []MonsterDef
	totalWeight int
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []MonsterDef) *MonsterRegistry {
	totalWeight := 0
	for _, m := range monsters {
		totalWeight += m.SpawnWeight
	}
	return &MonsterRegistry{
		monsters:    monsters,
		totalWeight: totalWeight,
	}
}

// LoadMonsterRegistry loads and creates a registry from the embedded monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewMonsterRegistry(monsters), nil
}

// MustLoadMonsterRegistry loads a registry, panicking on error.
func MustLoadMonsterRegistry() *MonsterRegistry {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random monster definition using weighted probability.
// Monsters with higher spawnWeight are more likely to be selected.
func (r *MonsterRegistry) SpawnRandom(rng *rand.Rand) *MonsterDef {
	if r.totalWeight <= 0 || len(r.monsters) == 0 {
		return nil
	}

	// Pick a random value in the total weight range
	roll := rng.Intn(r.totalWeight)

	// Find which monster this roll corresponds to
	cumulative := 0
	for i := range r.monsters {
		cumulative += r.monsters[i].SpawnWeight
		if roll < cumulative {
			return &r.monsters[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.monsters[0]
}

// GetByID returns the monster definition with the given ID, or nil if not found.
func (r *MonsterRegistry) GetByID(id string) *MonsterDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// All returns all monster definitions.
func (r *MonsterRegistry) All() []MonsterDef {
	return r.monsters
}

// Count returns the number of monster types in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds loaded item definitions and provides lookup utilities.
type ItemRegistry struct {
	items map[string]*ItemDef
	all   []ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	registry := &ItemRegistry{
		items: make(map[string]*ItemDef),
		all:   items,
	}
	for i := range items {
		registry.items[items[i].ID] = &items[i]
	}
	return registry
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the item definition with the given ID, or nil if not found.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	return r.items[id]
}

// All returns all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	return r.all
}

// Count returns the number of items in the registry.
func (r *ItemRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// Catalog
// =============================================================================

// Catalog bundles every loaded data table. It is loaded once at startup and
// passed explicitly to the generator and spawner so tests can supply
// alternate catalogs.
type Catalog struct {
	Classes  []ClassDef
	Monsters *MonsterRegistry
	Items    *ItemRegistry
}

// LoadCatalog loads all embedded data tables.
func LoadCatalog() (*Catalog, error) {
	classes, err := LoadClasses()
	if err != nil {
		return nil, err
	}
	if len(classes) == 0 {
		return nil, errors.New("no classes loaded from classes.json")
	}
	monsters, err := LoadMonsterRegistry()
	if err != nil {
		return nil, err
	}
	items, err := LoadItemRegistry()
	if err != nil {
		return nil, err
	}
	return &Catalog{Classes: classes, Monsters: monsters, Items: items}, nil
}

// ClassByID returns the class definition with the given ID, or nil if not found.
func (c *Catalog) ClassByID(id string) *ClassDef {
	for i := range c.Classes {
		if c.Classes[i].ID == id {
			return &c.Classes[i]
		}
	}
	return nil
}
