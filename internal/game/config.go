package game

import "github.com/samdwyer/levelworld/internal/world"

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeons and
	// combat. A seed of 0 means a time-derived seed will be used.
	Seed int64

	// Class selects the player archetype by id: "warrior", "rogue", or "mage".
	Class string

	// World carries dungeon generation parameters.
	World world.Config
}

// DefaultConfig returns the standard game configuration.
func DefaultConfig() Config {
	return Config{
		Class: "warrior",
		World: world.DefaultConfig(),
	}
}
