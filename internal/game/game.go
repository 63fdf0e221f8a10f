package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/levelworld/internal/entity"
	"github.com/samdwyer/levelworld/internal/gamedata"
	"github.com/samdwyer/levelworld/internal/telemetry"
	"github.com/samdwyer/levelworld/internal/ui"
	"github.com/samdwyer/levelworld/internal/world"
)

// Game holds the entire game state. All mutation happens on the single
// thread driving Run; the render/input layer only reads.
type Game struct {
	cfg     Config
	rng     *rand.Rand
	catalog *gamedata.Catalog

	dungeon  *world.Dungeon
	player   *entity.Actor
	monsters []*entity.Actor
	depth    int

	state   State
	status  string
	running bool

	screen   *ui.Screen
	renderer *ui.Renderer
}

// New creates a game and generates the first floor. It is headless: the
// terminal is only attached by Run, so tests can drive the engine directly.
func New(ctx context.Context, cfg Config) (*Game, error) {
	if cfg.World.Width == 0 {
		cfg.World = world.DefaultConfig()
	}

	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return nil, err
	}

	classDef := catalog.ClassByID(cfg.Class)
	if classDef == nil {
		return nil, fmt.Errorf("unknown player class %q", cfg.Class)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		catalog: catalog,
		state:   StateExplore,
		running: true,
		status:  "You descend into the dungeon.",
	}

	if err := g.newFloor(ctx); err != nil {
		return nil, err
	}

	startX, startY := g.dungeon.Rooms[0].Center()
	g.player = entity.NewPlayer(classDef, startX, startY)
	g.dungeon.MarkExplored(startX, startY)

	return g, nil
}

// newFloor generates a fresh dungeon and populates it with items and
// monsters. The player is untouched; callers reposition it.
func (g *Game) newFloor(ctx context.Context) error {
	g.depth++

	dungeon := world.NewDungeon(g.cfg.World, g.rng)
	if err := dungeon.Generate(ctx); err != nil {
		return fmt.Errorf("floor %d: %w", g.depth, err)
	}

	potion := g.catalog.Items.GetByID("health_potion")
	stairs := g.catalog.Items.GetByID("stairway")
	if potion == nil || stairs == nil {
		return fmt.Errorf("item catalog missing health_potion or stairway")
	}
	dungeon.PlaceItems(potion, stairs)

	g.dungeon = dungeon
	g.monsters = g.spawnMonsters()
	return nil
}

// spawnMonsters places 0-3 monsters in every room except the first, which is
// the player's arrival room.
func (g *Game) spawnMonsters() []*entity.Actor {
	var monsters []*entity.Actor
	for _, room := range g.dungeon.Rooms[1:] {
		count := g.rng.Intn(4)
		for i := 0; i < count; i++ {
			def := g.catalog.Monsters.SpawnRandom(g.rng)
			x, y := g.dungeon.RandomPointInRoom(room)
			monsters = append(monsters, entity.NewMonster(def, x, y))
		}
	}
	return monsters
}

// Dungeon returns the current floor for read-only use by rendering.
func (g *Game) Dungeon() *world.Dungeon { return g.dungeon }

// Player returns the player actor.
func (g *Game) Player() *entity.Actor { return g.player }

// Monsters returns the living monsters on the current floor.
func (g *Game) Monsters() []*entity.Actor { return g.monsters }

// Depth returns the current floor number, starting at 1.
func (g *Game) Depth() int { return g.depth }

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Status returns the message produced by the last turn.
func (g *Game) Status() string { return g.status }

// Run attaches the terminal and executes the main loop.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.run")
	span.SetAttributes(
		attribute.String("player.class", g.cfg.Class),
		attribute.String("player.id", g.player.ID.String()),
		attribute.Int("dungeon.rooms", len(g.dungeon.Rooms)),
	)
	defer span.End()

	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	g.screen = screen
	g.renderer = ui.NewRenderer(screen)
	defer g.screen.Close()

	for g.running {
		g.renderer.Render(g.frame())

		if err := g.handleInput(ctx); err != nil {
			return err
		}
	}

	return nil
}

// frame collects the read-only view the renderer consumes.
func (g *Game) frame() ui.Frame {
	return ui.Frame{
		Dungeon:       g.dungeon,
		Monsters:      g.monsters,
		Player:        g.player,
		Depth:         g.depth,
		Status:        g.status,
		ShowInventory: g.state == StateInventory,
		Defeated:      g.state == StateDefeat,
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) error {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input. Quit and the inventory toggle are
// handled here, outside the turn engine.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyUp:
		return g.Step(ctx, 0, -1)
	case tcell.KeyDown:
		return g.Step(ctx, 0, 1)
	case tcell.KeyLeft:
		return g.Step(ctx, -1, 0)
	case tcell.KeyRight:
		return g.Step(ctx, 1, 0)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'i', 'I':
			g.toggleInventory()
		}
	}
	return nil
}

// toggleInventory flips the inventory overlay on and off.
func (g *Game) toggleInventory() {
	switch g.state {
	case StateExplore:
		g.state = StateInventory
	case StateInventory:
		g.state = StateExplore
	}
}
