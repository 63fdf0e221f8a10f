package world

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/levelworld/internal/gamedata"
	"github.com/samdwyer/levelworld/internal/telemetry"
)

// Config holds dungeon generation parameters.
type Config struct {
	Width       int // Grid width in tiles
	Height      int // Grid height in tiles
	MaxRooms    int // Placement attempts; overlapping candidates are dropped, not retried
	RoomMinSize int // Minimum room dimension including walls
	RoomMaxSize int // Maximum room dimension including walls
}

// DefaultConfig returns the standard dungeon parameters.
func DefaultConfig() Config {
	return Config{
		Width:       40,
		Height:      30,
		MaxRooms:    8,
		RoomMinSize: 6,
		RoomMaxSize: 10,
	}
}

// ErrNoRooms is returned when generation accepts zero rooms, which is possible
// for degenerate size/grid combinations. Callers must not use such a floor.
var ErrNoRooms = errors.New("dungeon generation accepted no rooms")

// Dungeon represents one generated floor: tile grid, rooms, and floor items.
type Dungeon struct {
	Width  int
	Height int
	Rooms  []Rect
	Items  []*Item

	cfg   Config
	tiles []Tile // flat buffer indexed y*Width+x
	rng   *rand.Rand
}

// NewDungeon creates a new dungeon filled with walls.
func NewDungeon(cfg Config, rng *rand.Rand) *Dungeon {
	tiles := make([]Tile, cfg.Width*cfg.Height)
	for i := range tiles {
		tiles[i] = NewTile(true)
	}

	return &Dungeon{
		Width:  cfg.Width,
		Height: cfg.Height,
		Rooms:  make([]Rect, 0, cfg.MaxRooms),
		Items:  make([]*Item, 0),
		cfg:    cfg,
		tiles:  tiles,
		rng:    rng,
	}
}

// Generate carves the room-and-corridor layout.
//
// It attempts MaxRooms placements with uniformly drawn dimensions and origin.
// A candidate that overlaps any accepted room is dropped, so fewer than
// MaxRooms rooms may result. Each accepted room is connected to the
// immediately previously accepted one by an L-shaped corridor, yielding a
// single connected chain.
func (d *Dungeon) Generate(ctx context.Context) error {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	for attempt := 0; attempt < d.cfg.MaxRooms; attempt++ {
		w := d.cfg.RoomMinSize + d.rng.Intn(d.cfg.RoomMaxSize-d.cfg.RoomMinSize+1)
		h := d.cfg.RoomMinSize + d.rng.Intn(d.cfg.RoomMaxSize-d.cfg.RoomMinSize+1)
		if w > d.Width-1 || h > d.Height-1 {
			continue // candidate cannot fit the grid
		}
		x := d.rng.Intn(d.Width - w)
		y := d.rng.Intn(d.Height - h)

		room := NewRect(x, y, w, h)
		if d.overlapsAny(room) {
			continue
		}

		d.carveRoom(room)
		if len(d.Rooms) > 0 {
			prevX, prevY := d.Rooms[len(d.Rooms)-1].Center()
			newX, newY := room.Center()
			d.carveCorridor(prevX, prevY, newX, newY)
		}
		d.Rooms = append(d.Rooms, room)
	}

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	if len(d.Rooms) == 0 {
		span.SetAttributes(attribute.String("warning", "no rooms accepted"))
		return ErrNoRooms
	}
	return nil
}

// PlaceItems seeds the floor with 0-2 health potions per room and exactly one
// stairway at the center of the last accepted room. Generate must have
// succeeded first.
func (d *Dungeon) PlaceItems(potion, stairs *gamedata.ItemDef) {
	for _, room := range d.Rooms {
		count := d.rng.Intn(3)
		for i := 0; i < count; i++ {
			x, y := d.RandomPointInRoom(room)
			d.Items = append(d.Items, NewItemFromDef(potion, x, y))
		}
	}

	last := d.Rooms[len(d.Rooms)-1]
	sx, sy := last.Center()
	d.Items = append(d.Items, NewItemFromDef(stairs, sx, sy))
}

// RandomPointInRoom returns a uniformly random interior point of the room.
func (d *Dungeon) RandomPointInRoom(room Rect) (int, int) {
	x := room.X1 + 1 + d.rng.Intn(room.X2-room.X1-1)
	y := room.Y1 + 1 + d.rng.Intn(room.Y2-room.Y1-1)
	return x, y
}

// overlapsAny reports whether the candidate intersects any accepted room.
func (d *Dungeon) overlapsAny(room Rect) bool {
	for _, other := range d.Rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom opens the room's interior, leaving its outer ring as wall.
func (d *Dungeon) carveRoom(room Rect) {
	for y := room.Y1 + 1; y <= room.Y2-1; y++ {
		for x := room.X1 + 1; x <= room.X2-1; x++ {
			d.carve(x, y)
		}
	}
}

// carveCorridor digs an L-shaped tunnel between two room centers, choosing
// uniformly between horizontal-then-vertical and vertical-then-horizontal.
func (d *Dungeon) carveCorridor(x1, y1, x2, y2 int) {
	if d.rng.Intn(2) == 0 {
		d.carveHorizontalTunnel(x1, x2, y1)
		d.carveVerticalTunnel(y1, y2, x2)
	} else {
		d.carveVerticalTunnel(y1, y2, x1)
		d.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.carve(x, y)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.carve(x, y)
	}
}

// carve opens a single tile for passage and sight.
func (d *Dungeon) carve(x, y int) {
	if !d.InBounds(x, y) {
		return
	}
	t := &d.tiles[y*d.Width+x]
	t.Blocked = false
	t.BlocksSight = false
}

// InBounds returns true if the position lies within the grid.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// IsBlocked returns true if the position is impassable. Out-of-bounds
// positions count as blocked.
func (d *Dungeon) IsBlocked(x, y int) bool {
	if !d.InBounds(x, y) {
		return true
	}
	return d.tiles[y*d.Width+x].Blocked
}

// TileAt returns a copy of the tile at the given position. Out-of-bounds
// positions return a wall.
func (d *Dungeon) TileAt(x, y int) Tile {
	if !d.InBounds(x, y) {
		return NewTile(true)
	}
	return d.tiles[y*d.Width+x]
}

// MarkExplored flags the tile at the given position as seen.
func (d *Dungeon) MarkExplored(x, y int) {
	if !d.InBounds(x, y) {
		return
	}
	d.tiles[y*d.Width+x].Explored = true
}

// ItemAt returns the first floor item at the given position, or nil.
func (d *Dungeon) ItemAt(x, y int) *Item {
	for _, item := range d.Items {
		if item.X == x && item.Y == y {
			return item
		}
	}
	return nil
}

// RemoveItem removes an item from the floor, typically after pickup.
func (d *Dungeon) RemoveItem(item *Item) {
	for i, it := range d.Items {
		if it == item {
			d.Items = append(d.Items[:i], d.Items[i+1:]...)
			return
		}
	}
}

// RoomIndexAt returns the index of the room containing the position, or -1.
func (d *Dungeon) RoomIndexAt(x, y int) int {
	for i, room := range d.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}
