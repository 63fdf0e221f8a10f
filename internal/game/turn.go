package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/levelworld/internal/combat"
	"github.com/samdwyer/levelworld/internal/telemetry"
	"github.com/samdwyer/levelworld/internal/world"
)

// Step resolves one discrete game turn from a directional intent: movement,
// then at most one combat exchange, then at most one item or stairs
// interaction. Turns only run while exploring; the inventory overlay and the
// defeat state swallow movement input.
func (g *Game) Step(ctx context.Context, dx, dy int) error {
	if g.state != StateExplore {
		return nil
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.turn")
	span.SetAttributes(
		attribute.Int("turn.dx", dx),
		attribute.Int("turn.dy", dy),
		attribute.Int("dungeon.depth", g.depth),
	)
	defer span.End()

	g.player.Move(dx, dy, g.dungeon)
	g.dungeon.MarkExplored(g.player.X, g.player.Y)

	if g.resolveCollision(span) {
		return nil // combat consumed the turn
	}

	return g.resolveItem(ctx, span)
}

// resolveCollision scans for a monster on the player's tile, in spawn order,
// and resolves a two-strike exchange with the first match. Returns true if
// combat happened.
func (g *Game) resolveCollision(span trace.Span) bool {
	for i, monster := range g.monsters {
		if monster.X != g.player.X || monster.Y != g.player.Y {
			continue
		}

		result := combat.ResolveAttack(g.player, monster, g.rng)
		span.SetAttributes(
			attribute.String("combat.monster", monster.Name),
			attribute.String("combat.monster_id", monster.ID.String()),
			attribute.Int("combat.damage", result.Damage),
			attribute.Bool("combat.kill", result.Died),
		)

		if result.Died {
			g.status = fmt.Sprintf("You hit the %s for %d damage. It dies! You gain %d XP.",
				monster.Name, result.Damage, result.XPAwarded)
			g.monsters = append(g.monsters[:i], g.monsters[i+1:]...)
			return true
		}

		// The survivor counter-attacks in the same turn.
		counter := combat.ResolveAttack(monster, g.player, g.rng)
		span.SetAttributes(attribute.Int("combat.counter_damage", counter.Damage))
		g.status = fmt.Sprintf("You hit the %s for %d damage. It strikes back for %d.",
			monster.Name, result.Damage, counter.Damage)

		if counter.Died {
			g.state = StateDefeat
			g.status = fmt.Sprintf("The %s strikes you down. You have died.", monster.Name)
			span.SetAttributes(attribute.Bool("player.died", true))
		}
		return true
	}
	return false
}

// resolveItem handles the item or stairs sitting under the player, if any.
// Only reached when no combat consumed the turn.
func (g *Game) resolveItem(ctx context.Context, span trace.Span) error {
	item := g.dungeon.ItemAt(g.player.X, g.player.Y)
	if item == nil {
		return nil
	}

	switch item.Effect {
	case world.EffectHeal:
		healed := g.player.Heal(item.Power)
		g.player.PickUp(item)
		g.dungeon.RemoveItem(item)
		g.status = fmt.Sprintf("You drink the %s and recover %d HP.", item.Name, healed)
		span.SetAttributes(
			attribute.String("item.name", item.Name),
			attribute.Int("item.healed", healed),
		)

	case world.EffectStairs:
		span.SetAttributes(attribute.Bool("stairs.taken", true))
		return g.descend(ctx)

	default:
		g.player.PickUp(item)
		g.dungeon.RemoveItem(item)
		g.status = fmt.Sprintf("You pick up the %s.", item.Name)
		span.SetAttributes(attribute.String("item.name", item.Name))
	}

	return nil
}

// descend regenerates the dungeon with the same configuration and moves the
// player to the new first room's center. The player record persists wholesale,
// so inventory, level, XP, stat points, and current HP all carry over.
func (g *Game) descend(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.descend")
	defer span.End()

	if err := g.newFloor(ctx); err != nil {
		return err
	}

	startX, startY := g.dungeon.Rooms[0].Center()
	g.player.X = startX
	g.player.Y = startY
	g.dungeon.MarkExplored(startX, startY)
	g.status = fmt.Sprintf("You descend the stairs to floor %d.", g.depth)

	span.SetAttributes(
		attribute.Int("dungeon.depth", g.depth),
		attribute.Int("dungeon.rooms", len(g.dungeon.Rooms)),
		attribute.Int("dungeon.monsters", len(g.monsters)),
		attribute.Int("player.level", g.player.Level),
		attribute.Int("player.hp", g.player.HP),
	)
	return nil
}
