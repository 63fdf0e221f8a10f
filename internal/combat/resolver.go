// Package combat resolves attack exchanges between actors.
package combat

import (
	"github.com/samdwyer/levelworld/internal/entity"
)

// Source is the randomness an attack resolution consumes. *rand.Rand
// satisfies it; tests supply fixed-outcome implementations.
type Source interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// Intn returns a uniform value in [0,n).
	Intn(n int) int
}

// Result describes one resolved attack.
type Result struct {
	Hit       bool // Whether the hit-chance roll succeeded
	Damage    int  // Damage dealt; 0 on a miss, at least 1 on a hit
	Died      bool // Whether the defender's HP is at or below zero
	XPAwarded int  // XP transferred to the attacker on a kill
}

// ResolveAttack computes a single attack from attacker to defender and
// applies it. Hit chance is attacker speed over combined speed; damage is a
// uniform roll in [1, attack] minus defense, floored at 1. A miss still
// routes zero damage through TakeDamage so an already-dead defender resolves
// death on this path too. This is the only code that mutates combatant HP.
func ResolveAttack(attacker, defender *entity.Actor, rng Source) Result {
	var result Result

	hitChance := float64(attacker.Speed) / float64(attacker.Speed+defender.Speed)
	if rng.Float64() < hitChance {
		result.Hit = true
		roll := 1 + rng.Intn(attacker.Attack)
		result.Damage = roll - defender.Defense
		if result.Damage < 1 {
			result.Damage = 1
		}
	}

	result.Died = defender.TakeDamage(result.Damage)
	if result.Died && defender.XPYield > 0 {
		attacker.GainXP(defender.XPYield)
		result.XPAwarded = defender.XPYield
	}

	return result
}
