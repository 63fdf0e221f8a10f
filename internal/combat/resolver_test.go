package combat

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/levelworld/internal/entity"
	"github.com/samdwyer/levelworld/internal/gamedata"
)

// fixedSource forces attack resolution outcomes: hitRoll feeds the hit-chance
// draw, damageRoll is returned verbatim from Intn.
type fixedSource struct {
	hitRoll    float64
	damageRoll int
}

func (s fixedSource) Float64() float64 { return s.hitRoll }
func (s fixedSource) Intn(n int) int   { return s.damageRoll }

func alwaysHit(damageRoll int) fixedSource {
	// Intn(attack) returning damageRoll makes the damage roll 1+damageRoll.
	return fixedSource{hitRoll: 0, damageRoll: damageRoll}
}

func alwaysMiss() fixedSource {
	return fixedSource{hitRoll: 0.999999}
}

func newWarrior() *entity.Actor {
	return entity.NewPlayer(&gamedata.ClassDef{
		ID: "warrior", Name: "Warrior", Glyph: "@", Color: "#FFFFFF",
		HP: 30, Attack: 5, Defense: 3, Speed: 2,
	}, 0, 0)
}

func newRat() *entity.Actor {
	return entity.NewMonster(&gamedata.MonsterDef{
		ID: "rat", Name: "Rat", Glyph: "r", Color: "#969696",
		HP: 10, Attack: 3, Defense: 0, Speed: 2, XP: 10, SpawnWeight: 1,
	}, 0, 0)
}

func TestWarriorHitsRat(t *testing.T) {
	warrior := newWarrior()
	rat := newRat()

	// Forced hit with the damage roll maxed: 1+4=5, minus 0 defense.
	result := ResolveAttack(warrior, rat, alwaysHit(4))

	if !result.Hit {
		t.Error("forced hit reported as miss")
	}
	if result.Damage != 5 {
		t.Errorf("Damage = %d, want 5", result.Damage)
	}
	if result.Died {
		t.Error("rat at 5 HP reported dead")
	}
	if rat.HP != 5 {
		t.Errorf("rat HP = %d, want 5", rat.HP)
	}
}

func TestWarriorKillsRatAndGainsXP(t *testing.T) {
	warrior := newWarrior()
	rat := newRat()

	ResolveAttack(warrior, rat, alwaysHit(4))
	result := ResolveAttack(warrior, rat, alwaysHit(4))

	if !result.Died {
		t.Fatal("second 5-damage hit should kill the rat")
	}
	if rat.HP != 0 {
		t.Errorf("rat HP = %d, want 0", rat.HP)
	}
	if result.XPAwarded != 10 {
		t.Errorf("XPAwarded = %d, want 10", result.XPAwarded)
	}
	// 10 XP against a level-1 threshold of 50: no level-up.
	if warrior.XP != 10 || warrior.Level != 1 {
		t.Errorf("warrior xp/level = %d/%d, want 10/1", warrior.XP, warrior.Level)
	}
}

func TestMissDealsZeroDamage(t *testing.T) {
	warrior := newWarrior()
	rat := newRat()

	result := ResolveAttack(warrior, rat, alwaysMiss())

	if result.Hit {
		t.Error("forced miss reported as hit")
	}
	if result.Damage != 0 {
		t.Errorf("Damage = %d, want 0", result.Damage)
	}
	if rat.HP != 10 {
		t.Errorf("rat HP = %d, want 10", rat.HP)
	}
}

func TestMissStillResolvesDeath(t *testing.T) {
	// A zero-damage exchange routes through TakeDamage, so a defender already
	// at or below zero HP resolves as dead even on a miss.
	warrior := newWarrior()
	rat := newRat()
	rat.HP = 0

	result := ResolveAttack(warrior, rat, alwaysMiss())

	if !result.Died {
		t.Error("miss against a dead defender should still report death")
	}
	if result.XPAwarded != 10 {
		t.Errorf("XPAwarded = %d, want 10", result.XPAwarded)
	}
}

func TestMinimumOneDamageOnHit(t *testing.T) {
	rat := newRat()
	warrior := newWarrior() // defense 3 exceeds any rat roll (max 3)

	result := ResolveAttack(rat, warrior, alwaysHit(0)) // roll 1, minus 3 defense

	if result.Damage != 1 {
		t.Errorf("Damage = %d, want floor of 1", result.Damage)
	}
	if warrior.HP != 29 {
		t.Errorf("warrior HP = %d, want 29", warrior.HP)
	}
}

func TestHitChanceFavorsFasterAttacker(t *testing.T) {
	// Statistical check with a seeded generator: a speed-4 ghost against a
	// speed-1 skeleton hits about 80% of the time.
	ghost := entity.NewMonster(&gamedata.MonsterDef{
		ID: "ghost", Name: "Ghost", Glyph: "G", Color: "#B4B4FF",
		HP: 12, Attack: 7, Defense: 0, Speed: 4, XP: 30, SpawnWeight: 1,
	}, 0, 0)

	rng := rand.New(rand.NewSource(99))
	hits := 0
	trials := 5000
	for i := 0; i < trials; i++ {
		skeleton := entity.NewMonster(&gamedata.MonsterDef{
			ID: "skeleton", Name: "Skeleton", Glyph: "s", Color: "#646464",
			HP: 20, Attack: 6, Defense: 2, Speed: 1, XP: 25, SpawnWeight: 1,
		}, 0, 0)
		if ResolveAttack(ghost, skeleton, rng).Hit {
			hits++
		}
	}

	rate := float64(hits) / float64(trials)
	if rate < 0.75 || rate > 0.85 {
		t.Errorf("hit rate = %.3f, want about 0.80", rate)
	}
}

func TestKillAwardsNoXPWithoutYield(t *testing.T) {
	rat := newRat()
	warrior := newWarrior()
	warrior.HP = 1

	result := ResolveAttack(rat, warrior, alwaysHit(2)) // roll 3, minus 3 defense, floor 1

	if !result.Died {
		t.Fatal("warrior at 1 HP should die to a 1-damage hit")
	}
	if result.XPAwarded != 0 || rat.XP != 0 {
		t.Errorf("player kill awarded XP: result %d, rat xp %d", result.XPAwarded, rat.XP)
	}
}
