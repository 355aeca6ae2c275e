package recycle

import (
	"math/rand"
	"time"

	"github.com/btnghn34-art/geri-d-n-m-oyunu/internal/config"
)

// Spawner decides when a new item appears and what it looks like.
type Spawner struct {
	rng     *rand.Rand
	ramp    *config.Ramp
	field   config.FieldConfig
	physics config.PhysicsConfig
}

// NewSpawner creates a spawner with its own seeded RNG.
func NewSpawner(cfg config.RecycleConfig, seed int64) *Spawner {
	return &Spawner{
		rng:     rand.New(rand.NewSource(seed)),
		ramp:    config.NewRamp(cfg),
		field:   cfg.Field,
		physics: cfg.Physics,
	}
}

// Interval returns the minimum gap between spawns at this point of the session.
func (s *Spawner) Interval(elapsed time.Duration) time.Duration {
	return s.ramp.SpawnInterval(elapsed)
}

// Level returns the ramp progress shown in the HUD.
func (s *Spawner) Level(elapsed time.Duration) float64 {
	return s.ramp.Level(elapsed)
}

// MaybeSpawn returns a new item when more than Interval(elapsed) has passed
// since lastSpawn. A zero lastSpawn means nothing spawned yet and always spawns.
func (s *Spawner) MaybeSpawn(now, lastSpawn time.Time, elapsed time.Duration, id ItemID) (Item, bool) {
	if !lastSpawn.IsZero() && now.Sub(lastSpawn) <= s.Interval(elapsed) {
		return Item{}, false
	}

	category := Categories[s.rng.Intn(len(Categories))]
	x := s.field.SpawnXMin + s.rng.Float64()*(s.field.SpawnXMax-s.field.SpawnXMin)
	speed := s.physics.BaseSpeed + s.rng.Float64()*s.physics.SpeedJitter + s.ramp.SpeedBonus(elapsed)

	it := NewItem(id, category, x, speed)
	it.Y = s.field.SpawnY
	return it, true
}
