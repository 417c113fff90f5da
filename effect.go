package backdrop

import (
	"math"
	"math/rand/v2"
)

const (
	// DefaultMaxEffects caps the number of live effects.
	DefaultMaxEffects = 256
	// DefaultEffectDecay is the lifetime removed from each effect per tick.
	DefaultEffectDecay = 0.02

	// expiryEpsilon absorbs the float error of repeatedly subtracting a
	// decay step that is not exactly representable, so that 1/decay ticks
	// always expire an effect.
	expiryEpsilon = 1e-9
)

// DefaultEffectGrowth is the range the per-tick scale growth is drawn from.
var DefaultEffectGrowth = Range{Min: 0.1, Max: 0.2}

// Effect is one transient visual (an expanding ring). Lifetime starts at 1
// and only ever decreases; an effect at or below 0 is removed in the tick
// that expires it and is never drawn.
type Effect struct {
	Position Vec3
	Lifetime float64
	Decay    float64
	Growth   float64
	Scale    float64
	Opacity  float64
}

// Active reports whether the effect still has lifetime left.
func (e *Effect) Active() bool {
	return e.Lifetime > 0
}

// EffectConfig controls spawning and decay.
type EffectConfig struct {
	// MaxEffects is the pool size. Spawns are silently dropped when full.
	MaxEffects int `yaml:"max_effects" env:"MAX"`
	// Decay is the fixed lifetime decrement per tick.
	Decay float64 `yaml:"decay" env:"DECAY"`
	// Growth is the range of per-tick scale growth, drawn once per effect.
	Growth Range `yaml:"growth" envPrefix:"GROWTH_"`
}

// DefaultEffectConfig returns the observed splash constants.
func DefaultEffectConfig() EffectConfig {
	return EffectConfig{
		MaxEffects: DefaultMaxEffects,
		Decay:      DefaultEffectDecay,
		Growth:     DefaultEffectGrowth,
	}
}

// EffectPool holds live effects in a preallocated slice. Dead effects are
// swap-removed, so iteration order is not stable across ticks.
type EffectPool struct {
	config  EffectConfig
	effects []Effect
	alive   int
	rng     *rand.Rand
	dropped int
}

// NewEffectPool creates a pool with room for cfg.MaxEffects effects. rng
// supplies the growth rates; a nil rng uses a fixed seed.
func NewEffectPool(cfg EffectConfig, rng *rand.Rand) *EffectPool {
	if cfg.MaxEffects <= 0 {
		cfg.MaxEffects = DefaultMaxEffects
	}
	if cfg.Decay <= 0 {
		cfg.Decay = DefaultEffectDecay
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	return &EffectPool{
		config:  cfg,
		effects: make([]Effect, cfg.MaxEffects),
		rng:     rng,
	}
}

// Spawn adds a fresh effect at pos. It reports false, and changes nothing,
// when the pool is full.
func (p *EffectPool) Spawn(pos Vec3) bool {
	if p.alive >= len(p.effects) {
		p.dropped++
		return false
	}
	p.effects[p.alive] = Effect{
		Position: pos,
		Lifetime: 1,
		Decay:    p.config.Decay,
		Growth:   p.config.Growth.Random(p.rng),
		Scale:    1,
		Opacity:  1,
	}
	p.alive++
	return true
}

// Advance grows, fades and ages every live effect by one tick and removes
// the ones that expired.
func (p *EffectPool) Advance() {
	i := 0
	for i < p.alive {
		e := &p.effects[i]
		e.Lifetime -= e.Decay
		if e.Lifetime <= expiryEpsilon {
			// Swap with last alive effect.
			p.alive--
			p.effects[i] = p.effects[p.alive]
			p.effects[p.alive] = Effect{}
			continue
		}
		e.Scale += e.Growth
		e.Opacity = e.Lifetime
		i++
	}
}

// Len returns the number of live effects.
func (p *EffectPool) Len() int {
	return p.alive
}

// Dropped returns how many spawns were rejected because the pool was full.
func (p *EffectPool) Dropped() int {
	return p.dropped
}

// Effects returns the live effects. The returned slice MUST NOT be retained
// across ticks.
func (p *EffectPool) Effects() []Effect {
	return p.effects[:p.alive]
}

// Reset removes every effect.
func (p *EffectPool) Reset() {
	clear(p.effects[:p.alive])
	p.alive = 0
}

// Config returns a pointer to the pool's config for live tuning. Changes to
// MaxEffects take effect only on a new pool.
func (p *EffectPool) Config() *EffectConfig {
	return &p.config
}

// TicksToExpire returns how many Advance calls remove an effect spawned
// with the given decay step.
func TicksToExpire(decay float64) int {
	if decay <= 0 {
		return 0
	}
	return int(math.Ceil(1/decay - expiryEpsilon))
}
