package object

import (
	"math"
	"sync"

	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect. It never takes part in collisions.
type Particle struct {
	X, Y        float64 // Position
	VX, VY      float64 // Velocity
	Size        float64 // Dot radius
	Lifetime    int     // Frames remaining
	MaxLifetime int     // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity multiplier per frame (1.0 = no drag)

	dead bool
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, size float64, lifetime int) *Particle {
	p := particlePool.Get().(*Particle)
	*p = Particle{
		X:           x,
		Y:           y,
		VX:          vx,
		VY:          vy,
		Size:        size,
		Lifetime:    lifetime,
		MaxLifetime: lifetime,
		Drag:        0.95,
	}
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called only once the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnExplosion creates particles in a circular burst around (x, y).
func SpawnExplosion(env Env, x, y float64, count int) {
	cfg := env.Config.Particle
	if !cfg.Enabled || env.Create == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := env.Rand.Float64() * 2 * math.Pi
		speed := cfg.Speed * physics.RandomBetween(env.Rand, 0.5, 1.5)
		life := max(int(float64(cfg.Lifetime)*physics.RandomBetween(env.Rand, 0.5, 1)), 1)
		hx, hy := physics.Heading(angle)

		p := NewParticle(x, y, hx*speed, hy*speed, physics.RandomBetween(env.Rand, 1, 3), life)
		env.create(p, GroupParticles)
	}
}

// SpawnThrust emits a particle behind a thrusting ship facing angle.
func SpawnThrust(env Env, x, y, angle float64) {
	cfg := env.Config.Particle
	if !cfg.Enabled || env.Create == nil {
		return
	}

	thrustAngle := angle + math.Pi + physics.RandomBetween(env.Rand, -0.25, 0.25)
	hx, hy := physics.Heading(thrustAngle)
	speed := physics.RandomBetween(env.Rand, 1, 2)
	life := max(cfg.Lifetime/3, 1)

	p := NewParticle(x, y, hx*speed, hy*speed, 1, life)
	p.Drag = 0.85
	env.create(p, GroupParticles)
}

// Advance moves the particle and counts down its lifetime.
func (p *Particle) Advance(_ Input, _ Viewport) {
	p.X += p.VX
	p.Y += p.VY
	p.VX *= p.Drag
	p.VY *= p.Drag

	p.Lifetime--
	if p.Lifetime <= 0 {
		p.dead = true
	}
}

// Render draws the particle faded by its remaining lifetime.
func (p *Particle) Render(s draw.Surface) {
	alpha := 1.0
	if p.MaxLifetime > 0 {
		alpha = float64(p.Lifetime) / float64(p.MaxLifetime)
	}

	s.Save()
	s.SetGlobalAlpha(alpha)
	s.BeginPath()
	s.Arc(p.X, p.Y, p.Size, 0, 2*math.Pi)
	s.ClosePath()
	s.Fill()
	s.Restore()
}

// Destroy marks the particle for removal.
func (p *Particle) Destroy() {
	p.dead = true
}

// IsDead reports whether the particle has faded out.
func (p *Particle) IsDead() bool {
	return p.dead
}

// Position returns the particle's position.
func (p *Particle) Position() (float64, float64) {
	return p.X, p.Y
}

// Radius is zero: particles have no collision extent.
func (p *Particle) Radius() float64 {
	return 0
}
