package object

import (
	"math"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// AsteroidSize represents the size tier of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall  AsteroidSize = 1
	AsteroidMedium AsteroidSize = 2
	AsteroidLarge  AsteroidSize = 3
)

func (s AsteroidSize) String() string {
	switch s {
	case AsteroidSmall:
		return "small"
	case AsteroidMedium:
		return "medium"
	case AsteroidLarge:
		return "large"
	default:
		return "unknown"
	}
}

// fragmentCount is how many smaller asteroids a destroyed asteroid splits into.
const fragmentCount = 2

// AsteroidRadius returns the collision radius for a size tier.
func AsteroidRadius(cfg config.AsteroidConfig, size AsteroidSize) float64 {
	switch size {
	case AsteroidLarge:
		return cfg.RadiusLarge
	case AsteroidMedium:
		return cfg.RadiusMedium
	default:
		return cfg.RadiusSmall
	}
}

// AsteroidPoints returns the score awarded for destroying a size tier.
func AsteroidPoints(cfg config.ScoringConfig, size AsteroidSize) int {
	switch size {
	case AsteroidLarge:
		return cfg.Large
	case AsteroidMedium:
		return cfg.Medium
	default:
		return cfg.Small
	}
}

// Asteroid is a destructible space rock.
type Asteroid struct {
	X, Y     float64      // Position (center)
	VX, VY   float64      // Drift per frame
	Angle    float64      // Current rotation angle
	Spin     float64      // Rotation per frame in radians
	Size     AsteroidSize // Size tier
	Vertices []float64    // Vertex distances from center (for irregular shape)

	env      Env
	radius   float64
	addScore func(points int)
	dead     bool
}

// NewAsteroid creates an asteroid at (x, y) with a random drift and spin.
// addScore receives the asteroid's points when it is destroyed.
func NewAsteroid(env Env, x, y float64, size AsteroidSize, addScore func(points int)) *Asteroid {
	cfg := env.Config.Asteroid
	rng := env.Rand
	radius := AsteroidRadius(cfg, size)
	spin := cfg.RotationSpeed * math.Pi / 180

	numVerts := 8 + rng.Intn(5)
	vertices := make([]float64, numVerts)
	for i := range vertices {
		vertices[i] = radius * physics.RandomBetween(rng, 0.75, 1)
	}

	return &Asteroid{
		X:        x,
		Y:        y,
		VX:       physics.RandomBetween(rng, -cfg.Speed, cfg.Speed),
		VY:       physics.RandomBetween(rng, -cfg.Speed, cfg.Speed),
		Angle:    rng.Float64() * 2 * math.Pi,
		Spin:     physics.RandomBetween(rng, -spin, spin),
		Size:     size,
		Vertices: vertices,
		env:      env,
		radius:   radius,
		addScore: addScore,
	}
}

// Advance drifts and spins the asteroid, wrapping at the viewport edges.
func (a *Asteroid) Advance(_ Input, view Viewport) {
	a.Angle += a.Spin
	a.X += a.VX
	a.Y += a.VY
	view.Wrap(&a.X, &a.Y)
}

// Render draws the asteroid as an irregular polygon.
func (a *Asteroid) Render(s draw.Surface) {
	n := len(a.Vertices)

	s.Save()
	s.Translate(a.X, a.Y)
	s.Rotate(a.Angle)
	s.BeginPath()
	for i, dist := range a.Vertices {
		angle := float64(i) * 2 * math.Pi / float64(n)
		x, y := math.Cos(angle)*dist, math.Sin(angle)*dist
		if i == 0 {
			s.MoveTo(x, y)
		} else {
			s.LineTo(x, y)
		}
	}
	s.ClosePath()
	s.Stroke()
	s.Restore()
}

// Destroy awards points, bursts into particles and splits into two smaller
// asteroids unless already the smallest tier. Only the first call has effect.
func (a *Asteroid) Destroy() {
	if a.dead {
		return
	}
	a.dead = true

	if a.addScore != nil {
		a.addScore(AsteroidPoints(a.env.Config.Scoring, a.Size))
	}

	count := max(a.env.Config.Particle.ExplosionCount*int(a.Size)/int(AsteroidLarge), 1)
	SpawnExplosion(a.env, a.X, a.Y, count)

	if a.Size > AsteroidSmall {
		for i := 0; i < fragmentCount; i++ {
			a.env.create(NewAsteroid(a.env, a.X, a.Y, a.Size-1, a.addScore), GroupAsteroids)
		}
	}
}

// IsDead reports whether the asteroid was destroyed.
func (a *Asteroid) IsDead() bool {
	return a.dead
}

// Position returns the asteroid's center.
func (a *Asteroid) Position() (float64, float64) {
	return a.X, a.Y
}

// Radius returns the asteroid's collision radius.
func (a *Asteroid) Radius() float64 {
	return a.radius
}
