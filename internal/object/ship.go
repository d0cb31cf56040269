package object

import (
	"math"

	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Ship is the player-controlled spaceship.
type Ship struct {
	X, Y   float64 // Position (center of ship)
	VX, VY float64 // Velocity (momentum)
	Angle  float64 // Heading in radians (0 = right, -π/2 = up)

	env       Env
	onDie     func()
	cooldown  int  // Frames until the next shot is allowed
	prevFire  bool // Fire state on the previous frame, for edge detection
	thrusting bool
	dead      bool
}

// NewShip creates a ship at (x, y) pointing up. onDie runs once when the ship
// is destroyed.
func NewShip(env Env, x, y float64, onDie func()) *Ship {
	return &Ship{
		X:     x,
		Y:     y,
		Angle: -math.Pi / 2,
		env:   env,
		onDie: onDie,
	}
}

// Advance handles rotation, thrust, inertia, wrapping and shooting.
func (s *Ship) Advance(in Input, view Viewport) {
	cfg := s.env.Config.Ship

	rot := cfg.RotationSpeed * math.Pi / 180
	if in.Left {
		s.Angle -= rot
	}
	if in.Right {
		s.Angle += rot
	}
	s.Angle = math.Remainder(s.Angle, 2*math.Pi)

	s.thrusting = in.Up
	if in.Up {
		hx, hy := physics.Heading(s.Angle)
		s.VX += hx * cfg.Thrust
		s.VY += hy * cfg.Thrust
		SpawnThrust(s.env, s.X-hx*s.Radius(), s.Y-hy*s.Radius(), s.Angle)
	}

	s.VX *= cfg.Inertia
	s.VY *= cfg.Inertia

	if speed := math.Hypot(s.VX, s.VY); cfg.MaxSpeed > 0 && speed > cfg.MaxSpeed {
		k := cfg.MaxSpeed / speed
		s.VX *= k
		s.VY *= k
	}

	s.X += s.VX
	s.Y += s.VY
	view.Wrap(&s.X, &s.Y)

	if s.cooldown > 0 {
		s.cooldown--
	}
	if in.Fire && !s.prevFire && s.cooldown == 0 {
		s.fire()
	}
	s.prevFire = in.Fire
}

// fire spawns a bullet at the nose, inheriting the ship's velocity.
func (s *Ship) fire() {
	s.cooldown = s.env.Config.Ship.FireCooldown
	hx, hy := physics.Heading(s.Angle)
	b := NewBullet(s.env.Config.Bullet, s.X+hx*s.Radius(), s.Y+hy*s.Radius(), s.Angle, s.VX, s.VY)
	s.env.create(b, GroupBullets)
}

// Render draws the ship outline pointing along its heading.
func (s *Ship) Render(sf draw.Surface) {
	k := s.Radius() / 20

	sf.Save()
	sf.Translate(s.X, s.Y)
	sf.Rotate(s.Angle + math.Pi/2)
	sf.BeginPath()
	sf.MoveTo(0, -15*k)
	sf.LineTo(10*k, 10*k)
	sf.LineTo(5*k, 7*k)
	sf.LineTo(-5*k, 7*k)
	sf.LineTo(-10*k, 10*k)
	sf.ClosePath()
	sf.Stroke()
	sf.Restore()
}

// Destroy kills the ship, bursts it into particles and reports the death once.
func (s *Ship) Destroy() {
	if s.dead {
		return
	}
	s.dead = true
	SpawnExplosion(s.env, s.X, s.Y, s.env.Config.Particle.ExplosionCount*2)
	if s.onDie != nil {
		s.onDie()
	}
}

// IsDead reports whether the ship was destroyed.
func (s *Ship) IsDead() bool {
	return s.dead
}

// Position returns the ship's center.
func (s *Ship) Position() (float64, float64) {
	return s.X, s.Y
}

// Radius returns the ship's collision radius.
func (s *Ship) Radius() float64 {
	return s.env.Config.Ship.Radius
}

// Thrusting reports whether thrust was applied on the last frame.
func (s *Ship) Thrusting() bool {
	return s.thrusting
}

// Cooldown returns the frames left before the ship can fire again.
func (s *Ship) Cooldown() int {
	return s.cooldown
}
