package object

import (
	"math"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Bullet is a projectile fired by the ship. It does not wrap; it expires
// when its lifetime runs out or it leaves the viewport.
type Bullet struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity
	TTL    int     // Frames remaining

	radius float64
	dead   bool
}

// NewBullet creates a bullet at (x, y) traveling along angle. The bullet
// inherits the shooter's velocity plus its own speed.
func NewBullet(cfg config.BulletConfig, x, y, angle, shooterVX, shooterVY float64) *Bullet {
	hx, hy := physics.Heading(angle)
	return &Bullet{
		X:      x,
		Y:      y,
		VX:     shooterVX + hx*cfg.Speed,
		VY:     shooterVY + hy*cfg.Speed,
		TTL:    cfg.Lifetime,
		radius: cfg.Radius,
	}
}

// Advance moves the bullet and checks expiry.
func (b *Bullet) Advance(_ Input, view Viewport) {
	b.X += b.VX
	b.Y += b.VY
	b.TTL--
	if b.TTL <= 0 || !view.Contains(b.X, b.Y) {
		b.dead = true
	}
}

// Render draws the bullet as a filled dot.
func (b *Bullet) Render(s draw.Surface) {
	s.BeginPath()
	s.Arc(b.X, b.Y, b.radius, 0, 2*math.Pi)
	s.ClosePath()
	s.Fill()
}

// Destroy marks the bullet for removal.
func (b *Bullet) Destroy() {
	b.dead = true
}

// IsDead reports whether the bullet expired or hit something.
func (b *Bullet) IsDead() bool {
	return b.dead
}

// Position returns the bullet's center.
func (b *Bullet) Position() (float64, float64) {
	return b.X, b.Y
}

// Radius returns the bullet's collision radius.
func (b *Bullet) Radius() float64 {
	return b.radius
}
