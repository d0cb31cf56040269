// Package object implements the game entities: ship, asteroids, bullets and particles.
package object

import (
	"math/rand"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/physics"
)

// Input is an alias for the input package's State type.
type Input = input.State

// Group identifies one of the registry's entity collections.
type Group int

const (
	GroupShip Group = iota
	GroupAsteroids
	GroupBullets
	GroupParticles
)

// GroupCount is the number of entity groups.
const GroupCount = 4

func (g Group) String() string {
	switch g {
	case GroupShip:
		return "ship"
	case GroupAsteroids:
		return "asteroids"
	case GroupBullets:
		return "bullets"
	case GroupParticles:
		return "particles"
	default:
		return "unknown"
	}
}

// Viewport is the visible world area for one frame.
type Viewport struct {
	Width  float64
	Height float64
	Ratio  float64 // Pixel density applied by the renderer
}

// Center returns the middle of the viewport.
func (v Viewport) Center() (float64, float64) {
	return v.Width / 2, v.Height / 2
}

// Contains reports whether (x, y) lies inside the viewport.
func (v Viewport) Contains(x, y float64) bool {
	return x >= 0 && x < v.Width && y >= 0 && y < v.Height
}

// Wrap wraps x and y around the viewport edges (Asteroids-style).
func (v Viewport) Wrap(x, y *float64) {
	physics.WrapPosition(x, y, v.Width, v.Height)
}

// CreateFunc adds a newly created entity to a group.
type CreateFunc func(e Entity, group Group)

// Env carries the collaborators entities are bound to at construction.
type Env struct {
	Config *config.Config
	Rand   *rand.Rand
	Create CreateFunc
}

func (e Env) create(ent Entity, group Group) {
	if e.Create != nil {
		e.Create(ent, group)
	}
}

// Entity is a drawable and updatable game object owned by exactly one group.
type Entity interface {
	// Advance moves the entity by one frame.
	Advance(in Input, view Viewport)

	// Render draws the entity. It must not change entity state.
	Render(s draw.Surface)

	// Destroy marks the entity dead and runs its one-shot effects.
	// Calling it again has no effect.
	Destroy()

	IsDead() bool
	Position() (x, y float64)
	Radius() float64
}

// Releasable is implemented by pooled entities that can be returned to a pool.
type Releasable interface {
	// Release returns the entity to its pool for reuse.
	Release()
}

// ReleaseEntity releases an entity back to its pool if it implements Releasable.
func ReleaseEntity(e Entity) {
	if r, ok := e.(Releasable); ok {
		r.Release()
	}
}
