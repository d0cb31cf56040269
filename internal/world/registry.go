// Package world holds the entity registry: one ordered collection per group.
package world

import (
	"fmt"

	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/object"
)

// Registry owns every live entity, split into the four object groups.
//
// Entities added to a group while that group is being iterated are queued
// and appended once the iteration finishes.
type Registry struct {
	groups    [object.GroupCount][]object.Entity
	pending   [object.GroupCount][]object.Entity
	iterating [object.GroupCount]bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Add appends e to group g. Adding a second ship panics.
func (r *Registry) Add(e object.Entity, g object.Group) {
	if g == object.GroupShip && len(r.groups[g])+len(r.pending[g]) > 0 {
		panic("world: ship group already has a member")
	}
	if r.iterating[g] {
		r.pending[g] = append(r.pending[g], e)
		return
	}
	r.groups[g] = append(r.groups[g], e)
}

// CullAndUpdate makes a single pass over group g: dead members are removed,
// the rest are advanced and then rendered. Survivors keep their relative order.
func (r *Registry) CullAndUpdate(g object.Group, in object.Input, view object.Viewport, s draw.Surface) {
	r.iterating[g] = true
	list := r.groups[g]
	kept := list[:0] // reuse backing array
	for _, e := range list {
		if e.IsDead() {
			object.ReleaseEntity(e)
			continue
		}
		e.Advance(in, view)
		if !e.IsDead() {
			e.Render(s)
		}
		kept = append(kept, e)
	}
	clear(list[len(kept):])
	r.groups[g] = kept
	r.iterating[g] = false
	r.flush(g)
}

// Render draws the live members of group g without advancing them.
func (r *Registry) Render(g object.Group, s draw.Surface) {
	for _, e := range r.groups[g] {
		if !e.IsDead() {
			e.Render(s)
		}
	}
}

func (r *Registry) flush(g object.Group) {
	if len(r.pending[g]) == 0 {
		return
	}
	r.groups[g] = append(r.groups[g], r.pending[g]...)
	clear(r.pending[g])
	r.pending[g] = r.pending[g][:0]
}

// Group returns the members of group g. The slice must not be modified.
func (r *Registry) Group(g object.Group) []object.Entity {
	return r.groups[g]
}

// Len returns the number of members in group g, dead or alive.
func (r *Registry) Len(g object.Group) int {
	return len(r.groups[g])
}

// Clear empties every group, returning pooled entities.
func (r *Registry) Clear() {
	for g := range r.groups {
		for _, e := range r.groups[g] {
			object.ReleaseEntity(e)
		}
		clear(r.groups[g])
		r.groups[g] = r.groups[g][:0]
		clear(r.pending[g])
		r.pending[g] = r.pending[g][:0]
	}
}

// Ship returns the ship, or nil if the ship group is empty.
func (r *Registry) Ship() *object.Ship {
	ships := r.groups[object.GroupShip]
	if len(ships) == 0 {
		return nil
	}
	ship, ok := ships[0].(*object.Ship)
	if !ok {
		panic(fmt.Sprintf("world: ship group holds %T", ships[0]))
	}
	return ship
}
