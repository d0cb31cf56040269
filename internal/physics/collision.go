package physics

// Collider is anything that can take part in a group-vs-group sweep.
type Collider interface {
	Position() (x, y float64)
	Radius() float64
	Destroy()
	IsDead() bool
}

// gridThreshold is the pair count above which the sweep switches from the
// brute-force double loop to a spatial grid broad phase.
const gridThreshold = 256

// Detector sweeps two groups for overlapping members. The zero value is ready
// to use; it keeps scratch buffers between sweeps.
type Detector struct {
	grid  *SpatialGrid
	liveA []Collider
	liveB []Collider
}

// CheckGroupCollision destroys every pair (a, b) with a in as and b in bs whose
// circles overlap. Only members alive when the sweep starts take part; a
// member destroyed by an earlier pair in the same sweep is still tested
// against the rest so the outcome does not depend on pair order.
func CheckGroupCollision[A, B Collider](d *Detector, as []A, bs []B) {
	if d == nil {
		d = &Detector{}
	}
	d.liveA = d.liveA[:0]
	for _, a := range as {
		if !a.IsDead() {
			d.liveA = append(d.liveA, a)
		}
	}
	d.liveB = d.liveB[:0]
	for _, b := range bs {
		if !b.IsDead() {
			d.liveB = append(d.liveB, b)
		}
	}

	if len(d.liveA)*len(d.liveB) > gridThreshold {
		d.sweepGrid()
	} else {
		d.sweep()
	}

	clear(d.liveA)
	clear(d.liveB)
}

// Overlaps reports whether two colliders overlap.
func Overlaps(a, b Collider) bool {
	ax, ay := a.Position()
	bx, by := b.Position()
	return CirclesOverlap(ax, ay, a.Radius(), bx, by, b.Radius())
}

func (d *Detector) sweep() {
	for _, a := range d.liveA {
		for _, b := range d.liveB {
			if Overlaps(a, b) {
				a.Destroy()
				b.Destroy()
			}
		}
	}
}

// sweepGrid buckets group B into a grid sized for the largest possible
// overlap distance, then tests each member of A against its neighborhood.
func (d *Detector) sweepGrid() {
	var maxA, maxB, width, height float64
	for _, a := range d.liveA {
		maxA = max(maxA, a.Radius())
	}
	for _, b := range d.liveB {
		maxB = max(maxB, b.Radius())
		x, y := b.Position()
		width = max(width, x)
		height = max(height, y)
	}

	cellSize := maxA + maxB
	if d.grid == nil {
		d.grid = NewSpatialGrid(width+1, height+1, cellSize)
	} else {
		d.grid.Reset(width+1, height+1, cellSize)
	}
	for i, b := range d.liveB {
		x, y := b.Position()
		d.grid.Insert(x, y, i)
	}

	for _, a := range d.liveA {
		ax, ay := a.Position()
		d.grid.QueryAround(ax, ay, func(i int) bool {
			if b := d.liveB[i]; Overlaps(a, b) {
				a.Destroy()
				b.Destroy()
			}
			return false
		})
	}
}
