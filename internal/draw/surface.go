package draw

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Surface is the 2D drawing context handed to entities. Its calls mirror a
// canvas 2D context: a transform stack, paths, and a clear/fill/stroke pass.
type Surface interface {
	Save()
	Restore()
	Scale(x, y float64)
	Translate(x, y float64)
	Rotate(angle float64)
	SetGlobalAlpha(alpha float64)

	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, startAngle, endAngle float64)
	ClosePath()
	Stroke()
	Fill()
}

// alphaCutoff is the global alpha below which a monochrome canvas skips drawing.
const alphaCutoff = 0.25

// arcSegmentsPerRadian controls arc tessellation.
const arcSegmentsPerRadian = 3

type surfaceState struct {
	transform mgl64.Mat3
	alpha     float64
}

func defaultSurfaceState() surfaceState {
	return surfaceState{transform: mgl64.Ident3(), alpha: 1}
}

type subpath struct {
	points []Point
	closed bool
}

var _ Surface = (*Canvas)(nil)

// Discard is a Surface that draws nothing.
var Discard Surface = discard{}

type discard struct{}

func (discard) Save()                        {}
func (discard) Restore()                     {}
func (discard) Scale(float64, float64)       {}
func (discard) Translate(float64, float64)   {}
func (discard) Rotate(float64)               {}
func (discard) SetGlobalAlpha(float64)       {}
func (discard) ClearRect(_, _, _, _ float64) {}
func (discard) FillRect(_, _, _, _ float64)  {}
func (discard) BeginPath()                   {}
func (discard) MoveTo(float64, float64)      {}
func (discard) LineTo(float64, float64)      {}
func (discard) Arc(_, _, _, _, _ float64)    {}
func (discard) ClosePath()                   {}
func (discard) Stroke()                      {}
func (discard) Fill()                        {}

// Save pushes the current transform and alpha.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the state pushed by the matching Save. Unbalanced calls reset
// to the identity state.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		c.state = defaultSurfaceState()
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Scale multiplies the current transform by a scale.
func (c *Canvas) Scale(x, y float64) {
	c.state.transform = c.state.transform.Mul3(mgl64.Scale2D(x, y))
}

// Translate multiplies the current transform by a translation.
func (c *Canvas) Translate(x, y float64) {
	c.state.transform = c.state.transform.Mul3(mgl64.Translate2D(x, y))
}

// Rotate multiplies the current transform by a rotation in radians.
func (c *Canvas) Rotate(angle float64) {
	c.state.transform = c.state.transform.Mul3(mgl64.HomogRotate2D(angle))
}

// SetGlobalAlpha sets the opacity for subsequent drawing.
func (c *Canvas) SetGlobalAlpha(alpha float64) {
	c.state.alpha = alpha
}

func (c *Canvas) visible() bool {
	return c.state.alpha >= alphaCutoff
}

// rectBounds returns the axis-aligned bounds of a transformed rectangle.
func (c *Canvas) rectBounds(x, y, w, h float64) (minX, minY, maxX, maxY float64) {
	corners := [4]Point{
		c.transformPoint(x, y),
		c.transformPoint(x+w, y),
		c.transformPoint(x+w, y+h),
		c.transformPoint(x, y+h),
	}
	minX, minY = corners[0].X, corners[0].Y
	maxX, maxY = minX, minY
	for _, p := range corners[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// ClearRect unsets all pixels covered by the rectangle.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	c.clearBox(c.rectBounds(x, y, w, h))
}

// FillRect sets all pixels covered by the rectangle.
func (c *Canvas) FillRect(x, y, w, h float64) {
	if !c.visible() {
		return
	}
	c.fillPolygon([]Point{
		c.transformPoint(x, y),
		c.transformPoint(x+w, y),
		c.transformPoint(x+w, y+h),
		c.transformPoint(x, y+h),
	})
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
}

// MoveTo starts a new subpath.
func (c *Canvas) MoveTo(x, y float64) {
	p := c.transformPoint(x, y)
	c.path = append(c.path, subpath{points: []Point{p}})
}

// LineTo adds a straight segment to the current subpath.
func (c *Canvas) LineTo(x, y float64) {
	p := c.transformPoint(x, y)
	if len(c.path) == 0 {
		c.path = append(c.path, subpath{})
	}
	last := &c.path[len(c.path)-1]
	last.points = append(last.points, p)
}

// Arc adds a circular arc centered at (x, y) to the current subpath.
func (c *Canvas) Arc(x, y, radius, startAngle, endAngle float64) {
	sweep := endAngle - startAngle
	segments := max(int(math.Ceil(math.Abs(sweep)*arcSegmentsPerRadian)), 4)
	for i := 0; i <= segments; i++ {
		a := startAngle + sweep*float64(i)/float64(segments)
		px := x + math.Cos(a)*radius
		py := y + math.Sin(a)*radius
		if i == 0 && len(c.path) == 0 {
			c.MoveTo(px, py)
			continue
		}
		c.LineTo(px, py)
	}
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	if len(c.path) == 0 {
		return
	}
	c.path[len(c.path)-1].closed = true
}

// Stroke draws the outline of every subpath.
func (c *Canvas) Stroke() {
	if !c.visible() {
		return
	}
	for _, sp := range c.path {
		pts := sp.points
		switch len(pts) {
		case 0:
			continue
		case 1:
			c.drawLine(pts[0], pts[0])
			continue
		}
		for i := 0; i+1 < len(pts); i++ {
			c.drawLine(pts[i], pts[i+1])
		}
		if sp.closed {
			c.drawLine(pts[len(pts)-1], pts[0])
		}
	}
}

// Fill fills every subpath with at least three points; smaller subpaths are
// drawn as dots or lines so tiny shapes stay visible.
func (c *Canvas) Fill() {
	if !c.visible() {
		return
	}
	for _, sp := range c.path {
		if len(sp.points) >= 3 {
			c.fillPolygon(sp.points)
		}
		for i, p := range sp.points {
			c.drawLine(p, sp.points[(i+1)%len(sp.points)])
		}
	}
}
