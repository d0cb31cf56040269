package object

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/draw"
)

// recorder collects entities created through an Env.
type recorder struct {
	groups map[Group][]Entity
}

func (r *recorder) add(e Entity, g Group) {
	r.groups[g] = append(r.groups[g], e)
}

func newTestEnv(t *testing.T) (Env, *recorder) {
	t.Helper()
	cfg := config.Default()
	rec := &recorder{groups: make(map[Group][]Entity)}
	return Env{Config: &cfg, Rand: rand.New(rand.NewSource(42)), Create: rec.add}, rec
}

var testView = Viewport{Width: 800, Height: 600, Ratio: 1}

func TestAsteroidDestroyIsIdempotent(t *testing.T) {
	env, rec := newTestEnv(t)
	calls, total := 0, 0
	a := NewAsteroid(env, 100, 100, AsteroidLarge, func(p int) {
		calls++
		total += p
	})

	for i := 0; i < 3; i++ {
		a.Destroy()
	}

	if !a.IsDead() {
		t.Error("asteroid should be dead")
	}
	if calls != 1 {
		t.Errorf("score callback called %d times, want 1", calls)
	}
	if total != env.Config.Scoring.Large {
		t.Errorf("awarded %d points, want %d", total, env.Config.Scoring.Large)
	}
	if got := len(rec.groups[GroupAsteroids]); got != 2 {
		t.Errorf("spawned %d fragments, want 2", got)
	}
}

func TestAsteroidSplit(t *testing.T) {
	tests := []struct {
		size      AsteroidSize
		fragments int
		childSize AsteroidSize
	}{
		{AsteroidLarge, 2, AsteroidMedium},
		{AsteroidMedium, 2, AsteroidSmall},
		{AsteroidSmall, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.size.String(), func(t *testing.T) {
			env, rec := newTestEnv(t)
			a := NewAsteroid(env, 250, 150, tt.size, nil)
			a.Destroy()

			children := rec.groups[GroupAsteroids]
			if len(children) != tt.fragments {
				t.Fatalf("got %d fragments, want %d", len(children), tt.fragments)
			}
			for _, c := range children {
				child := c.(*Asteroid)
				if child.Size != tt.childSize {
					t.Errorf("fragment size = %v, want %v", child.Size, tt.childSize)
				}
				if child.X != 250 || child.Y != 150 {
					t.Errorf("fragment at (%v,%v), want (250,150)", child.X, child.Y)
				}
				if child.IsDead() {
					t.Error("fragment should be alive")
				}
			}
			for _, p := range rec.groups[GroupParticles] {
				if p.Radius() != 0 {
					t.Error("explosion particles must not have a collision radius")
				}
			}
		})
	}
}

func TestAsteroidPointsDecreaseWithSize(t *testing.T) {
	cfg := config.Default()
	large := AsteroidPoints(cfg.Scoring, AsteroidLarge)
	medium := AsteroidPoints(cfg.Scoring, AsteroidMedium)
	small := AsteroidPoints(cfg.Scoring, AsteroidSmall)

	if !(large > medium && medium > small && small > 0) {
		t.Errorf("points not strictly decreasing: large=%d medium=%d small=%d", large, medium, small)
	}
	if !(AsteroidRadius(cfg.Asteroid, AsteroidLarge) > AsteroidRadius(cfg.Asteroid, AsteroidMedium)) {
		t.Error("large asteroids should be bigger than medium")
	}
}

func TestWrap(t *testing.T) {
	env, _ := newTestEnv(t)
	const eps = 0.5

	ship := NewShip(env, testView.Width+eps, 300, nil)
	ship.Advance(Input{}, testView)
	if ship.X < 0 || ship.X >= testView.Width {
		t.Errorf("ship x = %v, want within [0, %v)", ship.X, testView.Width)
	}

	a := NewAsteroid(env, testView.Width+eps, 300, AsteroidSmall, nil)
	a.VX, a.VY = 0, 0
	a.Advance(Input{}, testView)
	if math.Abs(a.X-eps) > 1e-9 {
		t.Errorf("asteroid x = %v, want %v", a.X, eps)
	}

	a.X, a.Y = -eps, -eps
	a.Advance(Input{}, testView)
	if a.X < 0 || a.X >= testView.Width || a.Y < 0 || a.Y >= testView.Height {
		t.Errorf("asteroid at (%v,%v) not wrapped into the viewport", a.X, a.Y)
	}
}

func TestShipDestroyCallsOnDieOnce(t *testing.T) {
	env, rec := newTestEnv(t)
	deaths := 0
	ship := NewShip(env, 400, 300, func() { deaths++ })

	ship.Destroy()
	ship.Destroy()

	if !ship.IsDead() {
		t.Error("ship should be dead")
	}
	if deaths != 1 {
		t.Errorf("onDie called %d times, want 1", deaths)
	}
	if len(rec.groups[GroupParticles]) == 0 {
		t.Error("ship death should emit particles")
	}
}

func TestShipFiresOnRisingEdge(t *testing.T) {
	env, rec := newTestEnv(t)
	ship := NewShip(env, 400, 300, nil)
	fire := Input{Fire: true}
	bullets := func() int { return len(rec.groups[GroupBullets]) }

	ship.Advance(fire, testView)
	if bullets() != 1 {
		t.Fatalf("bullets = %d after first press, want 1", bullets())
	}

	// Holding fire does not auto-repeat.
	for i := 0; i < env.Config.Ship.FireCooldown*2; i++ {
		ship.Advance(fire, testView)
	}
	if bullets() != 1 {
		t.Errorf("bullets = %d while holding fire, want 1", bullets())
	}

	// Release and press again after the cooldown elapsed.
	ship.Advance(Input{}, testView)
	ship.Advance(fire, testView)
	if bullets() != 2 {
		t.Errorf("bullets = %d after second press, want 2", bullets())
	}

	// A press inside the cooldown is ignored.
	ship.Advance(Input{}, testView)
	ship.Advance(fire, testView)
	if bullets() != 2 {
		t.Errorf("bullets = %d after press during cooldown, want 2", bullets())
	}
}

func TestShipBulletLeavesNose(t *testing.T) {
	env, rec := newTestEnv(t)
	ship := NewShip(env, 400, 300, nil)
	ship.Advance(Input{Fire: true}, testView)

	b := rec.groups[GroupBullets][0].(*Bullet)
	if math.Abs(b.X-400) > 1e-9 || b.Y >= 300 {
		t.Errorf("bullet at (%v,%v), want above the ship", b.X, b.Y)
	}
	if b.VY >= 0 {
		t.Errorf("bullet VY = %v, want negative (moving up)", b.VY)
	}
}

func TestShipRotateAndThrust(t *testing.T) {
	env, _ := newTestEnv(t)
	ship := NewShip(env, 400, 300, nil)
	start := ship.Angle

	ship.Advance(Input{Right: true}, testView)
	want := start + env.Config.Ship.RotationSpeed*math.Pi/180
	if math.Abs(ship.Angle-want) > 1e-9 {
		t.Errorf("angle = %v, want %v", ship.Angle, want)
	}

	ship.Advance(Input{Left: true}, testView)
	if math.Abs(ship.Angle-start) > 1e-9 {
		t.Errorf("angle = %v, want %v", ship.Angle, start)
	}

	for i := 0; i < 10; i++ {
		ship.Advance(Input{Up: true}, testView)
	}
	if !ship.Thrusting() {
		t.Error("ship should report thrust")
	}
	if ship.VY >= 0 {
		t.Errorf("VY = %v, want negative after thrusting up", ship.VY)
	}
	if speed := math.Hypot(ship.VX, ship.VY); speed > env.Config.Ship.MaxSpeed+1e-9 {
		t.Errorf("speed %v exceeds max %v", speed, env.Config.Ship.MaxSpeed)
	}
}

func TestBulletExpiry(t *testing.T) {
	cfg := config.Default()

	b := NewBullet(cfg.Bullet, 400, 300, 0, 0, 0)
	b.VX, b.VY = 0, 0
	for i := 0; i < cfg.Bullet.Lifetime-1; i++ {
		b.Advance(Input{}, testView)
	}
	if b.IsDead() {
		t.Fatal("bullet died before its lifetime ran out")
	}
	b.Advance(Input{}, testView)
	if !b.IsDead() {
		t.Error("bullet should expire at zero TTL")
	}

	edge := NewBullet(cfg.Bullet, testView.Width-1, 300, 0, 0, 0)
	edge.Advance(Input{}, testView)
	if !edge.IsDead() {
		t.Error("bullet leaving the viewport should die instead of wrapping")
	}
}

func TestParticleLifetime(t *testing.T) {
	p := NewParticle(10, 10, 1, 0, 1, 3)
	defer p.Release()

	for i := 0; i < 2; i++ {
		p.Advance(Input{}, testView)
	}
	if p.IsDead() {
		t.Fatal("particle died early")
	}
	p.Advance(Input{}, testView)
	if !p.IsDead() {
		t.Error("particle should die after its lifetime")
	}
	if p.X <= 10 {
		t.Error("particle should have moved")
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	env, _ := newTestEnv(t)
	canvas := draw.NewScaledCanvas(100, 40, testView.Width, testView.Height)

	ship := NewShip(env, 400, 300, nil)
	a := NewAsteroid(env, 200, 200, AsteroidLarge, nil)
	shipBefore, astBefore := *ship, *a

	ship.Render(canvas)
	a.Render(canvas)

	if ship.X != shipBefore.X || ship.Angle != shipBefore.Angle || ship.Cooldown() != shipBefore.Cooldown() {
		t.Error("ship render changed state")
	}
	if a.X != astBefore.X || a.Angle != astBefore.Angle || a.IsDead() {
		t.Error("asteroid render changed state")
	}
	if canvas.PixelCount() == 0 {
		t.Error("render drew nothing")
	}
}

func TestGroupString(t *testing.T) {
	want := []string{"ship", "asteroids", "bullets", "particles"}
	for g := Group(0); g < GroupCount; g++ {
		if g.String() != want[g] {
			t.Errorf("Group(%d).String() = %q, want %q", g, g.String(), want[g])
		}
	}
}
