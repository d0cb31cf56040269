package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/object"
	"github.com/tomz197/asteroids-arcade/internal/physics"
	"github.com/tomz197/asteroids-arcade/internal/world"
)

// State is the controller's game phase.
type State int

const (
	StateNotStarted State = iota // Title screen, nothing simulated
	StatePlaying                 // Active gameplay
	StateGameOver                // Ship destroyed, waiting for restart
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only view of the controller for presentation layers.
type Snapshot struct {
	State     State
	Score     int
	Wave      int
	Ships     int
	Asteroids int
	Bullets   int
	Particles int
}

// Game drives one single-player session: it owns the registry, score,
// phase and wave counter, and advances everything one frame per Tick.
type Game struct {
	cfg        *config.Config
	rng        *rand.Rand
	logger     *log.Logger
	onGameOver func(score int)

	registry *world.Registry
	detector physics.Detector
	env      object.Env

	state     State
	score     int
	waveCount int
}

// Option configures a Game.
type Option func(*Game)

// WithRand sets the random source used for spawning. Tests pass a seeded one.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) { g.rng = rng }
}

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithGameOverHook registers fn to run with the final score on game over.
func WithGameOverHook(fn func(score int)) Option {
	return func(g *Game) { g.onGameOver = fn }
}

// New creates a game in the NotStarted state. A nil cfg uses the defaults.
func New(cfg *config.Config, opts ...Option) *Game {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	g := &Game{
		cfg:      cfg,
		registry: world.New(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.env = object.Env{Config: cfg, Rand: g.rng, Create: g.create}
	return g
}

// create is the factory callback handed to entities. Once the game is over
// only visual particles are accepted.
func (g *Game) create(e object.Entity, group object.Group) {
	if g.state != StatePlaying && group != object.GroupParticles {
		return
	}
	g.registry.Add(e, group)
}

// Start resets all state and begins a new game: one ship at the center and
// the initial asteroid wave placed outside the safe zone around it.
func (g *Game) Start(view object.Viewport) {
	g.registry.Clear()
	g.score = 0
	g.state = StatePlaying

	cx, cy := view.Center()
	g.registry.Add(object.NewShip(g.env, cx, cy, g.GameOver), object.GroupShip)

	g.waveCount = g.cfg.Game.InitialAsteroids
	g.spawnWave(view)

	g.logger.Info("game started", "asteroids", g.waveCount, "width", view.Width, "height", view.Height)
}

// spawnWave adds waveCount large asteroids away from the ship.
func (g *Game) spawnWave(view object.Viewport) {
	ship := g.registry.Ship()
	if ship == nil {
		panic("loop: spawning a wave with an empty ship group")
	}

	for i := 0; i < g.waveCount; i++ {
		x := g.spawnCoord(view.Width, ship.X)
		y := g.spawnCoord(view.Height, ship.Y)
		a := object.NewAsteroid(g.env, x, y, object.AsteroidLarge, g.AddScore)
		g.registry.Add(a, object.GroupAsteroids)
	}

	g.logger.Debug("wave spawned", "wave", g.waveCount)
}

// spawnCoord picks a coordinate in [0, limit) at least SafeZone away from
// center, falling back to an unconstrained one when that is not possible.
func (g *Game) spawnCoord(limit, center float64) float64 {
	zone := g.cfg.Game.SafeZone
	v, err := physics.RandomBetweenExcluding(g.rng, 0, limit, center-zone, center+zone, g.cfg.Game.SpawnAttempts)
	if err != nil {
		g.logger.Warn("spawn position fallback", "err", err, "limit", limit, "zone", zone)
		return physics.RandomBetween(g.rng, 0, limit)
	}
	return v
}

// Tick runs one frame: wave escalation, collisions, then cull/update/render
// of each group in draw order. After game over the field is frozen and only
// particles keep moving. A nil surface draws nothing.
func (g *Game) Tick(in object.Input, view object.Viewport, s draw.Surface) {
	if s == nil {
		s = draw.Discard
	}
	ratio := view.Ratio
	if ratio <= 0 {
		ratio = 1
	}

	s.Save()
	defer s.Restore()
	s.Scale(ratio, ratio)
	s.ClearRect(0, 0, view.Width, view.Height)

	if g.state == StatePlaying {
		if g.registry.Len(object.GroupAsteroids) == 0 {
			g.waveCount++
			g.spawnWave(view)
		}

		physics.CheckGroupCollision(&g.detector, g.registry.Group(object.GroupBullets), g.registry.Group(object.GroupAsteroids))
		physics.CheckGroupCollision(&g.detector, g.registry.Group(object.GroupShip), g.registry.Group(object.GroupAsteroids))
	}

	if g.state != StatePlaying {
		g.registry.CullAndUpdate(object.GroupParticles, in, view, s)
		g.registry.Render(object.GroupAsteroids, s)
		g.registry.Render(object.GroupBullets, s)
		return
	}

	g.registry.CullAndUpdate(object.GroupParticles, in, view, s)
	g.registry.CullAndUpdate(object.GroupAsteroids, in, view, s)
	g.registry.CullAndUpdate(object.GroupBullets, in, view, s)
	g.registry.CullAndUpdate(object.GroupShip, in, view, s)
}

// GameOver ends the current game. It only has effect while playing.
func (g *Game) GameOver() {
	if g.state != StatePlaying {
		return
	}
	g.state = StateGameOver
	g.logger.Info("game over", "score", g.score, "wave", g.waveCount)
	if g.onGameOver != nil {
		g.onGameOver(g.score)
	}
}

// AddScore adds points to the score while playing.
func (g *Game) AddScore(points int) {
	if g.state != StatePlaying || points <= 0 {
		return
	}
	g.score += points
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// State returns the current phase.
func (g *Game) State() State { return g.state }

// IsPlaying reports whether a game is in progress.
func (g *Game) IsPlaying() bool { return g.state == StatePlaying }

// WaveCount returns the size of the most recent asteroid wave.
func (g *Game) WaveCount() int { return g.waveCount }

// Registry exposes the entity groups. Callers must not mutate them outside Tick.
func (g *Game) Registry() *world.Registry { return g.registry }

// Config returns the configuration the game was built with.
func (g *Game) Config() *config.Config { return g.cfg }

// Env returns the entity environment bound to this game.
func (g *Game) Env() object.Env { return g.env }

// Snapshot returns the observable state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:     g.state,
		Score:     g.score,
		Wave:      g.waveCount,
		Ships:     g.registry.Len(object.GroupShip),
		Asteroids: g.registry.Len(object.GroupAsteroids),
		Bullets:   g.registry.Len(object.GroupBullets),
		Particles: g.registry.Len(object.GroupParticles),
	}
}
