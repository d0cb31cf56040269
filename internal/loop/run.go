// Package loop contains the game controller and the terminal host that
// drives it one frame at a time.
package loop

import (
	"bufio"
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tomz197/asteroids-arcade/internal/config"
	"github.com/tomz197/asteroids-arcade/internal/draw"
	"github.com/tomz197/asteroids-arcade/internal/input"
	"github.com/tomz197/asteroids-arcade/internal/object"
)

// restartDelay ignores start keys right after a game ends, so a held fire
// key does not skip the game over screen.
const restartDelay = 750 * time.Millisecond

// Options configures Run.
type Options struct {
	Config   *config.Config
	Logger   *log.Logger
	Seed     int64             // Random seed; 0 picks one from the clock
	TermSize draw.TermSizeFunc // Defaults to the size of os.Stdout
	Renderer *lipgloss.Renderer

	// OnGameOver is called with the final score and wave of every game.
	OnGameOver func(score, wave int)
	// BestScore seeds the best score shown on the title and game over screens.
	BestScore func() int
}

// Run plays games on the terminal behind r and w until the player quits, the
// input ends, or ctx is cancelled. Each iteration reads input, ticks the game,
// and draws the frame, sleeping the rest of the frame time.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	frameTime := time.Second / time.Duration(max(cfg.Game.FPS, 1))

	best := 0
	if opts.BestScore != nil {
		best = opts.BestScore()
	}

	var game *Game
	var endedAt time.Time
	game = New(cfg,
		WithRand(rand.New(rand.NewSource(seed))),
		WithLogger(logger),
		WithGameOverHook(func(score int) {
			endedAt = time.Now()
			best = max(best, score)
			if opts.OnGameOver != nil {
				opts.OnGameOver(score, game.WaveCount())
			}
		}),
	)

	stream := input.StartStream(r)
	cw := draw.NewChunkWriter(w, 0, 0)
	overlay := newHUD(opts.Renderer)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	defer draw.ClearScreen(w)

	canvas := draw.NewCanvas(1, 1)
	var screen screenLayout
	termCols, termRows := 80, 24
	prevStart := false

	for {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		keys := stream.ReadInput(frameStart)
		if keys.Quit {
			logger.Debug("quit requested", "closed", stream.Closed())
			return nil
		}
		start := keys.Restart || keys.Fire
		startPressed := start && !prevStart
		prevStart = start

		// ===== SCREEN PHASE =====
		if cols, rows, err := termSize(); err == nil {
			termCols, termRows = cols, rows
		}
		if next := layoutFor(termCols, termRows, cfg.Display); next != screen {
			screen = next
			canvas.Resize(screen.cols, screen.rows, screen.view.Width, screen.view.Height)
			canvas.SetOffset(screen.offCol, screen.offRow)
			cw.SetOffset(screen.offCol, screen.offRow)
		}

		// ===== UPDATE PHASE =====
		if !game.IsPlaying() && startPressed && time.Since(endedAt) >= restartDelay {
			stream.Reset()
			game.Start(screen.view)
			keys.State = input.State{}
		}
		game.Tick(keys.State, screen.view, canvas)

		// ===== DRAW PHASE =====
		draw.ClearScreen(cw)
		canvas.Render(cw)
		canvas.RenderBorder(cw)
		overlay.draw(cw, game.Snapshot(), best, screen.cols, screen.rows)
		if err := cw.Flush(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < frameTime {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(frameTime - elapsed):
			}
		} else if ctx.Err() != nil {
			return nil
		}
	}
}

// screenLayout is the canvas placement and world size for a terminal size.
type screenLayout struct {
	cols, rows     int
	offCol, offRow int
	view           object.Viewport
}

// layoutFor fits the canvas into a cols x rows terminal, centering it when the
// terminal exceeds the configured maximum. One terminal cell covers
// UnitsPerColumn world units horizontally and two half-block pixels vertically.
func layoutFor(cols, rows int, d config.DisplayConfig) screenLayout {
	cols, rows = max(cols, 1), max(rows, 1)
	l := screenLayout{cols: cols, rows: rows}
	if d.MaxColumns > 0 && cols > d.MaxColumns {
		l.cols = d.MaxColumns
		l.offCol = (cols - d.MaxColumns) / 2
	}
	if d.MaxRows > 0 && rows > d.MaxRows {
		l.rows = d.MaxRows
		l.offRow = (rows - d.MaxRows) / 2
	}
	l.view = object.Viewport{
		Width:  float64(l.cols) * d.UnitsPerColumn,
		Height: float64(l.rows*2) * d.UnitsPerColumn,
		Ratio:  1,
	}
	return l
}
