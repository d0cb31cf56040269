package loop

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/asteroids-arcade/internal/draw"
)

const controlsHelp = "A/D or ←/→ rotate · W or ↑ thrust · SPACE fire · Q quit"

// hud draws the text overlay on top of the rendered canvas.
type hud struct {
	label lipgloss.Style
	panel lipgloss.Style
	title lipgloss.Style
	faint lipgloss.Style
}

func newHUD(r *lipgloss.Renderer) *hud {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &hud{
		label: r.NewStyle().Bold(true),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			Align(lipgloss.Center),
		title: r.NewStyle().Bold(true),
		faint: r.NewStyle().Faint(true),
	}
}

// draw writes the overlay for the current phase. width and height are the
// canvas size in terminal cells.
func (h *hud) draw(cw *draw.ChunkWriter, snap Snapshot, best, width, height int) {
	switch snap.State {
	case StateNotStarted:
		h.drawPanel(cw, width, height,
			h.title.Render("A S T E R O I D S"),
			"",
			"Press ENTER or SPACE to start",
			h.faint.Render(controlsHelp),
			h.faint.Render(fmt.Sprintf("Best: %d", best)),
		)
	case StatePlaying:
		cw.WriteAt(2, 1, h.label.Render(fmt.Sprintf("Score: %d", snap.Score)))
		wave := h.label.Render(fmt.Sprintf("Wave: %d", snap.Wave))
		cw.WriteAt(max(width-lipgloss.Width(wave), 1), 1, wave)
	case StateGameOver:
		h.drawPanel(cw, width, height,
			h.title.Render("GAME OVER"),
			"",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Best: %d", max(best, snap.Score)),
			"",
			h.faint.Render("ENTER or SPACE to restart · Q to quit"),
		)
	}
}

// drawPanel renders lines inside a bordered box centered on the canvas.
func (h *hud) drawPanel(cw *draw.ChunkWriter, width, height int, lines ...string) {
	box := h.panel.Render(strings.Join(lines, "\n"))
	rows := strings.Split(box, "\n")

	top := max((height-len(rows))/2+1, 1)
	for i, row := range rows {
		col := max((width-lipgloss.Width(row))/2+1, 1)
		cw.WriteAt(col, top+i, row)
	}
}
