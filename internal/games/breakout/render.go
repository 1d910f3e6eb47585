package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar    = '='
	BallChar      = '●'
	BrickChar     = '█'
	BoundaryChar  = '┄'
	FrameVert     = '│'
	FrameHoriz    = '─'
	FrameCorner   = '┘'
	panelWidth    = 20
	sidePanelMinW = 60
)

// Minimum screen size the layout can work with.
const (
	MinScreenW = 30
	MinScreenH = 15
)

// Layout maps play-field units onto screen cells. The field is stretched to
// fill the area left of the right frame line and above the bottom one; the
// HUD goes to a side panel on wide screens and to the last row otherwise.
type Layout struct {
	FieldCols int
	FieldRows int
	Side      bool // HUD in a side panel
	PanelX    int
	HUDRow    int

	fieldW float64
	fieldH float64
}

// NewLayout computes the layout for a screen and a field size.
func NewLayout(screenW, screenH int, fieldW, fieldH float64) Layout {
	l := Layout{fieldW: fieldW, fieldH: fieldH}
	if screenW >= sidePanelMinW {
		l.Side = true
		l.FieldCols = screenW - panelWidth - 1
		l.FieldRows = screenH - 1
		l.PanelX = l.FieldCols + 2
	} else {
		l.FieldCols = screenW - 1
		l.FieldRows = screenH - 2
		l.HUDRow = screenH - 1
	}
	l.FieldCols = core.Max(l.FieldCols, 1)
	l.FieldRows = core.Max(l.FieldRows, 1)
	return l
}

// CellX converts a field x-coordinate to a column.
func (l Layout) CellX(x float64) int {
	c := int(math.Floor(x / l.fieldW * float64(l.FieldCols)))
	return core.Clamp(c, 0, l.FieldCols-1)
}

// CellY converts a field y-coordinate to a row.
func (l Layout) CellY(y float64) int {
	r := int(math.Floor(y / l.fieldH * float64(l.FieldRows)))
	return core.Clamp(r, 0, l.FieldRows-1)
}

// FieldX converts a column back to the field x-coordinate of its centre.
func (l Layout) FieldX(col int) float64 {
	col = core.Clamp(col, 0, l.FieldCols-1)
	return (float64(col) + 0.5) * l.fieldW / float64(l.FieldCols)
}

// cellSpan returns the columns covered by [left, right).
func (l Layout) cellSpan(left, right float64) (int, int) {
	c0 := l.CellX(left)
	c1 := l.CellX(math.Nextafter(right, left))
	return c0, c1
}

// rowSpan returns the rows covered by [top, bottom).
func (l Layout) rowSpan(top, bottom float64) (int, int) {
	r0 := l.CellY(top)
	r1 := l.CellY(math.Nextafter(bottom, top))
	return r0, r1
}

// DrawField renders the session into dst using the given layout.
func DrawField(dst *core.Screen, s *Session, l Layout) {
	f := s.Field()
	st := s.Counters()
	tint := Tint(st.TurnsLeft)

	// Frame
	dst.DrawVLine(l.FieldCols, 0, l.FieldRows, FrameVert)
	dst.DrawHLine(0, l.FieldRows, l.FieldCols, FrameHoriz)
	dst.Set(l.FieldCols, l.FieldRows, FrameCorner)

	// Boundary line
	by := l.CellY(f.BoundaryY)
	for x := range l.FieldCols {
		dst.SetColored(x, by, BoundaryChar, core.ColorGray)
	}

	for _, b := range f.Bricks {
		if !b.Alive {
			continue
		}
		c0, c1 := l.cellSpan(b.Rect.Left(), b.Rect.Right())
		r0, r1 := l.rowSpan(b.Rect.Top(), b.Rect.Bottom())
		for y := r0; y <= r1; y++ {
			for x := c0; x <= c1; x++ {
				dst.SetColored(x, y, BrickChar, b.Color())
			}
		}
	}

	c0, c1 := l.cellSpan(f.Paddle.Left(), f.Paddle.Right())
	py := l.CellY(f.Paddle.Top())
	for x := c0; x <= c1; x++ {
		dst.SetColored(x, py, PaddleChar, tint)
	}

	dst.SetColored(l.CellX(f.Ball.Center.X()), l.CellY(f.Ball.Center.Y()), BallChar, tint)
}

// DrawHUD renders the score and turn labels plus the state hint.
func DrawHUD(dst *core.Screen, s *Session, l Layout, title string) {
	st := s.Counters()
	score := fmt.Sprintf("SCORE: %d", st.Score)
	balls := fmt.Sprintf("Balls Left: %d", core.Max(st.TurnsLeft, 0))
	bricks := fmt.Sprintf("Bricks: %d", st.BricksRemaining)

	if l.Side {
		dst.DrawTextColored(l.PanelX, 0, title, core.ColorBrightWhite)
		dst.DrawText(l.PanelX, 2, score)
		dst.DrawText(l.PanelX, 3, balls)
		dst.DrawText(l.PanelX, 4, bricks)
		if st.State == StateServing {
			dst.DrawTextColored(l.PanelX, 6, "Click or SPACE", core.ColorGray)
			dst.DrawTextColored(l.PanelX, 7, "to serve", core.ColorGray)
		}
		return
	}

	dst.DrawText(0, l.HUDRow, score+"  "+balls)
	if st.State == StateServing {
		hint := "SPACE: serve"
		dst.DrawTextColored(dst.Width()-len(hint)-1, l.HUDRow, hint, core.ColorGray)
	}
}

// DrawBanner renders the end-of-game box.
func DrawBanner(dst *core.Screen, s *Session, l Layout) {
	st := s.Counters()
	var title string
	switch st.State {
	case StateWon:
		title = "LEVEL CLEARED!! BRAVO!!"
	case StateLost:
		title = "GAME OVER!!  YOU LOSE!!"
	default:
		return
	}
	subtitle := fmt.Sprintf("Score: %d  |  R to restart", st.Score)
	drawCenteredBox(dst, l.FieldCols, l.FieldRows, title, subtitle)
}

// drawCenteredBox draws a message box centred in the w×h area.
func drawCenteredBox(dst *core.Screen, w, h int, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := core.Max((w-boxW)/2, 0)
	boxY := core.Max((h-boxH)/2, 0)

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
