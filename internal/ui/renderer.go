package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/shardbreak/shardbreak/internal/game"
)

const (
	BallChar   = '\u2b24' // ⬤
	PaddleChar = '\u2588' // █
	EdgeChar   = '\u00b7' // ·
)

// Renderer maps world coordinates onto terminal cells and draws one
// frame from a snapshot.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderGame draws the whole playfield: obstacles, ball, paddle and
// the status bar.
func (r *Renderer) RenderGame(snap game.Snapshot, cleared bool) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	// World coordinates scale down to whatever terminal we got; the
	// bottom row is reserved for the status bar.
	scaleX := float64(screenW) / snap.Width
	scaleY := float64(screenH-1) / snap.Height

	for _, o := range snap.Obstacles {
		switch o.Kind {
		case game.KindBrick:
			r.drawBrick(o, scaleX, scaleY)
		case game.KindShard:
			r.drawShard(o, scaleX, scaleY)
		}
	}

	// Paddle as a filled bar.
	px := int(snap.Paddle.Min.X * scaleX)
	pw := int((snap.Paddle.Max.X-snap.Paddle.Min.X)*scaleX + 0.5)
	if pw < 1 {
		pw = 1
	}
	py := int(snap.Paddle.Min.Y * scaleY)
	paddleStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for dx := 0; dx < pw; dx++ {
		r.screen.SetCell(px+dx, py, paddleStyle, PaddleChar)
	}

	// Ball.
	bx := int(snap.Ball.Pos.X * scaleX)
	by := int(snap.Ball.Pos.Y * scaleY)
	if bx >= 0 && bx < screenW && by >= 0 && by < screenH-1 {
		r.screen.SetCell(bx, by, tcell.StyleDefault.Foreground(tcell.ColorWhite), BallChar)
	}

	r.renderStatusBar(snap, cleared, screenW, screenH)
	r.screen.Show()
}

// drawBrick fills the brick's bounding box and centers its hit-point
// count on it.
func (r *Renderer) drawBrick(o game.ObstacleState, scaleX, scaleY float64) {
	minX, minY := o.Verts[0].X, o.Verts[0].Y
	maxX, maxY := minX, minY
	for _, v := range o.Verts[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}

	x := int(minX * scaleX)
	y := int(minY * scaleY)
	w := int((maxX-minX)*scaleX + 0.5)
	h := int((maxY-minY)*scaleY + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	style := tcell.StyleDefault.Background(hpColor(o.HP, o.MaxHP, brickHue))
	r.screen.FillRect(x, y, w, h, style, ' ')

	label := fmt.Sprintf("%d", o.HP)
	labelStyle := style.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.DrawText(x+(w-len(label))/2, y+h/2, label, labelStyle)
}

// drawShard traces the polygon outline and puts the hit-point count at
// the centroid.
func (r *Renderer) drawShard(o game.ObstacleState, scaleX, scaleY float64) {
	style := tcell.StyleDefault.Foreground(hpColor(o.HP, o.MaxHP, shardHue))
	for i := range o.Verts {
		a := o.Verts[i]
		b := o.Verts[(i+1)%len(o.Verts)]
		r.drawLine(
			int(a.X*scaleX), int(a.Y*scaleY),
			int(b.X*scaleX), int(b.Y*scaleY),
			style,
		)
	}

	label := fmt.Sprintf("%d", o.HP)
	cx := int(o.Centroid.X * scaleX)
	cy := int(o.Centroid.Y * scaleY)
	r.screen.DrawText(cx, cy, label, style.Bold(true))
}

// drawLine is an integer Bresenham between two cells.
func (r *Renderer) drawLine(x0, y0, x1, y1 int, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		r.screen.SetCell(x0, y0, style, EdgeChar)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) renderStatusBar(snap game.Snapshot, cleared bool, screenW, screenH int) {
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < screenW; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}

	var statusText string
	if cleared {
		statusText = fmt.Sprintf(" FIELD CLEARED after %d ticks | press 'q' to quit", snap.Tick)
	} else {
		statusText = fmt.Sprintf(" Tick: %d | Obstacles: %d | 'q' quits", snap.Tick, snap.Remaining)
	}
	r.screen.DrawText(0, statusY, statusText, statusStyle)
}

// Base hues for the two obstacle kinds.
const (
	brickHue = 10.0  // red-orange
	shardHue = 330.0 // pink
)

// hpColor shades an obstacle by its remaining hit points: full health
// is saturated and bright, a nearly broken obstacle fades out.
func hpColor(hp, maxHP int, hue float64) tcell.Color {
	ratio := 1.0
	if maxHP > 0 {
		ratio = float64(hp) / float64(maxHP)
	}
	c := colorful.Hsv(hue, 0.55+0.45*ratio, 0.45+0.55*ratio)
	cr, cg, cb := c.RGB255()
	return tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
