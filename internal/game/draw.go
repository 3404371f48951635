package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/gridcaster/internal/core/raycast"
	"chosenoffset.com/gridcaster/internal/render"
)

var (
	colorGridLine  = color.RGBA{130, 130, 130, 255}
	colorWall      = color.RGBA{255, 255, 255, 255}
	colorWallShade = color.RGBA{190, 190, 190, 255}
	colorCeiling   = color.RGBA{130, 130, 130, 255}
	colorFloor     = color.RGBA{200, 200, 200, 255}
	colorPlayer    = color.RGBA{230, 41, 55, 255}
	colorViewDir   = color.RGBA{0, 228, 48, 255}
	colorRay       = color.RGBA{253, 249, 0, 90}
	colorText      = color.RGBA{255, 255, 255, 255}
	colorTextBox   = color.RGBA{0, 0, 0, 255}
)

const (
	textMargin    = 5
	viewDirLength = 20
)

var (
	editHelp = []string{
		"[left click] to paint walls",
		"[right click] to remove walls",
		"[c] to remove all walls",
	}
	exploreHelp = []string{
		"[wasd] to move",
		"[mouse] to look",
		"[j/k] to change sensitivity",
	}
	toggleHelp = "[tab] to switch mode"
)

// DrawEdit draws the top-down grid with the player marker.
func (g *Game) DrawEdit(screen render.Image, r render.Renderer) {
	w, h := float32(g.ScreenWidth), float32(g.ScreenHeight)
	ts := float32(g.TileSize)

	// Horizontal then vertical grid lines
	for i := 0; i < g.Grid.Rows(); i++ {
		y := float32(i) * ts
		r.StrokeLine(screen, 0, y, w, y, 1, colorGridLine)
	}
	for i := 0; i < g.Grid.Cols(); i++ {
		x := float32(i) * ts
		r.StrokeLine(screen, x, 0, x, h, 1, colorGridLine)
	}

	for row := 0; row < g.Grid.Rows(); row++ {
		for col := 0; col < g.Grid.Cols(); col++ {
			if g.Grid.IsWall(row, col) {
				r.FillRect(screen, float32(col)*ts, float32(row)*ts, ts, ts, colorWall)
			}
		}
	}

	pos := g.Player.Position
	if g.Config.Display.ShowRays {
		for _, ray := range g.ViewFan() {
			end := ray.End()
			r.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(end.X), float32(end.Y), 1, colorRay)
		}
	}

	r.FillCircle(screen, float32(pos.X), float32(pos.Y), float32(g.Config.Player.Radius), colorPlayer)
	tip := pos.Add(g.Player.ViewDir().Scale(viewDirLength))
	r.StrokeLine(screen, float32(pos.X), float32(pos.Y), float32(tip.X), float32(tip.Y), 1, colorViewDir)

	g.drawHelp(screen, r, editHelp)
}

// DrawExplore draws the first-person view one pixel column at a time.
func (g *Game) DrawExplore(screen render.Image, r render.Renderer) {
	w, h := float32(g.ScreenWidth), float32(g.ScreenHeight)
	half := float32(int(h / 2))

	r.FillRect(screen, 0, 0, w, half, colorCeiling)
	r.FillRect(screen, 0, half, w, half, colorFloor)

	for _, s := range g.Slices() {
		clr := colorWall
		if g.Config.Display.ShadeSides && s.Side == raycast.SideY {
			clr = colorWallShade
		}
		r.FillRect(screen, float32(s.Column), float32(s.Top), 1, float32(s.Height()), clr)
	}

	if g.Config.Display.ShowFPS {
		label := fmt.Sprintf("%.0f FPS", r.ActualFPS())
		tw, _ := r.MeasureText(label, g.fontSize())
		r.DrawText(screen, label, g.ScreenWidth-tw-textMargin, textMargin, colorViewDir, g.fontSize())
	}

	g.drawHelp(screen, r, exploreHelp)
}

// drawHelp draws the key help box in the top-left corner. The first line
// is always the mode toggle.
func (g *Game) drawHelp(screen render.Image, r render.Renderer, lines []string) {
	size := g.fontSize()
	font := int(size)

	boxW, _ := r.MeasureText(toggleHelp, size)
	for _, l := range lines {
		if lw, _ := r.MeasureText(l, size); lw > boxW {
			boxW = lw
		}
	}
	boxH := textMargin + (len(lines)+1)*(font+textMargin)
	r.FillRect(screen, 0, 0, float32(boxW+2*textMargin), float32(boxH), colorTextBox)

	r.DrawText(screen, toggleHelp, textMargin, textMargin, colorText, size)
	for i, l := range lines {
		r.DrawText(screen, l, textMargin, textMargin+(i+1)*(font+textMargin), colorText, size)
	}
}

// drawMessages stacks the active messages above the bottom edge, fading
// them out as they expire.
func (g *Game) drawMessages(screen render.Image, r render.Renderer) {
	size := g.fontSize()
	font := int(size)
	for i, msg := range g.Messages {
		alpha := uint8(255)
		if msg.MaxTime > 0 {
			alpha = uint8(255 * msg.TimeLeft / msg.MaxTime)
		}
		y := g.ScreenHeight - (len(g.Messages)-i)*(font+textMargin) - textMargin
		r.DrawText(screen, msg.Text, textMargin, y, color.NRGBA{255, 255, 255, alpha}, size)
	}
}

func (g *Game) fontSize() float64 {
	if g.Config.Display.FontSize <= 0 {
		return 20
	}
	return float64(g.Config.Display.FontSize)
}
