// Package rendertest provides in-memory render, image and input fakes that
// record what the game asked for, so game logic can be tested without a
// window.
package rendertest

import (
	"image/color"

	"chosenoffset.com/gridcaster/internal/render"
)

// Op names a recorded drawing operation.
type Op string

const (
	OpFill       Op = "fill"
	OpFillRect   Op = "fill_rect"
	OpStrokeLine Op = "stroke_line"
	OpFillCircle Op = "fill_circle"
	OpText       Op = "text"
)

// Call is one recorded drawing operation. Unused coordinates are zero.
type Call struct {
	Op     Op
	X, Y   float32
	W, H   float32 // rect size, or line end point
	Radius float32
	Text   string
	Color  color.Color
}

// Image is a fake render.Image that records the calls made against it.
type Image struct {
	W, H  int
	Calls []Call
}

// NewImage returns an empty recording image of the given size.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h}
}

func (i *Image) Fill(clr color.Color) { i.Calls = append(i.Calls, Call{Op: OpFill, Color: clr}) }

// Filter returns the recorded calls with the given op, in order.
func (i *Image) Filter(op Op) []Call {
	var out []Call
	for _, c := range i.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Texts returns every string drawn on the image.
func (i *Image) Texts() []string {
	var out []string
	for _, c := range i.Filter(OpText) {
		out = append(out, c.Text)
	}
	return out
}

// Renderer is a fake render.Renderer that draws into *Image values.
type Renderer struct {
	FPS float64
}

// NewRenderer returns a recording renderer.
func NewRenderer() *Renderer {
	return &Renderer{FPS: 60}
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	record(dst, Call{Op: OpFillRect, X: x, Y: y, W: width, H: height, Color: clr})
}

func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	record(dst, Call{Op: OpStrokeLine, X: x0, Y: y0, W: x1, H: y1, Color: clr})
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	record(dst, Call{Op: OpFillCircle, X: x, Y: y, Radius: radius, Color: clr})
}

func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, size float64) {
	record(dst, Call{Op: OpText, X: float32(x), Y: float32(y), Text: text, Color: clr})
}

// MeasureText approximates glyphs as half as wide as they are tall.
func (r *Renderer) MeasureText(text string, size float64) (width, height int) {
	return int(float64(len(text)) * size / 2), int(size)
}

func (r *Renderer) ActualFPS() float64 { return r.FPS }

func record(dst render.Image, c Call) {
	if img, ok := dst.(*Image); ok {
		img.Calls = append(img.Calls, c)
	}
}

// Input is a scriptable render.InputManager. Held keys stay down until
// released; just-pressed keys last until EndFrame.
type Input struct {
	Held        map[render.Key]bool
	JustPressed map[render.Key]bool
	Buttons     map[render.MouseButton]bool
	CursorX     int
	CursorY     int
	CursorMode  render.CursorMode
}

// NewInput returns an input with nothing pressed.
func NewInput() *Input {
	return &Input{
		Held:        make(map[render.Key]bool),
		JustPressed: make(map[render.Key]bool),
		Buttons:     make(map[render.MouseButton]bool),
	}
}

// Press marks key as pressed this frame and held from now on.
func (in *Input) Press(key render.Key) {
	in.JustPressed[key] = true
	in.Held[key] = true
}

// Tap marks key as pressed this frame only.
func (in *Input) Tap(key render.Key) {
	in.JustPressed[key] = true
}

// Release lets go of key.
func (in *Input) Release(key render.Key) {
	delete(in.Held, key)
}

// MoveCursor moves the pointer to (x, y).
func (in *Input) MoveCursor(x, y int) {
	in.CursorX, in.CursorY = x, y
}

// EndFrame clears the just-pressed state, as a real backend does between ticks.
func (in *Input) EndFrame() {
	for k := range in.JustPressed {
		delete(in.JustPressed, k)
	}
}

func (in *Input) IsKeyPressed(key render.Key) bool     { return in.Held[key] }
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.JustPressed[key] }
func (in *Input) GetCursorPosition() (x, y int)        { return in.CursorX, in.CursorY }
func (in *Input) IsMouseButtonPressed(b render.MouseButton) bool {
	return in.Buttons[b]
}
func (in *Input) SetCursorMode(mode render.CursorMode) { in.CursorMode = mode }

var (
	_ render.Renderer     = (*Renderer)(nil)
	_ render.Image        = (*Image)(nil)
	_ render.InputManager = (*Input)(nil)
)
