package game

import (
	"fmt"
	"log"

	"chosenoffset.com/gridcaster/internal/core/kinematics"
	"chosenoffset.com/gridcaster/internal/core/projection"
	"chosenoffset.com/gridcaster/internal/core/raycast"
	"chosenoffset.com/gridcaster/internal/render"
	"chosenoffset.com/gridcaster/internal/simulation"
	"chosenoffset.com/gridcaster/internal/world/grid"
)

// messageDuration is how long feedback messages stay on screen, in seconds.
const messageDuration = 2.0

// Game holds the simulation state shared by both modes.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *simulation.Config

	Grid        *grid.Grid
	TileSize    float64
	Player      *kinematics.Player
	Sensitivity kinematics.Sensitivity

	// UI state
	Messages []Message

	pointer pointerTracker
	slices  []projection.Slice
	dt      float64
}

// NewGame builds the grid and player described by cfg.
func NewGame(cfg *simulation.Config) *Game {
	x, y := cfg.SpawnPoint()
	return &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Config:       cfg,
		Grid:         grid.New(cfg.Grid.Rows, cfg.Grid.Cols),
		TileSize:     cfg.Grid.TileSize,
		Player: kinematics.NewPlayer(
			raycast.Point{X: x, Y: y},
			cfg.Player.StartRotation,
			cfg.Player.Speed,
			cfg.Player.Drag,
		),
		Sensitivity: kinematics.NewSensitivity(cfg.Camera.MouseSensitivity),
		slices:      make([]projection.Slice, 0, cfg.Window.Width),
		dt:          1.0 / float64(cfg.Window.TPS),
	}
}

// UpdateEdit paints or erases the cell under the cursor and handles the
// clear key.
func (g *Game) UpdateEdit(in render.InputManager) {
	mx, my := in.GetCursorPosition()

	if row, col, ok := g.Grid.CellAt(float64(mx), float64(my), g.TileSize); ok {
		if in.IsMouseButtonPressed(render.MouseButtonLeft) {
			g.Grid.Set(row, col, grid.Wall)
		} else if in.IsMouseButtonPressed(render.MouseButtonRight) {
			g.Grid.Set(row, col, grid.Empty)
		}
	}

	if in.IsKeyJustPressed(render.KeyC) {
		removed := g.Grid.WallCount()
		g.Grid.Clear()
		g.ShowMessage(fmt.Sprintf("Grid cleared, %d walls removed", removed))
	}
}

// UpdateExplore applies look, sensitivity and movement input to the player.
func (g *Game) UpdateExplore(in render.InputManager) {
	before := g.Sensitivity.Value()
	g.Sensitivity.Adjust(in.IsKeyJustPressed(render.KeyJ), in.IsKeyJustPressed(render.KeyK))
	if v := g.Sensitivity.Value(); v != before {
		g.ShowMessage(fmt.Sprintf("Mouse sensitivity %.4f", v))
	}

	g.Player.Update(kinematics.Input{
		PointerDeltaX: g.pointer.delta(in.GetCursorPosition()),
		Forward:       in.IsKeyPressed(render.KeyW),
		Back:          in.IsKeyPressed(render.KeyS),
		Left:          in.IsKeyPressed(render.KeyA),
		Right:         in.IsKeyPressed(render.KeyD),
	}, g.Sensitivity.Value())
}

// Slices projects the current view into wall slices. The returned slice is
// reused by the next call.
func (g *Game) Slices() []projection.Slice {
	p := g.Config.Projection()
	p.ScreenWidth, p.ScreenHeight = g.ScreenWidth, g.ScreenHeight
	cam := projection.Camera{Position: g.Player.Position, Rotation: g.Player.Rotation}
	g.slices = projection.AppendColumns(g.slices[:0], cam, g.Grid, p)
	return g.slices
}

// ViewFan traces the rays previewed in the top-down view.
func (g *Game) ViewFan() []raycast.FanRay {
	return raycast.Fan(
		g.Player.Position,
		g.Player.Rotation,
		g.Config.FOV(),
		g.Config.Display.RaySamples,
		g.Grid,
		g.TileSize,
		g.Config.Camera.MaxRayDistance,
	)
}

func (g *Game) updateMessages() {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= g.dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageDuration,
		MaxTime:  messageDuration,
	})

	log.Printf("Message: %s", text)
}
