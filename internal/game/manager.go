package game

import (
	"image/color"
	"log"

	"chosenoffset.com/gridcaster/internal/core/kinematics"
	"chosenoffset.com/gridcaster/internal/render"
	"chosenoffset.com/gridcaster/internal/simulation"
)

// Manager owns the mode toggle and routes each frame to the active mode.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        Mode
	Game         *Game
	Renderer     render.Renderer
	InputMgr     render.InputManager
}

// NewManager creates a new game manager starting in edit mode.
func NewManager(cfg *simulation.Config, r render.Renderer, input render.InputManager) *Manager {
	m := &Manager{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		State:        ModeEdit,
		Game:         NewGame(cfg),
		Renderer:     r,
		InputMgr:     input,
	}
	input.SetCursorMode(render.CursorModeVisible)

	log.Printf("Grid %dx%d, tile size %.0fpx, player at (%.0f, %.0f), top speed %.2f px/frame",
		m.Game.Grid.Rows(), m.Game.Grid.Cols(), m.Game.TileSize,
		m.Game.Player.Position.X, m.Game.Player.Position.Y,
		kinematics.TerminalSpeed(cfg.Player.Speed, cfg.Player.Drag))
	return m
}

// SetMode switches between edit and explore mode.
func (m *Manager) SetMode(mode Mode) {
	if mode == m.State {
		return
	}
	m.State = mode

	switch mode {
	case ModeExplore:
		// Show the cursor only while editing tiles.
		m.InputMgr.SetCursorMode(render.CursorModeCaptured)
		m.Game.pointer.reset()
	default:
		m.InputMgr.SetCursorMode(render.CursorModeVisible)
	}
	log.Printf("Switched to %s mode", mode)
}

// Update updates the game state.
func (m *Manager) Update() error {
	if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		log.Println("Quit requested")
		return render.ErrQuit
	}

	// Toggle the display mode between 2D and 3D
	if m.InputMgr.IsKeyJustPressed(render.KeyTab) {
		m.SetMode(m.State.Toggle())
	}

	switch m.State {
	case ModeEdit:
		m.Game.UpdateEdit(m.InputMgr)
	case ModeExplore:
		m.Game.UpdateExplore(m.InputMgr)
	}

	m.Game.updateMessages()
	return nil
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	screen.Fill(color.Black)

	switch m.State {
	case ModeEdit:
		m.Game.DrawEdit(screen, m.Renderer)
	case ModeExplore:
		m.Game.DrawExplore(screen, m.Renderer)
	}

	m.Game.drawMessages(screen, m.Renderer)
}

// Layout keeps the logical screen at the configured size so grid cells and
// pixel columns stay one-to-one with the world.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}
