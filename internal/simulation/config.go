// Package simulation provides configuration for the raycasting demonstrator.
// Settings are loaded from a JSON file so a session can change the grid,
// camera and movement tuning without rebuilding.
package simulation

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"chosenoffset.com/gridcaster/internal/core/kinematics"
	"chosenoffset.com/gridcaster/internal/core/projection"
)

// Config holds all settings for a session
type Config struct {
	Window  WindowConfig  `json:"window"`
	Grid    GridConfig    `json:"grid"`
	Player  PlayerConfig  `json:"player"`
	Camera  CameraConfig  `json:"camera"`
	Display DisplayConfig `json:"display"`
}

// WindowConfig defines the window and frame pacing
type WindowConfig struct {
	Width     int    `json:"width"`     // Logical screen width in pixels
	Height    int    `json:"height"`    // Logical screen height in pixels
	Title     string `json:"title"`     // Window title
	TPS       int    `json:"tps"`       // Target updates per second
	Resizable bool   `json:"resizable"` // Allow the window to be resized (logical size is fixed)
}

// GridConfig defines the editable wall map
type GridConfig struct {
	Rows     int     `json:"rows"`
	Cols     int     `json:"cols"`
	TileSize float64 `json:"tile_size"` // Side of one cell in pixels
}

// PlayerConfig defines the first-person body
type PlayerConfig struct {
	StartX        float64 `json:"start_x"`        // Spawn position; negative means screen centre
	StartY        float64 `json:"start_y"`
	StartRotation float64 `json:"start_rotation"` // Radians
	Speed         float64 `json:"speed"`          // Acceleration per frame while moving
	Drag          float64 `json:"drag"`           // Velocity fraction lost per frame, [0, 1)
	Radius        float64 `json:"radius"`         // Marker size in the top-down view
}

// CameraConfig defines the projection and pointer look
type CameraConfig struct {
	FOVDegrees       float64 `json:"fov_degrees"`
	MaxRayDistance   float64 `json:"max_ray_distance"`
	MouseSensitivity float64 `json:"mouse_sensitivity"` // Radians per pixel of pointer travel
}

// DisplayConfig toggles optional overlays
type DisplayConfig struct {
	ShowRays   bool `json:"show_rays"`   // Draw the view fan in the top-down view
	RaySamples int  `json:"ray_samples"` // Rays in that fan
	ShadeSides bool `json:"shade_sides"` // Darken faces crossed on horizontal grid lines
	ShowFPS    bool `json:"show_fps"`
	FontSize   int  `json:"font_size"`
}

// DefaultConfig returns the stock 800x800 demonstrator settings
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  800,
			Height: 800,
			Title:  "raycasting renderer",
			TPS:    60,
		},
		Grid: GridConfig{
			Rows:     20,
			Cols:     20,
			TileSize: 40,
		},
		Player: PlayerConfig{
			StartX:        -1,
			StartY:        -1,
			StartRotation: 0,
			Speed:         0.5,
			Drag:          0.14,
			Radius:        10,
		},
		Camera: CameraConfig{
			FOVDegrees:       60,
			MaxRayDistance:   5000,
			MouseSensitivity: kinematics.DefaultSensitivity,
		},
		Display: DisplayConfig{
			ShowRays:   true,
			RaySamples: 32,
			ShadeSides: true,
			ShowFPS:    true,
			FontSize:   20,
		},
	}
}

// LoadConfig loads config from a JSON file. Fields missing from the file keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig() // Start with defaults
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return config, nil
}

// Validate reports the first setting that cannot produce a working session.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.Window.TPS)
	}
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("grid must have at least one cell, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	}
	if !(c.Player.Drag >= 0 && c.Player.Drag < 1) {
		return fmt.Errorf("drag must be in [0, 1), got %v", c.Player.Drag)
	}
	if c.Player.Speed < 0 {
		return fmt.Errorf("speed must not be negative, got %v", c.Player.Speed)
	}
	if c.Display.RaySamples < 0 {
		return fmt.Errorf("ray samples must not be negative, got %d", c.Display.RaySamples)
	}
	if err := c.Projection().Validate(); err != nil {
		return fmt.Errorf("invalid camera: %w", err)
	}
	return nil
}

// FOV returns the field of view in radians.
func (c *Config) FOV() float64 {
	return c.Camera.FOVDegrees * math.Pi / 180
}

// Projection returns the projection parameters for a full-window 3D view.
func (c *Config) Projection() projection.Params {
	return projection.Params{
		ScreenWidth:  c.Window.Width,
		ScreenHeight: c.Window.Height,
		FOV:          c.FOV(),
		TileSize:     c.Grid.TileSize,
		MaxDistance:  c.Camera.MaxRayDistance,
	}
}

// SpawnPoint returns the configured start position, defaulting to the centre
// of the screen.
func (c *Config) SpawnPoint() (x, y float64) {
	x, y = c.Player.StartX, c.Player.StartY
	if x < 0 {
		x = float64(c.Window.Width) / 2
	}
	if y < 0 {
		y = float64(c.Window.Height) / 2
	}
	return x, y
}
