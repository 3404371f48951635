package simulation

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the loaded config.
const (
	EnvConfigPath  = "GRIDCASTER_CONFIG"
	EnvSensitivity = "GRIDCASTER_MOUSE_SENSITIVITY"
	EnvFOV         = "GRIDCASTER_FOV_DEGREES"
	EnvMaxDistance = "GRIDCASTER_MAX_RAY_DISTANCE"
	EnvTileSize    = "GRIDCASTER_TILE_SIZE"
	EnvShowRays    = "GRIDCASTER_SHOW_RAYS"
)

// LoadDotEnv loads variables from the given .env files into the process
// environment. Missing files are not an error; variables already set win.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Printf("Warning: could not load %s: %v", f, err)
		}
	}
}

// ConfigPath returns the config file named by the environment, or fallback.
func ConfigPath(fallback string) string {
	if v, ok := os.LookupEnv(EnvConfigPath); ok && v != "" {
		return v
	}
	return fallback
}

// ApplyEnv overrides config fields from GRIDCASTER_* environment variables.
func (c *Config) ApplyEnv() error {
	if err := envFloat(EnvSensitivity, &c.Camera.MouseSensitivity); err != nil {
		return err
	}
	if err := envFloat(EnvFOV, &c.Camera.FOVDegrees); err != nil {
		return err
	}
	if err := envFloat(EnvMaxDistance, &c.Camera.MaxRayDistance); err != nil {
		return err
	}
	if err := envFloat(EnvTileSize, &c.Grid.TileSize); err != nil {
		return err
	}
	if err := envBool(EnvShowRays, &c.Display.ShowRays); err != nil {
		return err
	}
	return nil
}

func envFloat(key string, dst *float64) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("environment variable %s must be a number: %w", key, err)
	}
	*dst = v
	return nil
}

func envBool(key string, dst *bool) error {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	*dst = v
	return nil
}
