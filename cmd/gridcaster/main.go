package main

import (
	"flag"
	"log"

	"chosenoffset.com/gridcaster/internal/game"
	ebitenrender "chosenoffset.com/gridcaster/internal/render/ebiten"
	"chosenoffset.com/gridcaster/internal/simulation"
)

func main() {
	// Environment overrides may come from a local .env file
	simulation.LoadDotEnv()

	configPath := flag.String("config", simulation.ConfigPath("config.json"), "Path to a JSON config file")
	title := flag.String("title", "", "Window title (overrides the config)")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("Failed to apply environment: %v", err)
	}
	if *title != "" {
		cfg.Window.Title = *title
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	manager := game.NewManager(cfg, renderer, inputMgr)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)
	engine.SetTPS(cfg.Window.TPS)

	log.Println("Starting raycaster...")
	if err := engine.RunGame(manager); err != nil {
		log.Fatal(err)
	}
}
