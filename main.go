package main

import (
	"flag"
	"log"

	"SketchBoard/internal/board"
	"SketchBoard/internal/config"
	"SketchBoard/internal/ui"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to a TOML config file")
		width      = flag.Int("width", 0, "Canvas width in pixels (overrides config)")
		height     = flag.Int("height", 0, "Canvas height in pixels (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *width > 0 {
		cfg.Canvas.Width = *width
	}
	if *height > 0 {
		cfg.Canvas.Height = *height
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	b, err := board.New(cfg.Canvas.Width, cfg.Canvas.Height, board.Options{
		Background:   cfg.Background(),
		HistoryLimit: cfg.History.Limit,
		Style:        cfg.InitialStyle(),
	})
	if err != nil {
		log.Fatalf("Failed to start board: %v", err)
	}

	log.Println("Starting SketchBoard")
	ui.RunApp(cfg, b)
}
