package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/dotsbattle/go-dots-battle/internal/app"
	"github.com/dotsbattle/go-dots-battle/pkg/engine"
)

func main() {
	configFile := flag.String("config", "", "path to JSON config file (defaults used when empty)")
	schemaFile := flag.String("schema", "config.schema.json", "path to the config JSON schema")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg := engine.DefaultConfig()
	if *configFile != "" {
		cfg, err = engine.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			sugar.Fatalw("failed to load config", "file", *configFile, "error", err)
		}
		sugar.Infow("config loaded", "file", *configFile)
	}

	game, err := app.NewGame(cfg, sugar)
	if err != nil {
		sugar.Fatalw("failed to create game", "error", err)
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Dots Battle")
	if err := ebiten.RunGame(game); err != nil {
		sugar.Fatalw("game exited with error", "error", err)
	}
}
