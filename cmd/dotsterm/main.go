// dotsterm runs the simulation in a terminal. It is the non-visual-host
// variant of the tick loop: a fixed-interval ticker instead of a frame
// callback, with dots drawn as colored cells.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dotsbattle/go-dots-battle/pkg/engine"
	"github.com/dotsbattle/go-dots-battle/pkg/palette"
)

const tickRate = 30 // ticks per second

func main() {
	configFile := flag.String("config", "", "path to JSON config file (defaults used when empty)")
	schemaFile := flag.String("schema", "config.schema.json", "path to the config JSON schema")
	logFile := flag.String("log", "", "log file path (logging disabled when empty)")
	flag.Parse()

	sugar := zap.NewNop().Sugar()
	if *logFile != "" {
		zcfg := zap.NewDevelopmentConfig()
		zcfg.OutputPaths = []string{*logFile}
		logger, err := zcfg.Build()
		if err != nil {
			log.Fatalf("failed to create logger: %v", err)
		}
		defer logger.Sync()
		sugar = logger.Sugar()
	}

	cfg := engine.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = engine.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}
	defer screen.Fini()

	var lastStats engine.Stats
	orch, err := engine.NewOrchestrator(
		cfg.WorldWidth, cfg.WorldHeight, cfg.Controls,
		func(s engine.Stats) { lastStats = s },
		sugar, cfg.Seed,
	)
	if err != nil {
		screen.Fini()
		log.Fatalf("failed to create orchestrator: %v", err)
	}
	orch.Init()

	pal := palette.New(cfg.Controls.PaletteSize)

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					orch.Destroy()
					return
				case ev.Rune() == ' ':
					orch.TogglePause()
				case ev.Rune() == 'b':
					c := orch.Controls()
					if c.Mode == engine.ModeBattle {
						c.Mode = engine.ModeRepulsion
					} else {
						c.Mode = engine.ModeBattle
					}
					orch.Apply(c)
				case ev.Rune() == 'i':
					// Impulse at the arena center.
					orch.HandleInteractionEvent(cfg.WorldWidth/2, cfg.WorldHeight/2, true)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			orch.Step(time.Now())
			draw(screen, orch, pal, cfg, lastStats)
		}
	}
}

func draw(screen tcell.Screen, orch *engine.Orchestrator, pal *palette.Palette, cfg *engine.Config, stats engine.Stats) {
	screen.Clear()
	cols, rows := screen.Size()
	if rows < 2 || cols < 2 {
		screen.Show()
		return
	}

	// Top row is the status line; the rest maps the arena.
	arenaRows := rows - 1
	for _, d := range orch.Dots() {
		col := int(d.Pos.X / cfg.WorldWidth * float64(cols))
		row := 1 + int(d.Pos.Y/cfg.WorldHeight*float64(arenaRows))
		if col < 0 || col >= cols || row < 1 || row >= rows {
			continue
		}
		c := pal.Color(d.Group)
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
		screen.SetContent(col, row, '•', nil, style)
	}

	status := statusLine(orch, stats)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range status {
		if i >= cols {
			break
		}
		screen.SetContent(i, 0, r, nil, style)
	}
	screen.Show()
}

func statusLine(orch *engine.Orchestrator, stats engine.Stats) string {
	s := fmt.Sprintf("[%s] dots=%d fps=%.1f", orch.Controls().Mode, stats.Count, stats.FPS)
	if stats.Mode == engine.ModeBattle {
		for g, pct := range stats.GroupPercents {
			s += fmt.Sprintf(" g%d=%.0f%%", g, pct)
		}
	} else if stats.Count > 0 {
		s += fmt.Sprintf(" avg=%.2f", stats.AvgSpeed)
	}
	if orch.Paused() {
		s += " PAUSED"
	}
	s += "  (q quit, space pause, b mode, i impulse)"
	return s
}
