// Package app wires user input, the control panel and the renderer to the
// simulation core. It contains no algorithmic logic: it reads widget values
// into a Controls snapshot, forwards pointer and click events, and draws
// whatever the active mode's dot list holds.
package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/dotsbattle/go-dots-battle/pkg/engine"
	"github.com/dotsbattle/go-dots-battle/pkg/palette"
	"github.com/dotsbattle/go-dots-battle/pkg/ui"
)

// Game is the ebiten host around one Orchestrator.
type Game struct {
	orch *engine.Orchestrator
	cfg  *engine.Config
	pal  *palette.Palette
	log  *zap.SugaredLogger

	panel *ui.Panel

	wBattle       *ui.Checkbox
	wNumDots      *ui.Slider
	wPaletteSize  *ui.Slider
	wMaxSpeed     *ui.Slider
	wMinSize      *ui.Slider
	wMaxSize      *ui.Slider
	wInfluence    *ui.Slider
	wForce        *ui.Slider
	wPointer      *ui.Slider
	wDrift        *ui.Slider
	wBattleRadius *ui.Slider
	wImpulse      *ui.Slider
	wEditGroup    *ui.Slider

	lastStats engine.Stats
	selected  *engine.Dot

	// Rolling averages in ms, exponential moving average.
	updateAvg float64
	drawAvg   float64
}

// NewGame builds the orchestrator, the palette and the control panel.
func NewGame(cfg *engine.Config, log *zap.SugaredLogger) (*Game, error) {
	g := &Game{
		cfg: cfg,
		pal: palette.New(cfg.Controls.PaletteSize),
		log: log,
	}

	orch, err := engine.NewOrchestrator(
		cfg.WorldWidth, cfg.WorldHeight, cfg.Controls,
		func(s engine.Stats) { g.lastStats = s },
		log, cfg.Seed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}
	orch.Init()
	g.orch = orch

	c := cfg.Controls
	panel := ui.NewPanel(10, 10, 240, cfg.WorldHeight-20)

	panel.AddSection("Mode")
	g.wBattle = panel.AddCheckbox("Battle mode", c.Mode == engine.ModeBattle)

	panel.AddSection("Population (on mode switch)")
	g.wNumDots = panel.AddSlider("Dots", 0, 5000, float64(c.NumDots))
	g.wPaletteSize = panel.AddSlider("Groups", 1, 12, float64(c.PaletteSize))

	panel.AddSection("Physics")
	g.wMaxSpeed = panel.AddSlider("Max Speed", 0.5, 10, c.MaxSpeed)
	g.wMinSize = panel.AddSlider("Min Size", 0.5, 10, c.MinSize)
	g.wMaxSize = panel.AddSlider("Max Size", 1, 15, c.MaxSize)

	panel.AddSection("Forces")
	g.wInfluence = panel.AddSlider("Influence Radius", 5, 100, c.InfluenceRadius)
	g.wForce = panel.AddSlider("Force Strength", 0, 1, c.ForceStrength)
	g.wPointer = panel.AddSlider("Pointer Strength", 0, 2, c.PointerStrength)
	g.wDrift = panel.AddSlider("Drift Strength", 0, 1, c.DriftStrength)

	panel.AddSection("Battle")
	g.wBattleRadius = panel.AddSlider("Battle Radius", 2, 50, c.BattleRadius)
	g.wImpulse = panel.AddSlider("Impulse Strength", 0, 20, c.ImpulseStrength)

	panel.AddSection("Population Edits")
	g.wEditGroup = panel.AddSlider("Edit Group", 0, 11, 0)
	panel.AddButton("Add 25", func() {
		engine.AddDots(g.orch.Mode(), 25, g.editGroup(), g.orch.Spawn())
	})
	panel.AddButton("Remove 25", func() {
		engine.RemoveDots(g.orch.Mode(), 25, g.editGroup())
	})
	panel.AddButton("Reassign All", func() {
		engine.ReassignAll(g.orch.Mode(), g.editGroup())
	})
	g.panel = panel

	return g, nil
}

func (g *Game) editGroup() int {
	return int(g.wEditGroup.Value)
}

// widgetControls assembles a Controls snapshot from the current widget
// values. The engine clamps on the way in, so raw slider values are fine.
func (g *Game) widgetControls() engine.Controls {
	mode := engine.ModeRepulsion
	if g.wBattle.Value {
		mode = engine.ModeBattle
	}
	c := g.cfg.Controls
	c.Mode = mode
	c.NumDots = int(g.wNumDots.Value)
	c.PaletteSize = int(g.wPaletteSize.Value)
	c.MaxSpeed = g.wMaxSpeed.Value
	c.MinSize = g.wMinSize.Value
	c.MaxSize = g.wMaxSize.Value
	c.InfluenceRadius = g.wInfluence.Value
	c.ForceStrength = g.wForce.Value
	c.PointerStrength = g.wPointer.Value
	c.DriftStrength = g.wDrift.Value
	c.BattleRadius = g.wBattleRadius.Value
	c.ImpulseStrength = g.wImpulse.Value
	return c
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	g.panel.Update()

	controls := g.widgetControls()
	if g.pal.Size() != controls.PaletteSize {
		g.pal = palette.New(controls.PaletteSize)
	}
	g.orch.Apply(controls)

	g.handleInput()

	g.orch.Step(time.Now())
	return nil
}

func (g *Game) handleInput() {
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)
	inArena := fx >= 0 && fy >= 0 && fx < g.cfg.WorldWidth && fy < g.cfg.WorldHeight &&
		!g.panel.Contains(fx, fy)

	if inArena {
		g.orch.HandlePointerMove(fx, fy)
	} else {
		g.orch.HandlePointerLeave()
	}

	if inArena && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
		if shift {
			g.orch.HandleInteractionEvent(fx, fy, true)
		} else {
			g.selected = g.orch.SelectAt(fx, fy)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		paused := g.orch.TogglePause()
		g.log.Infow("pause toggled", "paused", paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.selected = nil
		g.orch.ClearSelection()
	}

	// Edit the selected dot: G cycles its group, +/- resizes it.
	if g.selected != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyG) {
			g.orch.UpdateSelected(g.selected.Size, g.selected.Group+1)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
			g.orch.UpdateSelected(g.selected.Size+0.5, g.selected.Group)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
			g.orch.UpdateSelected(g.selected.Size-0.5, g.selected.Group)
		}
	}
}

// Draw implements ebiten.Game. The renderer only pulls the dot list and the
// group color lookup; it never mutates simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.RGBA{R: 12, G: 12, B: 24, A: 255})

	for _, d := range g.orch.Dots() {
		vector.DrawFilledCircle(screen,
			float32(d.Pos.X), float32(d.Pos.Y), float32(d.Size),
			g.pal.Color(d.Group), true)
	}

	if g.selected != nil {
		vector.StrokeCircle(screen,
			float32(g.selected.Pos.X), float32(g.selected.Pos.Y),
			float32(g.selected.Size+3), 1.5,
			color.RGBA{R: 255, G: 255, B: 255, A: 255}, true)
	}

	g.panel.Draw(screen)
	g.drawStatsBar(screen)

	status := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nUpdate: %.2fms  Draw: %.2fms",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.updateAvg, g.drawAvg)
	if g.orch.Paused() {
		status += "\nPAUSED (space to resume)"
	}
	ebitenutil.DebugPrintAt(screen, status, int(g.cfg.WorldWidth)-220, int(g.cfg.WorldHeight)-60)
}

// drawStatsBar renders the per-group share of the population as a stacked
// horizontal bar in the top right corner.
func (g *Game) drawStatsBar(screen *ebiten.Image) {
	stats := g.lastStats
	if stats.Count == 0 {
		return
	}

	barWidth := float32(220.0)
	barHeight := float32(18.0)
	x := float32(g.cfg.WorldWidth) - barWidth - 10
	y := float32(10.0)

	if stats.Mode == engine.ModeBattle && len(stats.GroupCounts) > 0 {
		offset := float32(0)
		for group, count := range stats.GroupCounts {
			w := barWidth * float32(count) / float32(stats.Count)
			vector.DrawFilledRect(screen, x+offset, y, w, barHeight, g.pal.Color(group), true)
			offset += w
		}
		label := fmt.Sprintf("%d dots", stats.Count)
		for group, pct := range stats.GroupPercents {
			label += fmt.Sprintf("  g%d %.0f%%", group, pct)
		}
		ebitenutil.DebugPrintAt(screen, label, int(x), int(y+barHeight+4))
		return
	}

	msg := fmt.Sprintf("%d dots  avg speed %.2f  sim fps %.1f",
		stats.Count, stats.AvgSpeed, stats.FPS)
	ebitenutil.DebugPrintAt(screen, msg, int(x), int(y))
}

// Layout implements ebiten.Game.
func (g *Game) Layout(w, h int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}
