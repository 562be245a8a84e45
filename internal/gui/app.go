package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/cartgrid/internal/cartesian"
	"github.com/san-kum/cartgrid/internal/config"
	"github.com/san-kum/cartgrid/internal/logging"
	"github.com/san-kum/cartgrid/internal/paint"
)

var (
	ColHUD    = rl.NewColor(140, 140, 140, 255)
	ColHUDDim = rl.NewColor(110, 110, 110, 200)
)

type App struct {
	Config  *config.Config
	Pan     *cartesian.Pan
	Style   paint.Style
	Font    rl.Font
	ShowHUD bool

	surface *Surface
	reloads <-chan config.Reload
	stats   paint.Stats
	lastErr string
}

// initWindow opens a resizable window of the configured size.
func initWindow(width, height int) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(width), int32(height), "cartgrid")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

// loadFont loads Liberation Mono when the system has it and falls back to
// the raylib default font.
func loadFont() rl.Font {
	const path = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	if !rl.FileExists(path) {
		logging.Debugf("font %s not found, using default", path)
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(path, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func NewApp(cfg *config.Config, reloads <-chan config.Reload) *App {
	app := &App{
		Config:  cfg,
		Pan:     cartesian.NewPan(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())),
		Style:   cfg.PaintStyle(),
		Font:    loadFont(),
		ShowHUD: true,
		reloads: reloads,
	}
	app.surface = NewSurface(app.Font)
	return app
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, reloads <-chan config.Reload) {
	w, h := cfg.Viewport.Width, cfg.Viewport.Height
	if w == 0 || h == 0 {
		w, h = config.DefaultWidth, config.DefaultHeight
	}
	initWindow(w, h)
	defer rl.CloseWindow()
	app := NewApp(cfg, reloads)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	a.pollReload()

	if rl.IsWindowResized() {
		a.Pan.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		a.Pan.ApplyDelta(float64(delta.X), float64(delta.Y))
	}

	step := a.Config.Interval
	if rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyH) {
		a.Pan.ApplyDelta(-step, 0)
	}
	if rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyL) {
		a.Pan.ApplyDelta(step, 0)
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.Pan.ApplyDelta(0, -step)
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.Pan.ApplyDelta(0, step)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.Pan.Reset()
	}
	if rl.IsKeyPressed(rl.KeyV) {
		a.ShowHUD = !a.ShowHUD
	}
}

// pollReload applies at most one pending config reload without blocking
// the frame.
func (a *App) pollReload() {
	if a.reloads == nil {
		return
	}
	select {
	case r, ok := <-a.reloads:
		if !ok {
			a.reloads = nil
			return
		}
		if r.Err != nil {
			logging.Warnf("config reload: %v", r.Err)
			return
		}
		a.Config = r.Config
		a.Style = r.Config.PaintStyle()
		logging.Infof("config reloaded, interval %v", r.Config.Interval)
	default:
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rlColor(a.Style.Background))

	cmds, err := paint.Pass(a.surface, a.Pan.Viewport(), a.Config.Interval, a.Style)
	a.noteErr(err)
	a.stats = paint.Count(cmds)

	if a.ShowHUD {
		a.DrawHUD()
	}
	rl.EndDrawing()
}

// noteErr logs a render error once per distinct message instead of every frame.
func (a *App) noteErr(err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	if msg != "" && msg != a.lastErr {
		logging.Errorf("render: %v", err)
	}
	a.lastErr = msg
}

func (a *App) DrawHUD() {
	h := int(rl.GetScreenHeight())
	off := a.Pan.Offset()
	a.drawText(fmt.Sprintf("offset %+.0f,%+.0f  lines %d  labels %d", off.X, off.Y, a.stats.Grid, a.stats.Labels/2), 12, h-48, 14, ColHUD)
	a.drawText("[DRAG] PAN  [ARROWS] NUDGE  [R] RECENTER  [V] HUD  [Q] QUIT", 12, h-28, 14, ColHUDDim)
	if a.lastErr != "" {
		a.drawText(a.lastErr, 12, 12, 16, rl.Red)
	}
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
