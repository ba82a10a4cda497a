package game

import (
	"fmt"
	"log"
	"time"

	"transmute3d/internal/components"
	"transmute3d/internal/level"
	"transmute3d/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Config selects the stage set and window shape for a session.
type Config struct {
	LevelPath string // stage file on disk; empty runs the embedded set
	Watch     bool   // hot-reload LevelPath when it changes
	Width     int32
	Height    int32
}

type Game struct {
	World    *world.World
	Renderer *world.Renderer

	Paused    bool
	DebugMode bool

	cfg      Config
	selected components.ElementTag
	watcher  *level.Watcher
	quit     bool

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(cfg Config) (*Game, error) {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}

	set := level.DefaultSet()
	if cfg.LevelPath != "" {
		loaded, err := level.Load(cfg.LevelPath)
		if err != nil {
			return nil, err
		}
		set = loaded
	}

	g := &Game{
		World:    world.New(set),
		Renderer: world.NewRenderer(),
		cfg:      cfg,
		selected: components.ElementBounce,
	}

	if cfg.Watch && cfg.LevelPath != "" {
		w, err := level.NewWatcher(cfg.LevelPath)
		if err != nil {
			return nil, fmt.Errorf("game: watch %s: %w", cfg.LevelPath, err)
		}
		g.watcher = w
	}

	return g, nil
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(g.cfg.Width, g.cfg.Height, "Transmute3D")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.SetExitKey(0) // Esc pauses instead of quitting
	rl.DisableCursor()

	if g.watcher != nil {
		defer g.watcher.Close()
	}

	for !rl.WindowShouldClose() && !g.quit {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	g.pollWatcher()

	if rl.IsKeyPressed(rl.KeyEscape) {
		g.setPaused(!g.Paused)
	}
	if rl.IsKeyPressed(rl.KeyF3) {
		g.DebugMode = !g.DebugMode
	}

	if !g.Paused {
		// Element selection
		switch {
		case rl.IsKeyPressed(rl.KeyOne):
			g.selected = components.ElementBounce
		case rl.IsKeyPressed(rl.KeyTwo):
			g.selected = components.ElementPhase
		case rl.IsKeyPressed(rl.KeyThree):
			g.selected = components.ElementReflect
		}

		if rl.IsKeyPressed(rl.KeyR) {
			g.World.ResetLevel()
		}
	}

	// The simulation runs every frame. While paused the input snapshot is
	// unlocked, so the avatar coasts but ignores the player.
	g.World.Step(deltaTime, g.gatherInput())

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// gatherInput snapshots this frame's devices into a simulation input. The
// core never polls raylib itself, which keeps it runnable headless.
func (g *Game) gatherInput() components.Input {
	if g.Paused {
		return components.Input{}
	}

	mouse := rl.GetMouseDelta()
	in := components.Input{
		Forward: rl.IsKeyDown(rl.KeyW),
		Back:    rl.IsKeyDown(rl.KeyS),
		Left:    rl.IsKeyDown(rl.KeyA),
		Right:   rl.IsKeyDown(rl.KeyD),
		Jump:    rl.IsKeyPressed(rl.KeySpace),
		LookX:   mouse.X,
		LookY:   mouse.Y,
		Locked:  true,
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		in.Fire = g.selected
	}
	return in
}

func (g *Game) setPaused(paused bool) {
	g.Paused = paused
	if paused {
		rl.EnableCursor()
	} else {
		rl.DisableCursor()
	}
}

// pollWatcher applies a reloaded stage set if the watcher produced one.
func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case set := <-g.watcher.Sets:
		g.World.ApplySet(set)
		log.Printf("game: reloaded stages from %s", g.cfg.LevelPath)
	case err := <-g.watcher.Errors:
		log.Printf("game: stage reload: %v", err)
	default:
	}
}

func (g *Game) Draw() {
	drawStart := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	g.Renderer.ShowColliders = g.DebugMode
	g.Renderer.Draw(g.World)

	g.DrawUI()
	rl.EndDrawing()

	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0
}

func (g *Game) DrawUI() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	stage := g.World.CurrentStage()
	rl.DrawText(fmt.Sprintf("Stage %d/%d: %s", g.World.StageIndex()+1, g.World.StageCount(), stage.Name), 10, 10, 20, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("Deaths: %d", g.World.Deaths), 10, 35, 20, rl.DarkGray)
	rl.DrawText(fmt.Sprintf("Shot: %s (1/2/3 to switch)", g.selected), 10, 60, 20, world.ElementColor(g.selected))
	rl.DrawText("WASD move, Space jump, LMB shoot, R restart, Esc pause", 10, screenH-30, 20, rl.DarkGray)

	g.drawCrosshair(screenW/2, screenH/2)

	// Red wash while the death pirouette plays.
	if g.World.Avatar.IsDying() {
		rl.DrawRectangle(0, 0, screenW, screenH, rl.Fade(rl.Red, 0.25))
	}

	if g.Paused {
		g.drawPauseMenu(screenW, screenH)
	}
	if g.DebugMode {
		g.drawDebugPanel(screenH)
	}
}

func (g *Game) drawCrosshair(cx, cy int32) {
	color := rl.Fade(rl.RayWhite, 0.8)
	size := int32(6)
	if g.World.Avatar.Hovering {
		// Something transmutable sits under the reticle.
		color = rl.Orange
		size = 9
	}
	rl.DrawLine(cx-size, cy, cx+size, cy, color)
	rl.DrawLine(cx, cy-size, cx, cy+size, color)
}

func (g *Game) drawPauseMenu(screenW, screenH int32) {
	rl.DrawRectangle(0, 0, screenW, screenH, rl.Fade(rl.Black, 0.55))

	menuW := float32(240)
	menuX := float32(screenW)/2 - menuW/2
	menuY := float32(screenH)/2 - 100

	title := "PAUSED"
	titleW := rl.MeasureText(title, 30)
	rl.DrawText(title, screenW/2-titleW/2, int32(menuY)-50, 30, rl.RayWhite)

	if gui.Button(rl.NewRectangle(menuX, menuY, menuW, 40), "Resume") {
		g.setPaused(false)
	}
	if gui.Button(rl.NewRectangle(menuX, menuY+50, menuW, 40), "Restart Stage") {
		g.World.ResetLevel()
		g.setPaused(false)
	}
	if gui.Button(rl.NewRectangle(menuX, menuY+100, menuW, 40), "Skip Stage") {
		g.World.EnterStage(g.World.StageIndex() + 1)
		g.setPaused(false)
	}
	if gui.Button(rl.NewRectangle(menuX, menuY+150, menuW, 40), "Quit") {
		g.quit = true
	}
}

func (g *Game) drawDebugPanel(screenH int32) {
	pos := g.World.Player.Transform.Position
	vel := g.World.Avatar.Velocity

	y := screenH - 190
	rl.DrawText(fmt.Sprintf("Pos: (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z), 10, y, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Vel: (%.2f, %.2f, %.2f)", vel.X, vel.Y, vel.Z), 10, y+20, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Grounded: %v  Safe: %v  Surface: %s", g.World.Avatar.CanJump, g.World.Avatar.GroundSafe, g.World.Avatar.SurfaceType), 10, y+40, 16, rl.Yellow)
	rl.DrawText(fmt.Sprintf("Colliders: %d", g.World.Registry.Len()), 10, y+60, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, y+80, 16, rl.Green)
	rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, y+100, 16, rl.Green)
	rl.DrawFPS(10, y+120)
}
