package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens.
type Window struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
	TargetFPS  int32
	Background rl.Color
}

// maxFrameTime caps dt so a stall (window drag, breakpoint) does not become one huge step.
const maxFrameTime = 0.1

// Run opens the window and runs the main loop. Each frame it calls update with the frame
// time in seconds, then clears the screen to the background color and calls draw.
// ESC is left to the console; close via the window button.
func Run(win Window, update func(dt float32), draw func()) {
	if win.Fullscreen {
		rl.SetConfigFlags(rl.FlagFullscreenMode | rl.FlagMsaa4xHint)
		rl.InitWindow(int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0)), win.Title)
	} else {
		rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
		rl.InitWindow(win.Width, win.Height, win.Title)
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	if win.TargetFPS > 0 {
		rl.SetTargetFPS(win.TargetFPS)
	}

	for !rl.WindowShouldClose() {
		dt := rl.GetFrameTime()
		if dt > maxFrameTime {
			dt = maxFrameTime
		}
		update(dt)

		rl.BeginDrawing()
		rl.ClearBackground(win.Background)
		draw()
		rl.EndDrawing()
	}
}
