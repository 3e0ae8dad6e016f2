package debug

import (
	"fmt"
	"runtime"

	"capybara-sandbox/internal/sandbox"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fpsFontSize   = 20
	fpsPadding    = 12
	fpsLineHeight = fpsFontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime overlays: FPS, heap size and character state. All are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowState    bool
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastState    []string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetShowFPS sets whether the FPS counter is drawn (top-right, green).
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetShowMemAlloc sets whether the memory allocation counter is drawn (top-right, under FPS).
func (d *Debug) SetShowMemAlloc(show bool) {
	d.ShowMemAlloc = show
}

// SetShowState sets whether the character state panel is drawn (top-left).
func (d *Debug) SetShowState(show bool) {
	d.ShowState = show
}

// SetFont sets the font used for overlays. Zero texture ID = use raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// StateLines formats a frame result for the state panel.
func StateLines(r sandbox.FrameResult) []string {
	speed := math32.Sqrt(r.Velocity.X()*r.Velocity.X() + r.Velocity.Z()*r.Velocity.Z())
	state := "airborne"
	if r.Grounded {
		state = "grounded"
	}
	return []string{
		fmt.Sprintf("State: %s", state),
		fmt.Sprintf("Pos: %.2f %.2f %.2f", r.Position.X(), r.Position.Y(), r.Position.Z()),
		fmt.Sprintf("Speed: %.2f  Vy: %.2f", speed, r.Velocity.Y()),
		fmt.Sprintf("Yaw: %.2f  Pitch: %.2f  Facing: %.2f", r.Yaw, r.Pitch, r.Facing),
	}
}

// Draw renders any enabled overlays. Call after the scene and console in the draw loop.
// Text is only recomputed every updateInterval frames to limit allocations.
func (d *Debug) Draw(r sandbox.FrameResult) {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(fpsPadding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.lastFpsText, screenW, y)
		y += fpsLineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		d.drawRight(d.lastMemText, screenW, y)
	}

	if d.ShowState {
		// State changes every frame; refresh it more often than the counters.
		if d.lastState == nil || d.frameCount%5 == 0 {
			d.lastState = StateLines(r)
		}
		for i, line := range d.lastState {
			d.drawText(line, float32(fpsPadding), float32(fpsPadding+i*fpsLineHeight), rl.Yellow)
		}
	}
}

func (d *Debug) drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	var w float32
	if d.font.Texture.ID != 0 {
		w = rl.MeasureTextEx(d.font, text, fpsFontSize, 1).X
	} else {
		w = float32(rl.MeasureText(text, fpsFontSize))
	}
	d.drawText(text, float32(screenW)-w-fpsPadding, float32(y), rl.Green)
}

func (d *Debug) drawText(text string, x, y float32, c rl.Color) {
	if d.font.Texture.ID != 0 {
		rl.DrawTextEx(d.font, text, rl.NewVector2(x, y), fpsFontSize, 1, c)
		return
	}
	rl.DrawText(text, int32(x), int32(y), fpsFontSize, c)
}
