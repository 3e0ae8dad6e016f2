package terminal

import (
	"unicode/utf8"

	"capybara-sandbox/internal/commands"
	"capybara-sandbox/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 40
	// When windowed, move bar up by this many pixels so it stays visible (avoids being cut off by taskbar/window bounds).
	WindowedBarOffset = 56
	prompt            = "> "
	fontSize          = 20
	padding           = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
)

var (
	// Reused every frame when drawing the terminal bar to avoid per-frame color allocations.
	termBarColor    = rl.NewColor(40, 40, 40, 255)
	termLineColor   = rl.NewColor(80, 80, 80, 255)
	termChatBgColor = rl.NewColor(24, 24, 24, 240)
)

// Terminal is the console bar at the bottom of the screen. It is shown/hidden with ESC.
// While open it captures typing and the character does not move; lines starting with "/"
// run through the command registry. OnToggle, if set, is called whenever the console opens
// or closes so the caller can release pointer lock and suppress input.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	history  []string
	histPos  int
	open     bool
	font     rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	OnToggle func(open bool)
}

// New returns a Terminal that logs lines and runs "/..." through reg. It starts closed.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font used to draw the terminal bar (e.g. same as UI). Zero texture ID = use raylib default.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Update handles ESC (toggle open/closed), and when open: typing, history, backspace, enter.
// Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.SetOpen(!t.open)
	}
	if !t.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		if pasted := rl.GetClipboardText(); pasted != "" {
			t.inputBuf += pasted
		}
	} else {
		for {
			c := rl.GetCharPressed()
			if c == 0 {
				break
			}
			t.inputBuf += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyUp) && t.histPos > 0 {
		t.histPos--
		t.inputBuf = t.history[t.histPos]
	}
	if rl.IsKeyPressed(rl.KeyDown) && t.histPos < len(t.history) {
		t.histPos++
		t.inputBuf = ""
		if t.histPos < len(t.history) {
			t.inputBuf = t.history[t.histPos]
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.inputBuf != "" {
		line := t.inputBuf
		t.inputBuf = ""
		t.history = append(t.history, line)
		t.histPos = len(t.history)
		t.Submit(line)
	}
}

// Submit logs line and runs it when it is a command.
func (t *Terminal) Submit(line string) {
	t.log.Log(line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Log("commands start with /, try /help")
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// SetOpen shows or hides the console. The cursor is shown while it is open.
func (t *Terminal) SetOpen(open bool) {
	if open == t.open {
		return
	}
	t.open = open
	if open {
		rl.EnableCursor()
	}
	if t.OnToggle != nil {
		t.OnToggle(open)
	}
}

// Draw draws the console bar at the bottom when open, and the recent log lines above it.
// Uses GetScreenWidth/GetScreenHeight so the bar matches the 2D overlay coordinate system (correct in fullscreen).
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int(rl.GetScreenWidth())
	screenH := int(rl.GetScreenHeight())
	barY := screenH - BarHeight
	if !rl.IsWindowFullscreen() {
		barY -= WindowedBarOffset
	}

	// Log area above the bar: last maxLinesOnScreen lines
	chatHeight := maxLinesOnScreen * lineHeight
	chatY := barY - chatHeight
	if chatY < 0 {
		chatHeight = barY
		chatY = 0
	}
	if chatHeight > 0 {
		rl.DrawRectangle(0, int32(chatY), int32(screenW), int32(chatHeight), termChatBgColor)
	}
	lines := t.log.Tail(maxLinesOnScreen)
	for i, line := range lines {
		y := chatY + i*lineHeight + padding
		if len(line) > 200 {
			line = line[:197] + "..."
		}
		if t.font.Texture.ID != 0 {
			rl.DrawTextEx(t.font, line, rl.NewVector2(float32(padding), float32(y)), float32(fontSize), 1, rl.LightGray)
		} else {
			rl.DrawText(line, int32(padding), int32(y), int32(fontSize), rl.LightGray)
		}
	}

	// Input bar
	rl.DrawRectangle(0, int32(barY), int32(screenW), int32(BarHeight), termBarColor)
	rl.DrawRectangle(0, int32(barY), int32(screenW), 1, termLineColor)

	text := prompt + t.inputBuf + "|"
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, text, rl.NewVector2(float32(padding), float32(barY+padding)), float32(fontSize), 1, rl.White)
	} else {
		rl.DrawText(text, int32(padding), int32(barY+padding), int32(fontSize), rl.White)
	}
}
