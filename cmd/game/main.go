package main

import (
	"flag"
	"fmt"
	"os"

	"capybara-sandbox/internal/commands"
	"capybara-sandbox/internal/course"
	"capybara-sandbox/internal/debug"
	"capybara-sandbox/internal/engineconfig"
	"capybara-sandbox/internal/fonts"
	"capybara-sandbox/internal/graphics"
	"capybara-sandbox/internal/logger"
	"capybara-sandbox/internal/primitives"
	"capybara-sandbox/internal/sandbox"
	"capybara-sandbox/internal/scene"
	"capybara-sandbox/internal/terminal"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", engineconfig.DefaultPath, "sandbox config file (YAML)")
	coursePath := flag.String("course", "", "course file (YAML); empty uses the built-in course")
	seed := flag.Int64("seed", 0, "scatter extra crates with this noise seed")
	windowed := flag.Bool("windowed", false, "run in a window instead of fullscreen")
	debugLog := flag.Bool("debug", false, "log grounded transitions")
	flag.Parse()

	log := logger.New(logger.LogFilePath)

	cfg, err := engineconfig.Load(*configPath)
	if err != nil {
		log.Logf("config: %v; using defaults", err)
		cfg = engineconfig.Default()
	}
	crs, err := loadCourse(*coursePath, *seed)
	if err != nil {
		log.Logf("course: %v; using the built-in course", err)
		crs, _ = loadCourse("", *seed)
	}

	dev := graphics.NewDevice()
	sb, err := sandbox.New(sandbox.Options{
		Config: cfg,
		Course: crs,
		Device: dev,
		Log:    log,
		Debug:  *debugLog,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reg := primitives.NewRegistry()
	scn := scene.New(reg)
	scn.SetCourse(sb.Course(), sb.Obstacles())
	dbg := debug.New()

	a := &app{configPath: *configPath, sb: sb, log: log, dbg: dbg, setGrid: scn.SetGridVisible}
	a.applyPrefs(cfg.Prefs)
	cmds := commands.NewRegistry()
	registerCommands(cmds, a)

	term := terminal.New(log, cmds)
	term.OnToggle = func(open bool) {
		sb.Sampler().SetSuppressed(open)
		if open {
			dev.Unlock()
		}
	}

	watcher, err := engineconfig.Watch(*configPath)
	if err != nil {
		log.Logf("config hot reload disabled: %v", err)
	} else {
		defer watcher.Close()
	}

	var frame sandbox.FrameResult
	fontLoaded := false
	update := func(dt float32) {
		if watcher != nil {
			drainWatcher(watcher, a)
		}
		term.Update()
		dev.Update(!term.IsOpen())
		frame = sb.Frame(dt)
	}
	draw := func() {
		if !fontLoaded {
			fontLoaded = true
			loadFont(cfg.Prefs.Font, log, term, dbg)
		}
		scn.Draw(frame.Camera, frame.Position, frame.Facing)
		term.Draw()
		dbg.Draw(frame)
	}

	graphics.Run(graphics.Window{
		Title:      "Capybara Sandbox",
		Width:      1280,
		Height:     720,
		Fullscreen: cfg.Prefs.Fullscreen && !*windowed,
		TargetFPS:  60,
		Background: scn.Sky(),
	}, update, draw)

	reg.Unload()
}

// loadCourse reads the course file, or the built-in course when path is empty.
// A non-zero seed adds a noise scatter, with default options unless the course has its own.
func loadCourse(path string, seed int64) (course.Course, error) {
	crs := course.Default()
	if path != "" {
		var err error
		if crs, err = course.Load(path); err != nil {
			return course.Course{}, err
		}
	}
	if seed != 0 {
		if crs.Scatter == nil {
			opts := course.DefaultScatterOptions()
			crs.Scatter = &opts
		}
		crs.Scatter.Seed = seed
	}
	return crs, nil
}

// drainWatcher applies pending hot reloads without blocking the frame.
func drainWatcher(w *engineconfig.Watcher, a *app) {
	for {
		select {
		case cfg, ok := <-w.Configs:
			if !ok {
				return
			}
			a.reload(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			a.log.Logf("config reload: %v", err)
		default:
			return
		}
	}
}

// loadFont loads the prefs font for the console and overlay. Needs the GL context.
func loadFont(name string, log *logger.Logger, term *terminal.Terminal, dbg *debug.Debug) {
	if name == "" {
		return
	}
	path, err := fonts.Resolve(name)
	if err != nil {
		log.Logf("font %q not found, using default", name)
		return
	}
	font := rl.LoadFont(path)
	if font.Texture.ID == 0 {
		log.Logf("font %s failed to load", path)
		return
	}
	term.SetFont(font)
	dbg.SetFont(font)
}
