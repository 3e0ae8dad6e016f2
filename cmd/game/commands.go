package main

import (
	"fmt"
	"strconv"
	"strings"

	"capybara-sandbox/internal/commands"
	"capybara-sandbox/internal/debug"
	"capybara-sandbox/internal/engineconfig"
	"capybara-sandbox/internal/logger"
	"capybara-sandbox/internal/sandbox"
)

// app is what console commands act on. setGrid is nil in tests, where there is no scene.
type app struct {
	configPath string
	sb         *sandbox.Sandbox
	log        *logger.Logger
	dbg        *debug.Debug
	setGrid    func(bool)
}

// applyPrefs pushes engine preferences to the overlay and the scene.
func (a *app) applyPrefs(p engineconfig.Prefs) {
	a.dbg.SetShowFPS(p.ShowFPS)
	a.dbg.SetShowMemAlloc(p.ShowMemAlloc)
	a.dbg.SetShowState(p.ShowState)
	if a.setGrid != nil {
		a.setGrid(p.GridVisible)
	}
}

// update applies a modified copy of the current config. A rejected change leaves everything as it was.
func (a *app) update(edit func(*engineconfig.Config) error) error {
	cfg := a.sb.Config()
	if err := edit(&cfg); err != nil {
		return err
	}
	if err := a.sb.Apply(cfg); err != nil {
		return err
	}
	a.applyPrefs(cfg.Prefs)
	return nil
}

// reload applies a config delivered by the file watcher.
func (a *app) reload(cfg engineconfig.Config) {
	if err := a.sb.Apply(cfg); err != nil {
		a.log.Logf("config reload rejected: %v", err)
		return
	}
	a.applyPrefs(cfg.Prefs)
	a.log.Logf("config reloaded from %s", a.configPath)
}

// registerToggle adds a "/name --show|--hide" command that flips one prefs flag.
func registerToggle(reg *commands.Registry, a *app, name, what string, field func(*engineconfig.Prefs) *bool) {
	fs := commands.NewFlagSet(name)
	show := fs.Bool("show", false, "show "+what)
	hide := fs.Bool("hide", false, "hide "+what)
	reg.Register(name, "/"+name+" --show|--hide", fs, func() error {
		if *show == *hide {
			return fmt.Errorf("use exactly one of --show or --hide")
		}
		return a.update(func(c *engineconfig.Config) error {
			*field(&c.Prefs) = *show
			return nil
		})
	})
}

// registerChoice adds a "/name <value>" command that sets one string-valued setting.
func registerChoice(reg *commands.Registry, a *app, name string, choices []string, field func(*engineconfig.Config) *string) {
	fs := commands.NewFlagSet(name)
	usage := "/" + name + " " + strings.Join(choices, "|")
	reg.Register(name, usage, fs, func() error {
		if fs.NArg() != 1 {
			return fmt.Errorf("usage: %s", usage)
		}
		v := strings.ToLower(fs.Arg(0))
		if err := a.update(func(c *engineconfig.Config) error {
			*field(c) = v
			return nil
		}); err != nil {
			return err
		}
		a.log.Logf("%s = %s", name, v)
		return nil
	})
}

// registerCommands wires the console to the sandbox.
func registerCommands(reg *commands.Registry, a *app) {
	setFS := commands.NewFlagSet("set")
	reg.Register("set", "/set <param> <value>", setFS, func() error {
		if setFS.NArg() != 2 {
			return fmt.Errorf("usage: /set <param> <value>")
		}
		v, err := strconv.ParseFloat(setFS.Arg(1), 32)
		if err != nil {
			return fmt.Errorf("bad value %q: %w", setFS.Arg(1), err)
		}
		if err := a.update(func(c *engineconfig.Config) error {
			return c.Set(setFS.Arg(0), float32(v))
		}); err != nil {
			return err
		}
		f, _ := engineconfig.Lookup(setFS.Arg(0))
		a.log.Logf("%s = %g", f.Name, v)
		return nil
	})

	getFS := commands.NewFlagSet("get")
	reg.Register("get", "/get <param>", getFS, func() error {
		if getFS.NArg() != 1 {
			return fmt.Errorf("usage: /get <param>")
		}
		cfg := a.sb.Config()
		v, err := cfg.Get(getFS.Arg(0))
		if err != nil {
			return err
		}
		f, _ := engineconfig.Lookup(getFS.Arg(0))
		a.log.Logf("%s = %g", f.Name, v)
		return nil
	})

	reg.Register("params", "/params", commands.NewFlagSet("params"), func() error {
		cfg := a.sb.Config()
		for _, f := range engineconfig.Fields() {
			v, _ := cfg.Get(f.Name)
			a.log.Logf("%-28s %8g  [%g, %g]", f.Name, v, f.Min, f.Max)
		}
		return nil
	})

	registerChoice(reg, a, "camera", engineconfig.CameraModes, func(c *engineconfig.Config) *string { return &c.Camera.ModeName })
	registerChoice(reg, a, "smoothing", engineconfig.SmoothingModes, func(c *engineconfig.Config) *string { return &c.Camera.SmoothingName })
	registerChoice(reg, a, "idle", engineconfig.IdleFacings, func(c *engineconfig.Config) *string { return &c.Movement.IdleFacingName })

	reg.Register("reset", "/reset", commands.NewFlagSet("reset"), func() error {
		a.sb.Reset()
		a.log.Log("character reset to spawn")
		return nil
	})

	saveFS := commands.NewFlagSet("save")
	savePath := saveFS.String("path", "", "file to write (default: the loaded config file)")
	reg.Register("save", "/save [--path file]", saveFS, func() error {
		path := a.configPath
		if *savePath != "" {
			path = *savePath
		}
		if err := engineconfig.Save(path, a.sb.Config()); err != nil {
			return err
		}
		a.log.Logf("config saved to %s", path)
		return nil
	})

	registerToggle(reg, a, "fps", "the FPS counter", func(p *engineconfig.Prefs) *bool { return &p.ShowFPS })
	registerToggle(reg, a, "mem", "memory usage", func(p *engineconfig.Prefs) *bool { return &p.ShowMemAlloc })
	registerToggle(reg, a, "state", "character state", func(p *engineconfig.Prefs) *bool { return &p.ShowState })
	registerToggle(reg, a, "grid", "the editor grid", func(p *engineconfig.Prefs) *bool { return &p.GridVisible })

	reg.Register("help", "/help", commands.NewFlagSet("help"), func() error {
		for _, name := range reg.Names() {
			usage, _ := reg.Usage(name)
			a.log.Log(usage)
		}
		return nil
	})
}
