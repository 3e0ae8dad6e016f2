package sandbox

import (
	"fmt"

	"capybara-sandbox/internal/camera"
	"capybara-sandbox/internal/character"
	"capybara-sandbox/internal/ease"
	"capybara-sandbox/internal/engineconfig"
	"capybara-sandbox/internal/orientation"
	"capybara-sandbox/internal/physics"

	"github.com/jinzhu/copier"
)

// components is one engineconfig.Config fanned out into the per-component configs.
type components struct {
	camera   camera.Config
	movement character.Config
	orient   orientation.Settings
	body     physics.BodyConfig
	world    physics.Settings
}

// split copies the config sections into component configs and validates each one.
func split(cfg engineconfig.Config) (components, error) {
	var c components
	if err := cfg.Validate(); err != nil {
		return c, err
	}

	if err := copier.Copy(&c.camera, &cfg.Camera); err != nil {
		return c, fmt.Errorf("camera config: %w", err)
	}
	mode, err := camera.ParseMode(cfg.Camera.ModeName)
	if err != nil {
		return c, engineconfig.Invalid("camera.mode", cfg.Camera.ModeName, err.Error())
	}
	smoothing, err := ease.ParseMode(cfg.Camera.SmoothingName)
	if err != nil {
		return c, engineconfig.Invalid("camera.smoothing", cfg.Camera.SmoothingName, err.Error())
	}
	c.camera.Mode = mode
	c.camera.Smoothing = smoothing
	if err := c.camera.Validate(); err != nil {
		return c, err
	}

	if err := copier.Copy(&c.orient, &cfg.Camera); err != nil {
		return c, fmt.Errorf("orientation config: %w", err)
	}
	c.orient.MinPitch = cfg.Camera.MinPolarAngle
	c.orient.MaxPitch = cfg.Camera.MaxPolarAngle

	if err := copier.Copy(&c.movement, &cfg.Movement); err != nil {
		return c, fmt.Errorf("movement config: %w", err)
	}
	idle, err := character.ParseIdleFacing(cfg.Movement.IdleFacingName)
	if err != nil {
		return c, engineconfig.Invalid("movement.idle_facing", cfg.Movement.IdleFacingName, err.Error())
	}
	c.movement.IdleFacing = idle
	if err := c.movement.Validate(); err != nil {
		return c, err
	}

	if err := copier.Copy(&c.body, &cfg.Physics); err != nil {
		return c, fmt.Errorf("physics config: %w", err)
	}
	c.world = physics.DefaultSettings()
	if err := copier.Copy(&c.world, &cfg.Physics); err != nil {
		return c, fmt.Errorf("physics config: %w", err)
	}
	return c, nil
}
