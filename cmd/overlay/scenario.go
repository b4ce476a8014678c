package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	overlay "github.com/grindlemire/go-overlay"
)

// Scenario is the TOML description of one placement problem.
type Scenario struct {
	Name      string `toml:"name"`
	Engine    string `toml:"engine"`
	Direction string `toml:"direction"`

	Viewport struct {
		Width  int `toml:"width"`
		Height int `toml:"height"`
	} `toml:"viewport"`

	Origin struct {
		X      int    `toml:"x"`
		Y      int    `toml:"y"`
		Width  int    `toml:"width"`
		Height int    `toml:"height"`
		Name   string `toml:"name"`
	} `toml:"origin"`

	Overlay struct {
		Width     int    `toml:"width"`
		Height    int    `toml:"height"`
		MinWidth  int    `toml:"min_width"`
		MinHeight int    `toml:"min_height"`
		MaxWidth  int    `toml:"max_width"`
		MaxHeight int    `toml:"max_height"`
		Text      string `toml:"text"`
	} `toml:"overlay"`

	Strategy struct {
		ViewportMargin     int   `toml:"viewport_margin"`
		Push               *bool `toml:"push"`
		FlexibleDimensions bool  `toml:"flexible_dimensions"`
		DefaultOffsetX     int   `toml:"default_offset_x"`
		DefaultOffsetY     int   `toml:"default_offset_y"`
	} `toml:"strategy"`

	Positions []overlay.ConnectionPair `toml:"positions"`
}

// loadScenario reads and checks a scenario file.
func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return parseScenario(path, string(data))
}

func parseScenario(name, source string) (*Scenario, error) {
	var sc Scenario
	md, err := toml.Decode(source, &sc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", name, undecoded[0].String())
	}

	if sc.Name == "" {
		sc.Name = name
	}
	if sc.Viewport.Width <= 0 || sc.Viewport.Height <= 0 {
		return nil, fmt.Errorf("%s: viewport must have a positive size", name)
	}
	if sc.Overlay.Width <= 0 || sc.Overlay.Height <= 0 {
		return nil, fmt.Errorf("%s: overlay must have a positive size", name)
	}
	if _, err := parseEngine(sc.Engine); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &sc, nil
}

func parseEngine(s string) (overlay.Engine, error) {
	switch s {
	case "", "auto":
		return overlay.EngineAuto, nil
	case "flexible", "manual":
		return overlay.EngineFlexible, nil
	case "anchor":
		return overlay.EngineAnchor, nil
	}
	return overlay.EngineAuto, fmt.Errorf("unknown engine %q (want auto, flexible or anchor)", s)
}

// optionalValue maps zero to an unset constraint.
func optionalValue(n int) overlay.Value {
	if n <= 0 {
		return overlay.Auto()
	}
	return overlay.Fixed(n)
}
