package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	overlay "github.com/grindlemire/go-overlay"
)

// runOptions are command-line overrides applied on top of a scenario.
type runOptions struct {
	engine    string
	rtl       bool
	anchorCap bool // platform anchor support for the auto engine
}

// Result is the outcome of running one scenario.
type Result struct {
	Scenario  *Scenario
	Engine    overlay.Engine
	Pair      overlay.ConnectionPair
	Placement overlay.Placement
	Origin    overlay.Rect
	PaneCSS   string
	HostCSS   string
	SheetCSS  string
}

// runScenario places the scenario's overlay and lays out the result.
func runScenario(ctx context.Context, sc *Scenario, opts runOptions) (*Result, error) {
	logger := loggerFromContext(ctx).With("scenario", sc.Name)

	name := sc.Engine
	if opts.engine != "" {
		name = opts.engine
	}
	engine, err := parseEngine(name)
	if err != nil {
		return nil, err
	}
	if engine == overlay.EngineAuto {
		engine = overlay.EngineFlexible
		if opts.anchorCap {
			engine = overlay.EngineAnchor
		}
	}

	dir := overlay.ParseDirection(sc.Direction)
	if opts.rtl {
		dir = overlay.RTL
	}

	doc := overlay.NewDocument(sc.Viewport.Width, sc.Viewport.Height,
		overlay.WithAnchorPositioning(engine == overlay.EngineAnchor))

	originRect := overlay.NewRect(sc.Origin.X, sc.Origin.Y, sc.Origin.Width, sc.Origin.Height)
	originEl := overlay.NewElement(overlay.WithID("origin"), overlay.WithRect(originRect))
	origin := overlay.OriginElement(originEl)
	if sc.Origin.Name != "" {
		doc.RegisterAnchor(sc.Origin.Name, originEl)
		origin = overlay.OriginName(sc.Origin.Name)
	}

	pane := overlay.NewElement(
		overlay.WithID("pane"),
		overlay.WithRect(overlay.NewRect(0, 0, sc.Overlay.Width, sc.Overlay.Height)),
		overlay.WithText(sc.Overlay.Text),
	)
	ref := overlay.NewOverlay(pane, overlay.WithOverlayConfig(overlay.OverlayConfig{
		MinWidth:  optionalValue(sc.Overlay.MinWidth),
		MinHeight: optionalValue(sc.Overlay.MinHeight),
		MaxWidth:  optionalValue(sc.Overlay.MaxWidth),
		MaxHeight: optionalValue(sc.Overlay.MaxHeight),
		Direction: dir,
	}))

	s := overlay.NewConnectedStrategy(doc, origin,
		overlay.WithEngine(engine),
		overlay.WithIDGenerator(overlay.SequentialIDs()),
	)
	switch s := s.(type) {
	case *overlay.FlexibleStrategy:
		s.WithViewportMargin(sc.Strategy.ViewportMargin).
			WithFlexibleDimensions(sc.Strategy.FlexibleDimensions).
			WithDefaultOffsetX(sc.Strategy.DefaultOffsetX).
			WithDefaultOffsetY(sc.Strategy.DefaultOffsetY)
		if sc.Strategy.Push != nil {
			s.WithPush(*sc.Strategy.Push)
		}
	case *overlay.AnchorStrategy:
		s.WithDefaultOffsetX(sc.Strategy.DefaultOffsetX).
			WithDefaultOffsetY(sc.Strategy.DefaultOffsetY)
	}
	defer s.Dispose()

	if err := s.SetPositions(sc.Positions...); err != nil {
		return nil, err
	}
	if err := s.Attach(ref); err != nil {
		return nil, err
	}
	logger.Debug("applying", "engine", engine, "direction", dir, "positions", len(sc.Positions))
	if err := s.Apply(); err != nil {
		return nil, err
	}

	placement, err := doc.Layout(pane)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Scenario:  sc,
		Engine:    engine,
		Placement: placement,
		Origin:    originRect,
		PaneCSS:   pane.Style().CSSText(),
		HostCSS:   ref.HostElement().Style().CSSText(),
	}
	for _, sheet := range doc.StyleSheets() {
		res.SheetCSS += sheet.CSSText()
	}

	res.Pair, err = committedPair(s, sc.Positions, placement)
	if err != nil {
		return nil, err
	}
	logger.Debug("placed", "pair", res.Pair, "rect", placement.Rect, "fits", placement.Fits)
	return res, nil
}

// committedPair asks the strategy which pair it committed. The anchor engine
// cannot say, so the pair is recovered from the fallback the layout pass
// chose.
func committedPair(s overlay.ConnectedStrategy, positions []overlay.ConnectionPair, p overlay.Placement) (overlay.ConnectionPair, error) {
	pair, ok, err := s.LastPosition()
	if err == nil {
		if !ok {
			return overlay.ConnectionPair{}, fmt.Errorf("no position was committed")
		}
		return pair, nil
	}
	if !overlay.IsCode(err, overlay.CodeUnsupported) {
		return overlay.ConnectionPair{}, err
	}

	if p.Fallback == "" {
		return positions[0], nil
	}
	i := strings.LastIndexByte(p.Fallback, '-')
	n, convErr := strconv.Atoi(p.Fallback[i+1:])
	if convErr != nil || n < 0 || n >= len(positions) {
		return overlay.ConnectionPair{}, fmt.Errorf("unexpected fallback name %q", p.Fallback)
	}
	return positions[n], nil
}
