package overlay

import "github.com/grindlemire/go-overlay/internal/debug"

// PositionStrategy is the lifecycle contract shared by every engine.
//
// A strategy is bound to exactly one overlay for its lifetime. Apply may be
// called unconditionally from resize and scroll handlers: it is a no-op when
// the strategy is detached from a paintable platform or disposed. Strategies
// are not safe for concurrent use.
type PositionStrategy interface {
	// Attach binds the strategy to ref. Attaching to the same ref again is a
	// no-op; attaching to a different ref fails with CodeAlreadyAttached.
	Attach(ref OverlayRef) error

	// Apply recomputes and writes the placement.
	Apply() error

	// Detach suspends the strategy. The binding and configuration survive and
	// the next Apply is treated as the first one.
	Detach()

	// Dispose removes everything the strategy wrote and releases the overlay.
	// It is terminal and safe to call more than once.
	Dispose()
}

// ConnectedStrategy positions an overlay relative to an origin using an
// ordered list of preferred connection pairs.
type ConnectedStrategy interface {
	PositionStrategy

	// SetPositions replaces the preferred positions, most desirable first.
	SetPositions(positions ...ConnectionPair) error

	// SetOrigin replaces the origin.
	SetOrigin(origin Origin) error

	// ReapplyLastPosition re-applies the committed position without choosing
	// again. Engines that cannot know the committed position return
	// CodeUnsupported.
	ReapplyLastPosition() error

	// LastPosition returns the committed position, if any. Engines that
	// cannot know it return CodeUnsupported.
	LastPosition() (ConnectionPair, bool, error)

	// Err returns the current configuration error, if any.
	Err() error
}

// Engine selects the placement mechanism behind a ConnectedStrategy.
type Engine uint8

const (
	// EngineAuto picks EngineAnchor when the platform supports native anchor
	// positioning and EngineFlexible otherwise.
	EngineAuto Engine = iota
	// EngineFlexible measures in Go and writes explicit coordinates.
	EngineFlexible
	// EngineAnchor writes anchor declarations and a fallback chain and lets
	// the platform's layout pass choose.
	EngineAnchor
)

// String returns "auto", "flexible" or "anchor".
func (e Engine) String() string {
	switch e {
	case EngineFlexible:
		return "flexible"
	case EngineAnchor:
		return "anchor"
	default:
		return "auto"
	}
}

type strategyOptions struct {
	engine Engine
	ids    IDGenerator
}

// StrategyOption configures NewConnectedStrategy.
type StrategyOption func(*strategyOptions)

// WithEngine forces an engine instead of detecting one.
func WithEngine(e Engine) StrategyOption {
	return func(o *strategyOptions) {
		o.engine = e
	}
}

// WithIDGenerator sets the generator used to name fallback rule sets.
func WithIDGenerator(gen IDGenerator) StrategyOption {
	return func(o *strategyOptions) {
		o.ids = gen
	}
}

// NewConnectedStrategy returns a strategy for origin, choosing the engine
// once from the platform's capabilities.
func NewConnectedStrategy(p Platform, origin Origin, opts ...StrategyOption) ConnectedStrategy {
	o := strategyOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	engine := o.engine
	if engine == EngineAuto {
		engine = EngineFlexible
		if p.SupportsAnchorPositioning() {
			engine = EngineAnchor
		}
	}
	debug.Event("strategy created", "engine", engine, "origin", origin)

	if engine == EngineAnchor {
		s := NewAnchorStrategy(p, origin)
		if o.ids != nil {
			s.WithIDGenerator(o.ids)
		}
		return s
	}
	return NewFlexibleStrategy(p, origin)
}

// strategyCore holds the state every engine shares.
type strategyCore struct {
	platform Platform

	ref  OverlayRef
	pane *Element
	host *Element

	origin    Origin
	positions []ConnectionPair

	// Configuration errors from the last setter of each kind.
	positionsErr error
	originErr    error

	disposed bool
	// stale marks that configuration changed since the last apply.
	stale bool

	// hostClass is added to the host element while attached.
	hostClass string
}

// Err returns the first configuration error, if any.
func (c *strategyCore) Err() error {
	if c.positionsErr != nil {
		return c.positionsErr
	}
	return c.originErr
}

// recordErr stores err under slot and logs it at the call that caused it.
func (c *strategyCore) recordErr(slot *error, err error) error {
	*slot = err
	if err != nil {
		debug.Log("configuration error: %v", err)
	}
	c.stale = true
	return err
}

// attach performs the shared binding checks. validate runs the engine's
// full configuration validation.
func (c *strategyCore) attach(ref OverlayRef, validate func() error) error {
	if c.disposed {
		return newError(CodeDisposed, "strategy has been disposed")
	}
	if c.ref != nil && c.ref != ref {
		return newError(CodeAlreadyAttached, "strategy is already attached to an overlay")
	}
	if err := validate(); err != nil {
		return err
	}
	if c.ref == ref {
		return nil
	}

	c.ref = ref
	c.pane = ref.OverlayElement()
	c.host = ref.HostElement()
	if c.hostClass != "" {
		c.host.AddClass(c.hostClass)
	}
	c.stale = true
	debug.Event("strategy attached", "origin", c.origin, "positions", len(c.positions))
	return nil
}

// active reports whether Apply should do any work.
func (c *strategyCore) active() bool {
	return !c.disposed && c.ref != nil && c.platform.Interactive()
}

// direction reads the writing direction from the overlay now. It is never
// cached because the direction may change after attach.
func (c *strategyCore) direction() Direction {
	return resolveDirection(c.ref.Direction(), c.pane.Text())
}

// release drops the overlay binding. Used by Dispose.
func (c *strategyCore) release() {
	if c.host != nil && c.hostClass != "" {
		c.host.RemoveClass(c.hostClass)
	}
	c.ref, c.pane, c.host = nil, nil, nil
	c.disposed = true
}
