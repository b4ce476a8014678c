package overlay

// OverlayConfig carries the size constraints and writing direction of an
// overlay. Percent values resolve against the viewport.
type OverlayConfig struct {
	Width, Height       Value
	MinWidth, MinHeight Value
	MaxWidth, MaxHeight Value
	Direction           Direction
}

// OverlayRef is the handle of an opened overlay as the strategies see it.
//
// HostElement is the bounding box wrapping the pane; OverlayElement is the
// pane itself, the element that gets positioned.
type OverlayRef interface {
	HostElement() *Element
	OverlayElement() *Element
	Config() OverlayConfig
	Direction() Direction
	SetDirection(Direction)
}

var _ OverlayRef = (*Overlay)(nil)

// Overlay is a minimal OverlayRef for hosts that do not bring their own.
type Overlay struct {
	host   *Element
	pane   *Element
	config OverlayConfig
}

// OverlayOption configures an Overlay.
type OverlayOption func(*Overlay)

// WithOverlayConfig sets the size constraints and direction.
func WithOverlayConfig(c OverlayConfig) OverlayOption {
	return func(o *Overlay) {
		o.config = c
	}
}

// WithDirection sets the writing direction.
func WithDirection(d Direction) OverlayOption {
	return func(o *Overlay) {
		o.config.Direction = d
	}
}

// WithHost uses host as the bounding box instead of a fresh element.
func WithHost(host *Element) OverlayOption {
	return func(o *Overlay) {
		o.host = host
	}
}

// NewOverlay wraps pane in a handle. Without WithHost a host element is
// created whose measurement follows the pane.
func NewOverlay(pane *Element, opts ...OverlayOption) *Overlay {
	o := &Overlay{pane: pane}
	for _, opt := range opts {
		opt(o)
	}
	if o.host == nil {
		o.host = NewElement(WithMeasure(pane.BoundingRect))
	}
	return o
}

// HostElement implements OverlayRef.
func (o *Overlay) HostElement() *Element {
	return o.host
}

// OverlayElement implements OverlayRef.
func (o *Overlay) OverlayElement() *Element {
	return o.pane
}

// Config implements OverlayRef.
func (o *Overlay) Config() OverlayConfig {
	return o.config
}

// Direction implements OverlayRef.
func (o *Overlay) Direction() Direction {
	return o.config.Direction
}

// SetDirection implements OverlayRef. Strategies pick the change up on the
// next apply.
func (o *Overlay) SetDirection(d Direction) {
	o.config.Direction = d
}
