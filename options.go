package odge

// Option configures a widget at construction.
type Option func(*options)

// options holds all widget configuration via the extensions map.
// All options use the unified OptKey system for type safety.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptGlow = odge.NewOptKey("glow", false)
//
//	// Set options
//	btn := NewGlowButton("Start", style, odge.WithOpt(OptGlow, true))
//
//	// Read in widget implementation
//	glow := odge.ApplyAndGet(opts, OptGlow)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name (useful for debugging).
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// --- Core Options ---
var (
	OptName = NewOptKey("name", "")
)

// --- Menu Options ---
var (
	OptWrapAround = NewOptKey("wrapAround", true)
	OptPageSize   = NewOptKey("pageSize", DefaultPageSize)
	OptHeading    = NewOptKey("heading", "")
	OptColumns    = NewOptKey("columns", 1)
)

// --- PopUp Options ---
var (
	OptLifetime = NewOptKey("lifetime", DefaultLifetime)
	OptFade     = NewOptKey("fade", true)
	OptMotion   = NewOptKey("motion", MotionStatic)
)

// =============================================================================
// Convenience Option Functions (wrap WithOpt for common cases)
// =============================================================================

// WithName sets the component name used by container Find and Has.
func WithName(name string) Option { return WithOpt(OptName, name) }

// WithWrapAround sets whether navigation wraps from the last item to the
// first. Menus wrap by default; wheels do not.
func WithWrapAround(wrap bool) Option { return WithOpt(OptWrapAround, wrap) }

// WithPageSize sets how many items a list menu skips on left/right.
func WithPageSize(n int) Option { return WithOpt(OptPageSize, n) }

// WithHeading sets the heading text of a menu or dialog.
func WithHeading(text string) Option { return WithOpt(OptHeading, text) }

// WithColumns sets the column count of a gallery menu.
func WithColumns(n int) Option { return WithOpt(OptColumns, n) }

// WithLifetime sets a popup's lifetime in frames.
func WithLifetime(frames int) Option { return WithOpt(OptLifetime, frames) }

// WithFade enables or disables fading out near the end of a popup's life.
func WithFade(fade bool) Option { return WithOpt(OptFade, fade) }

// WithMotion sets how pop text moves while alive.
func WithMotion(m Motion) Option { return WithOpt(OptMotion, m) }

// nameOr returns the name option, or def when unset.
func nameOr(o options, def string) string {
	if HasOpt(o, OptName) {
		return GetOpt(o, OptName)
	}
	return def
}
