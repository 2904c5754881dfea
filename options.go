package curvy

// Settings is configuration shared by every tool of a kind. It is written
// only by the toolbar toggle and read by hit-testing.
type Settings struct {
	LockHandles bool
}

// DefaultSettings is the shared cell used by tools created without
// WithSettings. Handles start locked.
var DefaultSettings = &Settings{LockHandles: true}

// Config holds the per-tool drawing and hit-testing constants.
type Config struct {
	// HandleRadius is the hit and marker radius of every handle.
	HandleRadius float64
	// LineSize is the stroke width of tangent lines and handle outlines.
	LineSize float64
	// Segments is the number of wall segments the curve is split into.
	Segments int
}

// Default configuration values.
const (
	DefaultHandleRadius = 10.0
	DefaultLineSize     = 2.0
	DefaultSegments     = 10
)

// DefaultConfig returns the configuration used when no WithConfig option is
// given.
func DefaultConfig() Config {
	return Config{
		HandleRadius: DefaultHandleRadius,
		LineSize:     DefaultLineSize,
		Segments:     DefaultSegments,
	}
}

// ToolOption configures a tool during creation.
//
// Example:
//
//	shared := &curvy.Settings{LockHandles: false}
//	tool := curvy.NewCubicTool(curvy.WithSettings(shared), curvy.WithToolbar(bar))
type ToolOption func(*toolOptions)

type toolOptions struct {
	config       Config
	settings     *Settings
	toolbar      Toolbar
	onModeChange func(from, to Mode)
}

func defaultOptions() toolOptions {
	return toolOptions{
		config:   DefaultConfig(),
		settings: DefaultSettings,
	}
}

// WithConfig overrides the drawing and hit-testing constants. Zero fields
// keep their defaults.
func WithConfig(c Config) ToolOption {
	return func(o *toolOptions) {
		if c.HandleRadius > 0 {
			o.config.HandleRadius = c.HandleRadius
		}
		if c.LineSize > 0 {
			o.config.LineSize = c.LineSize
		}
		if c.Segments > 0 {
			o.config.Segments = c.Segments
		}
	}
}

// WithSettings makes the tool read its lock flag from s instead of
// DefaultSettings. Tools sharing s see each other's toggles.
func WithSettings(s *Settings) ToolOption {
	return func(o *toolOptions) {
		if s != nil {
			o.settings = s
		}
	}
}

// WithToolbar attaches the toolbar that ShowTools and HideTools drive.
func WithToolbar(tb Toolbar) ToolOption {
	return func(o *toolOptions) {
		o.toolbar = tb
	}
}

// WithModeChange registers a callback fired after every mode transition.
func WithModeChange(fn func(from, to Mode)) ToolOption {
	return func(o *toolOptions) {
		o.onModeChange = fn
	}
}
