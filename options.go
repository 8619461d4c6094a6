package shapedraw

import "log/slog"

// LineStyle describes the stroke of a curve or a quadrilateral's border. Only
// the width affects the geometry: it determines how close a tap has to be to
// count as a hit.
type LineStyle struct {
	Width float64
}

// AnchorStyle describes the interactive markers drawn at anchors and
// corners.
type AnchorStyle struct {
	Size         Size
	CornerRadius float64
	BorderWidth  float64
}

// DefaultLineStyle and DefaultAnchorStyle are used by editors that aren't
// given a style.
var (
	DefaultLineStyle   = LineStyle{Width: 4}
	DefaultAnchorStyle = AnchorStyle{Size: Sz(15, 15), CornerRadius: 7.5, BorderWidth: 3}
)

// DefaultEdgeSize is the extent, in canvas units, of the touch area of a
// frame's corner and edge handles.
const DefaultEdgeSize = 44.0

// Option configures an editor during creation.
//
// Example:
//
//	e := shapedraw.NewAnchorEditor(
//	    shapedraw.WithLineStyle(shapedraw.LineStyle{Width: 8}),
//	    shapedraw.WithHitTester(shapedraw.RasterHitTester{}),
//	)
type Option func(*config)

type config struct {
	logger       *slog.Logger
	hitTester    HitTester
	hitTolerance float64
	accuracy     float64
	lineStyle    LineStyle
	anchorStyle  AnchorStyle
	edgeSize     float64
}

func newConfig(opts []Option) config {
	cfg := config{
		logger:      Logger(),
		accuracy:    DefaultAccuracy,
		lineStyle:   DefaultLineStyle,
		anchorStyle: DefaultAnchorStyle,
		edgeSize:    DefaultEdgeSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hitTester == nil {
		cfg.hitTester = StrokeHitTester{Accuracy: cfg.accuracy}
	}
	return cfg
}

// tolerance returns the maximum distance between a tap and the stroke's
// center line that still counts as a hit.
func (cfg *config) tolerance() float64 {
	return max(cfg.lineStyle.Width/2, cfg.hitTolerance)
}

// WithLogger sets the logger of the editor, overriding the package logger
// set with [SetLogger]. A nil logger disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l == nil {
			l = newNopLogger()
		}
		cfg.logger = l
	}
}

// WithHitTester sets the strategy used to decide whether a tap lies on the
// curve. The default is a [StrokeHitTester] with the editor's accuracy.
func WithHitTester(h HitTester) Option {
	return func(cfg *config) {
		cfg.hitTester = h
	}
}

// WithHitTolerance sets the minimum hit distance. Taps within
// max(tolerance, line width/2) of the curve hit it, which keeps thin curves
// tappable by fingers.
func WithHitTolerance(tolerance float64) Option {
	return func(cfg *config) {
		cfg.hitTolerance = tolerance
	}
}

// WithAccuracy sets the accuracy of the default hit tester and of oval
// outlines. It must be positive.
func WithAccuracy(accuracy float64) Option {
	return func(cfg *config) {
		cfg.accuracy = accuracy
	}
}

func WithLineStyle(s LineStyle) Option {
	return func(cfg *config) {
		cfg.lineStyle = s
	}
}

func WithAnchorStyle(s AnchorStyle) Option {
	return func(cfg *config) {
		cfg.anchorStyle = s
	}
}

// WithEdgeSize sets the touch extent of frame handles, see [FrameEditor.Begin].
func WithEdgeSize(size float64) Option {
	return func(cfg *config) {
		cfg.edgeSize = size
	}
}
