package titleparse

import (
	"context"
	"log/slog"
	"strings"

	"tubetag/internal/logging"
)

// Parser runs the title pipeline. The zero value is not usable; call New.
// A Parser holds no mutable state and may be shared across goroutines.
type Parser struct {
	logger *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger attaches a logger that receives debug-level decision records.
// Logging never influences the result.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New constructs a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = logging.NewComponentLogger(p.logger, "titleparse")
	return p
}

var defaultParser = New()

// Parse converts a video title and channel name into music metadata using a
// shared default Parser.
func Parse(title, channel string) Metadata {
	return defaultParser.Parse(Input{Title: title, Channel: channel})
}

// Parse converts in into music metadata. It always returns a record; an
// unusable title yields Parsed=false with MethodUnknown.
func (p *Parser) Parse(in Input) Metadata {
	return p.ParseContext(context.Background(), in)
}

// ParseContext is Parse with a context whose logging fields (run id, input
// line) are attached to decision logs. The context never affects the result.
func (p *Parser) ParseContext(ctx context.Context, in Input) Metadata {
	logger := logging.WithContext(ctx, p.logger)
	channel := StripEmoji(in.Channel)
	normalized := Normalize(in.Title)

	m := Metadata{
		Track:           normalized,
		OriginalTitle:   in.Title,
		OriginalChannel: channel,
		Method:          MethodUnknown,
		Confidence:      ConfidenceFor(MethodUnknown),
	}
	if normalized == "" {
		logDecision(ctx, logger, m, "title empty after normalization")
		return m
	}

	reason := "no stage matched"
	for _, st := range identificationStages {
		a := st.run(normalized, channel)
		if !a.matched() {
			continue
		}
		m.Artist = a.artist
		m.Track = a.track
		m.Parsed = true
		m.Method = a.method
		m.Confidence = ConfidenceFor(a.method)
		reason = st.name + " stage matched"
		break
	}

	if applyChannelOverride(&m) {
		reason = "channel name found in title"
	}
	if applyFeaturing(&m) {
		logger.Debug("featuring clause extracted", logging.String("featuring", m.FeaturingText()))
	}
	if applyNonMusicFilter(&m, normalized) {
		reason = "long title with non-music keywords"
	}

	m.Artist = strings.TrimSpace(m.Artist)
	m.Track = strings.TrimSpace(m.Track)

	logDecision(ctx, logger, m, reason)
	return m
}

func logDecision(ctx context.Context, logger *slog.Logger, m Metadata, reason string) {
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := logging.DecisionAttrs("title_parse", string(m.Method), reason)
	attrs = append(attrs,
		logging.String("title", m.OriginalTitle),
		logging.String("artist", m.Artist),
		logging.String("track", m.Track),
		logging.String("confidence", string(m.Confidence)),
		logging.Bool("parsed", m.Parsed),
	)
	logger.Debug("title parse decision", logging.Args(attrs...)...)
}
