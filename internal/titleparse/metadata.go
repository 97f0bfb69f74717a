package titleparse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput marks inputs the parser cannot work with, such as an empty
// title. Parse itself never returns it; callers that want to reject such
// input up front use Input.Validate.
var ErrInvalidInput = errors.New("invalid input")

// Method identifies which heuristic produced a result.
type Method string

// Parse methods in reporting order.
const (
	MethodQuoted           Method = "quoted"
	MethodChannelFallback  Method = "fallback:channel"
	MethodChannelMatch     Method = "adjusted:channel-match"
	MethodFilteredNonMusic Method = "filtered:non-music"
	MethodUnknown          Method = "unknown"

	patternMethodPrefix = "pattern:"
)

// PatternMethod returns the method reported for a split on the named delimiter.
func PatternMethod(delimiter string) Method {
	return Method(patternMethodPrefix + delimiter)
}

// IsPattern reports whether m is one of the pattern:<delimiter> methods.
func (m Method) IsPattern() bool {
	return strings.HasPrefix(string(m), patternMethodPrefix) && len(m) > len(patternMethodPrefix)
}

// Confidence is the trust level attached to every result.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ConfidenceFor returns the confidence every result produced by m carries.
func ConfidenceFor(m Method) Confidence {
	switch {
	case m == MethodQuoted:
		return ConfidenceHigh
	case m.IsPattern(), m == MethodChannelMatch:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

// Input is the raw title/channel pair handed to the parser.
type Input struct {
	Title   string `json:"title"`
	Channel string `json:"channel"`
}

// Validate reports whether the input carries a usable title.
func (in Input) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is empty", ErrInvalidInput)
	}
	return nil
}

// Metadata is the result of parsing one title.
type Metadata struct {
	Artist          string     `json:"artist"`
	Featuring       *string    `json:"featuring"`
	Track           string     `json:"track"`
	OriginalTitle   string     `json:"original_title"`
	OriginalChannel string     `json:"original_channel"`
	Parsed          bool       `json:"parsed"`
	Method          Method     `json:"parse_method"`
	Confidence      Confidence `json:"parse_confidence"`
}

// FeaturingText returns the featuring clause or an empty string.
func (m Metadata) FeaturingText() string {
	if m.Featuring == nil {
		return ""
	}
	return *m.Featuring
}
