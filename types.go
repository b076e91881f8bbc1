package wirekit

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Severity expresses how the builder reacts to a conflicting registration.
type Severity int

const (
	Ignore Severity = iota // Keep the first rule silently.
	Warn                   // Keep the first rule and log a warning.
	Reject                 // Fail Build with ErrConflictingRule.
)

func (s Severity) String() string {
	switch s {
	case Ignore:
		return "ignore"
	case Warn:
		return "warn"
	case Reject:
		return "reject"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// Format selects the textual representation used by TextCodec.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat resolves "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatJSON, fmt.Errorf("wirekit: unknown text format %q", s)
}

// Option configures a Builder.
type Option func(*options)

type options struct {
	logger     *zap.Logger
	duplicates Severity
	indent     string
}

func defaultOptions() options {
	return options{
		logger:     zap.NewNop(),
		duplicates: Warn,
		indent:     "  ",
	}
}

// WithLogger sets the logger used while assembling the registry. Registry
// dispatch itself never logs.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDuplicatePolicy controls what happens when a second, different rule is
// registered for a class that already has one. The default is Warn.
func WithDuplicatePolicy(s Severity) Option {
	return func(o *options) { o.duplicates = s }
}

// WithTextIndent sets the JSON indentation used by the text codec. An empty
// indent produces compact output.
func WithTextIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}
