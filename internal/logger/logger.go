package logger

import (
	"io"
	"log/slog"
	"strings"
)

// MCP log levels that slog does not define natively.
const (
	LevelNotice    = slog.Level(2)  // between Info and Warn
	LevelCritical  = slog.Level(10) // between Error and Alert
	LevelAlert     = slog.Level(12)
	LevelEmergency = slog.Level(16)
)

// ValidLogLevels lists the accepted level names (RFC 5424 names used by MCP, plus "warn").
var ValidLogLevels = []string{"debug", "info", "notice", "warn", "warning", "error", "critical", "alert", "emergency"}

// ValidLogFormats lists the accepted output formats.
var ValidLogFormats = []string{"text", "json"}

var levelsByName = map[string]slog.Level{
	"debug":     slog.LevelDebug,
	"info":      slog.LevelInfo,
	"notice":    LevelNotice,
	"warn":      slog.LevelWarn,
	"warning":   slog.LevelWarn,
	"error":     slog.LevelError,
	"critical":  LevelCritical,
	"alert":     LevelAlert,
	"emergency": LevelEmergency,
}

var levelLabels = map[slog.Level]string{
	slog.LevelDebug: "DEBUG",
	slog.LevelInfo:  "INFO",
	LevelNotice:     "NOTICE",
	slog.LevelWarn:  "WARN",
	slog.LevelError: "ERROR",
	LevelCritical:   "CRITICAL",
	LevelAlert:      "ALERT",
	LevelEmergency:  "EMERGENCY",
}

// Service is a slog.Logger whose level can be changed while the server runs.
type Service struct {
	*slog.Logger
	level *slog.LevelVar
}

// New creates a logging service writing to w in the given format ("text" or "json").
// Unknown levels fall back to info, unknown formats to text.
func New(level, format string, w io.Writer) *Service {
	levelVar := &slog.LevelVar{}
	levelVar.Set(parseLevel(level))

	opts := &slog.HandlerOptions{
		Level:       levelVar,
		ReplaceAttr: replaceAttr,
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return &Service{
		Logger: slog.New(handler),
		level:  levelVar,
	}
}

// Discard returns a service that drops every record. Handy in tests.
func Discard() *Service {
	return New("emergency", "text", io.Discard)
}

// SetLevel changes the minimum level of emitted records.
func (s *Service) SetLevel(level string) {
	s.level.Set(parseLevel(level))
}

// Level reports the current minimum level.
func (s *Service) Level() slog.Level {
	return s.level.Level()
}

func parseLevel(level string) slog.Level {
	if l, ok := levelsByName[strings.ToLower(level)]; ok {
		return l
	}
	return slog.LevelInfo
}

// replaceAttr prints the custom MCP levels by name instead of "INFO+2" style offsets.
func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	level, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	if label, ok := levelLabels[level]; ok {
		a.Value = slog.StringValue(label)
	}
	return a
}
