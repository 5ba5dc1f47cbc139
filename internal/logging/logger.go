package logging

import (
	"io"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const DefaultBufferSize = 200

// levelOrder lists levels from least to most severe.
var levelOrder = []Level{LevelDebug, LevelInfo, LevelWarning, LevelError}

var levelLabels = map[Level]string{
	LevelDebug:   "DEBU",
	LevelInfo:    "INFO",
	LevelWarning: "WARN",
	LevelError:   "ERRO",
}

// Logger writes levelled diagnostics for one invocation. Loggers derived
// with With share the same sink.
type Logger struct {
	sink     *sink
	minLevel Level
	fields   map[string]string
}

type sink struct {
	mu     sync.Mutex
	out    io.Writer
	buffer *LogBuffer
	label  map[Level]lipgloss.Style
	key    lipgloss.Style
}

// NewLogger writes to stderr so that task output on stdout stays clean.
func NewLogger(buffer *LogBuffer, minLevel Level) *Logger {
	return NewLoggerWithOutput(buffer, minLevel, os.Stderr)
}

// NewLoggerWithOutput writes to output, styled only when output is a terminal.
func NewLoggerWithOutput(buffer *LogBuffer, minLevel Level, output io.Writer) *Logger {
	if buffer == nil {
		buffer = NewLogBuffer(DefaultBufferSize)
	}
	if output == nil {
		output = io.Discard
	}
	renderer := lipgloss.NewRenderer(output)
	base := renderer.NewStyle().Bold(true)
	return &Logger{
		sink: &sink{
			out:    output,
			buffer: buffer,
			label: map[Level]lipgloss.Style{
				LevelDebug:   base.Foreground(lipgloss.Color("63")),
				LevelInfo:    base.Foreground(lipgloss.Color("86")),
				LevelWarning: base.Foreground(lipgloss.Color("192")),
				LevelError:   base.Foreground(lipgloss.Color("204")),
			},
			key: renderer.NewStyle().Faint(true),
		},
		minLevel: normalizeLevel(minLevel),
	}
}

func (l *Logger) Buffer() *LogBuffer {
	if l == nil {
		return nil
	}
	return l.sink.buffer
}

// With returns a logger that adds fields to every entry.
func (l *Logger) With(fields map[string]string) *Logger {
	if l == nil {
		return l
	}
	return &Logger{sink: l.sink, minLevel: l.minLevel, fields: mergeFields(l.fields, fields)}
}

func (l *Logger) Debug(message string, fields map[string]string) {
	l.log(LevelDebug, message, fields)
}

func (l *Logger) Info(message string, fields map[string]string) {
	l.log(LevelInfo, message, fields)
}

func (l *Logger) Warn(message string, fields map[string]string) {
	l.log(LevelWarning, message, fields)
}

func (l *Logger) Error(message string, fields map[string]string) {
	l.log(LevelError, message, fields)
}

func (l *Logger) Enabled(level Level) bool {
	if l == nil {
		return false
	}
	return levelRank(level) >= levelRank(l.minLevel)
}

func (l *Logger) log(level Level, message string, fields map[string]string) {
	if !l.Enabled(level) {
		return
	}
	entry := LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
		Context:   mergeFields(l.fields, fields),
	}
	l.sink.write(entry)
}

func (s *sink) write(entry LogEntry) {
	s.buffer.Add(entry)

	line := strings.Builder{}
	line.WriteString(s.label[entry.Level].Render(levelLabels[entry.Level]))
	line.WriteByte(' ')
	line.WriteString(entry.Message)
	keys := make([]string, 0, len(entry.Context))
	for key := range entry.Context {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		line.WriteByte(' ')
		line.WriteString(s.key.Render(key + "="))
		line.WriteString(formatValue(entry.Context[key]))
	}
	line.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.out, line.String())
}

// formatValue quotes values that would not survive a split on spaces.
func formatValue(value string) string {
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		return strconv.Quote(value)
	}
	return value
}

func normalizeLevel(level Level) Level {
	if slices.Contains(levelOrder, level) {
		return level
	}
	return LevelInfo
}

func levelRank(level Level) int {
	return slices.Index(levelOrder, normalizeLevel(level))
}

func ParseLevel(value string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warning", "warn":
		return LevelWarning, true
	case "error":
		return LevelError, true
	default:
		return "", false
	}
}

func mergeFields(base, extra map[string]string) map[string]string {
	if len(base) == 0 && len(extra) == 0 {
		return nil
	}
	merged := make(map[string]string, len(base)+len(extra))
	for key, value := range base {
		merged[key] = value
	}
	for key, value := range extra {
		merged[key] = value
	}
	return merged
}
