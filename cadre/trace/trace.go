package trace

import "fmt"

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing.
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions records how every cadre was formed.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// ParseTraceLevel parses a level name; the empty string means TraceLevelNone.
func ParseTraceLevel(level string) (TraceLevel, error) {
	if !IsValidTraceLevel(level) {
		return "", fmt.Errorf("unknown trace level %q; valid: none, decisions", level)
	}
	if level == "" {
		return TraceLevelNone, nil
	}
	return TraceLevel(level), nil
}

// GenerationTrace collects one record per emitted cadre.
type GenerationTrace struct {
	Level  TraceLevel    `yaml:"level" json:"level"`
	Cadres []CadreRecord `yaml:"cadres" json:"cadres"`
}

// NewGenerationTrace creates a GenerationTrace ready for recording.
func NewGenerationTrace(level TraceLevel) *GenerationTrace {
	return &GenerationTrace{
		Level:  level,
		Cadres: make([]CadreRecord, 0),
	}
}

// Enabled reports whether records are kept. Safe on a nil trace.
func (gt *GenerationTrace) Enabled() bool {
	return gt != nil && gt.Level == TraceLevelDecisions
}

// Record appends a cadre record. It is a no-op when tracing is disabled.
func (gt *GenerationTrace) Record(record CadreRecord) {
	if !gt.Enabled() {
		return
	}
	gt.Cadres = append(gt.Cadres, record)
}
