package config

import (
	"os"
	"strconv"
	"sync"
)

// FeatureFlags manages runtime feature toggles. Each flag can be
// overridden through the environment (FEATURE_SMART_MATCH=false) and
// flipped at runtime without a restart.
type FeatureFlags struct {
	mu       sync.RWMutex
	features map[string]bool
}

// Predefined feature flag names.
const (
	// FeatureSmartMatch - AI-backed tutor recommendation.
	FeatureSmartMatch = "ai.smart_match"

	// FeatureBioGeneration - AI-backed tutor bio drafting.
	FeatureBioGeneration = "ai.bio_generation"

	// FeatureRequestBoard - public student request board.
	FeatureRequestBoard = "board.requests"

	// FeatureChat - direct chat between students and tutors.
	FeatureChat = "chat.sessions"
)

// defaultFlags maps each flag to its default state and env override key.
var defaultFlags = map[string]struct {
	enabled bool
	envKey  string
}{
	FeatureSmartMatch:    {true, "FEATURE_SMART_MATCH"},
	FeatureBioGeneration: {true, "FEATURE_BIO_GENERATION"},
	FeatureRequestBoard:  {true, "FEATURE_REQUEST_BOARD"},
	FeatureChat:          {true, "FEATURE_CHAT"},
}

// LoadFeatureFlags builds the flag set from defaults and env overrides.
func LoadFeatureFlags() *FeatureFlags {
	ff := &FeatureFlags{features: make(map[string]bool, len(defaultFlags))}
	for name, def := range defaultFlags {
		enabled := def.enabled
		if val := os.Getenv(def.envKey); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				enabled = b
			}
		}
		ff.features[name] = enabled
	}
	return ff
}

// IsEnabled reports whether a flag is on. Unknown flags are off.
func (f *FeatureFlags) IsEnabled(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.features[name]
}

// Set flips a flag at runtime.
func (f *FeatureFlags) Set(name string, enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.features[name] = enabled
}

// Snapshot returns a copy of all flags, for diagnostics endpoints.
func (f *FeatureFlags) Snapshot() map[string]bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(map[string]bool, len(f.features))
	for k, v := range f.features {
		out[k] = v
	}
	return out
}
