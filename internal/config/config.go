package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// Config holds application configuration.
type Config struct {
	// SchedulePrefix is prepended to the input's base filename to derive
	// the default schedule output name.
	SchedulePrefix string `json:"schedule_prefix"`

	// ScreenplayPrefix derives the default annotated screenplay output name.
	ScreenplayPrefix string `json:"screenplay_prefix"`

	// ShotlistPrefix derives the default schedule output name for the
	// shotlist command variant.
	ShotlistPrefix string `json:"shotlist_prefix"`

	// HistoryDisabled turns off run-history recording. The database is
	// never required by the core pipeline; this only silences it entirely.
	HistoryDisabled bool `json:"history_disabled,omitempty"`

	// PreviewBind is the address the preview server binds to.
	PreviewBind string `json:"preview_bind,omitempty"`

	// PreviewPort is the port the preview server listens on.
	PreviewPort int `json:"preview_port,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from
	// registration. Unknown names are reported at startup.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		SchedulePrefix:   "SCHEDULE_",
		ScreenplayPrefix: "SETUPSCREENPLAY_",
		ShotlistPrefix:   "SHOTLIST_",
		PreviewBind:      "127.0.0.1",
		PreviewPort:      7171,
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.slate.
func Load(baseDir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, "config.json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs. Overlay values take precedence
// for scalars when non-zero; DisabledTools lists are concatenated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.SchedulePrefix = overlay.SchedulePrefix
	if result.SchedulePrefix == "" {
		result.SchedulePrefix = base.SchedulePrefix
	}

	result.ScreenplayPrefix = overlay.ScreenplayPrefix
	if result.ScreenplayPrefix == "" {
		result.ScreenplayPrefix = base.ScreenplayPrefix
	}

	result.ShotlistPrefix = overlay.ShotlistPrefix
	if result.ShotlistPrefix == "" {
		result.ShotlistPrefix = base.ShotlistPrefix
	}

	result.PreviewBind = overlay.PreviewBind
	if result.PreviewBind == "" {
		result.PreviewBind = base.PreviewBind
	}

	result.PreviewPort = overlay.PreviewPort
	if result.PreviewPort == 0 {
		result.PreviewPort = base.PreviewPort
	}

	result.HistoryDisabled = base.HistoryDisabled || overlay.HistoryDisabled

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range append(append([]string{}, a...), b...) {
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
