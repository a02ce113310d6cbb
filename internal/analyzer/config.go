package analyzer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/model"
)

// Config carries the tunables of one analysis run. The defaults match the
// stock two-player co-op game variant; other variants can override them
// from a YAML file.
type Config struct {
	// FixedOpponents are participant ids that always belong to the opposing
	// force regardless of roster names.
	FixedOpponents []model.ParticipantID `yaml:"fixedOpponents"`

	// WaveEligible are the opposing participant ids whose spawns feed the
	// wave detector.
	WaveEligible []model.ParticipantID `yaml:"waveEligible"`

	// WaveThreshold is the buffer length a single second of spawn activity
	// must exceed to be recorded as an identified wave.
	WaveThreshold int `yaml:"waveThreshold"`

	// WaveMinSecond excludes early spawns (initial bases, starting armies)
	// from wave detection.
	WaveMinSecond int `yaml:"waveMinSecond"`

	// AOEWindowSeconds bounds how long after an area-effect unit's death a
	// killer-less kill may still be credited to it.
	AOEWindowSeconds int `yaml:"aoeWindowSeconds"`

	// MinKillFraction is the report cutoff: a unit row is kept only when its
	// share of the bucket's kills strictly exceeds this fraction.
	MinKillFraction float64 `yaml:"minKillFraction"`

	// MaxBucketRows caps the number of rows per report bucket.
	MaxBucketRows int `yaml:"maxBucketRows"`
}

// DefaultConfig returns the stock co-op configuration.
func DefaultConfig() Config {
	return Config{
		FixedOpponents:   []model.ParticipantID{3, 4},
		WaveEligible:     []model.ParticipantID{3, 4, 5, 6},
		WaveThreshold:    6,
		WaveMinSecond:    60,
		AOEWindowSeconds: 9,
		MinKillFraction:  0.0,
		MaxBucketRows:    100,
	}
}

// LoadConfig reads a YAML configuration file, overlaying it on the defaults
// so partial files are valid.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.WaveThreshold < 1 {
		return fmt.Errorf("waveThreshold must be positive, got %d", c.WaveThreshold)
	}
	if c.AOEWindowSeconds < 0 {
		return fmt.Errorf("aoeWindowSeconds must be non-negative, got %d", c.AOEWindowSeconds)
	}
	if c.MaxBucketRows < 1 {
		return fmt.Errorf("maxBucketRows must be positive, got %d", c.MaxBucketRows)
	}
	if c.MinKillFraction < 0 || c.MinKillFraction > 1 {
		return fmt.Errorf("minKillFraction must be in [0,1], got %f", c.MinKillFraction)
	}
	return nil
}
