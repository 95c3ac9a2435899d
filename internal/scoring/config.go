package scoring

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weight keys understood by the scoring table.
const (
	KeyPoints       = "pts"
	KeyRebounds     = "reb"
	KeyAssists      = "ast"
	KeySteals       = "stl"
	KeyBlocks       = "blk"
	KeyTurnovers    = "to"
	KeyThreesMade   = "fg3m"
	KeyFouledOut    = "ff"
	KeyDoubleDouble = "bonus_dd"
	KeyTripleDouble = "bonus_td"
	KeyPoints40     = "bonus_40p"
	KeyPoints50     = "bonus_50p"
	KeyAssists15    = "bonus_15a"
	KeyRebounds20   = "bonus_20r"
)

// Config maps scoring keys to weights. Missing keys weigh zero.
type Config struct {
	Weights map[string]float64 `yaml:"weights" json:"weights"`
}

// Default returns the reference league's scoring table.
func Default() Config {
	return Config{Weights: map[string]float64{
		KeyPoints:       0.5,
		KeyRebounds:     1.0,
		KeyAssists:      1.0,
		KeySteals:       2.0,
		KeyBlocks:       2.0,
		KeyTurnovers:    -1.0,
		KeyThreesMade:   0.5,
		KeyFouledOut:    -2.0,
		KeyDoubleDouble: 1.0,
		KeyTripleDouble: 2.0,
		KeyPoints40:     2.0,
		KeyPoints50:     2.0,
		KeyAssists15:    0.0,
		KeyRebounds20:   0.0,
	}}
}

// Weight returns the configured weight for key, or zero when absent.
func (c Config) Weight(key string) float64 {
	return c.Weights[key]
}

// With returns a copy of the config with key set to weight.
func (c Config) With(key string, weight float64) Config {
	out := Config{Weights: make(map[string]float64, len(c.Weights)+1)}
	for k, v := range c.Weights {
		out.Weights[k] = v
	}
	out.Weights[key] = weight
	return out
}

// LoadFile reads a YAML scoring file and layers its weights over Default.
// A missing file yields Default.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading scoring config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, fmt.Errorf("parsing scoring config: %w", err)
	}
	for k, v := range file.Weights {
		cfg = cfg.With(k, v)
	}
	return cfg, nil
}
