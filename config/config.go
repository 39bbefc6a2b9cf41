// Package config loads metroroute settings from a YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the full set of tunables. Zero values of optional fields mean
// "use the default" as documented per field.
type Config struct {
	// Network is the path of the network description. Empty selects the
	// embedded sample network.
	Network string `yaml:"network"`

	// Format forces csv or yaml; empty infers it from Network's extension.
	Format string `yaml:"format" validate:"omitempty,oneof=csv yaml yml"`

	// LogLevel empty defers to LOG_LEVEL, then warn.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	// CacheSize bounds the planner's itinerary cache; 0 disables it.
	CacheSize int `yaml:"cache_size" validate:"gte=0,lte=100000"`

	Color bool `yaml:"color"`

	// AvoidLines are never ridden.
	AvoidLines []string `yaml:"avoid_lines" validate:"dive,required"`

	// MaxCost caps the travel time of a route; 0 means unlimited.
	MaxCost int64 `yaml:"max_cost" validate:"gte=0"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		CacheSize: 256,
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate checks every field and reports all violations at once.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := yamlName(e.StructNamespace())
		switch e.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", field, e.Param(), e.Value()))
		case "gte", "lte":
			msgs = append(msgs, fmt.Sprintf("%s out of range: %v", field, e.Value()))
		case "required":
			msgs = append(msgs, field+" must not contain empty entries")
		default:
			msgs = append(msgs, fmt.Sprintf("%s fails %s", field, e.Tag()))
		}
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// yamlName maps a validator namespace such as "Config.AvoidLines[1]" back to
// the YAML key.
func yamlName(ns string) string {
	ns = strings.TrimPrefix(ns, "Config.")
	index := ""
	if i := strings.IndexByte(ns, '['); i >= 0 {
		ns, index = ns[:i], ns[i:]
	}
	keys := map[string]string{
		"Format":     "format",
		"LogLevel":   "log_level",
		"CacheSize":  "cache_size",
		"AvoidLines": "avoid_lines",
		"MaxCost":    "max_cost",
	}
	if k, ok := keys[ns]; ok {
		return k + index
	}

	return ns + index
}
