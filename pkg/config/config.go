package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// DomainKind selects the search domain of a run.
type DomainKind string

const (
	Subsets      DomainKind = "subsets"
	Permutations DomainKind = "permutations"
)

// Kinds lists the recognized domain kinds.
var Kinds = []DomainKind{Subsets, Permutations}

// Keys understood by Load.
const (
	KeyDomainKind = "domain-kind"
	KeyMaxDepth   = "max-depth"
	KeyLimit      = "limit"
)

const envPrefix = "BACKTRACK"

// Config is the validated configuration of a single search run.
type Config struct {
	DomainKind DomainKind `mapstructure:"domain-kind" yaml:"domain-kind"`
	// MaxDepth is the length of a complete solution. It is a pointer so a
	// missing value can be told apart from zero.
	MaxDepth *int `mapstructure:"max-depth" yaml:"max-depth"`
	// Limit stops the run after that many solutions; zero means no limit.
	Limit int `mapstructure:"limit" yaml:"limit"`
}

// New returns a Config for kind with the given max depth.
func New(kind DomainKind, maxDepth int) Config {
	return Config{DomainKind: kind, MaxDepth: &maxDepth}
}

// ConfigurationError reports an invalid or missing setting. It is
// returned before any search work begins.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// Validate checks that every required field is present and valid.
func (c Config) Validate() error {
	switch c.DomainKind {
	case Subsets, Permutations:
	case "":
		return &ConfigurationError{Field: KeyDomainKind, Reason: "missing"}
	default:
		return &ConfigurationError{
			Field:  KeyDomainKind,
			Reason: fmt.Sprintf("unrecognized value %q, must be one of %s", c.DomainKind, kindList()),
		}
	}
	if c.MaxDepth == nil {
		return &ConfigurationError{Field: KeyMaxDepth, Reason: "missing"}
	}
	if *c.MaxDepth < 0 {
		return &ConfigurationError{Field: KeyMaxDepth, Reason: fmt.Sprintf("%d must not be negative", *c.MaxDepth)}
	}
	if c.Limit < 0 {
		return &ConfigurationError{Field: KeyLimit, Reason: fmt.Sprintf("%d must not be negative", c.Limit)}
	}
	return nil
}

// NewViper returns a viper instance reading BACKTRACK_* environment
// variables for every key.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	for _, key := range []string{KeyDomainKind, KeyMaxDepth, KeyLimit} {
		// BindEnv only fails without a key
		_ = v.BindEnv(key)
	}
	return v
}

// Load reads the configuration from v, including the YAML file at path
// when path is not empty, and validates it. Unknown keys in the file
// are rejected.
func Load(v *viper.Viper, path string) (Config, error) {
	var cfg Config
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	cfg.DomainKind = DomainKind(v.GetString(KeyDomainKind))
	if v.IsSet(KeyMaxDepth) {
		maxDepth, err := toInt(v.Get(KeyMaxDepth))
		if err != nil {
			return cfg, &ConfigurationError{Field: KeyMaxDepth, Reason: err.Error()}
		}
		cfg.MaxDepth = &maxDepth
	}
	if v.IsSet(KeyLimit) {
		limit, err := toInt(v.Get(KeyLimit))
		if err != nil {
			return cfg, &ConfigurationError{Field: KeyLimit, Reason: err.Error()}
		}
		cfg.Limit = limit
	}

	if path != "" {
		if err := checkKeys(v); err != nil {
			return cfg, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// toInt converts a setting to an int. Strings are read as base-10
// integers and floats must be integral.
func toInt(value any) (int, error) {
	switch value := value.(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("%q is not a base-10 integer", value)
		}
		return n, nil
	case float32:
		return toInt(float64(value))
	case float64:
		if value != math.Trunc(value) || math.IsInf(value, 0) {
			return 0, fmt.Errorf("%v is not an integer", value)
		}
	}
	return cast.ToIntE(value)
}

func checkKeys(v *viper.Viper) error {
	known := map[string]struct{}{KeyDomainKind: {}, KeyMaxDepth: {}, KeyLimit: {}}
	var unknown []string
	for _, key := range v.AllKeys() {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		return &ConfigurationError{Field: strings.Join(unknown, ", "), Reason: "unknown field"}
	}
	return nil
}

func kindList() string {
	s := make([]string, len(Kinds))
	for i, k := range Kinds {
		s[i] = string(k)
	}
	return strings.Join(s, ", ")
}

// IsConfigurationError reports whether err is or wraps a
// ConfigurationError.
func IsConfigurationError(err error) bool {
	var cerr *ConfigurationError
	return errors.As(err, &cerr)
}
