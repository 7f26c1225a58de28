// Package config binds solver settings to flags, environment variables and
// an optional config file.
package config

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"q.log/lpdemo/simplex"
)

const (
	KeyEpsilon       = "epsilon"
	KeyMaxIterations = "max-iterations"
	KeyRule          = "rule"
	KeyConfigFile    = "config"

	// EnvPrefix prefixes environment overrides, e.g. LPDEMO_MAX_ITERATIONS.
	EnvPrefix = "LPDEMO"
)

var ErrInvalid = errors.New("config: invalid value")

// Config is the resolved solver configuration.
type Config struct {
	Epsilon       float64
	MaxIterations int
	Rule          string
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyEpsilon, simplex.DefaultEpsilon)
	v.SetDefault(KeyMaxIterations, 0)
	v.SetDefault(KeyRule, simplex.Dantzig{}.String())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags registers the solver flags on fs and binds them to v.
func BindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	fs.String(KeyConfigFile, "", "config file (yaml, json or toml)")
	fs.Float64(KeyEpsilon, simplex.DefaultEpsilon, "zero tolerance for pivoting decisions")
	fs.Int(KeyMaxIterations, 0, "pivot limit, 0 for max(100, 50*(rows+cols))")
	fs.String(KeyRule, simplex.Dantzig{}.String(), "pivot rule: dantzig or bland")

	for _, key := range []string{KeyEpsilon, KeyMaxIterations, KeyRule} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return errors.Wrapf(err, "binding --%s", key)
		}
	}
	return nil
}

// Load reads the config file named by --config, if any, and resolves the
// settings. Flags override the environment, which overrides the file.
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	if fs != nil {
		if path, _ := fs.GetString(KeyConfigFile); path != "" {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, errors.Wrapf(err, "reading config %s", path)
			}
		}
	}

	c := &Config{
		Epsilon:       v.GetFloat64(KeyEpsilon),
		MaxIterations: v.GetInt(KeyMaxIterations),
		Rule:          v.GetString(KeyRule),
	}
	return c, c.Validate()
}

func (c *Config) Validate() error {
	if c.Epsilon < 0 || math.IsNaN(c.Epsilon) || c.Epsilon > 1e-2 {
		return errors.Wrapf(ErrInvalid, "%s = %g", KeyEpsilon, c.Epsilon)
	}
	if c.MaxIterations < 0 {
		return errors.Wrapf(ErrInvalid, "%s = %d", KeyMaxIterations, c.MaxIterations)
	}
	if _, err := simplex.ParseRule(c.Rule); err != nil {
		return err
	}
	return nil
}

// SolverOptions converts c into simplex options. c must be valid.
func (c *Config) SolverOptions() []simplex.Option {
	rule, err := simplex.ParseRule(c.Rule)
	if err != nil {
		rule = simplex.Dantzig{}
	}
	return []simplex.Option{
		simplex.WithEpsilon(c.Epsilon),
		simplex.WithMaxIterations(c.MaxIterations),
		simplex.WithRule(rule),
	}
}
