package cli

import (
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Config is the optional TOML configuration. Zero values mean "not set".
type Config struct {
	Length   int    `toml:"length"`
	SeedPart int    `toml:"seed_part"`
	Output   string `toml:"output"`
	LogLevel string `toml:"log_level"`

	// simulate only
	Vertices    int     `toml:"vertices"`
	Probability float64 `toml:"probability"`
	Genes       int     `toml:"genes"`
	Seed        int64   `toml:"seed"`
}

// LoadConfig decodes the TOML file at path. Unknown keys are logged and ignored.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Warningf("Ignoring unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// pipelineValues maps the shared keys to their flag names.
func (cfg Config) pipelineValues() map[string]string {
	return map[string]string{
		"length":    nonZero(cfg.Length),
		"seed-part": nonZero(cfg.SeedPart),
		"output":    cfg.Output,
	}
}

// simulateValues maps the simulate keys to their flag names.
func (cfg Config) simulateValues() map[string]string {
	values := cfg.pipelineValues()
	values["vertices"] = nonZero(cfg.Vertices)
	values["genes"] = nonZero(cfg.Genes)
	values["seed"] = nonZero(cfg.Seed)
	if cfg.Probability != 0 {
		values["probability"] = strconv.FormatFloat(cfg.Probability, 'g', -1, 64)
	}
	return values
}

func nonZero[T int | int64](n T) string {
	if n == 0 {
		return ""
	}
	return strconv.FormatInt(int64(n), 10)
}

// fill copies config values into flags the user did not set.
// Empty values are skipped.
func fill(flags *pflag.FlagSet, values map[string]string) error {
	for name, value := range values {
		if value == "" || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, value); err != nil {
			return errors.Wrapf(err, "config value for --%s", name)
		}
	}
	return nil
}
