package config

import (
	"strings"
	"time"

	"github.com/chronos-tachyon/assert"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by Load.
// HUFFSTREAM_LOGGER_LEVEL sets logger.level.
const EnvPrefix = "HUFFSTREAM_"

const delim = "."

// Defaults holds the value of every known key.
var Defaults = map[string]any{
	"logger.level":       "info",
	"logger.prettier":    true,
	"logger.time-format": time.RFC3339,
	"codec.buffer-size":  64 << 10,
}

type Conf struct {
	*koanf.Koanf
}

// Load merges, in increasing priority, Defaults, the YAML file at path (if
// path is not empty) and the environment.
func Load(path string) (*Conf, error) {
	k := koanf.New(delim)

	if err := k.Load(confmap.Provider(Defaults, delim), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %q", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, delim, envKey), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load environment")
	}

	return &Conf{Koanf: k}, nil
}

// New wraps a map of already-parsed values, for tests.
func New(values map[string]any) *Conf {
	k := koanf.New(delim)
	err := k.Load(confmap.Provider(values, delim), nil)
	assert.Assertf(err == nil, "config: failed to load values: %v", err)
	return &Conf{Koanf: k}
}

// envKey maps HUFFSTREAM_CODEC_BUFFER_SIZE to codec.buffer-size.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, name, found := strings.Cut(s, "_")
	if !found {
		return section
	}
	return section + delim + strings.ReplaceAll(name, "_", "-")
}

func (c *Conf) Bool(path string, defaultValues ...bool) bool {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Bool(path)
}

func (c *Conf) String(path string, defaultValues ...string) string {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.String(path)
}

func (c *Conf) Int(path string, defaultValues ...int) int {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Int(path)
}
