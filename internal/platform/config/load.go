package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// layer is one source in the configuration stack.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load builds the configuration for profile from four layers, each overriding
// the one before it:
//
//	defaults -> {configDir}/base.yaml -> {configDir}/{profile}.yaml -> APP_* env
//
// Env names are matched against the keys known after the file layers, so
// field-internal underscores survive:
//
//	APP_SERVER_READ_TIMEOUT       -> server.read_timeout
//	APP_CLIENT_RETRY_MAX_ATTEMPTS -> client.retry.max_attempts
//	APP_NOTIFIER_ENDPOINTS=a,b    -> notifier.endpoints ([a b])
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	for _, l := range []layer{
		{name: "defaults", load: loadDefaults},
		{name: "base config", load: loadYAML(filepath.Join(o.configDir, "base.yaml"))},
		{name: "profile config", load: loadYAML(filepath.Join(o.configDir, profile+".yaml"))},
		{name: "environment", load: loadEnv},
	} {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// loadDefaults seeds every known key, which also makes each one reachable
// from the environment.
func loadDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func loadYAML(path string) func(k *koanf.Koanf) error {
	return func(k *koanf.Koanf) error {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
}

func loadEnv(k *koanf.Koanf) error {
	known := envKeys(k.Keys())
	lists := listKeys()
	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				if lists[key] {
					return key, splitList(value)
				}
				return key, value
			}
			// Unknown names nest on every underscore.
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil)
}

// listKeys reports the keys whose default is a string slice. Their env
// values are comma separated.
func listKeys() map[string]bool {
	out := make(map[string]bool)
	for key, value := range defaults() {
		if _, ok := value.([]string); ok {
			out[key] = true
		}
	}
	return out
}

// splitList splits a comma separated env value, trimming blanks and dropping
// empty entries.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// envKeys maps the env spelling of each dotted key back to the key itself,
// e.g. "server_read_timeout" -> "server.read_timeout".
func envKeys(keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, key := range keys {
		out[strings.ReplaceAll(key, ".", "_")] = key
	}
	return out
}

// validateProfile rejects empty names and anything that could escape the
// config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
