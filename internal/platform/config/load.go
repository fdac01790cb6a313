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

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// The default is "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the library service configuration for profile. Later layers
// win:
//
//	defaults()  ->  base.yaml  ->  {profile}.yaml  ->  APP_* env vars
//
// Env vars are matched against keys already known from the earlier layers,
// so field names containing underscores survive:
//
//	APP_SERVER_READ_TIMEOUT                   -> server.read_timeout
//	APP_STORE_REDIS_MAX_TX_RETRIES            -> store.redis.max_tx_retries
//	APP_SERVER_RATE_LIMIT_REQUESTS_PER_SECOND -> server.rate_limit.requests_per_second
//	APP_LIBRARY_RESOLVE_WORKERS               -> library.resolve_workers
//
// List-valued keys take a comma-separated value:
//
//	APP_SERVER_CORS_ALLOWED_ORIGINS=https://a.example,https://b.example
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	steps := []struct {
		name string
		load func(*koanf.Koanf) error
	}{
		{"defaults", loadDefaults},
		{"base config", loadYAML(filepath.Join(o.configDir, "base.yaml"))},
		{"profile config", loadYAML(filepath.Join(o.configDir, profile+".yaml"))},
		{"env vars", loadEnv},
	}
	for _, step := range steps {
		if err := step.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", step.name, err)
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

func loadDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func loadYAML(path string) func(*koanf.Koanf) error {
	return func(k *koanf.Koanf) error {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
}

func loadEnv(k *koanf.Koanf) error {
	lookup := envLookup(k.Keys())
	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if known, ok := lookup[key]; ok {
				switch k.Get(known).(type) {
				case []string, []any:
					return known, strings.Split(value, ",")
				}
				return known, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil)
}

// validateProfile rejects empty profiles and anything that could escape the
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

// envLookup maps the env form of every known key ("server_read_timeout") to
// its dotted koanf key ("server.read_timeout").
func envLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}
