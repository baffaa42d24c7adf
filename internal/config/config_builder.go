package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type configBuilder struct {
	configs []*StructuredConfig
	// jsonAt is the position the JSON layer is inserted at: right above the
	// defaults, below env and flags.
	jsonAt int
	// explicit holds flag values applied after the merge. mergo skips zero
	// values, so an explicit --debug=false would otherwise lose to env or JSON.
	explicit []func(*StructuredConfig)
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	for _, apply := range b.explicit {
		apply(config)
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	b.jsonAt = len(b.configs)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(fs *pflag.FlagSet) *configBuilder {
	if fs == nil {
		return b
	}

	flagsCfg, err := ParseFlags(fs)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	if changed(fs, FlagDebug) {
		debug := flagsCfg.App.Debug
		b.explicit = append(b.explicit, func(c *StructuredConfig) { c.App.Debug = debug })
	}
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	at := min(b.jsonAt, len(b.configs))
	b.configs = append(b.configs[:at], append([]*StructuredConfig{jsonCfg}, b.configs[at:]...)...)
	return b
}
