package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/strattonbrazil/aqsis/internal/ri"
	"github.com/strattonbrazil/aqsis/internal/rifilter"
)

// ChainConfig describes a filter pipeline. Stages are listed head first,
// in the order the request stream passes through them.
type ChainConfig struct {
	Stages []StageConfig `yaml:"stages"`
}

// StageConfig configures one pipeline stage.
type StageConfig struct {
	Kind           string `yaml:"kind"`                     // "validate" | "archive"
	MaxReplayDepth int    `yaml:"maxReplayDepth,omitempty"` // archive only; 0 means default
}

// DefaultChainConfig is the pipeline used when no config file is given:
// scope validation in front of archive caching.
func DefaultChainConfig() ChainConfig {
	return ChainConfig{
		Stages: []StageConfig{
			{Kind: "validate"},
			{Kind: "archive"},
		},
	}
}

// LoadChainConfig reads a pipeline description from a YAML file.
func LoadChainConfig(path string) (ChainConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ChainConfig{}, fmt.Errorf("reading chain config: %w", err)
	}
	var cfg ChainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChainConfig{}, fmt.Errorf("parsing chain config %s: %w", path, err)
	}
	if len(cfg.Stages) == 0 {
		return ChainConfig{}, fmt.Errorf("chain config %s: no stages", path)
	}
	return cfg, nil
}

// constructor maps one stage description to its filter constructor.
func (s StageConfig) constructor() (rifilter.Constructor, error) {
	switch s.Kind {
	case "validate":
		return rifilter.Validate(), nil
	case "archive":
		var opts []rifilter.ArchiveOption
		if s.MaxReplayDepth > 0 {
			opts = append(opts, rifilter.WithMaxReplayDepth(s.MaxReplayDepth))
		}
		return rifilter.Archive(opts...), nil
	default:
		return nil, fmt.Errorf("unknown stage kind %q", s.Kind)
	}
}

// BuildChain assembles a chain over sink from the config. Chain.Prepend
// installs stages front first, so the config list is walked in reverse to
// keep the first configured stage at the head.
func BuildChain(cfg ChainConfig, sink ri.Renderer, opts ...rifilter.Option) (*rifilter.Chain, error) {
	chain := rifilter.NewChain(sink, opts...)
	for i := len(cfg.Stages) - 1; i >= 0; i-- {
		ctor, err := cfg.Stages[i].constructor()
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i, err)
		}
		chain.Prepend(ctor)
	}
	return chain, nil
}
