package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/matzehuels/spdxgraph/pkg/compact"
	"github.com/matzehuels/spdxgraph/pkg/errors"
	"github.com/matzehuels/spdxgraph/pkg/layout"
	"github.com/matzehuels/spdxgraph/pkg/pipeline"
)

// Config is the optional TOML configuration file. Command-line flags
// override every value.
//
//	[input]
//	format = "yaml"
//
//	[relationships]
//	format = "easy"
//	hints = false
//	hint_step = 2
//	max_members = 10
//	detailed = false
//
//	[render]
//	format = "svg"
type Config struct {
	Input         InputConfig         `toml:"input"`
	Relationships RelationshipsConfig `toml:"relationships"`
	Render        RenderConfig        `toml:"render"`
}

// InputConfig configures document decoding.
type InputConfig struct {
	Format string `toml:"format"`
}

// RelationshipsConfig configures the compacted graph output.
type RelationshipsConfig struct {
	Format     string `toml:"format"`
	Hints      bool   `toml:"hints"`
	HintStep   int    `toml:"hint_step"`
	MaxMembers int    `toml:"max_members"`
	Detailed   bool   `toml:"detailed"`
}

// RenderConfig configures image rendering.
type RenderConfig struct {
	Format string `toml:"format"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() Config {
	return Config{
		Relationships: RelationshipsConfig{
			Format:     pipeline.FormatEasy,
			Hints:      true,
			HintStep:   layout.DefaultStep,
			MaxMembers: compact.DefaultMaxMembers,
		},
		Render: RenderConfig{Format: pipeline.FormatSVG},
	}
}

// LoadConfig decodes the TOML file at path on top of [DefaultConfig].
// Unknown keys are rejected so typos do not go unnoticed.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	if c.Relationships.Format != "" {
		if err := pipeline.ValidateTextFormat(c.Relationships.Format); err != nil {
			return err
		}
	}
	if c.Render.Format != "" {
		if err := pipeline.ValidateImageFormat(c.Render.Format); err != nil {
			return err
		}
	}
	return nil
}

// PipelineOptions converts the relationships section to pipeline options.
func (c Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Hints:      c.Relationships.Hints,
		HintStep:   c.Relationships.HintStep,
		MaxMembers: c.Relationships.MaxMembers,
		Detailed:   c.Relationships.Detailed,
	}
}
