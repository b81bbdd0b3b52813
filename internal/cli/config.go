package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds renderer settings loaded from a TOML file. Pointer
// fields distinguish "unset" from an explicit zero so flags can
// override only what the file actually specifies.
type Config struct {
	Indent       *string `toml:"indent"`
	SingleQuotes *bool   `toml:"single_quotes"`
	InlineLimit  *int    `toml:"inline_limit"`
	DetectTimes  *bool   `toml:"detect_times"`
}

// LoadConfig reads a TOML config file. Unknown keys are rejected so a
// typo does not silently fall back to defaults.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	return &cfg, nil
}
