package prettytype

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadConfig reads a Config from the TOML file at path. Fields left out of
// the file keep their zero value and so fall back to DefaultConfig.
//
// An example file:
//
//	indent_width = 4
//	placeholder  = "_"
//	boilerplate  = ["allocator", "char_traits", "my::default_policy"]
func LoadConfig(path string) (*Config, error) {
	var config Config
	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown keys in config %s: %s", path, strings.Join(keys, ", "))
	}
	return &config, nil
}
