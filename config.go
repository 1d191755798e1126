package cmna

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// LoadConfiguration reads a TOML file over the defaults. Unknown keys are an error.
//
//	max_nodes = 50
//	max_elements = 50
//	max_name_length = 10
//	tolerance = 1e-9
//	printer_width = 80
//	annotate = 0
func LoadConfiguration(filename string) (*Configuration, error) {
	config := DefaultConfiguration()

	md, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration %s: %w", filename, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("unknown configuration keys in %s: %s", filename, strings.Join(keys, ", "))
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration %s: %w", filename, err)
	}

	return config, nil
}

func (c *Configuration) Validate() error {
	if c.MaxNodes <= 0 {
		return fmt.Errorf("max_nodes must be positive, got %d", c.MaxNodes)
	}
	if c.MaxElements <= 0 {
		return fmt.Errorf("max_elements must be positive, got %d", c.MaxElements)
	}
	if c.MaxNameLength < 0 {
		return fmt.Errorf("max_name_length must not be negative, got %d", c.MaxNameLength)
	}
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	if c.Annotate < 0 || c.Annotate > 2 {
		return fmt.Errorf("annotate must be 0, 1 or 2, got %d", c.Annotate)
	}
	return nil
}
