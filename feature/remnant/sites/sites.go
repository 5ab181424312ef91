// Package sites holds the table mapping WASON node addresses to site names.
package sites

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var defaults = map[string]string{
	"30.10.90.6":  "HYI-4",
	"30.10.10.6":  "Jasmine",
	"30.10.30.6":  "Phu Nga",
	"30.10.50.6":  "SNI-POI",
	"30.10.70.6":  "NKS",
	"30.10.110.6": "PKT",
}

// Entry is one row of a site table file.
type Entry struct {
	Address string `yaml:"address"`
	Name    string `yaml:"name"`
}

type file struct {
	Sites []Entry `yaml:"sites"`
}

// Default returns a copy of the built-in site table.
func Default() map[string]string {
	out := make(map[string]string, len(defaults))
	for k, v := range defaults {
		out[k] = v
	}
	return out
}

// Load reads a site table from path. An empty path yields the built-in table.
func Load(path string) (map[string]string, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read site table: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML site table:
//
//	sites:
//	  - address: 30.10.90.6
//	    name: HYI-4
func Parse(data []byte) (map[string]string, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse site table: %w", err)
	}

	out := make(map[string]string, len(f.Sites))
	for i, e := range f.Sites {
		addr := strings.TrimSpace(e.Address)
		if addr == "" {
			return nil, fmt.Errorf("site %d: empty address", i)
		}
		if _, dup := out[addr]; dup {
			return nil, fmt.Errorf("site %d: duplicate address %s", i, addr)
		}
		name := strings.TrimSpace(e.Name)
		if name == "" {
			name = addr
		}
		out[addr] = name
	}
	return out, nil
}
