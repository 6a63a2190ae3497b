package catalog

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Load reads a catalog from a TOML file. Missing hotel_name or currency fall
// back to the built-in catalog's values.
func Load(path string) (*Catalog, error) {
	var def Definition
	md, err := toml.DecodeFile(path, &def)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to load catalog: unknown key %q", undecoded[0].String())
	}

	defaults := Default()
	if def.HotelName == "" {
		def.HotelName = defaults.HotelName()
	}
	if def.Currency == "" {
		def.Currency = defaults.Currency()
	}

	return New(def)
}

// LoadOrDefault loads the catalog at path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
