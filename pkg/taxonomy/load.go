package taxonomy

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk taxonomy document. JSON documents parse too, being valid YAML.
type File struct {
	Roles []RoleProfile `yaml:"roles"`
}

// LoadFile reads a custom taxonomy. An empty path selects the built-in tables.
func LoadFile(path string) (*Store, error) {
	if path == "" {
		return Builtin(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy %s: %w", path, err)
	}
	s, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a taxonomy document. Unknown fields are rejected.
func Parse(data []byte) (*Store, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return New(f.Roles)
}
