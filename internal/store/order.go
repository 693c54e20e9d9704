package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"order-assistant/internal/types"
)

// LoadOrder reads a pre-structured order from a YAML (or JSON) file.
func LoadOrder(path string) (types.Order, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return types.Order{}, err
	}
	var o types.Order
	if err := yaml.Unmarshal(b, &o); err != nil {
		return types.Order{}, fmt.Errorf("parse order %s: %w", path, err)
	}
	return o, nil
}
