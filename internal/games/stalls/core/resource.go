// Package core provides the game logic for Stalls: the resource inventory,
// the offer generator, the round state machine and the scripted walk paths
// between stalls. This package is UI-agnostic and deterministic for a given
// random source.
package core

import "fmt"

// Resource is one of the five tradeable resource kinds.
type Resource uint8

const (
	Wood Resource = iota
	Bread
	Stone
	Gold
	Sheep
)

// ResourceCount is the number of resource kinds.
const ResourceCount = 5

// AllResources returns every resource kind in display order.
func AllResources() []Resource {
	return []Resource{Wood, Bread, Stone, Gold, Sheep}
}

// String returns the lowercase name of the resource.
func (r Resource) String() string {
	switch r {
	case Wood:
		return "wood"
	case Bread:
		return "bread"
	case Stone:
		return "stone"
	case Gold:
		return "gold"
	case Sheep:
		return "sheep"
	default:
		return "unknown"
	}
}

// Valid reports whether r is one of the five kinds.
func (r Resource) Valid() bool {
	return r < ResourceCount
}

// ParseResource returns the resource with the given name.
func ParseResource(name string) (Resource, error) {
	for _, r := range AllResources() {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown resource %q", name)
}

// MarshalText implements encoding.TextMarshaler so resources appear by name
// in journals and YAML.
func (r Resource) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid resource %d", r)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Resource) UnmarshalText(text []byte) error {
	parsed, err := ParseResource(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
