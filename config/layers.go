package config

import (
	"errors"
	"fmt"
)

// MaxLayers matches the width of a layer mask.
const MaxLayers = 32

// ErrUnknownLayer is returned for a layer name missing from LayerConfig.Names.
var ErrUnknownLayer = errors.New("unknown layer")

// Index returns the layer index registered for name.
func (l LayerConfig) Index(name string) (int, error) {
	idx, ok := l.Names[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}
	return idx, nil
}

// MaskOf returns the bitmask with one bit set per named layer.
func (l LayerConfig) MaskOf(names ...string) (uint32, error) {
	var mask uint32
	for _, name := range names {
		idx, err := l.Index(name)
		if err != nil {
			return 0, err
		}
		mask |= 1 << uint(idx)
	}
	return mask, nil
}

// ObstacleMask is MaskOf(l.Obstacles...).
func (l LayerConfig) ObstacleMask() (uint32, error) {
	return l.MaskOf(l.Obstacles...)
}

// SelfMask is MaskOf(l.Self...).
func (l LayerConfig) SelfMask() (uint32, error) {
	return l.MaskOf(l.Self...)
}

// Validate checks indices are in range and every referenced name exists.
func (l LayerConfig) Validate() error {
	for name, idx := range l.Names {
		if idx < 0 || idx >= MaxLayers {
			return fmt.Errorf("layer %q index %d out of range [0, %d)", name, idx, MaxLayers)
		}
	}
	if len(l.Self) == 0 {
		return errors.New("layers.self must name at least one layer")
	}
	obstacles, err := l.ObstacleMask()
	if err != nil {
		return fmt.Errorf("layers.obstacles: %w", err)
	}
	self, err := l.SelfMask()
	if err != nil {
		return fmt.Errorf("layers.self: %w", err)
	}
	if obstacles&self != 0 {
		return fmt.Errorf("layers %v are both obstacle and self layers", l.sharedNames())
	}
	if l.Default != "" {
		if _, err := l.Index(l.Default); err != nil {
			return fmt.Errorf("layers.default: %w", err)
		}
	}
	return nil
}

// sharedNames lists the names present in both Obstacles and Self.
func (l LayerConfig) sharedNames() []string {
	var shared []string
	for _, o := range l.Obstacles {
		for _, name := range l.Self {
			if l.Names[o] == l.Names[name] {
				shared = append(shared, o)
				break
			}
		}
	}
	return shared
}
