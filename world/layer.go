package world

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxLayers is the number of distinct collision layers.
const MaxLayers = 32

// Layer is a collision layer index in [0, MaxLayers).
type Layer uint8

// LayerMask is a set of layers, one bit per layer.
type LayerMask uint32

const (
	NoLayers  LayerMask = 0
	AllLayers LayerMask = ^LayerMask(0)
)

// Mask returns the single-layer mask for l.
func (l Layer) Mask() LayerMask {
	return 1 << (l % MaxLayers)
}

// MaskOf returns the union of the given layers.
func MaskOf(layers ...Layer) LayerMask {
	var m LayerMask
	for _, l := range layers {
		m |= l.Mask()
	}
	return m
}

func (m LayerMask) Has(l Layer) bool {
	return m&l.Mask() != 0
}

func (m LayerMask) Union(o LayerMask) LayerMask {
	return m | o
}

// Layers lists the layers in m in ascending order.
func (m LayerMask) Layers() []Layer {
	out := make([]Layer, 0, bits.OnesCount32(uint32(m)))
	for v := uint32(m); v != 0; v &= v - 1 {
		out = append(out, Layer(bits.TrailingZeros32(v)))
	}
	return out
}

func (m LayerMask) String() string {
	layers := m.Layers()
	parts := make([]string, len(layers))
	for i, l := range layers {
		parts[i] = fmt.Sprint(int(l))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
