package controller

import "strings"

// CollisionFlags reports which sides of the character were blocked during a
// movement call.
type CollisionFlags uint8

// None means nothing blocked the movement.
const None CollisionFlags = 0

const (
	Sides CollisionFlags = 1 << iota // blocked horizontally
	Above                            // blocked moving up
	Below                            // blocked moving down
)

// Has reports whether every bit of o is set in f.
func (f CollisionFlags) Has(o CollisionFlags) bool {
	return f&o == o
}

func (f CollisionFlags) String() string {
	if f == None {
		return "None"
	}
	var parts []string
	if f.Has(Sides) {
		parts = append(parts, "Sides")
	}
	if f.Has(Above) {
		parts = append(parts, "Above")
	}
	if f.Has(Below) {
		parts = append(parts, "Below")
	}
	return strings.Join(parts, "|")
}
