package region

import (
	"math"

	"golang.org/x/text/unicode/norm"
)

// Point is a position in a world's 3-D coordinate space.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Region is a named axis-aligned box inside a single world.
//
// Min and Max are normalized corners: Min holds the componentwise minimum
// of the two corners the region was defined with, Max the maximum. Callers
// constructing regions through New may pass the corners in either order.
type Region struct {
	Name        string
	World       string
	Min         Point
	Max         Point
	Description string
}

// New builds a Region from two opposite corners, normalizing them so that
// Min <= Max on every axis. Name and world are NFC-normalized so lookups
// against operator-typed input are canonical.
func New(name, world string, p1, p2 Point, description string) Region {
	return Region{
		Name:        norm.NFC.String(name),
		World:       norm.NFC.String(world),
		Min:         Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y), Z: math.Min(p1.Z, p2.Z)},
		Max:         Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y), Z: math.Max(p1.Z, p2.Z)},
		Description: description,
	}
}

// Contains reports whether the point lies inside the region.
//
// The box is closed: a point exactly on the min or max boundary of every
// axis is inside. A point in a different world is never inside, regardless
// of coordinates.
func (r Region) Contains(world string, p Point) bool {
	if world != r.World {
		return false
	}
	return p.X >= r.Min.X && p.X <= r.Max.X &&
		p.Y >= r.Min.Y && p.Y <= r.Max.Y &&
		p.Z >= r.Min.Z && p.Z <= r.Max.Z
}
