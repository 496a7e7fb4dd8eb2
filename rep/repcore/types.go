// This file contains general types.

package repcore

import "fmt"

// Point describes a position on the map, in floating point game-world units.
type Point struct {
	X, Y float32
}

// String returns a string representation of the point in the format:
//
//	"x=X, y=Y"
func (p Point) String() string {
	return fmt.Sprint("x=", p.X, ", y=", p.Y)
}
