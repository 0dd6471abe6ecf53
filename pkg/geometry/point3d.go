/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: point3d.go
Description: Immutable 3D point value with the [x][y][z] bracket-string codec.
*/

package geometry

import (
	"fmt"

	"github.com/kleascm/concept-client/pkg/bracket"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// Point3D is a read-only 3D point.
type Point3D struct {
	X float64
	Y float64
	Z float64
}

// NewPoint3D creates a point at (x, y, z).
func NewPoint3D(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z}
}

// Point3DFromBracketString creates a Point3D from a string in [x][y][z] format.
func Point3DFromBracketString(bracketString string) (Point3D, error) {
	floats, err := bracket.ParseFloats(bracketString)
	if err != nil {
		return Point3D{}, err
	}
	if len(floats) != 3 {
		return Point3D{}, &protocol.FormatError{Message: "invalid Point3D bracket string: " + bracketString}
	}
	return Point3D{X: floats[0], Y: floats[1], Z: floats[2]}, nil
}

// ToBracketString returns the point in [x][y][z] format.
func (p Point3D) ToBracketString() string {
	return bracket.Encode([]string{
		bracket.FloatToUserStr(p.X),
		bracket.FloatToUserStr(p.Y),
		bracket.FloatToUserStr(p.Z),
	})
}

func (p Point3D) String() string {
	return fmt.Sprintf("Point3D(%v, %v, %v)", p.X, p.Y, p.Z)
}
