/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: point2d.go
Description: Immutable 2D point value with the [x][y] bracket-string codec
used for all plan locations in the Concept wire protocol.
*/

package geometry

import (
	"fmt"
	"math"

	"github.com/kleascm/concept-client/pkg/bracket"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// Point2D is a read-only 2D point.
type Point2D struct {
	X float64
	Y float64
}

// NewPoint2D creates a point at (x, y).
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Point2DFromBracketString creates a Point2D from a string in [x][y] format.
func Point2DFromBracketString(bracketString string) (Point2D, error) {
	floats, err := bracket.ParseFloats(bracketString)
	if err != nil {
		return Point2D{}, err
	}
	if len(floats) != 2 {
		return Point2D{}, &protocol.FormatError{Message: "invalid Point2D bracket string: " + bracketString}
	}
	return Point2D{X: floats[0], Y: floats[1]}, nil
}

// Add returns the sum of this point and other.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of this point and other.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns this point multiplied by the given factor.
func (p Point2D) Scale(factor float64) Point2D {
	return Point2D{X: p.X * factor, Y: p.Y * factor}
}

// ToBracketString returns the point in [x][y] format.
func (p Point2D) ToBracketString() string {
	return bracket.Encode([]string{
		bracket.FloatToUserStr(p.X),
		bracket.FloatToUserStr(p.Y),
	})
}

// ToPointListBracketString returns the point in [[x][y]] format.
func (p Point2D) ToPointListBracketString() string {
	return bracket.StartTag + p.ToBracketString() + bracket.EndTag
}

// ApproxEq compares this to other with the given absolute tolerance and the
// given relative tolerance times the values in p.
func (p Point2D) ApproxEq(other Point2D, absolute, relative float64) bool {
	xTolerance := math.Max(math.Abs(absolute), math.Abs(p.X*relative))
	yTolerance := math.Max(math.Abs(absolute), math.Abs(p.Y*relative))

	return math.Abs(p.X-other.X) <= xTolerance && math.Abs(p.Y-other.Y) <= yTolerance
}

func (p Point2D) String() string {
	return fmt.Sprintf("Point2D(%v, %v)", p.X, p.Y)
}
