/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: polygon.go
Description: Immutable 2D polygon value with the variable-length
[[x][y]][[x][y]][[x][y]]... bracket-string codec used for slab areas,
openings and area loads.
*/

package geometry

import (
	"fmt"
	"strings"

	"github.com/kleascm/concept-client/pkg/bracket"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// Polygon2D is a read-only 2D polygon of at least 3 points.
type Polygon2D struct {
	points []Point2D
}

// NewPolygon2D creates a polygon with a copy of the given points.
func NewPolygon2D(points []Point2D) Polygon2D {
	copied := make([]Point2D, len(points))
	copy(copied, points)
	return Polygon2D{points: copied}
}

// Polygon2DFromBracketString creates a Polygon2D from a string in
// [[x][y]][[x][y]][[x][y]]... format.
func Polygon2DFromBracketString(bracketString string) (Polygon2D, error) {
	tokens, err := bracket.Parse(bracketString)
	if err != nil {
		return Polygon2D{}, err
	}
	if len(tokens) < 3 {
		return Polygon2D{}, &protocol.FormatError{Message: "invalid Polygon2D bracket string: " + bracketString}
	}

	points := make([]Point2D, 0, len(tokens))
	for _, token := range tokens {
		point, err := Point2DFromBracketString(token)
		if err != nil {
			return Polygon2D{}, err
		}
		points = append(points, point)
	}

	return Polygon2D{points: points}, nil
}

// PointCount returns the number of points in this polygon.
func (p Polygon2D) PointCount() int { return len(p.points) }

// PointAt returns the point at the given index.
func (p Polygon2D) PointAt(index int) Point2D { return p.points[index] }

// Points returns a copy of the points that can be modified.
func (p Polygon2D) Points() []Point2D {
	copied := make([]Point2D, len(p.points))
	copy(copied, p.points)
	return copied
}

// ToPointListBracketString returns the points as a sequence of bracket
// strings, such as [[x1][y1]][[x2][y2]][[x3][y3]].
func (p Polygon2D) ToPointListBracketString() string {
	var b strings.Builder
	for _, point := range p.points {
		b.WriteString(bracket.StartTag)
		b.WriteString(point.ToBracketString())
		b.WriteString(bracket.EndTag)
	}
	return b.String()
}

// ApproxEq compares all points independently with the given tolerances.
func (p Polygon2D) ApproxEq(other Polygon2D, absolute, relative float64) bool {
	if p.PointCount() != other.PointCount() {
		return false
	}
	for i := range p.points {
		if !p.points[i].ApproxEq(other.points[i], absolute, relative) {
			return false
		}
	}
	return true
}

func (p Polygon2D) String() string {
	return fmt.Sprintf("Polygon2D(%v)", p.points)
}
