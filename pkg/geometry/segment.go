/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: segment.go
Description: Immutable 2D line segment value with the [[x][y]][[x][y]]
bracket-string codec used for spine locations (beams, walls, tendons).
*/

package geometry

import (
	"fmt"

	"github.com/kleascm/concept-client/pkg/bracket"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// LineSegment2D is a read-only 2D line segment.
type LineSegment2D struct {
	Start Point2D
	End   Point2D
}

// NewLineSegment2D creates a segment from start to end.
func NewLineSegment2D(start, end Point2D) LineSegment2D {
	return LineSegment2D{Start: start, End: end}
}

// LineSegment2DFromBracketString creates a LineSegment2D from a string in
// [[x][y]][[x][y]] format.
func LineSegment2DFromBracketString(bracketString string) (LineSegment2D, error) {
	tokens, err := bracket.Parse(bracketString)
	if err != nil {
		return LineSegment2D{}, err
	}
	if len(tokens) != 2 {
		return LineSegment2D{}, &protocol.FormatError{Message: "invalid LineSegment2D bracket string: " + bracketString}
	}

	start, err := Point2DFromBracketString(tokens[0])
	if err != nil {
		return LineSegment2D{}, err
	}
	end, err := Point2DFromBracketString(tokens[1])
	if err != nil {
		return LineSegment2D{}, err
	}

	return LineSegment2D{Start: start, End: end}, nil
}

// PointAlongSegment returns the point at the given fractional location along
// this segment.
func (s LineSegment2D) PointAlongSegment(ratio float64) Point2D {
	return s.Start.Add(s.End.Sub(s.Start).Scale(ratio))
}

// ToPointListBracketString returns the segment as a sequence of point bracket
// strings, such as [[x1][y1]][[x2][y2]].
func (s LineSegment2D) ToPointListBracketString() string {
	return bracket.Encode([]string{s.Start.ToBracketString(), s.End.ToBracketString()})
}

// ApproxEq compares start and end points independently with the given
// tolerances.
func (s LineSegment2D) ApproxEq(other LineSegment2D, absolute, relative float64) bool {
	return s.Start.ApproxEq(other.Start, absolute, relative) && s.End.ApproxEq(other.End, absolute, relative)
}

func (s LineSegment2D) String() string {
	return fmt.Sprintf("LineSegment2D(%v, %v)", s.Start, s.End)
}
