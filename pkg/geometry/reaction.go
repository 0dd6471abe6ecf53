/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reaction.go
Description: Reaction value tuples returned by result layers. Point5D carries
three forces plus two moments; Point6D adds the moment about the z-axis for
wall group reactions.
*/

package geometry

import "fmt"

// Point5D is a read-only 5-component value: typically three forces or
// displacements (X, Y, Z) and two rotations or moments (RotX, RotY).
type Point5D struct {
	X    float64
	Y    float64
	Z    float64
	RotX float64
	RotY float64
}

func (p Point5D) String() string {
	return fmt.Sprintf("Point5D(%v, %v, %v, %v, %v)", p.X, p.Y, p.Z, p.RotX, p.RotY)
}

// Point6D is a read-only 6-component value: three forces or displacements and
// three rotations or moments.
type Point6D struct {
	X    float64
	Y    float64
	Z    float64
	RotX float64
	RotY float64
	RotZ float64
}

func (p Point6D) String() string {
	return fmt.Sprintf("Point6D(%v, %v, %v, %v, %v, %v)", p.X, p.Y, p.Z, p.RotX, p.RotY, p.RotZ)
}
