/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: wall.go
Description: Wall handle and its default (template) variant. Walls are always
located on the structure layer.
*/

package concept

import (
	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// Wall represents a wall drawn on the structure layer.
type Wall struct {
	ConcreteSupport
}

func newWallNamed(uid int, m *Model, typeName string) *Wall {
	return &Wall{ConcreteSupport: newConcreteSupport(uid, m, typeName)}
}

func newWall(uid int, m *Model) *Wall {
	return newWallNamed(uid, m, "Wall")
}

// ShearWall reports whether the wall is fixed to the slab horizontally.
func (w *Wall) ShearWall() (bool, error) { return w.getBool("ShearWall") }

// SetShearWall sets whether the wall is fixed to the slab horizontally.
func (w *Wall) SetShearWall(value bool) error { return w.setBool("ShearWall", value) }

// Thickness returns the through-thickness of the wall.
func (w *Wall) Thickness() (float64, error) { return w.getFloat("WallThickness") }

// SetThickness sets the through-thickness of the wall.
func (w *Wall) SetThickness(value float64) error { return w.setFloat("WallThickness", value) }

// Location returns the location of the wall spine.
func (w *Wall) Location() (geometry.LineSegment2D, error) { return w.segmentLocation() }

// DefaultWall is the template whose properties new walls copy. There is
// always exactly one, accessed through CadManager.DefaultWall; it has no
// location and cannot be deleted.
type DefaultWall struct {
	Wall
}

func newDefaultWall(uid int, m *Model) *DefaultWall {
	return &DefaultWall{Wall: *newWallNamed(uid, m, "DefaultWall")}
}

// Delete is not supported for default entities.
func (w *DefaultWall) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}
