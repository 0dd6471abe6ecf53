/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: slab_opening.go
Description: Slab opening handle and its default (template) variant.
*/

package concept

import (
	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// SlabOpening represents an opening drawn on the structure layer.
type SlabOpening struct {
	CadEntity
}

func newSlabOpening(uid int, m *Model) *SlabOpening {
	return &SlabOpening{CadEntity: newCadEntity(uid, m, "SlabOpening")}
}

// Priority returns the relative priority of this vs other items (slab areas,
// beams, slab openings), used in meshing.
func (s *SlabOpening) Priority() (int, error) { return s.getInt("Priority") }

// SetPriority sets the relative meshing priority of this opening.
func (s *SlabOpening) SetPriority(value int) error { return s.setInt("Priority", value) }

// Location returns the boundary of the slab opening.
func (s *SlabOpening) Location() (geometry.Polygon2D, error) { return s.polygonLocation() }

// DefaultSlabOpening is the template whose properties new slab openings copy.
// There is always exactly one, accessed through CadManager.DefaultSlabOpening;
// it has no location and cannot be deleted.
type DefaultSlabOpening struct {
	SlabOpening
}

func newDefaultSlabOpening(uid int, m *Model) *DefaultSlabOpening {
	opening := newSlabOpening(uid, m)
	opening.typeName = "DefaultSlabOpening"
	return &DefaultSlabOpening{SlabOpening: *opening}
}

// Delete is not supported for default entities.
func (s *DefaultSlabOpening) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}
