/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: slab_area.go
Description: Slab area handle and its default (template) variant. Slab areas
are always located on the structure layer.
*/

package concept

import (
	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// SlabArea represents a slab area drawn on the structure layer.
type SlabArea struct {
	ConcreteSpanningMember
}

func newSlabAreaNamed(uid int, m *Model, typeName string) *SlabArea {
	slab := &SlabArea{ConcreteSpanningMember: newConcreteSpanningMember(uid, m, typeName)}
	slab.hasCustomStiffness = func() (bool, error) {
		behavior, err := slab.Behavior()
		if err != nil {
			return false, err
		}
		return behavior == SlabCustomBehavior, nil
	}
	return slab
}

func newSlabArea(uid int, m *Model) *SlabArea {
	return newSlabAreaNamed(uid, m, "SlabArea")
}

// RAxis returns the CCW angle from 3 o'clock to the r-axis. At zero the
// r-axis is parallel to the global x-axis.
func (s *SlabArea) RAxis() (float64, error) { return s.getFloat("SlabRAxis") }

// SetRAxis sets the CCW angle from 3 o'clock to the r-axis.
func (s *SlabArea) SetRAxis(value float64) error { return s.setFloat("SlabRAxis", value) }

// Behavior returns the stiffness behavior of the slab area.
func (s *SlabArea) Behavior() (SlabAreaBehavior, error) {
	return getStringEnum(&s.Data, slabAreaBehaviors, "SlabBehavior")
}

// SetBehavior sets the stiffness behavior of the slab area.
// SlabCustomBehavior is required to directly set stiffness factors.
func (s *SlabArea) SetBehavior(value SlabAreaBehavior) error {
	return setStringEnum(&s.Data, slabAreaBehaviors, "SlabBehavior", value)
}

// Location returns the boundary of the slab area.
func (s *SlabArea) Location() (geometry.Polygon2D, error) { return s.polygonLocation() }

// DefaultSlabArea is the template whose properties new slab areas copy. There
// is always exactly one, accessed through CadManager.DefaultSlabArea; it has
// no location and cannot be deleted.
type DefaultSlabArea struct {
	SlabArea
}

func newDefaultSlabArea(uid int, m *Model) *DefaultSlabArea {
	slab := &DefaultSlabArea{SlabArea: *newSlabAreaNamed(uid, m, "DefaultSlabArea")}
	slab.hasCustomStiffness = func() (bool, error) {
		behavior, err := slab.Behavior()
		if err != nil {
			return false, err
		}
		return behavior == SlabCustomBehavior, nil
	}
	return slab
}

// Delete is not supported for default entities.
func (s *DefaultSlabArea) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}
