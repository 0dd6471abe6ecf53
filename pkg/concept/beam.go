/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: beam.go
Description: Beam handle and its default (template) variant. Beams are always
located on the structure layer.
*/

package concept

import (
	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// Beam represents a beam drawn on the structure layer.
type Beam struct {
	ConcreteSpanningMember
}

func newBeamNamed(uid int, m *Model, typeName string) *Beam {
	beam := &Beam{ConcreteSpanningMember: newConcreteSpanningMember(uid, m, typeName)}
	beam.hasCustomStiffness = func() (bool, error) {
		behavior, err := beam.Behavior()
		if err != nil {
			return false, err
		}
		return behavior == BeamCustomBehavior, nil
	}
	return beam
}

func newBeam(uid int, m *Model) *Beam {
	return newBeamNamed(uid, m, "Beam")
}

// Width returns the width of the beam.
func (b *Beam) Width() (float64, error) { return b.getFloat("Width") }

// SetWidth sets the width of the beam.
func (b *Beam) SetWidth(value float64) error { return b.setFloat("Width", value) }

// Behavior returns the stiffness behavior of the beam.
func (b *Beam) Behavior() (BeamBehavior, error) {
	return getStringEnum(&b.Data, beamBehaviors, "BeamBehavior")
}

// SetBehavior sets the stiffness behavior of the beam. BeamCustomBehavior is
// required to directly set stiffness factors.
func (b *Beam) SetBehavior(value BeamBehavior) error {
	return setStringEnum(&b.Data, beamBehaviors, "BeamBehavior", value)
}

// MeshAsSlab reports whether meshing algorithms consider the beam exactly the
// same as a slab area.
func (b *Beam) MeshAsSlab() (bool, error) { return b.getBool("BeamIsMeshedAsSlab") }

// SetMeshAsSlab sets whether meshing algorithms consider the beam the same as
// a slab area.
func (b *Beam) SetMeshAsSlab(value bool) error { return b.setBool("BeamIsMeshedAsSlab", value) }

// Location returns the location of the beam spine.
func (b *Beam) Location() (geometry.LineSegment2D, error) { return b.segmentLocation() }

// DefaultBeam is the template whose properties new beams copy. There is
// always exactly one, accessed through CadManager.DefaultBeam; it has no
// location and cannot be deleted.
type DefaultBeam struct {
	Beam
}

func newDefaultBeam(uid int, m *Model) *DefaultBeam {
	beam := &DefaultBeam{Beam: *newBeamNamed(uid, m, "DefaultBeam")}
	beam.hasCustomStiffness = func() (bool, error) {
		behavior, err := beam.Behavior()
		if err != nil {
			return false, err
		}
		return behavior == BeamCustomBehavior, nil
	}
	return beam
}

// Delete is not supported for default entities.
func (b *DefaultBeam) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}
