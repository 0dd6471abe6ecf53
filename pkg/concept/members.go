/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: members.go
Description: Abstract concrete-member handles shared by the structure layer
entities. ConcreteMember carries the concrete mix reference; ConcreteSupport
adds the support fixity and live load reduction properties; and
ConcreteSpanningMember adds thickness, priority and the custom stiffness
multipliers, which are only settable when the member behavior is custom.
*/

package concept

import (
	"github.com/kleascm/concept-client/pkg/protocol"
)

// CONCRETE MEMBER

// ConcreteMember is the abstract superclass handle of concrete members
// (spanning members and supports). Concrete members are always located on the
// structure layer.
type ConcreteMember struct {
	CadEntity
}

func newConcreteMember(uid int, m *Model, typeName string) ConcreteMember {
	return ConcreteMember{CadEntity: newCadEntity(uid, m, typeName)}
}

// Concrete returns the concrete mix used by this member.
func (c *ConcreteMember) Concrete() (*Concrete, error) {
	return entityAs[*Concrete](c.getEntity("ConcreteMix"))
}

// SetConcrete sets the concrete mix used by this member. Nil is not a valid
// value.
func (c *ConcreteMember) SetConcrete(value *Concrete) error {
	if value == nil {
		return &protocol.InvalidValueError{Message: "nil is not a valid value for ConcreteMix"}
	}
	return c.setEntity("ConcreteMix", value)
}

// CONCRETE SUPPORT

// ConcreteSupport is the abstract superclass handle for columns and walls.
type ConcreteSupport struct {
	ConcreteMember
}

func newConcreteSupport(uid int, m *Model, typeName string) ConcreteSupport {
	return ConcreteSupport{ConcreteMember: newConcreteMember(uid, m, typeName)}
}

// FixedNear returns the rotational fixity of the support to the slab.
func (c *ConcreteSupport) FixedNear() (bool, error) { return c.getBool("FixedNear") }

// SetFixedNear sets the rotational fixity of the support to the slab.
func (c *ConcreteSupport) SetFixedNear(value bool) error { return c.setBool("FixedNear", value) }

// FixedFar returns the rotational fixity of the support at the end away from
// the slab.
func (c *ConcreteSupport) FixedFar() (bool, error) { return c.getBool("FixedFar") }

// SetFixedFar sets the rotational fixity of the support at the end away from
// the slab.
func (c *ConcreteSupport) SetFixedFar(value bool) error { return c.setBool("FixedFar", value) }

// Compressible reports whether the support is compressible. If false the
// support is infinitely rigid vertically.
func (c *ConcreteSupport) Compressible() (bool, error) { return c.getBool("Compressible") }

// SetCompressible sets whether the support is compressible.
func (c *ConcreteSupport) SetCompressible(value bool) error { return c.setBool("Compressible", value) }

// Height returns the vertical dimension of the support.
func (c *ConcreteSupport) Height() (float64, error) { return c.getFloat("Height") }

// SetHeight sets the vertical dimension of the support.
func (c *ConcreteSupport) SetHeight(value float64) error { return c.setFloat("Height", value) }

// BelowSlab reports whether this support is below the slab (above if false).
func (c *ConcreteSupport) BelowSlab() (bool, error) {
	return c.getBoolString("SupportSet", "below", "above")
}

// SetBelowSlab sets whether this support is below the slab.
func (c *ConcreteSupport) SetBelowSlab(value bool) error {
	return c.setBoolString("SupportSet", "below", "above", value)
}

// UseSpecifiedLLRParameters reports whether the specified live load reduction
// parameters are used instead of the calculated ones.
func (c *ConcreteSupport) UseSpecifiedLLRParameters() (bool, error) {
	return c.getBool("UseSpecifiedLlrParameters")
}

// SetUseSpecifiedLLRParameters sets whether the specified live load reduction
// parameters are used instead of the calculated ones.
func (c *ConcreteSupport) SetUseSpecifiedLLRParameters(value bool) error {
	return c.setBool("UseSpecifiedLlrParameters", value)
}

// SpecifiedLLRLevels returns the user-specified number of levels being
// supported, for live load reduction purposes.
func (c *ConcreteSupport) SpecifiedLLRLevels() (int, error) { return c.getInt("SpecifiedLlrLevels") }

// SetSpecifiedLLRLevels sets the user-specified number of levels being
// supported.
func (c *ConcreteSupport) SetSpecifiedLLRLevels(value int) error {
	return c.setInt("SpecifiedLlrLevels", value)
}

// SpecifiedTribArea returns the user-specified tributary area being
// supported, if the live load reduction code uses tributary area.
func (c *ConcreteSupport) SpecifiedTribArea() (float64, error) {
	return c.getFloat("SpecifiedTribArea")
}

// SetSpecifiedTribArea sets the user-specified tributary area being supported.
func (c *ConcreteSupport) SetSpecifiedTribArea(value float64) error {
	return c.setFloat("SpecifiedTribArea", value)
}

// SpecifiedInfluenceArea returns the user-specified influence area being
// supported, if the live load reduction code uses influence area.
func (c *ConcreteSupport) SpecifiedInfluenceArea() (float64, error) {
	return c.getFloat("SpecifiedInfluenceArea")
}

// SetSpecifiedInfluenceArea sets the user-specified influence area being
// supported.
func (c *ConcreteSupport) SetSpecifiedInfluenceArea(value float64) error {
	return c.setFloat("SpecifiedInfluenceArea", value)
}

// LLRMaxReduction returns the maximum allowed live load reduction percentage
// for this support (0 to 100).
func (c *ConcreteSupport) LLRMaxReduction() (float64, error) { return c.getFloat("LlrMaxReduction") }

// SetLLRMaxReduction sets the maximum allowed live load reduction percentage
// for this support.
func (c *ConcreteSupport) SetLLRMaxReduction(value float64) error {
	return c.setFloat("LlrMaxReduction", value)
}

// CONCRETE SPANNING MEMBER

// ConcreteSpanningMember is the abstract superclass handle for beams and slab
// areas.
type ConcreteSpanningMember struct {
	ConcreteMember

	// hasCustomStiffness reports whether the member behavior allows direct
	// stiffness factor writes. Set by the concrete subtypes.
	hasCustomStiffness func() (bool, error)
}

func newConcreteSpanningMember(uid int, m *Model, typeName string) ConcreteSpanningMember {
	return ConcreteSpanningMember{ConcreteMember: newConcreteMember(uid, m, typeName)}
}

// Thickness returns the thickness of the slab or beam.
func (c *ConcreteSpanningMember) Thickness() (float64, error) { return c.getFloat("SlabThickness") }

// SetThickness sets the thickness of the slab or beam.
func (c *ConcreteSpanningMember) SetThickness(value float64) error {
	return c.setFloat("SlabThickness", value)
}

// TOC returns the top of concrete elevation.
func (c *ConcreteSpanningMember) TOC() (float64, error) { return c.getFloat("TOC") }

// SetTOC sets the top of concrete elevation.
func (c *ConcreteSpanningMember) SetTOC(value float64) error { return c.setFloat("TOC", value) }

// Priority returns the relative priority of this vs other items (slab areas,
// beams, slab openings), used in meshing.
func (c *ConcreteSpanningMember) Priority() (int, error) { return c.getInt("Priority") }

// SetPriority sets the relative meshing priority of this member.
func (c *ConcreteSpanningMember) SetPriority(value int) error { return c.setInt("Priority", value) }

// Stiffness multipliers can always be read; they are only settable when the
// member behavior is custom.

// KMr returns the stiffness multiplier for bending moments about the r-axis.
func (c *ConcreteSpanningMember) KMr() (float64, error) { return c.getFloat("SlabKMr") }

// KMs returns the stiffness multiplier for bending moments about the s-axis.
func (c *ConcreteSpanningMember) KMs() (float64, error) { return c.getFloat("SlabKMs") }

// KMrs returns the stiffness multiplier for twisting moments about the r-s
// axes.
func (c *ConcreteSpanningMember) KMrs() (float64, error) { return c.getFloat("SlabKMrs") }

// KFr returns the stiffness multiplier for axial forces in the r-axis
// direction.
func (c *ConcreteSpanningMember) KFr() (float64, error) { return c.getFloat("SlabKFr") }

// KFs returns the stiffness multiplier for axial forces in the s-axis
// direction.
func (c *ConcreteSpanningMember) KFs() (float64, error) { return c.getFloat("SlabKFs") }

// KVrs returns the stiffness multiplier for in-plane shear forces along the
// r-s axes.
func (c *ConcreteSpanningMember) KVrs() (float64, error) { return c.getFloat("SlabKVrs") }

// SetKMr sets the stiffness multiplier for bending moments about the r-axis.
func (c *ConcreteSpanningMember) SetKMr(value float64) error { return c.setStiffness("SlabKMr", value) }

// SetKMs sets the stiffness multiplier for bending moments about the s-axis.
func (c *ConcreteSpanningMember) SetKMs(value float64) error { return c.setStiffness("SlabKMs", value) }

// SetKMrs sets the stiffness multiplier for twisting moments about the r-s
// axes.
func (c *ConcreteSpanningMember) SetKMrs(value float64) error {
	return c.setStiffness("SlabKMrs", value)
}

// SetKFr sets the stiffness multiplier for axial forces in the r-axis
// direction.
func (c *ConcreteSpanningMember) SetKFr(value float64) error { return c.setStiffness("SlabKFr", value) }

// SetKFs sets the stiffness multiplier for axial forces in the s-axis
// direction.
func (c *ConcreteSpanningMember) SetKFs(value float64) error { return c.setStiffness("SlabKFs", value) }

// SetKVrs sets the stiffness multiplier for in-plane shear forces along the
// r-s axes.
func (c *ConcreteSpanningMember) SetKVrs(value float64) error {
	return c.setStiffness("SlabKVrs", value)
}

func (c *ConcreteSpanningMember) setStiffness(name string, value float64) error {
	if err := c.raiseIfSetReadOnly(); err != nil {
		return err
	}

	custom, err := c.hasCustomStiffness()
	if err != nil {
		return err
	}
	if !custom {
		return &protocol.InvalidValueError{Message: "cannot set stiffness factors unless the behavior is custom"}
	}
	return c.setFloat(name, value)
}
