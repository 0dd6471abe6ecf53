/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: elements.go
Description: Finite element handles on the element layer: wall, column and
slab elements plus wall element groups. Elements are generated by meshing and
all of their properties are read-only snapshots of the entity they were
generated from.
*/

package concept

import "github.com/kleascm/concept-client/pkg/geometry"

// ELEMENT

// Element is the abstract superclass handle for entities on the element
// layer.
type Element struct {
	CadEntity
}

func newElement(uid int, m *Model, typeName string) Element {
	return Element{CadEntity: newCadEntity(uid, m, typeName)}
}

// Concrete returns the concrete mix used by this element.
func (e *Element) Concrete() (*Concrete, error) {
	return entityAs[*Concrete](e.getEntity("ConcreteMix"))
}

// SUPPORT ELEMENT

// SupportElement is the abstract superclass handle for wall and column
// elements.
type SupportElement struct {
	Element
}

func newSupportElement(uid int, m *Model, typeName string) SupportElement {
	return SupportElement{Element: newElement(uid, m, typeName)}
}

// FixedNear returns the rotational fixity of the element to the slab.
func (s *SupportElement) FixedNear() (bool, error) { return s.getBool("FixedNear") }

// FixedFar returns the rotational fixity of the element at the end away from
// the slab.
func (s *SupportElement) FixedFar() (bool, error) { return s.getBool("FixedFar") }

// Compressible reports whether the element is compressible. If false, the
// element is infinitely rigid vertically.
func (s *SupportElement) Compressible() (bool, error) { return s.getBool("Compressible") }

// Height returns the vertical dimension of the element.
func (s *SupportElement) Height() (float64, error) { return s.getFloat("Height") }

// BelowSlab reports whether this element is below the slab (above the slab
// if false).
func (s *SupportElement) BelowSlab() (bool, error) {
	return s.getBoolString("SupportSet", "below", "above")
}

// UseSpecifiedLLRParameters reports whether the specified live load reduction
// parameters are used instead of the calculated ones.
func (s *SupportElement) UseSpecifiedLLRParameters() (bool, error) {
	return s.getBool("UseSpecifiedLlrParameters")
}

// SpecifiedLLRLevels returns the user-specified number of levels being
// supported, for live load reduction calculation purposes.
func (s *SupportElement) SpecifiedLLRLevels() (int, error) { return s.getInt("SpecifiedLlrLevels") }

// SpecifiedTribArea returns the user-specified tributary area being
// supported, if the live load reduction code uses tributary area.
func (s *SupportElement) SpecifiedTribArea() (float64, error) { return s.getFloat("SpecifiedTribArea") }

// SpecifiedInfluenceArea returns the user-specified influence area being
// supported, if the live load reduction code uses influence area.
func (s *SupportElement) SpecifiedInfluenceArea() (float64, error) {
	return s.getFloat("SpecifiedInfluenceArea")
}

// LLRMaxReduction returns the maximum allowed live load reduction percentage
// for this support (0 to 100).
func (s *SupportElement) LLRMaxReduction() (float64, error) { return s.getFloat("LlrMaxReduction") }

// WALL ELEMENT

// WallElement represents a wall element on the element layer.
type WallElement struct {
	SupportElement
}

func newWallElement(uid int, m *Model) *WallElement {
	return &WallElement{SupportElement: newSupportElement(uid, m, "WallElement")}
}

// ShearWall reports whether the wall element is fixed to the slab
// horizontally.
func (w *WallElement) ShearWall() (bool, error) { return w.getBool("ShearWall") }

// Thickness returns the through-thickness of the wall element.
func (w *WallElement) Thickness() (float64, error) { return w.getFloat("WallThickness") }

// Location returns the location of the wall element spine.
func (w *WallElement) Location() (geometry.LineSegment2D, error) { return w.segmentLocation() }

// COLUMN ELEMENT

// ColumnElement represents a column element on the element layer.
type ColumnElement struct {
	SupportElement
}

func newColumnElement(uid int, m *Model) *ColumnElement {
	return &ColumnElement{SupportElement: newSupportElement(uid, m, "ColumnElement")}
}

// B returns the width of the column element. If zero, the column is round.
func (c *ColumnElement) B() (float64, error) { return c.getFloat("B") }

// D returns the depth of the column element (diameter if B is zero).
func (c *ColumnElement) D() (float64, error) { return c.getFloat("D") }

// IFactor returns the bending stiffness multiplier ("crack factor").
func (c *ColumnElement) IFactor() (float64, error) { return c.getFloat("IFactor") }

// Angle returns the plan view angle of the column element. At zero, the B
// dimension is along the x-axis.
func (c *ColumnElement) Angle() (float64, error) { return c.getFloat("Angle") }

// Roller reports whether the far end of the column element is free to move
// laterally.
func (c *ColumnElement) Roller() (bool, error) { return c.getBool("Roller") }

// Location returns the location of the column element.
func (c *ColumnElement) Location() (geometry.Point2D, error) { return c.pointLocation() }

// SLAB ELEMENT

// SlabElement represents a slab element on the element layer. A single handle
// type covers both triangular and quadrilateral elements.
type SlabElement struct {
	Element
}

func newSlabElement(uid int, m *Model) *SlabElement {
	return &SlabElement{Element: newElement(uid, m, "SlabElement")}
}

// Thickness returns the thickness of the slab or beam.
func (s *SlabElement) Thickness() (float64, error) { return s.getFloat("SlabThickness") }

// TOC returns the top of concrete elevation.
func (s *SlabElement) TOC() (float64, error) { return s.getFloat("TOC") }

// KMr returns the stiffness multiplier for bending moments about the r-axis.
func (s *SlabElement) KMr() (float64, error) { return s.getFloat("SlabKMr") }

// KMs returns the stiffness multiplier for bending moments about the s-axis.
func (s *SlabElement) KMs() (float64, error) { return s.getFloat("SlabKMs") }

// KMrs returns the stiffness multiplier for twisting moments about the r-s
// axes.
func (s *SlabElement) KMrs() (float64, error) { return s.getFloat("SlabKMrs") }

// KFr returns the stiffness multiplier for axial forces in the r-axis
// direction.
func (s *SlabElement) KFr() (float64, error) { return s.getFloat("SlabKFr") }

// KFs returns the stiffness multiplier for axial forces in the s-axis
// direction.
func (s *SlabElement) KFs() (float64, error) { return s.getFloat("SlabKFs") }

// KVrs returns the stiffness multiplier for in-plane shear forces along the
// r-s axes.
func (s *SlabElement) KVrs() (float64, error) { return s.getFloat("SlabKVrs") }

// RAxis returns the counter-clockwise angle from 3 o'clock to the r-axis. At
// zero, the r-axis is parallel to the global x-axis.
func (s *SlabElement) RAxis() (float64, error) { return s.getFloat("SlabRAxis") }

// Location returns the boundary of the slab element.
func (s *SlabElement) Location() (geometry.Polygon2D, error) { return s.polygonLocation() }

// WALL ELEMENT GROUP

// WallElementGroup represents a group of wall elements whose reactions are
// summarized together.
type WallElementGroup struct {
	CadEntity
}

func newWallElementGroup(uid int, m *Model) *WallElementGroup {
	return &WallElementGroup{CadEntity: newCadEntity(uid, m, "WallElementGroup")}
}

// Centroid returns the centroid location for the near end of this group.
func (w *WallElementGroup) Centroid() (geometry.Point3D, error) {
	return w.getPoint3D("CentroidNear")
}

// ReactionAngle returns the angle the group reactions are reported about
// (anti-clockwise from 3 o'clock; at zero the reaction x-axis aligns with the
// global x-axis).
func (w *WallElementGroup) ReactionAngle() (float64, error) { return w.getFloat("Angle") }

// TotalArea returns the total wall area for this group, summed over the
// individual wall elements.
func (w *WallElementGroup) TotalArea() (float64, error) { return w.getFloat("TotalWallArea") }

// TotalLength returns the total length for this group, summed over the
// individual wall elements.
func (w *WallElementGroup) TotalLength() (float64, error) { return w.getFloat("TotalWallLength") }
