/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loads.go
Description: Force load handles (point, line and area loads) and their
default (template) variants. Force loads always live on a force loading
layer; line and area loads carry per-vertex force values so the convenience
setters fan a single value out to every vertex.
*/

package concept

import (
	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// FORCE LOAD

// ForceLoad is the abstract superclass handle for loads on a force loading
// layer.
type ForceLoad struct {
	CadEntity
}

func newForceLoad(uid int, m *Model, typeName string) ForceLoad {
	return ForceLoad{CadEntity: newCadEntity(uid, m, typeName)}
}

// Elevation returns the elevation of the load relative to the surface of the
// slab or beam it is applied to.
func (f *ForceLoad) Elevation() (float64, error) { return f.getFloat("LoadElevation") }

// SetElevation sets the elevation of the load relative to the surface of the
// slab or beam it is applied to.
func (f *ForceLoad) SetElevation(value float64) error { return f.setFloat("LoadElevation", value) }

// POINT LOAD

// PointLoad represents a concentrated load on a force loading layer.
type PointLoad struct {
	ForceLoad
}

func newPointLoadNamed(uid int, m *Model, typeName string) *PointLoad {
	return &PointLoad{ForceLoad: newForceLoad(uid, m, typeName)}
}

func newPointLoad(uid int, m *Model) *PointLoad {
	return newPointLoadNamed(uid, m, "PointLoad")
}

// Fx returns the force value in the x-axis direction.
func (p *PointLoad) Fx() (float64, error) { return p.getFloat("PLFx") }

// SetFx sets the force value in the x-axis direction.
func (p *PointLoad) SetFx(value float64) error { return p.setFloat("PLFx", value) }

// Fy returns the force value in the y-axis direction.
func (p *PointLoad) Fy() (float64, error) { return p.getFloat("PLFy") }

// SetFy sets the force value in the y-axis direction.
func (p *PointLoad) SetFy(value float64) error { return p.setFloat("PLFy", value) }

// Fz returns the force value in the z-axis direction.
func (p *PointLoad) Fz() (float64, error) { return p.getFloat("PLFz") }

// SetFz sets the force value in the z-axis direction.
func (p *PointLoad) SetFz(value float64) error { return p.setFloat("PLFz", value) }

// Mx returns the moment value about the x-axis.
func (p *PointLoad) Mx() (float64, error) { return p.getFloat("PLMx") }

// SetMx sets the moment value about the x-axis.
func (p *PointLoad) SetMx(value float64) error { return p.setFloat("PLMx", value) }

// My returns the moment value about the y-axis.
func (p *PointLoad) My() (float64, error) { return p.getFloat("PLMy") }

// SetMy sets the moment value about the y-axis.
func (p *PointLoad) SetMy(value float64) error { return p.setFloat("PLMy", value) }

// Location returns the location of this point load.
func (p *PointLoad) Location() (geometry.Point2D, error) { return p.pointLocation() }

// ZeroLoadValues sets all force and moment values to zero.
func (p *PointLoad) ZeroLoadValues() error {
	for _, set := range []func(float64) error{p.SetFx, p.SetFy, p.SetFz, p.SetMx, p.SetMy} {
		if err := set(0); err != nil {
			return err
		}
	}
	return nil
}

// DefaultPointLoad is the template whose properties new point loads copy.
// There is always exactly one, accessed through CadManager.DefaultPointLoad;
// it has no location and cannot be deleted.
type DefaultPointLoad struct {
	PointLoad
}

func newDefaultPointLoad(uid int, m *Model) *DefaultPointLoad {
	return &DefaultPointLoad{PointLoad: *newPointLoadNamed(uid, m, "DefaultPointLoad")}
}

// Delete is not supported for default entities.
func (p *DefaultPointLoad) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}

// LINE LOAD

// LineLoad represents a load along a segment on a force loading layer, with
// independent values at the two segment ends.
type LineLoad struct {
	ForceLoad
}

func newLineLoadNamed(uid int, m *Model, typeName string) *LineLoad {
	return &LineLoad{ForceLoad: newForceLoad(uid, m, typeName)}
}

func newLineLoad(uid int, m *Model) *LineLoad {
	return newLineLoadNamed(uid, m, "LineLoad")
}

// Fx0 returns the force value in the x-axis direction at the start of the
// segment.
func (l *LineLoad) Fx0() (float64, error) { return l.getFloat("LLFx0") }

// SetFx0 sets the force value in the x-axis direction at the start of the
// segment.
func (l *LineLoad) SetFx0(value float64) error { return l.setFloat("LLFx0", value) }

// Fx1 returns the force value in the x-axis direction at the end of the
// segment.
func (l *LineLoad) Fx1() (float64, error) { return l.getFloat("LLFx1") }

// SetFx1 sets the force value in the x-axis direction at the end of the
// segment.
func (l *LineLoad) SetFx1(value float64) error { return l.setFloat("LLFx1", value) }

// Fy0 returns the force value in the y-axis direction at the start of the
// segment.
func (l *LineLoad) Fy0() (float64, error) { return l.getFloat("LLFy0") }

// SetFy0 sets the force value in the y-axis direction at the start of the
// segment.
func (l *LineLoad) SetFy0(value float64) error { return l.setFloat("LLFy0", value) }

// Fy1 returns the force value in the y-axis direction at the end of the
// segment.
func (l *LineLoad) Fy1() (float64, error) { return l.getFloat("LLFy1") }

// SetFy1 sets the force value in the y-axis direction at the end of the
// segment.
func (l *LineLoad) SetFy1(value float64) error { return l.setFloat("LLFy1", value) }

// Fz0 returns the force value in the z-axis direction at the start of the
// segment.
func (l *LineLoad) Fz0() (float64, error) { return l.getFloat("LLFz0") }

// SetFz0 sets the force value in the z-axis direction at the start of the
// segment.
func (l *LineLoad) SetFz0(value float64) error { return l.setFloat("LLFz0", value) }

// Fz1 returns the force value in the z-axis direction at the end of the
// segment.
func (l *LineLoad) Fz1() (float64, error) { return l.getFloat("LLFz1") }

// SetFz1 sets the force value in the z-axis direction at the end of the
// segment.
func (l *LineLoad) SetFz1(value float64) error { return l.setFloat("LLFz1", value) }

// Mx0 returns the moment value about the x-axis at the start of the segment.
func (l *LineLoad) Mx0() (float64, error) { return l.getFloat("LLMx0") }

// SetMx0 sets the moment value about the x-axis at the start of the segment.
func (l *LineLoad) SetMx0(value float64) error { return l.setFloat("LLMx0", value) }

// Mx1 returns the moment value about the x-axis at the end of the segment.
func (l *LineLoad) Mx1() (float64, error) { return l.getFloat("LLMx1") }

// SetMx1 sets the moment value about the x-axis at the end of the segment.
func (l *LineLoad) SetMx1(value float64) error { return l.setFloat("LLMx1", value) }

// My0 returns the moment value about the y-axis at the start of the segment.
func (l *LineLoad) My0() (float64, error) { return l.getFloat("LLMy0") }

// SetMy0 sets the moment value about the y-axis at the start of the segment.
func (l *LineLoad) SetMy0(value float64) error { return l.setFloat("LLMy0", value) }

// My1 returns the moment value about the y-axis at the end of the segment.
func (l *LineLoad) My1() (float64, error) { return l.getFloat("LLMy1") }

// SetMy1 sets the moment value about the y-axis at the end of the segment.
func (l *LineLoad) SetMy1(value float64) error { return l.setFloat("LLMy1", value) }

// Location returns the location of this line load.
func (l *LineLoad) Location() (geometry.LineSegment2D, error) { return l.segmentLocation() }

// SetLoadValues sets the same force and moment values at both segment ends.
func (l *LineLoad) SetLoadValues(fx, fy, fz, mx, my float64) error {
	values := []struct {
		set   func(float64) error
		value float64
	}{
		{l.SetFx0, fx}, {l.SetFx1, fx},
		{l.SetFy0, fy}, {l.SetFy1, fy},
		{l.SetFz0, fz}, {l.SetFz1, fz},
		{l.SetMx0, mx}, {l.SetMx1, mx},
		{l.SetMy0, my}, {l.SetMy1, my},
	}
	for _, v := range values {
		if err := v.set(v.value); err != nil {
			return err
		}
	}
	return nil
}

// ZeroLoadValues sets all force and moment values to zero.
func (l *LineLoad) ZeroLoadValues() error {
	return l.SetLoadValues(0, 0, 0, 0, 0)
}

// DefaultLineLoad is the template whose properties new line loads copy. There
// is always exactly one, accessed through CadManager.DefaultLineLoad; it has
// no location and cannot be deleted.
type DefaultLineLoad struct {
	LineLoad
}

func newDefaultLineLoad(uid int, m *Model) *DefaultLineLoad {
	return &DefaultLineLoad{LineLoad: *newLineLoadNamed(uid, m, "DefaultLineLoad")}
}

// Delete is not supported for default entities.
func (l *DefaultLineLoad) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}

// AREA LOAD

// AreaLoad represents a load over a polygon on a force loading layer, with
// independent values at the first three shape points defining a planar
// distribution.
type AreaLoad struct {
	ForceLoad
}

func newAreaLoadNamed(uid int, m *Model, typeName string) *AreaLoad {
	return &AreaLoad{ForceLoad: newForceLoad(uid, m, typeName)}
}

func newAreaLoad(uid int, m *Model) *AreaLoad {
	return newAreaLoadNamed(uid, m, "AreaLoad")
}

// Fx0 returns the force value in the x-axis direction at the first point in
// the shape.
func (a *AreaLoad) Fx0() (float64, error) { return a.getFloat("ALFx0") }

// SetFx0 sets the force value in the x-axis direction at the first point in
// the shape.
func (a *AreaLoad) SetFx0(value float64) error { return a.setFloat("ALFx0", value) }

// Fx1 returns the force value in the x-axis direction at the second point in
// the shape.
func (a *AreaLoad) Fx1() (float64, error) { return a.getFloat("ALFx1") }

// SetFx1 sets the force value in the x-axis direction at the second point in
// the shape.
func (a *AreaLoad) SetFx1(value float64) error { return a.setFloat("ALFx1", value) }

// Fx2 returns the force value in the x-axis direction at the third point in
// the shape.
func (a *AreaLoad) Fx2() (float64, error) { return a.getFloat("ALFx2") }

// SetFx2 sets the force value in the x-axis direction at the third point in
// the shape.
func (a *AreaLoad) SetFx2(value float64) error { return a.setFloat("ALFx2", value) }

// Fy0 returns the force value in the y-axis direction at the first point in
// the shape.
func (a *AreaLoad) Fy0() (float64, error) { return a.getFloat("ALFy0") }

// SetFy0 sets the force value in the y-axis direction at the first point in
// the shape.
func (a *AreaLoad) SetFy0(value float64) error { return a.setFloat("ALFy0", value) }

// Fy1 returns the force value in the y-axis direction at the second point in
// the shape.
func (a *AreaLoad) Fy1() (float64, error) { return a.getFloat("ALFy1") }

// SetFy1 sets the force value in the y-axis direction at the second point in
// the shape.
func (a *AreaLoad) SetFy1(value float64) error { return a.setFloat("ALFy1", value) }

// Fy2 returns the force value in the y-axis direction at the third point in
// the shape.
func (a *AreaLoad) Fy2() (float64, error) { return a.getFloat("ALFy2") }

// SetFy2 sets the force value in the y-axis direction at the third point in
// the shape.
func (a *AreaLoad) SetFy2(value float64) error { return a.setFloat("ALFy2", value) }

// Fz0 returns the force value in the z-axis direction at the first point in
// the shape.
func (a *AreaLoad) Fz0() (float64, error) { return a.getFloat("ALFz0") }

// SetFz0 sets the force value in the z-axis direction at the first point in
// the shape.
func (a *AreaLoad) SetFz0(value float64) error { return a.setFloat("ALFz0", value) }

// Fz1 returns the force value in the z-axis direction at the second point in
// the shape.
func (a *AreaLoad) Fz1() (float64, error) { return a.getFloat("ALFz1") }

// SetFz1 sets the force value in the z-axis direction at the second point in
// the shape.
func (a *AreaLoad) SetFz1(value float64) error { return a.setFloat("ALFz1", value) }

// Fz2 returns the force value in the z-axis direction at the third point in
// the shape.
func (a *AreaLoad) Fz2() (float64, error) { return a.getFloat("ALFz2") }

// SetFz2 sets the force value in the z-axis direction at the third point in
// the shape.
func (a *AreaLoad) SetFz2(value float64) error { return a.setFloat("ALFz2", value) }

// Mx0 returns the moment value about the x-axis at the first point in the
// shape.
func (a *AreaLoad) Mx0() (float64, error) { return a.getFloat("ALMx0") }

// SetMx0 sets the moment value about the x-axis at the first point in the
// shape.
func (a *AreaLoad) SetMx0(value float64) error { return a.setFloat("ALMx0", value) }

// Mx1 returns the moment value about the x-axis at the second point in the
// shape.
func (a *AreaLoad) Mx1() (float64, error) { return a.getFloat("ALMx1") }

// SetMx1 sets the moment value about the x-axis at the second point in the
// shape.
func (a *AreaLoad) SetMx1(value float64) error { return a.setFloat("ALMx1", value) }

// Mx2 returns the moment value about the x-axis at the third point in the
// shape.
func (a *AreaLoad) Mx2() (float64, error) { return a.getFloat("ALMx2") }

// SetMx2 sets the moment value about the x-axis at the third point in the
// shape.
func (a *AreaLoad) SetMx2(value float64) error { return a.setFloat("ALMx2", value) }

// My0 returns the moment value about the y-axis at the first point in the
// shape.
func (a *AreaLoad) My0() (float64, error) { return a.getFloat("ALMy0") }

// SetMy0 sets the moment value about the y-axis at the first point in the
// shape.
func (a *AreaLoad) SetMy0(value float64) error { return a.setFloat("ALMy0", value) }

// My1 returns the moment value about the y-axis at the second point in the
// shape.
func (a *AreaLoad) My1() (float64, error) { return a.getFloat("ALMy1") }

// SetMy1 sets the moment value about the y-axis at the second point in the
// shape.
func (a *AreaLoad) SetMy1(value float64) error { return a.setFloat("ALMy1", value) }

// My2 returns the moment value about the y-axis at the third point in the
// shape.
func (a *AreaLoad) My2() (float64, error) { return a.getFloat("ALMy2") }

// SetMy2 sets the moment value about the y-axis at the third point in the
// shape.
func (a *AreaLoad) SetMy2(value float64) error { return a.setFloat("ALMy2", value) }

// Location returns the boundary of this area load.
func (a *AreaLoad) Location() (geometry.Polygon2D, error) { return a.polygonLocation() }

// SetLoadValues sets the same force and moment values at all three shape
// points (a uniform distribution).
func (a *AreaLoad) SetLoadValues(fx, fy, fz, mx, my float64) error {
	values := []struct {
		set   func(float64) error
		value float64
	}{
		{a.SetFx0, fx}, {a.SetFx1, fx}, {a.SetFx2, fx},
		{a.SetFy0, fy}, {a.SetFy1, fy}, {a.SetFy2, fy},
		{a.SetFz0, fz}, {a.SetFz1, fz}, {a.SetFz2, fz},
		{a.SetMx0, mx}, {a.SetMx1, mx}, {a.SetMx2, mx},
		{a.SetMy0, my}, {a.SetMy1, my}, {a.SetMy2, my},
	}
	for _, v := range values {
		if err := v.set(v.value); err != nil {
			return err
		}
	}
	return nil
}

// ZeroLoadValues sets all force and moment values to zero.
func (a *AreaLoad) ZeroLoadValues() error {
	return a.SetLoadValues(0, 0, 0, 0, 0)
}

// DefaultAreaLoad is the template whose properties new area loads copy. There
// is always exactly one, accessed through CadManager.DefaultAreaLoad; it has
// no location and cannot be deleted.
type DefaultAreaLoad struct {
	AreaLoad
}

func newDefaultAreaLoad(uid int, m *Model) *DefaultAreaLoad {
	return &DefaultAreaLoad{AreaLoad: *newAreaLoadNamed(uid, m, "DefaultAreaLoad")}
}

// Delete is not supported for default entities.
func (a *DefaultAreaLoad) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}
