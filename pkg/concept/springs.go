/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: springs.go
Description: Spring handles (point, line and area springs) and their default
(template) variants. Springs are always located on the structure layer; line
and area springs carry per-vertex stiffness values, so the convenience
setters fan a single value out to every vertex.
*/

package concept

import (
	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// SPRING

// Spring is the abstract superclass handle for springs on the structure
// layer.
type Spring struct {
	CadEntity
}

func newSpring(uid int, m *Model, typeName string) Spring {
	return Spring{CadEntity: newCadEntity(uid, m, typeName)}
}

// Elevation returns the elevation of the spring relative to the soffit of
// the slab or beam it is applied to.
func (s *Spring) Elevation() (float64, error) { return s.getFloat("SpringElevation") }

// SetElevation sets the elevation of the spring relative to the soffit of
// the slab or beam it is applied to.
func (s *Spring) SetElevation(value float64) error { return s.setFloat("SpringElevation", value) }

// Angle returns the counter-clockwise angle of the spring r-axis about the
// z-axis, with angle 0 being parallel to the x-axis.
func (s *Spring) Angle() (float64, error) { return s.getFloat("SpringAngle") }

// SetAngle sets the counter-clockwise angle of the spring r-axis.
func (s *Spring) SetAngle(value float64) error { return s.setFloat("SpringAngle", value) }

// POINT SPRING

// PointSpring represents a point spring on the structure layer.
type PointSpring struct {
	Spring
}

func newPointSpringNamed(uid int, m *Model, typeName string) *PointSpring {
	return &PointSpring{Spring: newSpring(uid, m, typeName)}
}

func newPointSpring(uid int, m *Model) *PointSpring {
	return newPointSpringNamed(uid, m, "PointSpring")
}

// KFr returns the lateral spring stiffness in the r-axis direction.
func (p *PointSpring) KFr() (float64, error) { return p.getFloat("PSKFr") }

// SetKFr sets the lateral spring stiffness in the r-axis direction.
func (p *PointSpring) SetKFr(value float64) error { return p.setFloat("PSKFr", value) }

// KFs returns the lateral spring stiffness in the s-axis direction.
func (p *PointSpring) KFs() (float64, error) { return p.getFloat("PSKFs") }

// SetKFs sets the lateral spring stiffness in the s-axis direction.
func (p *PointSpring) SetKFs(value float64) error { return p.setFloat("PSKFs", value) }

// KFz returns the lateral spring stiffness in the z-axis direction.
func (p *PointSpring) KFz() (float64, error) { return p.getFloat("PSKFz") }

// SetKFz sets the lateral spring stiffness in the z-axis direction.
func (p *PointSpring) SetKFz(value float64) error { return p.setFloat("PSKFz", value) }

// KMr returns the rotational spring stiffness about the r-axis.
func (p *PointSpring) KMr() (float64, error) { return p.getFloat("PSKMr") }

// SetKMr sets the rotational spring stiffness about the r-axis.
func (p *PointSpring) SetKMr(value float64) error { return p.setFloat("PSKMr", value) }

// KMs returns the rotational spring stiffness about the s-axis.
func (p *PointSpring) KMs() (float64, error) { return p.getFloat("PSKMs") }

// SetKMs sets the rotational spring stiffness about the s-axis.
func (p *PointSpring) SetKMs(value float64) error { return p.setFloat("PSKMs", value) }

// Location returns the location of this point spring.
func (p *PointSpring) Location() (geometry.Point2D, error) { return p.pointLocation() }

// ZeroSpringStiffnesses sets all spring stiffness values to zero.
func (p *PointSpring) ZeroSpringStiffnesses() error {
	for _, set := range []func(float64) error{p.SetKFr, p.SetKFs, p.SetKFz, p.SetKMr, p.SetKMs} {
		if err := set(0); err != nil {
			return err
		}
	}
	return nil
}

// DefaultPointSpring is the template whose properties new point springs copy.
// There is always exactly one, accessed through CadManager.DefaultPointSpring;
// it has no location and cannot be deleted.
type DefaultPointSpring struct {
	PointSpring
}

func newDefaultPointSpring(uid int, m *Model) *DefaultPointSpring {
	return &DefaultPointSpring{PointSpring: *newPointSpringNamed(uid, m, "DefaultPointSpring")}
}

// Delete is not supported for default entities.
func (p *DefaultPointSpring) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}

// LINE SPRING

// LineSpring represents a spring along a segment on the structure layer, with
// independent stiffness values at the two segment ends.
type LineSpring struct {
	Spring
}

func newLineSpringNamed(uid int, m *Model, typeName string) *LineSpring {
	return &LineSpring{Spring: newSpring(uid, m, typeName)}
}

func newLineSpring(uid int, m *Model) *LineSpring {
	return newLineSpringNamed(uid, m, "LineSpring")
}

// KFr0 returns the lateral spring stiffness in the r-axis direction at the
// start point.
func (l *LineSpring) KFr0() (float64, error) { return l.getFloat("LSKFr0") }

// SetKFr0 sets the lateral spring stiffness in the r-axis direction at the
// start point.
func (l *LineSpring) SetKFr0(value float64) error { return l.setFloat("LSKFr0", value) }

// KFr1 returns the lateral spring stiffness in the r-axis direction at the
// end point.
func (l *LineSpring) KFr1() (float64, error) { return l.getFloat("LSKFr1") }

// SetKFr1 sets the lateral spring stiffness in the r-axis direction at the
// end point.
func (l *LineSpring) SetKFr1(value float64) error { return l.setFloat("LSKFr1", value) }

// KFs0 returns the lateral spring stiffness in the s-axis direction at the
// start point.
func (l *LineSpring) KFs0() (float64, error) { return l.getFloat("LSKFs0") }

// SetKFs0 sets the lateral spring stiffness in the s-axis direction at the
// start point.
func (l *LineSpring) SetKFs0(value float64) error { return l.setFloat("LSKFs0", value) }

// KFs1 returns the lateral spring stiffness in the s-axis direction at the
// end point.
func (l *LineSpring) KFs1() (float64, error) { return l.getFloat("LSKFs1") }

// SetKFs1 sets the lateral spring stiffness in the s-axis direction at the
// end point.
func (l *LineSpring) SetKFs1(value float64) error { return l.setFloat("LSKFs1", value) }

// KFz0 returns the lateral spring stiffness in the z-axis direction at the
// start point.
func (l *LineSpring) KFz0() (float64, error) { return l.getFloat("LSKFz0") }

// SetKFz0 sets the lateral spring stiffness in the z-axis direction at the
// start point.
func (l *LineSpring) SetKFz0(value float64) error { return l.setFloat("LSKFz0", value) }

// KFz1 returns the lateral spring stiffness in the z-axis direction at the
// end point.
func (l *LineSpring) KFz1() (float64, error) { return l.getFloat("LSKFz1") }

// SetKFz1 sets the lateral spring stiffness in the z-axis direction at the
// end point.
func (l *LineSpring) SetKFz1(value float64) error { return l.setFloat("LSKFz1", value) }

// KMr0 returns the rotational spring stiffness about the r-axis at the start
// point.
func (l *LineSpring) KMr0() (float64, error) { return l.getFloat("LSKMr0") }

// SetKMr0 sets the rotational spring stiffness about the r-axis at the start
// point.
func (l *LineSpring) SetKMr0(value float64) error { return l.setFloat("LSKMr0", value) }

// KMr1 returns the rotational spring stiffness about the r-axis at the end
// point.
func (l *LineSpring) KMr1() (float64, error) { return l.getFloat("LSKMr1") }

// SetKMr1 sets the rotational spring stiffness about the r-axis at the end
// point.
func (l *LineSpring) SetKMr1(value float64) error { return l.setFloat("LSKMr1", value) }

// KMs0 returns the rotational spring stiffness about the s-axis at the start
// point.
func (l *LineSpring) KMs0() (float64, error) { return l.getFloat("LSKMs0") }

// SetKMs0 sets the rotational spring stiffness about the s-axis at the start
// point.
func (l *LineSpring) SetKMs0(value float64) error { return l.setFloat("LSKMs0", value) }

// KMs1 returns the rotational spring stiffness about the s-axis at the end
// point.
func (l *LineSpring) KMs1() (float64, error) { return l.getFloat("LSKMs1") }

// SetKMs1 sets the rotational spring stiffness about the s-axis at the end
// point.
func (l *LineSpring) SetKMs1(value float64) error { return l.setFloat("LSKMs1", value) }

// Location returns the location of this line spring.
func (l *LineSpring) Location() (geometry.LineSegment2D, error) { return l.segmentLocation() }

// SetSpringStiffnesses sets the same stiffness values at both segment ends.
func (l *LineSpring) SetSpringStiffnesses(kFr, kFs, kFz, kMr, kMs float64) error {
	values := []struct {
		set   func(float64) error
		value float64
	}{
		{l.SetKFr0, kFr}, {l.SetKFr1, kFr},
		{l.SetKFs0, kFs}, {l.SetKFs1, kFs},
		{l.SetKFz0, kFz}, {l.SetKFz1, kFz},
		{l.SetKMr0, kMr}, {l.SetKMr1, kMr},
		{l.SetKMs0, kMs}, {l.SetKMs1, kMs},
	}
	for _, v := range values {
		if err := v.set(v.value); err != nil {
			return err
		}
	}
	return nil
}

// ZeroSpringStiffnesses sets all spring stiffness values to zero.
func (l *LineSpring) ZeroSpringStiffnesses() error {
	return l.SetSpringStiffnesses(0, 0, 0, 0, 0)
}

// DefaultLineSpring is the template whose properties new line springs copy.
// There is always exactly one, accessed through CadManager.DefaultLineSpring;
// it has no location and cannot be deleted.
type DefaultLineSpring struct {
	LineSpring
}

func newDefaultLineSpring(uid int, m *Model) *DefaultLineSpring {
	return &DefaultLineSpring{LineSpring: *newLineSpringNamed(uid, m, "DefaultLineSpring")}
}

// Delete is not supported for default entities.
func (l *DefaultLineSpring) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}

// AREA SPRING

// AreaSpring represents a spring over a polygon on the structure layer, with
// independent stiffness values at the first three shape points defining a
// planar distribution.
type AreaSpring struct {
	Spring
}

func newAreaSpringNamed(uid int, m *Model, typeName string) *AreaSpring {
	return &AreaSpring{Spring: newSpring(uid, m, typeName)}
}

func newAreaSpring(uid int, m *Model) *AreaSpring {
	return newAreaSpringNamed(uid, m, "AreaSpring")
}

// KFr0 returns the lateral spring stiffness in the r-axis direction at the
// first point in the shape.
func (a *AreaSpring) KFr0() (float64, error) { return a.getFloat("ASKFr0") }

// SetKFr0 sets the lateral spring stiffness in the r-axis direction at the
// first point in the shape.
func (a *AreaSpring) SetKFr0(value float64) error { return a.setFloat("ASKFr0", value) }

// KFr1 returns the lateral spring stiffness in the r-axis direction at the
// second point in the shape.
func (a *AreaSpring) KFr1() (float64, error) { return a.getFloat("ASKFr1") }

// SetKFr1 sets the lateral spring stiffness in the r-axis direction at the
// second point in the shape.
func (a *AreaSpring) SetKFr1(value float64) error { return a.setFloat("ASKFr1", value) }

// KFr2 returns the lateral spring stiffness in the r-axis direction at the
// third point in the shape.
func (a *AreaSpring) KFr2() (float64, error) { return a.getFloat("ASKFr2") }

// SetKFr2 sets the lateral spring stiffness in the r-axis direction at the
// third point in the shape.
func (a *AreaSpring) SetKFr2(value float64) error { return a.setFloat("ASKFr2", value) }

// KFs0 returns the lateral spring stiffness in the s-axis direction at the
// first point in the shape.
func (a *AreaSpring) KFs0() (float64, error) { return a.getFloat("ASKFs0") }

// SetKFs0 sets the lateral spring stiffness in the s-axis direction at the
// first point in the shape.
func (a *AreaSpring) SetKFs0(value float64) error { return a.setFloat("ASKFs0", value) }

// KFs1 returns the lateral spring stiffness in the s-axis direction at the
// second point in the shape.
func (a *AreaSpring) KFs1() (float64, error) { return a.getFloat("ASKFs1") }

// SetKFs1 sets the lateral spring stiffness in the s-axis direction at the
// second point in the shape.
func (a *AreaSpring) SetKFs1(value float64) error { return a.setFloat("ASKFs1", value) }

// KFs2 returns the lateral spring stiffness in the s-axis direction at the
// third point in the shape.
func (a *AreaSpring) KFs2() (float64, error) { return a.getFloat("ASKFs2") }

// SetKFs2 sets the lateral spring stiffness in the s-axis direction at the
// third point in the shape.
func (a *AreaSpring) SetKFs2(value float64) error { return a.setFloat("ASKFs2", value) }

// KFz0 returns the lateral spring stiffness in the z-axis direction at the
// first point in the shape.
func (a *AreaSpring) KFz0() (float64, error) { return a.getFloat("ASKFz0") }

// SetKFz0 sets the lateral spring stiffness in the z-axis direction at the
// first point in the shape.
func (a *AreaSpring) SetKFz0(value float64) error { return a.setFloat("ASKFz0", value) }

// KFz1 returns the lateral spring stiffness in the z-axis direction at the
// second point in the shape.
func (a *AreaSpring) KFz1() (float64, error) { return a.getFloat("ASKFz1") }

// SetKFz1 sets the lateral spring stiffness in the z-axis direction at the
// second point in the shape.
func (a *AreaSpring) SetKFz1(value float64) error { return a.setFloat("ASKFz1", value) }

// KFz2 returns the lateral spring stiffness in the z-axis direction at the
// third point in the shape.
func (a *AreaSpring) KFz2() (float64, error) { return a.getFloat("ASKFz2") }

// SetKFz2 sets the lateral spring stiffness in the z-axis direction at the
// third point in the shape.
func (a *AreaSpring) SetKFz2(value float64) error { return a.setFloat("ASKFz2", value) }

// KMr0 returns the rotational spring stiffness about the r-axis at the first
// point in the shape.
func (a *AreaSpring) KMr0() (float64, error) { return a.getFloat("ASKMr0") }

// SetKMr0 sets the rotational spring stiffness about the r-axis at the first
// point in the shape.
func (a *AreaSpring) SetKMr0(value float64) error { return a.setFloat("ASKMr0", value) }

// KMr1 returns the rotational spring stiffness about the r-axis at the second
// point in the shape.
func (a *AreaSpring) KMr1() (float64, error) { return a.getFloat("ASKMr1") }

// SetKMr1 sets the rotational spring stiffness about the r-axis at the second
// point in the shape.
func (a *AreaSpring) SetKMr1(value float64) error { return a.setFloat("ASKMr1", value) }

// KMr2 returns the rotational spring stiffness about the r-axis at the third
// point in the shape.
func (a *AreaSpring) KMr2() (float64, error) { return a.getFloat("ASKMr2") }

// SetKMr2 sets the rotational spring stiffness about the r-axis at the third
// point in the shape.
func (a *AreaSpring) SetKMr2(value float64) error { return a.setFloat("ASKMr2", value) }

// KMs0 returns the rotational spring stiffness about the s-axis at the first
// point in the shape.
func (a *AreaSpring) KMs0() (float64, error) { return a.getFloat("ASKMs0") }

// SetKMs0 sets the rotational spring stiffness about the s-axis at the first
// point in the shape.
func (a *AreaSpring) SetKMs0(value float64) error { return a.setFloat("ASKMs0", value) }

// KMs1 returns the rotational spring stiffness about the s-axis at the second
// point in the shape.
func (a *AreaSpring) KMs1() (float64, error) { return a.getFloat("ASKMs1") }

// SetKMs1 sets the rotational spring stiffness about the s-axis at the second
// point in the shape.
func (a *AreaSpring) SetKMs1(value float64) error { return a.setFloat("ASKMs1", value) }

// KMs2 returns the rotational spring stiffness about the s-axis at the third
// point in the shape.
func (a *AreaSpring) KMs2() (float64, error) { return a.getFloat("ASKMs2") }

// SetKMs2 sets the rotational spring stiffness about the s-axis at the third
// point in the shape.
func (a *AreaSpring) SetKMs2(value float64) error { return a.setFloat("ASKMs2", value) }

// Location returns the boundary of this area spring.
func (a *AreaSpring) Location() (geometry.Polygon2D, error) { return a.polygonLocation() }

// SetSpringStiffnesses sets the same stiffness values at all three shape
// points (a uniform distribution).
func (a *AreaSpring) SetSpringStiffnesses(kFr, kFs, kFz, kMr, kMs float64) error {
	values := []struct {
		set   func(float64) error
		value float64
	}{
		{a.SetKFr0, kFr}, {a.SetKFr1, kFr}, {a.SetKFr2, kFr},
		{a.SetKFs0, kFs}, {a.SetKFs1, kFs}, {a.SetKFs2, kFs},
		{a.SetKFz0, kFz}, {a.SetKFz1, kFz}, {a.SetKFz2, kFz},
		{a.SetKMr0, kMr}, {a.SetKMr1, kMr}, {a.SetKMr2, kMr},
		{a.SetKMs0, kMs}, {a.SetKMs1, kMs}, {a.SetKMs2, kMs},
	}
	for _, v := range values {
		if err := v.set(v.value); err != nil {
			return err
		}
	}
	return nil
}

// ZeroSpringStiffnesses sets all spring stiffness values to zero.
func (a *AreaSpring) ZeroSpringStiffnesses() error {
	return a.SetSpringStiffnesses(0, 0, 0, 0, 0)
}

// DefaultAreaSpring is the template whose properties new area springs copy.
// There is always exactly one, accessed through CadManager.DefaultAreaSpring;
// it has no location and cannot be deleted.
type DefaultAreaSpring struct {
	AreaSpring
}

func newDefaultAreaSpring(uid int, m *Model) *DefaultAreaSpring {
	return &DefaultAreaSpring{AreaSpring: *newAreaSpringNamed(uid, m, "DefaultAreaSpring")}
}

// Delete is not supported for default entities.
func (a *DefaultAreaSpring) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}
