/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: supports.go
Description: Rigid support handles (point and line supports) and their default
(template) variants. Rigid supports are always located on the structure layer
and restrain individual degrees of freedom.
*/

package concept

import (
	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// RIGID SUPPORT

// RigidSupport is the abstract superclass handle for rigid supports on the
// structure layer.
type RigidSupport struct {
	CadEntity
}

func newRigidSupport(uid int, m *Model, typeName string) RigidSupport {
	return RigidSupport{CadEntity: newCadEntity(uid, m, typeName)}
}

// Elevation returns the elevation of the support relative to the soffit of
// the slab or beam it is applied to.
func (r *RigidSupport) Elevation() (float64, error) { return r.getFloat("SupportElevation") }

// SetElevation sets the elevation of the support relative to the soffit of
// the slab or beam it is applied to.
func (r *RigidSupport) SetElevation(value float64) error {
	return r.setFloat("SupportElevation", value)
}

// POINT SUPPORT

// PointSupport represents a rigid point support on the structure layer.
type PointSupport struct {
	RigidSupport
}

func newPointSupportNamed(uid int, m *Model, typeName string) *PointSupport {
	return &PointSupport{RigidSupport: newRigidSupport(uid, m, typeName)}
}

func newPointSupport(uid int, m *Model) *PointSupport {
	return newPointSupportNamed(uid, m, "PointSupport")
}

// Fr reports whether lateral translation along the r-axis is restrained.
func (p *PointSupport) Fr() (bool, error) { return p.getBool("RPSFr") }

// SetFr sets whether lateral translation along the r-axis is restrained.
func (p *PointSupport) SetFr(value bool) error { return p.setBool("RPSFr", value) }

// Fs reports whether lateral translation along the s-axis is restrained.
func (p *PointSupport) Fs() (bool, error) { return p.getBool("RPSFs") }

// SetFs sets whether lateral translation along the s-axis is restrained.
func (p *PointSupport) SetFs(value bool) error { return p.setBool("RPSFs", value) }

// Fz reports whether translation along the z-axis is restrained.
func (p *PointSupport) Fz() (bool, error) { return p.getBool("RPSFz") }

// SetFz sets whether translation along the z-axis is restrained.
func (p *PointSupport) SetFz(value bool) error { return p.setBool("RPSFz", value) }

// Mr reports whether rotation about the r-axis is restrained.
func (p *PointSupport) Mr() (bool, error) { return p.getBool("RPSMr") }

// SetMr sets whether rotation about the r-axis is restrained.
func (p *PointSupport) SetMr(value bool) error { return p.setBool("RPSMr", value) }

// Ms reports whether rotation about the s-axis is restrained.
func (p *PointSupport) Ms() (bool, error) { return p.getBool("RPSMs") }

// SetMs sets whether rotation about the s-axis is restrained.
func (p *PointSupport) SetMs(value bool) error { return p.setBool("RPSMs", value) }

// Angle returns the counter-clockwise angle of the support r-axis about the
// z-axis, with angle 0 being parallel to the x-axis.
func (p *PointSupport) Angle() (float64, error) { return p.getFloat("RPSAngle") }

// SetAngle sets the counter-clockwise angle of the support r-axis.
func (p *PointSupport) SetAngle(value float64) error { return p.setFloat("RPSAngle", value) }

// Location returns the location of this point support.
func (p *PointSupport) Location() (geometry.Point2D, error) { return p.pointLocation() }

// SetAllFixities restrains or frees all five degrees of freedom at once.
func (p *PointSupport) SetAllFixities(fixed bool) error {
	for _, set := range []func(bool) error{p.SetFr, p.SetFs, p.SetFz, p.SetMr, p.SetMs} {
		if err := set(fixed); err != nil {
			return err
		}
	}
	return nil
}

// DefaultPointSupport is the template whose properties new point supports
// copy. There is always exactly one, accessed through
// CadManager.DefaultPointSupport; it has no location and cannot be deleted.
type DefaultPointSupport struct {
	PointSupport
}

func newDefaultPointSupport(uid int, m *Model) *DefaultPointSupport {
	return &DefaultPointSupport{PointSupport: *newPointSupportNamed(uid, m, "DefaultPointSupport")}
}

// Delete is not supported for default entities.
func (p *DefaultPointSupport) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}

// LINE SUPPORT

// LineSupport represents a rigid support along a segment on the structure
// layer. The r-axis is along the support segment.
type LineSupport struct {
	RigidSupport
}

func newLineSupportNamed(uid int, m *Model, typeName string) *LineSupport {
	return &LineSupport{RigidSupport: newRigidSupport(uid, m, typeName)}
}

func newLineSupport(uid int, m *Model) *LineSupport {
	return newLineSupportNamed(uid, m, "LineSupport")
}

// Fr reports whether lateral translation along the r-axis is restrained.
func (l *LineSupport) Fr() (bool, error) { return l.getBool("RLSFr") }

// SetFr sets whether lateral translation along the r-axis is restrained.
func (l *LineSupport) SetFr(value bool) error { return l.setBool("RLSFr", value) }

// Fs reports whether lateral translation along the s-axis is restrained.
func (l *LineSupport) Fs() (bool, error) { return l.getBool("RLSFs") }

// SetFs sets whether lateral translation along the s-axis is restrained.
func (l *LineSupport) SetFs(value bool) error { return l.setBool("RLSFs", value) }

// Fz reports whether translation along the z-axis is restrained.
func (l *LineSupport) Fz() (bool, error) { return l.getBool("RLSFz") }

// SetFz sets whether translation along the z-axis is restrained.
func (l *LineSupport) SetFz(value bool) error { return l.setBool("RLSFz", value) }

// Mr reports whether rotation about the r-axis is restrained.
func (l *LineSupport) Mr() (bool, error) { return l.getBool("RLSMr") }

// SetMr sets whether rotation about the r-axis is restrained.
func (l *LineSupport) SetMr(value bool) error { return l.setBool("RLSMr", value) }

// Ms reports whether rotation about the s-axis is restrained.
func (l *LineSupport) Ms() (bool, error) { return l.getBool("RLSMs") }

// SetMs sets whether rotation about the s-axis is restrained.
func (l *LineSupport) SetMs(value bool) error { return l.setBool("RLSMs", value) }

// Location returns the location of this line support.
func (l *LineSupport) Location() (geometry.LineSegment2D, error) { return l.segmentLocation() }

// SetAllFixities restrains or frees all five degrees of freedom at once.
func (l *LineSupport) SetAllFixities(fixed bool) error {
	for _, set := range []func(bool) error{l.SetFr, l.SetFs, l.SetFz, l.SetMr, l.SetMs} {
		if err := set(fixed); err != nil {
			return err
		}
	}
	return nil
}

// DefaultLineSupport is the template whose properties new line supports copy.
// There is always exactly one, accessed through CadManager.DefaultLineSupport;
// it has no location and cannot be deleted.
type DefaultLineSupport struct {
	LineSupport
}

func newDefaultLineSupport(uid int, m *Model) *DefaultLineSupport {
	return &DefaultLineSupport{LineSupport: *newLineSupportNamed(uid, m, "DefaultLineSupport")}
}

// Delete is not supported for default entities.
func (l *DefaultLineSupport) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}
