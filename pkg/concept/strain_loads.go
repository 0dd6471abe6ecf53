/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: strain_loads.go
Description: Imposed-strain area load handles: shrinkage and temperature
loads, with their default (template) variants.
*/

package concept

import (
	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// SHRINKAGE AREA LOAD

// ShrinkageAreaLoad represents a strain-change load on a shrinkage loading
// layer, created via ShrinkageLoadingLayer.AddShrinkageAreaLoad.
type ShrinkageAreaLoad struct {
	CadEntity
}

func newShrinkageAreaLoadNamed(uid int, m *Model, typeName string) *ShrinkageAreaLoad {
	return &ShrinkageAreaLoad{CadEntity: newCadEntity(uid, m, typeName)}
}

func newShrinkageAreaLoad(uid int, m *Model) *ShrinkageAreaLoad {
	return newShrinkageAreaLoadNamed(uid, m, "ShrinkageAreaLoad")
}

// StrainChangeAtTop returns the strain change at the top of the slab.
func (s *ShrinkageAreaLoad) StrainChangeAtTop() (float64, error) { return s.getFloat("ALStop") }

// SetStrainChangeAtTop sets the strain change at the top of the slab.
func (s *ShrinkageAreaLoad) SetStrainChangeAtTop(value float64) error {
	return s.setFloat("ALStop", value)
}

// StrainChangeAtBottom returns the strain change at the bottom of the slab.
func (s *ShrinkageAreaLoad) StrainChangeAtBottom() (float64, error) { return s.getFloat("ALSbot") }

// SetStrainChangeAtBottom sets the strain change at the bottom of the slab.
func (s *ShrinkageAreaLoad) SetStrainChangeAtBottom(value float64) error {
	return s.setFloat("ALSbot", value)
}

// SetStrainChange sets the same strain change at the top and bottom of the
// slab.
func (s *ShrinkageAreaLoad) SetStrainChange(value float64) error {
	if err := s.SetStrainChangeAtTop(value); err != nil {
		return err
	}
	return s.SetStrainChangeAtBottom(value)
}

// Location returns the boundary of this shrinkage area load.
func (s *ShrinkageAreaLoad) Location() (geometry.Polygon2D, error) { return s.polygonLocation() }

// DefaultShrinkageAreaLoad is the template whose properties new shrinkage
// area loads copy. There is always exactly one, accessed through
// CadManager.DefaultShrinkageAreaLoad; it has no location and cannot be
// deleted.
type DefaultShrinkageAreaLoad struct {
	ShrinkageAreaLoad
}

func newDefaultShrinkageAreaLoad(uid int, m *Model) *DefaultShrinkageAreaLoad {
	return &DefaultShrinkageAreaLoad{ShrinkageAreaLoad: *newShrinkageAreaLoadNamed(uid, m, "DefaultShrinkageAreaLoad")}
}

// Delete is not supported for default entities.
func (s *DefaultShrinkageAreaLoad) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}

// TEMPERATURE AREA LOAD

// TemperatureAreaLoad represents a temperature-change load on a temperature
// loading layer, created via TemperatureLoadingLayer.AddTemperatureAreaLoad.
type TemperatureAreaLoad struct {
	CadEntity
}

func newTemperatureAreaLoadNamed(uid int, m *Model, typeName string) *TemperatureAreaLoad {
	return &TemperatureAreaLoad{CadEntity: newCadEntity(uid, m, typeName)}
}

func newTemperatureAreaLoad(uid int, m *Model) *TemperatureAreaLoad {
	return newTemperatureAreaLoadNamed(uid, m, "TemperatureAreaLoad")
}

// TemperatureChangeAtTop returns the temperature change at the top of the
// slab.
func (t *TemperatureAreaLoad) TemperatureChangeAtTop() (float64, error) { return t.getFloat("ALTtop") }

// SetTemperatureChangeAtTop sets the temperature change at the top of the
// slab.
func (t *TemperatureAreaLoad) SetTemperatureChangeAtTop(value float64) error {
	return t.setFloat("ALTtop", value)
}

// TemperatureChangeAtBottom returns the temperature change at the bottom of
// the slab.
func (t *TemperatureAreaLoad) TemperatureChangeAtBottom() (float64, error) {
	return t.getFloat("ALTbot")
}

// SetTemperatureChangeAtBottom sets the temperature change at the bottom of
// the slab.
func (t *TemperatureAreaLoad) SetTemperatureChangeAtBottom(value float64) error {
	return t.setFloat("ALTbot", value)
}

// SetTemperatureChange sets the same temperature change at the top and
// bottom of the slab.
func (t *TemperatureAreaLoad) SetTemperatureChange(value float64) error {
	if err := t.SetTemperatureChangeAtTop(value); err != nil {
		return err
	}
	return t.SetTemperatureChangeAtBottom(value)
}

// Location returns the boundary of this temperature area load.
func (t *TemperatureAreaLoad) Location() (geometry.Polygon2D, error) { return t.polygonLocation() }

// DefaultTemperatureAreaLoad is the template whose properties new temperature
// area loads copy. There is always exactly one, accessed through
// CadManager.DefaultTemperatureAreaLoad; it has no location and cannot be
// deleted.
type DefaultTemperatureAreaLoad struct {
	TemperatureAreaLoad
}

func newDefaultTemperatureAreaLoad(uid int, m *Model) *DefaultTemperatureAreaLoad {
	return &DefaultTemperatureAreaLoad{TemperatureAreaLoad: *newTemperatureAreaLoadNamed(uid, m, "DefaultTemperatureAreaLoad")}
}

// Delete is not supported for default entities.
func (t *DefaultTemperatureAreaLoad) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}
