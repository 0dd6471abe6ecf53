/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cad_manager.go
Description: The singleton coordinator of the CAD system. Hands out the
singleton structure and element layers, the per-type loading/combo/tendon
layer lists, the default (template) objects the CAD tools copy properties
from, and the layer addition operations.
*/

package concept

import (
	"github.com/kleascm/concept-client/pkg/protocol"
)

// CadManager coordinates and contains all the information in the CAD system.
// There is a single CadManager, accessible through Model.CadManager.
type CadManager struct {
	Data
}

func newCadManager(uid int, m *Model) *CadManager {
	return &CadManager{Data: newData(uid, m, "CadManager")}
}

// SINGLETON LAYERS

// ElementLayer returns the singleton layer containing the finite elements.
func (c *CadManager) ElementLayer() (*ElementLayer, error) {
	return entityAs[*ElementLayer](c.model.dataFromKey("$ELEMENT_LAYER"))
}

// StructureLayer returns the singleton layer that manages mesh-generation
// CAD entities.
func (c *CadManager) StructureLayer() (*StructureLayer, error) {
	return entityAs[*StructureLayer](c.model.dataFromKey("$STRUCTURE_LAYER"))
}

// NON-SINGLETON LAYER LISTS

// ForceLoadingLayers returns all the force loading layers in the model.
func (c *CadManager) ForceLoadingLayers() ([]*ForceLoadingLayer, error) {
	return entitiesAs[*ForceLoadingLayer](c.getChildrenOfType("LoadingLayer"))
}

// TemperatureLoadingLayers returns all the temperature loading layers in the
// model.
func (c *CadManager) TemperatureLoadingLayers() ([]*TemperatureLoadingLayer, error) {
	return entitiesAs[*TemperatureLoadingLayer](c.getChildrenOfType("TemperatureLoadingLayer"))
}

// ShrinkageLoadingLayers returns all the shrinkage loading layers in the
// model.
func (c *CadManager) ShrinkageLoadingLayers() ([]*ShrinkageLoadingLayer, error) {
	return entitiesAs[*ShrinkageLoadingLayer](c.getChildrenOfType("ShrinkageLoadingLayer"))
}

// LoadComboLayers returns all the load combo layers in the model.
func (c *CadManager) LoadComboLayers() ([]*LoadComboLayer, error) {
	return entitiesAs[*LoadComboLayer](c.getChildrenOfType("LoadComboLayer"))
}

// TendonLayers returns all the tendon layers in the model.
func (c *CadManager) TendonLayers() ([]*TendonLayer, error) {
	return entitiesAs[*TendonLayer](c.getChildrenOfType("TendonLayer"))
}

// AllLoadingLayers returns every loading layer (force, temperature and
// shrinkage) in the model.
func (c *CadManager) AllLoadingLayers() ([]*LoadingLayer, error) {
	layers := []*LoadingLayer{}

	force, err := c.ForceLoadingLayers()
	if err != nil {
		return nil, err
	}
	for _, layer := range force {
		layers = append(layers, &layer.LoadingLayer)
	}

	temperature, err := c.TemperatureLoadingLayers()
	if err != nil {
		return nil, err
	}
	for _, layer := range temperature {
		layers = append(layers, &layer.LoadingLayer)
	}

	shrinkage, err := c.ShrinkageLoadingLayers()
	if err != nil {
		return nil, err
	}
	for _, layer := range shrinkage {
		layers = append(layers, &layer.LoadingLayer)
	}

	return layers, nil
}

// AllLayers returns every CAD layer in the model that this client has a
// typed wrapper for.
func (c *CadManager) AllLayers() ([]Entity, error) {
	uids, err := c.command("[GET_LAYERS]")
	if err != nil {
		return nil, err
	}
	layers, err := c.model.getDatasFromBracketString(uids)
	if err != nil {
		return nil, err
	}

	// Layers with no type-specific wrapper come back as plain *Data;
	// filter those out.
	typed := make([]Entity, 0, len(layers))
	for _, layer := range layers {
		if _, plain := layer.(*Data); plain {
			continue
		}
		typed = append(typed, layer)
	}
	return typed, nil
}

// NAMED LAYER LOOKUP

// ForceLoadingLayer finds the force loading layer with the given name, or nil.
func (c *CadManager) ForceLoadingLayer(name string) (*ForceLoadingLayer, error) {
	return entityAs[*ForceLoadingLayer](c.getNamedChildOfType(name, "LoadingLayer"))
}

// ShrinkageLoadingLayer finds the shrinkage loading layer with the given
// name, or nil.
func (c *CadManager) ShrinkageLoadingLayer(name string) (*ShrinkageLoadingLayer, error) {
	return entityAs[*ShrinkageLoadingLayer](c.getNamedChildOfType(name, "ShrinkageLoadingLayer"))
}

// TemperatureLoadingLayer finds the temperature loading layer with the given
// name, or nil.
func (c *CadManager) TemperatureLoadingLayer(name string) (*TemperatureLoadingLayer, error) {
	return entityAs[*TemperatureLoadingLayer](c.getNamedChildOfType(name, "TemperatureLoadingLayer"))
}

// LoadComboLayer finds the load combo layer with the given name, or nil.
func (c *CadManager) LoadComboLayer(name string) (*LoadComboLayer, error) {
	return entityAs[*LoadComboLayer](c.getNamedChildOfType(name, "LoadComboLayer"))
}

// TendonLayer finds the tendon layer of the given span set with the given
// generator (user or program).
func (c *CadManager) TendonLayer(spanSet SpanSet, generatedBy GeneratedBy) (*TendonLayer, error) {
	layers, err := c.TendonLayers()
	if err != nil {
		return nil, err
	}
	for _, layer := range layers {
		layerSpanSet, err := layer.SpanSet()
		if err != nil {
			return nil, err
		}
		layerGeneratedBy, err := layer.GeneratedBy()
		if err != nil {
			return nil, err
		}
		if layerSpanSet == spanSet && layerGeneratedBy == generatedBy {
			return layer, nil
		}
	}
	return nil, &protocol.InvalidValueError{
		Message: "no TendonLayer of span set " + string(spanSet) + " generated by " + string(generatedBy),
	}
}

// LAYER ADDITION OPERATIONS

// AddForceLoadingLayer adds a force loading layer with the given name.
func (c *CadManager) AddForceLoadingLayer(name string) (*ForceLoadingLayer, error) {
	return entityAs[*ForceLoadingLayer](c.addUniqueNamedChild("LoadingLayer", name))
}

// AddTemperatureLoadingLayer adds a temperature loading layer with the given
// name.
func (c *CadManager) AddTemperatureLoadingLayer(name string) (*TemperatureLoadingLayer, error) {
	return entityAs[*TemperatureLoadingLayer](c.addUniqueNamedChild("TemperatureLoadingLayer", name))
}

// AddShrinkageLoadingLayer adds a shrinkage loading layer with the given name.
func (c *CadManager) AddShrinkageLoadingLayer(name string) (*ShrinkageLoadingLayer, error) {
	return entityAs[*ShrinkageLoadingLayer](c.addUniqueNamedChild("ShrinkageLoadingLayer", name))
}

// AddLoadComboLayer adds a load combo layer with the given name.
func (c *CadManager) AddLoadComboLayer(name string) (*LoadComboLayer, error) {
	return entityAs[*LoadComboLayer](c.addUniqueNamedChild("LoadComboLayer", name))
}

// DEFAULT (TEMPLATE) OBJECTS

// cadDefault returns the default object for the given entity wire type.
func cadDefault[T Entity](c *CadManager, entityType string) (T, error) {
	uid, err := c.command("[GET_DEFAULT_OBJECT_FOR][" + entityType + "]")
	if err != nil {
		var zero T
		return zero, err
	}
	return entityAs[T](c.model.getData(uid))
}

// DefaultPointSpring returns the template whose properties new point springs
// copy.
func (c *CadManager) DefaultPointSpring() (*DefaultPointSpring, error) {
	return cadDefault[*DefaultPointSpring](c, "PointSpring")
}

// DefaultLineSpring returns the template whose properties new line springs
// copy.
func (c *CadManager) DefaultLineSpring() (*DefaultLineSpring, error) {
	return cadDefault[*DefaultLineSpring](c, "LineSpring")
}

// DefaultAreaSpring returns the template whose properties new area springs
// copy.
func (c *CadManager) DefaultAreaSpring() (*DefaultAreaSpring, error) {
	return cadDefault[*DefaultAreaSpring](c, "AreaSpring")
}

// DefaultPointSupport returns the template whose properties new point
// supports copy.
func (c *CadManager) DefaultPointSupport() (*DefaultPointSupport, error) {
	return cadDefault[*DefaultPointSupport](c, "PointSupport")
}

// DefaultLineSupport returns the template whose properties new line supports
// copy.
func (c *CadManager) DefaultLineSupport() (*DefaultLineSupport, error) {
	return cadDefault[*DefaultLineSupport](c, "LineSupport")
}

// DefaultBeam returns the template whose properties new beams copy.
func (c *CadManager) DefaultBeam() (*DefaultBeam, error) {
	return cadDefault[*DefaultBeam](c, "Beam")
}

// DefaultColumn returns the template whose properties new columns copy.
func (c *CadManager) DefaultColumn() (*DefaultColumn, error) {
	return cadDefault[*DefaultColumn](c, "Column")
}

// DefaultWall returns the template whose properties new walls copy.
func (c *CadManager) DefaultWall() (*DefaultWall, error) {
	return cadDefault[*DefaultWall](c, "Wall")
}

// DefaultSlabArea returns the template whose properties new slab areas copy.
func (c *CadManager) DefaultSlabArea() (*DefaultSlabArea, error) {
	return cadDefault[*DefaultSlabArea](c, "SlabArea")
}

// DefaultSlabOpening returns the template whose properties new slab openings
// copy.
func (c *CadManager) DefaultSlabOpening() (*DefaultSlabOpening, error) {
	return cadDefault[*DefaultSlabOpening](c, "SlabOpening")
}

// DefaultPointLoad returns the template whose properties new point loads copy.
func (c *CadManager) DefaultPointLoad() (*DefaultPointLoad, error) {
	return cadDefault[*DefaultPointLoad](c, "PointLoad")
}

// DefaultLineLoad returns the template whose properties new line loads copy.
func (c *CadManager) DefaultLineLoad() (*DefaultLineLoad, error) {
	return cadDefault[*DefaultLineLoad](c, "LineLoad")
}

// DefaultAreaLoad returns the template whose properties new area loads copy.
func (c *CadManager) DefaultAreaLoad() (*DefaultAreaLoad, error) {
	return cadDefault[*DefaultAreaLoad](c, "AreaLoad")
}

// DefaultShrinkageAreaLoad returns the template whose properties new
// shrinkage area loads copy.
func (c *CadManager) DefaultShrinkageAreaLoad() (*DefaultShrinkageAreaLoad, error) {
	return cadDefault[*DefaultShrinkageAreaLoad](c, "AreaLoadForShrinkage")
}

// DefaultTemperatureAreaLoad returns the template whose properties new
// temperature area loads copy.
func (c *CadManager) DefaultTemperatureAreaLoad() (*DefaultTemperatureAreaLoad, error) {
	return cadDefault[*DefaultTemperatureAreaLoad](c, "AreaLoadForTemperature")
}

// DefaultTendonSegment returns the template whose properties new tendon
// segments copy.
func (c *CadManager) DefaultTendonSegment() (*DefaultTendonSegment, error) {
	return cadDefault[*DefaultTendonSegment](c, "Tendon")
}

// DefaultJack returns the template whose properties new jacks copy.
func (c *CadManager) DefaultJack() (*DefaultJack, error) {
	return cadDefault[*DefaultJack](c, "Jack")
}
