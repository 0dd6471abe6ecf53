/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loading_layers.go
Description: Loading layer handles. The abstract LoadingLayer probes its
loading type at construction and marks itself read-only for program-owned
loadings (self-dead, balance, hyperstatic). ForceLoadingLayer holds
force-defining loads and supports a transactional bulk point-load addition;
the shrinkage and temperature layers hold strain-defining area loads.
*/

package concept

import (
	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// LoadingLayer is the abstract handle for layers defining loads that can be
// analyzed (force, temperature and shrinkage loadings).
type LoadingLayer struct {
	FullResultLayer
}

func newLoadingLayer(uid int, m *Model, typeName string) (LoadingLayer, error) {
	layer := LoadingLayer{FullResultLayer: newFullResultLayer(uid, m, typeName)}

	// Program-owned loadings cannot be modified through the API.
	loadingType, err := layer.getString("LoadingType")
	if err != nil {
		return LoadingLayer{}, err
	}
	layer.readOnly = loadingType == "self_dead" || loadingType == "balance" || loadingType == "hyperstatic"

	return layer, nil
}

// LoadingType returns the loading type of this layer.
func (l *LoadingLayer) LoadingType() (LoadingType, error) {
	internal, err := l.getString("LoadingType")
	if err != nil {
		return LoadingType{}, err
	}
	return LoadingTypeFromInternal(internal)
}

// SetLoadingType sets the loading type of this layer. Loading types that the
// program owns (self-dead, balance, hyperstatic) or that are structural to
// the layer kind (temperature, shrinkage) cannot be set or replaced.
func (l *LoadingLayer) SetLoadingType(value LoadingType) error {
	if err := l.raiseIfSetReadOnly(); err != nil {
		return err
	}

	current, err := l.LoadingType()
	if err != nil {
		return err
	}
	if !current.Cause().IsChangeableInLoading() {
		// Hit for shrinkage and temperature layers, which are not read-only.
		return &protocol.InvalidValueError{
			Message: "LoadingLayer with loading type " + string(current.Cause()) + " cannot have its loading type changed",
		}
	}
	if !value.Cause().IsChangeableInLoading() {
		return &protocol.InvalidValueError{
			Message: "cannot change a LoadingLayer to have a loading type of " + string(value.Cause()),
		}
	}

	analysisType, err := l.AnalysisType()
	if err != nil {
		return err
	}
	valid, err := analysisType.ValidForLoadingCause(value.Cause())
	if err != nil {
		return err
	}
	if !valid {
		return &protocol.InvalidValueError{
			Message: "cannot change a LoadingLayer to have a loading type of " + string(value.Cause()) +
				" when it has analysis type " + string(analysisType),
		}
	}

	return l.setString("LoadingType", value.toInternal())
}

// AnalysisType returns the analysis type of this layer.
func (l *LoadingLayer) AnalysisType() (LoadingAnalysisType, error) {
	internal, err := l.getString("AnalysisType")
	if err != nil {
		return "", err
	}
	return loadingAnalysisTypeFromInternal(internal)
}

// SetAnalysisType sets the analysis type of this layer, if valid for the
// current loading cause.
func (l *LoadingLayer) SetAnalysisType(value LoadingAnalysisType) error {
	if err := l.raiseIfSetReadOnly(); err != nil {
		return err
	}

	loadingType, err := l.LoadingType()
	if err != nil {
		return err
	}
	valid, err := value.ValidForLoadingCause(loadingType.Cause())
	if err != nil {
		return err
	}
	if !valid {
		return &protocol.InvalidValueError{
			Message: "cannot set LoadingAnalysisType " + string(value) +
				" in LoadingLayer with loading cause " + string(loadingType.Cause()),
		}
	}

	return l.setString("AnalysisType", string(value))
}

// Delete removes this layer from the model.
func (l *LoadingLayer) Delete() error {
	if err := l.raiseIfOperationReadOnly("delete"); err != nil {
		return err
	}
	return l.deleteData()
}

// getEntitiesCopyReadOnly lists the entities matching the filter key with the
// layer's read-only flag propagated onto each handle.
func (l *LoadingLayer) getEntitiesCopyReadOnly(filterKey string) ([]Entity, error) {
	entities, err := l.getEntities(filterKey)
	if err != nil {
		return nil, err
	}
	for _, entity := range entities {
		entity.base().readOnly = l.readOnly
	}
	return entities, nil
}

// FORCE LOADING LAYER

// ForceLoadingLayer represents a named layer containing force-defining loads
// and their results. Balance, self-dead and hyperstatic layers are read-only.
type ForceLoadingLayer struct {
	LoadingLayer
}

func newForceLoadingLayerEntity(uid int, m *Model) (Entity, error) {
	layer, err := newLoadingLayer(uid, m, "ForceLoadingLayer")
	if err != nil {
		return nil, err
	}
	return &ForceLoadingLayer{LoadingLayer: layer}, nil
}

// PointLoads returns all the point loads on this layer.
func (l *ForceLoadingLayer) PointLoads() ([]*PointLoad, error) {
	return entitiesAs[*PointLoad](l.getEntitiesCopyReadOnly("PointLoads"))
}

// LineLoads returns all the line loads on this layer.
func (l *ForceLoadingLayer) LineLoads() ([]*LineLoad, error) {
	return entitiesAs[*LineLoad](l.getEntitiesCopyReadOnly("LineLoads"))
}

// AreaLoads returns all the area loads on this layer.
func (l *ForceLoadingLayer) AreaLoads() ([]*AreaLoad, error) {
	return entitiesAs[*AreaLoad](l.getEntitiesCopyReadOnly("AreaLoads"))
}

// AddPointLoad adds a point load at the given location, copying properties
// from CadManager.DefaultPointLoad. The location is snapped to the nearest
// 0.1mm.
func (l *ForceLoadingLayer) AddPointLoad(location geometry.Point2D) (*PointLoad, error) {
	if err := l.raiseIfOperationReadOnly("add point load"); err != nil {
		return nil, err
	}
	return entityAs[*PointLoad](l.addCadEntityWithPoint("PointLoad", location))
}

// AddLineLoad adds a line load at the given location, copying properties from
// CadManager.DefaultLineLoad. The location is snapped to the nearest 0.1mm.
func (l *ForceLoadingLayer) AddLineLoad(location geometry.LineSegment2D) (*LineLoad, error) {
	if err := l.raiseIfOperationReadOnly("add line load"); err != nil {
		return nil, err
	}
	return entityAs[*LineLoad](l.addCadEntityWithSegment("LineLoad", location))
}

// AddAreaLoad adds an area load with the given boundary, copying properties
// from CadManager.DefaultAreaLoad. The location is snapped to the nearest
// 0.1mm.
func (l *ForceLoadingLayer) AddAreaLoad(boundary geometry.Polygon2D) (*AreaLoad, error) {
	if err := l.raiseIfOperationReadOnly("add area load"); err != nil {
		return nil, err
	}
	return entityAs[*AreaLoad](l.addCadEntityWithPolygon("AreaLoad", boundary))
}

// AddPointLoads adds a set of point loads at the given coordinates with the
// given values. All non-nil slices must have the same length as x; nil force
// and moment slices are replaced by zeros, a nil elevation leaves the default
// elevation in place. If any creation or property set fails, every load
// created by this call is deleted before the error is returned.
func (l *ForceLoadingLayer) AddPointLoads(x, y, elevation, fx, fy, fz, mx, my []float64) ([]*PointLoad, error) {
	if err := l.raiseIfOperationReadOnly("add point loads"); err != nil {
		return nil, err
	}

	count := len(x)
	if len(y) != count {
		return nil, &protocol.InvalidValueError{Message: "length of y parameter must be same as length of x parameter"}
	}
	for _, values := range [][]float64{elevation, fx, fy, fz, mx, my} {
		if values != nil && len(values) != count {
			return nil, &protocol.InvalidValueError{Message: "all value parameters must be same length as x parameter"}
		}
	}

	loads, err := bulkAdd(count, func(i int) (*PointLoad, error) {
		return l.AddPointLoad(geometry.NewPoint2D(x[i], y[i]))
	})
	if err != nil {
		return nil, err
	}

	zeros := make([]float64, count)
	orZeros := func(values []float64) []float64 {
		if values == nil {
			return zeros
		}
		return values
	}

	setters := []struct {
		values []float64
		set    func(*PointLoad, float64) error
	}{
		{elevation, (*PointLoad).SetElevation},
		{orZeros(fx), (*PointLoad).SetFx},
		{orZeros(fy), (*PointLoad).SetFy},
		{orZeros(fz), (*PointLoad).SetFz},
		{orZeros(mx), (*PointLoad).SetMx},
		{orZeros(my), (*PointLoad).SetMy},
	}
	for _, setter := range setters {
		if setter.values == nil {
			continue
		}
		for i, load := range loads {
			if err := setter.set(load, setter.values[i]); err != nil {
				// Undo the entire addition.
				for _, created := range loads {
					_ = created.Delete()
				}
				return nil, err
			}
		}
	}

	return loads, nil
}

// SHRINKAGE LOADING LAYER

// ShrinkageLoadingLayer represents a named layer containing shrinkage area
// loads and their results. Its loading and analysis types cannot be changed.
type ShrinkageLoadingLayer struct {
	LoadingLayer
}

func newShrinkageLoadingLayerEntity(uid int, m *Model) (Entity, error) {
	layer, err := newLoadingLayer(uid, m, "ShrinkageLoadingLayer")
	if err != nil {
		return nil, err
	}
	return &ShrinkageLoadingLayer{LoadingLayer: layer}, nil
}

// ShrinkageAreaLoads returns all the shrinkage area loads on this layer.
func (l *ShrinkageLoadingLayer) ShrinkageAreaLoads() ([]*ShrinkageAreaLoad, error) {
	return entitiesAs[*ShrinkageAreaLoad](l.getEntitiesCopyReadOnly("AreaLoadForShrinkage"))
}

// AddShrinkageAreaLoad adds a shrinkage area load with the given boundary,
// copying properties from CadManager.DefaultShrinkageAreaLoad. The location
// is snapped to the nearest 0.1mm.
func (l *ShrinkageLoadingLayer) AddShrinkageAreaLoad(boundary geometry.Polygon2D) (*ShrinkageAreaLoad, error) {
	return entityAs[*ShrinkageAreaLoad](l.addCadEntityWithPolygon("AreaLoadForShrinkage", boundary))
}

// TEMPERATURE LOADING LAYER

// TemperatureLoadingLayer represents a named layer containing temperature
// area loads and their results. Its loading and analysis types cannot be
// changed.
type TemperatureLoadingLayer struct {
	LoadingLayer
}

func newTemperatureLoadingLayerEntity(uid int, m *Model) (Entity, error) {
	layer, err := newLoadingLayer(uid, m, "TemperatureLoadingLayer")
	if err != nil {
		return nil, err
	}
	return &TemperatureLoadingLayer{LoadingLayer: layer}, nil
}

// TemperatureAreaLoads returns all the temperature area loads on this layer.
func (l *TemperatureLoadingLayer) TemperatureAreaLoads() ([]*TemperatureAreaLoad, error) {
	return entitiesAs[*TemperatureAreaLoad](l.getEntitiesCopyReadOnly("AreaLoadForTemperature"))
}

// AddTemperatureAreaLoad adds a temperature area load with the given
// boundary, copying properties from CadManager.DefaultTemperatureAreaLoad.
// The location is snapped to the nearest 0.1mm.
func (l *TemperatureLoadingLayer) AddTemperatureAreaLoad(boundary geometry.Polygon2D) (*TemperatureAreaLoad, error) {
	return entityAs[*TemperatureAreaLoad](l.addCadEntityWithPolygon("AreaLoadForTemperature", boundary))
}
