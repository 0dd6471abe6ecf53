/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: registry.go
Description: Closed table mapping server wire type names to typed handle
factories. Most wire names match the handle type name exactly; the handful
that differ (legacy server names such as "Tendon" and the tri/quad element
split) are listed explicitly. Unknown wire names fall back to a plain Data
handle rather than failing, so models from newer servers stay navigable.
*/

package concept

type entityFactory func(uid int, m *Model) (Entity, error)

// simple adapts an error-free constructor to the factory signature.
func simple[T Entity](construct func(uid int, m *Model) T) entityFactory {
	return func(uid int, m *Model) (Entity, error) {
		return construct(uid, m), nil
	}
}

var entityFactories = map[string]entityFactory{
	"AnchorSystem":  simple(newAnchorSystem),
	"AnchorSystems": simple(newAnchorSystems),
	"AreaLoad":      simple(newAreaLoad),
	"AreaSpring":    simple(newAreaSpring),
	"Beam":          simple(newBeam),
	"CadManager":    simple(newCadManager),
	"CalcOptions":   simple(newCalcOptions),
	"Column":        simple(newColumn),
	"ColumnElement": simple(newColumnElement),
	"Concrete":      simple(newConcrete),
	"Concretes":     simple(newConcretes),
	"DuctSystem":    simple(newDuctSystem),
	"DuctSystems":   simple(newDuctSystems),
	"ElementLayer":  simple(newElementLayer),
	"Jack":          simple(newJack),
	"LineLoad":      simple(newLineLoad),
	"LineSpring":    simple(newLineSpring),
	"LineSupport":   simple(newLineSupport),
	"LoadComboLayer": simple(newLoadComboLayer),
	"LoadFactor":     simple(newLoadFactor),
	"PointLoad":      simple(newPointLoad),
	"PointSpring":    simple(newPointSpring),
	"PointSupport":   simple(newPointSupport),
	"PTSystem":       simple(newPTSystem),
	"PTSystems":      simple(newPTSystems),
	"Signs":          simple(newSigns),
	"SlabArea":       simple(newSlabArea),
	"SlabElement":    simple(newSlabElement),
	"SlabOpening":    simple(newSlabOpening),
	"StrandMaterial": simple(newStrandMaterial),
	"StrandMaterials": simple(newStrandMaterials),
	"StructureLayer":  simple(newStructureLayer),
	"TendonLayer":     simple(newTendonLayer),
	"TendonNode":      simple(newTendonNode),
	"Units":           simple(newUnits),
	"Wall":            simple(newWall),
	"WallElement":     simple(newWallElement),
	"WallElementGroup": simple(newWallElementGroup),

	// Default (template) objects for the CAD tools.
	"DefaultAreaLoad":    simple(newDefaultAreaLoad),
	"DefaultAreaSpring":  simple(newDefaultAreaSpring),
	"DefaultBeam":        simple(newDefaultBeam),
	"DefaultColumn":      simple(newDefaultColumn),
	"DefaultJack":        simple(newDefaultJack),
	"DefaultLineLoad":    simple(newDefaultLineLoad),
	"DefaultLineSpring":  simple(newDefaultLineSpring),
	"DefaultLineSupport": simple(newDefaultLineSupport),
	"DefaultPointLoad":   simple(newDefaultPointLoad),
	"DefaultPointSpring": simple(newDefaultPointSpring),
	"DefaultPointSupport": simple(newDefaultPointSupport),
	"DefaultSlabArea":     simple(newDefaultSlabArea),
	"DefaultSlabOpening":  simple(newDefaultSlabOpening),

	// Loading layers are read-only for some loading types, so their
	// factories probe the server and can fail.
	"ForceLoadingLayer":       newForceLoadingLayerEntity,
	"ShrinkageLoadingLayer":   newShrinkageLoadingLayerEntity,
	"TemperatureLoadingLayer": newTemperatureLoadingLayerEntity,

	// Wire names that differ from the handle type name.
	"AreaLoadForShrinkage":          simple(newShrinkageAreaLoad),
	"AreaLoadForTemperature":        simple(newTemperatureAreaLoad),
	"DefaultAreaLoadForShrinkage":   simple(newDefaultShrinkageAreaLoad),
	"DefaultAreaLoadForTemperature": simple(newDefaultTemperatureAreaLoad),
	"DefaultTendon":                 simple(newDefaultTendonSegment),
	"LoadingLayer":                  newForceLoadingLayerEntity,
	"Tendon":                        simple(newTendonSegment),
	"TriSlabElement":                simple(newSlabElement),
	"QuadSlabElement":               simple(newSlabElement),
}

// newEntityForType creates the typed handle for the given wire type name.
// Wire names with no registered factory get a plain Data handle; the formal
// API never hands those out for known types, but a newer server can introduce
// types this client predates.
func newEntityForType(dataType string, uid int, m *Model) (Entity, error) {
	if factory, ok := entityFactories[dataType]; ok {
		return factory(uid, m)
	}
	data := newData(uid, m, dataType)
	return &data, nil
}
