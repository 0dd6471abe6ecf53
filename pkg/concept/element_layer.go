/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: element_layer.go
Description: Handle for the meshed-structure layer. Contents are generated
by meshing, so the layer and every entity handed out from it are read-only.
*/

package concept

// ElementLayer represents the meshed structure, containing elements, supports
// and springs. Accessible through CadManager.ElementLayer.
type ElementLayer struct {
	CadLayer
}

func newElementLayer(uid int, m *Model) *ElementLayer {
	layer := &ElementLayer{CadLayer: newCadLayer(uid, m, "ElementLayer")}
	layer.readOnly = true
	return layer
}

// getEntitiesReadOnly lists the matching entities with this layer's read-only
// flag propagated onto each handle.
func (l *ElementLayer) getEntitiesReadOnly(filterKey string) ([]Entity, error) {
	entities, err := l.getEntities(filterKey)
	if err != nil {
		return nil, err
	}
	for _, entity := range entities {
		entity.base().readOnly = l.readOnly
	}
	return entities, nil
}

// PointSprings returns all the point springs on this layer.
func (l *ElementLayer) PointSprings() ([]*PointSpring, error) {
	return entitiesAs[*PointSpring](l.getEntitiesReadOnly("PointSprings"))
}

// LineSprings returns all the line springs on this layer.
func (l *ElementLayer) LineSprings() ([]*LineSpring, error) {
	return entitiesAs[*LineSpring](l.getEntitiesReadOnly("LineSprings"))
}

// AreaSprings returns all the area springs on this layer.
func (l *ElementLayer) AreaSprings() ([]*AreaSpring, error) {
	return entitiesAs[*AreaSpring](l.getEntitiesReadOnly("AreaSprings"))
}

// PointSupports returns all the point supports on this layer.
func (l *ElementLayer) PointSupports() ([]*PointSupport, error) {
	return entitiesAs[*PointSupport](l.getEntitiesReadOnly("PointSupports"))
}

// LineSupports returns all the line supports on this layer.
func (l *ElementLayer) LineSupports() ([]*LineSupport, error) {
	return entitiesAs[*LineSupport](l.getEntitiesReadOnly("LineSupports"))
}

// WallElementsBelow returns all the wall elements below the slab.
func (l *ElementLayer) WallElementsBelow() ([]*WallElement, error) {
	return entitiesAs[*WallElement](l.getEntitiesReadOnly("WallElementsBelow"))
}

// WallElementsAbove returns all the wall elements above the slab.
func (l *ElementLayer) WallElementsAbove() ([]*WallElement, error) {
	return entitiesAs[*WallElement](l.getEntitiesReadOnly("WallElementsAbove"))
}

// ColumnElementsBelow returns all the column elements below the slab.
func (l *ElementLayer) ColumnElementsBelow() ([]*ColumnElement, error) {
	return entitiesAs[*ColumnElement](l.getEntitiesReadOnly("ColumnElementsBelow"))
}

// ColumnElementsAbove returns all the column elements above the slab.
func (l *ElementLayer) ColumnElementsAbove() ([]*ColumnElement, error) {
	return entitiesAs[*ColumnElement](l.getEntitiesReadOnly("ColumnElementsAbove"))
}

// SlabElements returns all the slab elements on this layer.
func (l *ElementLayer) SlabElements() ([]*SlabElement, error) {
	return entitiesAs[*SlabElement](l.getEntitiesReadOnly("SlabElements"))
}

// WallElementGroupsBelow returns all the wall element groups below the slab.
func (l *ElementLayer) WallElementGroupsBelow() ([]*WallElementGroup, error) {
	return entitiesAs[*WallElementGroup](l.getEntitiesReadOnly("WallElementGroupsBelow"))
}

// WallElementGroupsAbove returns all the wall element groups above the slab.
func (l *ElementLayer) WallElementGroupsAbove() ([]*WallElementGroup, error) {
	return entitiesAs[*WallElementGroup](l.getEntitiesReadOnly("WallElementGroupsAbove"))
}
