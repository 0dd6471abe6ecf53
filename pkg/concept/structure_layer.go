/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: structure_layer.go
Description: Handle for the "mesh input" layer in the CAD system. The
structure drawn here is meshed into the finite elements on the element layer.
All entity locations are snapped to the nearest 0.1mm by the server.
*/

package concept

import "github.com/kleascm/concept-client/pkg/geometry"

// StructureLayer represents the mesh input layer, accessible through
// CadManager.StructureLayer.
type StructureLayer struct {
	CadLayer
}

func newStructureLayer(uid int, m *Model) *StructureLayer {
	return &StructureLayer{CadLayer: newCadLayer(uid, m, "StructureLayer")}
}

// ENTITY LISTS

// PointSprings returns all the point springs on this layer.
func (l *StructureLayer) PointSprings() ([]*PointSpring, error) {
	return entitiesAs[*PointSpring](l.getEntities("PointSprings"))
}

// LineSprings returns all the line springs on this layer.
func (l *StructureLayer) LineSprings() ([]*LineSpring, error) {
	return entitiesAs[*LineSpring](l.getEntities("LineSprings"))
}

// AreaSprings returns all the area springs on this layer.
func (l *StructureLayer) AreaSprings() ([]*AreaSpring, error) {
	return entitiesAs[*AreaSpring](l.getEntities("AreaSprings"))
}

// PointSupports returns all the point supports on this layer.
func (l *StructureLayer) PointSupports() ([]*PointSupport, error) {
	return entitiesAs[*PointSupport](l.getEntities("PointSupports"))
}

// LineSupports returns all the line supports on this layer.
func (l *StructureLayer) LineSupports() ([]*LineSupport, error) {
	return entitiesAs[*LineSupport](l.getEntities("LineSupports"))
}

// WallsBelow returns all the walls below the slab on this layer.
func (l *StructureLayer) WallsBelow() ([]*Wall, error) {
	return entitiesAs[*Wall](l.getEntities("WallsBelow"))
}

// WallsAbove returns all the walls above the slab on this layer.
func (l *StructureLayer) WallsAbove() ([]*Wall, error) {
	return entitiesAs[*Wall](l.getEntities("WallsAbove"))
}

// ColumnsBelow returns all the columns below the slab on this layer.
func (l *StructureLayer) ColumnsBelow() ([]*Column, error) {
	return entitiesAs[*Column](l.getEntities("ColumnsBelow"))
}

// ColumnsAbove returns all the columns above the slab on this layer.
func (l *StructureLayer) ColumnsAbove() ([]*Column, error) {
	return entitiesAs[*Column](l.getEntities("ColumnsAbove"))
}

// SlabAreas returns all the slab areas on this layer.
func (l *StructureLayer) SlabAreas() ([]*SlabArea, error) {
	return entitiesAs[*SlabArea](l.getEntities("SlabAreas"))
}

// SlabOpenings returns all the slab openings on this layer.
func (l *StructureLayer) SlabOpenings() ([]*SlabOpening, error) {
	return entitiesAs[*SlabOpening](l.getEntities("SlabOpenings"))
}

// Beams returns all the beams on this layer.
func (l *StructureLayer) Beams() ([]*Beam, error) {
	return entitiesAs[*Beam](l.getEntities("Beams"))
}

// ENTITY ADDITION

// AddPointSpring adds a point spring at the given location, copying
// properties from CadManager.DefaultPointSpring.
func (l *StructureLayer) AddPointSpring(location geometry.Point2D) (*PointSpring, error) {
	return entityAs[*PointSpring](l.addCadEntityWithPoint("PointSpring", location))
}

// AddLineSpring adds a line spring at the given location, copying properties
// from CadManager.DefaultLineSpring.
func (l *StructureLayer) AddLineSpring(location geometry.LineSegment2D) (*LineSpring, error) {
	return entityAs[*LineSpring](l.addCadEntityWithSegment("LineSpring", location))
}

// AddAreaSpring adds an area spring with the given boundary, copying
// properties from CadManager.DefaultAreaSpring.
func (l *StructureLayer) AddAreaSpring(boundary geometry.Polygon2D) (*AreaSpring, error) {
	return entityAs[*AreaSpring](l.addCadEntityWithPolygon("AreaSpring", boundary))
}

// AddPointSupport adds a point support at the given location, copying
// properties from CadManager.DefaultPointSupport.
func (l *StructureLayer) AddPointSupport(location geometry.Point2D) (*PointSupport, error) {
	return entityAs[*PointSupport](l.addCadEntityWithPoint("PointSupport", location))
}

// AddLineSupport adds a line support at the given location, copying
// properties from CadManager.DefaultLineSupport.
func (l *StructureLayer) AddLineSupport(location geometry.LineSegment2D) (*LineSupport, error) {
	return entityAs[*LineSupport](l.addCadEntityWithSegment("LineSupport", location))
}

// AddBeam adds a beam at the given location, copying properties from
// CadManager.DefaultBeam.
func (l *StructureLayer) AddBeam(location geometry.LineSegment2D) (*Beam, error) {
	return entityAs[*Beam](l.addCadEntityWithSegment("Beam", location))
}

// AddColumn adds a column at the given location, copying properties from
// CadManager.DefaultColumn.
func (l *StructureLayer) AddColumn(location geometry.Point2D) (*Column, error) {
	return entityAs[*Column](l.addCadEntityWithPoint("Column", location))
}

// AddSlabArea adds a slab area with the given boundary, copying properties
// from CadManager.DefaultSlabArea.
func (l *StructureLayer) AddSlabArea(boundary geometry.Polygon2D) (*SlabArea, error) {
	return entityAs[*SlabArea](l.addCadEntityWithPolygon("SlabArea", boundary))
}

// AddSlabOpening adds a slab opening with the given boundary, copying
// properties from CadManager.DefaultSlabOpening.
func (l *StructureLayer) AddSlabOpening(boundary geometry.Polygon2D) (*SlabOpening, error) {
	return entityAs[*SlabOpening](l.addCadEntityWithPolygon("SlabOpening", boundary))
}

// AddWall adds a wall at the given location, copying properties from
// CadManager.DefaultWall.
func (l *StructureLayer) AddWall(location geometry.LineSegment2D) (*Wall, error) {
	return entityAs[*Wall](l.addCadEntityWithSegment("Wall", location))
}
