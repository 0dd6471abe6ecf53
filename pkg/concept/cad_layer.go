/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cad_layer.go
Description: Base handle for layers in the CAD system, with the shared entity
creation and filtered listing operations. Bulk addition is transactional at
the client level: if any creation fails, everything created so far is
deleted before the error is returned.
*/

package concept

import (
	"github.com/kleascm/concept-client/pkg/geometry"
)

// CadLayer is the superclass handle of all the layers in the CAD system.
type CadLayer struct {
	Data
}

func newCadLayer(uid int, m *Model, typeName string) CadLayer {
	return CadLayer{Data: newData(uid, m, typeName)}
}

// ENTITY ADDITION OPERATIONS

// addCadEntityWithPoint adds an entity of the given type at the given point.
func (l *CadLayer) addCadEntityWithPoint(entityType string, location geometry.Point2D) (Entity, error) {
	return l.addCadEntity(entityType, location.ToPointListBracketString())
}

// addCadEntityWithSegment adds an entity of the given type at the given
// segment.
func (l *CadLayer) addCadEntityWithSegment(entityType string, location geometry.LineSegment2D) (Entity, error) {
	return l.addCadEntity(entityType, location.ToPointListBracketString())
}

// addCadEntityWithPolygon adds an entity of the given type with the given
// boundary.
func (l *CadLayer) addCadEntityWithPolygon(entityType string, boundary geometry.Polygon2D) (Entity, error) {
	return l.addCadEntity(entityType, boundary.ToPointListBracketString())
}

// addCadEntity adds an entity of the given type at the given location (point
// list bracket string).
func (l *CadLayer) addCadEntity(entityType string, location string) (Entity, error) {
	uid, err := l.command("[NEW_ENTITY_USER][" + entityType + "]" + location)
	if err != nil {
		return nil, err
	}
	return l.model.getData(uid)
}

// EXISTING ENTITY ACCESS OPERATIONS

// getEntities lists the entities on this layer matching the given filter key.
func (l *CadLayer) getEntities(filterKey string) ([]Entity, error) {
	uids, err := l.command("[GET_ENTITY_LIST][" + filterKey + "]")
	if err != nil {
		return nil, err
	}
	return l.model.getDatasFromBracketString(uids)
}

// deletable is any entity that supports removal, used for bulk rollback.
type deletable interface {
	Delete() error
}

// bulkAdd creates count entities through the given add callback. If any
// creation fails, all entities created so far are deleted (best effort)
// before the original error is returned.
func bulkAdd[T deletable](count int, add func(i int) (T, error)) ([]T, error) {
	entities := make([]T, 0, count)
	for i := 0; i < count; i++ {
		entity, err := add(i)
		if err != nil {
			for _, created := range entities {
				_ = created.Delete()
			}
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
