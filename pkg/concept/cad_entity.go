/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: cad_entity.go
Description: Base handle for objects in the CAD system. Every CAD entity
lives on a CAD layer and has a plan location; the location codec here decodes
the two-token [type][payload] form of [GET_LOCATION_USER] into the matching
geometry value.
*/

package concept

import (
	"github.com/kleascm/concept-client/pkg/bracket"
	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// CadEntity represents an object in the CAD system. CAD entities always
// reside in a CadLayer. Only the framework creates these.
type CadEntity struct {
	Data
}

func newCadEntity(uid int, m *Model, typeName string) CadEntity {
	return CadEntity{Data: newData(uid, m, typeName)}
}

// Delete removes this entity from the model.
func (e *CadEntity) Delete() error {
	if err := e.raiseIfOperationReadOnly("delete"); err != nil {
		return err
	}
	return e.deleteData()
}

// location gets the plan location of this entity as a raw (type, payload)
// pair.
func (e *CadEntity) location() (string, string, error) {
	locationString, err := e.command("[GET_LOCATION_USER]")
	if err != nil {
		return "", "", err
	}

	tokens, err := bracket.Parse(locationString)
	if err != nil {
		return "", "", err
	}
	if len(tokens) != 2 {
		return "", "", &protocol.InternalError{Message: "bad [GET_LOCATION_USER] return value: " + locationString}
	}
	return tokens[0], tokens[1], nil
}

// pointLocation gets the plan location of a point-located entity.
func (e *CadEntity) pointLocation() (geometry.Point2D, error) {
	typeString, payload, err := e.location()
	if err != nil {
		return geometry.Point2D{}, err
	}
	if typeString != "Point2D" {
		return geometry.Point2D{}, &protocol.InternalError{Message: "unexpected [GET_LOCATION_USER] geometry type: " + typeString}
	}
	return geometry.Point2DFromBracketString(payload)
}

// segmentLocation gets the plan location of a segment-located entity.
func (e *CadEntity) segmentLocation() (geometry.LineSegment2D, error) {
	typeString, payload, err := e.location()
	if err != nil {
		return geometry.LineSegment2D{}, err
	}
	if typeString != "LineSeg2D" {
		return geometry.LineSegment2D{}, &protocol.InternalError{Message: "unexpected [GET_LOCATION_USER] geometry type: " + typeString}
	}
	return geometry.LineSegment2DFromBracketString(payload)
}

// polygonLocation gets the plan location of a polygon-located entity.
func (e *CadEntity) polygonLocation() (geometry.Polygon2D, error) {
	typeString, payload, err := e.location()
	if err != nil {
		return geometry.Polygon2D{}, err
	}
	if typeString != "Polygon2D" {
		return geometry.Polygon2D{}, &protocol.InternalError{Message: "unexpected [GET_LOCATION_USER] geometry type: " + typeString}
	}
	return geometry.Polygon2DFromBracketString(payload)
}
