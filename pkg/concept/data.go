/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: data.go
Description: Base object handle and generic property dispatch for the Concept
client. Every typed accessor in the entity catalog funnels through the
get/set property operations here, which translate to [GET_PROP_*]/[SET_PROP_*]
commands targeted at the entity's server-side uid. Read-only enforcement is
centralized at the lowest level so it cannot be bypassed by adding a new
property type; delimiter validation guards the plain string write path.
*/

package concept

import (
	"strconv"
	"strings"

	"github.com/kleascm/concept-client/pkg/bracket"
	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// propertyUnits selects between the internal and user-unit property commands.
type propertyUnits int

const (
	internalUnits propertyUnits = iota
	userUnits
)

// Entity is a handle to a server-side object in a Model. The client never
// holds object state, only the uid plus the owning model used to route
// commands. Handles become meaningless once the owning model is closed.
type Entity interface {
	UID() int
	Model() *Model

	// base exposes the shared Data so the framework can route commands and
	// propagate read-only flags. Not for use outside this package.
	base() *Data
}

// Data is the embedded base of every entity handle. Direct use of Data
// (instead of a more specific type) usually means the server returned a wire
// type this client has no wrapper for.
type Data struct {
	uid      int
	model    *Model
	typeName string
	readOnly bool
}

func newData(uid int, model *Model, typeName string) Data {
	return Data{uid: uid, model: model, typeName: typeName}
}

// UID returns the read-only uid of this entity.
func (d *Data) UID() int { return d.uid }

// Model returns the Model that contains this entity.
func (d *Data) Model() *Model { return d.model }

func (d *Data) base() *Data { return d }

// Name returns the name of this entity (not all entity types have
// meaningful names).
func (d *Data) Name() (string, error) {
	return d.getString("Name")
}

// SetName sets the name of this entity.
func (d *Data) SetName(name string) error {
	return d.setString("Name", name)
}

// Number returns the 1-based number of this entity, matching what appears in
// the Concept UI.
func (d *Data) Number() (int, error) {
	n, err := d.getInt("Number")
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

// Equal reports whether other refers to the same server-side object in the
// same model.
func (d *Data) Equal(other Entity) bool {
	if other == nil {
		return false
	}
	return d.uid == other.UID() && d.model == other.Model()
}

// CORE COMMAND OPERATION

// command runs the given command in the context of this entity (WITH_TARGET).
func (d *Data) command(cmd string) (string, error) {
	fullCommand := "[WITH_TARGET][" + strconv.Itoa(d.uid) + "][" + cmd + "]"
	return d.model.command(fullCommand, 0)
}

// READ-ONLY SUPPORT

func (d *Data) raiseIfSetReadOnly() error {
	if d.readOnly {
		return &protocol.ReadOnlyError{Message: "cannot set properties of read-only " + d.typeName}
	}
	return nil
}

func (d *Data) raiseIfOperationReadOnly(operation string) error {
	if d.readOnly {
		return &protocol.ReadOnlyError{Message: "cannot " + operation + " with read-only " + d.typeName}
	}
	return nil
}

// DELETION

// deleteData removes this entity from the model. This is a dangerous
// operation that can corrupt the model; only exported Delete methods (which
// add the appropriate guards) should call it.
func (d *Data) deleteData() error {
	_, err := d.command("[DELETE]")
	return err
}

// CHILD ACCESS OPERATIONS

// addUniqueNamedChild adds and returns a child of the given type and name,
// after ensuring the name is valid and unique across all children.
func (d *Data) addUniqueNamedChild(childType string, name string) (Entity, error) {
	if err := d.validateUniqueChildName(name); err != nil {
		return nil, err
	}

	uid, err := d.command("[ADD_CHILD][" + childType + "][" + name + "][NO_SORT]")
	if err != nil {
		return nil, err
	}
	return d.model.getData(uid)
}

func (d *Data) validateUniqueChildName(name string) error {
	if name == "" {
		return &protocol.InvalidValueError{Message: "name must be provided"}
	}
	if err := bracket.ValidateStringValue(name); err != nil {
		return err
	}

	children, err := d.getChildren()
	if err != nil {
		return err
	}
	for _, child := range children {
		childName, err := child.base().Name()
		if err != nil {
			return err
		}
		if childName == name {
			return &protocol.InvalidValueError{Message: "unique value must be provided for Name"}
		}
	}
	return nil
}

// getChildren returns all child entities of this entity.
func (d *Data) getChildren() ([]Entity, error) {
	response, err := d.command("[GET_CHILDREN]")
	if err != nil {
		return nil, err
	}
	tokens, err := bracket.Parse(response)
	if err != nil {
		return nil, err
	}
	return d.model.getDatas(tokens)
}

// getChildrenOfType returns all children with the exact matching type
// (subclasses not included).
func (d *Data) getChildrenOfType(childType string) ([]Entity, error) {
	uids, err := d.command("[GET_CHILDREN_OF_TYPE][" + childType + "]")
	if err != nil {
		return nil, err
	}
	return d.model.getDatasFromBracketString(uids)
}

// getOnlyChildOfType returns the single child of the given type, failing if
// there are zero or more than one.
func (d *Data) getOnlyChildOfType(childType string) (Entity, error) {
	children, err := d.getChildrenOfType(childType)
	if err != nil {
		return nil, err
	}
	if len(children) < 1 {
		return nil, &protocol.InternalError{Message: "no children of type '" + childType + "' exist"}
	}
	if len(children) > 1 {
		return nil, &protocol.InternalError{Message: "more than 1 child of type '" + childType + "' exists"}
	}
	return children[0], nil
}

// getNamedChildOfType returns the child of the given type and name, or nil.
func (d *Data) getNamedChildOfType(name string, childType string) (Entity, error) {
	uid, err := d.command("[GET_NAMED_CHILD][" + name + "][" + childType + "]")
	if err != nil {
		return nil, err
	}
	if uid == "" {
		return nil, nil
	}
	return d.model.getData(uid)
}

// GENERIC PROPERTY ACCESS OPERATIONS

// getString gets the value of the (string) property with the given name.
func (d *Data) getString(propertyName string) (string, error) {
	return d.getProperty(propertyName, internalUnits)
}

// setString sets the (string) property with the given name. The value is
// checked for delimiter characters before anything is transmitted; structured
// payloads (points, encoded lists) do not pass through here.
func (d *Data) setString(propertyName string, value string) error {
	if err := bracket.ValidateStringValue(value); err != nil {
		return err
	}
	return d.setProperty(propertyName, value, internalUnits)
}

// getFloat gets the value of the (float) property with the given name.
// Floats travel in user units with the finite-sentinel convention.
func (d *Data) getFloat(propertyName string) (float64, error) {
	floatString, err := d.getProperty(propertyName, userUnits)
	if err != nil {
		return 0, err
	}
	return bracket.UserStrToFloat(floatString)
}

// setFloat sets the (float) property with the given name.
func (d *Data) setFloat(propertyName string, value float64) error {
	return d.setProperty(propertyName, bracket.FloatToUserStr(value), userUnits)
}

// getInt gets the value of the (int) property with the given name.
func (d *Data) getInt(propertyName string) (int, error) {
	intString, err := d.getProperty(propertyName, internalUnits)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(intString)
	if err != nil {
		return 0, &protocol.InternalError{Message: "unexpected int string in " + propertyName + " property: " + intString}
	}
	return value, nil
}

// setInt sets the (int) property with the given name.
func (d *Data) setInt(propertyName string, value int) error {
	return d.setProperty(propertyName, bracket.IntToUserStr(value), internalUnits)
}

// getBool gets the value of the (bool) property with the given name.
// Any value other than case-insensitive "true"/"false" violates a protocol
// invariant and is reported as an InternalError.
func (d *Data) getBool(propertyName string) (bool, error) {
	boolString, err := d.getProperty(propertyName, internalUnits)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(boolString) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &protocol.InternalError{Message: "unexpected bool string: " + boolString}
}

// setBool sets the (bool) property with the given name.
func (d *Data) setBool(propertyName string, value bool) error {
	return d.setProperty(propertyName, bracket.BoolToUserStr(value), internalUnits)
}

// getBoolString gets a bool property encoded by the remote protocol as one of
// two domain-specific words (e.g. "below"/"above").
func (d *Data) getBoolString(propertyName string, trueValue, falseValue string) (bool, error) {
	stringValue, err := d.getString(propertyName)
	if err != nil {
		return false, err
	}
	switch stringValue {
	case trueValue:
		return true, nil
	case falseValue:
		return false, nil
	}
	return false, &protocol.InternalError{Message: "unexpected value in " + propertyName + " property: " + stringValue}
}

// setBoolString sets a bool property through its domain-specific word pair.
func (d *Data) setBoolString(propertyName string, trueValue, falseValue string, value bool) error {
	if value {
		return d.setString(propertyName, trueValue)
	}
	return d.setString(propertyName, falseValue)
}

// getEntity gets the value of an entity-reference property. An empty uid
// string maps to nil ("no entity").
func (d *Data) getEntity(propertyName string) (Entity, error) {
	uidString, err := d.getProperty(propertyName, internalUnits)
	if err != nil {
		return nil, err
	}
	if uidString == "" {
		return nil, nil
	}
	return d.model.getData(uidString)
}

// setEntity sets an entity-reference property. Cross-model references are
// rejected; nil stores the reserved uid 0.
func (d *Data) setEntity(propertyName string, value Entity) error {
	uid := "0"

	if value != nil {
		if value.Model() != d.model {
			return &protocol.InvalidValueError{
				Message: "attempting to set property of entity in one model to a reference of an entity in another model",
			}
		}
		uid = strconv.Itoa(value.UID())
	}

	return d.setProperty(propertyName, uid, internalUnits)
}

// getPoint2D gets the value of a Point2D property.
func (d *Data) getPoint2D(propertyName string) (geometry.Point2D, error) {
	pointString, err := d.getProperty(propertyName, userUnits)
	if err != nil {
		return geometry.Point2D{}, err
	}
	return geometry.Point2DFromBracketString(pointString)
}

// setPoint2D sets the value of a Point2D property.
func (d *Data) setPoint2D(propertyName string, value geometry.Point2D) error {
	return d.setProperty(propertyName, value.ToBracketString(), userUnits)
}

// getPoint3D gets the value of a Point3D property.
func (d *Data) getPoint3D(propertyName string) (geometry.Point3D, error) {
	pointString, err := d.getProperty(propertyName, userUnits)
	if err != nil {
		return geometry.Point3D{}, err
	}
	return geometry.Point3DFromBracketString(pointString)
}

// setPoint3D sets the value of a Point3D property.
func (d *Data) setPoint3D(propertyName string, value geometry.Point3D) error {
	return d.setProperty(propertyName, value.ToBracketString(), userUnits)
}

// INTERNAL PROPERTY ACCESS OPERATIONS

// getProperty gets the value (as a string) of the given property in the given
// units.
func (d *Data) getProperty(propertyName string, units propertyUnits) (string, error) {
	commandName := "GET_PROP_USER"
	if units == internalUnits {
		commandName = "GET_PROP_INTERNAL"
	}

	return d.command("[" + commandName + "][" + propertyName + "]")
}

// setProperty sets the given property to the given value in the given units.
// All property writes go through this method: the read-only check happens
// here, before anything is transmitted. Values arriving here are already
// encoded; only the plain-text string path validates for delimiters.
func (d *Data) setProperty(propertyName string, value string, units propertyUnits) error {
	if err := d.raiseIfSetReadOnly(); err != nil {
		return err
	}

	commandName := "SET_PROP_USER"
	if units == internalUnits {
		commandName = "SET_PROP_INTERNAL"
	}

	_, err := d.command("[" + commandName + "][" + propertyName + "][" + value + "]")
	return err
}

// TYPED HANDLE CONVERSION

// entityAs converts an Entity to the expected concrete handle type. A type
// mismatch means the server returned an unexpected wire type, which is a
// protocol defect rather than a user error.
func entityAs[T Entity](entity Entity, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if entity == nil {
		return zero, nil
	}
	typed, ok := entity.(T)
	if !ok {
		return zero, &protocol.InternalError{Message: "unexpected entity type " + entity.base().typeName}
	}
	return typed, nil
}

// entitiesAs converts a list of entities to the expected concrete handle type.
func entitiesAs[T Entity](entities []Entity, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	typed := make([]T, 0, len(entities))
	for _, entity := range entities {
		t, err := entityAs[T](entity, nil)
		if err != nil {
			return nil, err
		}
		typed = append(typed, t)
	}
	return typed, nil
}
