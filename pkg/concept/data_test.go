/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: data_test.go
Description: Tests for the base object handle. Covers the WITH_TARGET command
wrapping, the typed property codecs, client-side write validation and the
entity reference plumbing.
*/

package concept

import (
	"math"
	"testing"

	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCommandTargeting tests that entity commands are wrapped in WITH_TARGET
func TestCommandTargeting(t *testing.T) {
	stub := newStubTransport().respond("[WITH_TARGET][12][[GET_PROP_INTERNAL][Name]]", "Live Loading")
	model := newStubModel(stub)

	data := newData(12, model, "Test")
	name, err := data.Name()
	require.NoError(t, err)
	assert.Equal(t, "Live Loading", name)
	assert.Equal(t, []string{"[WITH_TARGET][12][[GET_PROP_INTERNAL][Name]]"}, stub.commands)
}

// TestNumberIsOneBased tests the UI numbering offset
func TestNumberIsOneBased(t *testing.T) {
	stub := newStubTransport().respond("[WITH_TARGET][7][[GET_PROP_INTERNAL][Number]]", "4")
	model := newStubModel(stub)

	data := newData(7, model, "Test")
	number, err := data.Number()
	require.NoError(t, err)
	assert.Equal(t, 5, number)
}

// TestFloatPropertyUnits tests that floats travel in user units with sentinels
func TestFloatPropertyUnits(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][7][[GET_PROP_USER][PLFx]]", "infinite").
		respond("[WITH_TARGET][7][[SET_PROP_USER][PLFx][2.5]]", "")
	model := newStubModel(stub)

	data := newData(7, model, "Test")
	value, err := data.getFloat("PLFx")
	require.NoError(t, err)
	assert.Equal(t, math.MaxFloat64, value)

	require.NoError(t, data.setFloat("PLFx", 2.5))
}

// TestBoolPropertyDecode tests case-insensitive bool decoding
func TestBoolPropertyDecode(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][7][[GET_PROP_INTERNAL][A]]", "true").
		respond("[WITH_TARGET][7][[GET_PROP_INTERNAL][B]]", "True").
		respond("[WITH_TARGET][7][[GET_PROP_INTERNAL][C]]", "FALSE").
		respond("[WITH_TARGET][7][[GET_PROP_INTERNAL][D]]", "maybe")
	model := newStubModel(stub)
	data := newData(7, model, "Test")

	value, err := data.getBool("A")
	require.NoError(t, err)
	assert.True(t, value)

	value, err = data.getBool("B")
	require.NoError(t, err)
	assert.True(t, value)

	value, err = data.getBool("C")
	require.NoError(t, err)
	assert.False(t, value)

	_, err = data.getBool("D")
	require.Error(t, err)
	var internalErr *protocol.InternalError
	assert.ErrorAs(t, err, &internalErr)
}

// TestBoolStringProperty tests the domain word-pair bool codec
func TestBoolStringProperty(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][7][[GET_PROP_INTERNAL][SupportSet]]", "below").
		respond("[WITH_TARGET][7][[SET_PROP_INTERNAL][SupportSet][above]]", "")
	model := newStubModel(stub)
	data := newData(7, model, "Test")

	value, err := data.getBoolString("SupportSet", "below", "above")
	require.NoError(t, err)
	assert.True(t, value)

	require.NoError(t, data.setBoolString("SupportSet", "below", "above", false))
}

// TestSetPropertyDelimiterValidation tests that bracket characters are
// rejected before anything is transmitted
func TestSetPropertyDelimiterValidation(t *testing.T) {
	stub := newStubTransport()
	model := newStubModel(stub)
	data := newData(7, model, "Test")

	err := data.setString("Name", "bad[name")
	require.Error(t, err)
	var invalidErr *protocol.InvalidValueError
	assert.ErrorAs(t, err, &invalidErr)
	assert.Empty(t, stub.commands)
}

// TestSetPropertyReadOnly tests that read-only handles refuse writes locally
func TestSetPropertyReadOnly(t *testing.T) {
	stub := newStubTransport()
	model := newStubModel(stub)
	data := newData(7, model, "LoadingLayer")
	data.readOnly = true

	err := data.setFloat("PLFx", 1)
	require.Error(t, err)
	var readOnlyErr *protocol.ReadOnlyError
	require.ErrorAs(t, err, &readOnlyErr)
	assert.Contains(t, readOnlyErr.Message, "LoadingLayer")
	assert.Empty(t, stub.commands)
}

// TestEntityReferenceProperty tests the uid-reference codec including nil
func TestEntityReferenceProperty(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][7][[GET_PROP_INTERNAL][ConcreteMix]]", "").
		respond("[WITH_TARGET][7][[SET_PROP_INTERNAL][ConcreteMix][0]]", "").
		respond("[WITH_TARGET][7][[SET_PROP_INTERNAL][ConcreteMix][33]]", "")
	model := newStubModel(stub)
	data := newData(7, model, "Test")

	// empty uid decodes to no entity
	entity, err := data.getEntity("ConcreteMix")
	require.NoError(t, err)
	assert.Nil(t, entity)

	// nil stores the reserved uid 0
	require.NoError(t, data.setEntity("ConcreteMix", nil))
	assert.True(t, stub.sent("[WITH_TARGET][7][[SET_PROP_INTERNAL][ConcreteMix][0]]"))

	other := newData(33, model, "Concrete")
	require.NoError(t, data.setEntity("ConcreteMix", &other))
	assert.True(t, stub.sent("[WITH_TARGET][7][[SET_PROP_INTERNAL][ConcreteMix][33]]"))
}

// TestEntityReferenceCrossModel tests rejection of references across models
func TestEntityReferenceCrossModel(t *testing.T) {
	model := newStubModel(newStubTransport())
	otherModel := newStubModel(newStubTransport())

	data := newData(7, model, "Test")
	foreign := newData(33, otherModel, "Concrete")

	err := data.setEntity("ConcreteMix", &foreign)
	require.Error(t, err)
	var invalidErr *protocol.InvalidValueError
	assert.ErrorAs(t, err, &invalidErr)
}

// TestEqual tests handle identity comparison
func TestEqual(t *testing.T) {
	model := newStubModel(newStubTransport())
	otherModel := newStubModel(newStubTransport())

	a := newData(7, model, "Test")
	b := newData(7, model, "Test")
	c := newData(8, model, "Test")
	d := newData(7, otherModel, "Test")

	assert.True(t, a.Equal(&b))
	assert.False(t, a.Equal(&c))
	assert.False(t, a.Equal(&d))
	assert.False(t, a.Equal(nil))
}

// TestPointProperty tests the Point2D and Point3D property codecs. Point
// payloads are bracket strings by construction, so the delimiter validation
// applied to plain string writes must not reject them.
func TestPointProperty(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][7][[GET_PROP_USER][CentroidNear]]", "[1.5][-2]").
		respond("[WITH_TARGET][7][[SET_PROP_USER][Location][[3][4]]]", "").
		respond("[WITH_TARGET][7][[SET_PROP_USER][Position][[3][4][5]]]", "")
	model := newStubModel(stub)
	data := newData(7, model, "Test")

	point, err := data.getPoint2D("CentroidNear")
	require.NoError(t, err)
	assert.Equal(t, geometry.NewPoint2D(1.5, -2), point)

	require.NoError(t, data.setPoint2D("Location", geometry.NewPoint2D(3, 4)))
	assert.True(t, stub.sent("[WITH_TARGET][7][[SET_PROP_USER][Location][[3][4]]]"))

	require.NoError(t, data.setPoint3D("Position", geometry.NewPoint3D(3, 4, 5)))
	assert.True(t, stub.sent("[WITH_TARGET][7][[SET_PROP_USER][Position][[3][4][5]]]"))
}
