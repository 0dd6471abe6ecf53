/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: enums_test.go
Description: Tests for the enum wire tables. Covers round trips for the word
and small-int encodings, the error taxonomy for unknown values, and the enum
property access helpers.
*/

package concept

import (
	"testing"

	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStringEnumTableRoundTrip tests the word encoding in both directions
func TestStringEnumTableRoundTrip(t *testing.T) {
	internal, err := designCodes.internal(ACI318_19SI)
	require.NoError(t, err)
	assert.Equal(t, "ACI318_19SI", internal)

	value, err := designCodes.value("EC2_2004UK")
	require.NoError(t, err)
	assert.Equal(t, EC2_2004UK, value)

	internal, err = spanSets.internal(LatitudeSpans)
	require.NoError(t, err)
	assert.Equal(t, "latitude", internal)
}

// TestStringEnumTableErrors tests the error taxonomy for unknown values
func TestStringEnumTableErrors(t *testing.T) {
	// an unknown Go value is a caller error
	_, err := structureTypes.internal(StructureType("FLOATING"))
	require.Error(t, err)
	var invalidErr *protocol.InvalidValueError
	assert.ErrorAs(t, err, &invalidErr)

	// an unknown wire encoding is a protocol defect
	_, err = structureTypes.value("floating")
	require.Error(t, err)
	var internalErr *protocol.InternalError
	assert.ErrorAs(t, err, &internalErr)
}

// TestIntEnumTableRoundTrip tests the small-int encoding in both directions
func TestIntEnumTableRoundTrip(t *testing.T) {
	internal, err := anchorTypes.internal(AnchorBondHead)
	require.NoError(t, err)
	assert.Equal(t, 6, internal)

	value, err := anchorTypes.value(3)
	require.NoError(t, err)
	assert.Equal(t, AnchorCircularSinglePlane, value)

	internal, err = loadComboLateralGroupTypes.internal(SeismicUltimateGroup)
	require.NoError(t, err)
	assert.Equal(t, 400, internal)

	_, err = ductShapes.value(99)
	require.Error(t, err)
	var internalErr *protocol.InternalError
	assert.ErrorAs(t, err, &internalErr)
}

// TestEnumPropertyAccess tests the get/set helpers over the stub transport
func TestEnumPropertyAccess(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][7][[GET_PROP_INTERNAL][PTSystemType]]", "bonded").
		respond("[WITH_TARGET][7][[SET_PROP_INTERNAL][PTSystemType][unbonded]]", "").
		respond("[WITH_TARGET][7][[GET_PROP_INTERNAL][AnchorType]]", "2").
		respond("[WITH_TARGET][7][[SET_PROP_INTERNAL][AnchorType][5]]", "")
	model := newStubModel(stub)
	data := newData(7, model, "Test")

	systemType, err := getStringEnum(&data, ptSystemTypes, "PTSystemType")
	require.NoError(t, err)
	assert.Equal(t, PTBonded, systemType)

	require.NoError(t, setStringEnum(&data, ptSystemTypes, "PTSystemType", PTUnbonded))

	anchorType, err := getIntEnum(&data, anchorTypes, "AnchorType")
	require.NoError(t, err)
	assert.Equal(t, AnchorFlatMulti, anchorType)

	require.NoError(t, setIntEnum(&data, anchorTypes, "AnchorType", AnchorOval))

	// setting an unknown enum value never reaches the wire
	before := len(stub.commands)
	err = setStringEnum(&data, ptSystemTypes, "PTSystemType", PTSystemType("wireless"))
	require.Error(t, err)
	assert.Len(t, stub.commands, before)
}
