/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: registry_test.go
Description: Tests for the wire type registry. Covers the legacy wire names
that differ from the handle type, the loading layer construction probe and the
plain-Data fallback for unknown types.
*/

package concept

import (
	"testing"

	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wrapUID asks the model to wrap the given uid after scripting its wire type
func wrapUID(t *testing.T, stub *stubTransport, uid string, wireType string) Entity {
	t.Helper()
	stub.respond("[WITH_TARGET]["+uid+"][[GET_TYPE]]", wireType)
	model := newStubModel(stub)
	entity, err := model.getData(uid)
	require.NoError(t, err)
	return entity
}

// TestRegistryDirectWireNames tests wire names matching the handle type
func TestRegistryDirectWireNames(t *testing.T) {
	assert.IsType(t, &PointLoad{}, wrapUID(t, newStubTransport(), "10", "PointLoad"))
	assert.IsType(t, &Beam{}, wrapUID(t, newStubTransport(), "11", "Beam"))
	assert.IsType(t, &CadManager{}, wrapUID(t, newStubTransport(), "12", "CadManager"))
	assert.IsType(t, &TendonNode{}, wrapUID(t, newStubTransport(), "13", "TendonNode"))
	assert.IsType(t, &Concrete{}, wrapUID(t, newStubTransport(), "14", "Concrete"))
}

// TestRegistryLegacyWireNames tests wire names that differ from the handle type
func TestRegistryLegacyWireNames(t *testing.T) {
	assert.IsType(t, &TendonSegment{}, wrapUID(t, newStubTransport(), "20", "Tendon"))
	assert.IsType(t, &DefaultTendonSegment{}, wrapUID(t, newStubTransport(), "21", "DefaultTendon"))
	assert.IsType(t, &SlabElement{}, wrapUID(t, newStubTransport(), "22", "TriSlabElement"))
	assert.IsType(t, &SlabElement{}, wrapUID(t, newStubTransport(), "23", "QuadSlabElement"))
	assert.IsType(t, &ShrinkageAreaLoad{}, wrapUID(t, newStubTransport(), "24", "AreaLoadForShrinkage"))
	assert.IsType(t, &TemperatureAreaLoad{}, wrapUID(t, newStubTransport(), "25", "AreaLoadForTemperature"))
}

// TestRegistryUnknownWireName tests the plain-Data fallback for future types
func TestRegistryUnknownWireName(t *testing.T) {
	entity := wrapUID(t, newStubTransport(), "30", "HologramSlab")
	assert.IsType(t, &Data{}, entity)
	assert.Equal(t, 30, entity.UID())
}

// TestRegistryLoadingLayerProbe tests the loading type probe at construction
func TestRegistryLoadingLayerProbe(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][40][[GET_PROP_INTERNAL][LoadingType]]", "live_reducible")
	entity := wrapUID(t, stub, "40", "ForceLoadingLayer")
	layer, ok := entity.(*ForceLoadingLayer)
	require.True(t, ok)
	assert.False(t, layer.readOnly)

	// the legacy "LoadingLayer" wire name also maps to a force loading layer
	stub = newStubTransport().
		respond("[WITH_TARGET][41][[GET_PROP_INTERNAL][LoadingType]]", "other_dead")
	assert.IsType(t, &ForceLoadingLayer{}, wrapUID(t, stub, "41", "LoadingLayer"))
}

// TestRegistryProgramOwnedLoadingIsReadOnly tests the read-only marking of
// program-owned loadings
func TestRegistryProgramOwnedLoadingIsReadOnly(t *testing.T) {
	for _, loadingType := range []string{"self_dead", "balance", "hyperstatic"} {
		stub := newStubTransport().
			respond("[WITH_TARGET][50][[GET_PROP_INTERNAL][LoadingType]]", loadingType)
		entity := wrapUID(t, stub, "50", "ForceLoadingLayer")
		layer, ok := entity.(*ForceLoadingLayer)
		require.True(t, ok)
		assert.True(t, layer.readOnly, "loading type %s should be read-only", loadingType)

		err := layer.SetName("renamed")
		var readOnlyErr *protocol.ReadOnlyError
		assert.ErrorAs(t, err, &readOnlyErr)
	}
}

// TestGetDataEmptyAndInvalid tests the uid string edge cases
func TestGetDataEmptyAndInvalid(t *testing.T) {
	model := newStubModel(newStubTransport())

	entity, err := model.getData("")
	require.NoError(t, err)
	assert.Nil(t, entity)

	_, err = model.getData("not-a-uid")
	require.Error(t, err)
	var internalErr *protocol.InternalError
	assert.ErrorAs(t, err, &internalErr)
}

// TestGetDatasFromBracketString tests wrapping a uid list
func TestGetDatasFromBracketString(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][60][[GET_TYPE]]", "PointLoad").
		respond("[WITH_TARGET][61][[GET_TYPE]]", "LineLoad")
	model := newStubModel(stub)

	entities, err := model.getDatasFromBracketString("[60][61]")
	require.NoError(t, err)
	require.Len(t, entities, 2)
	assert.IsType(t, &PointLoad{}, entities[0])
	assert.IsType(t, &LineLoad{}, entities[1])
}
