/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loading_layers_test.go
Description: Tests for the loading layer handles. Covers the loading and
analysis type change rules, read-only enforcement on program-owned layers and
the transactional bulk point-load addition.
*/

package concept

import (
	"testing"

	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStubForceLayer builds a force loading layer over the stub with the given
// loading type
func newStubForceLayer(t *testing.T, stub *stubTransport, uid string, loadingType string) *ForceLoadingLayer {
	t.Helper()
	stub.respond("[WITH_TARGET]["+uid+"][[GET_PROP_INTERNAL][LoadingType]]", loadingType)
	entity := wrapUID(t, stub, uid, "ForceLoadingLayer")
	layer, ok := entity.(*ForceLoadingLayer)
	require.True(t, ok)
	return layer
}

// TestSetAnalysisTypeValid tests a valid analysis type change
func TestSetAnalysisTypeValid(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][9][[SET_PROP_INTERNAL][AnalysisType][floating]]", "")
	layer := newStubForceLayer(t, stub, "9", "live_reducible")

	require.NoError(t, layer.SetAnalysisType(SelfEquilibriumAnalysis))
	assert.True(t, stub.sent("[WITH_TARGET][9][[SET_PROP_INTERNAL][AnalysisType][floating]]"))
}

// TestSetLoadingTypeOnStructuralLayer tests that shrinkage layers refuse a
// loading type change
func TestSetLoadingTypeOnStructuralLayer(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][9][[GET_PROP_INTERNAL][LoadingType]]", "shrinkage")
	entity := wrapUID(t, stub, "9", "ShrinkageLoadingLayer")
	layer, ok := entity.(*ShrinkageLoadingLayer)
	require.True(t, ok)
	assert.False(t, layer.readOnly)

	target, err := NewLoadingType(LiveReducible, false, 0)
	require.NoError(t, err)

	err = layer.SetLoadingType(target)
	require.Error(t, err)
	var invalidErr *protocol.InvalidValueError
	assert.ErrorAs(t, err, &invalidErr)
}

// TestReadOnlyLayerRefusesAdds tests that program-owned layers refuse edits
func TestReadOnlyLayerRefusesAdds(t *testing.T) {
	layer := newStubForceLayer(t, newStubTransport(), "9", "self_dead")

	_, err := layer.AddPointLoad(geometry.NewPoint2D(0, 0))
	var readOnlyErr *protocol.ReadOnlyError
	require.ErrorAs(t, err, &readOnlyErr)

	_, err = layer.AddPointLoads([]float64{0}, []float64{0}, nil, nil, nil, nil, nil, nil)
	assert.ErrorAs(t, err, &readOnlyErr)
}

// TestAddPointLoadsLengthValidation tests the slice length checks
func TestAddPointLoadsLengthValidation(t *testing.T) {
	layer := newStubForceLayer(t, newStubTransport(), "9", "live_reducible")
	var invalidErr *protocol.InvalidValueError

	_, err := layer.AddPointLoads([]float64{0, 1}, []float64{0}, nil, nil, nil, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)

	_, err = layer.AddPointLoads([]float64{0, 1}, []float64{0, 0}, nil, []float64{5}, nil, nil, nil, nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)
}

// TestAddPointLoads tests the bulk addition including the zero-fill defaults
func TestAddPointLoads(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][9][[NEW_ENTITY_USER][PointLoad][[0][0]]]", "101").
		respond("[WITH_TARGET][101][[GET_TYPE]]", "PointLoad").
		respond("[WITH_TARGET][9][[NEW_ENTITY_USER][PointLoad][[5][0]]]", "102").
		respond("[WITH_TARGET][102][[GET_TYPE]]", "PointLoad")
	for _, uid := range []string{"101", "102"} {
		for _, prop := range []string{"PLFy", "PLFz", "PLMx", "PLMy"} {
			stub.respond("[WITH_TARGET]["+uid+"][[SET_PROP_USER]["+prop+"][0]]", "")
		}
	}
	stub.respond("[WITH_TARGET][101][[SET_PROP_USER][PLFx][10]]", "")
	stub.respond("[WITH_TARGET][102][[SET_PROP_USER][PLFx][20]]", "")

	layer := newStubForceLayer(t, stub, "9", "live_reducible")

	loads, err := layer.AddPointLoads(
		[]float64{0, 5}, []float64{0, 0},
		nil, []float64{10, 20}, nil, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, loads, 2)
	assert.Equal(t, 101, loads[0].UID())
	assert.Equal(t, 102, loads[1].UID())

	// the provided fx values were transmitted; unspecified forces were zeroed
	assert.True(t, stub.sent("[WITH_TARGET][101][[SET_PROP_USER][PLFx][10]]"))
	assert.True(t, stub.sent("[WITH_TARGET][102][[SET_PROP_USER][PLFx][20]]"))
	assert.True(t, stub.sent("[WITH_TARGET][101][[SET_PROP_USER][PLFz][0]]"))

	// a nil elevation leaves the default elevation alone
	for _, cmd := range stub.commands {
		assert.NotContains(t, cmd, "LoadElevation")
	}
}

// TestAddPointLoadsRollback tests that a mid-bulk failure deletes everything
// created so far
func TestAddPointLoadsRollback(t *testing.T) {
	remoteErr := &protocol.RemoteError{Message: "location outside slab"}
	stub := newStubTransport().
		respond("[WITH_TARGET][9][[NEW_ENTITY_USER][PointLoad][[0][0]]]", "101").
		respond("[WITH_TARGET][101][[GET_TYPE]]", "PointLoad").
		respond("[WITH_TARGET][101][[DELETE]]", "")
	stub.fail("[WITH_TARGET][9][[NEW_ENTITY_USER][PointLoad][[5][0]]]", remoteErr)

	layer := newStubForceLayer(t, stub, "9", "live_reducible")

	_, err := layer.AddPointLoads([]float64{0, 5}, []float64{0, 0}, nil, nil, nil, nil, nil, nil)
	require.Error(t, err)
	var gotRemote *protocol.RemoteError
	require.ErrorAs(t, err, &gotRemote)
	assert.Equal(t, "location outside slab", gotRemote.Message)

	// the load created before the failure was rolled back
	assert.True(t, stub.sent("[WITH_TARGET][101][[DELETE]]"))
}

// TestAddPointLoadsSetterRollback tests that a value assignment failing after
// all loads were created deletes every load created by the call
func TestAddPointLoadsSetterRollback(t *testing.T) {
	remoteErr := &protocol.RemoteError{Message: "value out of range"}
	stub := newStubTransport().
		respond("[WITH_TARGET][9][[NEW_ENTITY_USER][PointLoad][[0][0]]]", "101").
		respond("[WITH_TARGET][101][[GET_TYPE]]", "PointLoad").
		respond("[WITH_TARGET][9][[NEW_ENTITY_USER][PointLoad][[5][0]]]", "102").
		respond("[WITH_TARGET][102][[GET_TYPE]]", "PointLoad").
		respond("[WITH_TARGET][101][[SET_PROP_USER][PLFx][10]]", "").
		respond("[WITH_TARGET][101][[DELETE]]", "").
		respond("[WITH_TARGET][102][[DELETE]]", "")
	stub.fail("[WITH_TARGET][102][[SET_PROP_USER][PLFx][20]]", remoteErr)

	layer := newStubForceLayer(t, stub, "9", "live_reducible")

	_, err := layer.AddPointLoads(
		[]float64{0, 5}, []float64{0, 0},
		nil, []float64{10, 20}, nil, nil, nil, nil)
	require.Error(t, err)
	var gotRemote *protocol.RemoteError
	require.ErrorAs(t, err, &gotRemote)
	assert.Equal(t, "value out of range", gotRemote.Message)

	// both loads were deleted, including the one whose value was already set
	assert.True(t, stub.sent("[WITH_TARGET][101][[DELETE]]"))
	assert.True(t, stub.sent("[WITH_TARGET][102][[DELETE]]"))
}
