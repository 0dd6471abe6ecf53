/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tendons_test.go
Description: Tests for the post-tensioning handles. Covers the profile
elevation query, chain-following helpers, layer listing filters and the
guards on tendon nodes and default entities.
*/

package concept

import (
	"testing"

	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestElevationsAlongSegment tests the profile elevation query round trip
func TestElevationsAlongSegment(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][30][[GET_PROFILE_ELEVATIONS_USER][0][0.5][1]]", "[0.2][0.05][0.18]")
	model := newStubModel(stub)
	segment := newTendonSegment(30, model)

	elevations, err := segment.ElevationsAlongSegment([]float64{0, 0.5, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, 0.05, 0.18}, elevations)
}

// TestOtherNode tests following a segment to its far node
func TestOtherNode(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][30][[GET_PROP_INTERNAL][TendonNode0]]", "31").
		respond("[WITH_TARGET][31][[GET_TYPE]]", "TendonNode").
		respond("[WITH_TARGET][30][[GET_PROP_INTERNAL][TendonNode1]]", "32").
		respond("[WITH_TARGET][32][[GET_TYPE]]", "TendonNode")
	model := newStubModel(stub)
	segment := newTendonSegment(30, model)

	node1 := newTendonNode(31, model)
	other, err := segment.OtherNode(node1)
	require.NoError(t, err)
	assert.Equal(t, 32, other.UID())

	node2 := newTendonNode(32, model)
	other, err = segment.OtherNode(node2)
	require.NoError(t, err)
	assert.Equal(t, 31, other.UID())

	stranger := newTendonNode(99, model)
	_, err = segment.OtherNode(stranger)
	require.Error(t, err)
	var invalidErr *protocol.InvalidValueError
	assert.ErrorAs(t, err, &invalidErr)
}

// TestConnectedTendonSegments tests the node connectivity query
func TestConnectedTendonSegments(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][31][[GET_CONNECTED_TENDONS]]", "[30][33]").
		respond("[WITH_TARGET][30][[GET_TYPE]]", "Tendon").
		respond("[WITH_TARGET][33][[GET_TYPE]]", "Tendon")
	model := newStubModel(stub)
	node := newTendonNode(31, model)

	segments, err := node.ConnectedTendonSegments()
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, 30, segments[0].UID())
	assert.Equal(t, 33, segments[1].UID())

	// excluding one connected segment leaves the other
	excluded := newTendonSegment(30, model)
	remaining, err := node.ConnectedTendonSegmentsExcept(excluded)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, 33, remaining[0].UID())

	// excluding an unconnected segment is an error
	stranger := newTendonSegment(99, model)
	_, err = node.ConnectedTendonSegmentsExcept(stranger)
	require.Error(t, err)
	var invalidErr *protocol.InvalidValueError
	assert.ErrorAs(t, err, &invalidErr)
}

// TestTendonNodeDeleteRefused tests that nodes cannot be deleted directly
func TestTendonNodeDeleteRefused(t *testing.T) {
	stub := newStubTransport()
	model := newStubModel(stub)
	node := newTendonNode(31, model)

	err := node.Delete()
	require.Error(t, err)
	var readOnlyErr *protocol.ReadOnlyError
	assert.ErrorAs(t, err, &readOnlyErr)
	assert.Empty(t, stub.commands)
}

// TestDefaultEntityGuards tests the template entity restrictions
func TestDefaultEntityGuards(t *testing.T) {
	stub := newStubTransport()
	model := newStubModel(stub)
	var readOnlyErr *protocol.ReadOnlyError

	segment := newDefaultTendonSegment(40, model)
	assert.ErrorAs(t, segment.Delete(), &readOnlyErr)
	_, err := segment.ElevationsAlongSegment([]float64{0.5})
	assert.ErrorAs(t, err, &readOnlyErr)

	jack := newDefaultJack(41, model)
	assert.ErrorAs(t, jack.Delete(), &readOnlyErr)

	assert.Empty(t, stub.commands)
}

// TestTendonLayerAdds tests entity creation through a tendon layer
func TestTendonLayerAdds(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][50][[NEW_ENTITY_USER][Tendon][[0][0]][[5][0]]]", "30").
		respond("[WITH_TARGET][30][[GET_TYPE]]", "Tendon").
		respond("[WITH_TARGET][50][[NEW_ENTITY_USER][Jack][[0][0]]]", "34").
		respond("[WITH_TARGET][34][[GET_TYPE]]", "Jack")
	model := newStubModel(stub)
	layer := newTendonLayer(50, model)

	segment, err := layer.AddTendonSegment(geometry.NewLineSegment2D(
		geometry.NewPoint2D(0, 0), geometry.NewPoint2D(5, 0)))
	require.NoError(t, err)
	assert.Equal(t, 30, segment.UID())

	jack, err := layer.AddJack(geometry.NewPoint2D(0, 0))
	require.NoError(t, err)
	assert.Equal(t, 34, jack.UID())
}

// TestTendonLayerListing tests the layer listing filters
func TestTendonLayerListing(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][50][[GET_ENTITY_LIST][Tendons]]", "[30]").
		respond("[WITH_TARGET][30][[GET_TYPE]]", "Tendon").
		respond("[WITH_TARGET][50][[GET_ENTITY_LIST][TendonNodes]]", "[31][32]").
		respond("[WITH_TARGET][31][[GET_TYPE]]", "TendonNode").
		respond("[WITH_TARGET][32][[GET_TYPE]]", "TendonNode").
		respond("[WITH_TARGET][50][[GET_ENTITY_LIST][Jacks]]", "")
	model := newStubModel(stub)
	layer := newTendonLayer(50, model)

	segments, err := layer.TendonSegments()
	require.NoError(t, err)
	assert.Len(t, segments, 1)

	nodes, err := layer.TendonNodes()
	require.NoError(t, err)
	assert.Len(t, nodes, 2)

	jacks, err := layer.Jacks()
	require.NoError(t, err)
	assert.Empty(t, jacks)
}
