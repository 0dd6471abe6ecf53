/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: load_combo_test.go
Description: Tests for the load combination layer. Covers resolving the load
factor that corresponds to a given loading layer.
*/

package concept

import (
	"testing"

	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadFactorLookup tests finding the load factor for a loading layer by
// handle identity
func TestLoadFactorLookup(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][50][[GET_CHILDREN_OF_TYPE][LoadFactor]]", "[60][61]").
		respond("[WITH_TARGET][60][[GET_TYPE]]", "LoadFactor").
		respond("[WITH_TARGET][61][[GET_TYPE]]", "LoadFactor").
		respond("[WITH_TARGET][60][[GET_PROP_INTERNAL][Loading]]", "40").
		respond("[WITH_TARGET][61][[GET_PROP_INTERNAL][Loading]]", "41").
		respond("[WITH_TARGET][40][[GET_TYPE]]", "ForceLoadingLayer").
		respond("[WITH_TARGET][40][[GET_PROP_INTERNAL][LoadingType]]", "other_dead").
		respond("[WITH_TARGET][41][[GET_TYPE]]", "ForceLoadingLayer").
		respond("[WITH_TARGET][41][[GET_PROP_INTERNAL][LoadingType]]", "live_reducible")
	model := newStubModel(stub)

	combo := newLoadComboLayer(50, model)

	// the factor whose Loading reference matches the given layer is returned,
	// compared by uid and owning model rather than handle identity
	target := newData(41, model, "ForceLoadingLayer")
	factor, err := combo.LoadFactor(&target)
	require.NoError(t, err)
	assert.Equal(t, 61, factor.UID())

	// a layer with no factor is a protocol-level surprise
	stranger := newData(99, model, "ForceLoadingLayer")
	_, err = combo.LoadFactor(&stranger)
	require.Error(t, err)
	var internalErr *protocol.InternalError
	assert.ErrorAs(t, err, &internalErr)
}
