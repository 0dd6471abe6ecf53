/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: materials_test.go
Description: Tests for the material catalogs. Covers unique name validation,
the last-entry deletion guard, the no-nil PT system references and the default
assignments made when adding a PT system.
*/

package concept

import (
	"testing"

	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAddConcreteNameValidation tests the client-side name checks
func TestAddConcreteNameValidation(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][80][[GET_CHILDREN]]", "[70]").
		respond("[WITH_TARGET][70][[GET_TYPE]]", "Concrete").
		respond("[WITH_TARGET][70][[GET_PROP_INTERNAL][Name]]", "35 MPa")
	model := newStubModel(stub)
	catalog := newConcretes(80, model)

	var invalidErr *protocol.InvalidValueError

	_, err := catalog.AddConcrete("")
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)

	_, err = catalog.AddConcrete("bad[name")
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)

	_, err = catalog.AddConcrete("35 MPa")
	require.Error(t, err)
	require.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, invalidErr.Message, "unique")

	// no ADD_CHILD command was ever transmitted
	for _, cmd := range stub.commands {
		assert.NotContains(t, cmd, "ADD_CHILD")
	}
}

// TestAddConcrete tests a successful catalog addition
func TestAddConcrete(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][80][[GET_CHILDREN]]", "[70]").
		respond("[WITH_TARGET][70][[GET_TYPE]]", "Concrete").
		respond("[WITH_TARGET][70][[GET_PROP_INTERNAL][Name]]", "35 MPa").
		respond("[WITH_TARGET][80][[ADD_CHILD][Concrete][50 MPa][NO_SORT]]", "71").
		respond("[WITH_TARGET][71][[GET_TYPE]]", "Concrete")
	model := newStubModel(stub)
	catalog := newConcretes(80, model)

	mix, err := catalog.AddConcrete("50 MPa")
	require.NoError(t, err)
	assert.Equal(t, 71, mix.UID())
}

// TestDeleteLastConcreteRefused tests the last-entry deletion guard
func TestDeleteLastConcreteRefused(t *testing.T) {
	stub := newStubTransport().
		respond("[GET_UID_FOR_KEY][$CONCRETES]", "80").
		respond("[WITH_TARGET][80][[GET_TYPE]]", "Concretes").
		respond("[WITH_TARGET][80][[GET_CHILDREN_OF_TYPE][Concrete]]", "[70]").
		respond("[WITH_TARGET][70][[GET_TYPE]]", "Concrete")
	model := newStubModel(stub)
	mix := newConcrete(70, model)

	err := mix.Delete()
	require.Error(t, err)
	var invalidErr *protocol.InvalidValueError
	require.ErrorAs(t, err, &invalidErr)
	assert.Contains(t, invalidErr.Message, "cannot delete last Concrete")
	assert.False(t, stub.sent("[WITH_TARGET][70][[DELETE]]"))
}

// TestDeleteConcreteWithSiblings tests deletion when another mix remains
func TestDeleteConcreteWithSiblings(t *testing.T) {
	stub := newStubTransport().
		respond("[GET_UID_FOR_KEY][$CONCRETES]", "80").
		respond("[WITH_TARGET][80][[GET_TYPE]]", "Concretes").
		respond("[WITH_TARGET][80][[GET_CHILDREN_OF_TYPE][Concrete]]", "[70][71]").
		respond("[WITH_TARGET][70][[GET_TYPE]]", "Concrete").
		respond("[WITH_TARGET][71][[GET_TYPE]]", "Concrete").
		respond("[WITH_TARGET][70][[DELETE]]", "")
	model := newStubModel(stub)
	mix := newConcrete(70, model)

	require.NoError(t, mix.Delete())
	assert.True(t, stub.sent("[WITH_TARGET][70][[DELETE]]"))
}

// TestPTSystemRefusesNilReferences tests the no-nil reference rule
func TestPTSystemRefusesNilReferences(t *testing.T) {
	stub := newStubTransport()
	model := newStubModel(stub)
	system := newPTSystem(91, model)

	var invalidErr *protocol.InvalidValueError

	err := system.SetStrandMaterial(nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)

	err = system.SetAnchorSystem(nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)

	err = system.SetDuctSystem(nil)
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)

	assert.Empty(t, stub.commands)
}

// TestAddPTSystemAssignsDefaults tests that a new PT system is wired to the
// first strand material, duct system and anchor system in the model
func TestAddPTSystemAssignsDefaults(t *testing.T) {
	stub := newStubTransport().
		respond("[WITH_TARGET][90][[GET_CHILDREN]]", "").
		respond("[WITH_TARGET][90][[ADD_CHILD][PTSystem][Bonded 5][NO_SORT]]", "91").
		respond("[WITH_TARGET][91][[GET_TYPE]]", "PTSystem").
		respond("[GET_UID_FOR_KEY][$STRAND_MATERIALS]", "92").
		respond("[WITH_TARGET][92][[GET_TYPE]]", "StrandMaterials").
		respond("[WITH_TARGET][92][[GET_CHILDREN_OF_TYPE][StrandMaterial]]", "[93]").
		respond("[WITH_TARGET][93][[GET_TYPE]]", "StrandMaterial").
		respond("[GET_UID_FOR_KEY][$DUCT_SYSTEMS]", "94").
		respond("[WITH_TARGET][94][[GET_TYPE]]", "DuctSystems").
		respond("[WITH_TARGET][94][[GET_CHILDREN_OF_TYPE][DuctSystem]]", "[95]").
		respond("[WITH_TARGET][95][[GET_TYPE]]", "DuctSystem").
		respond("[GET_UID_FOR_KEY][$ANCHOR_SYSTEMS]", "96").
		respond("[WITH_TARGET][96][[GET_TYPE]]", "AnchorSystems").
		respond("[WITH_TARGET][96][[GET_CHILDREN_OF_TYPE][AnchorSystem]]", "[97]").
		respond("[WITH_TARGET][97][[GET_TYPE]]", "AnchorSystem").
		respond("[WITH_TARGET][91][[SET_PROP_INTERNAL][StrandMaterial][93]]", "").
		respond("[WITH_TARGET][91][[SET_PROP_INTERNAL][DuctSystem][95]]", "").
		respond("[WITH_TARGET][91][[SET_PROP_INTERNAL][AnchorSystem][97]]", "")
	model := newStubModel(stub)
	catalog := newPTSystems(90, model)

	system, err := catalog.AddPTSystem("Bonded 5")
	require.NoError(t, err)
	assert.Equal(t, 91, system.UID())

	assert.True(t, stub.sent("[WITH_TARGET][91][[SET_PROP_INTERNAL][StrandMaterial][93]]"))
	assert.True(t, stub.sent("[WITH_TARGET][91][[SET_PROP_INTERNAL][DuctSystem][95]]"))
	assert.True(t, stub.sent("[WITH_TARGET][91][[SET_PROP_INTERNAL][AnchorSystem][97]]"))
}
