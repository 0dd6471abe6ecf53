/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loading_type_test.go
Description: Tests for the loading classification values. Covers the composite
wire codec, the cause/transfer/index combination rules and the analysis type
validity matrix.
*/

package concept

import (
	"testing"

	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadingTypeCodec tests the single-string encoding in both directions
func TestLoadingTypeCodec(t *testing.T) {
	cases := []struct {
		internal   string
		cause      LoadingCause
		isTransfer bool
		index      int
	}{
		{"other_dead", OtherDead, false, 0},
		{"other", OtherGravity, false, 0},
		{"live_reducible", LiveReducible, false, 0},
		{"live_reducible_transfer", LiveReducible, true, 0},
		{"wind_service_1", WindService, false, 1},
		{"wind_service_3", WindService, false, 3},
		{"seismic_ultimate_2_transfer", SeismicUltimate, true, 2},
		{"self_dead", SelfDead, false, 0},
	}

	for _, tc := range cases {
		decoded, err := LoadingTypeFromInternal(tc.internal)
		require.NoError(t, err, "decoding %q", tc.internal)
		assert.Equal(t, tc.cause, decoded.Cause(), "cause of %q", tc.internal)
		assert.Equal(t, tc.isTransfer, decoded.IsTransfer(), "transfer of %q", tc.internal)
		assert.Equal(t, tc.index, decoded.Index(), "index of %q", tc.internal)
		assert.Equal(t, tc.internal, decoded.String(), "re-encoding of %q", tc.internal)
	}
}

// TestLoadingTypeCodecInvalid tests rejection of malformed encodings
func TestLoadingTypeCodecInvalid(t *testing.T) {
	for _, bad := range []string{"", "garbage", "wind_service_", "wind_service_0", "other_dead_5"} {
		_, err := LoadingTypeFromInternal(bad)
		require.Error(t, err, "expected error for %q", bad)
		var internalErr *protocol.InternalError
		assert.ErrorAs(t, err, &internalErr)
	}
}

// TestNewLoadingTypeCombinationRules tests the construction validity rules
func TestNewLoadingTypeCombinationRules(t *testing.T) {
	var invalidErr *protocol.InvalidValueError

	// lateral causes require an index
	_, err := NewLoadingType(WindService, false, 0)
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)

	// gravity causes cannot carry an index
	_, err = NewLoadingType(OtherDead, false, 2)
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)

	// program-owned causes have no transfer variation
	_, err = NewLoadingType(SelfDead, true, 0)
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)

	// unknown causes are rejected
	_, err = NewLoadingType(LoadingCause("lunar"), false, 0)
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)

	// a valid lateral transfer variation
	loadingType, err := NewLoadingType(SeismicService, true, 4)
	require.NoError(t, err)
	assert.Equal(t, "seismic_service_4_transfer", loadingType.String())
}

// TestAnalysisTypeValidity tests the analysis/cause validity matrix
func TestAnalysisTypeValidity(t *testing.T) {
	valid, err := NormalAnalysis.ValidForLoadingCause(OtherDead)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = NormalAnalysis.ValidForLoadingCause(Hyperstatic)
	require.NoError(t, err)
	assert.False(t, valid)

	valid, err = HyperstaticAnalysis.ValidForLoadingCause(Hyperstatic)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = HyperstaticAnalysis.ValidForLoadingCause(LiveReducible)
	require.NoError(t, err)
	assert.False(t, valid)

	valid, err = SelfEquilibriumAnalysis.ValidForLoadingCause(LiveReducible)
	require.NoError(t, err)
	assert.True(t, valid)

	valid, err = SelfEquilibriumAnalysis.ValidForLoadingCause(Temperature)
	require.NoError(t, err)
	assert.False(t, valid)

	_, err = LoadingAnalysisType("quantum").ValidForLoadingCause(OtherDead)
	require.Error(t, err)
}

// TestLoadingCauseChangeability tests which causes a loading can change between
func TestLoadingCauseChangeability(t *testing.T) {
	for _, fixed := range []LoadingCause{SelfDead, Balance, Hyperstatic, Temperature, Shrinkage} {
		assert.False(t, fixed.IsChangeableInLoading(), "%s should be fixed", fixed)
	}
	for _, changeable := range []LoadingCause{OtherDead, LiveReducible, Snow, WindService} {
		assert.True(t, changeable.IsChangeableInLoading(), "%s should be changeable", changeable)
	}
}
