/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: values_test.go
Description: Tests for wire value conversions. Covers the infinity sentinel
mapping, string value validation and the canonical int/bool encodings.
*/

package bracket

import (
	"math"
	"testing"

	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFloatSentinels tests the finite-sentinel convention in both directions
func TestFloatSentinels(t *testing.T) {
	value, err := UserStrToFloat(InfiniteToken)
	require.NoError(t, err)
	assert.Equal(t, math.MaxFloat64, value)

	value, err = UserStrToFloat(NegativeInfiniteToken)
	require.NoError(t, err)
	assert.Equal(t, -math.MaxFloat64, value)

	assert.Equal(t, InfiniteToken, FloatToUserStr(math.MaxFloat64))
	assert.Equal(t, NegativeInfiniteToken, FloatToUserStr(-math.MaxFloat64))
	assert.Equal(t, "2.5", FloatToUserStr(2.5))

	value, err = UserStrToFloat("2.5")
	require.NoError(t, err)
	assert.Equal(t, 2.5, value)
}

// TestUserStrToFloatInvalid tests rejection of unparseable floats
func TestUserStrToFloatInvalid(t *testing.T) {
	_, err := UserStrToFloat("abc")
	require.Error(t, err)
	var invalidErr *protocol.InvalidValueError
	assert.ErrorAs(t, err, &invalidErr)
}

// TestValidateStringValue tests that bracket characters are rejected
func TestValidateStringValue(t *testing.T) {
	assert.NoError(t, ValidateStringValue("Live Loading"))
	assert.NoError(t, ValidateStringValue(""))

	var invalidErr *protocol.InvalidValueError
	err := ValidateStringValue("bad[name")
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)

	err = ValidateStringValue("bad]name")
	require.Error(t, err)
	assert.ErrorAs(t, err, &invalidErr)
}

// TestIntAndBoolEncoding tests the canonical int and bool wire strings
func TestIntAndBoolEncoding(t *testing.T) {
	assert.Equal(t, "42", IntToUserStr(42))
	assert.Equal(t, "-7", IntToUserStr(-7))
	assert.Equal(t, "True", BoolToUserStr(true))
	assert.Equal(t, "False", BoolToUserStr(false))
}
