/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parser_test.go
Description: Tests for the bracket string tokenizer. Covers parsing, nesting,
validation, end tag matching, encoding and float list parsing.
*/

package bracket

import (
	"math"
	"testing"

	"github.com/kleascm/concept-client/pkg/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseSimpleTokens tests parsing flat bracket strings
func TestParseSimpleTokens(t *testing.T) {
	tokens, err := Parse("[A][B][C]")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, tokens)

	tokens, err = Parse("")
	require.NoError(t, err)
	assert.Empty(t, tokens)

	tokens, err = Parse("[]")
	require.NoError(t, err)
	assert.Equal(t, []string{""}, tokens)
}

// TestParseNestedTokens tests that nested bracket strings come back as single tokens
func TestParseNestedTokens(t *testing.T) {
	tokens, err := Parse("[A][[B1][B2]]")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "A", tokens[0])
	assert.Equal(t, "[B1][B2]", tokens[1])

	// the nested token parses again one level down
	inner, err := Parse(tokens[1])
	require.NoError(t, err)
	assert.Equal(t, []string{"B1", "B2"}, inner)
}

// TestParseInvalid tests rejection of malformed bracket strings
func TestParseInvalid(t *testing.T) {
	for _, bad := range []string{"[A", "A]", "[A] [B]", "x[A]", "[A]x", "[[A]"} {
		_, err := Parse(bad)
		require.Error(t, err, "expected error for %q", bad)
		var formatErr *protocol.FormatError
		assert.ErrorAs(t, err, &formatErr)
	}
}

// TestIsValid tests the validity check directly
func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(""))
	assert.True(t, IsValid("[A]"))
	assert.True(t, IsValid("[A][[B][C]]"))
	assert.False(t, IsValid("[A"))
	assert.False(t, IsValid("]A["))
	assert.False(t, IsValid("[A]trailing"))
}

// TestMatchingEndTagIndex tests the nesting scan
func TestMatchingEndTagIndex(t *testing.T) {
	assert.Equal(t, 2, MatchingEndTagIndex("[A]", 0))
	assert.Equal(t, 4, MatchingEndTagIndex("[[X]]", 0))
	assert.Equal(t, 3, MatchingEndTagIndex("[[X]]", 1))
	assert.Equal(t, -1, MatchingEndTagIndex("[A", 0))
	assert.Equal(t, 7, MatchingEndTagIndex("[[B][C]]", 0))
	assert.Equal(t, 10, MatchingEndTagIndex("[A][[B][C]]", 3))
}

// TestParserWalk tests incremental token walking
func TestParserWalk(t *testing.T) {
	parser := NewParser("[A][B][C]")

	count, err := parser.CountRemaining()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	ok, err := parser.HasNext()
	require.NoError(t, err)
	require.True(t, ok)

	token, err := parser.Next()
	require.NoError(t, err)
	assert.Equal(t, "A", token)

	assert.True(t, parser.Skip())

	token, err = parser.Next()
	require.NoError(t, err)
	assert.Equal(t, "C", token)

	ok, err = parser.HasNext()
	require.NoError(t, err)
	assert.False(t, ok)
}

// TestEncode tests that Encode is the structural inverse of Parse
func TestEncode(t *testing.T) {
	tokens := []string{"A", "B", "[C1][C2]"}
	encoded := Encode(tokens)
	assert.Equal(t, "[A][B][[C1][C2]]", encoded)

	parsed, err := Parse(encoded)
	require.NoError(t, err)
	assert.Equal(t, tokens, parsed)
}

// TestParseFloats tests float list parsing with the infinity sentinels
func TestParseFloats(t *testing.T) {
	floats, err := ParseFloats("[1.5][-2][infinite][-infinite]")
	require.NoError(t, err)
	require.Len(t, floats, 4)
	assert.Equal(t, 1.5, floats[0])
	assert.Equal(t, -2.0, floats[1])
	assert.Equal(t, math.MaxFloat64, floats[2])
	assert.Equal(t, -math.MaxFloat64, floats[3])

	_, err = ParseFloats("[not-a-number]")
	require.Error(t, err)
	var invalidErr *protocol.InvalidValueError
	assert.ErrorAs(t, err, &invalidErr)
}
