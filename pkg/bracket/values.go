/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: values.go
Description: Wire value conversions for the Concept protocol. Handles the
finite-sentinel convention for unbounded quantities ("infinite"/"-infinite")
and the canonical int/bool encodings used in property values.
*/

package bracket

import (
	"math"
	"strconv"
	"strings"

	"github.com/kleascm/concept-client/pkg/protocol"
)

// The Concept process has no true-infinity representation; unbounded physical
// quantities (stiffnesses, etc.) travel as these sentinel tokens instead.
const (
	InfiniteToken         = "infinite"
	NegativeInfiniteToken = "-infinite"
)

// ValidateStringValue returns an InvalidValueError if the given value cannot
// be stored in a string property (it would corrupt the wire format).
func ValidateStringValue(value string) error {
	if strings.Contains(value, StartTag) {
		return &protocol.InvalidValueError{Message: "string property values cannot contain '" + StartTag + "'"}
	}
	if strings.Contains(value, EndTag) {
		return &protocol.InvalidValueError{Message: "string property values cannot contain '" + EndTag + "'"}
	}
	return nil
}

// UserStrToFloat converts a user-unit string to a float, mapping the sentinel
// tokens to the largest-magnitude representable values.
func UserStrToFloat(value string) (float64, error) {
	switch value {
	case InfiniteToken:
		return math.MaxFloat64, nil
	case NegativeInfiniteToken:
		return -math.MaxFloat64, nil
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &protocol.InvalidValueError{Message: "not a valid float value: " + value}
	}
	return f, nil
}

// FloatToUserStr converts a float to a user-unit string, the inverse of
// UserStrToFloat.
func FloatToUserStr(value float64) string {
	switch value {
	case math.MaxFloat64:
		return InfiniteToken
	case -math.MaxFloat64:
		return NegativeInfiniteToken
	}
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// IntToUserStr converts an int to its wire string.
func IntToUserStr(value int) string {
	return strconv.Itoa(value)
}

// BoolToUserStr converts a bool to its canonical wire string.
func BoolToUserStr(value bool) string {
	if value {
		return "True"
	}
	return "False"
}
