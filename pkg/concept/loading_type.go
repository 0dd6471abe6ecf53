/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loading_type.go
Description: Loading classification values. LoadingType is a small composite
value (cause + optional lateral index + optional transfer variation) with a
single-string wire codec such as "other_dead", "wind_service_1" or
"wind_service_1_transfer". The validity rules between causes, indices,
transfer variations and analysis types live here.
*/

package concept

import (
	"strconv"
	"strings"

	"github.com/kleascm/concept-client/pkg/protocol"
)

// LoadingCause is the cause of a loading upon the structure.
type LoadingCause string

const (
	SelfDead        LoadingCause = "self_dead"
	Balance         LoadingCause = "balance"
	Hyperstatic     LoadingCause = "hyperstatic"
	StressingDead   LoadingCause = "stressing_dead"
	OtherDead       LoadingCause = "other_dead"
	LiveReducible   LoadingCause = "live_reducible"
	LiveUnreducible LoadingCause = "live_unreducible"
	LiveStorage     LoadingCause = "live_storage"
	LiveParking     LoadingCause = "live_parking"
	LiveRoof        LoadingCause = "live_roof"
	Snow            LoadingCause = "snow"
	OtherGravity    LoadingCause = "other"
	Temperature     LoadingCause = "temperature"
	Shrinkage       LoadingCause = "shrinkage"

	// Lateral causes always carry a 1-based index ("wind_service_2").
	WindService     LoadingCause = "wind_service_"
	WindUltimate    LoadingCause = "wind_ultimate_"
	SeismicService  LoadingCause = "seismic_service_"
	SeismicUltimate LoadingCause = "seismic_ultimate_"
)

// loadingCauses is ordered for prefix matching in LoadingTypeFromInternal:
// OtherDead must precede OtherGravity since "other" is a prefix of
// "other_dead".
var loadingCauses = []LoadingCause{
	SelfDead, Balance, Hyperstatic, StressingDead, OtherDead,
	LiveReducible, LiveUnreducible, LiveStorage, LiveParking, LiveRoof,
	Snow, OtherGravity, Temperature, Shrinkage,
	WindService, WindUltimate, SeismicService, SeismicUltimate,
}

// IsChangeableInLoading reports whether a loading layer with this cause can be
// changed to another cause.
func (c LoadingCause) IsChangeableInLoading() bool {
	switch c {
	case SelfDead, Balance, Hyperstatic, Temperature, Shrinkage:
		return false
	}
	return true
}

// CanHaveTransferVariation reports whether this cause supports a transfer
// loading option.
func (c LoadingCause) CanHaveTransferVariation() bool {
	switch c {
	case SelfDead, Hyperstatic, StressingDead, Temperature, Shrinkage:
		return false
	}
	return true
}

// CanHaveIndexedVariations reports whether this cause supports indexed
// variations.
func (c LoadingCause) CanHaveIndexedVariations() bool {
	switch c {
	case WindService, WindUltimate, SeismicService, SeismicUltimate:
		return true
	}
	return false
}

// CanHaveNormalAnalysis reports whether loadings of this cause can use
// NormalAnalysis.
func (c LoadingCause) CanHaveNormalAnalysis() bool {
	return c != Hyperstatic
}

// CanHaveSelfEquilibriumAnalysis reports whether loadings of this cause can
// use SelfEquilibriumAnalysis.
func (c LoadingCause) CanHaveSelfEquilibriumAnalysis() bool {
	switch c {
	case SelfDead, Balance, Hyperstatic, Temperature, Shrinkage:
		return false
	}
	return true
}

// CanHaveHyperstaticAnalysis reports whether loadings of this cause can use
// HyperstaticAnalysis.
func (c LoadingCause) CanHaveHyperstaticAnalysis() bool {
	return c == Hyperstatic
}

func (c LoadingCause) valid() bool {
	for _, cause := range loadingCauses {
		if c == cause {
			return true
		}
	}
	return false
}

// LoadingAnalysisType specifies how a loading layer is analyzed.
type LoadingAnalysisType string

const (
	// NormalAnalysis is the standard analysis for the kind of loading.
	NormalAnalysis LoadingAnalysisType = "normal"

	// HyperstaticAnalysis is only allowed on hyperstatic loadings and is
	// never set by clients.
	HyperstaticAnalysis LoadingAnalysisType = "hyperstatic"

	// SelfEquilibriumAnalysis is a force analysis with all support removed.
	SelfEquilibriumAnalysis LoadingAnalysisType = "floating"
)

// ValidForLoadingCause reports whether this analysis type is allowed for the
// given cause.
func (t LoadingAnalysisType) ValidForLoadingCause(cause LoadingCause) (bool, error) {
	switch t {
	case NormalAnalysis:
		return cause.CanHaveNormalAnalysis(), nil
	case HyperstaticAnalysis:
		return cause.CanHaveHyperstaticAnalysis(), nil
	case SelfEquilibriumAnalysis:
		return cause.CanHaveSelfEquilibriumAnalysis(), nil
	}
	return false, &protocol.InvalidValueError{Message: "unknown LoadingAnalysisType: " + string(t)}
}

func loadingAnalysisTypeFromInternal(internal string) (LoadingAnalysisType, error) {
	switch LoadingAnalysisType(internal) {
	case NormalAnalysis, HyperstaticAnalysis, SelfEquilibriumAnalysis:
		return LoadingAnalysisType(internal), nil
	}
	return "", &protocol.InternalError{Message: "unexpected LoadingAnalysisType encoding: " + internal}
}

// LoadingType is an immutable value describing the type of a loading layer:
// the cause, whether this is a transfer variation, and (for lateral causes)
// the 1-based index of the variation.
type LoadingType struct {
	cause      LoadingCause
	isTransfer bool
	index      int
}

// NewLoadingType creates a LoadingType, enforcing the combination rules
// between cause, transfer flag and index.
func NewLoadingType(cause LoadingCause, isTransfer bool, index int) (LoadingType, error) {
	if !cause.valid() {
		return LoadingType{}, &protocol.InvalidValueError{Message: "invalid LoadingCause value: " + string(cause)}
	}
	if isTransfer && !cause.CanHaveTransferVariation() {
		return LoadingType{}, &protocol.InvalidValueError{Message: string(cause) + " cannot be used with transfer loadings"}
	}
	if index != 0 && !cause.CanHaveIndexedVariations() {
		return LoadingType{}, &protocol.InvalidValueError{Message: string(cause) + " cannot be used with indexed variations"}
	}
	if index == 0 && cause.CanHaveIndexedVariations() {
		return LoadingType{}, &protocol.InvalidValueError{Message: string(cause) + " must have indices greater than zero"}
	}
	if index < 0 {
		return LoadingType{}, &protocol.InvalidValueError{Message: "LoadingType indices must be >= 0"}
	}
	return LoadingType{cause: cause, isTransfer: isTransfer, index: index}, nil
}

// Cause returns the LoadingCause of this LoadingType.
func (t LoadingType) Cause() LoadingCause { return t.cause }

// IsTransfer reports whether this loading is a transfer variation.
func (t LoadingType) IsTransfer() bool { return t.isTransfer }

// Index returns the index of the variation (0 if not an indexed variation).
func (t LoadingType) Index() int { return t.index }

// toInternal creates the single-string wire encoding, e.g. "other_dead",
// "wind_service_1" or "wind_service_1_transfer".
func (t LoadingType) toInternal() string {
	value := string(t.cause)
	if t.index > 0 {
		value += strconv.Itoa(t.index)
	}
	if t.isTransfer {
		value += "_transfer"
	}
	return value
}

func (t LoadingType) String() string { return t.toInternal() }

// LoadingTypeFromInternal decodes the single-string wire encoding.
func LoadingTypeFromInternal(value string) (LoadingType, error) {
	var cause LoadingCause
	remaining := ""
	found := false
	for _, candidate := range loadingCauses {
		if strings.HasPrefix(value, string(candidate)) {
			cause = candidate
			remaining = value[len(candidate):]
			found = true
			break
		}
	}
	if !found {
		return LoadingType{}, &protocol.InternalError{Message: "unexpected LoadingType encoding: " + value}
	}

	isTransfer := strings.HasSuffix(remaining, "_transfer")
	indexValue := remaining
	if isTransfer {
		indexValue = remaining[:len(remaining)-len("_transfer")]
	}

	index := 0
	if len(indexValue) > 0 {
		parsed, err := strconv.Atoi(indexValue)
		if err != nil || parsed <= 0 {
			return LoadingType{}, &protocol.InternalError{Message: "unexpected LoadingType encoding: " + value}
		}
		index = parsed
	}

	loadingType, err := NewLoadingType(cause, isTransfer, index)
	if err != nil {
		return LoadingType{}, &protocol.InternalError{Message: "unexpected LoadingType encoding: " + value}
	}
	return loadingType, nil
}
