/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: enums.go
Description: Enumerated property value types and their wire encodings. Each
enum keeps a bidirectional table between the Go constant and the value the
remote protocol actually transmits (a word for some enums, a small int for
others). Tables are checked for bijectivity at init so an editing mistake
fails fast instead of silently corrupting models.
*/

package concept

import (
	"fmt"
	"strconv"

	"github.com/kleascm/concept-client/pkg/protocol"
)

// ENUM TABLE PLUMBING

// stringEnumTable is a bijection between enum constants and the word the
// protocol transmits for them.
type stringEnumTable[E comparable] struct {
	name       string
	toInternal map[E]string
	toValue    map[string]E
}

func newStringEnumTable[E comparable](name string, pairs map[E]string) stringEnumTable[E] {
	t := stringEnumTable[E]{
		name:       name,
		toInternal: pairs,
		toValue:    make(map[string]E, len(pairs)),
	}
	for value, internal := range pairs {
		if _, dup := t.toValue[internal]; dup {
			panic(fmt.Sprintf("duplicate %s encoding: %q", name, internal))
		}
		t.toValue[internal] = value
	}
	return t
}

// internal returns the wire encoding for the given enum value. Unknown values
// are a caller error.
func (t stringEnumTable[E]) internal(value E) (string, error) {
	internal, ok := t.toInternal[value]
	if !ok {
		return "", &protocol.InvalidValueError{Message: fmt.Sprintf("invalid %s value: %v", t.name, value)}
	}
	return internal, nil
}

// value returns the enum value for the given wire encoding. Unknown encodings
// indicate a protocol defect.
func (t stringEnumTable[E]) value(internal string) (E, error) {
	value, ok := t.toValue[internal]
	if !ok {
		var zero E
		return zero, &protocol.InternalError{Message: fmt.Sprintf("unexpected %s encoding: %q", t.name, internal)}
	}
	return value, nil
}

// intEnumTable is a bijection between enum constants and the small int the
// protocol transmits for them.
type intEnumTable[E comparable] struct {
	name       string
	toInternal map[E]int
	toValue    map[int]E
}

func newIntEnumTable[E comparable](name string, pairs map[E]int) intEnumTable[E] {
	t := intEnumTable[E]{
		name:       name,
		toInternal: pairs,
		toValue:    make(map[int]E, len(pairs)),
	}
	for value, internal := range pairs {
		if _, dup := t.toValue[internal]; dup {
			panic(fmt.Sprintf("duplicate %s encoding: %d", name, internal))
		}
		t.toValue[internal] = value
	}
	return t
}

func (t intEnumTable[E]) internal(value E) (int, error) {
	internal, ok := t.toInternal[value]
	if !ok {
		return 0, &protocol.InvalidValueError{Message: fmt.Sprintf("invalid %s value: %v", t.name, value)}
	}
	return internal, nil
}

func (t intEnumTable[E]) value(internal int) (E, error) {
	value, ok := t.toValue[internal]
	if !ok {
		var zero E
		return zero, &protocol.InternalError{Message: fmt.Sprintf("unexpected %s encoding: %d", t.name, internal)}
	}
	return value, nil
}

// ENUM PROPERTY ACCESS

func getStringEnum[E comparable](d *Data, table stringEnumTable[E], propertyName string) (E, error) {
	internal, err := d.getString(propertyName)
	if err != nil {
		var zero E
		return zero, err
	}
	return table.value(internal)
}

func setStringEnum[E comparable](d *Data, table stringEnumTable[E], propertyName string, value E) error {
	internal, err := table.internal(value)
	if err != nil {
		return err
	}
	return d.setString(propertyName, internal)
}

func getIntEnum[E comparable](d *Data, table intEnumTable[E], propertyName string) (E, error) {
	internal, err := d.getInt(propertyName)
	if err != nil {
		var zero E
		return zero, err
	}
	return table.value(internal)
}

func setIntEnum[E comparable](d *Data, table intEnumTable[E], propertyName string, value E) error {
	internal, err := table.internal(value)
	if err != nil {
		return err
	}
	return d.setInt(propertyName, internal)
}

// MODEL SETUP ENUMS

// DesignCode identifies the structural design code a new model is set up for.
type DesignCode string

const (
	ACI318_99US      DesignCode = "ACI318_99US"
	ACI318_99SI      DesignCode = "ACI318_99SI"
	ACI318_02US      DesignCode = "ACI318_02US"
	ACI318_02SI      DesignCode = "ACI318_02SI"
	ACI318_05US      DesignCode = "ACI318_05US"
	ACI318_05SI      DesignCode = "ACI318_05SI"
	ACI318_08US      DesignCode = "ACI318_08US"
	ACI318_08SI      DesignCode = "ACI318_08SI"
	ACI318_11US      DesignCode = "ACI318_11US"
	ACI318_11SI      DesignCode = "ACI318_11SI"
	ACI318_14US      DesignCode = "ACI318_14US"
	ACI318_14SI      DesignCode = "ACI318_14SI"
	ACI318_19US      DesignCode = "ACI318_19US"
	ACI318_19SI      DesignCode = "ACI318_19SI"
	AS3600_2001      DesignCode = "AS3600_2001"
	AS3600_2009      DesignCode = "AS3600_2009"
	AS3600_2018      DesignCode = "AS3600_2018"
	BS8110_1997      DesignCode = "BS8110_1997"
	BS8110_1997_Amd3 DesignCode = "BS8110_1997_Amd3"
	CAN_2004         DesignCode = "CAN_2004"
	EC2_2004UK       DesignCode = "EC2_2004UK"
	EC2_2004         DesignCode = "EC2_2004"
	IS456_2000       DesignCode = "IS456_2000"
)

var designCodes = newStringEnumTable("DesignCode", map[DesignCode]string{
	ACI318_99US:      "ACI318_99US",
	ACI318_99SI:      "ACI318_99SI",
	ACI318_02US:      "ACI318_02US",
	ACI318_02SI:      "ACI318_02SI",
	ACI318_05US:      "ACI318_05US",
	ACI318_05SI:      "ACI318_05SI",
	ACI318_08US:      "ACI318_08US",
	ACI318_08SI:      "ACI318_08SI",
	ACI318_11US:      "ACI318_11US",
	ACI318_11SI:      "ACI318_11SI",
	ACI318_14US:      "ACI318_14US",
	ACI318_14SI:      "ACI318_14SI",
	ACI318_19US:      "ACI318_19US",
	ACI318_19SI:      "ACI318_19SI",
	AS3600_2001:      "AS3600_2001",
	AS3600_2009:      "AS3600_2009",
	AS3600_2018:      "AS3600_2018",
	BS8110_1997:      "BS8110_1997",
	BS8110_1997_Amd3: "BS8110_1997_Amd3",
	CAN_2004:         "CAN_2004",
	EC2_2004UK:       "EC2_2004UK",
	EC2_2004:         "EC2_2004",
	IS456_2000:       "IS456_2000",
})

// StructureType identifies the kind of structure a new model is set up for.
type StructureType string

const (
	StructureElevated StructureType = "ELEVATED"
	StructureMat      StructureType = "MAT"
)

var structureTypes = newStringEnumTable("StructureType", map[StructureType]string{
	StructureElevated: "ELEVATED",
	StructureMat:      "MAT",
})

// MEMBER BEHAVIOR ENUMS

// BeamBehavior describes the structural behavior of a beam.
type BeamBehavior string

const (
	BeamStandard       BeamBehavior = "two-way slab"
	BeamNoTorsion      BeamBehavior = "no-torsion two-way slab"
	BeamCustomBehavior BeamBehavior = "custom"
)

var beamBehaviors = newStringEnumTable("BeamBehavior", map[BeamBehavior]string{
	BeamStandard:       "two-way slab",
	BeamNoTorsion:      "no-torsion two-way slab",
	BeamCustomBehavior: "custom",
})

// SlabAreaBehavior describes the structural behavior of a slab area.
type SlabAreaBehavior string

const (
	SlabTwoWay         SlabAreaBehavior = "two-way slab"
	SlabOneWay         SlabAreaBehavior = "one-way slab"
	SlabNoTorsion      SlabAreaBehavior = "no-torsion two-way slab"
	SlabCustomBehavior SlabAreaBehavior = "custom"
)

var slabAreaBehaviors = newStringEnumTable("SlabAreaBehavior", map[SlabAreaBehavior]string{
	SlabTwoWay:         "two-way slab",
	SlabOneWay:         "one-way slab",
	SlabNoTorsion:      "no-torsion two-way slab",
	SlabCustomBehavior: "custom",
})

// POST-TENSIONING ENUMS

// AnchorType identifies the geometry of a post-tensioning anchorage.
type AnchorType int

const (
	AnchorMonostrand AnchorType = iota + 1
	AnchorFlatMulti
	AnchorCircularSinglePlane
	AnchorCircularMultiPlane
	AnchorOval
	AnchorBondHead
	AnchorSquareSinglePlane
)

var anchorTypes = newIntEnumTable("AnchorType", map[AnchorType]int{
	AnchorMonostrand:          1,
	AnchorFlatMulti:           2,
	AnchorCircularSinglePlane: 3,
	AnchorCircularMultiPlane:  4,
	AnchorOval:                5,
	AnchorBondHead:            6,
	AnchorSquareSinglePlane:   7,
})

// PTSystemType identifies whether a post-tensioning system is bonded.
type PTSystemType string

const (
	PTBonded   PTSystemType = "bonded"
	PTUnbonded PTSystemType = "unbonded"
)

var ptSystemTypes = newStringEnumTable("PTSystemType", map[PTSystemType]string{
	PTBonded:   "bonded",
	PTUnbonded: "unbonded",
})

// DuctShape identifies the cross-sectional shape of a tendon duct.
type DuctShape int

const (
	DuctFlat DuctShape = iota + 1
	DuctRound
	DuctOvalShape
)

var ductShapes = newIntEnumTable("DuctShape", map[DuctShape]int{
	DuctFlat:      1,
	DuctRound:     2,
	DuctOvalShape: 3,
})

// DuctType identifies the material and corrosion protection of a duct.
type DuctType int

const (
	DuctCorrugatedPlastic DuctType = iota + 1
	DuctCorrugatedMetal
	DuctSmoothPlastic
	DuctSmoothMetal
	DuctExtruded
)

var ductTypes = newIntEnumTable("DuctType", map[DuctType]int{
	DuctCorrugatedPlastic: 1,
	DuctCorrugatedMetal:   2,
	DuctSmoothPlastic:     3,
	DuctSmoothMetal:       4,
	DuctExtruded:          5,
})

// TENDON PROFILE ENUMS

// ElevationReference identifies the datum a tendon node elevation is measured
// from.
type ElevationReference int

const (
	AboveSoffit ElevationReference = iota + 1
	BelowSurface
	AboveSurface
	CGSFromTop
	CGSFromBottom
	AbsoluteElevation
)

var elevationReferences = newIntEnumTable("ElevationReference", map[ElevationReference]int{
	AboveSoffit:       1,
	BelowSurface:      2,
	AboveSurface:      3,
	CGSFromTop:        4,
	CGSFromBottom:     5,
	AbsoluteElevation: 6,
})

// SpanSet identifies which of the two tendon direction sets a layer belongs to.
type SpanSet string

const (
	LatitudeSpans  SpanSet = "latitude"
	LongitudeSpans SpanSet = "longitude"
)

var spanSets = newStringEnumTable("SpanSet", map[SpanSet]string{
	LatitudeSpans:  "latitude",
	LongitudeSpans: "longitude",
})

// GeneratedBy identifies whether content was created by the program or a user.
type GeneratedBy string

const (
	GeneratedByProgram GeneratedBy = "program"
	GeneratedByUser    GeneratedBy = "user"
)

var generatedBys = newStringEnumTable("GeneratedBy", map[GeneratedBy]string{
	GeneratedByProgram: "program",
	GeneratedByUser:    "user",
})

// LOAD COMBINATION ENUMS

// LoadComboSummingType identifies how a load combo combines its loadings.
type LoadComboSummingType int

const (
	SingleComboSumming LoadComboSummingType = iota + 1
	LateralGroupSumming
)

var loadComboSummingTypes = newIntEnumTable("LoadComboSummingType", map[LoadComboSummingType]int{
	SingleComboSumming:  1,
	LateralGroupSumming: 2,
})

// LoadComboLateralGroupType identifies the lateral loading group a combo sums
// over.
type LoadComboLateralGroupType int

const (
	WindServiceGroup    LoadComboLateralGroupType = 100
	WindUltimateGroup   LoadComboLateralGroupType = 200
	SeismicServiceGroup LoadComboLateralGroupType = 300
	SeismicUltimateGroup LoadComboLateralGroupType = 400
)

var loadComboLateralGroupTypes = newIntEnumTable("LoadComboLateralGroupType", map[LoadComboLateralGroupType]int{
	WindServiceGroup:     100,
	WindUltimateGroup:    200,
	SeismicServiceGroup:  300,
	SeismicUltimateGroup: 400,
})

// LoadComboAnalysisType identifies the analysis a load combo layer performs.
type LoadComboAnalysisType int

const (
	LinearComboAnalysis LoadComboAnalysisType = iota + 1
	ZeroTensionComboAnalysis
)

var loadComboAnalysisTypes = newIntEnumTable("LoadComboAnalysisType", map[LoadComboAnalysisType]int{
	LinearComboAnalysis:      1,
	ZeroTensionComboAnalysis: 2,
})

// RESULT CONTEXT ENUM

// ReactionContext selects which envelope extreme a reaction is reported for.
// ContextStandard is the only valid context for non-envelope result layers.
type ReactionContext string

const (
	ContextStandard ReactionContext = "ContextStandard"
	ContextMaxFz    ReactionContext = "ContextMaxFz"
	ContextMinFz    ReactionContext = "ContextMinFz"
	ContextMaxMx    ReactionContext = "ContextMaxMx"
	ContextMinMx    ReactionContext = "ContextMinMx"
	ContextMaxMy    ReactionContext = "ContextMaxMy"
	ContextMinMy    ReactionContext = "ContextMinMy"
)

var reactionContexts = newStringEnumTable("ReactionContext", map[ReactionContext]string{
	ContextStandard: "ContextStandard",
	ContextMaxFz:    "ContextMaxFz",
	ContextMinFz:    "ContextMinFz",
	ContextMaxMx:    "ContextMaxMx",
	ContextMinMx:    "ContextMinMx",
	ContextMaxMy:    "ContextMaxMy",
	ContextMinMy:    "ContextMinMy",
})

// ELEVATION HELPERS

// parseIndexSuffix splits a trailing decimal index off a string, used by the
// LoadingType codec for numbered lateral loadings such as "wind_service_3".
func parseIndexSuffix(s, prefix string) (int, bool) {
	if len(s) <= len(prefix) || s[:len(prefix)] != prefix {
		return 0, false
	}
	index, err := strconv.Atoi(s[len(prefix):])
	if err != nil || index < 1 {
		return 0, false
	}
	return index, true
}
