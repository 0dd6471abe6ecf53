/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tendons.go
Description: Post-tensioning handles: tendon layers, tendon segments, tendon
nodes and jacks. Tendon segments and jacks always live on a tendon layer;
nodes are created automatically when segments or jacks are added at new
locations.
*/

package concept

import (
	"strconv"

	"github.com/kleascm/concept-client/pkg/bracket"
	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// TENDON LAYER

// TendonLayer represents a layer of tendons, nodes and jacks for one span
// direction set. Layers are accessible through CadManager.TendonLayer and
// CadManager.TendonLayers.
type TendonLayer struct {
	CadLayer
}

func newTendonLayer(uid int, m *Model) *TendonLayer {
	return &TendonLayer{CadLayer: newCadLayer(uid, m, "TendonLayer")}
}

// GeneratedBy returns the creator (user vs program) of the tendons and jacks
// on this layer.
func (t *TendonLayer) GeneratedBy() (GeneratedBy, error) {
	return getStringEnum(&t.Data, generatedBys, "GeneratedBy")
}

// SpanSet returns the span direction set this layer is associated with.
func (t *TendonLayer) SpanSet() (SpanSet, error) {
	return getStringEnum(&t.Data, spanSets, "SpanSet")
}

// TendonSegments returns all the tendon segments on this layer.
func (t *TendonLayer) TendonSegments() ([]*TendonSegment, error) {
	return entitiesAs[*TendonSegment](t.getEntities("Tendons"))
}

// Jacks returns all the jacks on this layer.
func (t *TendonLayer) Jacks() ([]*Jack, error) {
	return entitiesAs[*Jack](t.getEntities("Jacks"))
}

// TendonNodes returns all the tendon nodes on this layer.
func (t *TendonLayer) TendonNodes() ([]*TendonNode, error) {
	return entitiesAs[*TendonNode](t.getEntities("TendonNodes"))
}

// AddJack adds a jack at the given location. The location is snapped to the
// nearest 0.1mm and a tendon node may be created if none exists there.
func (t *TendonLayer) AddJack(location geometry.Point2D) (*Jack, error) {
	return entityAs[*Jack](t.addCadEntityWithPoint("Jack", location))
}

// AddTendonSegment adds a tendon segment at the given location. The location
// is snapped to the nearest 0.1mm and one or two tendon nodes may be created
// if none exist at the end points.
func (t *TendonLayer) AddTendonSegment(location geometry.LineSegment2D) (*TendonSegment, error) {
	return entityAs[*TendonSegment](t.addCadEntityWithSegment("Tendon", location))
}

// TENDON NODE

// TendonNode represents a profile point shared by the tendon segments that
// meet at it.
//
// The Elevation, Soffit and Surface values may become out of date when the
// structure changes; they are always valid after a successful calc-all.
type TendonNode struct {
	CadEntity
}

func newTendonNode(uid int, m *Model) *TendonNode {
	return &TendonNode{CadEntity: newCadEntity(uid, m, "TendonNode")}
}

// ElevationReference returns the reference used for calculating elevations.
func (t *TendonNode) ElevationReference() (ElevationReference, error) {
	return getIntEnum(&t.Data, elevationReferences, "ElevationReference")
}

// ElevationValue returns the vertical distance from the elevation reference
// to the elevation.
func (t *TendonNode) ElevationValue() (float64, error) { return t.getFloat("ElevationValue") }

// Elevation returns the absolute elevation of this node.
func (t *TendonNode) Elevation() (float64, error) { return t.getFloat("Elevation") }

// Soffit returns the slab soffit elevation at this node.
func (t *TendonNode) Soffit() (float64, error) { return t.getFloat("Soffit") }

// Surface returns the slab surface elevation at this node.
func (t *TendonNode) Surface() (float64, error) { return t.getFloat("Surface") }

// Location returns the location of this node.
func (t *TendonNode) Location() (geometry.Point2D, error) { return t.pointLocation() }

// ConnectedTendonSegments returns all tendon segments connected to this node.
func (t *TendonNode) ConnectedTendonSegments() ([]*TendonSegment, error) {
	result, err := t.command("[GET_CONNECTED_TENDONS]")
	if err != nil {
		return nil, err
	}
	return entitiesAs[*TendonSegment](t.model.getDatasFromBracketString(result))
}

// ConnectedTendonSegmentsExcept returns all tendon segments connected to this
// node other than the given one. This can be useful for following a chain of
// tendon segments. An error is returned if the excluded segment is not
// connected to this node.
func (t *TendonNode) ConnectedTendonSegmentsExcept(excluded *TendonSegment) ([]*TendonSegment, error) {
	segments, err := t.ConnectedTendonSegments()
	if err != nil {
		return nil, err
	}
	remaining := make([]*TendonSegment, 0, len(segments))
	found := false
	for _, segment := range segments {
		if !found && excluded != nil && segment.Equal(excluded) {
			found = true
			continue
		}
		remaining = append(remaining, segment)
	}
	if !found {
		return nil, &protocol.InvalidValueError{Message: "TendonSegment is not connected to this TendonNode"}
	}
	return remaining, nil
}

// Delete is not supported for tendon nodes; nodes are removed automatically
// when the last connected segment or jack is deleted.
func (t *TendonNode) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for TendonNode"}
}

// TENDON SEGMENT

// TendonSegment represents a tendon segment between two tendon nodes on a
// tendon layer.
type TendonSegment struct {
	CadEntity
}

func newTendonSegmentNamed(uid int, m *Model, typeName string) *TendonSegment {
	return &TendonSegment{CadEntity: newCadEntity(uid, m, typeName)}
}

func newTendonSegment(uid int, m *Model) *TendonSegment {
	return newTendonSegmentNamed(uid, m, "TendonSegment")
}

// PTSystem returns the PT system used by this segment.
func (t *TendonSegment) PTSystem() (*PTSystem, error) {
	return entityAs[*PTSystem](t.getEntity("PTSystem"))
}

// SetPTSystem sets the PT system used by this segment. The system cannot be
// nil.
func (t *TendonSegment) SetPTSystem(value *PTSystem) error {
	if value == nil {
		return &protocol.InvalidValueError{Message: "PTSystem cannot be nil"}
	}
	return t.setEntity("PTSystem", value)
}

// Harped reports whether this segment is harped. If true, the inflection
// ratio is ignored.
func (t *TendonSegment) Harped() (bool, error) { return t.getBool("Harped") }

// SetHarped sets whether this segment is harped.
func (t *TendonSegment) SetHarped(value bool) error { return t.setBool("Harped", value) }

// InflectionRatio returns the location of the inflection point as a
// fractional distance along this segment.
func (t *TendonSegment) InflectionRatio() (float64, error) { return t.getFloat("InflectionRatio") }

// SetInflectionRatio sets the location of the inflection point.
func (t *TendonSegment) SetInflectionRatio(value float64) error {
	return t.setFloat("InflectionRatio", value)
}

// StressAtEnd1 returns the stress in the segment at the start point.
func (t *TendonSegment) StressAtEnd1() (float64, error) { return t.getFloat("StressEnd0") }

// StressAtEnd2 returns the stress in the segment at the end point.
func (t *TendonSegment) StressAtEnd2() (float64, error) { return t.getFloat("StressEnd1") }

// StrandCount returns the number of strands in the segment.
func (t *TendonSegment) StrandCount() (float64, error) { return t.getFloat("NumStrands") }

// SetStrandCount sets the number of strands in the segment.
func (t *TendonSegment) SetStrandCount(value float64) error { return t.setFloat("NumStrands", value) }

// HalfSpanRatioEnd1 returns the tendon span ratio at end 1.
func (t *TendonSegment) HalfSpanRatioEnd1() (float64, error) { return t.getFloat("HalfSpanRatioEnd0") }

// SetHalfSpanRatioEnd1 sets the tendon span ratio at end 1.
func (t *TendonSegment) SetHalfSpanRatioEnd1(value float64) error {
	return t.setFloat("HalfSpanRatioEnd0", value)
}

// HalfSpanRatioEnd2 returns the tendon span ratio at end 2.
func (t *TendonSegment) HalfSpanRatioEnd2() (float64, error) { return t.getFloat("HalfSpanRatioEnd1") }

// SetHalfSpanRatioEnd2 sets the tendon span ratio at end 2.
func (t *TendonSegment) SetHalfSpanRatioEnd2(value float64) error {
	return t.setFloat("HalfSpanRatioEnd1", value)
}

// Node1 returns the tendon node at the start point.
func (t *TendonSegment) Node1() (*TendonNode, error) {
	return entityAs[*TendonNode](t.getEntity("TendonNode0"))
}

// Node2 returns the tendon node at the end point.
func (t *TendonSegment) Node2() (*TendonNode, error) {
	return entityAs[*TendonNode](t.getEntity("TendonNode1"))
}

// ElevationReference1 returns the elevation reference for node 1.
func (t *TendonSegment) ElevationReference1() (ElevationReference, error) {
	return getIntEnum(&t.Data, elevationReferences, "ElevationReferenceNode0")
}

// SetElevationReference1 sets the elevation reference for node 1.
func (t *TendonSegment) SetElevationReference1(value ElevationReference) error {
	return setIntEnum(&t.Data, elevationReferences, "ElevationReferenceNode0", value)
}

// ElevationReference2 returns the elevation reference for node 2.
func (t *TendonSegment) ElevationReference2() (ElevationReference, error) {
	return getIntEnum(&t.Data, elevationReferences, "ElevationReferenceNode1")
}

// SetElevationReference2 sets the elevation reference for node 2.
func (t *TendonSegment) SetElevationReference2(value ElevationReference) error {
	return setIntEnum(&t.Data, elevationReferences, "ElevationReferenceNode1", value)
}

// ElevationValue1 returns the elevation value for node 1.
func (t *TendonSegment) ElevationValue1() (float64, error) {
	return t.getFloat("ElevationValueNode0")
}

// SetElevationValue1 sets the elevation value for node 1.
func (t *TendonSegment) SetElevationValue1(value float64) error {
	return t.setFloat("ElevationValueNode0", value)
}

// ElevationValue2 returns the elevation value for node 2.
func (t *TendonSegment) ElevationValue2() (float64, error) {
	return t.getFloat("ElevationValueNode1")
}

// SetElevationValue2 sets the elevation value for node 2.
func (t *TendonSegment) SetElevationValue2(value float64) error {
	return t.setFloat("ElevationValueNode1", value)
}

// AutoLocateProfile2 reports whether the profile 2 point (node 2) is
// automatically located for equal balance loads.
func (t *TendonSegment) AutoLocateProfile2() (bool, error) { return t.getBool("AutoLocateProfile1") }

// SetAutoLocateProfile2 sets whether the profile 2 point is automatically
// located for equal balance loads.
func (t *TendonSegment) SetAutoLocateProfile2(value bool) error {
	return t.setBool("AutoLocateProfile1", value)
}

// StrandToDuctOffset returns the offset between the strand CGS and duct CGS.
func (t *TendonSegment) StrandToDuctOffset() (float64, error) {
	return t.getFloat("StrandCGStoDuctCGSOffset")
}

// SetStrandToDuctOffset sets the offset between the strand CGS and duct CGS.
func (t *TendonSegment) SetStrandToDuctOffset(value float64) error {
	return t.setFloat("StrandCGStoDuctCGSOffset", value)
}

// Location returns the location of this segment.
func (t *TendonSegment) Location() (geometry.LineSegment2D, error) { return t.segmentLocation() }

// ElevationsAlongSegment returns the tendon elevations at the given
// fractional lengths along the segment, where 0.0 is end 1 and 1.0 is end 2.
// Values are only guaranteed to be correct after a calc-all.
func (t *TendonSegment) ElevationsAlongSegment(fractionalLengths []float64) ([]float64, error) {
	cmd := "[GET_PROFILE_ELEVATIONS_USER]"
	for _, fraction := range fractionalLengths {
		cmd += "[" + strconv.FormatFloat(fraction, 'g', -1, 64) + "]"
	}
	result, err := t.command(cmd)
	if err != nil {
		return nil, err
	}
	return bracket.ParseFloats(result)
}

// OtherNode returns the node at the other end of this segment from the given
// node. This can be helpful when determining a chain of segments. An error is
// returned if the given node is not connected to this segment.
func (t *TendonSegment) OtherNode(node *TendonNode) (*TendonNode, error) {
	node1, err := t.Node1()
	if err != nil {
		return nil, err
	}
	node2, err := t.Node2()
	if err != nil {
		return nil, err
	}
	if node != nil && node.Equal(node1) {
		return node2, nil
	}
	if node != nil && node.Equal(node2) {
		return node1, nil
	}
	return nil, &protocol.InvalidValueError{Message: "TendonNode is not connected to this TendonSegment"}
}

// DefaultTendonSegment is the template whose properties new tendon segments
// copy. There is always exactly one, accessed through
// CadManager.DefaultTendonSegment; it has no location or nodes and cannot be
// deleted.
type DefaultTendonSegment struct {
	TendonSegment
}

func newDefaultTendonSegment(uid int, m *Model) *DefaultTendonSegment {
	return &DefaultTendonSegment{TendonSegment: *newTendonSegmentNamed(uid, m, "DefaultTendonSegment")}
}

// ElevationsAlongSegment is not supported for the default tendon segment.
func (t *DefaultTendonSegment) ElevationsAlongSegment(fractionalLengths []float64) ([]float64, error) {
	return nil, &protocol.ReadOnlyError{Message: "elevations along segment are not supported for default CadEntities"}
}

// Delete is not supported for default entities.
func (t *DefaultTendonSegment) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}

// JACK

// Jack represents a stressing jack on a tendon layer.
type Jack struct {
	CadEntity
}

func newJackNamed(uid int, m *Model, typeName string) *Jack {
	return &Jack{CadEntity: newCadEntity(uid, m, typeName)}
}

func newJack(uid int, m *Model) *Jack {
	return newJackNamed(uid, m, "Jack")
}

// UsePTSystemDefaults reports whether the PT system defaults are used for
// jack properties instead of the ones defined in this jack.
func (j *Jack) UsePTSystemDefaults() (bool, error) { return j.getBool("UsePTSystemDefaults") }

// SetUsePTSystemDefaults sets whether the PT system defaults are used for
// jack properties.
func (j *Jack) SetUsePTSystemDefaults(value bool) error {
	return j.setBool("UsePTSystemDefaults", value)
}

// AnchorFriction returns the friction coefficient for strands moving through
// the anchor.
func (j *Jack) AnchorFriction() (float64, error) { return j.getFloat("AnchorFriction") }

// SetAnchorFriction sets the friction coefficient for strands moving through
// the anchor.
func (j *Jack) SetAnchorFriction(value float64) error { return j.setFloat("AnchorFriction", value) }

// LongTermLosses returns the lump-sum long-term losses used in calculating
// effective tendon stresses.
func (j *Jack) LongTermLosses() (float64, error) { return j.getFloat("LongTermLosses") }

// SetLongTermLosses sets the lump-sum long-term losses.
func (j *Jack) SetLongTermLosses(value float64) error { return j.setFloat("LongTermLosses", value) }

// WobbleFriction returns the friction coefficient per unit length of tendon
// due to unintentional curvatures.
func (j *Jack) WobbleFriction() (float64, error) { return j.getFloat("WobbleFriction") }

// SetWobbleFriction sets the friction coefficient per unit length of tendon.
func (j *Jack) SetWobbleFriction(value float64) error { return j.setFloat("WobbleFriction", value) }

// AngularFriction returns the friction coefficient per angular change of
// tendon for use with intentional curvatures.
func (j *Jack) AngularFriction() (float64, error) { return j.getFloat("AngularFriction") }

// SetAngularFriction sets the friction coefficient per angular change of
// tendon.
func (j *Jack) SetAngularFriction(value float64) error {
	return j.setFloat("AngularFriction", value)
}

// JackStress returns the stress applied to the strands at the anchor by this
// jack.
func (j *Jack) JackStress() (float64, error) { return j.getFloat("JackStress") }

// SetJackStress sets the stress applied to the strands at the anchor by this
// jack.
func (j *Jack) SetJackStress(value float64) error { return j.setFloat("JackStress", value) }

// SeatingDistance returns the distance strands retract back into the anchor
// while seating the wedges.
func (j *Jack) SeatingDistance() (float64, error) { return j.getFloat("SeatingDistance") }

// SetSeatingDistance sets the distance strands retract back into the anchor
// while seating the wedges.
func (j *Jack) SetSeatingDistance(value float64) error { return j.setFloat("SeatingDistance", value) }

// Elongation returns the elongation of the tendon stressed by this jack.
// Only valid after a calc-all.
func (j *Jack) Elongation() (float64, error) { return j.getFloat("Elongation") }

// Node returns the tendon node the jack is connected to.
func (j *Jack) Node() (*TendonNode, error) {
	return entityAs[*TendonNode](j.getEntity("TendonNode0"))
}

// Location returns the location of this jack.
func (j *Jack) Location() (geometry.Point2D, error) { return j.pointLocation() }

// DefaultJack is the template whose properties new jacks copy. There is
// always exactly one, accessed through CadManager.DefaultJack; it has no
// location or node and cannot be deleted.
type DefaultJack struct {
	Jack
}

func newDefaultJack(uid int, m *Model) *DefaultJack {
	return &DefaultJack{Jack: *newJackNamed(uid, m, "DefaultJack")}
}

// Delete is not supported for default entities.
func (j *DefaultJack) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}
