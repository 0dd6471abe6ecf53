/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: result_layers.go
Description: Result layer handles. Envelope result layers carry min/max
results from multiple analyses and answer reaction queries per context; full
result layers additionally carry the standard (single-analysis) context.
*/

package concept

import (
	"strconv"

	"github.com/kleascm/concept-client/pkg/bracket"
	"github.com/kleascm/concept-client/pkg/geometry"
)

const (
	pointReactionFr = "PointReactionFx"
	pointReactionFs = "PointReactionFy"
	pointReactionFz = "PointReactionFz"
	pointReactionMr = "PointReactionMx"
	pointReactionMs = "PointReactionMy"
	pointReactionMz = "PointReactionMz"

	subsectionNear = "SubsectionNear"
)

// EnvelopeResultLayer is the abstract handle for a CAD layer containing
// "enveloped" results: min/max values taken from multiple analyses. The
// standard context is only available when the layer is also a
// FullResultLayer.
type EnvelopeResultLayer struct {
	CadLayer
}

func newEnvelopeResultLayer(uid int, m *Model, typeName string) EnvelopeResultLayer {
	return EnvelopeResultLayer{CadLayer: newCadLayer(uid, m, typeName)}
}

// ColumnReaction returns this layer's reaction upon the slab from the given
// column element, consistent with the given context.
func (l *EnvelopeResultLayer) ColumnReaction(columnElement *ColumnElement, context ReactionContext) (geometry.Point5D, error) {
	contextValue, err := reactionContexts.internal(context)
	if err != nil {
		return geometry.Point5D{}, err
	}

	values, err := l.analysisResultFloats(&columnElement.Data, contextValue,
		pointReactionFr, pointReactionFs, pointReactionFz, pointReactionMr, pointReactionMs)
	if err != nil {
		return geometry.Point5D{}, err
	}
	return geometry.Point5D{X: values[0], Y: values[1], Z: values[2], RotX: values[3], RotY: values[4]}, nil
}

// WallGroupReaction returns this layer's reaction upon the slab from the
// given wall group, consistent with the given context. For backward
// compatibility a *WallElement is accepted as well; that usage is deprecated
// and resolves to the element's group summary.
func (l *EnvelopeResultLayer) WallGroupReaction(wallGroup Entity, context ReactionContext) (geometry.Point6D, error) {
	contextValue, err := reactionContexts.internal(context)
	if err != nil {
		return geometry.Point6D{}, err
	}

	values, err := l.analysisResultFloats(wallGroup.base(), contextValue,
		pointReactionFr, pointReactionFs, pointReactionFz, pointReactionMr, pointReactionMs, pointReactionMz)
	if err != nil {
		return geometry.Point6D{}, err
	}
	return geometry.Point6D{X: values[0], Y: values[1], Z: values[2], RotX: values[3], RotY: values[4], RotZ: values[5]}, nil
}

// analysisResultFloat returns the given value at the given subsection for the
// given context on this layer, queried against the given entity.
func (l *EnvelopeResultLayer) analysisResultFloat(target *Data, value, subSection, context string) (float64, error) {
	layerUID := strconv.Itoa(l.uid)
	result, err := target.command("[GET_ANALYSIS_USER][" + layerUID + "][" + context + "][" + value + "][" + subSection + "]")
	if err != nil {
		return 0, err
	}
	return bracket.UserStrToFloat(result)
}

func (l *EnvelopeResultLayer) analysisResultFloats(target *Data, context string, values ...string) ([]float64, error) {
	results := make([]float64, 0, len(values))
	for _, value := range values {
		result, err := l.analysisResultFloat(target, value, subsectionNear, context)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// FullResultLayer is the abstract handle for a CAD layer containing both
// enveloped and standard results.
type FullResultLayer struct {
	EnvelopeResultLayer
}

func newFullResultLayer(uid int, m *Model, typeName string) FullResultLayer {
	return FullResultLayer{EnvelopeResultLayer: newEnvelopeResultLayer(uid, m, typeName)}
}
