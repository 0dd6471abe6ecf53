/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: load_combo.go
Description: Load combination layer and load factor handles. A load combo
layer sums factored loading layer results; its load factors are created and
deleted automatically as combo and loading layers come and go.
*/

package concept

import "github.com/kleascm/concept-client/pkg/protocol"

// LoadComboLayer represents a load combination of the loading layers in the
// model.
type LoadComboLayer struct {
	FullResultLayer
}

func newLoadComboLayer(uid int, m *Model) *LoadComboLayer {
	return &LoadComboLayer{FullResultLayer: newFullResultLayer(uid, m, "LoadComboLayer")}
}

// SummingType returns the method for summing loading layer results.
func (l *LoadComboLayer) SummingType() (LoadComboSummingType, error) {
	return getIntEnum(&l.Data, loadComboSummingTypes, "LoadComboType")
}

// SetSummingType sets the method for summing loading layer results.
func (l *LoadComboLayer) SetSummingType(value LoadComboSummingType) error {
	return setIntEnum(&l.Data, loadComboSummingTypes, "LoadComboType", value)
}

// AnalysisType returns the analysis method used for this layer.
func (l *LoadComboLayer) AnalysisType() (LoadComboAnalysisType, error) {
	return getIntEnum(&l.Data, loadComboAnalysisTypes, "LoadComboAnalysis")
}

// SetAnalysisType sets the analysis method used for this layer.
func (l *LoadComboLayer) SetAnalysisType(value LoadComboAnalysisType) error {
	return setIntEnum(&l.Data, loadComboAnalysisTypes, "LoadComboAnalysis", value)
}

// GroupLoadingType returns the loading layer type that is considered when the
// summing type is the lateral group.
func (l *LoadComboLayer) GroupLoadingType() (LoadComboLateralGroupType, error) {
	return getIntEnum(&l.Data, loadComboLateralGroupTypes, "GroupLoadingType")
}

// SetGroupLoadingType sets the loading layer type that is considered when the
// summing type is the lateral group.
func (l *LoadComboLayer) SetGroupLoadingType(value LoadComboLateralGroupType) error {
	return setIntEnum(&l.Data, loadComboLateralGroupTypes, "GroupLoadingType", value)
}

// GroupStandardLoadFactor returns the standard load factor that group loading
// type results are multiplied by.
func (l *LoadComboLayer) GroupStandardLoadFactor() (float64, error) {
	return l.getFloat("GroupStandardLoadFactor")
}

// SetGroupStandardLoadFactor sets the standard load factor that group loading
// type results are multiplied by.
func (l *LoadComboLayer) SetGroupStandardLoadFactor(value float64) error {
	return l.setFloat("GroupStandardLoadFactor", value)
}

// GroupAlternateEnvelopeLoadFactor returns the load factor that group loading
// type results are multiplied by when considering enveloping.
func (l *LoadComboLayer) GroupAlternateEnvelopeLoadFactor() (float64, error) {
	return l.getFloat("GroupAltEnvelopeLoadFactor")
}

// SetGroupAlternateEnvelopeLoadFactor sets the load factor that group loading
// type results are multiplied by when considering enveloping.
func (l *LoadComboLayer) SetGroupAlternateEnvelopeLoadFactor(value float64) error {
	return l.setFloat("GroupAltEnvelopeLoadFactor", value)
}

// LoadFactors returns all of the load factors for this layer.
func (l *LoadComboLayer) LoadFactors() ([]*LoadFactor, error) {
	return entitiesAs[*LoadFactor](l.getChildrenOfType("LoadFactor"))
}

// LoadFactor returns the load factor corresponding to the given loading
// layer.
func (l *LoadComboLayer) LoadFactor(loadingLayer Entity) (*LoadFactor, error) {
	factors, err := l.LoadFactors()
	if err != nil {
		return nil, err
	}
	for _, factor := range factors {
		loading, err := factor.Loading()
		if err != nil {
			return nil, err
		}
		if loading != nil && loadingLayer != nil && loading.base().Equal(loadingLayer) {
			return factor, nil
		}
	}
	return nil, &protocol.InternalError{Message: "no LoadFactor for given LoadingLayer"}
}

// Delete removes this layer from the model.
func (l *LoadComboLayer) Delete() error { return l.deleteData() }

// LoadFactor holds the factors that a load combo layer applies to one
// loading layer.
//
// Load factors are created and deleted automatically as combo and loading
// layers are created and deleted, and are accessed through
// LoadComboLayer.LoadFactor. If the combo layer's summing type is the lateral
// group and this factor refers to a lateral loading, the factor and its
// values are ignored. If the combo layer's analysis type is nonlinear, the
// alternate envelope factor is ignored.
type LoadFactor struct {
	Data
}

func newLoadFactor(uid int, m *Model) *LoadFactor {
	return &LoadFactor{Data: newData(uid, m, "LoadFactor")}
}

// StandardLoadFactor returns the standard load factor that loading results
// are multiplied by.
func (l *LoadFactor) StandardLoadFactor() (float64, error) {
	return l.getFloat("StandardLoadFactor")
}

// SetStandardLoadFactor sets the standard load factor that loading results
// are multiplied by.
func (l *LoadFactor) SetStandardLoadFactor(value float64) error {
	return l.setFloat("StandardLoadFactor", value)
}

// AlternateEnvelopeLoadFactor returns the load factor that loading results
// are multiplied by when considering enveloping.
func (l *LoadFactor) AlternateEnvelopeLoadFactor() (float64, error) {
	return l.getFloat("AltEnvelopeLoadFactor")
}

// SetAlternateEnvelopeLoadFactor sets the load factor that loading results
// are multiplied by when considering enveloping.
func (l *LoadFactor) SetAlternateEnvelopeLoadFactor(value float64) error {
	return l.setFloat("AltEnvelopeLoadFactor", value)
}

// Loading returns the loading layer to which the factors apply.
func (l *LoadFactor) Loading() (Entity, error) { return l.getEntity("Loading") }
