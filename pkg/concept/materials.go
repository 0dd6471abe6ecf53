/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: materials.go
Description: Material and system handles (concrete mixes, strand materials,
anchor systems, duct systems and PT systems) together with the singleton
catalogs that own them. Each catalog always exists in every model and is
reached through a Model accessor; the last entry in a catalog can never be
deleted.
*/

package concept

import (
	"math"

	"github.com/kleascm/concept-client/pkg/protocol"
)

// CONCRETE

// UseUnitMassInstead is the flag value for Concrete.SetUnitMassForLoads
// meaning "use the unit mass instead".
const UseUnitMassInstead = math.MaxFloat64

// Concrete represents a concrete mix in the model.
//
// To create a new mix use Concretes.AddConcrete; to list all mixes use
// Concretes.Concretes.
//
// Concrete strength properties must be consistent at all points in time
// (initial values never exceeding final values), and the server rejects
// values that violate that. The cube and cylinder strengths have an implied
// relationship, so setting one modifies the other; this is typically of no
// concern as a model only uses one design code.
type Concrete struct {
	Data
}

func newConcrete(uid int, m *Model) *Concrete {
	return &Concrete{Data: newData(uid, m, "Concrete")}
}

// CoefficientOfThermalExpansion returns the coefficient of thermal expansion.
func (c *Concrete) CoefficientOfThermalExpansion() (float64, error) {
	return c.getFloat("CoefficientOfThermalExpansion")
}

// SetCoefficientOfThermalExpansion sets the coefficient of thermal expansion.
func (c *Concrete) SetCoefficientOfThermalExpansion(value float64) error {
	return c.setFloat("CoefficientOfThermalExpansion", value)
}

// FcInitial returns the early age concrete cylinder strength.
func (c *Concrete) FcInitial() (float64, error) { return c.getFloat("FcInitial") }

// SetFcInitial sets the early age concrete cylinder strength.
func (c *Concrete) SetFcInitial(value float64) error { return c.setFloat("FcInitial", value) }

// FcFinal returns the final concrete cylinder strength.
func (c *Concrete) FcFinal() (float64, error) { return c.getFloat("FcFinal") }

// SetFcFinal sets the final concrete cylinder strength.
func (c *Concrete) SetFcFinal(value float64) error { return c.setFloat("FcFinal", value) }

// FcuInitial returns the early age concrete cube strength.
func (c *Concrete) FcuInitial() (float64, error) { return c.getFloat("FcuInitial") }

// SetFcuInitial sets the early age concrete cube strength.
func (c *Concrete) SetFcuInitial(value float64) error { return c.setFloat("FcuInitial", value) }

// FcuFinal returns the final concrete cube strength.
func (c *Concrete) FcuFinal() (float64, error) { return c.getFloat("FcuFinal") }

// SetFcuFinal sets the final concrete cube strength.
func (c *Concrete) SetFcuFinal(value float64) error { return c.setFloat("FcuFinal", value) }

// PoissonsRatio returns Poisson's ratio.
func (c *Concrete) PoissonsRatio() (float64, error) { return c.getFloat("PoissonsRatio") }

// SetPoissonsRatio sets Poisson's ratio.
func (c *Concrete) SetPoissonsRatio(value float64) error { return c.setFloat("PoissonsRatio", value) }

// UnitMass returns the concrete density (mass per volume).
func (c *Concrete) UnitMass() (float64, error) { return c.getFloat("UnitWeight") }

// SetUnitMass sets the concrete density (mass per volume).
func (c *Concrete) SetUnitMass(value float64) error { return c.setFloat("UnitWeight", value) }

// UnitMassForLoads returns the concrete density used for self-weight
// calculations. UseUnitMassInstead is the flag value for "use UnitMass
// instead".
func (c *Concrete) UnitMassForLoads() (float64, error) { return c.getFloat("UnitWeightForLoads") }

// SetUnitMassForLoads sets the concrete density used for self-weight
// calculations.
func (c *Concrete) SetUnitMassForLoads(value float64) error {
	return c.setFloat("UnitWeightForLoads", value)
}

// UserEcInitial returns the early age concrete modulus of elasticity, used
// when not calculating that value per code.
func (c *Concrete) UserEcInitial() (float64, error) { return c.getFloat("UserEcInitial") }

// SetUserEcInitial sets the early age concrete modulus of elasticity.
func (c *Concrete) SetUserEcInitial(value float64) error { return c.setFloat("UserEcInitial", value) }

// UserEcFinal returns the final concrete modulus of elasticity, used when not
// calculating that value per code.
func (c *Concrete) UserEcFinal() (float64, error) { return c.getFloat("UserEcFinal") }

// SetUserEcFinal sets the final concrete modulus of elasticity.
func (c *Concrete) SetUserEcFinal(value float64) error { return c.setFloat("UserEcFinal", value) }

// UseCodeEc reports whether code calculated values are used instead of
// UserEcInitial and UserEcFinal.
func (c *Concrete) UseCodeEc() (bool, error) { return c.getBoolString("EcCalc", "Code", "UserEc") }

// SetUseCodeEc sets whether code calculated values are used instead of
// UserEcInitial and UserEcFinal.
func (c *Concrete) SetUseCodeEc(value bool) error {
	return c.setBoolString("EcCalc", "Code", "UserEc", value)
}

// Delete removes this mix from the model. The last mix in a model cannot be
// deleted.
func (c *Concrete) Delete() error {
	all, err := c.model.Concretes()
	if err != nil {
		return err
	}
	mixes, err := all.Concretes()
	if err != nil {
		return err
	}
	if len(mixes) == 1 {
		return &protocol.InvalidValueError{Message: "cannot delete last Concrete in Model"}
	}
	return c.deleteData()
}

// Concretes is the catalog of concrete mixes. It is a singleton which always
// exists in every model, available through Model.Concretes.
type Concretes struct {
	Data
}

func newConcretes(uid int, m *Model) *Concretes {
	return &Concretes{Data: newData(uid, m, "Concretes")}
}

// Concretes returns all of the concrete mixes in the model.
func (c *Concretes) Concretes() ([]*Concrete, error) {
	return entitiesAs[*Concrete](c.getChildrenOfType("Concrete"))
}

// AddConcrete creates a new concrete mix with the given name. Names must be
// unique within the catalog.
func (c *Concretes) AddConcrete(name string) (*Concrete, error) {
	return entityAs[*Concrete](c.addUniqueNamedChild("Concrete", name))
}

// Concrete returns the concrete mix with the given name, or an error if none
// exists.
func (c *Concretes) Concrete(name string) (*Concrete, error) {
	return entityAs[*Concrete](c.getNamedChildOfType(name, "Concrete"))
}

// STRAND MATERIAL

// StrandMaterial represents a strand material in the model.
//
// To create a new material use StrandMaterials.AddStrandMaterial; to list all
// materials use StrandMaterials.StrandMaterials.
type StrandMaterial struct {
	Data
}

func newStrandMaterial(uid int, m *Model) *StrandMaterial {
	return &StrandMaterial{Data: newData(uid, m, "StrandMaterial")}
}

// Aps returns the area of strand.
func (s *StrandMaterial) Aps() (float64, error) { return s.getFloat("Aps") }

// SetAps sets the area of strand.
func (s *StrandMaterial) SetAps(value float64) error { return s.setFloat("Aps", value) }

// Eps returns the strand elastic modulus.
func (s *StrandMaterial) Eps() (float64, error) { return s.getFloat("Eps") }

// SetEps sets the strand elastic modulus.
func (s *StrandMaterial) SetEps(value float64) error { return s.setFloat("Eps", value) }

// Fpu returns the ultimate tensile strength of strand.
func (s *StrandMaterial) Fpu() (float64, error) { return s.getFloat("Fpu") }

// SetFpu sets the ultimate tensile strength of strand.
func (s *StrandMaterial) SetFpu(value float64) error { return s.setFloat("Fpu", value) }

// Fpy returns the yield strength of strand.
func (s *StrandMaterial) Fpy() (float64, error) { return s.getFloat("Fpy") }

// SetFpy sets the yield strength of strand.
func (s *StrandMaterial) SetFpy(value float64) error { return s.setFloat("Fpy", value) }

// Delete removes this strand material from the model. The last strand
// material in a model cannot be deleted.
func (s *StrandMaterial) Delete() error {
	all, err := s.model.StrandMaterials()
	if err != nil {
		return err
	}
	materials, err := all.StrandMaterials()
	if err != nil {
		return err
	}
	if len(materials) == 1 {
		return &protocol.InvalidValueError{Message: "cannot delete last StrandMaterial in Model"}
	}
	return s.deleteData()
}

// StrandMaterials is the catalog of strand materials. It is a singleton which
// always exists in every model, available through Model.StrandMaterials.
type StrandMaterials struct {
	Data
}

func newStrandMaterials(uid int, m *Model) *StrandMaterials {
	return &StrandMaterials{Data: newData(uid, m, "StrandMaterials")}
}

// StrandMaterials returns all of the strand materials in the model.
func (s *StrandMaterials) StrandMaterials() ([]*StrandMaterial, error) {
	return entitiesAs[*StrandMaterial](s.getChildrenOfType("StrandMaterial"))
}

// AddStrandMaterial creates a new strand material with the given name. Names
// must be unique within the catalog.
func (s *StrandMaterials) AddStrandMaterial(name string) (*StrandMaterial, error) {
	return entityAs[*StrandMaterial](s.addUniqueNamedChild("StrandMaterial", name))
}

// StrandMaterial returns the strand material with the given name, or an error
// if none exists.
func (s *StrandMaterials) StrandMaterial(name string) (*StrandMaterial, error) {
	return entityAs[*StrandMaterial](s.getNamedChildOfType(name, "StrandMaterial"))
}

// ANCHOR SYSTEM

// AnchorSystem represents an anchor system in the model.
//
// To create a new system use AnchorSystems.AddAnchorSystem; to list all
// systems use AnchorSystems.AnchorSystems.
type AnchorSystem struct {
	Data
}

func newAnchorSystem(uid int, m *Model) *AnchorSystem {
	return &AnchorSystem{Data: newData(uid, m, "AnchorSystem")}
}

// AnchorType returns the type of anchorage device used to transfer tendon
// forces to the concrete.
func (a *AnchorSystem) AnchorType() (AnchorType, error) {
	return getIntEnum(&a.Data, anchorTypes, "AnchorType")
}

// SetAnchorType sets the type of anchorage device.
func (a *AnchorSystem) SetAnchorType(value AnchorType) error {
	return setIntEnum(&a.Data, anchorTypes, "AnchorType", value)
}

// JackStress returns the stress applied to strands at the anchor by the jack.
func (a *AnchorSystem) JackStress() (float64, error) { return a.getFloat("JackStress") }

// SetJackStress sets the stress applied to strands at the anchor by the jack.
func (a *AnchorSystem) SetJackStress(value float64) error { return a.setFloat("JackStress", value) }

// SeatingDistance returns the distance strands retract back into the anchor
// while seating the wedges.
func (a *AnchorSystem) SeatingDistance() (float64, error) { return a.getFloat("SeatingDistance") }

// SetSeatingDistance sets the distance strands retract back into the anchor
// while seating the wedges.
func (a *AnchorSystem) SetSeatingDistance(value float64) error {
	return a.setFloat("SeatingDistance", value)
}

// AnchorFriction returns the friction coefficient for strands moving through
// the anchor.
func (a *AnchorSystem) AnchorFriction() (float64, error) { return a.getFloat("AnchorFriction") }

// SetAnchorFriction sets the friction coefficient for strands moving through
// the anchor.
func (a *AnchorSystem) SetAnchorFriction(value float64) error {
	return a.setFloat("AnchorFriction", value)
}

// Delete removes this anchor system from the model. The last anchor system in
// a model cannot be deleted.
func (a *AnchorSystem) Delete() error {
	all, err := a.model.AnchorSystems()
	if err != nil {
		return err
	}
	systems, err := all.AnchorSystems()
	if err != nil {
		return err
	}
	if len(systems) == 1 {
		return &protocol.InvalidValueError{Message: "cannot delete last AnchorSystem in Model"}
	}
	return a.deleteData()
}

// AnchorSystems is the catalog of anchor systems. It is a singleton which
// always exists in every model, available through Model.AnchorSystems.
type AnchorSystems struct {
	Data
}

func newAnchorSystems(uid int, m *Model) *AnchorSystems {
	return &AnchorSystems{Data: newData(uid, m, "AnchorSystems")}
}

// AnchorSystems returns all of the anchor systems in the model.
func (a *AnchorSystems) AnchorSystems() ([]*AnchorSystem, error) {
	return entitiesAs[*AnchorSystem](a.getChildrenOfType("AnchorSystem"))
}

// AddAnchorSystem creates a new anchor system with the given name. Names must
// be unique within the catalog.
func (a *AnchorSystems) AddAnchorSystem(name string) (*AnchorSystem, error) {
	return entityAs[*AnchorSystem](a.addUniqueNamedChild("AnchorSystem", name))
}

// AnchorSystem returns the anchor system with the given name, or an error if
// none exists.
func (a *AnchorSystems) AnchorSystem(name string) (*AnchorSystem, error) {
	return entityAs[*AnchorSystem](a.getNamedChildOfType(name, "AnchorSystem"))
}

// DUCT SYSTEM

// DuctSystem represents a duct system in the model.
//
// To create a new system use DuctSystems.AddDuctSystem; to list all systems
// use DuctSystems.DuctSystems.
type DuctSystem struct {
	Data
}

func newDuctSystem(uid int, m *Model) *DuctSystem {
	return &DuctSystem{Data: newData(uid, m, "DuctSystem")}
}

// SystemType returns the type of PT system (bonded or unbonded).
func (d *DuctSystem) SystemType() (PTSystemType, error) {
	return getStringEnum(&d.Data, ptSystemTypes, "PTSystemType")
}

// SetSystemType sets the type of PT system (bonded or unbonded).
func (d *DuctSystem) SetSystemType(value PTSystemType) error {
	return setStringEnum(&d.Data, ptSystemTypes, "PTSystemType", value)
}

// DuctWidth returns the width of an individual duct.
func (d *DuctSystem) DuctWidth() (float64, error) { return d.getFloat("DuctWidth") }

// SetDuctWidth sets the width of an individual duct.
func (d *DuctSystem) SetDuctWidth(value float64) error { return d.setFloat("DuctWidth", value) }

// StrandsPerDuct returns the maximum number of strands to place in a single
// duct.
func (d *DuctSystem) StrandsPerDuct() (float64, error) { return d.getFloat("StrandsPerDuct") }

// SetStrandsPerDuct sets the maximum number of strands to place in a single
// duct.
func (d *DuctSystem) SetStrandsPerDuct(value float64) error {
	return d.setFloat("StrandsPerDuct", value)
}

// WobbleFriction returns the friction coefficient per unit length of tendon
// due to unintentional curvatures.
func (d *DuctSystem) WobbleFriction() (float64, error) { return d.getFloat("WobbleFriction") }

// SetWobbleFriction sets the friction coefficient per unit length of tendon
// due to unintentional curvatures.
func (d *DuctSystem) SetWobbleFriction(value float64) error {
	return d.setFloat("WobbleFriction", value)
}

// AngularFriction returns the friction coefficient per angular change of
// tendon for use with intentional curvatures.
func (d *DuctSystem) AngularFriction() (float64, error) { return d.getFloat("AngularFriction") }

// SetAngularFriction sets the friction coefficient per angular change of
// tendon.
func (d *DuctSystem) SetAngularFriction(value float64) error {
	return d.setFloat("AngularFriction", value)
}

// DuctHeight returns the height of an individual duct.
func (d *DuctSystem) DuctHeight() (float64, error) { return d.getFloat("DuctHeight") }

// SetDuctHeight sets the height of an individual duct.
func (d *DuctSystem) SetDuctHeight(value float64) error { return d.setFloat("DuctHeight", value) }

// DuctShape returns the shape of the duct (round, flat or oval).
func (d *DuctSystem) DuctShape() (DuctShape, error) {
	return getIntEnum(&d.Data, ductShapes, "DuctShape")
}

// SetDuctShape sets the shape of the duct.
func (d *DuctSystem) SetDuctShape(value DuctShape) error {
	return setIntEnum(&d.Data, ductShapes, "DuctShape", value)
}

// DuctType returns the type of the duct.
func (d *DuctSystem) DuctType() (DuctType, error) {
	return getIntEnum(&d.Data, ductTypes, "DuctType")
}

// SetDuctType sets the type of the duct.
func (d *DuctSystem) SetDuctType(value DuctType) error {
	return setIntEnum(&d.Data, ductTypes, "DuctType", value)
}

// Delete removes this duct system from the model. The last duct system in a
// model cannot be deleted.
func (d *DuctSystem) Delete() error {
	all, err := d.model.DuctSystems()
	if err != nil {
		return err
	}
	systems, err := all.DuctSystems()
	if err != nil {
		return err
	}
	if len(systems) == 1 {
		return &protocol.InvalidValueError{Message: "cannot delete last DuctSystem in Model"}
	}
	return d.deleteData()
}

// DuctSystems is the catalog of duct systems. It is a singleton which always
// exists in every model, available through Model.DuctSystems.
type DuctSystems struct {
	Data
}

func newDuctSystems(uid int, m *Model) *DuctSystems {
	return &DuctSystems{Data: newData(uid, m, "DuctSystems")}
}

// DuctSystems returns all of the duct systems in the model.
func (d *DuctSystems) DuctSystems() ([]*DuctSystem, error) {
	return entitiesAs[*DuctSystem](d.getChildrenOfType("DuctSystem"))
}

// AddDuctSystem creates a new duct system with the given name. Names must be
// unique within the catalog.
func (d *DuctSystems) AddDuctSystem(name string) (*DuctSystem, error) {
	return entityAs[*DuctSystem](d.addUniqueNamedChild("DuctSystem", name))
}

// DuctSystem returns the duct system with the given name, or an error if none
// exists.
func (d *DuctSystems) DuctSystem(name string) (*DuctSystem, error) {
	return entityAs[*DuctSystem](d.getNamedChildOfType(name, "DuctSystem"))
}

// PT SYSTEM

// PTSystem represents a post-tensioning system in the model, combining a
// strand material, an anchor system and a duct system.
//
// To create a new system use PTSystems.AddPTSystem; to list all systems use
// PTSystems.PTSystems.
type PTSystem struct {
	Data
}

func newPTSystem(uid int, m *Model) *PTSystem {
	return &PTSystem{Data: newData(uid, m, "PTSystem")}
}

// StrandMaterial returns the strand material in this PT system.
func (p *PTSystem) StrandMaterial() (*StrandMaterial, error) {
	return entityAs[*StrandMaterial](p.getEntity("StrandMaterial"))
}

// SetStrandMaterial sets the strand material in this PT system. The material
// cannot be nil.
func (p *PTSystem) SetStrandMaterial(value *StrandMaterial) error {
	if value == nil {
		return &protocol.InvalidValueError{Message: "StrandMaterial cannot be nil"}
	}
	return p.setEntity("StrandMaterial", value)
}

// AnchorSystem returns the anchor system in this PT system.
func (p *PTSystem) AnchorSystem() (*AnchorSystem, error) {
	return entityAs[*AnchorSystem](p.getEntity("AnchorSystem"))
}

// SetAnchorSystem sets the anchor system in this PT system. The system cannot
// be nil.
func (p *PTSystem) SetAnchorSystem(value *AnchorSystem) error {
	if value == nil {
		return &protocol.InvalidValueError{Message: "AnchorSystem cannot be nil"}
	}
	return p.setEntity("AnchorSystem", value)
}

// DuctSystem returns the duct system in this PT system.
func (p *PTSystem) DuctSystem() (*DuctSystem, error) {
	return entityAs[*DuctSystem](p.getEntity("DuctSystem"))
}

// SetDuctSystem sets the duct system in this PT system. The system cannot be
// nil.
func (p *PTSystem) SetDuctSystem(value *DuctSystem) error {
	if value == nil {
		return &protocol.InvalidValueError{Message: "DuctSystem cannot be nil"}
	}
	return p.setEntity("DuctSystem", value)
}

// Fse returns the final effective stress of strand. Not used if modeling
// jacks.
func (p *PTSystem) Fse() (float64, error) { return p.getFloat("Fse") }

// SetFse sets the final effective stress of strand.
func (p *PTSystem) SetFse(value float64) error { return p.setFloat("Fse", value) }

// LongTermLosses returns the lump-sum long-term losses used in calculating
// effective tendon stresses.
func (p *PTSystem) LongTermLosses() (float64, error) { return p.getFloat("LongTermLosses") }

// SetLongTermLosses sets the lump-sum long-term losses.
func (p *PTSystem) SetLongTermLosses(value float64) error {
	return p.setFloat("LongTermLosses", value)
}

// MinCurvatureRadius returns the minimum radius of curvature acceptable for
// this PT system.
func (p *PTSystem) MinCurvatureRadius() (float64, error) { return p.getFloat("MinRadius") }

// SetMinCurvatureRadius sets the minimum radius of curvature acceptable for
// this PT system.
func (p *PTSystem) SetMinCurvatureRadius(value float64) error {
	return p.setFloat("MinRadius", value)
}

// Delete removes this PT system from the model. The last PT system in a model
// cannot be deleted.
func (p *PTSystem) Delete() error {
	all, err := p.model.PTSystems()
	if err != nil {
		return err
	}
	systems, err := all.PTSystems()
	if err != nil {
		return err
	}
	if len(systems) == 1 {
		return &protocol.InvalidValueError{Message: "cannot delete last PTSystem in Model"}
	}
	return p.deleteData()
}

// PTSystems is the catalog of PT systems. It is a singleton which always
// exists in every model, available through Model.PTSystems.
type PTSystems struct {
	Data
}

func newPTSystems(uid int, m *Model) *PTSystems {
	return &PTSystems{Data: newData(uid, m, "PTSystems")}
}

// PTSystems returns all of the PT systems in the model.
func (p *PTSystems) PTSystems() ([]*PTSystem, error) {
	return entitiesAs[*PTSystem](p.getChildrenOfType("PTSystem"))
}

// AddPTSystem creates a new PT system with the given name and assigns it the
// first strand material, duct system and anchor system in the model. Names
// must be unique within the catalog.
func (p *PTSystems) AddPTSystem(name string) (*PTSystem, error) {
	system, err := entityAs[*PTSystem](p.addUniqueNamedChild("PTSystem", name))
	if err != nil {
		return nil, err
	}
	strandCatalog, err := p.model.StrandMaterials()
	if err != nil {
		return nil, err
	}
	strands, err := strandCatalog.StrandMaterials()
	if err != nil {
		return nil, err
	}
	ductCatalog, err := p.model.DuctSystems()
	if err != nil {
		return nil, err
	}
	ducts, err := ductCatalog.DuctSystems()
	if err != nil {
		return nil, err
	}
	anchorCatalog, err := p.model.AnchorSystems()
	if err != nil {
		return nil, err
	}
	anchors, err := anchorCatalog.AnchorSystems()
	if err != nil {
		return nil, err
	}
	if err := system.SetStrandMaterial(strands[0]); err != nil {
		return nil, err
	}
	if err := system.SetDuctSystem(ducts[0]); err != nil {
		return nil, err
	}
	if err := system.SetAnchorSystem(anchors[0]); err != nil {
		return nil, err
	}
	return system, nil
}

// PTSystem returns the PT system with the given name, or an error if none
// exists.
func (p *PTSystems) PTSystem(name string) (*PTSystem, error) {
	return entityAs[*PTSystem](p.getNamedChildOfType(name, "PTSystem"))
}
