/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: model.go
Description: Model handle for the single open file in a Concept process. The
model is a hierarchical container of server-side objects; this handle exposes
the singleton roots (cad manager, calc options, material and PT-system
catalogs, units, signs), the whole-model operations, and the framework entry
points that wrap server uids in typed handles.
*/

package concept

import (
	"strconv"
	"time"

	"github.com/kleascm/concept-client/pkg/bracket"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// Model represents the in-memory (opened or never-saved) file in a Concept
// process. At most one Model is open per Concept at any time; Models are only
// constructed via Concept.NewModel and Concept.OpenFile.
type Model struct {
	concept *Concept
}

// MODEL INITIALIZATION/SETUP OPERATIONS

// SetupNewModel sets up a fresh model for the given design code and structure
// type. Intended to be called immediately after Concept.NewModel.
func (m *Model) SetupNewModel(code DesignCode, structure StructureType) error {
	codeInternal, err := designCodes.internal(code)
	if err != nil {
		return err
	}
	structureInternal, err := structureTypes.internal(structure)
	if err != nil {
		return err
	}
	_, err = m.command("[SETUP_NEW_MODEL]["+codeInternal+"]["+structureInternal+"]", 0)
	return err
}

// MAJOR MODEL OPERATIONS

// CalcAll calculates everything (except mesh, vibration and long-term
// deflections) in the model. A zero timeout uses the transport default.
func (m *Model) CalcAll(timeout time.Duration) error {
	_, err := m.command("[CALC_ALL]", timeout)
	return err
}

// GenerateMesh regenerates the mesh using the model's meshing parameters (see
// CalcOptions.SetDesiredElementSize).
func (m *Model) GenerateMesh() error {
	_, err := m.command("[GENERATE_MESH]", 0)
	return err
}

// FILE OPERATIONS

// CloseModel closes this model in the Concept process without saving. The
// handle is not useful for anything after closing.
func (m *Model) CloseModel() error {
	if _, err := m.command("[CLOSE_MODEL]", 0); err != nil {
		return err
	}
	m.concept.modelClosed(m)
	return nil
}

// SaveFile saves this model to the given file path.
func (m *Model) SaveFile(path string) error {
	_, err := m.command("[SAVE_FILE]["+path+"]", 0)
	return err
}

// SINGLETON ACCESS

// CadManager returns the singleton that manages all the CAD layers.
func (m *Model) CadManager() (*CadManager, error) {
	return entityAs[*CadManager](m.dataFromKey("$CAD_MANAGER"))
}

// CalcOptions returns the singleton that manages most calculation options.
func (m *Model) CalcOptions() (*CalcOptions, error) {
	return entityAs[*CalcOptions](m.dataFromKey("$CALC_OPTIONS"))
}

// Concretes returns the singleton that manages all the concrete mixes.
func (m *Model) Concretes() (*Concretes, error) {
	return entityAs[*Concretes](m.dataFromKey("$CONCRETES"))
}

// StrandMaterials returns the singleton that manages all the strand materials.
func (m *Model) StrandMaterials() (*StrandMaterials, error) {
	return entityAs[*StrandMaterials](m.dataFromKey("$STRAND_MATERIALS"))
}

// AnchorSystems returns the singleton that manages all the anchor systems.
func (m *Model) AnchorSystems() (*AnchorSystems, error) {
	return entityAs[*AnchorSystems](m.dataFromKey("$ANCHOR_SYSTEMS"))
}

// DuctSystems returns the singleton that manages all the duct systems.
func (m *Model) DuctSystems() (*DuctSystems, error) {
	return entityAs[*DuctSystems](m.dataFromKey("$DUCT_SYSTEMS"))
}

// PTSystems returns the singleton that manages all the post-tensioning
// systems.
func (m *Model) PTSystems() (*PTSystems, error) {
	return entityAs[*PTSystems](m.dataFromKey("$PT_SYSTEMS"))
}

// Signs returns the singleton that manages sign conventions.
func (m *Model) Signs() (*Signs, error) {
	return entityAs[*Signs](m.dataFromKey("$SIGNS"))
}

// Units returns the singleton that manages unit settings.
func (m *Model) Units() (*Units, error) {
	return entityAs[*Units](m.dataFromKey("$UNITS"))
}

// CORE COMMAND OPERATION

// command sends the command to the Concept process. For exclusive use by the
// framework.
func (m *Model) command(cmd string, timeout time.Duration) (string, error) {
	return m.concept.command(cmd, timeout)
}

// DATA CREATION/WRAPPING OPERATIONS

// getData wraps the given uid (integer string, or special $-key) in a typed
// handle. An empty string returns nil. Handles are never reused or cached.
func (m *Model) getData(uidOrKey string) (Entity, error) {
	if uidOrKey == "" {
		return nil, nil
	}
	if uidOrKey[0] == '$' {
		return m.dataFromKey(uidOrKey)
	}

	uid, err := strconv.Atoi(uidOrKey)
	if err != nil {
		return nil, &protocol.InternalError{Message: "unexpected uid string: " + uidOrKey}
	}
	return m.dataFromUID(uid)
}

// getDatas wraps each of the given uids; empty uids become nil slots.
func (m *Model) getDatas(uidsOrKeys []string) ([]Entity, error) {
	entities := make([]Entity, 0, len(uidsOrKeys))
	for _, uidOrKey := range uidsOrKeys {
		entity, err := m.getData(uidOrKey)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// getDatasFromBracketString wraps the uids in the given bracket string.
func (m *Model) getDatasFromBracketString(uidBracketString string) ([]Entity, error) {
	tokens, err := bracket.Parse(uidBracketString)
	if err != nil {
		return nil, err
	}
	return m.getDatas(tokens)
}

// INTERNAL DATA CREATION OPERATIONS

// dataFromUID asks the server for the wire type of the uid and creates the
// matching typed handle.
func (m *Model) dataFromUID(uid int) (Entity, error) {
	dataType, err := m.command("[WITH_TARGET]["+strconv.Itoa(uid)+"][[GET_TYPE]]", 0)
	if err != nil {
		return nil, err
	}
	return newEntityForType(dataType, uid, m)
}

// dataFromKey creates the typed handle corresponding to a special key value
// (usually starting with $).
func (m *Model) dataFromKey(key string) (Entity, error) {
	uidString, err := m.command("[GET_UID_FOR_KEY]["+key+"]", 0)
	if err != nil {
		return nil, err
	}
	uid, err := strconv.Atoi(uidString)
	if err != nil {
		return nil, &protocol.InternalError{Message: "unexpected uid string for key " + key + ": " + uidString}
	}
	return m.dataFromUID(uid)
}
