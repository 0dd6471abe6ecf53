/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: column.go
Description: Column handle and its default (template) variant. Columns are
always located on the structure layer.
*/

package concept

import (
	"github.com/kleascm/concept-client/pkg/geometry"
	"github.com/kleascm/concept-client/pkg/protocol"
)

// Column represents a column drawn on the structure layer.
type Column struct {
	ConcreteSupport
}

func newColumnNamed(uid int, m *Model, typeName string) *Column {
	return &Column{ConcreteSupport: newConcreteSupport(uid, m, typeName)}
}

func newColumn(uid int, m *Model) *Column {
	return newColumnNamed(uid, m, "Column")
}

// B returns the width of the column. If zero, the column is round.
func (c *Column) B() (float64, error) { return c.getFloat("B") }

// SetB sets the width of the column.
func (c *Column) SetB(value float64) error { return c.setFloat("B", value) }

// D returns the depth of the column (diameter if B is zero).
func (c *Column) D() (float64, error) { return c.getFloat("D") }

// SetD sets the depth of the column.
func (c *Column) SetD(value float64) error { return c.setFloat("D", value) }

// IFactor returns the bending stiffness multiplier ("crack factor").
func (c *Column) IFactor() (float64, error) { return c.getFloat("IFactor") }

// SetIFactor sets the bending stiffness multiplier.
func (c *Column) SetIFactor(value float64) error { return c.setFloat("IFactor", value) }

// Angle returns the plan view angle of the column. At zero, the B dimension
// is along the x-axis.
func (c *Column) Angle() (float64, error) { return c.getFloat("Angle") }

// SetAngle sets the plan view angle of the column.
func (c *Column) SetAngle(value float64) error { return c.setFloat("Angle", value) }

// Roller reports whether the far end of the column is free to move laterally.
func (c *Column) Roller() (bool, error) { return c.getBool("Roller") }

// SetRoller sets whether the far end of the column is free to move laterally.
func (c *Column) SetRoller(value bool) error { return c.setBool("Roller", value) }

// Location returns the location of the column.
func (c *Column) Location() (geometry.Point2D, error) { return c.pointLocation() }

// DefaultColumn is the template whose properties new columns copy. There is
// always exactly one, accessed through CadManager.DefaultColumn; it has no
// location and cannot be deleted.
type DefaultColumn struct {
	Column
}

func newDefaultColumn(uid int, m *Model) *DefaultColumn {
	return &DefaultColumn{Column: *newColumnNamed(uid, m, "DefaultColumn")}
}

// Delete is not supported for default entities.
func (c *DefaultColumn) Delete() error {
	return &protocol.ReadOnlyError{Message: "delete is not supported for default CadEntities"}
}
