/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: calc_options.go
Description: Calculation options handle. A single CalcOptions exists in every
model and is accessible through Model.CalcOptions.
*/

package concept

// CalcOptions holds the calculation options for a model.
type CalcOptions struct {
	Data
}

func newCalcOptions(uid int, m *Model) *CalcOptions {
	return &CalcOptions{Data: newData(uid, m, "CalcOptions")}
}

// AutoXYStabilize reports whether the structure is automatically stabilized
// in the x- and y-directions.
func (c *CalcOptions) AutoXYStabilize() (bool, error) { return c.getBool("AutoXYStabilize") }

// SetAutoXYStabilize sets whether the structure is automatically stabilized
// in the x- and y-directions.
func (c *CalcOptions) SetAutoXYStabilize(value bool) error {
	return c.setBool("AutoXYStabilize", value)
}

// CreateViewableSelfDeadLoading reports whether viewable loads are created on
// the self-dead loading layer.
func (c *CalcOptions) CreateViewableSelfDeadLoading() (bool, error) {
	return c.getBool("CreateViewableSelfDeadLdg")
}

// SetCreateViewableSelfDeadLoading sets whether viewable loads are created on
// the self-dead loading layer.
func (c *CalcOptions) SetCreateViewableSelfDeadLoading(value bool) error {
	return c.setBool("CreateViewableSelfDeadLdg", value)
}

// ZeroTensionIterations returns the number of iterations used in zero-tension
// analysis.
func (c *CalcOptions) ZeroTensionIterations() (int, error) {
	return c.getInt("ZeroTensionIterations")
}

// SetZeroTensionIterations sets the number of iterations used in zero-tension
// analysis.
func (c *CalcOptions) SetZeroTensionIterations(value int) error {
	return c.setInt("ZeroTensionIterations", value)
}

// ZeroTensionAcceleratorPower returns the exponent used in determining the
// zero-tension accelerator factor.
func (c *CalcOptions) ZeroTensionAcceleratorPower() (float64, error) {
	return c.getFloat("ZeroTensionAcceleratorPower")
}

// SetZeroTensionAcceleratorPower sets the exponent used in determining the
// zero-tension accelerator factor.
func (c *CalcOptions) SetZeroTensionAcceleratorPower(value float64) error {
	return c.setFloat("ZeroTensionAcceleratorPower", value)
}

// ZeroTensionMaxAccelerator returns the maximum limiting value for the
// zero-tension accelerator factor.
func (c *CalcOptions) ZeroTensionMaxAccelerator() (float64, error) {
	return c.getFloat("ZeroTensionMaxAccelerator")
}

// SetZeroTensionMaxAccelerator sets the maximum limiting value for the
// zero-tension accelerator factor.
func (c *CalcOptions) SetZeroTensionMaxAccelerator(value float64) error {
	return c.setFloat("ZeroTensionMaxAccelerator", value)
}

// SupportsAboveInSelfDead reports whether the weight of supports above is
// considered in the self-dead loading.
func (c *CalcOptions) SupportsAboveInSelfDead() (bool, error) {
	return c.getBool("SupportsAboveInSelfDead")
}

// SetSupportsAboveInSelfDead sets whether the weight of supports above is
// considered in the self-dead loading.
func (c *CalcOptions) SetSupportsAboveInSelfDead(value bool) error {
	return c.setBool("SupportsAboveInSelfDead", value)
}

// ConsiderTendonComponentInPunchCheckReaction reports whether the vertical
// component of the tendons is considered in punching shear calculations.
func (c *CalcOptions) ConsiderTendonComponentInPunchCheckReaction() (bool, error) {
	return c.getBool("ConsiderTendonComponentInPunchCheckReaction")
}

// SetConsiderTendonComponentInPunchCheckReaction sets whether the vertical
// component of the tendons is considered in punching shear calculations.
func (c *CalcOptions) SetConsiderTendonComponentInPunchCheckReaction(value bool) error {
	return c.setBool("ConsiderTendonComponentInPunchCheckReaction", value)
}

// CheckCapacityOnly reports whether calculations are limited to checking
// capacity, without designing reinforcement.
func (c *CalcOptions) CheckCapacityOnly() (bool, error) { return c.getBool("CheckCapacityOnly") }

// SetCheckCapacityOnly sets whether calculations are limited to checking
// capacity.
func (c *CalcOptions) SetCheckCapacityOnly(value bool) error {
	return c.setBool("CheckCapacityOnly", value)
}

// DesiredElementSize returns the desired plan-dimension size for slab
// elements.
func (c *CalcOptions) DesiredElementSize() (float64, error) {
	return c.getFloat("DesiredElementSize")
}

// SetDesiredElementSize sets the desired plan-dimension size for slab
// elements.
func (c *CalcOptions) SetDesiredElementSize(value float64) error {
	return c.setFloat("DesiredElementSize", value)
}
