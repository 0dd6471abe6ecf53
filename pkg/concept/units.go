/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: units.go
Description: Unit system handle. The API operates in the same unit system as
the UI, so scripts typically capture the current settings, switch to an API
unit system, and restore the original settings before saving.
*/

package concept

// Units controls the unit system of a model. It is a singleton available
// through Model.Units.
//
// The API operates using the same unit system as the UI, and the methods
// here affect both. Generally you will want to call GetUnits after opening
// the file and store the return value, call SetUSAPIUnits or SetSIAPIUnits
// to select the unit system for the API to use, and call SetUnits before
// closing and saving the file to restore the original state. For newly
// created files, set one of the user unit systems so users see a reasonable
// set of units.
type Units struct {
	Data
}

func newUnits(uid int, m *Model) *Units {
	return &Units{Data: newData(uid, m, "Units")}
}

// SetUSUserUnits sets the unit system to a reasonable default for projects
// using customary US units.
func (u *Units) SetUSUserUnits() error {
	_, err := u.command("[RESET_UNITS][us]")
	return err
}

// SetSIUserUnits sets the unit system to a reasonable default for projects
// using SI units.
func (u *Units) SetSIUserUnits() error {
	_, err := u.command("[RESET_UNITS][si]")
	return err
}

// SetMKSUserUnits sets the unit system to a reasonable default for projects
// using MKS units.
func (u *Units) SetMKSUserUnits() error {
	_, err := u.command("[RESET_UNITS][MKS]")
	return err
}

// SetUSAPIUnits sets a consistent US unit system intended for API use:
// lengths in inches, angles in degrees, forces and masses in pounds, time in
// seconds and temperatures in Fahrenheit. Areas are then square inches,
// stresses psi, and so on.
func (u *Units) SetUSAPIUnits() error {
	_, err := u.command("[RESET_UNITS][us_api]")
	return err
}

// SetSIAPIUnits sets a consistent SI unit system intended for API use:
// lengths in meters, angles in degrees, forces in Newtons, masses in
// kilograms, time in seconds and temperatures in Celsius. Areas are then
// square meters, stresses Pascals, and so on.
func (u *Units) SetSIAPIUnits() error {
	_, err := u.command("[RESET_UNITS][si_api]")
	return err
}

// GetUnits returns the current unit settings. The return value is only
// intended for use with SetUnits; the pair lets you restore the units in a
// file after modifying them.
func (u *Units) GetUnits() (string, error) {
	return u.command("[GET_UNITS]")
}

// SetUnits restores the unit settings to the given value, which must have
// been returned from GetUnits.
func (u *Units) SetUnits(unitSettings string) error {
	_, err := u.command("[SET_UNITS][" + unitSettings + "]")
	return err
}
