/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: signs.go
Description: Sign convention handle. The API operates in the same sign
convention as the UI, so scripts typically capture the current settings,
switch to the all-positive convention, and restore the original settings
before saving.
*/

package concept

// Signs controls the sign convention of a model. It is a singleton available
// through Model.Signs.
//
// The API operates using the same sign convention as the UI, and the methods
// here affect both. Generally you will want to call GetSigns after opening
// the file and store the return value, call SetPositiveSigns to make all
// values positive in the positive axis directions, and call SetSigns before
// closing and saving the file to restore the original state. For newly
// created files, call SetStandardSigns prior to closing and saving.
type Signs struct {
	Data
}

func newSigns(uid int, m *Model) *Signs {
	return &Signs{Data: newData(uid, m, "Signs")}
}

// SetPositiveSigns sets the sign convention to all positive: forces positive
// in positive axis directions, moments and rotations positive by the
// right-hand rule, displacements positive along positive axes, sagging
// moments positive and tensile stresses positive.
func (s *Signs) SetPositiveSigns() error {
	_, err := s.command("[RESET_SIGNS][all_positive]")
	return err
}

// SetStandardSigns sets the user sign convention (also used by the API) to
// one that feels natural to most users.
func (s *Signs) SetStandardSigns() error {
	_, err := s.command("[RESET_SIGNS][standard]")
	return err
}

// GetSigns returns the current sign settings. The return value is only
// intended for use with SetSigns; the pair lets you restore the signs in a
// file after modifying them.
func (s *Signs) GetSigns() (string, error) {
	return s.command("[GET_SIGNS]")
}

// SetSigns restores the sign settings to the given value, which must have
// been returned from GetSigns.
func (s *Signs) SetSigns(signSettings string) error {
	_, err := s.command("[SET_SIGNS][" + signSettings + "]")
	return err
}
