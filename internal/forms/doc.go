// Package forms validates user-submitted form input.
//
// Each form has one validation function returning either the validated
// values or a map of field-level error messages. Bad input is an expected
// branch of the submitting handler, never an error return.
package forms
