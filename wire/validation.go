package wire

import "errors"

// Validator accumulates errors found while validating a frame's size
// fields against its actual buffer length. The zero value is ready to use.
type Validator struct {
	accum []error
}

// AddError appends err to the validator's error accumulator.
func (v *Validator) AddError(err error) {
	v.accum = append(v.accum, err)
}

// HasError reports whether any error has been accumulated.
func (v *Validator) HasError() bool { return len(v.accum) > 0 }

// Err returns the accumulated errors joined into one, or nil if none.
func (v *Validator) Err() error {
	if len(v.accum) == 0 {
		return nil
	}
	return errors.Join(v.accum...)
}

// ErrPop returns the first accumulated error, or nil if none, and clears
// all accumulated errors; any errors after the first are discarded.
func (v *Validator) ErrPop() error {
	if len(v.accum) == 0 {
		return nil
	}
	err := v.accum[0]
	v.accum = v.accum[:0]
	return err
}

// Reset clears the accumulated errors for reuse.
func (v *Validator) Reset() { v.accum = v.accum[:0] }
