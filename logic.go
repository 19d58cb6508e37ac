/* SPDX-License-Identifier: BSD-2-Clause */

package bitarray

import "fmt"

// SetAll sets every usable bit to 1. Spare bits in the last byte stay
// zero.
func (a *BitArray) SetAll() {
	for i := range a.bits {
		a.bits[i] = 0xFF
	}
	a.clearSpare()
}

// ClearAll sets every bit to 0.
func (a *BitArray) ClearAll() {
	for i := range a.bits {
		a.bits[i] = 0
	}
}

// Negate complements every usable bit in place. Spare bits in the last
// byte stay zero.
func (a *BitArray) Negate() {
	for i := range a.bits {
		a.bits[i] = ^a.bits[i]
	}
	a.clearSpare()
}

// sameSize rejects operands with a different bit count.
func (a *BitArray) sameSize(op string, other *BitArray) error {
	if a.nbits != other.nbits {
		debugLog("operand size mismatch", op, a.nbits, other.nbits)
		return fmt.Errorf("%w: %s on %d and %d bits", ErrSizeMismatch, op, a.nbits, other.nbits)
	}
	return nil
}

// AndWith replaces a with the bitwise AND of a and other. It returns
// ErrSizeMismatch, leaving a unchanged, if the sizes differ.
func (a *BitArray) AndWith(other *BitArray) error {
	if err := a.sameSize("and", other); err != nil {
		return err
	}
	for i := range a.bits {
		a.bits[i] &= other.bits[i]
	}
	return nil
}

// OrWith replaces a with the bitwise OR of a and other. It returns
// ErrSizeMismatch, leaving a unchanged, if the sizes differ.
func (a *BitArray) OrWith(other *BitArray) error {
	if err := a.sameSize("or", other); err != nil {
		return err
	}
	for i := range a.bits {
		a.bits[i] |= other.bits[i]
	}
	return nil
}

// XorWith replaces a with the bitwise XOR of a and other. It returns
// ErrSizeMismatch, leaving a unchanged, if the sizes differ.
func (a *BitArray) XorWith(other *BitArray) error {
	if err := a.sameSize("xor", other); err != nil {
		return err
	}
	for i := range a.bits {
		a.bits[i] ^= other.bits[i]
	}
	return nil
}

// Assign copies other's bits into a. It returns ErrSizeMismatch,
// leaving a unchanged, if the sizes differ.
func (a *BitArray) Assign(other *BitArray) error {
	if err := a.sameSize("assign", other); err != nil {
		return err
	}
	copy(a.bits, other.bits)
	return nil
}

// And returns a new array holding the bitwise AND of a and other.
// Both operands are left unchanged.
func (a *BitArray) And(other *BitArray) (*BitArray, error) {
	r := a.Copy()
	if err := r.AndWith(other); err != nil {
		return nil, err
	}
	return r, nil
}

// Or returns a new array holding the bitwise OR of a and other.
// Both operands are left unchanged.
func (a *BitArray) Or(other *BitArray) (*BitArray, error) {
	r := a.Copy()
	if err := r.OrWith(other); err != nil {
		return nil, err
	}
	return r, nil
}

// Xor returns a new array holding the bitwise XOR of a and other.
// Both operands are left unchanged.
func (a *BitArray) Xor(other *BitArray) (*BitArray, error) {
	r := a.Copy()
	if err := r.XorWith(other); err != nil {
		return nil, err
	}
	return r, nil
}

// Not returns a new array holding the complement of a, which is left
// unchanged.
func (a *BitArray) Not() *BitArray {
	r := a.Copy()
	r.Negate()
	return r
}
