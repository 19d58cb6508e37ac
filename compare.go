/* SPDX-License-Identifier: BSD-2-Clause */

package bitarray

import "bytes"

// Comparisons are defined per pair of equal-sized arrays, ordering the
// packed bytes as unsigned big-endian integers. Mismatched sizes give
// a defined result rather than an error: Equal reports false, NotEqual
// reports true, and all four orderings report false. The asymmetry
// between NotEqual and the orderings is deliberate and part of the
// documented contract.

// Equal reports whether a and other have the same size and identical
// bits.
func (a *BitArray) Equal(other *BitArray) bool {
	if a.nbits != other.nbits {
		return false
	}
	return bytes.Equal(a.bits, other.bits)
}

// NotEqual reports whether a and other differ in size or in any bit.
func (a *BitArray) NotEqual(other *BitArray) bool {
	return !a.Equal(other)
}

// Less reports whether a orders strictly before other. Mismatched
// sizes report false.
func (a *BitArray) Less(other *BitArray) bool {
	if a.nbits != other.nbits {
		return false
	}
	return bytes.Compare(a.bits, other.bits) < 0
}

// LessOrEqual reports whether a orders before or equal to other.
// Mismatched sizes report false.
func (a *BitArray) LessOrEqual(other *BitArray) bool {
	if a.nbits != other.nbits {
		return false
	}
	return bytes.Compare(a.bits, other.bits) <= 0
}

// Greater reports whether a orders strictly after other. Mismatched
// sizes report false.
func (a *BitArray) Greater(other *BitArray) bool {
	if a.nbits != other.nbits {
		return false
	}
	return bytes.Compare(a.bits, other.bits) > 0
}

// GreaterOrEqual reports whether a orders after or equal to other.
// Mismatched sizes report false.
func (a *BitArray) GreaterOrEqual(other *BitArray) bool {
	if a.nbits != other.nbits {
		return false
	}
	return bytes.Compare(a.bits, other.bits) >= 0
}
