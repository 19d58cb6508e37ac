/* SPDX-License-Identifier: BSD-2-Clause */

package bitarray

// ShiftLeft shifts every bit n positions toward bit 0, zero-filling
// the vacated low-order positions. Bits shifted past bit 0 are
// discarded. Shifting by Size() or more clears the array; n <= 0 does
// nothing.
func (a *BitArray) ShiftLeft(n int) {
	if n <= 0 || len(a.bits) == 0 {
		return
	}
	if n >= a.nbits {
		a.ClearAll()
		return
	}
	whole, rem := n/unitBits, n%unitBits

	if whole > 0 {
		copy(a.bits, a.bits[whole:])
		for i := len(a.bits) - whole; i < len(a.bits); i++ {
			a.bits[i] = 0
		}
	}

	// ripple the sub-byte remainder one bit at a time, pulling the
	// boundary-crossing bit up from the following byte
	last := len(a.bits) - 1
	for s := 0; s < rem; s++ {
		for j := 0; j < last; j++ {
			a.bits[j] <<= 1
			if a.bits[j+1]&0x80 != 0 {
				a.bits[j] |= 0x01
			}
		}
		a.bits[last] <<= 1
	}
}

// ShiftRight shifts every bit n positions away from bit 0, zero-filling
// the vacated high-order positions. Bits shifted past the last usable
// bit are discarded. Shifting by Size() or more clears the array;
// n <= 0 does nothing.
func (a *BitArray) ShiftRight(n int) {
	if n <= 0 || len(a.bits) == 0 {
		return
	}
	if n >= a.nbits {
		a.ClearAll()
		return
	}
	whole, rem := n/unitBits, n%unitBits

	if whole > 0 {
		for i := len(a.bits) - 1; i-whole >= 0; i-- {
			a.bits[i] = a.bits[i-whole]
		}
		for i := 0; i < whole; i++ {
			a.bits[i] = 0
		}
	}

	// ripple the sub-byte remainder one bit at a time, pushing the
	// boundary-crossing bit down from the preceding byte
	last := len(a.bits) - 1
	for s := 0; s < rem; s++ {
		for j := last; j > 0; j-- {
			a.bits[j] >>= 1
			if a.bits[j-1]&0x01 != 0 {
				a.bits[j] |= 0x80
			}
		}
		a.bits[0] >>= 1
	}

	// bits shifted into the spare region are gone
	a.clearSpare()
}
