/* SPDX-License-Identifier: BSD-2-Clause */

package bitarray

// lastByteWeights returns the all-usable-bits-set value and the weight
// of the least significant usable bit for the final storage byte. When
// the bit count is not a multiple of eight, the usable bits occupy
// only the top of that byte, so "one" carries a larger weight there.
func (a *BitArray) lastByteWeights() (maxVal, one byte) {
	if r := a.nbits % unitBits; r != 0 {
		return 0xFF << (unitBits - r), 1 << (unitBits - r)
	}
	return 0xFF, 1
}

// Increment adds one to the array read as an unsigned big-endian
// integer of Size() bits. Overflow past the top bit rolls over to
// zero. Incrementing a zero-length array does nothing.
func (a *BitArray) Increment() {
	if len(a.bits) == 0 {
		return
	}
	maxVal, one := a.lastByteWeights()
	for i := len(a.bits) - 1; i >= 0; i-- {
		if a.bits[i] != maxVal {
			a.bits[i] += one
			return
		}
		// carry into the next byte, which uses all eight bits
		a.bits[i] = 0
		maxVal, one = 0xFF, 1
	}
}

// Decrement subtracts one from the array read as an unsigned
// big-endian integer of Size() bits. Underflow below zero rolls over
// to all usable bits set. Decrementing a zero-length array does
// nothing.
func (a *BitArray) Decrement() {
	if len(a.bits) == 0 {
		return
	}
	maxVal, one := a.lastByteWeights()
	for i := len(a.bits) - 1; i >= 0; i-- {
		if a.bits[i] >= one {
			a.bits[i] -= one
			return
		}
		// borrow from the next byte, which uses all eight bits
		a.bits[i] = maxVal
		maxVal, one = 0xFF, 1
	}
}
