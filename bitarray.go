/* SPDX-License-Identifier: BSD-2-Clause */

// Package bitarray implements fixed-length arrays of bits packed into
// bytes, with bulk bitwise logic, logical shifts, lexicographic
// comparison, and modular increment/decrement.
//
// Bit 0 is the most significant bit of byte 0; indices advance from
// most to least significant within each byte, then byte to byte. The
// packed bytes therefore read as an unsigned big-endian integer, which
// is the order used by the comparison and arithmetic operations.
//
// A BitArray is not safe for concurrent use. Callers sharing an
// instance across goroutines must provide their own synchronization.
package bitarray

import (
	"fmt"
)

const unitBits = 8 // width of one storage byte

// byteIndex returns the index of the storage byte holding bit i.
func byteIndex(i int) int { return i / unitBits }

// bitMask returns the mask selecting bit i within its storage byte.
func bitMask(i int) byte { return 1 << (unitBits - 1 - i%unitBits) }

// bytesForBits returns the number of storage bytes needed for n bits.
func bytesForBits(n int) int { return (n + unitBits - 1) / unitBits }

// BitArray is a fixed-length sequence of bits. The length is set at
// construction and never changes; every mutating operation works in
// place on the packed storage.
type BitArray struct {
	bits  []byte
	nbits int
}

// New returns a BitArray of n bits, all zero. It panics if n is
// negative.
func New(n int) *BitArray {
	if n < 0 {
		panic("bitarray: negative bit count")
	}
	return &BitArray{bits: make([]byte, bytesForBits(n)), nbits: n}
}

// NewFromBytes returns a BitArray of n bits backed by a copy of b.
// The slice must hold exactly as many bytes as n bits require;
// otherwise ErrBadLength is returned. Storage bits beyond bit n-1 in
// the last byte are zeroed.
func NewFromBytes(b []byte, n int) (*BitArray, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative bit count %d", ErrBadLength, n)
	}
	if len(b) != bytesForBits(n) {
		return nil, fmt.Errorf("%w: %d bytes cannot hold exactly %d bits", ErrBadLength, len(b), n)
	}
	a := &BitArray{bits: append([]byte(nil), b...), nbits: n}
	a.clearSpare()
	return a, nil
}

// Size returns the number of usable bits.
func (a *BitArray) Size() int { return a.nbits }

// Bytes returns a copy of the packed storage, most significant byte
// first.
func (a *BitArray) Bytes() []byte { return append([]byte(nil), a.bits...) }

// Copy returns an independent copy of a.
func (a *BitArray) Copy() *BitArray {
	return &BitArray{bits: append([]byte(nil), a.bits...), nbits: a.nbits}
}

// Get reports whether bit i is set. It panics if i is out of range.
func (a *BitArray) Get(i int) bool {
	if i < 0 || i >= a.nbits {
		panic(fmt.Sprintf("bitarray: index %d out of range [0:%d]", i, a.nbits))
	}
	return a.bits[byteIndex(i)]&bitMask(i) != 0
}

// Set sets bit i to 1. Out-of-range indices are ignored.
func (a *BitArray) Set(i int) {
	if i < 0 || i >= a.nbits {
		return
	}
	a.bits[byteIndex(i)] |= bitMask(i)
}

// Clear sets bit i to 0. Out-of-range indices are ignored.
func (a *BitArray) Clear(i int) {
	if i < 0 || i >= a.nbits {
		return
	}
	a.bits[byteIndex(i)] &^= bitMask(i)
}

// SetTo sets bit i to v. Out-of-range indices are ignored.
func (a *BitArray) SetTo(i int, v bool) {
	if v {
		a.Set(i)
	} else {
		a.Clear(i)
	}
}

// clearSpare zeroes the storage bits past the last usable bit so that
// whole-byte comparison and arithmetic stay consistent.
func (a *BitArray) clearSpare() {
	if r := a.nbits % unitBits; r != 0 {
		a.bits[len(a.bits)-1] &= 0xFF << (unitBits - r)
	}
}
