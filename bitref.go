/* SPDX-License-Identifier: BSD-2-Clause */

package bitarray

// BitRef refers to one bit of a BitArray for write-through assignment.
// The zero value refers to nothing and assigning through it does
// nothing.
type BitRef struct {
	arr *BitArray
	idx int
}

// Bit returns a reference to bit i. The reference stays valid for the
// lifetime of the array; the index is range-checked at assignment
// time, not here.
func (a *BitArray) Bit(i int) BitRef {
	return BitRef{arr: a, idx: i}
}

// Assign sets the referenced bit to v. A missing backing array or an
// out-of-range index makes this a no-op.
func (r BitRef) Assign(v bool) {
	if r.arr == nil || r.idx < 0 || r.idx >= r.arr.nbits {
		return
	}
	r.arr.SetTo(r.idx, v)
}
