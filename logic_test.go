/* SPDX-License-Identifier: BSD-2-Clause */

package bitarray

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// mustFromBytes builds a fixture array or fails the test.
func mustFromBytes(t *testing.T, b []byte, n int) *BitArray {
	t.Helper()
	ba, err := NewFromBytes(b, n)
	require.NoError(t, err)
	return ba
}

func TestSetAllClearAll(t *testing.T) {
	for _, n := range []int{1, 8, 12, 128} {
		ba := New(n)

		ba.SetAll()
		for i := 0; i < n; i++ {
			require.True(t, ba.Get(i), "bit %d after SetAll on %d bits", i, n)
		}

		ba.ClearAll()
		for i := 0; i < n; i++ {
			require.False(t, ba.Get(i), "bit %d after ClearAll on %d bits", i, n)
		}
	}
}

func TestSetAllKeepsSpareBitsZero(t *testing.T) {
	ba := New(12)
	ba.SetAll()
	require.Equal(t, []byte{0xFF, 0xF0}, ba.Bytes())
}

func TestNegateIsAnInvolution(t *testing.T) {
	ba := mustFromBytes(t, []byte{0xA5, 0x30}, 12)
	orig := ba.Copy()

	ba.Negate()
	require.Equal(t, []byte{0x5A, 0xC0}, ba.Bytes()) // spare nibble stays 0

	ba.Negate()
	require.True(t, ba.Equal(orig))
}

// 4-bit fixtures 1010 and 0110: and 0010, or 1110, xor 1100.
func TestBitwiseTruthTables(t *testing.T) {
	a := mustFromBytes(t, []byte{0xA0}, 4)
	b := mustFromBytes(t, []byte{0x60}, 4)

	and, err := a.And(b)
	require.NoError(t, err)
	require.Equal(t, []byte{0x20}, and.Bytes())

	or, err := a.Or(b)
	require.NoError(t, err)
	require.Equal(t, []byte{0xE0}, or.Bytes())

	xor, err := a.Xor(b)
	require.NoError(t, err)
	require.Equal(t, []byte{0xC0}, xor.Bytes())

	// operands unchanged by the value-returning operators
	require.Equal(t, []byte{0xA0}, a.Bytes())
	require.Equal(t, []byte{0x60}, b.Bytes())
}

func TestBitwiseCommutes(t *testing.T) {
	a := mustFromBytes(t, []byte{0xDE, 0xAD}, 16)
	b := mustFromBytes(t, []byte{0xBE, 0xEF}, 16)

	ab, err := a.And(b)
	require.NoError(t, err)
	ba, err := b.And(a)
	require.NoError(t, err)
	require.True(t, ab.Equal(ba))

	ab, err = a.Xor(b)
	require.NoError(t, err)
	ba, err = b.Xor(a)
	require.NoError(t, err)
	require.True(t, ab.Equal(ba))
}

func TestXorWithSelfClears(t *testing.T) {
	ba := mustFromBytes(t, []byte{0xCA, 0xFE}, 16)
	require.NoError(t, ba.XorWith(ba))
	require.True(t, ba.Equal(New(16)))
}

func TestNotLeavesOperandUnchanged(t *testing.T) {
	ba := mustFromBytes(t, []byte{0x0F}, 8)
	not := ba.Not()
	require.Equal(t, []byte{0xF0}, not.Bytes())
	require.Equal(t, []byte{0x0F}, ba.Bytes())
}

func TestAssign(t *testing.T) {
	src := mustFromBytes(t, []byte{0x12, 0x34}, 16)
	dst := New(16)

	require.NoError(t, dst.Assign(src))
	require.True(t, dst.Equal(src))

	// the copy is deep
	src.Set(15)
	require.False(t, dst.Get(15))
}

func TestSizeMismatchRejected(t *testing.T) {
	a := New(16)
	a.SetAll()
	before := a.Bytes()
	b := New(8)

	require.ErrorIs(t, a.AndWith(b), ErrSizeMismatch)
	require.ErrorIs(t, a.OrWith(b), ErrSizeMismatch)
	require.ErrorIs(t, a.XorWith(b), ErrSizeMismatch)
	require.ErrorIs(t, a.Assign(b), ErrSizeMismatch)
	require.Equal(t, before, a.Bytes(), "rejected operations must not touch the receiver")

	_, err := a.And(b)
	require.ErrorIs(t, err, ErrSizeMismatch)
	_, err = a.Or(b)
	require.ErrorIs(t, err, ErrSizeMismatch)
	_, err = a.Xor(b)
	require.ErrorIs(t, err, ErrSizeMismatch)
}

func TestSizeMismatchIsLogged(t *testing.T) {
	var got []string
	SetLogger(LogFunc(func(level, msg string, args ...any) {
		got = append(got, level+" "+msg)
	}))
	defer SetLogger(nil)

	_ = New(8).AndWith(New(16))
	require.Equal(t, []string{"DEBUG operand size mismatch"}, got)
}

func TestZeroLengthOperations(t *testing.T) {
	a := New(0)
	b := New(0)

	a.SetAll()
	a.ClearAll()
	a.Negate()
	a.Increment()
	a.Decrement()
	a.ShiftLeft(3)
	a.ShiftRight(3)
	require.NoError(t, a.Assign(b))
	require.NoError(t, a.XorWith(b))
	require.True(t, a.Equal(b))
	require.Equal(t, 0, a.Size())
}
