/* SPDX-License-Identifier: BSD-2-Clause */

package bitarray

import "errors"

var (
	// ErrSizeMismatch is returned when two arrays of different bit
	// counts are combined or assigned.
	ErrSizeMismatch = errors.New("bitarray: size mismatch")

	// ErrBadLength is returned by NewFromBytes when the byte slice
	// cannot hold exactly the requested number of bits.
	ErrBadLength = errors.New("bitarray: bad byte length")
)
