/* SPDX-License-Identifier: BSD-2-Clause */

package bitarray

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes the packed storage to w as two-digit uppercase
// hexadecimal byte values, space-separated, in storage order. A
// zero-length array writes nothing. The format is a stable debug
// rendering, not a serialization contract; use Bytes for that.
func (a *BitArray) Dump(w io.Writer) error {
	for i, b := range a.bits {
		sep := " "
		if i == 0 {
			sep = ""
		}
		if _, err := fmt.Fprintf(w, "%s%02X", sep, b); err != nil {
			return err
		}
	}
	return nil
}

// String returns the Dump rendering.
func (a *BitArray) String() string {
	var sb strings.Builder
	_ = a.Dump(&sb) // strings.Builder writes cannot fail
	return sb.String()
}
