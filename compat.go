package bitarray

import (
	"fmt"
)

// API contract compile-time checks.
var (
	_ fmt.Stringer = (*BitArray)(nil)
	_ Logger       = (LogFunc)(nil)
)
