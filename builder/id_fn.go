package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a station index to its name. It must be injective.
type IDFn func(idx int) string

// DefaultIDFn names stations "S0", "S1", ...
func DefaultIDFn(idx int) string {
	return "S" + strconv.Itoa(idx)
}

// PrefixIDFn names stations prefix+idx.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnIDFn names stations "A".."Z", "AA", "AB", ... Panics on idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var out []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		out = append(out, byte('A'+i%26))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}
