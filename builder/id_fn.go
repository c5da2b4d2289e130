package builder

import (
	"strconv"

	"github.com/dinesharanathunga/mgtoolkit/core"
)

// IDFn generates an element identifier from its zero-based index. It
// must be pure and deterministic: the same idx always yields the same
// core.Element.
type IDFn func(idx int) core.Element

// DefaultIDFn returns the decimal string of idx, e.g. 0 -> "0", 42 -> "42".
func DefaultIDFn(idx int) core.Element {
	return core.Element(strconv.Itoa(idx))
}

// PrefixedIDFn returns prefix+decimal index, e.g. PrefixedIDFn("x")(0) -> "x0".
func PrefixedIDFn(prefix string) IDFn {
	return func(idx int) core.Element {
		return core.Element(prefix + strconv.Itoa(idx))
	}
}
