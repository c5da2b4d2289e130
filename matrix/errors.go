package matrix

import "github.com/dinesharanathunga/mgtoolkit/core"

// errIncompatible builds the core.Error raised when two matrices are
// combined over generating sets that are not identical.
func errIncompatible(argument string) error {
	return core.NewError(core.Inconsistency, argument, "not_identical")
}

// errDimensionMismatch builds the core.Error raised when two matrices
// cannot be multiplied because their shared dimension disagrees.
func errDimensionMismatch(argument string) error {
	return core.NewError(core.Inconsistency, argument, "structures_incompatible")
}
