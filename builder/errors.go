package builder

import "errors"

// ErrTooFewElements indicates a topology's size parameter (n, n1, n2) is
// smaller than the minimum that topology requires.
var ErrTooFewElements = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a constructor could not complete without
// violating a metagraph invariant (e.g. an edge outside the generating set).
var ErrConstructFailed = errors.New("builder: construction failed")
