package builder

// CenterElement is the fixed hub element used by Star and Wheel.
const CenterElement = "Center"

// Minimum sizes for each topology, mirroring the shapes they name: a
// cycle needs at least a triangle, a wheel needs a ring of at least 3
// plus its hub, and so on.
const (
	MinPathElements      = 2
	MinStarElements      = 2
	MinCycleElements     = 3
	MinWheelElements     = 4
	MinCompleteElements  = 1
	MinPartitionElements = 1
)
