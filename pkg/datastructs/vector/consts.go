package vector

const (
	// initialCapacity is the capacity the first growth of an empty vector allocates
	// when fewer slots are requested.
	initialCapacity = 5

	// growthFactor multiplies the current capacity on each reallocation.
	growthFactor = 2

	// headerSize is the size of the binary encoding header: element count
	// followed by element size, both big-endian uint64.
	headerSize = 16
)
