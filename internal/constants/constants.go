package constants

// Pagination defaults. Pages are zero-based; there is deliberately no upper
// bound on the page size.
const (
	DefaultPage     = 0
	DefaultPageSize = 10
)
