package vector

// Cell is one optional value of a vector: OK is false for a missing cell.
type Cell struct {
	Value any
	OK    bool
}

// Missing is the canonical missing cell.
var Missing = Cell{}

// Present wraps a value in a present cell.
func Present(v any) Cell {
	return Cell{Value: v, OK: true}
}

// Vector is an opaque materialized vector. The index layer never inspects
// cells; it only threads vectors through plans by position.
type Vector interface {
	Len() int
}

// Builder is implemented by the vector layer. The index builder calls
// CreateMissing when an operation (aggregate, group-by, resample) computes
// its result cells eagerly, and the series layer calls Build to evaluate
// the plans the index builder emits.
type Builder interface {
	// CreateMissing builds a vector from optional cells.
	CreateMissing(cells []Cell) Vector
	// Build evaluates a plan against the given input vectors, where
	// Return{k} refers to inputs[k].
	Build(plan Node, inputs []Vector) Vector
}
