package index

import "framix/deepsize"

// Stat summarizes an index for diagnostics.
type Stat struct {
	Keys    int
	Ordered bool
	// Memory is the estimated deep footprint of the index in bytes,
	// including the key array and lookup table.
	Memory int64
}

// StatOf measures an index.
func StatOf[K comparable](ix *Index[K]) Stat {
	return Stat{
		Keys:    ix.Len(),
		Ordered: ix.IsOrdered(),
		Memory:  deepsize.Of(ix),
	}
}
