package keyops

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collated returns a capability record for string keys ordered under the
// collation rules of the given language tag, so e.g. a German-keyed index
// sorts "ä" next to "a" rather than after "z".
func Collated(tag language.Tag, opts ...collate.Option) Ops[string] {
	c := collate.New(tag, opts...)
	return Ops[string]{
		Compare: func(a, b string) int {
			return c.CompareString(a, b)
		},
		Ordered: true,
	}
}
