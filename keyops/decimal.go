package keyops

import "github.com/shopspring/decimal"

// DecimalString returns a capability record for keys that are decimal
// numbers in string form (e.g. "1.50"), compared by numeric value with
// arbitrary precision. Strings that do not parse as decimals are
// Incomparable. The string form keeps the key usable for hashing while
// "1.5" and "1.50" remain distinct keys that compare equal.
func DecimalString() Ops[string] {
	return Ops[string]{
		Compare: func(a, b string) int {
			da, err := decimal.NewFromString(a)
			if err != nil {
				return Incomparable
			}
			db, err := decimal.NewFromString(b)
			if err != nil {
				return Incomparable
			}
			return da.Cmp(db)
		},
		Ordered: true,
	}
}
