// Package overlay holds the single merge rule shared by payslip and shift
// reconciliation: an authoritative value wins over a locally derived one,
// field by field, never as an all-or-nothing switch.
package overlay

// Value returns *authoritative when it is present, otherwise derived.
func Value[T any](authoritative *T, derived T) T {
	if authoritative != nil {
		return *authoritative
	}
	return derived
}

// Ptr is Value for optional outputs: a present authoritative pointer
// replaces the derived pointer.
func Ptr[T any](authoritative, derived *T) *T {
	if authoritative != nil {
		return authoritative
	}
	return derived
}
