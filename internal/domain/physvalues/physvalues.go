// Package physvalues provides the read-only physical-constants lookup
// table consumed by numeric evaluation. It is a collaborator, not part
// of the core algebra: the core only ever reaches it through the
// Provider interface, so callers are free to substitute their own table.
// Seeded from original_source's physicsvalues.rs.
package physvalues

// Provider is a read-only mapping from a variable name to its
// double-precision value, consulted by internal/domain/numeric when a
// leaf isn't supplied directly by the caller's override map.
type Provider interface {
	Lookup(name string) (float64, bool)
}

// Table is a small map-backed Provider.
type Table map[string]float64

// Lookup implements Provider.
func (t Table) Lookup(name string) (float64, bool) {
	v, ok := t[name]
	return v, ok
}

// Standard returns the seeded table of common physical constants. It is
// illustrative, not exhaustive — callers needing a fuller table supply
// their own Provider.
func Standard() Table {
	return Table{
		"g":           9.81,
		"\\hbar":      1.054571817e-34,
		"m_e":         9.1093837015e-31,
		"m_p":         1.67262158e-27,
		"m_n":         1.67492749804e-27,
		"e_0":         1.602176634e-19,
		"a_0":         5.29177210903e-11,
		"\\epsilon_0": 8.8541878128e-12,
		"\\mu_0":      1.25663706212e-6,
		"c":           299792458.0,
		"h":           6.62607015e-34,
		"G":           6.6743015e-11,
		"k_e":         8.9875517923e9,
		"k_B":         1.380649e-23,
		"\\sigma":     5.670374419e-8,
		"R":           8.31446261815324,
		"M_{\\odot}":  1.988416e30,
		"R_{\\odot}":  6.95700e8,
		"M_{\\oplus}": 5.972e24,
		"R_{\\oplus}": 6371e3,
	}
}
