package noise

// Rand32 is a small deterministic PRNG with 32 bits of state (mulberry32).
// The mixing constants (0x6D2B79F5 increment, 15/7/14 shifts, |1 and |61
// multiplier masks) are part of the contract: permutation tables built from a
// given seed must stay stable across releases, so the exact output sequence
// is pinned by golden tests.
type Rand32 struct {
	state uint32
}

func NewRand32(seed uint32) *Rand32 {
	return &Rand32{state: seed}
}

// Next advances the state and returns a value in [0, 1).
func (r *Rand32) Next() float64 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return float64(z^(z>>14)) / 4294967296.0
}

// PermTable is a 512-entry gradient permutation table. The first 256 entries
// are a seeded shuffle of 0..255; the second half duplicates the first so
// hash chains of the form perm[x+perm[y+perm[z]]] never index out of range
// and periodic lattice artifacts are reduced.
type PermTable [512]int

// NewPermTable builds a table from the PRNG's sequence: sequential init,
// Fisher-Yates over the first half, then duplication.
func NewPermTable(rng *Rand32) PermTable {
	var p PermTable
	for i := 0; i < 256; i++ {
		p[i] = i
	}
	for i := 255; i > 0; i-- {
		j := int(rng.Next() * float64(i+1))
		p[i], p[j] = p[j], p[i]
	}
	for i := 0; i < 256; i++ {
		p[i+256] = p[i]
	}
	return p
}
