package carver

import "math/rand"

// defaultRNGSeed is used when callers pass seed == 0, keeping the zero-value
// configuration reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// pickUniform returns an element of candidates chosen uniformly at random.
// rand.Intn rejects the biased tail of the source range, so every candidate
// is equally likely. Panics on an empty slice.
func pickUniform(r *rand.Rand, candidates []int) int {
	if len(candidates) == 0 {
		panic("carver: pickUniform: no candidates")
	}
	return candidates[r.Intn(len(candidates))]
}
