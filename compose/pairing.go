package compose

import (
	"math"

	"github.com/arloliu/evseq/dataset"
)

// pairer returns the index of the candidate paired with target i.
type pairer func(i int, target *dataset.Sequence) int

// Weights returns the feature-mode pairing distribution of target over
// candidates.
//
// A candidate starting at or before target.TStop gets weight 0. Otherwise
// the weight is exp(-gap²) with gap = candidate.TStart - target.TStop,
// multiplied by exp(-‖Δfeature‖²) when both sequences carry features of the
// same dimension. Differing labels force the weight to 0. The weights are
// normalized to sum to 1; when they are all zero the uniform distribution is
// returned. An empty candidate list yields nil.
func Weights(target dataset.Sequence, candidates []dataset.Sequence) []float64 {
	if len(candidates) == 0 {
		return nil
	}

	w := make([]float64, len(candidates))
	sum := 0.0
	for j := range candidates {
		w[j] = weight(&target, &candidates[j])
		sum += w[j]
	}

	if sum > 0 && !math.IsInf(sum, 0) && !math.IsNaN(sum) {
		for j := range w {
			w[j] /= sum
		}

		return w
	}

	uniform := 1 / float64(len(w))
	for j := range w {
		w[j] = uniform
	}

	return w
}

func weight(target, candidate *dataset.Sequence) float64 {
	if candidate.TStart <= target.TStop {
		return 0
	}

	gap := candidate.TStart - target.TStop
	w := math.Exp(-gap * gap)

	if target.HasFeature() && candidate.HasFeature() && len(target.Feature) == len(candidate.Feature) {
		dist := 0.0
		for k := range target.Feature {
			d := target.Feature[k] - candidate.Feature[k]
			dist += d * d
		}
		w *= math.Exp(-dist)
	}

	if target.LabelsDiffer(*candidate) {
		return 0
	}

	return w
}

// randomPairer draws one permutation of the candidates and pairs target i
// with perm[i mod len(candidates)].
func (c *Composer) randomPairer(numCandidates int) pairer {
	perm := c.rng.Perm(numCandidates)

	return func(i int, _ *dataset.Sequence) int {
		return perm[i%len(perm)]
	}
}

// featurePairer samples a candidate from Weights for every target.
func (c *Composer) featurePairer(candidates []dataset.Sequence) pairer {
	return func(_ int, target *dataset.Sequence) int {
		return c.draw(Weights(*target, candidates))
	}
}

// draw samples an index from the normalized distribution p by inverse CDF.
func (c *Composer) draw(p []float64) int {
	u := c.rng.Float64()
	acc := 0.0
	last := 0
	for j, pj := range p {
		if pj <= 0 {
			continue
		}
		acc += pj
		last = j
		if u < acc {
			return j
		}
	}

	// floating point residue: the cumulative sum may stop just below 1
	return last
}

func (c *Composer) pairerFor(mode Mode, candidates []dataset.Sequence) pairer {
	if mode == ModeFeature {
		return c.featurePairer(candidates)
	}

	return c.randomPairer(len(candidates))
}
