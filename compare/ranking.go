// SPDX-License-Identifier: MIT

package compare

import (
	"sort"

	"github.com/katalvlaran/linsolve/solver"
)

// DisplayScore is the ranking score: the family-weighted step score
// multiplied by the static efficiency baseline (which is already zero for
// non-converged iterative runs). It intentionally differs from the
// best-method selection score, which ignores efficiency — both formulas
// are preserved as-is to keep established outputs stable.
func DisplayScore(m Metric) float64 {
	weight := directScoreWeight
	if m.Kind == solver.KindIterative {
		if !m.Converged {
			return 0
		}
		weight = iterativeScoreWeight
	}

	return m.Efficiency * weight / float64(m.Steps+1)
}

// Ranking sorts the supplied metrics descending by DisplayScore.
//
// The result is a permutation of the input's values. Missing methods are
// simply absent — Ranking ranks whatever it is given. Ties preserve the
// fixed methodOrder (direct methods first), so the output is deterministic.
//
// Complexity: O(m log m) for m metrics.
func Ranking(metrics map[MethodKey]Metric) []Metric {
	// Gather in methodOrder first so that sort stability resolves ties
	// deterministically.
	ranked := make([]Metric, 0, len(metrics))
	for _, key := range methodOrder {
		if m, ok := metrics[key]; ok {
			ranked = append(ranked, m)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return DisplayScore(ranked[i]) > DisplayScore(ranked[j])
	})

	return ranked
}
