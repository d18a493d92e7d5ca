// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"

	"github.com/katalvlaran/linsolve/direct"
	"github.com/katalvlaran/linsolve/iterative"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

// Compare runs all five solvers on (a, b) and scores the outcomes.
//
// Implementation:
//   - Stage 1: validate the system shape once at the boundary.
//   - Stage 2: run every method in methodOrder (direct first), collecting
//     the full results and deriving a Metric per method.
//   - Stage 3: select the best method by the family-weighted step score;
//     ties keep the earliest method in methodOrder.
//
// The five calls share no mutable state — each solver works on its own
// copies — so they could run in parallel; they are sequential here for
// deterministic simplicity.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch.
//
// Complexity: five solves, O(n³) dominated by the direct family.
func Compare(a matrix.Matrix, b []float64) (*Comparison, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}

	results := make(map[MethodKey]*solver.Result, len(methodOrder))
	metrics := make(map[MethodKey]Metric, len(methodOrder))
	for _, key := range methodOrder {
		res, err := runMethod(key, a, b)
		if err != nil {
			// Shape was validated above; a failure here is a programming
			// error surfaced verbatim.
			return nil, fmt.Errorf("Compare(%s): %w", key, err)
		}
		results[key] = res
		metrics[key] = buildMetric(key, res)
	}

	best := selectBest(metrics)

	return &Comparison{
		Best:    best,
		Reason:  reasonFor(best, metrics[best].Converged),
		Metrics: metrics,
		Results: results,
	}, nil
}

// runMethod dispatches one solver with its default options.
func runMethod(key MethodKey, a matrix.Matrix, b []float64) (*solver.Result, error) {
	switch key {
	case MethodGauss:
		return direct.Gauss(a, b)
	case MethodPivot:
		return direct.GaussPivot(a, b)
	case MethodJordan:
		return direct.GaussJordan(a, b)
	case MethodJacobi:
		return iterative.Jacobi(a, b, nil)
	default:
		return iterative.GaussSeidel(a, b, nil)
	}
}

// buildMetric merges the static profile with the run outcome. The solution
// is copied so metrics never alias result state.
func buildMetric(key MethodKey, res *solver.Result) Metric {
	p := profiles[key]

	eff := p.efficiency
	if p.kind == solver.KindIterative && !res.Converged {
		eff = 0 // a run that never converged earns no efficiency credit
	}

	sol := make([]float64, len(res.Solution))
	copy(sol, res.Solution)

	return Metric{
		Key:            key,
		Name:           p.name,
		Kind:           p.kind,
		Steps:          len(res.Steps),
		Solution:       sol,
		Converged:      res.Converged,
		TimeComplexity: p.timeComplexity,
		Efficiency:     eff,
		Advantage:      p.advantage,
		Description:    p.description,
	}
}

// bestScore is the selection score: family weight over (steps+1). It
// deliberately ignores the efficiency baseline — see the package doc for
// why the two scoring formulas differ.
func bestScore(m Metric) float64 {
	if m.Kind == solver.KindIterative {
		if !m.Converged {
			return 0
		}

		return iterativeScoreWeight / float64(m.Steps+1)
	}

	return directScoreWeight / float64(m.Steps+1)
}

// selectBest scans methodOrder and keeps the first method with the strictly
// highest score, so ties resolve to the earliest (direct-first) entry.
func selectBest(metrics map[MethodKey]Metric) MethodKey {
	best := methodOrder[0]
	bestVal := bestScore(metrics[best])
	for _, key := range methodOrder[1:] {
		if s := bestScore(metrics[key]); s > bestVal {
			best, bestVal = key, s
		}
	}

	return best
}

// reasonFor returns the canned sentence for the winning method. Direct
// winners have a single sentence; iterative winners pick the variant
// matching their convergence outcome.
func reasonFor(key MethodKey, converged bool) string {
	r := reasons[key]
	if profiles[key].kind == solver.KindIterative && !converged {
		return r.fallback
	}

	return r.converged
}
