// SPDX-License-Identifier: MIT

// Package compare: method identities, metric types and the static scoring
// tables. Everything here is configuration data, not computed logic — the
// scoring policy lives in plain package-level tables on purpose.
package compare

import "github.com/katalvlaran/linsolve/solver"

// MethodKey identifies one solver in metrics, results and rankings.
type MethodKey string

// The five methods under comparison.
const (
	// MethodGauss — Gaussian elimination without pivoting.
	MethodGauss MethodKey = "gauss"
	// MethodPivot — Gaussian elimination with partial pivoting.
	MethodPivot MethodKey = "pivoting"
	// MethodJordan — Gauss-Jordan elimination to RREF.
	MethodJordan MethodKey = "gaussJordan"
	// MethodJacobi — Jacobi fixed-point iteration.
	MethodJacobi MethodKey = "jacobi"
	// MethodSeidel — Gauss-Seidel fixed-point iteration.
	MethodSeidel MethodKey = "seidel"
)

/// methodOrder fixes the evaluation and tie-breaking order: direct methods
// are checked before iterative ones, and earlier entries win score ties.
var methodOrder = []MethodKey{MethodGauss, MethodPivot, MethodJordan, MethodJacobi, MethodSeidel}

/// Score weights: direct traces are denser than iterative ones, so the two
// families are scored on different scales before comparison.
const (
	directScoreWeight    = 1000.0
	iterativeScoreWeight = 500.0
)

// Complexity labels (fixed, not measured).
const (
	directComplexity    = "O(n³)"
	iterativeComplexity = "O(n²) per iteration"
)

// profile is the static per-method scoring configuration.
type profile struct {
	name           string      // display name
	kind           solver.Kind // algorithm family
	timeComplexity string      // fixed complexity label
	efficiency     float64     // baseline efficiency (converged case for iterative)
	advantage      string      // one-line selling point
	description    string      // one-line method summary
}

// profiles is the single source of truth for the static metric fields.
// Iterative efficiencies apply only when the method converged; a
// non-converged run is scored 0.
var profiles = map[MethodKey]profile{
	MethodGauss: {
		name:           "Gauss Elimination",
		kind:           solver.KindDirect,
		timeComplexity: directComplexity,
		efficiency:     1.0,
		advantage:      "Fastest direct method for small dense systems",
		description:    "Forward elimination to triangular form, then back substitution",
	},
	MethodPivot: {
		name:           "Gauss Elimination (Partial Pivoting)",
		kind:           solver.KindDirect,
		timeComplexity: directComplexity,
		efficiency:     0.95,
		advantage:      "Numerically stable on systems with small or zero leading pivots",
		description:    "Gauss elimination with max-magnitude row selection per column",
	},
	MethodJordan: {
		name:           "Gauss-Jordan Elimination",
		kind:           solver.KindDirect,
		timeComplexity: directComplexity,
		efficiency:     0.85,
		advantage:      "No back substitution; solution read directly off the RREF",
		description:    "Two-sided elimination with pivot normalization to the identity",
	},
	MethodJacobi: {
		name:           "Jacobi Iteration",
		kind:           solver.KindIterative,
		timeComplexity: iterativeComplexity,
		efficiency:     0.7,
		advantage:      "Embarrassingly parallel sweeps; minimal memory traffic",
		description:    "Fixed-point relaxation using only the previous iterate",
	},
	MethodSeidel: {
		name:           "Gauss-Seidel Iteration",
		kind:           solver.KindIterative,
		timeComplexity: iterativeComplexity,
		efficiency:     0.8,
		advantage:      "Typically converges faster than Jacobi on dominant systems",
		description:    "In-place relaxation using freshly updated components",
	},
}

// reasons holds the canned recommendation sentences, keyed by the winning
// method. Iterative entries have a converged and a non-converged variant;
// direct entries use a single sentence.
var reasons = map[MethodKey]struct{ converged, fallback string }{
	MethodGauss: {
		converged: "Gauss elimination reached the solution in the fewest steps for this system.",
	},
	MethodPivot: {
		converged: "Partial pivoting solved this system efficiently while guarding against small pivots.",
	},
	MethodJordan: {
		converged: "Gauss-Jordan reduced this system directly to the identity with a compact trace.",
	},
	MethodJacobi: {
		converged: "Jacobi iteration converged within tolerance in very few sweeps on this system.",
		fallback:  "Jacobi iteration did not converge; prefer a direct method for this system.",
	},
	MethodSeidel: {
		converged: "Gauss-Seidel converged within tolerance in very few sweeps on this system.",
		fallback:  "Gauss-Seidel did not converge; prefer a direct method for this system.",
	},
}

// Metric summarizes one method's run on a given system.
type Metric struct {
	// Key identifies the method.
	Key MethodKey
	// Name is the display name from the static profile.
	Name string
	// Kind reports the algorithm family.
	Kind solver.Kind
	// Steps is the recorded trace length.
	Steps int
	// Solution is the method's computed x (an independent copy).
	Solution []float64
	// Converged reports the tolerance outcome (iterative only; false for
	// direct methods, which do not iterate).
	Converged bool
	// TimeComplexity is the fixed complexity label.
	TimeComplexity string
	// Efficiency is the static baseline, zeroed for non-converged
	// iterative runs.
	Efficiency float64
	// Advantage is the profile's one-line selling point.
	Advantage string
	// Description is the profile's one-line method summary.
	Description string
}

// Comparison is the full outcome of running every method on one system.
type Comparison struct {
	// Best is the recommended method.
	Best MethodKey
	// Reason is the canned recommendation sentence for Best.
	Reason string
	// Metrics maps every method to its derived metric.
	Metrics map[MethodKey]Metric
	// Results maps every method to its complete solve result and trace.
	Results map[MethodKey]*solver.Result
}
