// Package compare runs every solver in the engine on one system and scores
// the outcomes.
//
// Overview:
//
//   - Compare executes all five methods (Gauss, partial pivoting,
//     Gauss-Jordan, Jacobi, Gauss-Seidel) sequentially on the same (A, b),
//     derives a Metric per method and selects a recommended method with a
//     canned, human-readable reason.
//   - Ranking recomputes a display score (the best-method score weighted by
//     the static efficiency baseline) and sorts all methods descending.
//   - Condition estimates the 2-norm condition number of A so a boundary
//     can warn about ill-conditioned systems before solving.
//
// Scoring policy:
//
//   - Complexity labels and efficiency baselines are static configuration
//     data keyed by method identity — deliberately not derived from
//     measurements, so the policy stays inspectable and swappable.
//   - Best-method selection scores direct methods as 1000/(steps+1) and
//     converged iterative methods as 500/(steps+1) (0 otherwise); the
//     ranking score additionally multiplies by the efficiency baseline.
//     The two formulas intentionally differ — they reproduce the product's
//     established outputs and are kept separate rather than unified.
//   - Ties keep the first method in the fixed evaluation order (direct
//     methods before iterative), so results are reproducible.
//
// The five solver calls share no mutable state and are safe to parallelize;
// they are issued sequentially here for deterministic simplicity.
package compare
