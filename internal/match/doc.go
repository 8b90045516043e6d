// Package match pairs anomalies from two inspection surveys.
//
// The pipeline runs in five steps: candidate edges are generated inside a
// spatial window and scored with a weighted cost, the candidate graph is
// partitioned into connected components with union-find, each component gets
// a minimum-cost assignment from the Kuhn-Munkres solver on a padded square
// matrix, the resolver re-checks hard feasibility limits on the raw deltas
// and demotes infeasible pairs, and a stability probe re-runs everything with
// a slightly widened window to measure how sensitive the matching is to that
// parameter.
//
// Optimization and feasibility are deliberately separate stages: the solver
// finds the globally cheapest assignment and the resolver is the only gate
// that rejects pairs. Hard limits never feed the cost matrix.
//
// The whole pipeline is deterministic for identical inputs and configuration,
// including solver tie-breaks, so two runs can be compared pair-for-pair.
package match
