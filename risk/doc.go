// Package risk implements the probabilistic, multi-wavefront risk
// fusion pipeline: environment and per-object distance fields, a
// closed-form encounter-probability estimator, a static
// buffer-zone risk function, and a pluggable RiskMap that turns
// combined collision risk into kernel meta for a final probabilistic
// navigation function (PNF).
//
// What: composes several facade.Facade instances that share grid
// geometry — one for distance-to-obstacle, one per moving object, one
// for the robot — into a single workspace risk field, then re-maps
// that field to meta and propagates a last Facade from the goal
// region.
//
// Why: a single wavefront only ever answers "cost to nearest goal
// under one traversability map"; estimating collision risk against
// moving objects needs several independent distance fields combined
// through a probability model before a final wavefront can treat risk
// as cost.
//
// Complexity: each Facade's propagation is O(n log n) in cells; the
// pipeline runs one such propagation per participant (environment, one
// per object, robot, final PNF) to quiescence, so overall cost is
// linear in the number of participants.
//
// Errors: malformed RiskMap names are reported via ErrUnknownRiskMap;
// numerically degenerate Cooc inputs are absorbed and reported as zero
// risk rather than propagated as NaN/Inf.
package risk
