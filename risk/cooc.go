package risk

import "math"

const coocEpsilon = 2.220446049250313e-16

// Cooc estimates the probability that the robot and a moving object
// occupy the same cell at the same time, given the object's signed
// distance-to-goal lambdaI, the robot's distance-to-goal lambdaR,
// their speeds vI/vR, and a cell-size-like sampling interval delta.
//
// Ported from pnf_cooc.c's pnf_cooc_detail: the five-piece
// left/bothleft/middle/bothright/right decomposition over the
// half-open intervals of (v1, v2) against (−vI, 0, vI), each weighted
// by a (N−1)/N finite-sampling correction. Degenerate or non-finite
// inputs short-circuit to 0, matching the original's boundguard.
func Cooc(lambdaI, lambdaR, vI, vR, delta float64) float64 {
	lambdaR = math.Abs(lambdaR)
	vI = math.Abs(vI)
	vR = math.Abs(vR)
	delta = math.Abs(delta)

	if !finiteAndPositive(lambdaR) || !finiteAndPositive(vI) ||
		!finiteAndPositive(vR) || !finiteAndPositive(delta) ||
		!finiteNonzero(lambdaI) || math.IsNaN(lambdaI) {
		return 0
	}

	t := lambdaR / vR
	n := t/(delta/vR) + 0.5
	v1 := (lambdaI - delta/2) / t
	v2 := (lambdaI + delta/2) / t

	corr := (n - 1) / n
	pLeft := (v1+vI)/vI + corr*(v1*v1-vI*vI)/(2*vI*vI)
	pBothLeft := (v2-v1)/vI + corr*(v2*v2-v1*v1)/(2*vI*vI)
	pMiddle := (v2-v1)/vI - corr*(v2*v2+v1*v1)/(2*vI*vI)
	pBothRight := (v2-v1)/vI - corr*(v2*v2-v1*v1)/(2*vI*vI)
	pRight := (vI-v2)/vI - corr*(vI*vI-v2*v2)/(2*vI*vI)

	var cooc float64
	if v1 < -vI && -vI < v2 && v2 < 0 {
		cooc += pLeft
	}
	if -vI <= v1 && v1 < 0 && -vI <= v2 && v2 < 0 {
		cooc += pBothLeft
	}
	if -vI <= v1 && v1 < 0 && 0 <= v2 && v2 < vI {
		cooc += pMiddle
	}
	if 0 <= v1 && v1 < vI && 0 <= v2 && v2 < vI {
		cooc += pBothRight
	}
	if 0 <= v1 && v1 < vI && vI <= v2 {
		cooc += pRight
	}

	switch {
	case math.IsNaN(cooc):
		return 0
	case cooc < 0:
		return 0
	case cooc > 1:
		return 1
	}
	return cooc
}

func finiteAndPositive(v float64) bool {
	return v > coocEpsilon && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func finiteNonzero(v float64) bool {
	if math.IsNaN(v) {
		return false
	}
	if v >= 0 {
		return v > coocEpsilon && !math.IsInf(v, 1)
	}
	return v < -coocEpsilon && !math.IsInf(v, -1)
}
