// Package entropyweight implements the entropy-weight method for objective
// multi-criteria weighting.
//
// Given a table of M evaluated objects (rows) by N indicators (columns), an
// indicator whose values are spread unevenly across objects carries more
// information and receives a larger weight:
//
//	xᵢⱼ  min-max normalised per column (skipped with WithPreNormalized)
//	pᵢⱼ  = xᵢⱼ / Σᵢ xᵢⱼ
//	eⱼ   = −(1/ln M) · Σᵢ pᵢⱼ·ln pᵢⱼ      (0·ln 0 counts as 0)
//	dⱼ   = 1 − eⱼ
//	wⱼ   = dⱼ / Σⱼ dⱼ
//	scoreᵢ = Σⱼ xᵢⱼ·wⱼ
//
// Rows holding NaN are treated as missing and dropped before computation;
// Result.Dropped reports how many. When every indicator is maximally
// disordered (Σ dⱼ = 0) the weights are undefined and Compute returns
// ErrUndefinedWeights instead of a meaningless vector.
package entropyweight
