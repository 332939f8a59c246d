// Package diversity computes scalar diversity, evenness and concentration
// indicators over a category count vector.
//
// 🚀 What is measured?
//
//	Given the observed frequency of each category (discipline, tag, species)
//	for one subject, the indicators describe:
//	  • Variety: how many categories are present (CategoryCount)
//	  • Balance: how evenly observations spread (ShannonEvenness, GiniCoefficient)
//	  • Diversity combining both (ShannonIndex, SimpsonIndex and its inverse /
//	    Gini-Simpson complement, BrillouinIndex)
//
// ✨ Key properties:
//   - pure and deterministic: inputs are never mutated
//   - symmetric: the order of counts never changes a value
//   - degenerate input (all zeros, a single category) yields the sentinel 0
//     instead of NaN, ±Inf or a panic
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/scimetric/diversity"
//
//	c := diversity.Counts{30, 20, 10, 10}
//	h := diversity.ShannonIndex(c)
//	b := diversity.BrillouinIndex(c)
//	p := diversity.Summarize(c) // every indicator at once
//
// Counts may also be labelled (diversity.LabeledCounts); labelled values are
// read in lexicographic label order so results are reproducible.
//
// Performance:
//
//   - Time:   O(n), GiniCoefficient O(n log n) for the sort
//   - Memory: O(n) for the proportion/sorted copies
package diversity
