// Package interdisc computes interdisciplinarity indicators that combine the
// weights of the categories a subject touches with how dissimilar those
// categories are from one another.
//
// Indicators:
//   - Disparity: mean pairwise distance dᵢⱼ = 1 − sᵢⱼ, Weitzman (1992),
//     Solow & Polasky (1994).
//   - DIV / DIV*: variety × balance × disparity, Leydesdorff et al. (2019),
//     and its unnormalised variant.
//   - Rao-Stirling: Σ wᵢ·wⱼ·dᵢⱼ, Stirling (2007); True Diversity
//     1 / Σ wᵢ·wⱼ·(1 − dᵢⱼ), Zhang et al. (2016).
//
// Pairs are every unordered 2-combination of the field list in its given
// order; all terms are symmetric in (i,j) so the order never changes a value.
//
// The similarity matrix is an external, read-only input behind the Lookup
// interface. comatrix.Labeled satisfies it, and so does MapMatrix for data
// loaded from elsewhere. A category missing from the matrix is an error
// (ErrUnknownCategory).
//
//	res, _ := comatrix.Build(docs)
//	fields := []interdisc.Field{{Category: "bio", Weight: 3}, {Category: "chem", Weight: 1}}
//	d, err := interdisc.Disparity(fields, res.CosineSimilarity)
package interdisc
