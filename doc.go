// Package scimetric measures how diverse and how interdisciplinary a body of
// scientific output is.
//
// 🚀 What is inside?
//
//	• diversity: Shannon, evenness, Simpson family, Brillouin, Gini
//	• interdisc: Disparity, DIV / DIV*, Rao-Stirling, True Diversity
//	• entropyweight: objective indicator weights (entropy-weight method)
//	• comatrix: co-occurrence, Ochiai, equivalence and cosine matrices
//	• matrix: the small dense-matrix kernel the above are built on
//
// ✨ Properties:
//   - pure functions over caller-supplied data, no I/O in the numeric core
//   - degenerate input yields a documented sentinel, never NaN or a panic
//   - deterministic: category order is lexicographic wherever it matters
//
// The scimetric command (cmd/scimetric) exposes every indicator on the
// command line with YAML configuration and structured logging.
//
// Quick example:
//
//	res, _ := comatrix.Build(comatrix.ParseDocuments(lines))
//	fields := []interdisc.Field{{Category: "ecology", Weight: 3}, {Category: "genetics", Weight: 1}}
//	d, _ := interdisc.Disparity(fields, res.CosineSimilarity)
package scimetric
