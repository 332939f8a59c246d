// Package comatrix builds category co-occurrence matrices from tag-sets
// (keyword lists, subject categories, author lists) and derives similarity
// matrices from them.
//
// Build counts how often each pair of distinct categories appears in the same
// document, keeps only categories that occur at least MinFrequency times (and,
// optionally, belong to an allow-list), and returns labelled matrices:
//
//	Frequency         cᵢⱼ, zero diagonal
//	Ochiai            cᵢⱼ / (√fᵢ · √fⱼ)
//	Equivalence       cᵢⱼ² / (fᵢ · fⱼ), unit diagonal
//	CosineSimilarity  cosine between rows of Frequency
//	CosineDistance    1 − CosineSimilarity, clipped to [0,2], zero diagonal
//
// where fᵢ is the number of occurrences of category i. Categories are sorted
// lexicographically so that the same input always yields the same layout.
//
// Every matrix is a *Labeled, which resolves entries by category name and
// therefore plugs directly into the interdisc indicators.
package comatrix
