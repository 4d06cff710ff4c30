// Package match provides name normalization, Levenshtein distance
// calculation, and closest-candidate selection for matching dataset keys
// against widget names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the best widget name for a key above a threshold
package match
