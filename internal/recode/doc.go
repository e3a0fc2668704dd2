// Package recode translates raw crash-report codes into canonical categorical
// labels. Each source field gets an immutable Codebook: a sentinel set whose
// members become explicit missing values, and a code-to-label dictionary.
// Codes outside both sets pass through verbatim so unexpected future codes
// surface for review instead of being silently discarded.
//
// Recoding matches raw codes only, never labels, so running a recoder over
// already-recoded data is a no-op.
package recode
