// Package impute applies the missing-value policy to the joined cyclist
// records. Only two remediation classes run inside the export pipeline:
// the narrow domain fills (already handled by the resolver) and the
// "unknown"-category fills for fields where structural missingness is itself
// informative. The group-wise and global-mode statistics are deliberately
// deferred: GroupMedianImputer and GroupModeImputer implement a
// fit-on-training-fold / transform-any-fold contract for the downstream
// modeling split, so no dataset-wide statistic is ever baked into the
// exported artifact.
package impute
