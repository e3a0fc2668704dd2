// Package exporter writes the pipeline artifacts.
//
// CSVWriter is the core writer: BOM-prefixed UTF-8 CSV with optional append
// and a streaming variant for large tables. ArtifactWriter builds the cyclist
// and crash artifacts on top of it, formatting missing values as empty cells.
// SQLiteWriter mirrors both artifacts into a single-file database where
// missing values become real NULLs.
package exporter
