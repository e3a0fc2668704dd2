// Package loader reads the four raw source tables from disk into RawTable
// values: header-indexed grids of string cells. It accepts CSV and Excel
// inputs and performs no interpretation beyond trimming; code-to-label
// translation belongs to the recode package.
package loader
