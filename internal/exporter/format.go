package exporter

import (
	"database/sql"
	"strconv"
)

// Cell formatters. A missing value always renders as the empty cell; the
// empty cell is the only representation of absence in the CSV artifacts.

func cellString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func cellInt(v sql.NullInt64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatInt(v.Int64, 10)
}

func cellFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}

// cellBool renders flags as 1/0 so the artifact loads as numeric columns.
func cellBool(v sql.NullBool) string {
	if !v.Valid {
		return ""
	}
	if v.Bool {
		return "1"
	}
	return "0"
}
