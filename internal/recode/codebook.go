package recode

import (
	"database/sql"
	"strconv"
	"strings"
)

// Codebook maps raw field codes to categorical labels. Construct once with
// NewCodebook and treat as immutable.
type Codebook struct {
	sentinels map[string]struct{}
	labels    map[string]string
}

// NewCodebook builds a codebook from a sentinel list and a code→label map.
func NewCodebook(sentinels []string, labels map[string]string) Codebook {
	set := make(map[string]struct{}, len(sentinels))
	for _, s := range sentinels {
		set[s] = struct{}{}
	}
	return Codebook{sentinels: set, labels: labels}
}

// Recode translates a raw cell. Sentinels and empty cells become explicit
// missing values; known codes become labels; anything else passes through
// unchanged. Labels are never dictionary keys, so Recode is idempotent.
func (c Codebook) Recode(raw string) sql.NullString {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sql.NullString{}
	}
	if _, ok := c.sentinels[raw]; ok {
		return sql.NullString{}
	}
	if label, ok := c.labels[raw]; ok {
		return sql.NullString{String: label, Valid: true}
	}
	return sql.NullString{String: raw, Valid: true}
}

// CoerceInt parses a raw cell as an integer. Non-numeric tokens (e.g. "U")
// and listed sentinel values become missing.
func CoerceInt(raw string, sentinels ...int64) sql.NullInt64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sql.NullInt64{}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return sql.NullInt64{}
	}
	for _, s := range sentinels {
		if v == s {
			return sql.NullInt64{}
		}
	}
	return sql.NullInt64{Int64: v, Valid: true}
}

// CoerceFloat parses a raw cell as a float. Non-numeric tokens become missing.
func CoerceFloat(raw string) sql.NullFloat64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sql.NullFloat64{}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

// CoerceBool parses a raw boolean flag. Accepts 1/0 and Y/N; everything else
// (U, R, 9, blanks) is missing, never false.
func CoerceBool(raw string) sql.NullBool {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "1", "Y", "YES", "TRUE":
		return sql.NullBool{Bool: true, Valid: true}
	case "0", "N", "NO", "FALSE":
		return sql.NullBool{Bool: false, Valid: true}
	default:
		return sql.NullBool{}
	}
}
