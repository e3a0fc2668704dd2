package recode

import (
	"database/sql"
	"strings"
)

// impactSides collapses the raw 13-point clock-position impact code to an
// 8-way relative side. Clock positions 11, 12 and 1 all face front; the other
// positions split the remaining sides evenly. Codes 0, 13 and 14 are the
// non-collision, top and undercarriage sentinels from the reporting form.
var impactSides = map[string]string{
	"0":  "non_collision",
	"1":  "front",
	"2":  "front_right",
	"3":  "right",
	"4":  "rear_right",
	"5":  "rear",
	"6":  "rear",
	"7":  "rear",
	"8":  "rear_left",
	"9":  "left",
	"10": "front_left",
	"11": "front",
	"12": "front",
	"13": "top",
	"14": "undercarriage",
}

// impactMissing are the unknown-value codes for the impact point field.
var impactMissing = map[string]struct{}{
	"99": {},
	"U":  {},
}

// CollapseImpactPoint maps a raw impact-point code to its relative side.
// Unrecognized codes pass through verbatim, matching the general recode
// policy for surfacing unexpected codes.
func CollapseImpactPoint(raw string) sql.NullString {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return sql.NullString{}
	}
	if _, ok := impactMissing[raw]; ok {
		return sql.NullString{}
	}
	if side, ok := impactSides[raw]; ok {
		return sql.NullString{String: side, Valid: true}
	}
	return sql.NullString{String: raw, Valid: true}
}
