// Package derive computes the modeling features from resolved cyclist
// records: the binary serious-or-fatality outcome and the decade age bins.
package derive

import (
	"database/sql"
	"fmt"
	"log/slog"

	"crashprep/internal/domain"
)

// seriousLabels is the positive class of the outcome flag.
var seriousLabels = map[string]struct{}{
	"killed":                   {},
	"suspected_serious_injury": {},
}

// SeriousOrFatality maps a resolved injury-severity label to the binary
// outcome. Missing severity maps to 0: the source treats unreported injury as
// not serious, a closed-world default-to-negative policy that downstream
// consumers rely on. Do not reinterpret missing as "unknown outcome".
func SeriousOrFatality(severity sql.NullString) int64 {
	if !severity.Valid {
		return 0
	}
	if _, ok := seriousLabels[severity.String]; ok {
		return 1
	}
	return 0
}

// AgeBin buckets an age into right-closed decade intervals (0, 10] through
// (90, 100]. Missing ages and ages outside the covered range yield a missing
// bin, never an error.
func AgeBin(age sql.NullInt64) sql.NullString {
	if !age.Valid {
		return sql.NullString{}
	}
	a := age.Int64
	if a <= 0 || a > 100 {
		return sql.NullString{}
	}
	lo := ((a - 1) / 10) * 10
	return sql.NullString{
		String: fmt.Sprintf("(%d, %d]", lo, lo+10),
		Valid:  true,
	}
}

// Apply computes the derived features for every record in place.
func Apply(logger *slog.Logger, records []domain.CyclistCrashRecord) {
	positives := 0
	for i := range records {
		rec := &records[i]
		rec.SeriousOrFatality = SeriousOrFatality(rec.InjurySeverity)
		rec.AgeBin = AgeBin(rec.Age)
		positives += int(rec.SeriousOrFatality)
	}

	logger.Info("Derived outcome and age bins",
		slog.Int("records", len(records)),
		slog.Int("serious_or_fatal", positives))
}
