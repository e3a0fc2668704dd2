package impute

import (
	"database/sql"
	"log/slog"

	"crashprep/internal/domain"
)

// Policy is the remediation class assigned to a field's residual missingness.
type Policy string

const (
	// PolicyUnknownCategory fills immediately with an explicit "unknown"
	// label: the absence is structural and informative.
	PolicyUnknownCategory Policy = "unknown_category"
	// PolicyNarrowDomain marks fields repaired by the resolver's domain
	// rules; nothing further happens here.
	PolicyNarrowDomain Policy = "narrow_domain"
	// PolicyDeferredGroupStat marks fields left missing for the downstream
	// grouped-statistic imputer (fit on the training fold only).
	PolicyDeferredGroupStat Policy = "deferred_group_stat"
	// PolicyDeferredGlobalMode marks all remaining fields, left missing for
	// the downstream global-mode imputer.
	PolicyDeferredGlobalMode Policy = "deferred_global_mode"
)

// UnknownLabel is the explicit new-category fill value.
const UnknownLabel = "unknown"

// FieldPolicies documents the remediation class of every field that can
// still be missing after the join. Exported so downstream consumers can see
// which columns remain missing by design.
var FieldPolicies = map[string]Policy{
	"RESTRAINT_HELMET": PolicyUnknownCategory,
	"IMPACT_SIDE":      PolicyUnknownCategory,
	"GRADE":            PolicyUnknownCategory,
	"VEH_POSITION":     PolicyUnknownCategory,

	"WEATHER":        PolicyNarrowDomain,
	"ROAD_CONDITION": PolicyNarrowDomain,

	"AGE":         PolicyDeferredGroupStat, // municipality median, training fold only
	"HOUR_OF_DAY": PolicyDeferredGroupStat, // illumination x month mode, training fold only

	"VEH_MOVEMENT": PolicyDeferredGlobalMode,
	"ALIGNMENT":    PolicyDeferredGlobalMode,
	"ILLUMINATION": PolicyDeferredGlobalMode,
	"DAY_OF_WEEK":  PolicyDeferredGlobalMode,
	"SEX":          PolicyDeferredGlobalMode,
}

// ApplyImmediate performs the unknown-category fills in place. Deferred
// fields are left untouched; record-local and fixed-rule fills are the only
// mutations permitted before the artifact is exported.
func ApplyImmediate(logger *slog.Logger, records []domain.CyclistCrashRecord) {
	filled := 0
	for i := range records {
		rec := &records[i]
		filled += fillUnknown(&rec.RestraintHelmet)
		filled += fillUnknown(&rec.ImpactSide)
		filled += fillUnknown(&rec.Grade)
		filled += fillUnknown(&rec.VehPosition)
	}

	logger.Info("Applied unknown-category fills",
		slog.Int("records", len(records)),
		slog.Int("cells_filled", filled))
}

func fillUnknown(field *sql.NullString) int {
	if field.Valid {
		return 0
	}
	*field = sql.NullString{String: UnknownLabel, Valid: true}
	return 1
}
