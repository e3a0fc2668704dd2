package impute

import (
	"database/sql"
	"fmt"
	"sort"

	"crashprep/internal/domain"
	apperrors "crashprep/internal/errors"
)

// GroupMedianImputer fills a missing integer field with the median of
// records sharing a grouping key, learned from the records passed to Fit and
// applied unchanged by Transform. Fitting on the training fold and
// transforming every fold keeps evaluation data out of the fill values.
type GroupMedianImputer struct {
	group func(*domain.CyclistCrashRecord) (string, bool)
	get   func(*domain.CyclistCrashRecord) sql.NullInt64
	set   func(*domain.CyclistCrashRecord, sql.NullInt64)

	medians map[string]int64
	global  sql.NullInt64
	fitted  bool
}

// NewAgeByMunicipalityImputer imputes cyclist age from the municipality
// median, with the fit-set global median as fallback for unseen groups.
func NewAgeByMunicipalityImputer() *GroupMedianImputer {
	return &GroupMedianImputer{
		group: func(r *domain.CyclistCrashRecord) (string, bool) {
			return r.Municipality.String, r.Municipality.Valid
		},
		get: func(r *domain.CyclistCrashRecord) sql.NullInt64 { return r.Age },
		set: func(r *domain.CyclistCrashRecord, v sql.NullInt64) { r.Age = v },
	}
}

// Fit learns per-group and global medians from the training records.
func (m *GroupMedianImputer) Fit(records []domain.CyclistCrashRecord) {
	byGroup := make(map[string][]int64)
	var all []int64

	for i := range records {
		v := m.get(&records[i])
		if !v.Valid {
			continue
		}
		all = append(all, v.Int64)
		if key, ok := m.group(&records[i]); ok {
			byGroup[key] = append(byGroup[key], v.Int64)
		}
	}

	m.medians = make(map[string]int64, len(byGroup))
	for key, values := range byGroup {
		m.medians[key] = median(values)
	}
	if len(all) > 0 {
		m.global = sql.NullInt64{Int64: median(all), Valid: true}
	}
	m.fitted = true
}

// Transform fills missing values in place using only statistics learned at
// Fit time. Records whose group was unseen fall back to the global median.
func (m *GroupMedianImputer) Transform(records []domain.CyclistCrashRecord) error {
	if !m.fitted {
		return apperrors.NewValidationError("imputer must be fitted before transform")
	}

	for i := range records {
		rec := &records[i]
		if m.get(rec).Valid {
			continue
		}
		if key, ok := m.group(rec); ok {
			if med, ok := m.medians[key]; ok {
				m.set(rec, sql.NullInt64{Int64: med, Valid: true})
				continue
			}
		}
		if m.global.Valid {
			m.set(rec, m.global)
		}
	}
	return nil
}

// GroupModeImputer fills a missing integer field with the most frequent
// value among records sharing a grouping key, same fit/transform contract as
// GroupMedianImputer.
type GroupModeImputer struct {
	group func(*domain.CyclistCrashRecord) (string, bool)
	get   func(*domain.CyclistCrashRecord) sql.NullInt64
	set   func(*domain.CyclistCrashRecord, sql.NullInt64)

	modes  map[string]int64
	global sql.NullInt64
	fitted bool
}

// NewHourByIlluminationMonthImputer imputes the crash hour from the
// illumination x month mode: lighting conditions pin the plausible hours far
// better than a global statistic does.
func NewHourByIlluminationMonthImputer() *GroupModeImputer {
	return &GroupModeImputer{
		group: func(r *domain.CyclistCrashRecord) (string, bool) {
			if !r.Illumination.Valid || !r.CrashMonth.Valid {
				return "", false
			}
			return fmt.Sprintf("%s|%d", r.Illumination.String, r.CrashMonth.Int64), true
		},
		get: func(r *domain.CyclistCrashRecord) sql.NullInt64 { return r.HourOfDay },
		set: func(r *domain.CyclistCrashRecord, v sql.NullInt64) { r.HourOfDay = v },
	}
}

// Fit learns per-group and global modes from the training records.
func (m *GroupModeImputer) Fit(records []domain.CyclistCrashRecord) {
	byGroup := make(map[string]map[int64]int)
	all := make(map[int64]int)

	for i := range records {
		v := m.get(&records[i])
		if !v.Valid {
			continue
		}
		all[v.Int64]++
		if key, ok := m.group(&records[i]); ok {
			if byGroup[key] == nil {
				byGroup[key] = make(map[int64]int)
			}
			byGroup[key][v.Int64]++
		}
	}

	m.modes = make(map[string]int64, len(byGroup))
	for key, counts := range byGroup {
		m.modes[key] = mode(counts)
	}
	if len(all) > 0 {
		m.global = sql.NullInt64{Int64: mode(all), Valid: true}
	}
	m.fitted = true
}

// Transform fills missing values in place from the fitted modes.
func (m *GroupModeImputer) Transform(records []domain.CyclistCrashRecord) error {
	if !m.fitted {
		return apperrors.NewValidationError("imputer must be fitted before transform")
	}

	for i := range records {
		rec := &records[i]
		if m.get(rec).Valid {
			continue
		}
		if key, ok := m.group(rec); ok {
			if mo, ok := m.modes[key]; ok {
				m.set(rec, sql.NullInt64{Int64: mo, Valid: true})
				continue
			}
		}
		if m.global.Valid {
			m.set(rec, m.global)
		}
	}
	return nil
}

// median returns the lower-middle element for even-length input, keeping the
// result within the observed integer domain.
func median(values []int64) int64 {
	sorted := append([]int64(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted[(len(sorted)-1)/2]
}

// mode returns the most frequent value, breaking ties toward the smaller
// value so the result is deterministic.
func mode(counts map[int64]int) int64 {
	var best int64
	bestCount := -1
	for v, n := range counts {
		if n > bestCount || (n == bestCount && v < best) {
			best = v
			bestCount = n
		}
	}
	return best
}
