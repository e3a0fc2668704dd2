package join

import (
	"database/sql"
	"fmt"
	"log/slog"

	"crashprep/internal/domain"
	apperrors "crashprep/internal/errors"
	"crashprep/internal/recode"
)

// Joiner owns the merge order and is the sole writer of CyclistCrashRecord.
type Joiner struct {
	logger *slog.Logger
}

// New creates a joiner. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Joiner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Joiner{logger: logger}
}

// Build produces one CyclistCrashRecord per person riding a pedal-cycle unit.
// Inputs must already be resolved: unit numbers backfilled, person keys
// unique, crash CRNs unique.
func (j *Joiner) Build(
	persons []domain.PersonRecord,
	units []domain.VehicleUnit,
	crashes []domain.CrashEvent,
	segments []domain.RoadwaySegment,
) ([]domain.CyclistCrashRecord, error) {
	unitIndex := make(map[domain.UnitKey]*domain.VehicleUnit, len(units))
	for i := range units {
		unitIndex[units[i].Key()] = &units[i]
	}

	crashIndex := make(map[string]*domain.CrashEvent, len(crashes))
	for i := range crashes {
		crn := crashes[i].CRN
		if _, dup := crashIndex[crn]; dup {
			return nil, apperrors.NewKeyViolationError(
				fmt.Sprintf("duplicate crash record number %s", crn))
		}
		crashIndex[crn] = &crashes[i]
	}

	speedLimits := MinSpeedLimits(segments)

	records := make([]domain.CyclistCrashRecord, 0, len(persons))
	for i := range persons {
		p := &persons[i]

		unit, ok := unitIndex[domain.UnitKey{CRN: p.CRN, UnitNum: p.UnitNum.Int64}]
		if !ok {
			// Inner join: persons without a unit match are dropped.
			continue
		}
		if !unit.UnitType.Valid || !recode.IsPedalCycle(unit.UnitType.String) {
			continue
		}

		crash, ok := crashIndex[p.CRN]
		if !ok {
			// CRN uniqueness guarantees exactly one match; a miss means the
			// inputs are inconsistent and the run must not produce output.
			return nil, apperrors.NewJoinGapError(
				fmt.Sprintf("cyclist record for crash %s has no crash event match", p.CRN))
		}

		rec := flatten(p, unit, crash)
		if limit, ok := speedLimits[p.CRN]; ok {
			rec.SpeedLimit = sql.NullInt64{Int64: limit, Valid: true}
		}
		records = append(records, rec)
	}

	j.logger.Info("Built cyclist crash records",
		slog.Int("persons", len(persons)),
		slog.Int("cyclists", len(records)))

	return records, nil
}

// MinSpeedLimits pre-aggregates the roadway relation to one value per CRN:
// the minimum posted speed limit across segments sharing the crash. Minimum
// is the conservative choice when the segment the cyclist occupied is
// unknown. Segments without a usable speed limit contribute nothing.
func MinSpeedLimits(segments []domain.RoadwaySegment) map[string]int64 {
	limits := make(map[string]int64)
	for _, s := range segments {
		if !s.SpeedLimit.Valid {
			continue
		}
		if cur, ok := limits[s.CRN]; !ok || s.SpeedLimit.Int64 < cur {
			limits[s.CRN] = s.SpeedLimit.Int64
		}
	}
	return limits
}

// flatten copies the fixed, explicit column set from the three joined
// records into one denormalized row.
func flatten(p *domain.PersonRecord, u *domain.VehicleUnit, c *domain.CrashEvent) domain.CyclistCrashRecord {
	return domain.CyclistCrashRecord{
		CRN:       p.CRN,
		UnitNum:   p.UnitNum.Int64,
		PersonNum: p.PersonNum.Int64,

		Age:             p.Age,
		Sex:             p.Sex,
		PersonType:      p.PersonType,
		InjurySeverity:  p.InjurySeverity,
		RestraintHelmet: p.RestraintHelmet,

		UnitType:    u.UnitType,
		VehRole:     u.VehRole,
		VehPosition: u.VehPosition,
		VehMovement: u.VehMovement,
		ImpactSide:  u.ImpactSide,
		Grade:       u.Grade,
		Alignment:   u.Alignment,

		CrashYear:         c.CrashYear,
		CrashMonth:        c.CrashMonth,
		DayOfWeek:         c.DayOfWeek,
		HourOfDay:         c.HourOfDay,
		Weather:           c.Weather,
		RoadCondition:     c.RoadCondition,
		Illumination:      c.Illumination,
		UrbanRural:        c.UrbanRural,
		County:            c.County,
		Municipality:      c.Municipality,
		Latitude:          c.Latitude,
		Longitude:         c.Longitude,
		RelationToRoad:    c.RelationToRoad,
		CollisionType:     c.CollisionType,
		SpeedingRelated:   c.SpeedingRelated,
		AggressiveDriving: c.AggressiveDriving,
		Tailgating:        c.Tailgating,
		RunningRedLight:   c.RunningRedLight,
		DrinkingDriver:    c.DrinkingDriver,
		DruggedDriver:     c.DruggedDriver,
		HitAndRun:         c.HitAndRun,
		BusPresent:        c.BusPresent,
		HeavyTruckPresent: c.HeavyTruckPresent,
		SmallTruckPresent: c.SmallTruckPresent,
		SUVPresent:        c.SUVPresent,
		VanPresent:        c.VanPresent,
	}
}
