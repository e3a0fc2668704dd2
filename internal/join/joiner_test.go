package join

import (
	"database/sql"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crashprep/internal/domain"
	apperrors "crashprep/internal/errors"
)

func valid(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func validInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}

func person(crn string, unit, num int64) domain.PersonRecord {
	return domain.PersonRecord{CRN: crn, UnitNum: validInt(unit), PersonNum: validInt(num)}
}

func bicycle(crn string, unit int64) domain.VehicleUnit {
	return domain.VehicleUnit{CRN: crn, UnitNum: validInt(unit), UnitType: valid("bicycle")}
}

func TestBuild_PedalCycleFilter(t *testing.T) {
	persons := []domain.PersonRecord{
		person("1", 1, 1), // automobile driver, dropped
		person("1", 2, 1), // cyclist, kept
		person("2", 1, 1), // other_pedalcycle, kept
	}
	units := []domain.VehicleUnit{
		{CRN: "1", UnitNum: validInt(1), UnitType: valid("automobile")},
		bicycle("1", 2),
		{CRN: "2", UnitNum: validInt(1), UnitType: valid("other_pedalcycle")},
	}
	crashes := []domain.CrashEvent{{CRN: "1"}, {CRN: "2"}}

	records, err := New(slog.Default()).Build(persons, units, crashes, nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	for _, rec := range records {
		assert.True(t, rec.UnitType.Valid, "cyclist discriminator must be non-missing")
		assert.Contains(t, []string{"bicycle", "other_pedalcycle"}, rec.UnitType.String)
	}
}

func TestBuild_CrashContextCarried(t *testing.T) {
	persons := []domain.PersonRecord{person("1", 1, 1)}
	units := []domain.VehicleUnit{bicycle("1", 1)}
	crashes := []domain.CrashEvent{{
		CRN:             "1",
		Weather:         valid("rain"),
		RoadCondition:   valid("wet"),
		HourOfDay:       validInt(17),
		SpeedingRelated: sql.NullBool{Bool: true, Valid: true},
	}}

	records, err := New(slog.Default()).Build(persons, units, crashes, nil)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "rain", rec.Weather.String)
	assert.Equal(t, "wet", rec.RoadCondition.String)
	assert.Equal(t, int64(17), rec.HourOfDay.Int64)
	assert.True(t, rec.SpeedingRelated.Bool)
}

func TestBuild_MinimumSpeedLimit(t *testing.T) {
	persons := []domain.PersonRecord{person("1", 1, 1)}
	units := []domain.VehicleUnit{bicycle("1", 1)}
	crashes := []domain.CrashEvent{{CRN: "1"}}
	segments := []domain.RoadwaySegment{
		{CRN: "1", SpeedLimit: validInt(25)},
		{CRN: "1", SpeedLimit: validInt(35)},
	}

	records, err := New(slog.Default()).Build(persons, units, crashes, segments)
	require.NoError(t, err)
	require.Len(t, records, 1, "roadway join must never duplicate rows")

	assert.True(t, records[0].SpeedLimit.Valid)
	assert.Equal(t, int64(25), records[0].SpeedLimit.Int64)
}

func TestBuild_NoRoadwayMatch(t *testing.T) {
	persons := []domain.PersonRecord{person("1", 1, 1)}
	units := []domain.VehicleUnit{bicycle("1", 1)}
	crashes := []domain.CrashEvent{{CRN: "1"}}

	records, err := New(slog.Default()).Build(persons, units, crashes, nil)
	require.NoError(t, err)
	assert.False(t, records[0].SpeedLimit.Valid, "left join: absent roadway stays missing")
}

func TestBuild_JoinGapIsFatal(t *testing.T) {
	persons := []domain.PersonRecord{person("1", 1, 1)}
	units := []domain.VehicleUnit{bicycle("1", 1)}

	_, err := New(slog.Default()).Build(persons, units, nil, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeJoinGap))
}

func TestBuild_DuplicateCrashCRNIsFatal(t *testing.T) {
	persons := []domain.PersonRecord{person("1", 1, 1)}
	units := []domain.VehicleUnit{bicycle("1", 1)}
	crashes := []domain.CrashEvent{{CRN: "1"}, {CRN: "1"}}

	_, err := New(slog.Default()).Build(persons, units, crashes, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeKeyViolation))
}

func TestMinSpeedLimits(t *testing.T) {
	segments := []domain.RoadwaySegment{
		{CRN: "1", SpeedLimit: validInt(35)},
		{CRN: "1", SpeedLimit: validInt(25)},
		{CRN: "2", SpeedLimit: sql.NullInt64{}},
		{CRN: "3", SpeedLimit: validInt(45)},
	}

	limits := MinSpeedLimits(segments)

	assert.Equal(t, int64(25), limits["1"])
	assert.Equal(t, int64(45), limits["3"])
	_, ok := limits["2"]
	assert.False(t, ok, "segments without a usable limit contribute nothing")
}
