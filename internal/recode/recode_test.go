package recode

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crashprep/internal/loader"
)

func TestCrashes(t *testing.T) {
	table := loader.NewRawTable(
		[]string{"CRN", "CRASH_YEAR", "DAY_OF_WEEK", "HOUR_OF_DAY", "WEATHER1", "WEATHER2",
			"ROAD_CONDITION", "ILLUMINATION", "DEC_LAT", "DEC_LONG", "SPEEDING_RELATED", "BUS_COUNT"},
		[][]string{
			{"2019000001", "2019", "2", "17", "3", "4", "0", "1", "40.4406", "-79.9959", "1", "0"},
			{"2019000002", "2019", "9", "99", "99", "", "9", "9", "", "", "U", ""},
		})

	crashes, err := Crashes(slog.Default(), table)
	require.NoError(t, err)
	require.Len(t, crashes, 2)

	first := crashes[0]
	assert.Equal(t, "2019000001", first.CRN)
	assert.Equal(t, int64(2019), first.CrashYear.Int64)
	assert.Equal(t, "monday", first.DayOfWeek.String)
	assert.Equal(t, int64(17), first.HourOfDay.Int64)
	assert.Equal(t, "clear", first.Weather.String)
	assert.Equal(t, "cloudy", first.WeatherSecondary.String)
	assert.Equal(t, "dry", first.RoadCondition.String)
	assert.True(t, first.SpeedingRelated.Valid)
	assert.True(t, first.SpeedingRelated.Bool)
	assert.True(t, first.BusCount.Valid)
	assert.Equal(t, int64(0), first.BusCount.Int64)

	second := crashes[1]
	assert.False(t, second.DayOfWeek.Valid, "sentinel day-of-week must be missing")
	assert.False(t, second.HourOfDay.Valid, "hour sentinel 99 must be missing")
	assert.False(t, second.Weather.Valid)
	assert.False(t, second.RoadCondition.Valid)
	assert.False(t, second.Latitude.Valid)
	assert.False(t, second.SpeedingRelated.Valid, "U flag must stay missing, not false")
	assert.False(t, second.BusCount.Valid)
}

func TestCrashes_MissingRequiredColumn(t *testing.T) {
	table := loader.NewRawTable([]string{"CRN"}, [][]string{{"2019000001"}})

	_, err := Crashes(slog.Default(), table)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEATHER1")
}

func TestUnits(t *testing.T) {
	table := loader.NewRawTable(
		[]string{"CRN", "UNIT_NUM", "UNIT_TYPE", "VEH_ROLE", "IMPACT_POINT", "GRADE"},
		[][]string{
			{"2019000001", "2", "20", "2", "12", "1"},
			{"2019000001", "1", "1", "1", "99", "9"},
		})

	units, err := Units(slog.Default(), table)
	require.NoError(t, err)
	require.Len(t, units, 2)

	assert.Equal(t, "bicycle", units[0].UnitType.String)
	assert.Equal(t, "struck", units[0].VehRole.String)
	assert.Equal(t, "front", units[0].ImpactSide.String)
	assert.Equal(t, "level", units[0].Grade.String)

	assert.Equal(t, "automobile", units[1].UnitType.String)
	assert.False(t, units[1].ImpactSide.Valid)
	assert.False(t, units[1].Grade.Valid)
}

func TestPersons_MixedAgeColumn(t *testing.T) {
	table := loader.NewRawTable(
		[]string{"CRN", "UNIT_NUM", "PERSON_NUM", "AGE", "SEX", "INJ_SEVERITY"},
		[][]string{
			{"2019000001", "2", "1", "34", "M", "1"},
			{"2019000001", "1", "1", "U", "F", "4"},
		})

	persons, err := Persons(slog.Default(), table)
	require.NoError(t, err)
	require.Len(t, persons, 2)

	assert.Equal(t, int64(34), persons[0].Age.Int64)
	assert.Equal(t, "male", persons[0].Sex.String)
	assert.Equal(t, "killed", persons[0].InjurySeverity.String)

	assert.False(t, persons[1].Age.Valid, "non-numeric age token must coerce to missing")
	assert.Equal(t, "possible_injury", persons[1].InjurySeverity.String)
}

func TestRoadways(t *testing.T) {
	table := loader.NewRawTable(
		[]string{"CRN", "RDWY_SEQ", "SPEED_LIMIT", "LANE_COUNT"},
		[][]string{
			{"2019000001", "1", "25", "2"},
			{"2019000001", "2", "35", "99"},
		})

	segments, err := Roadways(slog.Default(), table)
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, int64(25), segments[0].SpeedLimit.Int64)
	assert.Equal(t, int64(35), segments[1].SpeedLimit.Int64)
	assert.False(t, segments[1].LaneCount.Valid)
}

func TestIsPedalCycle(t *testing.T) {
	assert.True(t, IsPedalCycle("bicycle"))
	assert.True(t, IsPedalCycle("other_pedalcycle"))
	assert.False(t, IsPedalCycle("automobile"))
	assert.False(t, IsPedalCycle(""))
}
