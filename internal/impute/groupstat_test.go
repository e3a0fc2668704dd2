package impute

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crashprep/internal/domain"
)

func validInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}

func ageRecord(municipality string, age sql.NullInt64) domain.CyclistCrashRecord {
	return domain.CyclistCrashRecord{Municipality: valid(municipality), Age: age}
}

func TestGroupMedianImputer_FitTransform(t *testing.T) {
	train := []domain.CyclistCrashRecord{
		ageRecord("301", validInt(20)),
		ageRecord("301", validInt(30)),
		ageRecord("301", validInt(40)),
		ageRecord("302", validInt(60)),
	}

	imputer := NewAgeByMunicipalityImputer()
	imputer.Fit(train)

	test := []domain.CyclistCrashRecord{
		ageRecord("301", sql.NullInt64{}), // group median 30
		ageRecord("999", sql.NullInt64{}), // unseen group -> global median
		ageRecord("302", validInt(55)),    // present value untouched
	}
	require.NoError(t, imputer.Transform(test))

	assert.Equal(t, int64(30), test[0].Age.Int64)
	assert.Equal(t, int64(30), test[1].Age.Int64, "global median of 20,30,40,60")
	assert.Equal(t, int64(55), test[2].Age.Int64)
}

// The transform must use only fit-time statistics: values present in the
// transformed fold must not shift the fill.
func TestGroupMedianImputer_NoLeakageFromTransformFold(t *testing.T) {
	train := []domain.CyclistCrashRecord{
		ageRecord("301", validInt(30)),
	}

	imputer := NewAgeByMunicipalityImputer()
	imputer.Fit(train)

	test := []domain.CyclistCrashRecord{
		ageRecord("301", validInt(90)),
		ageRecord("301", validInt(90)),
		ageRecord("301", sql.NullInt64{}),
	}
	require.NoError(t, imputer.Transform(test))

	assert.Equal(t, int64(30), test[2].Age.Int64,
		"fill must come from the training fold, not the transformed fold")
}

func TestGroupMedianImputer_TransformBeforeFit(t *testing.T) {
	imputer := NewAgeByMunicipalityImputer()
	err := imputer.Transform(nil)
	require.Error(t, err)
}

func hourRecord(illumination string, month, hour sql.NullInt64) domain.CyclistCrashRecord {
	return domain.CyclistCrashRecord{
		Illumination: valid(illumination),
		CrashMonth:   month,
		HourOfDay:    hour,
	}
}

func TestGroupModeImputer_FitTransform(t *testing.T) {
	train := []domain.CyclistCrashRecord{
		hourRecord("daylight", validInt(6), validInt(17)),
		hourRecord("daylight", validInt(6), validInt(17)),
		hourRecord("daylight", validInt(6), validInt(8)),
		hourRecord("dark_street_lights", validInt(6), validInt(22)),
	}

	imputer := NewHourByIlluminationMonthImputer()
	imputer.Fit(train)

	test := []domain.CyclistCrashRecord{
		hourRecord("daylight", validInt(6), sql.NullInt64{}),
		hourRecord("dark_street_lights", validInt(6), sql.NullInt64{}),
		// Incomplete group key falls back to the global mode.
		{HourOfDay: sql.NullInt64{}},
	}
	require.NoError(t, imputer.Transform(test))

	assert.Equal(t, int64(17), test[0].HourOfDay.Int64)
	assert.Equal(t, int64(22), test[1].HourOfDay.Int64)
	assert.Equal(t, int64(17), test[2].HourOfDay.Int64)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, int64(30), median([]int64{40, 20, 30}))
	assert.Equal(t, int64(20), median([]int64{40, 20, 30, 10}), "even length takes lower middle")
	assert.Equal(t, int64(5), median([]int64{5}))
}

func TestMode_DeterministicTieBreak(t *testing.T) {
	assert.Equal(t, int64(3), mode(map[int64]int{3: 2, 7: 2, 5: 1}))
}
