package resolve

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"crashprep/internal/domain"
)

func validInt(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}

func TestDeriveVehiclePresence(t *testing.T) {
	c := domain.CrashEvent{
		BusCount:        validInt(0),
		HeavyTruckCount: validInt(2),
		SmallTruckCount: sql.NullInt64{},
		SUVCount:        validInt(1),
		VanCount:        sql.NullInt64{},
	}

	DeriveVehiclePresence(&c)

	assert.True(t, c.BusPresent.Valid)
	assert.False(t, c.BusPresent.Bool)
	assert.True(t, c.HeavyTruckPresent.Bool)
	assert.True(t, c.SUVPresent.Bool)
	assert.False(t, c.SmallTruckPresent.Valid, "missing count must stay missing, not false")
	assert.False(t, c.VanPresent.Valid)
}

func TestFillHourOfDay(t *testing.T) {
	tests := []struct {
		name      string
		crash     domain.CrashEvent
		wantValid bool
		want      int64
	}{
		{
			name:      "present hour untouched",
			crash:     domain.CrashEvent{HourOfDay: validInt(8), TimeOfDay: validInt(2130)},
			wantValid: true,
			want:      8,
		},
		{
			name:      "time of day wins",
			crash:     domain.CrashEvent{TimeOfDay: validInt(1745), DispatchTime: validInt(900)},
			wantValid: true,
			want:      17,
		},
		{
			name:      "dispatch time second",
			crash:     domain.CrashEvent{DispatchTime: validInt(905)},
			wantValid: true,
			want:      9,
		},
		{
			name:      "arrival time last",
			crash:     domain.CrashEvent{ArrivalTime: validInt(2359)},
			wantValid: true,
			want:      23,
		},
		{
			name:      "all missing stays missing for deferred imputation",
			crash:     domain.CrashEvent{},
			wantValid: false,
		},
		{
			name:      "out-of-range time falls through the chain",
			crash:     domain.CrashEvent{TimeOfDay: validInt(2500), DispatchTime: validInt(1015)},
			wantValid: true,
			want:      10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			FillHourOfDay(&tt.crash)
			assert.Equal(t, tt.wantValid, tt.crash.HourOfDay.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.want, tt.crash.HourOfDay.Int64)
			}
		})
	}
}
