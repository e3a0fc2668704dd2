package derive

import (
	"database/sql"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"crashprep/internal/domain"
)

func valid(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func TestSeriousOrFatality(t *testing.T) {
	tests := []struct {
		name     string
		severity sql.NullString
		want     int64
	}{
		{name: "killed", severity: valid("killed"), want: 1},
		{name: "suspected serious injury", severity: valid("suspected_serious_injury"), want: 1},
		{name: "possible injury", severity: valid("possible_injury"), want: 0},
		{name: "not injured", severity: valid("not_injured"), want: 0},
		{name: "missing defaults to negative", severity: sql.NullString{}, want: 0},
		{name: "unexpected label defaults to negative", severity: valid("77"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeriousOrFatality(tt.severity))
		})
	}
}

func TestAgeBin(t *testing.T) {
	tests := []struct {
		name      string
		age       sql.NullInt64
		wantValid bool
		want      string
	}{
		{name: "mid decade", age: sql.NullInt64{Int64: 34, Valid: true}, wantValid: true, want: "(30, 40]"},
		{name: "decade boundary is right-closed", age: sql.NullInt64{Int64: 30, Valid: true}, wantValid: true, want: "(20, 30]"},
		{name: "one", age: sql.NullInt64{Int64: 1, Valid: true}, wantValid: true, want: "(0, 10]"},
		{name: "hundred", age: sql.NullInt64{Int64: 100, Valid: true}, wantValid: true, want: "(90, 100]"},
		{name: "zero is out of range", age: sql.NullInt64{Int64: 0, Valid: true}, wantValid: false},
		{name: "over range", age: sql.NullInt64{Int64: 101, Valid: true}, wantValid: false},
		{name: "missing age", age: sql.NullInt64{}, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AgeBin(tt.age)
			assert.Equal(t, tt.wantValid, got.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.want, got.String)
			}
		})
	}
}

func TestApply(t *testing.T) {
	records := []domain.CyclistCrashRecord{
		{InjurySeverity: valid("killed"), Age: sql.NullInt64{Int64: 34, Valid: true}},
		{InjurySeverity: sql.NullString{}, Age: sql.NullInt64{}},
	}

	Apply(slog.Default(), records)

	assert.Equal(t, int64(1), records[0].SeriousOrFatality)
	assert.Equal(t, "(30, 40]", records[0].AgeBin.String)

	assert.Equal(t, int64(0), records[1].SeriousOrFatality)
	assert.False(t, records[1].AgeBin.Valid)
}
