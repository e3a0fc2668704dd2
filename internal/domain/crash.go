package domain

import "database/sql"

// CrashEvent is one record per collision. CRN is globally unique within the
// crash table; the joiner relies on that invariant.
type CrashEvent struct {
	CRN string

	// Temporal fields. TimeOfDay, DispatchTime and ArrivalTime carry military
	// HHMM values and feed the hour-of-day fallback chain.
	CrashYear    sql.NullInt64
	CrashMonth   sql.NullInt64
	DayOfWeek    sql.NullString
	HourOfDay    sql.NullInt64
	TimeOfDay    sql.NullInt64
	DispatchTime sql.NullInt64
	ArrivalTime  sql.NullInt64

	// Environment. WeatherSecondary only exists between recoding and the
	// weather consolidation rule; it is cleared once Weather is resolved.
	Weather          sql.NullString
	WeatherSecondary sql.NullString
	RoadCondition    sql.NullString
	Illumination     sql.NullString
	UrbanRural       sql.NullString

	// Location.
	County         sql.NullString
	Municipality   sql.NullString
	Latitude       sql.NullFloat64
	Longitude      sql.NullFloat64
	RelationToRoad sql.NullString
	CollisionType  sql.NullString

	// Circumstance flags.
	SpeedingRelated   sql.NullBool
	AggressiveDriving sql.NullBool
	Tailgating        sql.NullBool
	RunningRedLight   sql.NullBool
	DrinkingDriver    sql.NullBool
	DruggedDriver     sql.NullBool
	HitAndRun         sql.NullBool

	// Vehicle-type counts and their derived presence flags. A missing count
	// propagates as a missing presence flag, never as false.
	BusCount        sql.NullInt64
	HeavyTruckCount sql.NullInt64
	SmallTruckCount sql.NullInt64
	SUVCount        sql.NullInt64
	VanCount        sql.NullInt64

	BusPresent        sql.NullBool
	HeavyTruckPresent sql.NullBool
	SmallTruckPresent sql.NullBool
	SUVPresent        sql.NullBool
	VanPresent        sql.NullBool
}
