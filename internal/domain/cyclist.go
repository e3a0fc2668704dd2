package domain

import "database/sql"

// CyclistCrashRecord is the denormalized cyclist-in-crash entity: one row per
// person whose vehicle unit resolved to a pedal-cycle category, flattened with
// the crash context and the roadway-derived speed limit.
//
// The joiner is the sole producer. After it runs, only the missing-value
// strategist and the target deriver touch the record, in that order.
type CyclistCrashRecord struct {
	CRN       string
	UnitNum   int64
	PersonNum int64

	// Person attributes.
	Age             sql.NullInt64
	Sex             sql.NullString
	PersonType      sql.NullString
	InjurySeverity  sql.NullString
	RestraintHelmet sql.NullString

	// Unit attributes.
	UnitType    sql.NullString
	VehRole     sql.NullString
	VehPosition sql.NullString
	VehMovement sql.NullString
	ImpactSide  sql.NullString
	Grade       sql.NullString
	Alignment   sql.NullString

	// Crash context.
	CrashYear         sql.NullInt64
	CrashMonth        sql.NullInt64
	DayOfWeek         sql.NullString
	HourOfDay         sql.NullInt64
	Weather           sql.NullString
	RoadCondition     sql.NullString
	Illumination      sql.NullString
	UrbanRural        sql.NullString
	County            sql.NullString
	Municipality      sql.NullString
	Latitude          sql.NullFloat64
	Longitude         sql.NullFloat64
	RelationToRoad    sql.NullString
	CollisionType     sql.NullString
	SpeedingRelated   sql.NullBool
	AggressiveDriving sql.NullBool
	Tailgating        sql.NullBool
	RunningRedLight   sql.NullBool
	DrinkingDriver    sql.NullBool
	DruggedDriver     sql.NullBool
	HitAndRun         sql.NullBool
	BusPresent        sql.NullBool
	HeavyTruckPresent sql.NullBool
	SmallTruckPresent sql.NullBool
	SUVPresent        sql.NullBool
	VanPresent        sql.NullBool

	// Roadway-derived: minimum speed limit across segments sharing the CRN.
	SpeedLimit sql.NullInt64

	// Derived features.
	SeriousOrFatality int64
	AgeBin            sql.NullString
}
