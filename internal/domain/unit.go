package domain

import "database/sql"

// VehicleUnit is one record per vehicle/unit within a crash, pre-filtered by
// the ingestion collaborator to bicycle-involved crashes. (CRN, UnitNum) is
// unique once the resolver has backfilled the single absent unit number.
type VehicleUnit struct {
	CRN     string
	UnitNum sql.NullInt64

	UnitType    sql.NullString
	VehRole     sql.NullString
	VehPosition sql.NullString
	VehMovement sql.NullString

	// ImpactSide is the 8-way relative-side collapse of the raw 13-point
	// clock-position impact code.
	ImpactSide sql.NullString

	Grade     sql.NullString
	Alignment sql.NullString
}

// Key returns the composite unit key. Call only after unit numbers have been
// backfilled; a missing UnitNum yields an unusable key.
func (u VehicleUnit) Key() UnitKey {
	return UnitKey{CRN: u.CRN, UnitNum: u.UnitNum.Int64}
}

// UnitKey identifies a vehicle unit within a crash.
type UnitKey struct {
	CRN     string
	UnitNum int64
}

// PersonKey identifies a person within a vehicle unit.
type PersonKey struct {
	CRN       string
	UnitNum   int64
	PersonNum int64
}
