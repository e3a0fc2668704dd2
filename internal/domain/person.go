package domain

import "database/sql"

// PersonRecord is one record per individual within a vehicle unit.
// (CRN, UnitNum, PersonNum) is unique after the scoped duplicate repair.
type PersonRecord struct {
	CRN       string
	UnitNum   sql.NullInt64
	PersonNum sql.NullInt64

	Age             sql.NullInt64
	Sex             sql.NullString
	PersonType      sql.NullString
	InjurySeverity  sql.NullString
	RestraintHelmet sql.NullString
}

// Key returns the composite person key. Valid only once UnitNum and PersonNum
// are both present.
func (p PersonRecord) Key() PersonKey {
	return PersonKey{CRN: p.CRN, UnitNum: p.UnitNum.Int64, PersonNum: p.PersonNum.Int64}
}
