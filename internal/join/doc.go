// Package join reconciles the four resolved source tables into the
// denormalized cyclist-in-crash entity. Persons are inner-joined to vehicle
// units on (CRN, UnitNum) and kept only when the unit type is a pedal cycle;
// crash context is left-joined by CRN (a miss is a fatal JoinGap); the
// roadway table is pre-aggregated to one minimum-speed-limit row per CRN
// before its left join, so the roadway relation can never duplicate rows.
package join
