// Package resolve applies table-local repair rules after recoding and before
// the join. Each rule is a named, pure function over a single record (or, for
// the group-statistic coordinate fill, over one table), and the rule order is
// explicit data so it can be audited and swapped.
//
// The rules here are narrow domain repairs, not statistical imputation:
// weather/road-condition consistency, vehicle-count presence collapse, the
// hour-of-day fallback chain, the CRN-keyed geolocation exception table, and
// the two composite-key repairs (unit-number backfill, the single scoped
// person/unit duplicate). Any composite-key collision outside the scoped
// exception fails the run.
package resolve
