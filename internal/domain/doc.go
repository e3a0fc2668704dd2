// Package domain defines the entities that flow through the crash preparation
// pipeline: the four raw source tables (CrashEvent, VehicleUnit, PersonRecord,
// RoadwaySegment) and the denormalized CyclistCrashRecord built from them.
//
// Missing values are represented with database/sql Null wrapper types. A field
// with Valid=false is explicitly absent; it is distinct from the empty string
// and from zero, exports as an empty CSV cell, and maps to NULL in SQLite.
//
// Entities are analytical snapshots: they are built once per pipeline run and
// never updated in place after the joiner hands them to later stages.
package domain
