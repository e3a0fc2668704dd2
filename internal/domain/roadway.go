package domain

import "database/sql"

// RoadwaySegment is zero-or-more records per crash. CRN is deliberately not
// unique here: a crash at an intersection references every segment it touches.
type RoadwaySegment struct {
	CRN    string
	SeqNum sql.NullInt64

	SpeedLimit  sql.NullInt64
	RouteNumber sql.NullString
	LaneCount   sql.NullInt64
}
