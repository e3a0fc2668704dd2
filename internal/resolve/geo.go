package resolve

import (
	"database/sql"
	"log/slog"

	"crashprep/internal/domain"
)

// coordinateFix holds the verified replacement for a known-bad coordinate
// record. A fix with invalid fields clears the coordinates to missing so the
// group-mean fill can take over.
type coordinateFix struct {
	Latitude  sql.NullFloat64
	Longitude sql.NullFloat64
}

// coordinateFixes is the finite exception table of manually verified
// geolocation repairs, keyed by CRN rather than row position so the fixes
// survive changes in ingestion order. Extend by adding entries, not logic.
var coordinateFixes = map[string]coordinateFix{
	// Digitized with transposed digits; corrected against the municipal map.
	"2019045102": {
		Latitude:  sql.NullFloat64{Float64: 40.273700, Valid: true},
		Longitude: sql.NullFloat64{Float64: -76.884400, Valid: true},
	},
	// Coordinates place the crash in the Atlantic; cleared to missing.
	"2019078821": {},
}

// FixKnownCoordinates applies the exception table to the crash slice.
func FixKnownCoordinates(logger *slog.Logger, crashes []domain.CrashEvent) {
	for i := range crashes {
		fix, ok := coordinateFixes[crashes[i].CRN]
		if !ok {
			continue
		}
		crashes[i].Latitude = fix.Latitude
		crashes[i].Longitude = fix.Longitude
		logger.Info("Applied coordinate fix",
			slog.String("crn", crashes[i].CRN),
			slog.Bool("cleared", !fix.Latitude.Valid))
	}
}

// FillCoordinatesByGroup fills coordinates still missing after the exception
// table with the mean coordinate of same-municipality records, falling back
// to the same-county mean when the municipality group has no usable value.
// This is the one group statistic applied at resolve time; it is a fixed
// geographic anchor, not an outcome-correlated fill.
func FillCoordinatesByGroup(logger *slog.Logger, crashes []domain.CrashEvent) {
	muniLat := newGroupMean()
	muniLong := newGroupMean()
	countyLat := newGroupMean()
	countyLong := newGroupMean()

	for i := range crashes {
		c := &crashes[i]
		if c.Latitude.Valid && c.Municipality.Valid {
			muniLat.add(c.Municipality.String, c.Latitude.Float64)
		}
		if c.Longitude.Valid && c.Municipality.Valid {
			muniLong.add(c.Municipality.String, c.Longitude.Float64)
		}
		if c.Latitude.Valid && c.County.Valid {
			countyLat.add(c.County.String, c.Latitude.Float64)
		}
		if c.Longitude.Valid && c.County.Valid {
			countyLong.add(c.County.String, c.Longitude.Float64)
		}
	}

	filled := 0
	for i := range crashes {
		c := &crashes[i]
		if !c.Latitude.Valid {
			if v, ok := lookupMean(muniLat, countyLat, c); ok {
				c.Latitude = sql.NullFloat64{Float64: v, Valid: true}
				filled++
			}
		}
		if !c.Longitude.Valid {
			if v, ok := lookupMean(muniLong, countyLong, c); ok {
				c.Longitude = sql.NullFloat64{Float64: v, Valid: true}
			}
		}
	}

	logger.Info("Filled missing coordinates by group mean", slog.Int("records", filled))
}

// lookupMean tries the municipality mean first, then the county mean.
func lookupMean(muni, county *groupMean, c *domain.CrashEvent) (float64, bool) {
	if c.Municipality.Valid {
		if v, ok := muni.mean(c.Municipality.String); ok {
			return v, true
		}
	}
	if c.County.Valid {
		if v, ok := county.mean(c.County.String); ok {
			return v, true
		}
	}
	return 0, false
}

// groupMean accumulates per-group sums for mean computation.
type groupMean struct {
	sum   map[string]float64
	count map[string]int
}

func newGroupMean() *groupMean {
	return &groupMean{sum: make(map[string]float64), count: make(map[string]int)}
}

func (g *groupMean) add(key string, v float64) {
	g.sum[key] += v
	g.count[key]++
}

func (g *groupMean) mean(key string) (float64, bool) {
	n := g.count[key]
	if n == 0 {
		return 0, false
	}
	return g.sum[key] / float64(n), true
}
