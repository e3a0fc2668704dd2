package resolve

import (
	"database/sql"

	"crashprep/internal/domain"
)

// DeriveVehiclePresence collapses the vehicle-type count fields to boolean
// presence flags. A missing count propagates as a missing flag, never false.
func DeriveVehiclePresence(c *domain.CrashEvent) {
	c.BusPresent = countToPresence(c.BusCount)
	c.HeavyTruckPresent = countToPresence(c.HeavyTruckCount)
	c.SmallTruckPresent = countToPresence(c.SmallTruckCount)
	c.SUVPresent = countToPresence(c.SUVCount)
	c.VanPresent = countToPresence(c.VanCount)
}

func countToPresence(count sql.NullInt64) sql.NullBool {
	if !count.Valid {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: count.Int64 > 0, Valid: true}
}

// FillHourOfDay fills a missing hour from the finer-grained time fields, in
// priority order: time of crash, dispatch time, arrival time. All three carry
// military HHMM values, so the hour is the integer division by 100. Records
// still missing after the chain are left for the deferred global-mode stage.
func FillHourOfDay(c *domain.CrashEvent) {
	if c.HourOfDay.Valid {
		return
	}
	for _, t := range []sql.NullInt64{c.TimeOfDay, c.DispatchTime, c.ArrivalTime} {
		if !t.Valid {
			continue
		}
		hour := t.Int64 / 100
		if hour >= 0 && hour <= 23 {
			c.HourOfDay = sql.NullInt64{Int64: hour, Valid: true}
			return
		}
	}
}

// crashRule is one named repair step over a single crash record.
type crashRule struct {
	name  string
	apply func(*domain.CrashEvent)
}

// crashRules is the ordered rule pipeline for the crash table. The order is
// load-bearing: weather must be consolidated before the road-condition
// inferences can read it.
var crashRules = []crashRule{
	{name: "consolidate_weather", apply: ConsolidateWeather},
	{name: "infer_weather_from_road_condition", apply: InferWeatherFromRoadCondition},
	{name: "infer_road_condition_from_weather", apply: InferRoadConditionFromWeather},
	{name: "derive_vehicle_presence", apply: DeriveVehiclePresence},
	{name: "fill_hour_of_day", apply: FillHourOfDay},
}
