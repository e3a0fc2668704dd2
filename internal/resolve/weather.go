package resolve

import (
	"database/sql"

	"crashprep/internal/domain"
)

// ConsolidateWeather collapses the two historical weather fields into one.
// Resolution order: substitute the secondary when the primary is missing,
// drop the secondary when it repeats the primary, and prefer a more specific
// secondary when the primary is the catch-all "clear". The secondary field is
// always cleared afterwards; downstream stages see a single weather field.
func ConsolidateWeather(c *domain.CrashEvent) {
	if !c.Weather.Valid && c.WeatherSecondary.Valid {
		c.Weather = c.WeatherSecondary
	}
	if c.Weather.Valid && c.WeatherSecondary.Valid &&
		c.Weather.String == c.WeatherSecondary.String {
		c.WeatherSecondary = sql.NullString{}
	}
	if c.Weather.Valid && c.Weather.String == "clear" &&
		c.WeatherSecondary.Valid && c.WeatherSecondary.String != "clear" {
		c.Weather = c.WeatherSecondary
	}
	c.WeatherSecondary = sql.NullString{}
}

// InferWeatherFromRoadCondition fills a missing weather from a dry road
// surface. This is a one-directional domain inference: dry pavement implies
// clear conditions, and nothing else is inferred from it.
func InferWeatherFromRoadCondition(c *domain.CrashEvent) {
	if !c.Weather.Valid && c.RoadCondition.Valid && c.RoadCondition.String == "dry" {
		c.Weather = sql.NullString{String: "clear", Valid: true}
	}
}

// InferRoadConditionFromWeather fills a missing road condition from rain.
// Symmetric counterpart of InferWeatherFromRoadCondition, equally narrow.
func InferRoadConditionFromWeather(c *domain.CrashEvent) {
	if !c.RoadCondition.Valid && c.Weather.Valid && c.Weather.String == "rain" {
		c.RoadCondition = sql.NullString{String: "wet", Valid: true}
	}
}
