package exporter

import (
	"fmt"
	"log/slog"
	"strconv"

	"crashprep/internal/domain"
)

// Artifact column orders. These are the public contract of the output files;
// reorder only with a coordinated downstream change.
var cyclistHeaders = []string{
	"CRN", "UNIT_NUM", "PERSON_NUM",
	"AGE", "SEX", "PERSON_TYPE", "INJ_SEVERITY", "RESTRAINT_HELMET",
	"UNIT_TYPE", "VEH_ROLE", "VEH_POSITION", "VEH_MOVEMENT",
	"IMPACT_SIDE", "GRADE", "RDWY_ALIGNMENT",
	"CRASH_YEAR", "CRASH_MONTH", "DAY_OF_WEEK", "HOUR_OF_DAY",
	"WEATHER", "ROAD_CONDITION", "ILLUMINATION", "URBAN_RURAL",
	"COUNTY", "MUNICIPALITY", "DEC_LAT", "DEC_LONG",
	"RELATION_TO_ROAD", "COLLISION_TYPE",
	"SPEEDING_RELATED", "AGGRESSIVE_DRIVING", "TAILGATING",
	"RUNNING_RED_LT", "DRINKING_DRIVER", "DRUGGED_DRIVER", "HIT_RUN",
	"BUS_PRESENT", "HEAVY_TRUCK_PRESENT", "SMALL_TRUCK_PRESENT",
	"SUV_PRESENT", "VAN_PRESENT",
	"SPEED_LIMIT",
	"SERIOUS_OR_FATALITY", "AGE_BIN",
}

var crashHeaders = []string{
	"CRN",
	"CRASH_YEAR", "CRASH_MONTH", "DAY_OF_WEEK", "HOUR_OF_DAY",
	"WEATHER", "ROAD_CONDITION", "ILLUMINATION", "URBAN_RURAL",
	"COUNTY", "MUNICIPALITY", "DEC_LAT", "DEC_LONG",
	"RELATION_TO_ROAD", "COLLISION_TYPE",
	"SPEEDING_RELATED", "AGGRESSIVE_DRIVING", "TAILGATING",
	"RUNNING_RED_LT", "DRINKING_DRIVER", "DRUGGED_DRIVER", "HIT_RUN",
	"BUS_PRESENT", "HEAVY_TRUCK_PRESENT", "SMALL_TRUCK_PRESENT",
	"SUV_PRESENT", "VAN_PRESENT",
}

// ArtifactWriter streams the cyclist and crash tables into BOM-prefixed CSV
// files under the reports directory.
type ArtifactWriter struct {
	csv    *CSVWriter
	logger *slog.Logger
}

// NewArtifactWriter creates an artifact writer rooted at reportsDir.
func NewArtifactWriter(reportsDir string, logger *slog.Logger) *ArtifactWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArtifactWriter{csv: NewCSVWriter(reportsDir), logger: logger}
}

// WriteCyclists writes the cyclist artifact to fileName.
func (w *ArtifactWriter) WriteCyclists(fileName string, records []domain.CyclistCrashRecord) error {
	stream, err := w.csv.CreateStreamWriter(fileName, cyclistHeaders)
	if err != nil {
		return fmt.Errorf("failed to open cyclist artifact: %w", err)
	}

	for i := range records {
		if err := stream.WriteRecord(cyclistRow(&records[i])); err != nil {
			stream.Close()
			return fmt.Errorf("failed to write cyclist record %d: %w", i, err)
		}
	}
	if err := stream.Close(); err != nil {
		return fmt.Errorf("failed to finalize cyclist artifact: %w", err)
	}

	w.logger.Info("Wrote cyclist artifact",
		slog.String("file", fileName),
		slog.Int("records", len(records)))
	return nil
}

// WriteCrashes writes the crash artifact to fileName.
func (w *ArtifactWriter) WriteCrashes(fileName string, crashes []domain.CrashEvent) error {
	stream, err := w.csv.CreateStreamWriter(fileName, crashHeaders)
	if err != nil {
		return fmt.Errorf("failed to open crash artifact: %w", err)
	}

	for i := range crashes {
		if err := stream.WriteRecord(crashRow(&crashes[i])); err != nil {
			stream.Close()
			return fmt.Errorf("failed to write crash record %d: %w", i, err)
		}
	}
	if err := stream.Close(); err != nil {
		return fmt.Errorf("failed to finalize crash artifact: %w", err)
	}

	w.logger.Info("Wrote crash artifact",
		slog.String("file", fileName),
		slog.Int("records", len(crashes)))
	return nil
}

func cyclistRow(r *domain.CyclistCrashRecord) []string {
	return []string{
		r.CRN,
		strconv.FormatInt(r.UnitNum, 10),
		strconv.FormatInt(r.PersonNum, 10),
		cellInt(r.Age),
		cellString(r.Sex),
		cellString(r.PersonType),
		cellString(r.InjurySeverity),
		cellString(r.RestraintHelmet),
		cellString(r.UnitType),
		cellString(r.VehRole),
		cellString(r.VehPosition),
		cellString(r.VehMovement),
		cellString(r.ImpactSide),
		cellString(r.Grade),
		cellString(r.Alignment),
		cellInt(r.CrashYear),
		cellInt(r.CrashMonth),
		cellString(r.DayOfWeek),
		cellInt(r.HourOfDay),
		cellString(r.Weather),
		cellString(r.RoadCondition),
		cellString(r.Illumination),
		cellString(r.UrbanRural),
		cellString(r.County),
		cellString(r.Municipality),
		cellFloat(r.Latitude),
		cellFloat(r.Longitude),
		cellString(r.RelationToRoad),
		cellString(r.CollisionType),
		cellBool(r.SpeedingRelated),
		cellBool(r.AggressiveDriving),
		cellBool(r.Tailgating),
		cellBool(r.RunningRedLight),
		cellBool(r.DrinkingDriver),
		cellBool(r.DruggedDriver),
		cellBool(r.HitAndRun),
		cellBool(r.BusPresent),
		cellBool(r.HeavyTruckPresent),
		cellBool(r.SmallTruckPresent),
		cellBool(r.SUVPresent),
		cellBool(r.VanPresent),
		cellInt(r.SpeedLimit),
		strconv.FormatInt(r.SeriousOrFatality, 10),
		cellString(r.AgeBin),
	}
}

func crashRow(c *domain.CrashEvent) []string {
	return []string{
		c.CRN,
		cellInt(c.CrashYear),
		cellInt(c.CrashMonth),
		cellString(c.DayOfWeek),
		cellInt(c.HourOfDay),
		cellString(c.Weather),
		cellString(c.RoadCondition),
		cellString(c.Illumination),
		cellString(c.UrbanRural),
		cellString(c.County),
		cellString(c.Municipality),
		cellFloat(c.Latitude),
		cellFloat(c.Longitude),
		cellString(c.RelationToRoad),
		cellString(c.CollisionType),
		cellBool(c.SpeedingRelated),
		cellBool(c.AggressiveDriving),
		cellBool(c.Tailgating),
		cellBool(c.RunningRedLight),
		cellBool(c.DrinkingDriver),
		cellBool(c.DruggedDriver),
		cellBool(c.HitAndRun),
		cellBool(c.BusPresent),
		cellBool(c.HeavyTruckPresent),
		cellBool(c.SmallTruckPresent),
		cellBool(c.SUVPresent),
		cellBool(c.VanPresent),
	}
}
