package recode

import (
	"database/sql"
	"log/slog"

	"crashprep/internal/domain"
	"crashprep/internal/loader"
)

// Crash table column names as shipped by the ingestion collaborator.
const (
	colCRN            = "CRN"
	colCrashYear      = "CRASH_YEAR"
	colCrashMonth     = "CRASH_MONTH"
	colDayOfWeek      = "DAY_OF_WEEK"
	colHourOfDay      = "HOUR_OF_DAY"
	colTimeOfDay      = "TIME_OF_DAY"
	colDispatchTime   = "DISPATCH_TM"
	colArrivalTime    = "ARRIVAL_TM"
	colWeather1       = "WEATHER1"
	colWeather2       = "WEATHER2"
	colRoadCondition  = "ROAD_CONDITION"
	colIllumination   = "ILLUMINATION"
	colUrbanRural     = "URBAN_RURAL"
	colCounty         = "COUNTY"
	colMunicipality   = "MUNICIPALITY"
	colLatitude       = "DEC_LAT"
	colLongitude      = "DEC_LONG"
	colRelationToRoad = "RELATION_TO_ROAD"
	colCollisionType  = "COLLISION_TYPE"

	colSpeedingRelated   = "SPEEDING_RELATED"
	colAggressiveDriving = "AGGRESSIVE_DRIVING"
	colTailgating        = "TAILGATING"
	colRunningRedLight   = "RUNNING_RED_LT"
	colDrinkingDriver    = "DRINKING_DRIVER"
	colDruggedDriver     = "DRUGGED_DRIVER"
	colHitAndRun         = "HIT_RUN"

	colBusCount        = "BUS_COUNT"
	colHeavyTruckCount = "HEAVY_TRUCK_COUNT"
	colSmallTruckCount = "SMALL_TRUCK_COUNT"
	colSUVCount        = "SUV_COUNT"
	colVanCount        = "VAN_COUNT"
)

// Unit, person and roadway column names.
const (
	colUnitNum     = "UNIT_NUM"
	colUnitType    = "UNIT_TYPE"
	colVehRole     = "VEH_ROLE"
	colVehPosition = "VEH_POSITION"
	colVehMovement = "VEH_MOVEMENT"
	colImpactPoint = "IMPACT_POINT"
	colGrade       = "GRADE"
	colAlignment   = "RDWY_ALIGNMENT"

	colPersonNum       = "PERSON_NUM"
	colAge             = "AGE"
	colSex             = "SEX"
	colPersonType      = "PERSON_TYPE"
	colInjurySeverity  = "INJ_SEVERITY"
	colRestraintHelmet = "RESTRAINT_HELMET"

	colRoadwaySeq  = "RDWY_SEQ"
	colSpeedLimit  = "SPEED_LIMIT"
	colRouteNumber = "ROUTE"
	colLaneCount   = "LANE_COUNT"
)

// hourSentinel is the unknown code for HOUR_OF_DAY.
const hourSentinel = 99

// Crashes recodes the raw crash table into CrashEvent values. Weather stays
// split across primary and secondary until the resolver consolidates it.
func Crashes(logger *slog.Logger, t *loader.RawTable) ([]domain.CrashEvent, error) {
	if err := t.RequireColumns(colCRN, colWeather1, colRoadCondition); err != nil {
		return nil, err
	}

	crashes := make([]domain.CrashEvent, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		crashes = append(crashes, domain.CrashEvent{
			CRN:          t.Field(i, colCRN),
			CrashYear:    CoerceInt(t.Field(i, colCrashYear)),
			CrashMonth:   CoerceInt(t.Field(i, colCrashMonth)),
			DayOfWeek:    DayOfWeek.Recode(t.Field(i, colDayOfWeek)),
			HourOfDay:    CoerceInt(t.Field(i, colHourOfDay), hourSentinel),
			TimeOfDay:    CoerceInt(t.Field(i, colTimeOfDay), 9999),
			DispatchTime: CoerceInt(t.Field(i, colDispatchTime), 9999),
			ArrivalTime:  CoerceInt(t.Field(i, colArrivalTime), 9999),

			Weather:          Weather.Recode(t.Field(i, colWeather1)),
			WeatherSecondary: Weather.Recode(t.Field(i, colWeather2)),
			RoadCondition:    RoadCondition.Recode(t.Field(i, colRoadCondition)),
			Illumination:     Illumination.Recode(t.Field(i, colIllumination)),
			UrbanRural:       UrbanRural.Recode(t.Field(i, colUrbanRural)),

			County:         nullString(t.Field(i, colCounty)),
			Municipality:   nullString(t.Field(i, colMunicipality)),
			Latitude:       CoerceFloat(t.Field(i, colLatitude)),
			Longitude:      CoerceFloat(t.Field(i, colLongitude)),
			RelationToRoad: RelationToRoad.Recode(t.Field(i, colRelationToRoad)),
			CollisionType:  CollisionType.Recode(t.Field(i, colCollisionType)),

			SpeedingRelated:   CoerceBool(t.Field(i, colSpeedingRelated)),
			AggressiveDriving: CoerceBool(t.Field(i, colAggressiveDriving)),
			Tailgating:        CoerceBool(t.Field(i, colTailgating)),
			RunningRedLight:   CoerceBool(t.Field(i, colRunningRedLight)),
			DrinkingDriver:    CoerceBool(t.Field(i, colDrinkingDriver)),
			DruggedDriver:     CoerceBool(t.Field(i, colDruggedDriver)),
			HitAndRun:         CoerceBool(t.Field(i, colHitAndRun)),

			BusCount:        CoerceInt(t.Field(i, colBusCount), 99),
			HeavyTruckCount: CoerceInt(t.Field(i, colHeavyTruckCount), 99),
			SmallTruckCount: CoerceInt(t.Field(i, colSmallTruckCount), 99),
			SUVCount:        CoerceInt(t.Field(i, colSUVCount), 99),
			VanCount:        CoerceInt(t.Field(i, colVanCount), 99),
		})
	}

	logger.Info("Recoded crash table", slog.Int("rows", len(crashes)))
	return crashes, nil
}

// Units recodes the raw bicycle vehicle-unit table.
func Units(logger *slog.Logger, t *loader.RawTable) ([]domain.VehicleUnit, error) {
	if err := t.RequireColumns(colCRN, colUnitNum, colUnitType); err != nil {
		return nil, err
	}

	units := make([]domain.VehicleUnit, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		units = append(units, domain.VehicleUnit{
			CRN:         t.Field(i, colCRN),
			UnitNum:     CoerceInt(t.Field(i, colUnitNum)),
			UnitType:    UnitType.Recode(t.Field(i, colUnitType)),
			VehRole:     VehRole.Recode(t.Field(i, colVehRole)),
			VehPosition: VehPosition.Recode(t.Field(i, colVehPosition)),
			VehMovement: VehMovement.Recode(t.Field(i, colVehMovement)),
			ImpactSide:  CollapseImpactPoint(t.Field(i, colImpactPoint)),
			Grade:       Grade.Recode(t.Field(i, colGrade)),
			Alignment:   Alignment.Recode(t.Field(i, colAlignment)),
		})
	}

	logger.Info("Recoded vehicle-unit table", slog.Int("rows", len(units)))
	return units, nil
}

// Persons recodes the raw person table. AGE arrives as mixed string/number
// content, so it is coerced numeric first with non-numeric tokens becoming
// missing.
func Persons(logger *slog.Logger, t *loader.RawTable) ([]domain.PersonRecord, error) {
	if err := t.RequireColumns(colCRN, colUnitNum, colPersonNum, colInjurySeverity); err != nil {
		return nil, err
	}

	persons := make([]domain.PersonRecord, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		persons = append(persons, domain.PersonRecord{
			CRN:             t.Field(i, colCRN),
			UnitNum:         CoerceInt(t.Field(i, colUnitNum)),
			PersonNum:       CoerceInt(t.Field(i, colPersonNum)),
			Age:             CoerceInt(t.Field(i, colAge), 99),
			Sex:             Sex.Recode(t.Field(i, colSex)),
			PersonType:      PersonType.Recode(t.Field(i, colPersonType)),
			InjurySeverity:  InjurySeverity.Recode(t.Field(i, colInjurySeverity)),
			RestraintHelmet: RestraintHelmet.Recode(t.Field(i, colRestraintHelmet)),
		})
	}

	logger.Info("Recoded person table", slog.Int("rows", len(persons)))
	return persons, nil
}

// Roadways recodes the raw roadway-segment table.
func Roadways(logger *slog.Logger, t *loader.RawTable) ([]domain.RoadwaySegment, error) {
	if err := t.RequireColumns(colCRN, colSpeedLimit); err != nil {
		return nil, err
	}

	segments := make([]domain.RoadwaySegment, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		segments = append(segments, domain.RoadwaySegment{
			CRN:         t.Field(i, colCRN),
			SeqNum:      CoerceInt(t.Field(i, colRoadwaySeq)),
			SpeedLimit:  CoerceInt(t.Field(i, colSpeedLimit), 99),
			RouteNumber: nullString(t.Field(i, colRouteNumber)),
			LaneCount:   CoerceInt(t.Field(i, colLaneCount), 99),
		})
	}

	logger.Info("Recoded roadway table", slog.Int("rows", len(segments)))
	return segments, nil
}

// nullString wraps a trimmed cell, treating the empty string as missing.
func nullString(raw string) sql.NullString {
	if raw == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: raw, Valid: true}
}
