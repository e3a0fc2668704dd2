package exporter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"crashprep/internal/domain"
	apperrors "crashprep/internal/errors"
)

const createTablesSQL = `
CREATE TABLE IF NOT EXISTS cyclists (
	crn TEXT NOT NULL,
	unit_num INTEGER NOT NULL,
	person_num INTEGER NOT NULL,
	age INTEGER,
	sex TEXT,
	person_type TEXT,
	inj_severity TEXT,
	restraint_helmet TEXT,
	unit_type TEXT,
	veh_role TEXT,
	veh_position TEXT,
	veh_movement TEXT,
	impact_side TEXT,
	grade TEXT,
	rdwy_alignment TEXT,
	crash_year INTEGER,
	crash_month INTEGER,
	day_of_week TEXT,
	hour_of_day INTEGER,
	weather TEXT,
	road_condition TEXT,
	illumination TEXT,
	urban_rural TEXT,
	county TEXT,
	municipality TEXT,
	dec_lat REAL,
	dec_long REAL,
	relation_to_road TEXT,
	collision_type TEXT,
	speeding_related INTEGER,
	aggressive_driving INTEGER,
	tailgating INTEGER,
	running_red_lt INTEGER,
	drinking_driver INTEGER,
	drugged_driver INTEGER,
	hit_run INTEGER,
	bus_present INTEGER,
	heavy_truck_present INTEGER,
	small_truck_present INTEGER,
	suv_present INTEGER,
	van_present INTEGER,
	speed_limit INTEGER,
	serious_or_fatality INTEGER NOT NULL,
	age_bin TEXT,
	PRIMARY KEY (crn, unit_num, person_num)
);

CREATE TABLE IF NOT EXISTS crashes (
	crn TEXT PRIMARY KEY,
	crash_year INTEGER,
	crash_month INTEGER,
	day_of_week TEXT,
	hour_of_day INTEGER,
	weather TEXT,
	road_condition TEXT,
	illumination TEXT,
	urban_rural TEXT,
	county TEXT,
	municipality TEXT,
	dec_lat REAL,
	dec_long REAL,
	relation_to_road TEXT,
	collision_type TEXT,
	speeding_related INTEGER,
	aggressive_driving INTEGER,
	tailgating INTEGER,
	running_red_lt INTEGER,
	drinking_driver INTEGER,
	drugged_driver INTEGER,
	hit_run INTEGER,
	bus_present INTEGER,
	heavy_truck_present INTEGER,
	small_truck_present INTEGER,
	suv_present INTEGER,
	van_present INTEGER
);
`

// SQLiteWriter mirrors the artifacts into a single-file SQLite database.
// Null wrapper values bind directly as SQL NULLs, so absence survives the
// round trip unchanged.
type SQLiteWriter struct {
	dbPath string
	logger *slog.Logger
}

// NewSQLiteWriter creates a writer targeting dbPath.
func NewSQLiteWriter(dbPath string, logger *slog.Logger) *SQLiteWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SQLiteWriter{dbPath: dbPath, logger: logger}
}

// Write creates the schema and inserts both artifacts in one transaction.
func (w *SQLiteWriter) Write(ctx context.Context, records []domain.CyclistCrashRecord, crashes []domain.CrashEvent) error {
	db, err := sql.Open("sqlite", w.dbPath)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to open database %s", w.dbPath), err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, createTablesSQL); err != nil {
		return apperrors.NewStorageError("failed to create tables", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return apperrors.NewStorageError("failed to begin transaction", err)
	}
	defer tx.Rollback()

	if err := insertCyclists(ctx, tx, records); err != nil {
		return err
	}
	if err := insertCrashes(ctx, tx, crashes); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return apperrors.NewStorageError("failed to commit", err)
	}

	w.logger.Info("Wrote SQLite artifact",
		slog.String("file", w.dbPath),
		slog.Int("cyclists", len(records)),
		slog.Int("crashes", len(crashes)))
	return nil
}

func insertCyclists(ctx context.Context, tx *sql.Tx, records []domain.CyclistCrashRecord) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO cyclists VALUES
		(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return apperrors.NewStorageError("failed to prepare cyclist insert", err)
	}
	defer stmt.Close()

	for i := range records {
		r := &records[i]
		_, err := stmt.ExecContext(ctx,
			r.CRN, r.UnitNum, r.PersonNum,
			r.Age, r.Sex, r.PersonType, r.InjurySeverity, r.RestraintHelmet,
			r.UnitType, r.VehRole, r.VehPosition, r.VehMovement,
			r.ImpactSide, r.Grade, r.Alignment,
			r.CrashYear, r.CrashMonth, r.DayOfWeek, r.HourOfDay,
			r.Weather, r.RoadCondition, r.Illumination, r.UrbanRural,
			r.County, r.Municipality, r.Latitude, r.Longitude,
			r.RelationToRoad, r.CollisionType,
			r.SpeedingRelated, r.AggressiveDriving, r.Tailgating,
			r.RunningRedLight, r.DrinkingDriver, r.DruggedDriver, r.HitAndRun,
			r.BusPresent, r.HeavyTruckPresent, r.SmallTruckPresent,
			r.SUVPresent, r.VanPresent,
			r.SpeedLimit, r.SeriousOrFatality, r.AgeBin,
		)
		if err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to insert cyclist record %d", i), err)
		}
	}
	return nil
}

func insertCrashes(ctx context.Context, tx *sql.Tx, crashes []domain.CrashEvent) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO crashes VALUES
		(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return apperrors.NewStorageError("failed to prepare crash insert", err)
	}
	defer stmt.Close()

	for i := range crashes {
		c := &crashes[i]
		_, err := stmt.ExecContext(ctx,
			c.CRN,
			c.CrashYear, c.CrashMonth, c.DayOfWeek, c.HourOfDay,
			c.Weather, c.RoadCondition, c.Illumination, c.UrbanRural,
			c.County, c.Municipality, c.Latitude, c.Longitude,
			c.RelationToRoad, c.CollisionType,
			c.SpeedingRelated, c.AggressiveDriving, c.Tailgating,
			c.RunningRedLight, c.DrinkingDriver, c.DruggedDriver, c.HitAndRun,
			c.BusPresent, c.HeavyTruckPresent, c.SmallTruckPresent,
			c.SUVPresent, c.VanPresent,
		)
		if err != nil {
			return apperrors.NewStorageError(fmt.Sprintf("failed to insert crash record %d", i), err)
		}
	}
	return nil
}
