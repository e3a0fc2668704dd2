package operations

import (
	"context"
	"fmt"
	"log/slog"

	"crashprep/internal/config"
	"crashprep/internal/derive"
	"crashprep/internal/exporter"
	"crashprep/internal/impute"
	"crashprep/internal/join"
	"crashprep/internal/loader"
	"crashprep/internal/recode"
	"crashprep/internal/resolve"
)

// Raw table keys in State.RawTables.
const (
	TableCrash   = "crash"
	TableVehicle = "vehicle"
	TablePerson  = "person"
	TableRoadway = "roadway"
)

// DefaultSteps returns the full pipeline in execution order.
func DefaultSteps(cfg *config.Config, logger *slog.Logger) []Step {
	return []Step{
		&LoadStep{cfg: cfg, logger: logger},
		&RecodeStep{logger: logger},
		&ResolveStep{logger: logger},
		&JoinStep{logger: logger},
		&ImputeStep{logger: logger},
		&DeriveStep{logger: logger},
		&ExportStep{cfg: cfg, logger: logger},
	}
}

// LoadStep reads the four source tables from the data directory.
type LoadStep struct {
	cfg    *config.Config
	logger *slog.Logger
}

func (s *LoadStep) ID() string   { return "load" }
func (s *LoadStep) Name() string { return "Load source tables" }

func (s *LoadStep) Execute(ctx context.Context, state *State) error {
	inputs := map[string]string{
		TableCrash:   s.cfg.Inputs.CrashFile,
		TableVehicle: s.cfg.Inputs.VehicleFile,
		TablePerson:  s.cfg.Inputs.PersonFile,
		TableRoadway: s.cfg.Inputs.RoadwayFile,
	}

	for kind, file := range inputs {
		path := s.cfg.InputPath(file)
		table, err := loader.ReadTable(path)
		if err != nil {
			return fmt.Errorf("failed to load %s table from %s: %w", kind, path, err)
		}
		state.RawTables[kind] = table
		s.logger.Info("Loaded source table",
			slog.String("table", kind),
			slog.String("path", path),
			slog.Int("rows", table.Len()))
	}
	return nil
}

// RecodeStep translates raw codes into labels and typed values.
type RecodeStep struct {
	logger *slog.Logger
}

func (s *RecodeStep) ID() string   { return "recode" }
func (s *RecodeStep) Name() string { return "Recode fields" }

func (s *RecodeStep) Execute(ctx context.Context, state *State) error {
	var err error
	if state.Crashes, err = recode.Crashes(s.logger, state.RawTables[TableCrash]); err != nil {
		return err
	}
	if state.Units, err = recode.Units(s.logger, state.RawTables[TableVehicle]); err != nil {
		return err
	}
	if state.Persons, err = recode.Persons(s.logger, state.RawTables[TablePerson]); err != nil {
		return err
	}
	if state.Segments, err = recode.Roadways(s.logger, state.RawTables[TableRoadway]); err != nil {
		return err
	}
	return nil
}

// ResolveStep applies the cross-field repair rules and key repairs.
type ResolveStep struct {
	logger *slog.Logger
}

func (s *ResolveStep) ID() string   { return "resolve" }
func (s *ResolveStep) Name() string { return "Resolve cross-field conflicts" }

func (s *ResolveStep) Execute(ctx context.Context, state *State) error {
	resolver := resolve.New(s.logger)

	state.Crashes = resolver.Crashes(state.Crashes)

	units, err := resolver.Units(state.Units)
	if err != nil {
		return err
	}
	state.Units = units

	persons, err := resolver.Persons(state.Persons)
	if err != nil {
		return err
	}
	state.Persons = persons
	return nil
}

// JoinStep builds the denormalized cyclist table.
type JoinStep struct {
	logger *slog.Logger
}

func (s *JoinStep) ID() string   { return "join" }
func (s *JoinStep) Name() string { return "Join entities" }

func (s *JoinStep) Execute(ctx context.Context, state *State) error {
	joiner := join.New(s.logger)
	cyclists, err := joiner.Build(state.Persons, state.Units, state.Crashes, state.Segments)
	if err != nil {
		return err
	}
	state.Cyclists = cyclists
	return nil
}

// ImputeStep applies the immediate unknown-category fills. Deferred group
// statistics are never fitted here; they belong to the modeling consumer.
type ImputeStep struct {
	logger *slog.Logger
}

func (s *ImputeStep) ID() string   { return "impute" }
func (s *ImputeStep) Name() string { return "Fill missing values" }

func (s *ImputeStep) Execute(ctx context.Context, state *State) error {
	impute.ApplyImmediate(s.logger, state.Cyclists)
	return nil
}

// DeriveStep computes the outcome flag and age bins.
type DeriveStep struct {
	logger *slog.Logger
}

func (s *DeriveStep) ID() string   { return "derive" }
func (s *DeriveStep) Name() string { return "Derive features" }

func (s *DeriveStep) Execute(ctx context.Context, state *State) error {
	derive.Apply(s.logger, state.Cyclists)
	return nil
}

// ExportStep writes the artifacts to the reports directory.
type ExportStep struct {
	cfg    *config.Config
	logger *slog.Logger
}

func (s *ExportStep) ID() string   { return "export" }
func (s *ExportStep) Name() string { return "Export artifacts" }

func (s *ExportStep) Execute(ctx context.Context, state *State) error {
	writer := exporter.NewArtifactWriter(s.cfg.Paths.ReportsDir, s.logger)

	if err := writer.WriteCyclists(s.cfg.Export.CyclistsFile, state.Cyclists); err != nil {
		return err
	}
	if err := writer.WriteCrashes(s.cfg.Export.CrashesFile, state.Crashes); err != nil {
		return err
	}

	if s.cfg.Export.SQLite {
		sqlWriter := exporter.NewSQLiteWriter(s.cfg.ReportPath(s.cfg.Export.SQLiteFile), s.logger)
		if err := sqlWriter.Write(ctx, state.Cyclists, state.Crashes); err != nil {
			return err
		}
	}
	return nil
}
