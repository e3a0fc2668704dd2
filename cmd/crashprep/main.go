package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"

	"crashprep/internal/config"
	"crashprep/internal/infrastructure"
	"crashprep/internal/operations"
)

func main() {
	inDir := flag.String("in", "", "input directory holding the crash, bicycle, person and roadway tables")
	outDir := flag.String("out", "", "output directory for the cyclist and crash artifacts")
	configFile := flag.String("config", "", "optional YAML config file")
	sqlite := flag.Bool("sqlite", false, "also write a SQLite artifact next to the CSV files")
	traceOut := flag.String("trace", "", "write trace spans to this file (default: tracing disabled)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Flags override whatever the config file and environment decided.
	if *inDir != "" {
		cfg.Paths.DataDir = *inDir
	}
	if *outDir != "" {
		cfg.Paths.ReportsDir = *outDir
	}
	if *sqlite {
		cfg.Export.SQLite = true
	}

	if err := cfg.EnsureDirectories(); err != nil {
		slog.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := context.Background()

	if *traceOut != "" {
		traceFile, err := os.Create(*traceOut)
		if err != nil {
			logger.Error("Failed to create trace file", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer traceFile.Close()

		shutdown, err := infrastructure.InitTracing(io.Writer(traceFile))
		if err != nil {
			logger.Error("Failed to initialize tracing", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer shutdown(ctx)
	}

	logger.Info("Starting crash data preparation",
		slog.String("input_dir", cfg.Paths.DataDir),
		slog.String("output_dir", cfg.Paths.ReportsDir),
		slog.Bool("sqlite", cfg.Export.SQLite))

	manager := operations.NewManager(logger, operations.DefaultSteps(cfg, logger)...)
	if _, err := manager.Run(ctx); err != nil {
		logger.Error("Preparation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Preparation completed",
		slog.String("cyclists", cfg.ReportPath(cfg.Export.CyclistsFile)),
		slog.String("crashes", cfg.ReportPath(cfg.Export.CrashesFile)))
}
