package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Inputs  InputsConfig  `yaml:"inputs" envconfig:"INPUTS"`
	Export  ExportConfig  `yaml:"export" envconfig:"EXPORT"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stdout" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/crashprep.log"`
}

// PathsConfig contains file system paths configuration.
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" default:"data" validate:"required"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" default:"reports" validate:"required"`
	LogsDir    string `yaml:"logs_dir" envconfig:"LOGS_DIR" default:"logs"`
}

// InputsConfig names the four source tables inside the data directory.
// Files may be .csv or .xlsx; the loader dispatches on the extension.
type InputsConfig struct {
	CrashFile   string `yaml:"crash_file" envconfig:"CRASH_FILE" default:"crashes.csv" validate:"required"`
	VehicleFile string `yaml:"vehicle_file" envconfig:"VEHICLE_FILE" default:"bicycles.csv" validate:"required"`
	PersonFile  string `yaml:"person_file" envconfig:"PERSON_FILE" default:"persons.csv" validate:"required"`
	RoadwayFile string `yaml:"roadway_file" envconfig:"ROADWAY_FILE" default:"roadway.csv" validate:"required"`
}

// ExportConfig names the artifacts written to the reports directory.
type ExportConfig struct {
	CyclistsFile string `yaml:"cyclists_file" envconfig:"CYCLISTS_FILE" default:"cyclists.csv" validate:"required"`
	CrashesFile  string `yaml:"crashes_file" envconfig:"CRASHES_FILE" default:"crashes.csv" validate:"required"`
	SQLite       bool   `yaml:"sqlite" envconfig:"SQLITE" default:"false"`
	SQLiteFile   string `yaml:"sqlite_file" envconfig:"SQLITE_FILE" default:"crashprep.db"`
}

// Load loads configuration from environment variables and an optional YAML
// file. Environment variables win over file values, file values win over
// defaults.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("CRASHPREP", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileCfg, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(*fileCfg, cfg)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from a YAML file, applying envconfig
// defaults first so unset file keys keep their default values.
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs overlays env-derived values on top of file values. Only fields
// that differ from their envconfig defaults are treated as explicitly set.
func mergeConfigs(file, env Config) Config {
	var defaults Config
	_ = envconfig.Process("", &defaults)

	merged := file
	if env.Logging.Level != defaults.Logging.Level {
		merged.Logging.Level = env.Logging.Level
	}
	if env.Logging.Output != defaults.Logging.Output {
		merged.Logging.Output = env.Logging.Output
	}
	if env.Logging.FilePath != defaults.Logging.FilePath {
		merged.Logging.FilePath = env.Logging.FilePath
	}
	if env.Paths.DataDir != defaults.Paths.DataDir {
		merged.Paths.DataDir = env.Paths.DataDir
	}
	if env.Paths.ReportsDir != defaults.Paths.ReportsDir {
		merged.Paths.ReportsDir = env.Paths.ReportsDir
	}
	if env.Paths.LogsDir != defaults.Paths.LogsDir {
		merged.Paths.LogsDir = env.Paths.LogsDir
	}
	if env.Inputs.CrashFile != defaults.Inputs.CrashFile {
		merged.Inputs.CrashFile = env.Inputs.CrashFile
	}
	if env.Inputs.VehicleFile != defaults.Inputs.VehicleFile {
		merged.Inputs.VehicleFile = env.Inputs.VehicleFile
	}
	if env.Inputs.PersonFile != defaults.Inputs.PersonFile {
		merged.Inputs.PersonFile = env.Inputs.PersonFile
	}
	if env.Inputs.RoadwayFile != defaults.Inputs.RoadwayFile {
		merged.Inputs.RoadwayFile = env.Inputs.RoadwayFile
	}
	if env.Export.CyclistsFile != defaults.Export.CyclistsFile {
		merged.Export.CyclistsFile = env.Export.CyclistsFile
	}
	if env.Export.CrashesFile != defaults.Export.CrashesFile {
		merged.Export.CrashesFile = env.Export.CrashesFile
	}
	if env.Export.SQLite != defaults.Export.SQLite {
		merged.Export.SQLite = env.Export.SQLite
	}
	if env.Export.SQLiteFile != defaults.Export.SQLiteFile {
		merged.Export.SQLiteFile = env.Export.SQLiteFile
	}
	return merged
}

// validate checks the configuration with struct tags.
func (c *Config) validate() error {
	return validator.New().Struct(c)
}

// InputPath returns the full path of a source file inside the data directory.
func (c *Config) InputPath(name string) string {
	return filepath.Join(c.Paths.DataDir, name)
}

// ReportPath returns the full path of an artifact inside the reports directory.
func (c *Config) ReportPath(name string) string {
	return filepath.Join(c.Paths.ReportsDir, name)
}

// LogPath returns the full path of a log file inside the logs directory.
func (c *Config) LogPath(name string) string {
	return filepath.Join(c.Paths.LogsDir, name)
}

// EnsureDirectories creates the reports and logs directories if needed.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.ReportsDir, c.Paths.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
