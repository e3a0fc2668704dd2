package resolve

import (
	"log/slog"

	"crashprep/internal/domain"
)

// Resolver runs the ordered repair rules for each table.
type Resolver struct {
	logger *slog.Logger
}

// New creates a resolver. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{logger: logger}
}

// Crashes applies the per-record rule pipeline, then the dataset-level
// coordinate repairs (exception table first, group-mean fill second).
func (r *Resolver) Crashes(crashes []domain.CrashEvent) []domain.CrashEvent {
	for _, rule := range crashRules {
		for i := range crashes {
			rule.apply(&crashes[i])
		}
		r.logger.Debug("Applied crash repair rule", slog.String("rule", rule.name))
	}

	FixKnownCoordinates(r.logger, crashes)
	FillCoordinatesByGroup(r.logger, crashes)

	r.logger.Info("Resolved crash table", slog.Int("rows", len(crashes)))
	return crashes
}

// Units backfills missing unit numbers and verifies composite-key uniqueness.
func (r *Resolver) Units(units []domain.VehicleUnit) ([]domain.VehicleUnit, error) {
	BackfillUnitNumbers(r.logger, units)
	if err := VerifyUnitKeys(units); err != nil {
		return nil, err
	}
	r.logger.Info("Resolved vehicle-unit table", slog.Int("rows", len(units)))
	return units, nil
}

// Persons applies the scoped duplicate repair and verifies uniqueness.
func (r *Resolver) Persons(persons []domain.PersonRecord) ([]domain.PersonRecord, error) {
	if err := RepairPersonKeys(r.logger, persons); err != nil {
		return nil, err
	}
	r.logger.Info("Resolved person table", slog.Int("rows", len(persons)))
	return persons, nil
}
