// Package operations orchestrates the preparation pipeline.
//
// A pipeline run is a fixed sequence of steps (load, recode, resolve, join,
// impute, derive, export) executed by the Manager against a shared State.
// Each run gets a unique ID and each step a trace span, a StepState with
// timing, and structured log lines. Any step error aborts the run; the
// remaining steps are never attempted, so a failed run cannot leave a
// fully-written artifact pair behind.
package operations
