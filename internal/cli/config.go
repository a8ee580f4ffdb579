package cli

import "github.com/testplan-tools/treport/internal/errors"

// FilterConfig holds the configuration for pruning a report with a search query (used by `Filter`).
type FilterConfig struct {
	ReportPath     string
	StructurePath  string
	AssertionGlobs []string
	Search         string
	OutputPath     string
}

func (fc FilterConfig) Validate() error {
	if fc.ReportPath == "" {
		return errors.NewConfigurationError("no report file provided")
	}

	return nil
}

// MergeConfig holds the configuration for reassembling a split report (used by `Merge`).
type MergeConfig struct {
	ReportPath     string
	StructurePath  string
	AssertionGlobs []string
	OutputPath     string
}

func (mc MergeConfig) Validate() error {
	if mc.ReportPath == "" {
		return errors.NewConfigurationError("no report file provided")
	}

	if mc.StructurePath == "" {
		return errors.NewConfigurationError("no structure file provided")
	}

	if len(mc.AssertionGlobs) == 0 {
		return errors.NewConfigurationError("no assertion files provided")
	}

	return nil
}

// FlattenConfig holds the configuration for merging sharded multitests (used by `Flatten`).
type FlattenConfig struct {
	ReportPath     string
	StructurePath  string
	AssertionGlobs []string
	OutputPath     string
}

func (fc FlattenConfig) Validate() error {
	if fc.ReportPath == "" {
		return errors.NewConfigurationError("no report file provided")
	}

	return nil
}

// InspectConfig holds the configuration for printing a report summary (used by `Inspect`).
type InspectConfig struct {
	ReportPath     string
	StructurePath  string
	AssertionGlobs []string
	OutputPath     string
}

func (ic InspectConfig) Validate() error {
	if ic.ReportPath == "" {
		return errors.NewConfigurationError("no report file provided")
	}

	return nil
}
