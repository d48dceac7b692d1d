package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// DefaultTitle is the page title used when the configuration does not set one
const DefaultTitle = "Adult Social Care Dashboard"

// DashboardConfig represents the dashboard configuration file
type DashboardConfig struct {
	Title   string        `yaml:"title"`
	Columns ColumnMapping `yaml:"columns"`
}

// ColumnMapping maps the canonical column names to the headers used by the source file
type ColumnMapping struct {
	Region         string `yaml:"region"`
	LocalAuthority string `yaml:"local_authority"`
	Measure        string `yaml:"measure"`
	FinancialYear  string `yaml:"financial_year"`
	Value          string `yaml:"value"`
}

// DefaultDashboardConfig returns the configuration used when no file is given
func DefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		Title:   DefaultTitle,
		Columns: DefaultColumnMapping(),
	}
}

// DefaultColumnMapping returns a mapping where source headers equal the canonical names
func DefaultColumnMapping() ColumnMapping {
	return ColumnMapping{
		Region:         ColumnRegion,
		LocalAuthority: ColumnLocalAuthority,
		Measure:        ColumnMeasure,
		FinancialYear:  ColumnFinancialYear,
		Value:          ColumnValue,
	}
}

// ApplyDefaults fills empty fields with default values
func (c *DashboardConfig) ApplyDefaults() {
	if c.Title == "" {
		c.Title = DefaultTitle
	}

	defaults := DefaultColumnMapping()
	if c.Columns.Region == "" {
		c.Columns.Region = defaults.Region
	}
	if c.Columns.LocalAuthority == "" {
		c.Columns.LocalAuthority = defaults.LocalAuthority
	}
	if c.Columns.Measure == "" {
		c.Columns.Measure = defaults.Measure
	}
	if c.Columns.FinancialYear == "" {
		c.Columns.FinancialYear = defaults.FinancialYear
	}
	if c.Columns.Value == "" {
		c.Columns.Value = defaults.Value
	}
}

// Validate validates the dashboard configuration
func (c *DashboardConfig) Validate() error {
	if c.Title == "" {
		return goerr.New("title is required")
	}
	return c.Columns.Validate()
}

// Pairs returns (source header, canonical name) pairs in canonical column order
func (m ColumnMapping) Pairs() [][2]string {
	return [][2]string{
		{m.Region, ColumnRegion},
		{m.LocalAuthority, ColumnLocalAuthority},
		{m.Measure, ColumnMeasure},
		{m.FinancialYear, ColumnFinancialYear},
		{m.Value, ColumnValue},
	}
}

// Validate checks that every column has a header and no header is used twice
func (m ColumnMapping) Validate() error {
	seen := make(map[string]bool)
	for _, pair := range m.Pairs() {
		source, canonical := pair[0], pair[1]
		if source == "" {
			return goerr.New("column header is required",
				goerr.V("column", canonical))
		}
		if seen[source] {
			return goerr.New("duplicate column header",
				goerr.V("header", source))
		}
		seen[source] = true
	}
	return nil
}
