package model

import (
	"github.com/secmon-lab/caredash/pkg/domain/types"
)

// Options holds the unique values offered by the dashboard dropdowns, in order of first appearance
type Options struct {
	Regions          []types.Region         `json:"regions"`
	LocalAuthorities []types.LocalAuthority `json:"local_authorities"`
	Measures         []types.Measure        `json:"measures"`
	FinancialYears   []types.FinancialYear  `json:"financial_years"`
}

// DefaultRegion returns the first region, or empty if there is none
func (o *Options) DefaultRegion() types.Region {
	if len(o.Regions) == 0 {
		return ""
	}
	return o.Regions[0]
}

// DefaultLocalAuthorities returns the first local authority as a single-element selection
func (o *Options) DefaultLocalAuthorities() []types.LocalAuthority {
	if len(o.LocalAuthorities) == 0 {
		return nil
	}
	return []types.LocalAuthority{o.LocalAuthorities[0]}
}

// DefaultMeasure returns the first measure, or empty if there is none
func (o *Options) DefaultMeasure() types.Measure {
	if len(o.Measures) == 0 {
		return ""
	}
	return o.Measures[0]
}

// DefaultFinancialYear returns the first financial year, or empty if there is none
func (o *Options) DefaultFinancialYear() types.FinancialYear {
	if len(o.FinancialYears) == 0 {
		return ""
	}
	return o.FinancialYears[0]
}

// TableView is a filtered slice of the dataset with every original column
type TableView struct {
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

// Len returns the number of rows
func (t *TableView) Len() int {
	return len(t.Rows)
}

// OutputKind tells the frontend what a page renders below its controls
type OutputKind string

const (
	OutputTable     OutputKind = "table"
	OutputLineChart OutputKind = "line"
	OutputBarChart  OutputKind = "bar"
)

// Control describes one dropdown on a page
type Control struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Param    string   `json:"param"`
	Multi    bool     `json:"multi"`
	Options  []string `json:"options"`
	Defaults []string `json:"defaults"`
}

// Layout describes a routed page: its heading, controls and output
type Layout struct {
	Page     types.PageID `json:"page"`
	Path     string       `json:"path"`
	Title    string       `json:"title"`
	Heading  string       `json:"heading,omitempty"`
	Controls []Control    `json:"controls"`
	Output   OutputKind   `json:"output"`
	Endpoint string       `json:"endpoint"`
	ChartURL string       `json:"chart_url,omitempty"`
}

// API endpoints the frontend calls for each view
const (
	EndpointOptions               = "/api/options"
	EndpointLayout                = "/api/layout"
	EndpointRegionalTable         = "/api/regional-table"
	EndpointComparison            = "/api/comparison"
	EndpointComparisonChart       = "/api/comparison.svg"
	EndpointRegionalAnalysis      = "/api/regional-analysis"
	EndpointRegionalAnalysisChart = "/api/regional-analysis.svg"
)

// Query parameters of the view endpoints
const (
	ParamRegion         = "region"
	ParamLocalAuthority = "local_authority"
	ParamMeasure        = "measure"
	ParamYear           = "year"
	ParamPath           = "path"
)
