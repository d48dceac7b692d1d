package model

import (
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/secmon-lab/caredash/pkg/domain/types"
)

// Canonical column names
const (
	ColumnRegion         = "Region"
	ColumnLocalAuthority = "Local authority name"
	ColumnMeasure        = "Measure"
	ColumnFinancialYear  = "Financial year"
	ColumnValue          = "Value"
)

// RequiredColumns lists the columns every dataset must provide
var RequiredColumns = []string{
	ColumnRegion,
	ColumnLocalAuthority,
	ColumnMeasure,
	ColumnFinancialYear,
	ColumnValue,
}

// Record is one row of the dataset. Value keeps the raw cell text.
type Record struct {
	Region         types.Region         `json:"region"`
	LocalAuthority types.LocalAuthority `json:"local_authority_name"`
	Measure        types.Measure        `json:"measure"`
	FinancialYear  types.FinancialYear  `json:"financial_year"`
	Value          string               `json:"value"`
}

// Strings returns the record cells in RequiredColumns order
func (r Record) Strings() []string {
	return []string{
		r.Region.String(),
		r.LocalAuthority.String(),
		r.Measure.String(),
		r.FinancialYear.String(),
		r.Value,
	}
}

// Dataset is the loaded table. It is built once and only read afterwards.
type Dataset struct {
	ID       types.DatasetID
	Source   string
	LoadedAt time.Time
	Frame    dataframe.DataFrame
}

// Rows returns the number of records
func (d *Dataset) Rows() int {
	return d.Frame.Nrow()
}

// Columns returns the column names in source order
func (d *Dataset) Columns() []string {
	return d.Frame.Names()
}

// Records returns the required columns of every row in row order
func (d *Dataset) Records() []Record {
	cols := make([][]string, len(RequiredColumns))
	for i, name := range RequiredColumns {
		cols[i] = d.Frame.Col(name).Records()
	}

	records := make([]Record, d.Rows())
	for i := range records {
		records[i] = Record{
			Region:         types.Region(cols[0][i]),
			LocalAuthority: types.LocalAuthority(cols[1][i]),
			Measure:        types.Measure(cols[2][i]),
			FinancialYear:  types.FinancialYear(cols[3][i]),
			Value:          cols[4][i],
		}
	}
	return records
}
