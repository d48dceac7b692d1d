package usecase

import (
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/m-mizutani/goerr/v2"
)

// where applies every filter in turn (logical AND). It stops early once no row is left.
func where(df dataframe.DataFrame, filters ...dataframe.F) (dataframe.DataFrame, error) {
	for _, f := range filters {
		if df.Nrow() == 0 {
			break
		}
		df = df.Filter(f)
		if df.Err != nil {
			return df, goerr.Wrap(df.Err, "failed to filter dataset", goerr.V("column", f.Colname))
		}
	}
	return df, nil
}

func eq(column, value string) dataframe.F {
	return dataframe.F{Colname: column, Comparator: series.Eq, Comparando: value}
}

func in(column string, values []string) dataframe.F {
	return dataframe.F{Colname: column, Comparator: series.In, Comparando: values}
}

func numeric(column string) dataframe.F {
	return dataframe.F{
		Colname:    column,
		Comparator: series.CompFunc,
		Comparando: func(el series.Element) bool {
			return !el.IsNA() && !math.IsNaN(parseValue(el.String()))
		},
	}
}

func nonEmpty(column string) dataframe.F {
	return dataframe.F{
		Colname:    column,
		Comparator: series.CompFunc,
		Comparando: func(el series.Element) bool {
			return !el.IsNA() && strings.TrimSpace(el.String()) != ""
		},
	}
}

// parseValue coerces a cell to a number. Cells that do not parse, and non-finite numbers, are
// missing (NaN).
func parseValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// coerceNumeric replaces a text column with its numeric coercion
func coerceNumeric(df dataframe.DataFrame, column string) (dataframe.DataFrame, error) {
	raw := df.Col(column).Records()
	values := make([]float64, len(raw))
	for i, cell := range raw {
		values[i] = parseValue(cell)
	}

	df = df.Mutate(series.New(values, series.Float, column))
	if df.Err != nil {
		return df, goerr.Wrap(df.Err, "failed to coerce column to numeric", goerr.V("column", column))
	}
	return df, nil
}

// unique returns the non-empty values of a column in order of first appearance
func unique(df dataframe.DataFrame, column string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, v := range df.Col(column).Records() {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		result = append(result, v)
	}
	return result
}
