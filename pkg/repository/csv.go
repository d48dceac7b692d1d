package repository

import (
	"context"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/caredash/pkg/domain/interfaces"
	"github.com/secmon-lab/caredash/pkg/domain/model"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// CSV loads the dataset from a CSV file with a header row
type CSV struct {
	path    string
	columns model.ColumnMapping
}

// NewCSV creates a CSV dataset source
func NewCSV(path string, columns model.ColumnMapping) interfaces.DatasetSource {
	return &CSV{
		path:    path,
		columns: columns,
	}
}

// Load reads the whole file. Every column is kept as text; numeric coercion is left to the views
// so malformed cells never abort the load.
func (c *CSV) Load(ctx context.Context) (*model.Dataset, error) {
	if c.path == "" {
		return nil, goerr.New("dataset file path is required")
	}

	f, err := os.Open(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "dataset file not found", goerr.V("path", c.path))
		}
		return nil, goerr.Wrap(err, "failed to open dataset file", goerr.V("path", c.path))
	}
	defer f.Close()

	// Spreadsheet exports often start with a UTF-8 BOM, which would otherwise end up in the first header
	r := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	frame := dataframe.ReadCSV(r, dataframe.DetectTypes(false), dataframe.NaNValues(nil))
	if frame.Err != nil {
		return nil, goerr.Wrap(frame.Err, "failed to parse dataset file", goerr.V("path", c.path))
	}

	return newDataset(ctx, frame, c.columns, c.path)
}

// Close does nothing for file sources
func (c *CSV) Close() error {
	return nil
}
