package model

import "github.com/m-mizutani/goerr/v2"

// ErrTagNoSelection marks errors raised when a view is asked to render without a complete
// selection. The previous output stays on screen; it is not reported to the user.
var ErrTagNoSelection = goerr.NewTag("no_selection")

// Sentinel errors for dataset operations
var (
	ErrMissingColumn = goerr.New("required column is missing")
	ErrEmptyDataset  = goerr.New("dataset has no rows")
)
