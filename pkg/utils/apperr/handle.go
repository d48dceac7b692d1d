package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle logs an error that could not be returned to a caller.
// The goerr values of the error are attached to the log record.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if values := goerr.Values(err); len(values) > 0 {
		attrs := make([]any, 0, len(values)*2)
		for k, v := range values {
			attrs = append(attrs, k, v)
		}
		logger = logger.With(attrs...)
	}
	logger.Error("application error", "error", err)
}
