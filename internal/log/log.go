// Package log contains slog helpers that attribute records to the
// logging call site instead of the helper itself.
package log

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

func Log(logger *slog.Logger, lvl slog.Level, skip int, msg string, args ...any) {
	if logger == nil || !logger.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	_ = logger.With(args...).Handler().Handle(context.Background(), r)
}

// IsErr reports whether err is non-nil, logging it when it is.
func IsErr(logger *slog.Logger, lvl slog.Level, err error, args ...any) bool {
	if err == nil {
		return false
	}
	if logger != nil {
		if errs, ok := err.(interface{ Unwrap() []error }); ok {
			for _, err := range errs.Unwrap() {
				Log(logger, lvl, 3, err.Error(), args...)
			}
		} else {
			Log(logger, lvl, 3, err.Error(), args...)
		}
	}
	return true
}
