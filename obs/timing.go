// Package obs carries the teacher's structured-logging convention into the
// route optimizer: plain log.Printf lines, no logging framework.
package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RunIDKey tags a context with a per-optimization correlation id, the
// route-search analogue of the teacher's request id.
const RunIDKey ctxKey = "run_id"

// WithRunID attaches run as the run_id logged by Time for the lifetime of ctx.
func WithRunID(ctx context.Context, run string) context.Context {
	return context.WithValue(ctx, RunIDKey, run)
}

// Time logs the duration of the named operation when the returned func is
// called with the address of the caller's named error return, e.g.:
//
//	defer obs.Time(ctx, "pathfind.build")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	runID, _ := ctx.Value(RunIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("run_id=%s op=%s dur=%dms err=%v", runID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("run_id=%s op=%s dur=%dms", runID, name, dur.Milliseconds())
	}
}
