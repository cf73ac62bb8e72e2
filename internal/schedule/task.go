package schedule

import "context"

// Task is one unit of periodic work. Run covers a single cycle; returning an
// error marks the cycle degraded, not the process.
type Task interface {
	Run(ctx context.Context) error
	Name() string
}
