package schedule

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingTask struct {
	runs atomic.Int64
	err  error
}

func (t *countingTask) Run(ctx context.Context) error {
	t.runs.Add(1)
	return t.err
}

func (t *countingTask) Name() string {
	return "counting task"
}

func TestNewScheduler_Constructs(t *testing.T) {
	s := NewScheduler(&countingTask{}, 10*time.Second)
	require.NotNil(t, s)
	require.Nil(t, s.sched)
}

func TestScheduler_Shutdown_NoScheduler_ReturnsNil(t *testing.T) {
	s := NewScheduler(&countingTask{}, 10*time.Second)
	require.NoError(t, s.Shutdown())
	require.Nil(t, s.sched)
}

func TestScheduler_RunsTaskRepeatedly(t *testing.T) {
	task := &countingTask{}
	s := NewScheduler(task, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	require.Eventually(t, func() bool {
		return task.runs.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestScheduler_TaskErrorDoesNotStopLoop(t *testing.T) {
	task := &countingTask{err: errors.New("cycle degraded")}
	s := NewScheduler(task, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	require.Eventually(t, func() bool {
		return task.runs.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestScheduler_ContextCancelShutsDown(t *testing.T) {
	s := NewScheduler(&countingTask{}, 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	require.NotNil(t, s.sched)

	cancel()

	// Wait until the shutdown goroutine clears the scheduler.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.sched == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.Nil(t, s.sched, "expected scheduler to be shut down after ctx cancel")
}

func TestScheduler_Shutdown_Idempotent(t *testing.T) {
	s := NewScheduler(&countingTask{}, 10*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	require.NoError(t, s.Shutdown())
	require.Nil(t, s.sched)
	require.NoError(t, s.Shutdown())
}
