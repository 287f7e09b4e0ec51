package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/gridiron-edge/internal/batch"
)

func newTestScheduler() *Scheduler {
	runner := batch.NewRunner(nil, nil, nil, nil, nil, batch.Config{}, nil)
	return NewScheduler(runner, nil, nil, nil)
}

func TestSchedulePredictionRunInvalidCron(t *testing.T) {
	s := newTestScheduler()
	err := s.SchedulePredictionRun("not a cron expression", 72)
	assert.Error(t, err)
}

func TestStartWithoutJobs(t *testing.T) {
	s := newTestScheduler()
	err := s.Start()
	assert.Error(t, err)
}

func TestScheduleStartStop(t *testing.T) {
	s := newTestScheduler()

	require.NoError(t, s.SchedulePredictionRun("0 */6 * * *", 72))
	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())

	next := s.GetNextRun()
	assert.False(t, next.IsZero())
	assert.True(t, next.After(time.Now()))

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())

	// Stopping twice is a no-op.
	require.NoError(t, s.Stop())
}

func TestCannotScheduleWhileRunning(t *testing.T) {
	s := newTestScheduler()

	require.NoError(t, s.SchedulePredictionRun("0 */6 * * *", 72))
	require.NoError(t, s.Start())
	defer s.Stop()

	err := s.SchedulePredictionRun("0 12 * * *", 24)
	assert.Error(t, err)
}

func TestStartTwice(t *testing.T) {
	s := newTestScheduler()

	require.NoError(t, s.SchedulePredictionRun("0 */6 * * *", 72))
	require.NoError(t, s.Start())
	defer s.Stop()

	err := s.Start()
	assert.Error(t, err)
}

func TestEntriesReflectScheduledJobs(t *testing.T) {
	s := newTestScheduler()
	require.NoError(t, s.SchedulePredictionRun("0 */6 * * *", 72))
	require.NoError(t, s.SchedulePredictionRun("30 9 * * 0", 48))

	assert.Len(t, s.Entries(), 2)
}
