package harvester_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmgpulse/rmgpulse/internal/harvester"
	"github.com/rmgpulse/rmgpulse/internal/logger"
)

func TestSchedulerRejectsInvalidSchedule(t *testing.T) {
	t.Parallel()

	f := newFixture()
	s := harvester.NewScheduler(f.harvester, 10, logger.NewNoOp())

	err := s.Start(context.Background(), "not a schedule")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid harvest schedule")
}

func TestSchedulerStartStop(t *testing.T) {
	t.Parallel()

	f := newFixture()
	s := harvester.NewScheduler(f.harvester, 10, logger.NewNoOp())

	require.NoError(t, s.Start(context.Background(), "@every 1h"))
	s.Stop()
}
