package cron_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	cronadapter "github.com/le0623/slack-app-demo/internal/adapter/cron"
)

func TestScheduler_AddJob(t *testing.T) {
	scheduler := cronadapter.NewScheduler()
	require.Equal(t, 0, scheduler.JobCount())

	require.NoError(t, scheduler.AddJob("0 9 * * *", func() {}))
	require.NoError(t, scheduler.AddJob("0 * * * *", func() {}))
	require.Equal(t, 2, scheduler.JobCount())
}

func TestScheduler_AddJob_InvalidSpec(t *testing.T) {
	scheduler := cronadapter.NewScheduler()
	require.Error(t, scheduler.AddJob("not a cron spec", func() {}))
}

func TestScheduler_Running(t *testing.T) {
	scheduler := cronadapter.NewScheduler()
	require.False(t, scheduler.Running())

	scheduler.Start()
	require.True(t, scheduler.Running())

	scheduler.Stop()
	require.False(t, scheduler.Running())
}
