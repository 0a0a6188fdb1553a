// Package cron adapts robfig/cron to the scheduler port.
package cron

import (
	"sync/atomic"

	"github.com/robfig/cron/v3"

	"github.com/le0623/slack-app-demo/internal/core/ports"
)

type Scheduler struct {
	cron    *cron.Cron
	running atomic.Bool
}

var _ ports.Scheduler = (*Scheduler)(nil)

// NewScheduler builds a scheduler on local wall-clock time with
// standard five-field cron specs.
func NewScheduler() *Scheduler {
	return &Scheduler{cron: cron.New()}
}

func (s *Scheduler) AddJob(schedule string, job func()) error {
	_, err := s.cron.AddFunc(schedule, job)
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.running.Store(true)
}

// Stop halts scheduling. Running jobs are not interrupted.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.running.Store(false)
}

// Running reports whether the scheduler has been started.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// JobCount reports how many jobs are registered, for the status
// endpoint.
func (s *Scheduler) JobCount() int {
	return len(s.cron.Entries())
}
