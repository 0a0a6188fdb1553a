package ports

// Scheduler runs callbacks on cron-style wall-clock schedules. The
// contract is at-least-once per tick in local time; there is no
// distributed coordination.
type Scheduler interface {
	AddJob(schedule string, job func()) error
	Start()
	Stop()
}
