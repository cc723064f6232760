package jobs

// Job is a unit of scheduled work run by the daemon.
type Job interface {
	Process()
}
