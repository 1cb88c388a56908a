package tracer

const (
	// DefaultDepth is the number of rounds traced when none is configured.
	DefaultDepth uint = 2
	// DefaultDaysWithin is the default recency window.
	DefaultDaysWithin uint64 = 7

	defaultWorkerCount = 4

	secondsPerDay = 24 * 3600
)
