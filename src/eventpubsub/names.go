package eventpubsub

const (
	PerformanceSummaryEvent = "performance_summary"
)
