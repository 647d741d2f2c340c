package ports

type ActionMetrics interface {
	RecordSuccess(outcome string)
	RecordConflict()
	RecordFailure()
	// RecordRejection counts a dish the pet refused, keyed by reason.
	RecordRejection(reason string)
}
