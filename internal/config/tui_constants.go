package config

// Layout constants.
const (
	// RingRadius is the radius of the progress ring in terminal rows.
	RingRadius = 7

	// MinProgressWidth is the minimum width of the elapsed progress bar.
	MinProgressWidth = 10

	// TargetProgressWidth is the preferred width of the elapsed progress bar.
	TargetProgressWidth = 40

	// CompactModeThreshold drops the ring below this terminal width.
	CompactModeThreshold = 40
)

// Display limits.
const (
	// HistoryPaneRows limits sessions shown in the history pane.
	HistoryPaneRows = 8

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
