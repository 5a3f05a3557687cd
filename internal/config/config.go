package config

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// StartAdjustmentLimit bounds the loop that moves a counting origin
	// forward to a business day. A holiday configuration dense enough to
	// exhaust it cannot name any eligible date at all.
	StartAdjustmentLimit = 1000

	// EndAdjustmentLimit bounds the post-calculation forward adjustment,
	// roughly one month of consecutive non-business days.
	EndAdjustmentLimit = 30

	// CountingSlack is added to the duration and the holiday count to bound
	// the business-day counting loop.
	CountingSlack = 100
)
