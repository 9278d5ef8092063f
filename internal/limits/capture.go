package limits

const (
	// CaptureMaxBytesDefault bounds how much of a single command run is kept in
	// memory. Output beyond the budget is drained and discarded so the child
	// never blocks on a full pipe.
	CaptureMaxBytesDefault int64 = 64 * 1024 * 1024

	// CaptureMaxBytesMax is a hard ceiling to prevent pathological overrides
	// from exhausting host memory.
	CaptureMaxBytesMax int64 = 1024 * 1024 * 1024
)

// CaptureMaxBytes returns the effective capture budget for a run given an
// override. 0 means "use default"; overrides are clamped to the ceiling.
func CaptureMaxBytes(override int64) int64 {
	if override <= 0 {
		return CaptureMaxBytesDefault
	}
	if override > CaptureMaxBytesMax {
		return CaptureMaxBytesMax
	}
	return override
}
