package tasks

// LoadState tracks the collection lifecycle for the active date filter.
// A failed load keeps the previous collection; only a successful load
// replaces it.
type LoadState int

const (
	// Idle means no load has been triggered yet.
	Idle LoadState = iota

	// Loading means a fetch for the current filter is in flight.
	Loading

	// Loaded means the collection reflects the last server response.
	Loaded

	// LoadFailed means the last fetch failed; the collection still holds
	// the previous known-good state.
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case LoadFailed:
		return "load-failed"
	default:
		return "unknown"
	}
}
