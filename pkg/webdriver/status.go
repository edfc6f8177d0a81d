package webdriver

// Status tells what Manager.NewDriver did to satisfy the request.
type Status int

const (
	// Created is a new session, either the first one or reuse is disabled.
	Created Status = iota + 1
	// Reused is the cached session which passed the liveness probe.
	Reused
	// Replaced is a new session created instead of the cached one which failed the probe.
	Replaced
	// ReplacementFailed means the cached session failed the probe and no new one could be created.
	ReplacementFailed
)

func (s Status) String() string {
	switch s {
	case Created:
		return "created"
	case Reused:
		return "reused"
	case Replaced:
		return "replaced"
	case ReplacementFailed:
		return "replacement failed"
	default:
		return "unknown"
	}
}
