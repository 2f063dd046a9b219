package zkp

import "time"

// DefaultFreshnessWindow is the maximum age of an activity still considered
// recent enough to attest.
const DefaultFreshnessWindow = 30 * 24 * time.Hour

// IsFresh reports whether timestamp falls inside the acceptance window, i.e.
// timestamp >= now - window. The boundary itself is fresh. This is a cheap
// gate applied before any cryptographic work, not a cryptographic guarantee:
// the timestamp is an unauthenticated input supplied by the caller.
func IsFresh(timestamp, now time.Time, window time.Duration) bool {
	return !timestamp.Before(now.Add(-window))
}
