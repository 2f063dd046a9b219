package zkp

import "time"

// ActivityRecord is one claim to be attested: an activity digest recorded at
// some point in time, bound to a user commitment. Immutable once constructed;
// the prover consumes it, nothing retains it.
type ActivityRecord struct {
	Timestamp      time.Time
	ActivityDigest [32]byte
	UserCommitment [32]byte

	// userSecret is only needed to generate a proof. It never crosses the
	// verification boundary and is not part of the public record.
	userSecret [32]byte
}

// NewActivityRecord builds a provable record from raw activity input and the
// user's secret. The commitment is derived with ComputeCommitment so the
// record satisfies the relation by construction.
func NewActivityRecord(timestamp time.Time, activityDigest, userSecret [32]byte) ActivityRecord {
	return ActivityRecord{
		Timestamp:      timestamp,
		ActivityDigest: activityDigest,
		UserCommitment: ComputeCommitment(activityDigest, userSecret),
		userSecret:     userSecret,
	}
}
